package domain

// MenuRow — денормализованная строка «ресторан продаёт товар».
// Источник данных внешний; движок работает со снимком на один батч.
type MenuRow struct {
	RestaurantID      int64
	RestaurantName    string
	RestaurantAddress string
	ProductID         int64
	Availability      bool
}

// RestaurantInfo — справочная информация о ресторане из строк меню.
type RestaurantInfo struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
}

// MenuIndex — индекс «ресторан → множество доступных товаров».
// Строится один раз на батч и после этого не изменяется.
type MenuIndex struct {
	products    map[int64]map[int64]struct{}
	restaurants map[int64]RestaurantInfo
	order       []int64 // id ресторанов в порядке первого появления
}

// BuildMenuIndex — строит индекс по строкам доступности.
// Строки с Availability == false пропускаются; имя/адрес ресторана
// берутся из первой встреченной строки (вход детерминирует результат).
func BuildMenuIndex(rows []MenuRow) *MenuIndex {
	idx := &MenuIndex{
		products:    make(map[int64]map[int64]struct{}),
		restaurants: make(map[int64]RestaurantInfo),
	}
	for _, row := range rows {
		if !row.Availability {
			continue
		}
		set, ok := idx.products[row.RestaurantID]
		if !ok {
			set = make(map[int64]struct{})
			idx.products[row.RestaurantID] = set
			idx.restaurants[row.RestaurantID] = RestaurantInfo{
				ID:      row.RestaurantID,
				Name:    row.RestaurantName,
				Address: row.RestaurantAddress,
			}
			idx.order = append(idx.order, row.RestaurantID)
		}
		set[row.ProductID] = struct{}{}
	}
	return idx
}

// Len — количество ресторанов в индексе.
func (m *MenuIndex) Len() int { return len(m.order) }

// Sells — продаёт ли ресторан товар.
func (m *MenuIndex) Sells(restaurantID, productID int64) bool {
	_, ok := m.products[restaurantID][productID]
	return ok
}

// Restaurant — информация о ресторане; ok == false, если ресторана нет в индексе.
func (m *MenuIndex) Restaurant(restaurantID int64) (RestaurantInfo, bool) {
	info, ok := m.restaurants[restaurantID]
	return info, ok
}

// CapableRestaurants — рестораны, чьё множество доступных товаров покрывает
// весь список productIDs (частичное покрытие не допускается).
// Пустой список товаров покрывается любым рестораном — защитный случай,
// по контракту приёма заказов он не должен возникать.
// Порядок результата — порядок первого появления ресторана во входных строках.
func (m *MenuIndex) CapableRestaurants(productIDs []int64) []RestaurantInfo {
	capable := make([]RestaurantInfo, 0, len(m.order))
	for _, restaurantID := range m.order {
		set := m.products[restaurantID]
		covered := true
		for _, productID := range productIDs {
			if _, ok := set[productID]; !ok {
				covered = false
				break
			}
		}
		if covered {
			capable = append(capable, m.restaurants[restaurantID])
		}
	}
	return capable
}
