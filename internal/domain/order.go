package domain

import "time"

// Статусы заказа (коды как в БД).
const (
	StatusUnprocessed = "UP" // необработанный — ждёт назначения ресторана
	StatusAssembly    = "AS" // сборка
	StatusDelivery    = "DE" // доставка
	StatusCompleted   = "CO" // выполнен
)

// Способы оплаты.
const (
	PaymentCash       = "CA"
	PaymentElectronic = "EL"
)

// Order — заказ клиента.
// Внутри движка назначения заказ read-only; единственная мутация —
// привязка готовящего ресторана (AssignRestaurant в репозитории).
type Order struct {
	ID                  string      `json:"id"`
	Firstname           string      `json:"firstname"`
	Lastname            string      `json:"lastname"`
	Phonenumber         string      `json:"phonenumber"`
	Address             string      `json:"address"`
	Status              string      `json:"status"`
	Comment             string      `json:"comment,omitempty"`
	PaymentMethod       string      `json:"payment_method,omitempty"`
	RegisteredAt        time.Time   `json:"registered_at"`
	CalledAt            *time.Time  `json:"called_at,omitempty"`
	DeliveredAt         *time.Time  `json:"delivered_at,omitempty"`
	CookingRestaurantID *int64      `json:"cooking_restaurant_id,omitempty"`
	Cost                float64     `json:"cost,omitempty"` // SUM(quantity*price), считается в SQL
	Items               []OrderItem `json:"items"`
}

// OrderItem — позиция заказа. Цена фиксируется на момент оформления.
type OrderItem struct {
	ProductID int64   `json:"product"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

// Assigned — назначен ли заказу готовящий ресторан.
func (o *Order) Assigned() bool { return o.CookingRestaurantID != nil }

// ProductIDs — список id товаров заказа (количество для матчинга не важно,
// дубликаты схлопываются).
func (o *Order) ProductIDs() []int64 {
	seen := make(map[int64]struct{}, len(o.Items))
	ids := make([]int64, 0, len(o.Items))
	for _, item := range o.Items {
		if _, ok := seen[item.ProductID]; ok {
			continue
		}
		seen[item.ProductID] = struct{}{}
		ids = append(ids, item.ProductID)
	}
	return ids
}
