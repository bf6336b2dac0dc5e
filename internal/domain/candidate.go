package domain

import "math"

// UnresolvedDistanceKm — значение-заглушка для кандидатов без координат.
// Порядок сортировки на него не опирается (компаратор сравнивает флаг ошибки
// явно), величина нужна только для отображения.
const UnresolvedDistanceKm = math.MaxFloat64

// Candidate — ресторан-кандидат для конкретного заказа с посчитанной
// дистанцией до адреса доставки. Эфемерный результат, не персистится.
type Candidate struct {
	RestaurantID  int64   `json:"restaurant_id"`
	Name          string  `json:"name"`
	Address       string  `json:"address"`
	DistanceKm    float64 `json:"distance_km"`
	DistanceError bool    `json:"distance_error"`
}

// OrderCard — заказ и ранжированный список кандидатов для него.
// Срез (а не map) — чтобы сохранить порядок заказов батча.
type OrderCard struct {
	Order      *Order      `json:"order"`
	Candidates []Candidate `json:"candidates"`
}
