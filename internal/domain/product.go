package domain

// Product — товар каталога (read-only срез для API).
type Product struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	Price         float64 `json:"price"`
	Description   string  `json:"description,omitempty"`
	SpecialStatus bool    `json:"special_status"`
	CategoryID    *int64  `json:"category_id,omitempty"`
	CategoryName  string  `json:"category_name,omitempty"`
}
