package ports

import (
	"context"

	"github.com/Gunvolt24/star_burger/internal/domain"
)

// MenuSource — снимок каталога на текущий момент; read-only для движка.
type MenuSource interface {
	// AvailabilityRows — все строки «ресторан продаёт товар» с availability=true.
	AvailabilityRows(ctx context.Context) ([]domain.MenuRow, error)

	// AvailableProducts — товары, доступные хотя бы в одном ресторане.
	AvailableProducts(ctx context.Context) ([]domain.Product, error)

	// RestaurantAddresses — адреса всех ресторанов (для прогрева геокэша).
	RestaurantAddresses(ctx context.Context) ([]string, error)
}
