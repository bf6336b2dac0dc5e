package ports

import (
	"context"

	"github.com/Gunvolt24/star_burger/internal/domain"
)

type OrderRepository interface {
	Save(ctx context.Context, order *domain.Order) error
	GetByID(ctx context.Context, orderID string) (*domain.Order, error)

	// ListPending — незавершённые заказы в порядке отображения отчёта:
	// необработанные раньше, внутри статуса — новее раньше; cost посчитан в SQL.
	ListPending(ctx context.Context) ([]*domain.Order, error)

	// AssignRestaurant — привязать готовящий ресторан и перевести заказ в сборку.
	AssignRestaurant(ctx context.Context, orderID string, restaurantID int64) error
}
