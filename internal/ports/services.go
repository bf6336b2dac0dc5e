package ports

import (
	"context"

	"github.com/Gunvolt24/star_burger/internal/domain"
)

// OrderIntakeService — приём заказов и привязка ресторана (для HTTP-слоя).
type OrderIntakeService interface {
	Register(ctx context.Context, order *domain.Order) (string, error)
	GetOrder(ctx context.Context, orderID string) (*domain.Order, error)
	AssignRestaurant(ctx context.Context, orderID string, restaurantID int64) error
}

// ProductReadService — чтение каталога.
type ProductReadService interface {
	AvailableProducts(ctx context.Context) ([]domain.Product, error)
}

// AssignmentReadService — отчёт «заказы и рестораны-кандидаты».
type AssignmentReadService interface {
	OrderCards(ctx context.Context) ([]domain.OrderCard, error)
}
