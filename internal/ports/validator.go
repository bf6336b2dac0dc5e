package ports

import (
	"context"

	"github.com/Gunvolt24/star_burger/internal/domain"
)

type OrderValidator interface {
	Validate(ctx context.Context, order *domain.Order) error
}
