//go:build integration

package testutil

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Gunvolt24/star_burger/internal/domain"
)

func randHex(n int) string {
	b := make([]byte, n)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

func UniqSuffix() string { return randHex(6) }

// Мини-генератор валидного заказа
func MakeOrder(opts ...func(*domain.Order)) domain.Order {
	now := time.Now().UTC().Truncate(time.Second)

	o := domain.Order{
		ID:            uuid.NewString(),
		Firstname:     "Иван",
		Lastname:      "Петров",
		Phonenumber:   "+7 999 123-45-67",
		Address:       "Москва, ул. Ленина, " + UniqSuffix(),
		Status:        domain.StatusUnprocessed,
		PaymentMethod: domain.PaymentCash,
		RegisteredAt:  now,
		Items: []domain.OrderItem{
			{ProductID: 1, Quantity: 2, Price: 250},
		},
	}

	for _, fn := range opts {
		fn(&o)
	}
	return o
}

func WithAddress(addr string) func(*domain.Order) {
	return func(o *domain.Order) { o.Address = addr }
}

func WithStatus(status string) func(*domain.Order) {
	return func(o *domain.Order) { o.Status = status }
}

func WithItems(n int) func(*domain.Order) {
	return func(o *domain.Order) {
		o.Items = make([]domain.OrderItem, 0, n)
		for i := 0; i < n; i++ {
			o.Items = append(o.Items, domain.OrderItem{
				ProductID: int64(i + 1),
				Quantity:  i + 1,
				Price:     float64(10 * (i + 1)),
			})
		}
	}
}

// SeedRestaurant — строка каталога для засева.
type SeedRestaurant struct {
	ID       int64
	Name     string
	Address  string
	Products []int64 // доступные товары (availability=true)
}

// SeedCatalog — наполнить справочники: товары 1..products и рестораны
// с их меню. Заказы тестовых сценариев строятся поверх этого каталога.
func SeedCatalog(ctx context.Context, pool *pgxpool.Pool, products int, restaurants []SeedRestaurant) error {
	for i := 1; i <= products; i++ {
		if _, err := pool.Exec(ctx, `
			INSERT INTO products (id, name, price, description, special_status)
			VALUES ($1, $2, $3, '', FALSE)
			ON CONFLICT (id) DO NOTHING
		`, i, fmt.Sprintf("Товар %d", i), 100*i); err != nil {
			return fmt.Errorf("seed product %d: %w", i, err)
		}
	}
	for _, r := range restaurants {
		if _, err := pool.Exec(ctx, `
			INSERT INTO restaurants (id, name, address)
			VALUES ($1, $2, $3)
			ON CONFLICT (id) DO NOTHING
		`, r.ID, r.Name, r.Address); err != nil {
			return fmt.Errorf("seed restaurant %d: %w", r.ID, err)
		}
		for _, p := range r.Products {
			if _, err := pool.Exec(ctx, `
				INSERT INTO restaurant_menu_items (restaurant_id, product_id, availability)
				VALUES ($1, $2, TRUE)
				ON CONFLICT (restaurant_id, product_id) DO UPDATE SET availability = TRUE
			`, r.ID, p); err != nil {
				return fmt.Errorf("seed menu item %d/%d: %w", r.ID, p, err)
			}
		}
	}
	return nil
}
