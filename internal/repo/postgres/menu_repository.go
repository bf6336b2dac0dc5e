package postgres

import (
	"context"
	"fmt"

	"github.com/Gunvolt24/star_burger/internal/domain"
	"github.com/Gunvolt24/star_burger/internal/ports"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Проверка, что MenuRepository удовлетворяет интерфейсу MenuSource.
var _ ports.MenuSource = (*MenuRepository)(nil)

// MenuRepository — снимок каталога из Postgres. Только чтение.
type MenuRepository struct {
	pool *pgxpool.Pool
}

// NewMenuRepository — конструктор MenuRepository.
func NewMenuRepository(pool *pgxpool.Pool) *MenuRepository { return &MenuRepository{pool: pool} }

// AvailabilityRows — строки «ресторан продаёт товар» одним запросом.
// availability=true фильтруется здесь же, чтобы не гонять лишние строки.
func (r *MenuRepository) AvailabilityRows(ctx context.Context) ([]domain.MenuRow, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT rest.id, rest.name, rest.address, mi.product_id, mi.availability
		FROM restaurant_menu_items mi
		JOIN restaurants rest ON rest.id = mi.restaurant_id
		WHERE mi.availability = TRUE
		ORDER BY rest.id, mi.product_id
	`)
	if err != nil {
		return nil, fmt.Errorf("select menu items: %w", err)
	}
	defer rows.Close()

	var result []domain.MenuRow
	for rows.Next() {
		var row domain.MenuRow
		if err := rows.Scan(
			&row.RestaurantID, &row.RestaurantName, &row.RestaurantAddress,
			&row.ProductID, &row.Availability,
		); err != nil {
			return nil, fmt.Errorf("scan menu row: %w", err)
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("menu rows: %w", err)
	}
	return result, nil
}

// AvailableProducts — товары, доступные хотя бы в одном ресторане.
func (r *MenuRepository) AvailableProducts(ctx context.Context) ([]domain.Product, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT DISTINCT p.id, p.name, p.price, p.description, p.special_status,
			p.category_id, COALESCE(c.name, '')
		FROM products p
		LEFT JOIN product_categories c ON c.id = p.category_id
		JOIN restaurant_menu_items mi ON mi.product_id = p.id AND mi.availability = TRUE
		ORDER BY p.id
	`)
	if err != nil {
		return nil, fmt.Errorf("select products: %w", err)
	}
	defer rows.Close()

	var result []domain.Product
	for rows.Next() {
		var p domain.Product
		if err := rows.Scan(
			&p.ID, &p.Name, &p.Price, &p.Description, &p.SpecialStatus,
			&p.CategoryID, &p.CategoryName,
		); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("product rows: %w", err)
	}
	return result, nil
}

// RestaurantAddresses — адреса всех ресторанов (для прогрева геокэша).
func (r *MenuRepository) RestaurantAddresses(ctx context.Context) ([]string, error) {
	rows, err := r.pool.Query(ctx, `SELECT address FROM restaurants ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("select restaurant addresses: %w", err)
	}
	defer rows.Close()

	var result []string
	for rows.Next() {
		var addr string
		if err := rows.Scan(&addr); err != nil {
			return nil, fmt.Errorf("scan address: %w", err)
		}
		result = append(result, addr)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("address rows: %w", err)
	}
	return result, nil
}
