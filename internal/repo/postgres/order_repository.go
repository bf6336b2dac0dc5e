package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/Gunvolt24/star_burger/internal/domain"
	"github.com/Gunvolt24/star_burger/internal/ports"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Проверка, что OrderRepository удовлетворяет интерфейсу OrderRepository.
var _ ports.OrderRepository = (*OrderRepository)(nil)

// OrderRepository — реализация репозитория заказов на Postgres (pgxpool).
type OrderRepository struct {
	pool *pgxpool.Pool
}

// NewOrderRepository — конструктор OrderRepository.
func NewOrderRepository(pool *pgxpool.Pool) *OrderRepository { return &OrderRepository{pool: pool} }

// Save — транзакционно сохраняет заказ (идемпотентный upsert + replace позиций).
func (r *OrderRepository) Save(ctx context.Context, order *domain.Order) error {
	if order == nil || order.ID == "" {
		return errors.New("order is empty or id is required")
	}

	transaction, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		// При уже завершённой транзакции Rollback вернёт ErrTxClosed — игнорируем.
		if rbErr := transaction.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			_ = rbErr
		}
	}()

	// 1) orders — upsert по id (PRIMARY KEY).
	if _, err = transaction.Exec(ctx, `
		INSERT INTO orders (
			id, firstname, lastname, phonenumber, address, status, comment,
			payment_method, registered_at, called_at, delivered_at, cooking_restaurant_id
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (id) DO UPDATE SET
			firstname = EXCLUDED.firstname,
			lastname = EXCLUDED.lastname,
			phonenumber = EXCLUDED.phonenumber,
			address = EXCLUDED.address,
			status = EXCLUDED.status,
			comment = EXCLUDED.comment,
			payment_method = EXCLUDED.payment_method,
			registered_at = EXCLUDED.registered_at,
			called_at = EXCLUDED.called_at,
			delivered_at = EXCLUDED.delivered_at,
			cooking_restaurant_id = EXCLUDED.cooking_restaurant_id
	`,
		order.ID, order.Firstname, order.Lastname, order.Phonenumber, order.Address,
		order.Status, order.Comment, order.PaymentMethod, order.RegisteredAt,
		order.CalledAt, order.DeliveredAt, order.CookingRestaurantID,
	); err != nil {
		return fmt.Errorf("upsert order: %w", err)
	}

	// 2) order_items — replace: удаляем и вставляем список заново.
	if _, err = transaction.Exec(ctx, `DELETE FROM order_items WHERE order_id = $1`, order.ID); err != nil {
		return fmt.Errorf("delete items: %w", err)
	}
	if len(order.Items) > 0 {
		if err = copyItems(ctx, transaction, order.ID, order.Items); err != nil {
			return err
		}
	}

	if err := transaction.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// GetByID — получить заказ по id. Если не нашли, возвращает (nil, nil).
func (r *OrderRepository) GetByID(ctx context.Context, orderID string) (*domain.Order, error) {
	var order domain.Order

	err := r.pool.QueryRow(ctx, `
		SELECT
			o.id, o.firstname, o.lastname, o.phonenumber, o.address, o.status, o.comment,
			o.payment_method, o.registered_at, o.called_at, o.delivered_at, o.cooking_restaurant_id,
			COALESCE((SELECT SUM(i.quantity * i.price) FROM order_items i WHERE i.order_id = o.id), 0)
		FROM orders o WHERE o.id = $1
	`, orderID).Scan(
		&order.ID, &order.Firstname, &order.Lastname, &order.Phonenumber, &order.Address,
		&order.Status, &order.Comment, &order.PaymentMethod, &order.RegisteredAt,
		&order.CalledAt, &order.DeliveredAt, &order.CookingRestaurantID, &order.Cost,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select order: %w", err)
	}

	rows, err := r.pool.Query(ctx, `
		SELECT product_id, quantity, price
		FROM order_items WHERE order_id = $1
		ORDER BY product_id
	`, orderID)
	if err != nil {
		return nil, fmt.Errorf("select items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var item domain.OrderItem
		if err := rows.Scan(&item.ProductID, &item.Quantity, &item.Price); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		order.Items = append(order.Items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("items rows: %w", err)
	}

	return &order, nil
}

// ListPending — незавершённые заказы для отчёта менеджера.
// Порядок: необработанные раньше собираемых, внутри статуса новые сверху.
// Стоимость считается в SQL одним агрегатом, позиции дочитываются
// вторым запросом по всем id сразу и склеиваются в памяти.
func (r *OrderRepository) ListPending(ctx context.Context) ([]*domain.Order, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT
			o.id, o.firstname, o.lastname, o.phonenumber, o.address, o.status, o.comment,
			o.payment_method, o.registered_at, o.called_at, o.delivered_at, o.cooking_restaurant_id,
			COALESCE(SUM(i.quantity * i.price), 0) AS cost
		FROM orders o
		LEFT JOIN order_items i ON i.order_id = o.id
		WHERE o.status NOT IN ($1, $2)
		GROUP BY o.id
		ORDER BY
			CASE o.status WHEN $3 THEN 0 WHEN $4 THEN 1 ELSE 2 END,
			o.registered_at DESC,
			o.id
	`, domain.StatusCompleted, domain.StatusDelivery,
		domain.StatusUnprocessed, domain.StatusAssembly)
	if err != nil {
		return nil, fmt.Errorf("select pending orders: %w", err)
	}
	defer rows.Close()

	var orders []*domain.Order
	byID := make(map[string]*domain.Order)
	ids := make([]string, 0, 16)

	for rows.Next() {
		order := &domain.Order{}
		if err := rows.Scan(
			&order.ID, &order.Firstname, &order.Lastname, &order.Phonenumber, &order.Address,
			&order.Status, &order.Comment, &order.PaymentMethod, &order.RegisteredAt,
			&order.CalledAt, &order.DeliveredAt, &order.CookingRestaurantID, &order.Cost,
		); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		orders = append(orders, order)
		byID[order.ID] = order
		ids = append(ids, order.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("orders rows: %w", err)
	}
	if len(orders) == 0 {
		return orders, nil
	}

	iRows, err := r.pool.Query(ctx, `
		SELECT order_id, product_id, quantity, price
		FROM order_items
		WHERE order_id = ANY($1::uuid[])
		ORDER BY order_id, product_id
	`, ids)
	if err != nil {
		return nil, fmt.Errorf("select items: %w", err)
	}
	defer iRows.Close()

	for iRows.Next() {
		var orderID string
		var item domain.OrderItem
		if err := iRows.Scan(&orderID, &item.ProductID, &item.Quantity, &item.Price); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		if order := byID[orderID]; order != nil {
			order.Items = append(order.Items, item)
		}
	}
	if err := iRows.Err(); err != nil {
		return nil, fmt.Errorf("items rows: %w", err)
	}

	return orders, nil
}

// AssignRestaurant — привязать готовящий ресторан и перевести заказ в сборку.
func (r *OrderRepository) AssignRestaurant(ctx context.Context, orderID string, restaurantID int64) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE orders
		SET cooking_restaurant_id = $2, status = $3
		WHERE id = $1
	`, orderID, restaurantID, domain.StatusAssembly)
	if err != nil {
		return fmt.Errorf("assign restaurant: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("assign restaurant: order %s not found", orderID)
	}
	return nil
}

// copyItems — вставка позиций через COPY (CopyFromRows); быстрее, чем INSERT в цикле.
func copyItems(ctx context.Context, tx pgx.Tx, orderID string, items []domain.OrderItem) error {
	rows := make([][]any, 0, len(items))
	for _, item := range items {
		rows = append(rows, []any{orderID, item.ProductID, item.Quantity, item.Price})
	}

	_, err := tx.CopyFrom(
		ctx,
		pgx.Identifier{"order_items"},
		[]string{"order_id", "product_id", "quantity", "price"},
		pgx.CopyFromRows(rows),
	)
	if err != nil {
		return fmt.Errorf("copy items: %w", err)
	}
	return nil
}
