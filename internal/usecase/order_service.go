package usecase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/Gunvolt24/star_burger/internal/domain"
	"github.com/Gunvolt24/star_burger/internal/ports"
	"github.com/Gunvolt24/star_burger/pkg/validate"
	"github.com/google/uuid"
)

// Проверки интерфейсов.
var (
	_ ports.OrderIntakeService = (*OrderService)(nil)
	_ ports.ProductReadService = (*OrderService)(nil)
)

// OrderService — прикладная логика приёма заказов (без знаний о транспорте).
type OrderService struct {
	repo      ports.OrderRepository // прямой доступ к хранилищу
	menu      ports.MenuSource      // каталог (витрина товаров)
	log       ports.Logger          // прямой доступ к логгеру
	validator ports.OrderValidator  // прямой доступ к валидатору
}

// NewOrderService — DI-конструктор.
func NewOrderService(
	repo ports.OrderRepository,
	menu ports.MenuSource,
	log ports.Logger,
	validator ports.OrderValidator,
) *OrderService {
	return &OrderService{
		repo:      repo,
		menu:      menu,
		log:       log,
		validator: validator,
	}
}

// Register — регистрация нового заказа: валидация, выдача id,
// статус «необработан», фиксация времени.
func (s *OrderService) Register(ctx context.Context, order *domain.Order) (string, error) {
	if order != nil {
		if order.Status == "" {
			order.Status = domain.StatusUnprocessed
		}
		if order.RegisteredAt.IsZero() {
			order.RegisteredAt = time.Now().UTC()
		}
	}

	if err := s.validator.Validate(ctx, order); err != nil {
		s.log.Warnf(ctx, "validation failed err=%v", err)
		return "", fmt.Errorf("validation failed: %w", err)
	}

	if order.ID == "" {
		order.ID = uuid.NewString()
	}

	if err := s.repo.Save(ctx, order); err != nil {
		s.log.Errorf(ctx, "repo.Save failed order_id=%s err=%v", order.ID, err)
		return "", fmt.Errorf("failed to save order: %w", err)
	}

	s.log.Infof(ctx, "order registered id=%s items=%d", order.ID, len(order.Items))
	return order.ID, nil
}

// GetOrder — получить заказ по id. Возвращает (nil, nil), если записи нет.
func (s *OrderService) GetOrder(ctx context.Context, orderID string) (*domain.Order, error) {
	start := time.Now()
	order, err := s.repo.GetByID(ctx, orderID)
	if err != nil {
		s.log.Errorf(ctx, "repo.GetByID failed order_id=%s err=%v", orderID, err)
		return nil, err
	}
	s.log.Infof(ctx, "db fetch order_id=%s took=%s", orderID, time.Since(start))
	return order, nil
}

// AssignRestaurant — ручная привязка готовящего ресторана менеджером.
// Заказ переводится в сборку; повторная привязка перезаписывает ресторан.
func (s *OrderService) AssignRestaurant(ctx context.Context, orderID string, restaurantID int64) error {
	if err := s.repo.AssignRestaurant(ctx, orderID, restaurantID); err != nil {
		s.log.Errorf(ctx, "assign failed order_id=%s restaurant_id=%d err=%v", orderID, restaurantID, err)
		return err
	}
	s.log.Infof(ctx, "order assigned id=%s restaurant_id=%d", orderID, restaurantID)
	return nil
}

// AvailableProducts — витрина: товары, доступные хотя бы в одном ресторане.
func (s *OrderService) AvailableProducts(ctx context.Context) ([]domain.Product, error) {
	return s.menu.AvailableProducts(ctx)
}

// SaveFromMessage — сохранить заказ, пришедший из Kafka (raw JSON).
// Шаги:
//  1. строгий парсинг JSON (DisallowUnknownFields) —> отлавливаем незадокументированные поля;
//  2. доменная валидация (вернёт validate.ErrInvalidOrder при проблемах);
//  3. транзакционное сохранение в БД (идемпотентные upsert).
func (s *OrderService) SaveFromMessage(ctx context.Context, raw []byte) error {
	// Строгое декодирование: запрещаем неизвестные поля.
	var order domain.Order
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	// Битый JSON — такое же «ядовитое» сообщение, как и невалидный заказ:
	// повторная доставка его не починит, поэтому помечаем ErrInvalidOrder,
	// чтобы консьюмер закоммитил оффсет и не зациклился.
	if err := dec.Decode(&order); err != nil {
		s.log.Warnf(ctx, "invalid json err=%v", err)
		return fmt.Errorf("%w: invalid json: %v", validate.ErrInvalidOrder, err)
	}

	// Убеждаемся, что после объекта нет лишних данных.
	if err := dec.Decode(new(struct{})); err != io.EOF {
		s.log.Warnf(ctx, "invalid json: trailing data")
		return fmt.Errorf("%w: invalid json: trailing data", validate.ErrInvalidOrder)
	}

	if order.Status == "" {
		order.Status = domain.StatusUnprocessed
	}
	if order.RegisteredAt.IsZero() {
		order.RegisteredAt = time.Now().UTC()
	}

	// Доменная валидация (обязательные поля, телефон, позиции и т.д.).
	if err := s.validator.Validate(ctx, &order); err != nil {
		s.log.Warnf(ctx, "validation failed order_id=%s err=%v", order.ID, err)
		return fmt.Errorf("validation failed: %w", err)
	}

	if order.ID == "" {
		order.ID = uuid.NewString()
	}

	// Сохранение в БД в транзакции.
	if err := s.repo.Save(ctx, &order); err != nil {
		s.log.Errorf(ctx, "repo.Save failed order_id=%s err=%v", order.ID, err)
		return fmt.Errorf("failed to save order: %w", err)
	}

	s.log.Infof(ctx, "order saved id=%s items=%d", order.ID, len(order.Items))
	return nil
}
