package validate

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/Gunvolt24/star_burger/internal/domain"
	"github.com/Gunvolt24/star_burger/internal/ports"
)

// Проверка, что OrderValidator удовлетворяет интерфейсу OrderValidator.
var _ ports.OrderValidator = (*OrderValidator)(nil)

// ErrInvalidOrder — базовая (sentinel error) ошибка валидации.
var ErrInvalidOrder = errors.New("order validation failed")

const (
	maxQuantity = 100
	maxNameLen  = 50
	maxAddrLen  = 150
)

// OrderValidator — структура для валидации заказа.
type OrderValidator struct{}

// NewOrderValidator — конструктор OrderValidator.
func NewOrderValidator() *OrderValidator { return &OrderValidator{} }

// Validate — проверяет корректность полей заказа.
// Возвращает ErrInvalidOrder (с обёрнутой причиной) при любой проблеме.
func (v *OrderValidator) Validate(_ context.Context, order *domain.Order) error {
	if err := v.validateCore(order); err != nil {
		return err
	}
	return v.validateItems(order.Items)
}

// validateCore — валидация основных полей заказа.
func (v *OrderValidator) validateCore(order *domain.Order) error {
	if order == nil {
		return fmt.Errorf("%w: заказ не может быть nil", ErrInvalidOrder)
	}
	if strings.TrimSpace(order.Firstname) == "" {
		return fmt.Errorf("%w: firstname обязателен", ErrInvalidOrder)
	}
	if len(order.Firstname) > maxNameLen || len(order.Lastname) > maxNameLen {
		return fmt.Errorf("%w: имя/фамилия длиннее %d символов", ErrInvalidOrder, maxNameLen)
	}
	if strings.TrimSpace(order.Address) == "" {
		return fmt.Errorf("%w: address обязателен", ErrInvalidOrder)
	}
	if len(order.Address) > maxAddrLen {
		return fmt.Errorf("%w: address длиннее %d символов", ErrInvalidOrder, maxAddrLen)
	}
	if err := v.validatePhone(order.Phonenumber); err != nil {
		return err
	}
	switch order.Status {
	case "", domain.StatusUnprocessed, domain.StatusAssembly, domain.StatusDelivery, domain.StatusCompleted:
	default:
		return fmt.Errorf("%w: неизвестный статус %q", ErrInvalidOrder, order.Status)
	}
	switch order.PaymentMethod {
	case "", domain.PaymentCash, domain.PaymentElectronic:
	default:
		return fmt.Errorf("%w: неизвестный способ оплаты %q", ErrInvalidOrder, order.PaymentMethod)
	}
	return nil
}

// validatePhone — мобильный номер: необязательный "+", затем 10–15 цифр
// (пробелы/дефисы/скобки допускаются и игнорируются).
func (v *OrderValidator) validatePhone(phone string) error {
	if strings.TrimSpace(phone) == "" {
		return fmt.Errorf("%w: phonenumber обязателен", ErrInvalidOrder)
	}
	digits := 0
	for i, r := range phone {
		switch {
		case r == '+' && i == 0:
		case unicode.IsDigit(r):
			digits++
		case r == ' ' || r == '-' || r == '(' || r == ')':
		default:
			return fmt.Errorf("%w: phonenumber содержит недопустимый символ %q", ErrInvalidOrder, r)
		}
	}
	if digits < 10 || digits > 15 {
		return fmt.Errorf("%w: phonenumber некорректен", ErrInvalidOrder)
	}
	return nil
}

// Валидация позиций заказа.
func (v *OrderValidator) validateItems(items []domain.OrderItem) error {
	if len(items) == 0 {
		return fmt.Errorf("%w: items не должен быть пустым", ErrInvalidOrder)
	}

	for i := range items {
		item := &items[i]
		idx := strconv.Itoa(i)

		if item.ProductID <= 0 {
			return fmt.Errorf("%w: items[%s].product обязателен", ErrInvalidOrder, idx)
		}
		if item.Quantity < 1 || item.Quantity > maxQuantity {
			return fmt.Errorf("%w: items[%s].quantity должен быть в диапазоне 1..%d", ErrInvalidOrder, idx, maxQuantity)
		}
		if item.Price < 0 {
			return fmt.Errorf("%w: items[%s].price должен быть неотрицательным", ErrInvalidOrder, idx)
		}
	}
	return nil
}
