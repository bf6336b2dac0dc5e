package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/Gunvolt24/star_burger/internal/domain"
	"github.com/Gunvolt24/star_burger/internal/ports"
	"github.com/Gunvolt24/star_burger/pkg/metrics"
)

// Проверка интерфейса.
var _ ports.AssignmentReadService = (*AssignmentService)(nil)

// AssignmentService — построение отчёта «заказ → рестораны-кандидаты».
// На один вызов делается ровно один снимок меню и один прогрев геокэша;
// дальше вся работа идёт в памяти.
type AssignmentService struct {
	orders   ports.OrderRepository
	menu     ports.MenuSource
	resolver ports.AddressResolver
	log      ports.Logger
}

// NewAssignmentService — DI-конструктор.
func NewAssignmentService(
	orders ports.OrderRepository,
	menu ports.MenuSource,
	resolver ports.AddressResolver,
	log ports.Logger,
) *AssignmentService {
	return &AssignmentService{
		orders:   orders,
		menu:     menu,
		resolver: resolver,
		log:      log,
	}
}

// OrderCards — батч целиком: незавершённые заказы без назначенного ресторана,
// для каждого — рестораны, способные приготовить весь заказ, отсортированные
// по расстоянию до адреса доставки.
//
// Ошибки геокодирования не валят батч: кандидат без координат помечается
// DistanceError и уходит в конец списка. Жёсткая ошибка (битые данные в кэше
// или отказ хранилища) — единственное, что прерывает построение.
func (s *AssignmentService) OrderCards(ctx context.Context) ([]domain.OrderCard, error) {
	start := time.Now()

	pending, err := s.orders.ListPending(ctx)
	if err != nil {
		return nil, fmt.Errorf("list pending orders: %w", err)
	}

	rows, err := s.menu.AvailabilityRows(ctx)
	if err != nil {
		return nil, fmt.Errorf("load menu snapshot: %w", err)
	}
	idx := domain.BuildMenuIndex(rows)

	// Заказы с уже назначенным рестораном в отчёт не попадают:
	// менеджеру они больше не нужны.
	cards := make([]domain.OrderCard, 0, len(pending))
	for _, order := range pending {
		if order.Assigned() {
			continue
		}

		productIDs := order.ProductIDs()
		if len(productIDs) == 0 {
			s.log.Warnf(ctx, "order without items in assignment batch id=%s", order.ID)
		}

		capable := idx.CapableRestaurants(productIDs)
		card := domain.OrderCard{Order: order, Candidates: make([]domain.Candidate, 0, len(capable))}
		for _, info := range capable {
			card.Candidates = append(card.Candidates, domain.Candidate{
				RestaurantID: info.ID,
				Name:         info.Name,
				Address:      info.Address,
				DistanceKm:   domain.UnresolvedDistanceKm,
			})
		}
		cards = append(cards, card)
	}

	// Объединение адресов батча и один поход в хранилище кэша.
	// Заказы без кандидатов в прогреве не участвуют — их геокодировать незачем.
	if err := s.warmAddresses(ctx, cards); err != nil {
		s.log.Warnf(ctx, "geocode warm-up failed err=%v", err)
	}

	for i := range cards {
		if err := s.rank(ctx, &cards[i]); err != nil {
			return nil, err
		}
	}

	metrics.AssignmentBatches.Inc()
	metrics.AssignmentBatchDuration.Observe(time.Since(start).Seconds())

	s.log.Infof(ctx, "assignment batch done orders=%d took=%s", len(cards), time.Since(start))
	return cards, nil
}

// warmAddresses — собрать уникальные адреса батча (доставка + кандидаты)
// и прогреть кэш одним чтением.
func (s *AssignmentService) warmAddresses(ctx context.Context, cards []domain.OrderCard) error {
	seen := make(map[string]struct{})
	var addresses []string
	add := func(addr string) {
		if _, ok := seen[addr]; ok {
			return
		}
		seen[addr] = struct{}{}
		addresses = append(addresses, addr)
	}

	for i := range cards {
		if len(cards[i].Candidates) == 0 {
			continue
		}
		add(cards[i].Order.Address)
		for _, c := range cards[i].Candidates {
			add(c.Address)
		}
	}
	if len(addresses) == 0 {
		return nil
	}
	return s.resolver.WarmUp(ctx, addresses)
}

// rank — посчитать дистанции кандидатов одной карточки и отсортировать.
//
// Если адрес доставки не разрешён, все кандидаты получают DistanceError:
// сортировать нечего, порядок меню сохраняется. Отказ по адресу отдельного
// ресторана помечает только этого кандидата.
func (s *AssignmentService) rank(ctx context.Context, card *domain.OrderCard) error {
	if len(card.Candidates) == 0 {
		return nil
	}

	orderCoords, orderOK, err := s.resolver.Resolve(ctx, card.Order.Address)
	if err != nil {
		return fmt.Errorf("resolve order address %q: %w", card.Order.Address, err)
	}
	if !orderOK {
		metrics.AssignmentUnrankedOrders.Inc()
		s.log.Warnf(ctx, "order address not geocoded id=%s address=%q", card.Order.ID, card.Order.Address)
		for i := range card.Candidates {
			card.Candidates[i].DistanceError = true
		}
		return nil
	}

	allFailed := true
	for i := range card.Candidates {
		c := &card.Candidates[i]
		coords, ok, err := s.resolver.Resolve(ctx, c.Address)
		if err != nil {
			return fmt.Errorf("resolve restaurant address %q: %w", c.Address, err)
		}
		if !ok {
			c.DistanceError = true
			continue
		}
		c.DistanceKm = orderCoords.DistanceKm(coords)
		allFailed = false
	}

	// Все кандидаты без координат — сортировка ничего не даст,
	// оставляем порядок меню.
	if allFailed {
		return nil
	}

	sort.SliceStable(card.Candidates, func(i, j int) bool {
		a, b := card.Candidates[i], card.Candidates[j]
		if a.DistanceError != b.DistanceError {
			return !a.DistanceError // ошибочные в конец
		}
		return a.DistanceKm < b.DistanceKm
	})
	return nil
}
