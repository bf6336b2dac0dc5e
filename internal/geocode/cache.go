package geocode

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/Gunvolt24/star_burger/internal/domain"
	"github.com/Gunvolt24/star_burger/internal/ports"
	"github.com/Gunvolt24/star_burger/pkg/metrics"
)

// Проверка, что CachedResolver удовлетворяет интерфейсу AddressResolver.
var _ ports.AddressResolver = (*CachedResolver)(nil)

// ErrBadStoredCoordinates — в хранилище лежат координаты вне допустимых
// диапазонов. Это ошибка данных, а не геокодера: молча пропустить её —
// значит незаметно исказить ранжирование по дистанции.
var ErrBadStoredCoordinates = errors.New("stored coordinates are out of range")

const defaultProviderTimeout = 3 * time.Second

// CachedResolver — разрешение адресов в координаты поверх персистентного
// кэша. Чтение: процессная карта → хранилище → провайдер. Успешный ответ
// провайдера персистится; отказ провайдера (сеть, нет результата, таймаут) —
// мягкий: ничего не пишем, логируем, возвращаем ok=false.
//
// Ключ кэша — адрес после TrimSpace; иные текстовые варианты одного
// физического адреса намеренно считаются разными ключами.
type CachedResolver struct {
	store    ports.LocationStore
	provider ports.GeocodeProvider
	log      ports.Logger
	timeout  time.Duration // бюджет на один вызов провайдера
	ttl      time.Duration // 0 — записи не устаревают

	mu       sync.Mutex
	hot      map[string]domain.Location // прочитанное/записанное в этом процессе
	inflight map[string]chan struct{}   // де-дупликация одновременных запросов одного адреса
}

type Option func(*CachedResolver)

// WithTimeout — бюджет на один вызов провайдера (защита от зависшего геокодера).
func WithTimeout(d time.Duration) Option {
	return func(r *CachedResolver) {
		if d > 0 {
			r.timeout = d
		}
	}
}

// WithTTL — срок годности записи кэша; 0 — кэшировать бессрочно.
// Устаревшая запись перезапрашивается у провайдера, но остаётся рабочим
// фолбэком, пока перезапрос не удался.
func WithTTL(d time.Duration) Option {
	return func(r *CachedResolver) {
		if d > 0 {
			r.ttl = d
		}
	}
}

// NewCachedResolver — DI-конструктор.
func NewCachedResolver(store ports.LocationStore, provider ports.GeocodeProvider, log ports.Logger, opts ...Option) *CachedResolver {
	r := &CachedResolver{
		store:    store,
		provider: provider,
		log:      log,
		timeout:  defaultProviderTimeout,
		hot:      make(map[string]domain.Location),
		inflight: make(map[string]chan struct{}),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve — координаты адреса.
// ok == false — адрес не разрешён (провайдер недоступен/не нашёл; уже залогировано).
// err != nil — только при битых данных в кэше (ErrBadStoredCoordinates).
func (r *CachedResolver) Resolve(ctx context.Context, address string) (domain.Coordinates, bool, error) {
	addr := strings.TrimSpace(address)
	if addr == "" {
		return domain.Coordinates{}, false, nil
	}

	loc, cached := r.cached(ctx, addr)
	if cached {
		if !loc.Coords.Valid() {
			return domain.Coordinates{}, false, fmt.Errorf("%w: address=%q lat=%v lon=%v",
				ErrBadStoredCoordinates, addr, loc.Coords.Lat, loc.Coords.Lon)
		}
		if r.fresh(loc) {
			metrics.GeocodeCacheOps.WithLabelValues("hit").Inc()
			return loc.Coords, true, nil
		}
		metrics.GeocodeCacheOps.WithLabelValues("stale").Inc()
	} else {
		metrics.GeocodeCacheOps.WithLabelValues("miss").Inc()
	}

	if coords, ok := r.refresh(ctx, addr); ok {
		return coords, true, nil
	}
	if cached {
		// Перезапрос устаревшей записи не удался — остаёмся на старых координатах.
		return loc.Coords, true, nil
	}
	return domain.Coordinates{}, false, nil
}

// WarmUp — прогрев процессной карты одним чтением хранилища.
// Промахи останутся промахами и разрешатся через провайдера в Resolve.
func (r *CachedResolver) WarmUp(ctx context.Context, addresses []string) error {
	uniq := uniqueTrimmed(addresses)
	if len(uniq) == 0 {
		return nil
	}
	found, err := r.store.GetMany(ctx, uniq)
	if err != nil {
		return fmt.Errorf("warm up geocode cache: %w", err)
	}
	r.mu.Lock()
	for addr, loc := range found {
		r.hot[addr] = loc
	}
	r.mu.Unlock()
	return nil
}

// cached — запись из процессной карты или из хранилища.
// Ошибка чтения хранилища — деградация до провайдера, не отказ.
func (r *CachedResolver) cached(ctx context.Context, addr string) (domain.Location, bool) {
	r.mu.Lock()
	loc, ok := r.hot[addr]
	r.mu.Unlock()
	if ok {
		return loc, true
	}

	found, err := r.store.GetMany(ctx, []string{addr})
	if err != nil {
		r.log.Warnf(ctx, "geocode cache read failed address=%q err=%v", addr, err)
		return domain.Location{}, false
	}
	loc, ok = found[addr]
	if !ok {
		return domain.Location{}, false
	}
	r.mu.Lock()
	r.hot[addr] = loc
	r.mu.Unlock()
	return loc, true
}

// refresh — запрос провайдера с де-дупликацией и персист успешного ответа.
func (r *CachedResolver) refresh(ctx context.Context, addr string) (domain.Coordinates, bool) {
	r.mu.Lock()
	if ch, busy := r.inflight[addr]; busy {
		r.mu.Unlock()
		// Тот же адрес уже запрашивается — ждём и перечитываем карту.
		select {
		case <-ch:
		case <-ctx.Done():
			return domain.Coordinates{}, false
		}
		r.mu.Lock()
		loc, ok := r.hot[addr]
		r.mu.Unlock()
		if ok && loc.Coords.Valid() && r.fresh(loc) {
			return loc.Coords, true
		}
		return domain.Coordinates{}, false
	}
	ch := make(chan struct{})
	r.inflight[addr] = ch
	r.mu.Unlock()
	defer func() {
		r.mu.Lock()
		delete(r.inflight, addr)
		r.mu.Unlock()
		close(ch)
	}()

	callCtx, cancel := context.WithTimeout(ctx, r.timeout)
	coords, err := r.provider.Geocode(callCtx, addr)
	cancel()
	if err != nil {
		metrics.GeocoderCalls.WithLabelValues("error").Inc()
		r.log.Warnf(ctx, "geocode failed address=%q err=%v", addr, err)
		return domain.Coordinates{}, false
	}
	if !coords.Valid() {
		metrics.GeocoderCalls.WithLabelValues("error").Inc()
		r.log.Warnf(ctx, "geocoder returned out-of-range coordinates address=%q lat=%v lon=%v", addr, coords.Lat, coords.Lon)
		return domain.Coordinates{}, false
	}
	metrics.GeocoderCalls.WithLabelValues("ok").Inc()

	loc := domain.Location{Address: addr, Coords: coords, UpdatedAt: time.Now().UTC()}
	if err := r.store.Upsert(ctx, loc); err != nil {
		// Кэш не обновился, но координаты у нас есть — не фатально.
		r.log.Warnf(ctx, "geocode cache write failed address=%q err=%v", addr, err)
	}
	r.mu.Lock()
	r.hot[addr] = loc
	r.mu.Unlock()
	return coords, true
}

func (r *CachedResolver) fresh(loc domain.Location) bool {
	if r.ttl <= 0 {
		return true
	}
	return time.Since(loc.UpdatedAt) <= r.ttl
}

func uniqueTrimmed(addresses []string) []string {
	seen := make(map[string]struct{}, len(addresses))
	uniq := make([]string, 0, len(addresses))
	for _, a := range addresses {
		a = strings.TrimSpace(a)
		if a == "" {
			continue
		}
		if _, ok := seen[a]; ok {
			continue
		}
		seen[a] = struct{}{}
		uniq = append(uniq, a)
	}
	return uniq
}
