package geocode_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Gunvolt24/star_burger/internal/domain"
	"github.com/Gunvolt24/star_burger/internal/geocode"
	"github.com/Gunvolt24/star_burger/internal/ports/mocks"
	"github.com/golang/mock/gomock"
)

type noopLogger struct{}

func (noopLogger) Infof(context.Context, string, ...any)  {}
func (noopLogger) Warnf(context.Context, string, ...any)  {}
func (noopLogger) Errorf(context.Context, string, ...any) {}

func TestResolve_StoreHit_NoProviderCall(t *testing.T) {
	ctrl := gomock.NewController(t)

	store := mocks.NewMockLocationStore(ctrl)
	provider := mocks.NewMockGeocodeProvider(ctrl)

	want := domain.Coordinates{Lat: 55.75, Lon: 37.61}
	store.EXPECT().GetMany(gomock.Any(), []string{"Addr-A"}).Return(map[string]domain.Location{
		"Addr-A": {Address: "Addr-A", Coords: want, UpdatedAt: time.Now()},
	}, nil)
	provider.EXPECT().Geocode(gomock.Any(), gomock.Any()).Times(0)

	r := geocode.NewCachedResolver(store, provider, noopLogger{})

	coords, ok, err := r.Resolve(context.Background(), "Addr-A")
	if err != nil || !ok || coords != want {
		t.Fatalf("want hit with %+v, got coords=%+v ok=%v err=%v", want, coords, ok, err)
	}
}

func TestResolve_Miss_CallsProviderOnceAndPersists(t *testing.T) {
	ctrl := gomock.NewController(t)

	store := mocks.NewMockLocationStore(ctrl)
	provider := mocks.NewMockGeocodeProvider(ctrl)

	want := domain.Coordinates{Lat: 55.0, Lon: 37.0}

	// Первый Resolve: промах в хранилище, успех провайдера, запись в кэш.
	store.EXPECT().GetMany(gomock.Any(), []string{"Addr-A"}).Return(map[string]domain.Location{}, nil)
	provider.EXPECT().Geocode(gomock.Any(), "Addr-A").Return(want, nil).Times(1)
	store.EXPECT().Upsert(gomock.Any(), gomock.AssignableToTypeOf(domain.Location{})).
		DoAndReturn(func(_ context.Context, loc domain.Location) error {
			if loc.Address != "Addr-A" || loc.Coords != want {
				t.Fatalf("unexpected upsert: %+v", loc)
			}
			if loc.UpdatedAt.IsZero() {
				t.Fatalf("updated_at must be set")
			}
			return nil
		})

	r := geocode.NewCachedResolver(store, provider, noopLogger{})

	coords, ok, err := r.Resolve(context.Background(), "Addr-A")
	if err != nil || !ok || coords != want {
		t.Fatalf("first resolve: coords=%+v ok=%v err=%v", coords, ok, err)
	}

	// Повторный Resolve того же адреса — без обращений к хранилищу и провайдеру.
	coords, ok, err = r.Resolve(context.Background(), "Addr-A")
	if err != nil || !ok || coords != want {
		t.Fatalf("second resolve: coords=%+v ok=%v err=%v", coords, ok, err)
	}
}

func TestResolve_ProviderFailure_SoftAndNoWrite(t *testing.T) {
	ctrl := gomock.NewController(t)

	store := mocks.NewMockLocationStore(ctrl)
	provider := mocks.NewMockGeocodeProvider(ctrl)

	store.EXPECT().GetMany(gomock.Any(), []string{"Addr-X"}).Return(map[string]domain.Location{}, nil)
	provider.EXPECT().Geocode(gomock.Any(), "Addr-X").Return(domain.Coordinates{}, errors.New("connection refused"))
	store.EXPECT().Upsert(gomock.Any(), gomock.Any()).Times(0)

	r := geocode.NewCachedResolver(store, provider, noopLogger{})

	_, ok, err := r.Resolve(context.Background(), "Addr-X")
	if err != nil {
		t.Fatalf("provider failure must be soft, got err=%v", err)
	}
	if ok {
		t.Fatalf("want unresolved")
	}
}

func TestResolve_FailureIsolatedBetweenAddresses(t *testing.T) {
	ctrl := gomock.NewController(t)

	store := mocks.NewMockLocationStore(ctrl)
	provider := mocks.NewMockGeocodeProvider(ctrl)

	want := domain.Coordinates{Lat: 1, Lon: 2}

	store.EXPECT().GetMany(gomock.Any(), []string{"Bad"}).Return(map[string]domain.Location{}, nil)
	provider.EXPECT().Geocode(gomock.Any(), "Bad").Return(domain.Coordinates{}, errors.New("no result"))

	store.EXPECT().GetMany(gomock.Any(), []string{"Good"}).Return(map[string]domain.Location{}, nil)
	provider.EXPECT().Geocode(gomock.Any(), "Good").Return(want, nil)
	store.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(nil)

	r := geocode.NewCachedResolver(store, provider, noopLogger{})

	if _, ok, _ := r.Resolve(context.Background(), "Bad"); ok {
		t.Fatalf("Bad must stay unresolved")
	}
	coords, ok, err := r.Resolve(context.Background(), "Good")
	if err != nil || !ok || coords != want {
		t.Fatalf("Good must resolve: coords=%+v ok=%v err=%v", coords, ok, err)
	}
}

func TestResolve_StaleEntry_FallsBackWhenRefreshFails(t *testing.T) {
	ctrl := gomock.NewController(t)

	store := mocks.NewMockLocationStore(ctrl)
	provider := mocks.NewMockGeocodeProvider(ctrl)

	old := domain.Coordinates{Lat: 10, Lon: 20}
	store.EXPECT().GetMany(gomock.Any(), []string{"Addr-A"}).Return(map[string]domain.Location{
		"Addr-A": {Address: "Addr-A", Coords: old, UpdatedAt: time.Now().Add(-48 * time.Hour)},
	}, nil)
	provider.EXPECT().Geocode(gomock.Any(), "Addr-A").Return(domain.Coordinates{}, errors.New("timeout"))
	store.EXPECT().Upsert(gomock.Any(), gomock.Any()).Times(0)

	r := geocode.NewCachedResolver(store, provider, noopLogger{}, geocode.WithTTL(time.Hour))

	coords, ok, err := r.Resolve(context.Background(), "Addr-A")
	if err != nil || !ok || coords != old {
		t.Fatalf("want stale fallback %+v, got coords=%+v ok=%v err=%v", old, coords, ok, err)
	}
}

func TestResolve_CorruptStoredCoordinates_HardError(t *testing.T) {
	ctrl := gomock.NewController(t)

	store := mocks.NewMockLocationStore(ctrl)
	provider := mocks.NewMockGeocodeProvider(ctrl)

	store.EXPECT().GetMany(gomock.Any(), []string{"Addr-A"}).Return(map[string]domain.Location{
		"Addr-A": {Address: "Addr-A", Coords: domain.Coordinates{Lat: 120, Lon: 37}, UpdatedAt: time.Now()},
	}, nil)
	provider.EXPECT().Geocode(gomock.Any(), gomock.Any()).Times(0)

	r := geocode.NewCachedResolver(store, provider, noopLogger{})

	_, ok, err := r.Resolve(context.Background(), "Addr-A")
	if ok || !errors.Is(err, geocode.ErrBadStoredCoordinates) {
		t.Fatalf("want ErrBadStoredCoordinates, got ok=%v err=%v", ok, err)
	}
}

func TestResolve_StoreReadFailure_DegradesToProvider(t *testing.T) {
	ctrl := gomock.NewController(t)

	store := mocks.NewMockLocationStore(ctrl)
	provider := mocks.NewMockGeocodeProvider(ctrl)

	want := domain.Coordinates{Lat: 5, Lon: 6}
	store.EXPECT().GetMany(gomock.Any(), []string{"Addr-A"}).Return(nil, errors.New("db down"))
	provider.EXPECT().Geocode(gomock.Any(), "Addr-A").Return(want, nil)
	store.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(errors.New("db down"))

	r := geocode.NewCachedResolver(store, provider, noopLogger{})

	coords, ok, err := r.Resolve(context.Background(), "Addr-A")
	if err != nil || !ok || coords != want {
		t.Fatalf("want degradation to provider: coords=%+v ok=%v err=%v", coords, ok, err)
	}
}

func TestWarmUp_PrimesHotMap(t *testing.T) {
	ctrl := gomock.NewController(t)

	store := mocks.NewMockLocationStore(ctrl)
	provider := mocks.NewMockGeocodeProvider(ctrl)

	want := domain.Coordinates{Lat: 55.1, Lon: 37.2}
	store.EXPECT().GetMany(gomock.Any(), []string{"Addr-A", "Addr-B"}).Return(map[string]domain.Location{
		"Addr-A": {Address: "Addr-A", Coords: want, UpdatedAt: time.Now()},
	}, nil)
	provider.EXPECT().Geocode(gomock.Any(), gomock.Any()).Times(0)

	r := geocode.NewCachedResolver(store, provider, noopLogger{})

	if err := r.WarmUp(context.Background(), []string{" Addr-A ", "Addr-B", "Addr-A", ""}); err != nil {
		t.Fatalf("warm up: %v", err)
	}

	// Прогретый адрес разрешается без обращений к хранилищу.
	coords, ok, err := r.Resolve(context.Background(), "Addr-A")
	if err != nil || !ok || coords != want {
		t.Fatalf("warmed resolve: coords=%+v ok=%v err=%v", coords, ok, err)
	}
}

func TestResolve_EmptyAddress(t *testing.T) {
	ctrl := gomock.NewController(t)

	store := mocks.NewMockLocationStore(ctrl)
	provider := mocks.NewMockGeocodeProvider(ctrl)

	r := geocode.NewCachedResolver(store, provider, noopLogger{})

	_, ok, err := r.Resolve(context.Background(), "   ")
	if ok || err != nil {
		t.Fatalf("empty address: ok=%v err=%v", ok, err)
	}
}
