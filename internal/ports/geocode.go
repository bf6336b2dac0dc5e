package ports

import (
	"context"

	"github.com/Gunvolt24/star_burger/internal/domain"
)

// LocationStore — персистентное KV-хранилище геокэша (ключ — текст адреса).
// Запись перезаписывает существующую (last-write-wins).
type LocationStore interface {
	GetMany(ctx context.Context, addresses []string) (map[string]domain.Location, error)
	Upsert(ctx context.Context, loc domain.Location) error
}

// GeocodeProvider — внешний геокодер. Медленный сетевой вызов;
// любая его ошибка (сеть, нет результата) для вызывающего кода не фатальна.
type GeocodeProvider interface {
	Geocode(ctx context.Context, address string) (domain.Coordinates, error)
}

// AddressResolver — кэширующее разрешение адреса в координаты.
// ok == false — адрес не разрешён (мягкий отказ, уже залогирован);
// err != nil — только жёсткие ошибки (битые данные в кэше).
type AddressResolver interface {
	Resolve(ctx context.Context, address string) (coords domain.Coordinates, ok bool, err error)

	// WarmUp — прогреть кэш набором адресов одним чтением хранилища.
	// Оптимизация, не условие корректности: ошибка не мешает Resolve.
	WarmUp(ctx context.Context, addresses []string) error
}
