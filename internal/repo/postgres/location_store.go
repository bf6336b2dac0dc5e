package postgres

import (
	"context"
	"fmt"

	"github.com/Gunvolt24/star_burger/internal/domain"
	"github.com/Gunvolt24/star_burger/internal/ports"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Проверка, что LocationStore удовлетворяет интерфейсу LocationStore.
var _ ports.LocationStore = (*LocationStore)(nil)

// LocationStore — персистентный геокэш в таблице geocode_cache.
// Ключ — точный текст адреса; координаты перезаписываются last-write-wins.
type LocationStore struct {
	pool *pgxpool.Pool
}

// NewLocationStore — конструктор LocationStore.
func NewLocationStore(pool *pgxpool.Pool) *LocationStore { return &LocationStore{pool: pool} }

// GetMany — батч-чтение по списку адресов одним запросом.
// Отсутствующие адреса просто не попадают в результат.
func (s *LocationStore) GetMany(ctx context.Context, addresses []string) (map[string]domain.Location, error) {
	result := make(map[string]domain.Location, len(addresses))
	if len(addresses) == 0 {
		return result, nil
	}

	rows, err := s.pool.Query(ctx, `
		SELECT address, lat, lon, updated_at
		FROM geocode_cache
		WHERE address = ANY($1::text[])
	`, addresses)
	if err != nil {
		return nil, fmt.Errorf("select locations: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var loc domain.Location
		if err := rows.Scan(&loc.Address, &loc.Coords.Lat, &loc.Coords.Lon, &loc.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan location: %w", err)
		}
		result[loc.Address] = loc
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("location rows: %w", err)
	}
	return result, nil
}

// Upsert — записать координаты адреса, перезаписывая существующие.
func (s *LocationStore) Upsert(ctx context.Context, loc domain.Location) error {
	if _, err := s.pool.Exec(ctx, `
		INSERT INTO geocode_cache (address, lat, lon, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (address) DO UPDATE SET
			lat = EXCLUDED.lat,
			lon = EXCLUDED.lon,
			updated_at = EXCLUDED.updated_at
	`, loc.Address, loc.Coords.Lat, loc.Coords.Lon, loc.UpdatedAt); err != nil {
		return fmt.Errorf("upsert location: %w", err)
	}
	return nil
}
