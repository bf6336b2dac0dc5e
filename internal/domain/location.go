package domain

import (
	"math"
	"time"
)

const earthRadiusKm = 6371.0

// Coordinates — географические координаты (широта/долгота в градусах).
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Valid — координаты в допустимых диапазонах.
func (c Coordinates) Valid() bool {
	return c.Lat >= -90 && c.Lat <= 90 && c.Lon >= -180 && c.Lon <= 180
}

// DistanceKm — расстояние по большому кругу (формула гаверсинуса), км.
func (c Coordinates) DistanceKm(other Coordinates) float64 {
	lat1 := c.Lat * math.Pi / 180
	lat2 := other.Lat * math.Pi / 180
	dLat := (other.Lat - c.Lat) * math.Pi / 180
	dLon := (other.Lon - c.Lon) * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	return earthRadiusKm * 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}

// Location — запись геокэша: адрес (ключ) и его координаты.
// На один адрес существует не более одной записи; два текстовых варианта
// одного физического адреса — разные ключи (нормализация — только TrimSpace).
type Location struct {
	Address   string      `json:"address"`
	Coords    Coordinates `json:"coords"`
	UpdatedAt time.Time   `json:"updated_at"`
}
