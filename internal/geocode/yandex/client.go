package yandex

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/Gunvolt24/star_burger/internal/domain"
	"github.com/Gunvolt24/star_burger/internal/ports"
)

// Проверка, что Client удовлетворяет интерфейсу GeocodeProvider.
var _ ports.GeocodeProvider = (*Client)(nil)

// ErrNoResult — геокодер не нашёл адрес.
var ErrNoResult = errors.New("yandex: no geocode results")

const defaultBaseURL = "https://geocode-maps.yandex.ru/1.x/"

// Client — клиент геокодера Яндекса (формат ответа 1.x, format=json).
type Client struct {
	httpClient *http.Client
	apiKey     string
	baseURL    string
}

type Option func(*Client)

// WithBaseURL — подмена эндпоинта (для тестов и прокси).
func WithBaseURL(u string) Option {
	return func(c *Client) {
		if u != "" {
			c.baseURL = u
		}
	}
}

// WithHTTPClient — свой http.Client (таймауты, транспорт).
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		if h != nil {
			c.httpClient = h
		}
	}
}

// NewClient — конструктор. Таймаут клиента здесь страховочный: рабочий
// дедлайн задаёт вызывающая сторона через контекст.
func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		apiKey:     apiKey,
		baseURL:    defaultBaseURL,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// geocodeResponse — интересующая нас часть ответа 1.x.
// Точка приходит строкой "долгота широта" в поле pos.
type geocodeResponse struct {
	Response struct {
		GeoObjectCollection struct {
			FeatureMember []struct {
				GeoObject struct {
					Point struct {
						Pos string `json:"pos"`
					} `json:"Point"`
				} `json:"GeoObject"`
			} `json:"featureMember"`
		} `json:"GeoObjectCollection"`
	} `json:"response"`
}

// Geocode — разрешить адрес в координаты. Берётся первый результат выдачи.
func (c *Client) Geocode(ctx context.Context, address string) (domain.Coordinates, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL, nil)
	if err != nil {
		return domain.Coordinates{}, fmt.Errorf("yandex: build request: %w", err)
	}

	q := url.Values{}
	q.Set("apikey", c.apiKey)
	q.Set("geocode", address)
	q.Set("format", "json")
	q.Set("results", "1")
	req.URL.RawQuery = q.Encode()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domain.Coordinates{}, fmt.Errorf("yandex: execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return domain.Coordinates{}, fmt.Errorf("yandex: unexpected status %d", resp.StatusCode)
	}

	var decoded geocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return domain.Coordinates{}, fmt.Errorf("yandex: decode response: %w", err)
	}

	members := decoded.Response.GeoObjectCollection.FeatureMember
	if len(members) == 0 {
		return domain.Coordinates{}, fmt.Errorf("%w: %q", ErrNoResult, address)
	}

	return parsePos(members[0].GeoObject.Point.Pos)
}

// parsePos — разбор "lon lat" в координаты.
func parsePos(pos string) (domain.Coordinates, error) {
	fields := strings.Fields(pos)
	if len(fields) != 2 {
		return domain.Coordinates{}, fmt.Errorf("yandex: malformed point %q", pos)
	}
	lon, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return domain.Coordinates{}, fmt.Errorf("yandex: malformed longitude %q: %w", fields[0], err)
	}
	lat, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return domain.Coordinates{}, fmt.Errorf("yandex: malformed latitude %q: %w", fields[1], err)
	}
	return domain.Coordinates{Lat: lat, Lon: lon}, nil
}
