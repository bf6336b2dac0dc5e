package yandex_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Gunvolt24/star_burger/internal/geocode/yandex"
)

const okBody = `{
	"response": {
		"GeoObjectCollection": {
			"featureMember": [
				{"GeoObject": {"Point": {"pos": "37.617698 55.755864"}}}
			]
		}
	}
}`

const emptyBody = `{
	"response": {"GeoObjectCollection": {"featureMember": []}}
}`

func TestGeocode_OK(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("geocode"); got != "Москва, Красная площадь" {
			t.Errorf("unexpected geocode param: %q", got)
		}
		if got := r.URL.Query().Get("apikey"); got != "test-key" {
			t.Errorf("unexpected apikey: %q", got)
		}
		if got := r.URL.Query().Get("format"); got != "json" {
			t.Errorf("unexpected format: %q", got)
		}
		_, _ = w.Write([]byte(okBody))
	}))
	defer srv.Close()

	c := yandex.NewClient("test-key", yandex.WithBaseURL(srv.URL))

	coords, err := c.Geocode(context.Background(), "Москва, Красная площадь")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if coords.Lat != 55.755864 || coords.Lon != 37.617698 {
		t.Fatalf("wrong coordinates: %+v", coords)
	}
}

func TestGeocode_NoResult(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(emptyBody))
	}))
	defer srv.Close()

	c := yandex.NewClient("test-key", yandex.WithBaseURL(srv.URL))

	_, err := c.Geocode(context.Background(), "несуществующий адрес")
	if err == nil {
		t.Fatalf("want error for empty result")
	}
}

func TestGeocode_BadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	c := yandex.NewClient("bad-key", yandex.WithBaseURL(srv.URL))

	if _, err := c.Geocode(context.Background(), "Addr"); err == nil {
		t.Fatalf("want error for non-200 status")
	}
}

func TestGeocode_MalformedPoint(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"response":{"GeoObjectCollection":{"featureMember":[{"GeoObject":{"Point":{"pos":"oops"}}}]}}}`))
	}))
	defer srv.Close()

	c := yandex.NewClient("test-key", yandex.WithBaseURL(srv.URL))

	if _, err := c.Geocode(context.Background(), "Addr"); err == nil {
		t.Fatalf("want error for malformed point")
	}
}

func TestGeocode_ContextCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(okBody))
	}))
	defer srv.Close()

	c := yandex.NewClient("test-key", yandex.WithBaseURL(srv.URL))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := c.Geocode(ctx, "Addr"); err == nil {
		t.Fatalf("want error for cancelled context")
	}
}
