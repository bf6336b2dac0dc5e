//go:build !integration

package rest

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Gunvolt24/star_burger/internal/domain"
	"github.com/Gunvolt24/star_burger/pkg/httpx"
)

type nopLogger struct{}

func (nopLogger) Infof(context.Context, string, ...any)  {}
func (nopLogger) Warnf(context.Context, string, ...any)  {}
func (nopLogger) Errorf(context.Context, string, ...any) {}

// Стабы сервисов: весь ответ готовится в памяти, меряем только HTTP-слой.

type ordersStub struct{ o *domain.Order }

func (s ordersStub) Register(context.Context, *domain.Order) (string, error) { return s.o.ID, nil }
func (s ordersStub) GetOrder(context.Context, string) (*domain.Order, error) { return s.o, nil }
func (ordersStub) AssignRestaurant(context.Context, string, int64) error     { return nil }

type productsStub struct{ list []domain.Product }

func (s productsStub) AvailableProducts(context.Context) ([]domain.Product, error) {
	return s.list, nil
}

type assignmentsStub struct{ cards []domain.OrderCard }

func (s assignmentsStub) OrderCards(context.Context) ([]domain.OrderCard, error) {
	return s.cards, nil
}

func benchCards(orders, candidates int) []domain.OrderCard {
	cards := make([]domain.OrderCard, 0, orders)
	for i := 0; i < orders; i++ {
		card := domain.OrderCard{
			Order: &domain.Order{
				ID:          fmt.Sprintf("order-%04d", i),
				Firstname:   "Иван",
				Phonenumber: "+79991234567",
				Address:     "Москва, ул. Ленина, 1",
				Status:      domain.StatusUnprocessed,
				Items:       []domain.OrderItem{{ProductID: 1, Quantity: 2, Price: 250}},
			},
		}
		for j := 0; j < candidates; j++ {
			card.Candidates = append(card.Candidates, domain.Candidate{
				RestaurantID: int64(j + 1),
				Name:         fmt.Sprintf("Ресторан %d", j+1),
				Address:      fmt.Sprintf("Москва, улица %d", j+1),
				DistanceKm:   float64(j) * 1.5,
			})
		}
		cards = append(cards, card)
	}
	return cards
}

func makeLeanRouter(h *Handler) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.GET("/api/assignments", h.listAssignments)
	r.GET("/api/orders/:id", h.getOrderByID)
	return r
}

func makeFullRouter(h *Handler) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(httpx.RequestIDMiddleware())
	r.Use(httpx.RequestLogger(h.log))
	r.GET("/api/assignments", h.listAssignments)
	r.GET("/api/orders/:id", h.getOrderByID)
	return r
}

func benchServeGET(b *testing.B, r http.Handler, path string) {
	b.Helper()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		req := httptest.NewRequest(http.MethodGet, path, http.NoBody)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			b.Fatalf("status %d", w.Code)
		}
		_, _ = io.Copy(io.Discard, w.Body)
	}
}

// Базовый бенч: отчёт по назначениям — сравниваем LEAN vs FULL пайплайн
func BenchmarkHTTP_Assignments(b *testing.B) {
	for _, shape := range []struct{ orders, candidates int }{
		{10, 3}, {50, 5}, {100, 10},
	} {
		h := NewHandler(
			ordersStub{o: &domain.Order{ID: "bench"}},
			productsStub{},
			assignmentsStub{cards: benchCards(shape.orders, shape.candidates)},
			nopLogger{}, 2*time.Second,
		)
		lean := makeLeanRouter(h)
		full := makeFullRouter(h)

		// limit выше любой формы — меряем сериализацию всего отчёта
		name := fmt.Sprintf("%dx%d", shape.orders, shape.candidates)
		b.Run("lean/"+name, func(b *testing.B) {
			benchServeGET(b, lean, "/api/assignments?limit=500")
		})
		b.Run("full/"+name, func(b *testing.B) {
			benchServeGET(b, full, "/api/assignments?limit=500")
		})
	}
}

// Потолок без маршалинга: тот же отчёт, но заранее закодированный JSON.
// Показывает, сколько «ест» encoding/json в хендлере.
func BenchmarkHTTP_Assignments_PreMarshaledBytes(b *testing.B) {
	raw, _ := json.Marshal(benchCards(50, 5))

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.GET("/api/assignments", func(c *gin.Context) {
		c.Data(http.StatusOK, "application/json", raw)
	})

	benchServeGET(b, r, "/api/assignments")
}

// Одиночный заказ: дешёвый хендлер, виден оверхед middleware-цепочки
func BenchmarkHTTP_GetOrder(b *testing.B) {
	ord := &domain.Order{
		ID:          "bench-order",
		Firstname:   "Иван",
		Phonenumber: "+79991234567",
		Address:     "Москва, ул. Ленина, 1",
		Items:       []domain.OrderItem{{ProductID: 1, Quantity: 1, Price: 250}},
	}
	h := NewHandler(ordersStub{o: ord}, productsStub{}, assignmentsStub{}, nopLogger{}, 2*time.Second)

	lean := makeLeanRouter(h)
	full := makeFullRouter(h)

	b.Run("lean/no-mw", func(b *testing.B) {
		benchServeGET(b, lean, "/api/orders/bench-order")
	})
	b.Run("full/prod-mw", func(b *testing.B) {
		benchServeGET(b, full, "/api/orders/bench-order")
	})
}
