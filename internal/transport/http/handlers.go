package rest

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/Gunvolt24/star_burger/internal/domain"
	"github.com/Gunvolt24/star_burger/internal/ports"
	"github.com/Gunvolt24/star_burger/pkg/httpx"
	"github.com/Gunvolt24/star_burger/pkg/validate"
	"github.com/gin-gonic/gin"
)

// Handler — HTTP-обработчики поверх прикладных сервисов.
type Handler struct {
	orders      ports.OrderIntakeService
	products    ports.ProductReadService
	assignments ports.AssignmentReadService
	log         ports.Logger
	timeout     time.Duration // 0 — без дедлайна на обработчик
}

// NewHandler — DI-конструктор.
func NewHandler(
	orders ports.OrderIntakeService,
	products ports.ProductReadService,
	assignments ports.AssignmentReadService,
	log ports.Logger,
	timeout time.Duration,
) *Handler {
	return &Handler{
		orders:      orders,
		products:    products,
		assignments: assignments,
		log:         log,
		timeout:     timeout,
	}
}

// requestContext — контекст запроса с опциональным дедлайном обработчика.
func (h *Handler) requestContext(c *gin.Context) (context.Context, context.CancelFunc) {
	if h.timeout <= 0 {
		return c.Request.Context(), func() {}
	}
	return context.WithTimeout(c.Request.Context(), h.timeout)
}

// registerOrderRequest — тело POST /api/orders (позиции без цены:
// цена фиксируется из каталога на момент оформления).
type registerOrderRequest struct {
	Firstname     string `json:"firstname" binding:"required"`
	Lastname      string `json:"lastname"`
	Phonenumber   string `json:"phonenumber" binding:"required"`
	Address       string `json:"address" binding:"required"`
	Comment       string `json:"comment"`
	PaymentMethod string `json:"payment_method"`
	Products      []struct {
		ProductID int64 `json:"product" binding:"required"`
		Quantity  int   `json:"quantity" binding:"required"`
	} `json:"products" binding:"required,min=1"`
}

func (h *Handler) registerOrder(c *gin.Context) {
	var req registerOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := h.requestContext(c)
	defer cancel()

	// Снимок цен из каталога: цена позиции фиксируется на момент заказа.
	catalog, err := h.products.AvailableProducts(ctx)
	if err != nil {
		h.log.Errorf(ctx, "AvailableProducts failed err=%v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	prices := make(map[int64]float64, len(catalog))
	for _, p := range catalog {
		prices[p.ID] = p.Price
	}

	order := &domain.Order{
		Firstname:     req.Firstname,
		Lastname:      req.Lastname,
		Phonenumber:   req.Phonenumber,
		Address:       req.Address,
		Comment:       req.Comment,
		PaymentMethod: req.PaymentMethod,
	}
	for _, item := range req.Products {
		price, ok := prices[item.ProductID]
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown or unavailable product"})
			return
		}
		order.Items = append(order.Items, domain.OrderItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     price,
		})
	}

	id, err := h.orders.Register(ctx, order)
	if err != nil {
		if errors.Is(err, validate.ErrInvalidOrder) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.log.Errorf(ctx, "Register failed err=%v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id})
}

func (h *Handler) getOrderByID(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "empty id"})
		return
	}

	ctx, cancel := h.requestContext(c)
	defer cancel()

	order, err := h.orders.GetOrder(ctx, id)
	if err != nil {
		h.log.Errorf(ctx, "GetOrder failed id=%s err=%v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	if order == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
		return
	}
	c.JSON(http.StatusOK, order)
}

// assignOrderRequest — тело POST /api/orders/:id/assign.
type assignOrderRequest struct {
	RestaurantID int64 `json:"restaurant_id" binding:"required"`
}

func (h *Handler) assignOrder(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "empty id"})
		return
	}

	var req assignOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := h.requestContext(c)
	defer cancel()

	if err := h.orders.AssignRestaurant(ctx, id, req.RestaurantID); err != nil {
		h.log.Errorf(ctx, "AssignRestaurant failed id=%s err=%v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id, "restaurant_id": req.RestaurantID})
}

func (h *Handler) listProducts(c *gin.Context) {
	ctx, cancel := h.requestContext(c)
	defer cancel()

	products, err := h.products.AvailableProducts(ctx)
	if err != nil {
		h.log.Errorf(ctx, "AvailableProducts failed err=%v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	if products == nil {
		products = []domain.Product{}
	}
	c.JSON(http.StatusOK, products)
}

// Границы пагинации отчёта по назначениям.
const (
	defaultAssignmentsLimit = 50
	maxAssignmentsLimit     = 500
)

// listAssignments — отчёт менеджера: незавершённые заказы и для каждого —
// рестораны-кандидаты, отсортированные по расстоянию. Страница задаётся
// query-параметрами limit/offset; отчёт строится целиком (ранжирование
// батчевое), страница вырезается уже из готового среза.
func (h *Handler) listAssignments(c *gin.Context) {
	limit, offset := httpx.ParseLimitOffset(c, defaultAssignmentsLimit, maxAssignmentsLimit)

	ctx, cancel := h.requestContext(c)
	defer cancel()

	cards, err := h.assignments.OrderCards(ctx)
	if err != nil {
		h.log.Errorf(ctx, "OrderCards failed err=%v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	if offset >= len(cards) {
		cards = nil
	} else if end := offset + limit; end < len(cards) {
		cards = cards[offset:end]
	} else {
		cards = cards[offset:]
	}
	if cards == nil {
		cards = []domain.OrderCard{}
	}
	c.JSON(http.StatusOK, cards)
}
