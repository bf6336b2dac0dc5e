package rest

import (
	"path/filepath"

	"github.com/Gunvolt24/star_burger/pkg/httpx"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

// NewRouter — маршруты и middleware-цепочка.
// otelServiceName != "" включает серверные спаны (otelgin).
func NewRouter(h *Handler, staticDir, otelServiceName string) *gin.Engine {
	r := gin.New()
	r.HandleMethodNotAllowed = true

	r.Use(gin.Recovery())
	if otelServiceName != "" {
		r.Use(otelgin.Middleware(otelServiceName))
	}
	r.Use(httpx.RequestIDMiddleware())
	r.Use(httpx.RequestLogger(h.log))

	r.GET("/ping", func(c *gin.Context) { c.String(200, "pong") })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	{
		api.GET("/products", h.listProducts)
		api.POST("/orders", h.registerOrder)
		api.GET("/orders/:id", h.getOrderByID)
		api.POST("/orders/:id/assign", h.assignOrder)
		api.GET("/assignments", h.listAssignments)
	}

	if staticDir != "" {
		r.Static("/static", staticDir)
		r.StaticFile("/", filepath.Join(staticDir, "index.html"))
	}

	return r
}
