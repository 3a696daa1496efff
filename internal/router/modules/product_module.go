package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"markethub/internal/container"
	handlers "markethub/internal/interface/http"
	"markethub/internal/interface/middleware"
)

// ProductModule wires product CRUD routes.
// POST /api/products, GET /api/products, GET/PUT/DELETE /api/products/:id

type ProductModule struct {
	Handler *handlers.ProductHandler
}

func NewProductModule(h *handlers.ProductHandler) *ProductModule {
	return &ProductModule{Handler: h}
}

func (m *ProductModule) Register(rg *gin.RouterGroup) {
	writeLimiter := middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByIPAndPath(), middleware.AllowPrivateIP())

	products := rg.Group("/products")
	{
		products.POST("", writeLimiter, m.Handler.Create)
		products.GET("", m.Handler.GetAll)
		products.GET("/:id", m.Handler.GetByID)
		products.PUT("/:id", writeLimiter, m.Handler.Update)
		products.DELETE("/:id", writeLimiter, m.Handler.Delete)
	}
}
