package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"markethub/internal/container"
	handlers "markethub/internal/interface/http"
	"markethub/internal/interface/middleware"
)

// UserModule wires user CRUD routes.
// POST /api/users, GET /api/users, GET/PUT/DELETE /api/users/:id

type UserModule struct {
	Handler *handlers.UserHandler
}

func NewUserModule(h *handlers.UserHandler) *UserModule {
	return &UserModule{Handler: h}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	writeLimiter := middleware.RateLimit(container.GetRedis(), 60, time.Minute, middleware.KeyByIPAndPath(), middleware.AllowPrivateIP())

	users := rg.Group("/users")
	{
		users.POST("", writeLimiter, m.Handler.Create)
		users.GET("", m.Handler.GetAll)
		users.GET("/:id", m.Handler.GetByID)
		users.PUT("/:id", writeLimiter, m.Handler.Update)
		users.DELETE("/:id", writeLimiter, m.Handler.Delete)
	}
}
