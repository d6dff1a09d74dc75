package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/recipeshare/recipeshare/internal/container"
	handlers "github.com/recipeshare/recipeshare/internal/interface/http"
	"github.com/recipeshare/recipeshare/internal/interface/middleware"
	"github.com/recipeshare/recipeshare/pkg/helpers"
)

// CategoryModule wires the taxonomy routes
// Public: GET /api/categories
// Admin: POST /api/categories, PUT/DELETE /api/categories/:id

type CategoryModule struct {
	Handler *handlers.CategoryHandler
	JWT     *helpers.JWTManager
}

func NewCategoryModule(h *handlers.CategoryHandler, jwt *helpers.JWTManager) *CategoryModule {
	return &CategoryModule{Handler: h, JWT: jwt}
}

func (m *CategoryModule) Register(rg *gin.RouterGroup) {
	publicLimiter := middleware.RateLimit(container.GetRedis(), 300, time.Minute, middleware.KeyByIP())

	rg.GET("/categories", publicLimiter, m.Handler.List)

	admin := rg.Group("/")
	admin.Use(middleware.Auth(container.GetRedis(), m.JWT), middleware.RequireAdmin())
	{
		admin.POST("/categories", m.Handler.Create)
		admin.PUT("/categories/:id", m.Handler.Update)
		admin.DELETE("/categories/:id", m.Handler.Delete)
	}
}
