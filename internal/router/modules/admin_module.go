package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/recipeshare/recipeshare/internal/container"
	handlers "github.com/recipeshare/recipeshare/internal/interface/http"
	"github.com/recipeshare/recipeshare/internal/interface/middleware"
	"github.com/recipeshare/recipeshare/pkg/helpers"
)

// AdminModule wires the moderation console under /api/admin.
// Every route requires the ADMIN role.

type AdminModule struct {
	Handler *handlers.AdminHandler
	JWT     *helpers.JWTManager
}

func NewAdminModule(h *handlers.AdminHandler, jwt *helpers.JWTManager) *AdminModule {
	return &AdminModule{Handler: h, JWT: jwt}
}

func (m *AdminModule) Register(rg *gin.RouterGroup) {
	admin := rg.Group("/admin")
	admin.Use(middleware.Auth(container.GetRedis(), m.JWT), middleware.RequireAdmin())
	admin.Use(middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID()))
	{
		admin.GET("/recipes", m.Handler.ListRecipes)
		admin.PUT("/recipes/:id", m.Handler.ModerateRecipe)
		admin.POST("/recipes/bulk-delete", m.Handler.BulkDeleteRecipes)

		admin.GET("/users", m.Handler.ListUsers)
		admin.PUT("/users/:id/role", m.Handler.SetUserRole)
		admin.PUT("/users/:id/status", m.Handler.SetUserStatus)

		admin.GET("/stats", m.Handler.Stats)

		admin.GET("/settings", m.Handler.GetSettings)
		admin.PUT("/settings", m.Handler.UpdateSettings)
		admin.GET("/audit-logs", m.Handler.ListAuditLogs)
	}
}
