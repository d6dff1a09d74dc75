package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/recipeshare/recipeshare/internal/container"
	handlers "github.com/recipeshare/recipeshare/internal/interface/http"
	"github.com/recipeshare/recipeshare/internal/interface/middleware"
	"github.com/recipeshare/recipeshare/pkg/helpers"
)

// RecipeModule wires the public catalog and the owner mutation routes
// Public: GET /api/recipes, GET /api/recipes/search, GET /api/recipes/:id
// Protected: POST /api/recipes, PATCH/DELETE /api/recipes/:id,
// POST/DELETE /api/recipes/:id/save

type RecipeModule struct {
	Handler *handlers.RecipeHandler
	JWT     *helpers.JWTManager
}

func NewRecipeModule(h *handlers.RecipeHandler, jwt *helpers.JWTManager) *RecipeModule {
	return &RecipeModule{Handler: h, JWT: jwt}
}

func (m *RecipeModule) Register(rg *gin.RouterGroup) {
	publicLimiter := middleware.RateLimit(container.GetRedis(), 300, time.Minute, middleware.KeyByIP())
	searchLimiter := middleware.RateLimit(container.GetRedis(), 60, time.Minute, middleware.KeyByIPAndPath())

	rg.GET("/recipes", publicLimiter, m.Handler.List)
	rg.GET("/recipes/search", searchLimiter, m.Handler.Search)
	rg.GET("/recipes/:id", publicLimiter, m.Handler.Get)

	auth := rg.Group("/")
	auth.Use(middleware.Auth(container.GetRedis(), m.JWT))
	auth.Use(middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID()))
	{
		auth.POST("/recipes", m.Handler.Create)
		auth.PATCH("/recipes/:id", m.Handler.Update)
		auth.DELETE("/recipes/:id", m.Handler.Delete)
		auth.POST("/recipes/:id/save", m.Handler.Save)
		auth.DELETE("/recipes/:id/save", m.Handler.Unsave)
	}
}
