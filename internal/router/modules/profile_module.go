package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/recipeshare/recipeshare/internal/container"
	handlers "github.com/recipeshare/recipeshare/internal/interface/http"
	"github.com/recipeshare/recipeshare/internal/interface/middleware"
	"github.com/recipeshare/recipeshare/pkg/helpers"
)

// ProfileModule wires the signed-in user's surface
// Optional auth: GET /api/profile/saved-recipe-ids
// Protected: GET/PATCH /api/profile, GET /api/profile/recipes,
// GET /api/profile/saved-recipes, POST /api/uploads/image

type ProfileModule struct {
	Handler *handlers.ProfileHandler
	JWT     *helpers.JWTManager
}

func NewProfileModule(h *handlers.ProfileHandler, jwt *helpers.JWTManager) *ProfileModule {
	return &ProfileModule{Handler: h, JWT: jwt}
}

func (m *ProfileModule) Register(rg *gin.RouterGroup) {
	// Anonymous visitors get an empty id set instead of a 401 here, so
	// the catalog can mark saved recipes opportunistically.
	optional := rg.Group("/")
	optional.Use(middleware.OptionalAuth(container.GetRedis(), m.JWT))
	{
		optional.GET("/profile/saved-recipe-ids", m.Handler.SavedRecipeIDs)
	}

	auth := rg.Group("/")
	auth.Use(middleware.Auth(container.GetRedis(), m.JWT))
	auth.Use(middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID()))
	{
		auth.GET("/profile", m.Handler.Get)
		auth.PATCH("/profile", m.Handler.Update)
		auth.GET("/profile/recipes", m.Handler.OwnRecipes)
		auth.GET("/profile/saved-recipes", m.Handler.SavedRecipes)

		uploadLimiter := middleware.RateLimit(container.GetRedis(), 20, time.Minute, middleware.KeyByUserID())
		auth.POST("/uploads/image", uploadLimiter, m.Handler.UploadImage)
	}
}
