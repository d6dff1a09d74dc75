package router

import (
	"github.com/recipeshare/recipeshare/internal/application"
	"github.com/recipeshare/recipeshare/internal/container"
	pginfra "github.com/recipeshare/recipeshare/internal/infrastructure/postgres"
	handlers "github.com/recipeshare/recipeshare/internal/interface/http"
	"github.com/recipeshare/recipeshare/internal/router/modules"
)

// InitModules builds repositories, services, and handlers from the
// container singletons and registers every feature module with the
// router registry. Called once during startup.
func InitModules(r *Registry) {
	cfg := container.GetConfig()
	logger := container.GetLogger()
	pool := container.GetPGPool()
	rdb := container.GetRedis()

	users := pginfra.NewUserRepository(pool)
	recipes := pginfra.NewRecipeRepository(pool)
	categories := pginfra.NewCategoryRepository(pool)
	saved := pginfra.NewSavedRecipeRepository(pool)
	settings := pginfra.NewSettingsRepository(pool)
	audit := pginfra.NewAuditLogRepository(pool)

	authSvc := application.NewAuthService(users, container.GetJWT(), rdb, logger, cfg.SessionTTL)
	recipeSvc := application.NewRecipeService(recipes, audit, logger, container.GetES(), cfg.ESRecipesIndex)
	categorySvc := application.NewCategoryService(categories, audit, logger)
	savedSvc := application.NewSavedRecipeService(saved, recipes, logger)
	userSvc := application.NewUserService(users, recipes, container.GetGCS(), cfg.GCSBucket, rdb, logger)
	adminSvc := application.NewAdminService(users, recipes, saved, audit, rdb, logger)
	settingsSvc := application.NewSettingsService(settings, audit, logger)

	authH := handlers.NewAuthHandler(authSvc, logger, cfg.CookieDomain, cfg.CookieSecure)
	recipeH := handlers.NewRecipeHandler(recipeSvc, savedSvc, logger)
	categoryH := handlers.NewCategoryHandler(categorySvc, logger)
	profileH := handlers.NewProfileHandler(userSvc, savedSvc, logger)
	adminH := handlers.NewAdminHandler(adminSvc, recipeSvc, settingsSvc, logger)

	jwt := container.GetJWT()
	r.Add(modules.NewAuthModule(authH, jwt))
	r.Add(modules.NewRecipeModule(recipeH, jwt))
	r.Add(modules.NewCategoryModule(categoryH, jwt))
	r.Add(modules.NewProfileModule(profileH, jwt))
	r.Add(modules.NewAdminModule(adminH, jwt))
}
