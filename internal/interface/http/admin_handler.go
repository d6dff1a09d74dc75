package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/recipeshare/recipeshare/internal/application"
	"github.com/recipeshare/recipeshare/internal/domain/entity"
	"github.com/recipeshare/recipeshare/internal/domain/repository"
	"github.com/recipeshare/recipeshare/internal/interface/middleware"
	"github.com/recipeshare/recipeshare/pkg/response"
	"github.com/recipeshare/recipeshare/pkg/validation"
)

type AdminHandler struct {
	Admin    *application.AdminService
	Recipes  *application.RecipeService
	Settings *application.SettingsService
	Logger   *logrus.Logger
}

func NewAdminHandler(admin *application.AdminService, recipes *application.RecipeService, settings *application.SettingsService, logger *logrus.Logger) *AdminHandler {
	return &AdminHandler{Admin: admin, Recipes: recipes, Settings: settings, Logger: logger}
}

// ListRecipes GET /api/admin/recipes
func (h *AdminHandler) ListRecipes(c *gin.Context) {
	rows, err := h.Recipes.ListForModeration(c.Request.Context(), middleware.Caller(c))
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	out := make([]moderationRowDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, toModerationRowDTO(r))
	}
	response.Success(c, http.StatusOK, out, "recipes", map[string]any{"count": len(out)})
}

type moderateRecipeRequest struct {
	Title      *string `json:"title"`
	IsFeatured *bool   `json:"is_featured"`
}

// ModerateRecipe PUT /api/admin/recipes/:id
func (h *AdminHandler) ModerateRecipe(c *gin.Context) {
	var req moderateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	if req.Title == nil && req.IsFeatured == nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", map[string]string{"body": "nothing to update"})
		return
	}
	rec, err := h.Recipes.Moderate(c.Request.Context(), middleware.Caller(c), c.Param("id"), repository.ModerationUpdate{
		Title:      req.Title,
		IsFeatured: req.IsFeatured,
	})
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, toRecipeDTO(rec), "recipe updated", nil)
}

type bulkDeleteRequest struct {
	IDs []string `json:"ids" binding:"required,min=1"`
}

// BulkDeleteRecipes POST /api/admin/recipes/bulk-delete
func (h *AdminHandler) BulkDeleteRecipes(c *gin.Context) {
	var req bulkDeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	n, err := h.Recipes.BulkDelete(c.Request.Context(), middleware.Caller(c), req.IDs)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": n}, "recipes deleted", map[string]any{
		"requested": len(req.IDs),
	})
}

// ListUsers GET /api/admin/users
func (h *AdminHandler) ListUsers(c *gin.Context) {
	users, err := h.Admin.ListUsers(c.Request.Context(), middleware.Caller(c))
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	out := make([]userDTO, 0, len(users))
	for _, u := range users {
		out = append(out, toUserDTO(u))
	}
	response.Success(c, http.StatusOK, out, "users", map[string]any{"count": len(out)})
}

type setRoleRequest struct {
	Role string `json:"role" binding:"required"`
}

// SetUserRole PUT /api/admin/users/:id/role
func (h *AdminHandler) SetUserRole(c *gin.Context) {
	var req setRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	u, err := h.Admin.SetRole(c.Request.Context(), middleware.Caller(c), c.Param("id"), entity.Role(req.Role))
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, toUserDTO(u), "role updated", nil)
}

type setStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// SetUserStatus PUT /api/admin/users/:id/status
func (h *AdminHandler) SetUserStatus(c *gin.Context) {
	var req setStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	u, err := h.Admin.SetStatus(c.Request.Context(), middleware.Caller(c), c.Param("id"), entity.UserStatus(req.Status))
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, toUserDTO(u), "status updated", nil)
}

// Stats GET /api/admin/stats
func (h *AdminHandler) Stats(c *gin.Context) {
	st, err := h.Admin.GetStats(c.Request.Context(), middleware.Caller(c))
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"user_count":      st.UserCount,
		"recipe_count":    st.RecipeCount,
		"save_count":      st.SaveCount,
		"recent_recipes":  toRecipeDTOs(st.RecentRecipes),
		"category_counts": st.CategoryCounts,
	}, "stats", nil)
}

// GetSettings GET /api/admin/settings
func (h *AdminHandler) GetSettings(c *gin.Context) {
	cfg, err := h.Settings.Get(c.Request.Context())
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, toSettingsDTO(cfg), "settings", nil)
}

type updateSettingsRequest struct {
	Name            string `json:"name" binding:"required"`
	Description     string `json:"description"`
	ContactEmail    string `json:"contact_email" binding:"omitempty,email"`
	MaintenanceMode bool   `json:"maintenance_mode"`
}

// UpdateSettings PUT /api/admin/settings
func (h *AdminHandler) UpdateSettings(c *gin.Context) {
	var req updateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	cfg := &entity.SiteSettings{
		ID:              entity.SettingsID,
		Name:            req.Name,
		Description:     req.Description,
		ContactEmail:    req.ContactEmail,
		MaintenanceMode: req.MaintenanceMode,
	}
	cfg, err := h.Settings.Update(c.Request.Context(), middleware.Caller(c), cfg)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, toSettingsDTO(cfg), "settings updated", nil)
}

// ListAuditLogs GET /api/admin/audit-logs?limit=
func (h *AdminHandler) ListAuditLogs(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	entries, err := h.Settings.ListAuditEntries(c.Request.Context(), middleware.Caller(c), limit)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	out := make([]auditEntryDTO, 0, len(entries))
	for _, e := range entries {
		out = append(out, toAuditEntryDTO(e))
	}
	response.Success(c, http.StatusOK, out, "audit logs", map[string]any{"count": len(out)})
}
