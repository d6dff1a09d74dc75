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

type RecipeHandler struct {
	Svc    *application.RecipeService
	Saved  *application.SavedRecipeService
	Logger *logrus.Logger
}

func NewRecipeHandler(svc *application.RecipeService, saved *application.SavedRecipeService, logger *logrus.Logger) *RecipeHandler {
	return &RecipeHandler{Svc: svc, Saved: saved, Logger: logger}
}

type recipeRequest struct {
	Title        string   `json:"title" binding:"required"`
	Description  string   `json:"description"`
	Ingredients  []string `json:"ingredients" binding:"required"`
	Instructions []string `json:"instructions" binding:"required"`
	ImageURL     string   `json:"image_url"`
	Difficulty   string   `json:"difficulty" binding:"required,difficulty"`
	Category     string   `json:"category" binding:"required"`
}

func (r *recipeRequest) toInput() application.RecipeInput {
	return application.RecipeInput{
		Title:        r.Title,
		Description:  r.Description,
		Ingredients:  r.Ingredients,
		Instructions: r.Instructions,
		ImageURL:     r.ImageURL,
		Difficulty:   entity.Difficulty(r.Difficulty),
		Category:     r.Category,
	}
}

// List GET /api/recipes?category=&q=
func (h *RecipeHandler) List(c *gin.Context) {
	f := repository.RecipeFilter{
		Category: entity.NormalizeCategoryName(c.Query("category")),
		Query:    c.Query("q"),
	}
	recipes, err := h.Svc.List(c.Request.Context(), f)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, toRecipeDTOs(recipes), "recipes", map[string]any{"count": len(recipes)})
}

// Get GET /api/recipes/:id
func (h *RecipeHandler) Get(c *gin.Context) {
	rec, err := h.Svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, toRecipeDTO(rec), "recipe", nil)
}

// Create POST /api/recipes
func (h *RecipeHandler) Create(c *gin.Context) {
	var req recipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	rec, err := h.Svc.Create(c.Request.Context(), middleware.Caller(c), req.toInput())
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusCreated, toRecipeDTO(rec), "recipe created", nil)
}

// Update PATCH /api/recipes/:id
func (h *RecipeHandler) Update(c *gin.Context) {
	var req recipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	rec, err := h.Svc.Update(c.Request.Context(), middleware.Caller(c), c.Param("id"), req.toInput())
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, toRecipeDTO(rec), "recipe updated", nil)
}

// Delete DELETE /api/recipes/:id
func (h *RecipeHandler) Delete(c *gin.Context) {
	if err := h.Svc.Delete(c.Request.Context(), middleware.Caller(c), c.Param("id")); err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success[any](c, http.StatusOK, gin.H{"deleted": true}, "recipe deleted", nil)
}

// Save POST /api/recipes/:id/save
func (h *RecipeHandler) Save(c *gin.Context) {
	if err := h.Saved.Save(c.Request.Context(), middleware.Caller(c), c.Param("id")); err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success[any](c, http.StatusCreated, gin.H{"saved": true}, "recipe saved", nil)
}

// Unsave DELETE /api/recipes/:id/save
func (h *RecipeHandler) Unsave(c *gin.Context) {
	if err := h.Saved.Unsave(c.Request.Context(), middleware.Caller(c), c.Param("id")); err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success[any](c, http.StatusOK, gin.H{"saved": false}, "recipe unsaved", nil)
}

// Search GET /api/recipes/search?q=&size=
func (h *RecipeHandler) Search(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", map[string]string{"q": "is required"})
		return
	}
	size, _ := strconv.Atoi(c.DefaultQuery("size", "10"))
	recipes, err := h.Svc.Search(c.Request.Context(), q, size)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, toRecipeDTOs(recipes), "search results", map[string]any{"count": len(recipes)})
}
