package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/recipeshare/recipeshare/internal/application"
	"github.com/recipeshare/recipeshare/internal/interface/middleware"
	"github.com/recipeshare/recipeshare/pkg/response"
	"github.com/recipeshare/recipeshare/pkg/validation"
)

const maxUploadBytes = 5 << 20

type ProfileHandler struct {
	Svc    *application.UserService
	Saved  *application.SavedRecipeService
	Logger *logrus.Logger
}

func NewProfileHandler(svc *application.UserService, saved *application.SavedRecipeService, logger *logrus.Logger) *ProfileHandler {
	return &ProfileHandler{Svc: svc, Saved: saved, Logger: logger}
}

type updateProfileRequest struct {
	Name     string `json:"name" binding:"omitempty,personname"`
	ImageURL string `json:"image_url" binding:"omitempty,url"`
}

// Get GET /api/profile
func (h *ProfileHandler) Get(c *gin.Context) {
	caller := middleware.Caller(c)
	if caller == nil {
		response.Error[any](c, http.StatusUnauthorized, "authentication required", nil)
		return
	}
	u, err := h.Svc.GetProfile(c.Request.Context(), caller.ID)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, toUserDTO(u), "profile", nil)
}

// Update PATCH /api/profile
func (h *ProfileHandler) Update(c *gin.Context) {
	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	u, err := h.Svc.UpdateProfile(c.Request.Context(), middleware.Caller(c), application.UpdateProfileInput{
		Name:     req.Name,
		ImageURL: req.ImageURL,
	})
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, toUserDTO(u), "profile updated", nil)
}

// OwnRecipes GET /api/profile/recipes
func (h *ProfileHandler) OwnRecipes(c *gin.Context) {
	recipes, err := h.Svc.ListOwnRecipes(c.Request.Context(), middleware.Caller(c))
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, toRecipeDTOs(recipes), "your recipes", map[string]any{"count": len(recipes)})
}

// SavedRecipes GET /api/profile/saved-recipes
func (h *ProfileHandler) SavedRecipes(c *gin.Context) {
	recipes, err := h.Saved.ListRecipes(c.Request.Context(), middleware.Caller(c))
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, toRecipeDTOs(recipes), "saved recipes", map[string]any{"count": len(recipes)})
}

// SavedRecipeIDs GET /api/profile/saved-recipe-ids
//
// Mounted behind OptionalAuth so anonymous visitors get an empty set
// instead of a 401.
func (h *ProfileHandler) SavedRecipeIDs(c *gin.Context) {
	ids, err := h.Saved.ListRecipeIDs(c.Request.Context(), middleware.Caller(c))
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, ids, "saved recipe ids", map[string]any{"count": len(ids)})
}

// UploadImage POST /api/uploads/image
func (h *ProfileHandler) UploadImage(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadBytes)
	fh, err := c.FormFile("image")
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", map[string]string{"image": "file is required"})
		return
	}
	f, err := fh.Open()
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	defer func() { _ = f.Close() }()

	url, err := h.Svc.UploadImage(c.Request.Context(), middleware.Caller(c), f, fh.Filename, fh.Header.Get("Content-Type"))
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"url": url}, "image uploaded", nil)
}
