package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/recipeshare/recipeshare/internal/domain/apperr"
	"github.com/recipeshare/recipeshare/pkg/response"
)

// writeError translates a service error into the API envelope. Unknown
// errors are logged with full detail and reported as a generic 503 so
// store internals never leak to clients.
func writeError(c *gin.Context, logger *logrus.Logger, err error) {
	if ve, ok := apperr.IsValidation(err); ok {
		response.Error[any](c, http.StatusBadRequest, "invalid input", ve.Fields)
		return
	}
	switch {
	case errors.Is(err, apperr.ErrUnauthenticated):
		response.Error[any](c, http.StatusUnauthorized, "authentication required", nil)
	case errors.Is(err, apperr.ErrInvalidCredentials):
		response.Error[any](c, http.StatusUnauthorized, "invalid credentials", nil)
	case errors.Is(err, apperr.ErrAccountBanned):
		response.Error[any](c, http.StatusForbidden, "account banned", nil)
	case errors.Is(err, apperr.ErrForbidden):
		response.Error[any](c, http.StatusForbidden, "forbidden", nil)
	case errors.Is(err, apperr.ErrNotFound):
		response.Error[any](c, http.StatusNotFound, "not found", nil)
	case errors.Is(err, apperr.ErrConflict):
		response.Error[any](c, http.StatusConflict, "already exists", nil)
	case errors.Is(err, apperr.ErrUnavailable):
		response.Error[any](c, http.StatusServiceUnavailable, "service unavailable, retry later", nil)
	default:
		if logger != nil {
			logger.WithError(err).WithField("path", c.FullPath()).Error("unhandled service error")
		}
		response.Error[any](c, http.StatusServiceUnavailable, "service unavailable, retry later", nil)
	}
}
