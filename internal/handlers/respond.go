// Package handlers exposes the itinerary services over HTTP.
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tripfolio/backend/internal/ai"
	"github.com/tripfolio/backend/internal/middleware"
	"github.com/tripfolio/backend/internal/service"
	"github.com/tripfolio/backend/internal/storage"
)

// requireEmail enforces the caller-identity precondition on mutations.
// Requests without a verified email are rejected with 401 before any
// store call.
func requireEmail(c *gin.Context) (string, bool) {
	email, ok := middleware.Email(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "auth_required"})
	}
	return email, ok
}

// abortWithError maps the error taxonomy onto status codes: not-found
// and forbidden surface distinctly, validation failures are 400, the
// unconfigured AI gateway is 501, and everything else is a generic
// store failure. Causes beyond the class are not leaked to clients.
func abortWithError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not_found"})
	case errors.Is(err, service.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
	case errors.Is(err, service.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request", "message": err.Error()})
	case errors.Is(err, ai.ErrUnavailable):
		c.JSON(http.StatusNotImplemented, gin.H{"error": "ai_disabled", "message": "AI suggestion gateway not configured"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "db_error"})
	}
}
