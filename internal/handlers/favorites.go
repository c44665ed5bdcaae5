package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tripfolio/backend/internal/models"
	"github.com/tripfolio/backend/internal/service"
)

// FavoriteHandler serves the caller's saved places.
type FavoriteHandler struct {
	favorites *service.FavoriteService
}

func NewFavoriteHandler(favorites *service.FavoriteService) *FavoriteHandler {
	return &FavoriteHandler{favorites: favorites}
}

func (h *FavoriteHandler) List(c *gin.Context) {
	email, ok := requireEmail(c)
	if !ok {
		return
	}
	favorites, err := h.favorites.List(c.Request.Context(), email)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"favorites": favorites})
}

type addFavoriteRequest struct {
	PlaceID string        `json:"place_id" binding:"required"`
	Place   *models.Place `json:"place"`
}

// Add saves a place. Saving an already-saved place is a no-op, so the
// client can toggle without a read first.
func (h *FavoriteHandler) Add(c *gin.Context) {
	email, ok := requireEmail(c)
	if !ok {
		return
	}

	var req addFavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "place_id_required"})
		return
	}

	if err := h.favorites.Add(c.Request.Context(), email, req.PlaceID, req.Place); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *FavoriteHandler) Remove(c *gin.Context) {
	email, ok := requireEmail(c)
	if !ok {
		return
	}
	if err := h.favorites.Remove(c.Request.Context(), email, c.Param("placeId")); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
