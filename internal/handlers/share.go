package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tripfolio/backend/internal/service"
)

// ShareHandler serves the share toggle and the public share lookup.
type ShareHandler struct {
	shares *service.ShareService
}

func NewShareHandler(shares *service.ShareService) *ShareHandler {
	return &ShareHandler{shares: shares}
}

type shareRequest struct {
	MakePublic bool `json:"make_public"`
}

// Publish toggles a trip's public flag. The share id is minted on
// first publish and survives unpublish so links stay stable.
func (h *ShareHandler) Publish(c *gin.Context) {
	email, ok := requireEmail(c)
	if !ok {
		return
	}

	var req shareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request"})
		return
	}

	state, err := h.shares.Publish(c.Request.Context(), email, c.Param("id"), req.MakePublic)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "is_public": state.IsPublic, "share_id": state.ShareID})
}

// Resolve returns a read-only view of a published trip. No identity
// required; unpublished or unknown ids both read as not found.
func (h *ShareHandler) Resolve(c *gin.Context) {
	view, err := h.shares.Resolve(c.Request.Context(), c.Param("shareId"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}
