package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tripfolio/backend/internal/models"
	"github.com/tripfolio/backend/internal/service"
)

// ProfileHandler serves the caller's profile.
type ProfileHandler struct {
	profiles *service.ProfileService
}

func NewProfileHandler(profiles *service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profiles: profiles}
}

// Get returns the caller's profile, or a null profile when none has
// been saved yet.
func (h *ProfileHandler) Get(c *gin.Context) {
	email, ok := requireEmail(c)
	if !ok {
		return
	}
	profile, err := h.profiles.Get(c.Request.Context(), email)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"profile": profile})
}

type putProfileRequest struct {
	DisplayName string `json:"display_name"`
	HomeBase    string `json:"home_base"`
	Bio         string `json:"bio"`
}

func (h *ProfileHandler) Put(c *gin.Context) {
	email, ok := requireEmail(c)
	if !ok {
		return
	}

	var req putProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request"})
		return
	}

	profile := &models.Profile{
		Email:       email,
		DisplayName: req.DisplayName,
		HomeBase:    req.HomeBase,
		Bio:         req.Bio,
	}
	if err := h.profiles.Put(c.Request.Context(), profile); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *ProfileHandler) Delete(c *gin.Context) {
	email, ok := requireEmail(c)
	if !ok {
		return
	}
	if err := h.profiles.Delete(c.Request.Context(), email); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
