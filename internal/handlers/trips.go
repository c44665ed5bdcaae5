package handlers

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/tripfolio/backend/internal/models"
	"github.com/tripfolio/backend/internal/service"
)

// TripHandler serves trip and item routes.
type TripHandler struct {
	trips *service.TripService
}

func NewTripHandler(trips *service.TripService) *TripHandler {
	return &TripHandler{trips: trips}
}

// ListTrips returns the owner's trips, creating the default trip on
// first access. The owner email comes from the query string so the
// dashboard can load before the identity header is wired, matching
// the read-path convention of the rest of the API.
func (h *TripHandler) ListTrips(c *gin.Context) {
	ownerEmail := strings.TrimSpace(c.Query("owner_email"))
	if ownerEmail == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "owner_email_required"})
		return
	}

	list, err := h.trips.ListTrips(c.Request.Context(), ownerEmail)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

type createTripRequest struct {
	Name string `json:"name"`
}

func (h *TripHandler) CreateTrip(c *gin.Context) {
	email, ok := requireEmail(c)
	if !ok {
		return
	}

	// An empty body is fine; the trip just gets the fallback name.
	var req createTripRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request"})
		return
	}

	trip, err := h.trips.CreateTrip(c.Request.Context(), email, req.Name)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": trip.ID})
}

func (h *TripHandler) GetTrip(c *gin.Context) {
	trip, err := h.trips.GetTrip(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"trip": trip})
}

type updateTripRequest struct {
	Name      *string `json:"name"`
	StartDate *string `json:"start_date"`
	EndDate   *string `json:"end_date"`
}

// UpdateTrip renames a trip and/or sets its date span. Fields absent
// from the body are left untouched.
func (h *TripHandler) UpdateTrip(c *gin.Context) {
	email, ok := requireEmail(c)
	if !ok {
		return
	}

	var req updateTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request"})
		return
	}
	if req.Name == nil && req.StartDate == nil && req.EndDate == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request", "message": "nothing to update"})
		return
	}

	tripID := c.Param("id")
	ctx := c.Request.Context()

	if req.Name != nil {
		if err := h.trips.RenameTrip(ctx, email, tripID, *req.Name); err != nil {
			abortWithError(c, err)
			return
		}
	}
	if req.StartDate != nil || req.EndDate != nil {
		start, end := "", ""
		if req.StartDate != nil {
			start = *req.StartDate
		}
		if req.EndDate != nil {
			end = *req.EndDate
		}
		if err := h.trips.SetTripDates(ctx, email, tripID, start, end); err != nil {
			abortWithError(c, err)
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *TripHandler) DeleteTrip(c *gin.Context) {
	email, ok := requireEmail(c)
	if !ok {
		return
	}
	if err := h.trips.DeleteTrip(c.Request.Context(), email, c.Param("id")); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *TripHandler) ListItems(c *gin.Context) {
	items, err := h.trips.ListItems(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

type addItemRequest struct {
	PlaceID string        `json:"place_id" binding:"required"`
	Day     int           `json:"day"`
	Note    string        `json:"note"`
	Place   *models.Place `json:"place"`
}

func (h *TripHandler) AddItem(c *gin.Context) {
	email, ok := requireEmail(c)
	if !ok {
		return
	}

	var req addItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "place_id_required"})
		return
	}

	item, err := h.trips.AddItem(c.Request.Context(), email, c.Param("id"), req.PlaceID, req.Day, req.Note, req.Place)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "id": item.ID})
}

// UpdateItem applies a partial note/day patch and echoes the updated
// note (null when cleared).
func (h *TripHandler) UpdateItem(c *gin.Context) {
	email, ok := requireEmail(c)
	if !ok {
		return
	}

	var patch models.ItemPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request"})
		return
	}

	item, err := h.trips.UpdateItem(c.Request.Context(), email, c.Param("id"), c.Param("itemId"), patch)
	if err != nil {
		abortWithError(c, err)
		return
	}

	var note *string
	if item.Note != "" {
		note = &item.Note
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "note": note})
}

func (h *TripHandler) DeleteItem(c *gin.Context) {
	email, ok := requireEmail(c)
	if !ok {
		return
	}
	if err := h.trips.RemoveItem(c.Request.Context(), email, c.Param("id"), c.Param("itemId")); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

type reorderRequest struct {
	Day   int      `json:"day" binding:"required"`
	Order []string `json:"order" binding:"required"`
}

func (h *TripHandler) Reorder(c *gin.Context) {
	email, ok := requireEmail(c)
	if !ok {
		return
	}

	var req reorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad_request"})
		return
	}

	if err := h.trips.ReorderDay(c.Request.Context(), email, c.Param("id"), req.Day, req.Order); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
