package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tripfolio/backend/internal/export"
	"github.com/tripfolio/backend/internal/service"
)

// ExportHandler renders a trip's itinerary as a CSV or ICS download.
type ExportHandler struct {
	trips *service.TripService
}

func NewExportHandler(trips *service.TripService) *ExportHandler {
	return &ExportHandler{trips: trips}
}

func (h *ExportHandler) CSV(c *gin.Context) {
	ctx := c.Request.Context()
	trip, err := h.trips.GetTrip(ctx, c.Param("id"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	items, err := h.trips.ListItems(ctx, trip.ID)
	if err != nil {
		abortWithError(c, err)
		return
	}

	data, err := export.CSV(items)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "itinerary.csv"))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", data)
}

func (h *ExportHandler) ICS(c *gin.Context) {
	ctx := c.Request.Context()
	trip, err := h.trips.GetTrip(ctx, c.Param("id"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	items, err := h.trips.ListItems(ctx, trip.ID)
	if err != nil {
		abortWithError(c, err)
		return
	}

	data, err := export.ICS(trip, items)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "itinerary.ics"))
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", data)
}
