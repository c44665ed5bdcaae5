package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/tripfolio/backend/internal/dates"
	"github.com/tripfolio/backend/internal/models"
	"github.com/tripfolio/backend/internal/storage"
)

// defaultTripName is the name given to the lazily-created default trip.
const defaultTripName = "My Trip"

// TripService owns trips and their items.
type TripService struct {
	store storage.Store
}

// NewTripService creates a new TripService with the given storage backend.
func NewTripService(store storage.Store) *TripService {
	return &TripService{store: store}
}

// GetOrCreateDefaultTrip resolves the owner's default trip: the
// earliest-created trip for that email, created lazily as "My Trip" on
// first access. Safe to call repeatedly without duplicating trips.
func (s *TripService) GetOrCreateDefaultTrip(ctx context.Context, ownerEmail string) (*models.Trip, error) {
	trip, err := s.store.FirstOrCreateTripByOwner(ctx, ownerEmail, defaultTripName)
	if err != nil {
		slog.Error("GetOrCreateDefaultTrip failed", "error", err)
		return nil, err
	}
	return trip, nil
}

// TripList is the owner's trips plus the resolved default trip id.
type TripList struct {
	DefaultTripID string        `json:"defaultTripId"`
	Trips         []models.Trip `json:"trips"`
}

// ListTrips returns the owner's trips, newest first, bootstrapping the
// default trip when the owner has none.
func (s *TripService) ListTrips(ctx context.Context, ownerEmail string) (*TripList, error) {
	trips, err := s.store.ListTripsByOwner(ctx, ownerEmail)
	if err != nil {
		slog.Error("ListTrips failed", "error", err)
		return nil, err
	}

	if len(trips) == 0 {
		trip, err := s.GetOrCreateDefaultTrip(ctx, ownerEmail)
		if err != nil {
			return nil, err
		}
		trips = []models.Trip{*trip}
	}

	// Newest first; the default is the earliest-created.
	return &TripList{DefaultTripID: trips[len(trips)-1].ID, Trips: trips}, nil
}

// CreateTrip creates a named trip for the owner.
func (s *TripService) CreateTrip(ctx context.Context, ownerEmail, name string) (*models.Trip, error) {
	if strings.TrimSpace(name) == "" {
		name = "New Trip"
	}
	trip := &models.Trip{OwnerEmail: ownerEmail, Name: strings.TrimSpace(name)}
	if err := s.store.CreateTrip(ctx, trip); err != nil {
		slog.Error("CreateTrip failed", "error", err)
		return nil, err
	}
	slog.Info("Trip created", "trip_id", trip.ID)
	return trip, nil
}

// GetTrip retrieves a trip by id.
func (s *TripService) GetTrip(ctx context.Context, tripID string) (*models.Trip, error) {
	return s.store.GetTrip(ctx, tripID)
}

// RenameTrip renames an owned trip. An empty name is a validation
// error, rejected before any store write.
func (s *TripService) RenameTrip(ctx context.Context, email, tripID, name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: name required", ErrValidation)
	}
	if _, err := s.requireOwner(ctx, email, tripID); err != nil {
		return err
	}
	if err := s.store.UpdateTripName(ctx, tripID, strings.TrimSpace(name)); err != nil {
		slog.Error("RenameTrip failed", "trip_id", tripID, "error", err)
		return err
	}
	return nil
}

// SetTripDates sets or clears the trip's date span. Both dates must be
// supplied together, and the end must not precede the start.
func (s *TripService) SetTripDates(ctx context.Context, email, tripID, startDate, endDate string) error {
	if (startDate == "") != (endDate == "") {
		return fmt.Errorf("%w: start_date and end_date must be set together", ErrValidation)
	}
	if startDate != "" {
		start, err := dates.Parse(startDate)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrValidation, err)
		}
		end, err := dates.Parse(endDate)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrValidation, err)
		}
		if end.Before(start) {
			return fmt.Errorf("%w: end_date before start_date", ErrValidation)
		}
	}
	if _, err := s.requireOwner(ctx, email, tripID); err != nil {
		return err
	}
	if err := s.store.UpdateTripDates(ctx, tripID, startDate, endDate); err != nil {
		slog.Error("SetTripDates failed", "trip_id", tripID, "error", err)
		return err
	}
	return nil
}

// DeleteTrip removes an owned trip and its items.
func (s *TripService) DeleteTrip(ctx context.Context, email, tripID string) error {
	if _, err := s.requireOwner(ctx, email, tripID); err != nil {
		return err
	}
	if err := s.store.DeleteTrip(ctx, tripID); err != nil {
		slog.Error("DeleteTrip failed", "trip_id", tripID, "error", err)
		return err
	}
	slog.Info("Trip deleted", "trip_id", tripID)
	return nil
}

// ListItems returns the trip's items in day order.
func (s *TripService) ListItems(ctx context.Context, tripID string) ([]models.ItemView, error) {
	items, err := s.store.ListItems(ctx, tripID)
	if err != nil {
		slog.Error("ListItems failed", "trip_id", tripID, "error", err)
		return nil, err
	}
	if items == nil {
		items = []models.ItemView{}
	}
	return items, nil
}

// AddItem adds a place to an owned trip. When the client sends the
// full place payload alongside, the place cache is refreshed first so
// read paths can join it.
func (s *TripService) AddItem(ctx context.Context, email, tripID, placeID string, day int, note string, place *models.Place) (*models.TripItem, error) {
	if placeID == "" {
		return nil, fmt.Errorf("%w: place_id required", ErrValidation)
	}
	if day == 0 {
		day = 1
	}

	trip, err := s.requireOwner(ctx, email, tripID)
	if err != nil {
		return nil, err
	}
	if err := validateDay(trip, day); err != nil {
		return nil, err
	}

	if place != nil {
		if place.ID == "" {
			place.ID = placeID
		}
		if err := s.store.UpsertPlace(ctx, place); err != nil {
			slog.Error("AddItem place upsert failed", "place_id", place.ID, "error", err)
			return nil, err
		}
	}

	item := &models.TripItem{TripID: tripID, PlaceID: placeID, Day: day, Note: note}
	if err := s.store.CreateItem(ctx, item); err != nil {
		slog.Error("AddItem failed", "trip_id", tripID, "error", err)
		return nil, err
	}
	slog.Info("Item added", "trip_id", tripID, "item_id", item.ID, "day", day)
	return item, nil
}

// UpdateItem applies a partial note/day update to an owned item and
// returns the updated item. Only supplied fields change.
func (s *TripService) UpdateItem(ctx context.Context, email, tripID, itemID string, patch models.ItemPatch) (*models.TripItem, error) {
	trip, err := s.requireOwner(ctx, email, tripID)
	if err != nil {
		return nil, err
	}
	if patch.Day != nil {
		if err := validateDay(trip, *patch.Day); err != nil {
			return nil, err
		}
	}

	item, err := s.store.UpdateItem(ctx, tripID, itemID, patch)
	if err != nil {
		slog.Error("UpdateItem failed", "trip_id", tripID, "item_id", itemID, "error", err)
		return nil, err
	}
	return item, nil
}

// RemoveItem deletes an item from an owned trip.
func (s *TripService) RemoveItem(ctx context.Context, email, tripID, itemID string) error {
	if _, err := s.requireOwner(ctx, email, tripID); err != nil {
		return err
	}
	if err := s.store.DeleteItem(ctx, tripID, itemID); err != nil {
		slog.Error("RemoveItem failed", "trip_id", tripID, "item_id", itemID, "error", err)
		return err
	}
	return nil
}

// ReorderDay moves the listed items to day in the given order.
func (s *TripService) ReorderDay(ctx context.Context, email, tripID string, day int, orderedIDs []string) error {
	if len(orderedIDs) == 0 {
		return fmt.Errorf("%w: order required", ErrValidation)
	}
	trip, err := s.requireOwner(ctx, email, tripID)
	if err != nil {
		return err
	}
	if err := validateDay(trip, day); err != nil {
		return err
	}
	if err := s.store.ReorderItems(ctx, tripID, day, orderedIDs); err != nil {
		slog.Error("ReorderDay failed", "trip_id", tripID, "error", err)
		return err
	}
	return nil
}

// requireOwner loads the trip and checks the caller owns it.
func (s *TripService) requireOwner(ctx context.Context, email, tripID string) (*models.Trip, error) {
	trip, err := s.store.GetTrip(ctx, tripID)
	if err != nil {
		return nil, err
	}
	if trip.OwnerEmail != normalizeEmail(email) {
		return nil, fmt.Errorf("trip %s: %w", tripID, ErrForbidden)
	}
	return trip, nil
}

// validateDay range-checks a day index. Days are always 1-based; when
// the trip has both dates the index must fall inside the span.
func validateDay(trip *models.Trip, day int) error {
	if day < 1 {
		return fmt.Errorf("%w: day must be positive", ErrValidation)
	}
	if trip.StartDate == "" || trip.EndDate == "" {
		return nil
	}
	span, err := dates.DaysBetween(trip.StartDate, trip.EndDate)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	if day > span+1 {
		return fmt.Errorf("%w: day %d outside trip span of %d days", ErrValidation, day, span+1)
	}
	return nil
}
