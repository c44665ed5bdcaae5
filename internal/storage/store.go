// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/tripfolio/backend/internal/models"
)

// ErrNotFound is returned when a trip, item, share id, or profile does
// not exist. Callers classify it with errors.Is so "doesn't exist" can
// be surfaced distinctly from a store failure. Every other error from
// a Store is propagated unchanged: no retries, no silent recovery.
var ErrNotFound = errors.New("not found")

// Store defines the interface for itinerary storage operations.
// This abstraction allows swapping storage backends (SQLite,
// PostgreSQL, etc.) without changing the service layer.
//
// All methods accept email parameters in any case and normalize to
// lowercase before comparing or writing.
type Store interface {
	// CreateTrip persists a new trip. ID and CreatedAt are populated
	// by the store when unset.
	CreateTrip(ctx context.Context, trip *models.Trip) error

	// GetTrip retrieves a trip by ID. Returns ErrNotFound when absent.
	GetTrip(ctx context.Context, tripID string) (*models.Trip, error)

	// GetTripByShareID retrieves a trip by its share token. Returns
	// ErrNotFound when no trip carries the token.
	GetTripByShareID(ctx context.Context, shareID string) (*models.Trip, error)

	// FirstOrCreateTripByOwner returns the earliest-created trip for
	// the owner, inserting a new trip named defaultName when the owner
	// has none. The lookup and insert run in one write transaction so
	// concurrent first calls cannot both insert.
	FirstOrCreateTripByOwner(ctx context.Context, ownerEmail, defaultName string) (*models.Trip, error)

	// ListTripsByOwner returns the owner's trips, newest first.
	ListTripsByOwner(ctx context.Context, ownerEmail string) ([]models.Trip, error)

	// UpdateTripName renames a trip. Returns ErrNotFound for an
	// unknown id.
	UpdateTripName(ctx context.Context, tripID, name string) error

	// UpdateTripDates sets or clears the trip's date span.
	UpdateTripDates(ctx context.Context, tripID, startDate, endDate string) error

	// UpdateTripShare sets the publish flag and share token.
	UpdateTripShare(ctx context.Context, tripID string, isPublic bool, shareID string) error

	// DeleteTrip removes a trip and, via cascade, its items.
	DeleteTrip(ctx context.Context, tripID string) error

	// ListItems returns the trip's items joined with place records,
	// ordered by day then creation time.
	ListItems(ctx context.Context, tripID string) ([]models.ItemView, error)

	// CreateItem persists a new item. ID and CreatedAt are populated
	// by the store when unset.
	CreateItem(ctx context.Context, item *models.TripItem) error

	// GetItem retrieves one item scoped to its trip.
	GetItem(ctx context.Context, tripID, itemID string) (*models.TripItem, error)

	// UpdateItem applies a partial update and returns the updated
	// item. Nil patch fields keep prior values.
	UpdateItem(ctx context.Context, tripID, itemID string, patch models.ItemPatch) (*models.TripItem, error)

	// DeleteItem removes one item scoped to its trip.
	DeleteItem(ctx context.Context, tripID, itemID string) error

	// ReorderItems moves the given items to day and rewrites their
	// creation sequence to match the slice order.
	ReorderItems(ctx context.Context, tripID string, day int, orderedIDs []string) error

	// ListFavorites returns the user's favorites, newest first, with
	// place records joined. Empty slice, not an error, when none.
	ListFavorites(ctx context.Context, userEmail string) ([]models.Favorite, error)

	// AddFavorite inserts the (userEmail, placeID) pair. Inserting an
	// existing pair is a no-op, not an error.
	AddFavorite(ctx context.Context, userEmail, placeID string) error

	// RemoveFavorite deletes the pair if present; absence is a no-op.
	RemoveFavorite(ctx context.Context, userEmail, placeID string) error

	// UpsertPlace inserts or refreshes a cached place record.
	UpsertPlace(ctx context.Context, place *models.Place) error

	// GetProfile retrieves a profile by email. Returns ErrNotFound
	// when the user has never saved one.
	GetProfile(ctx context.Context, email string) (*models.Profile, error)

	// PutProfile inserts or replaces the profile for its email.
	PutProfile(ctx context.Context, profile *models.Profile) error

	// DeleteProfile removes the profile if present.
	DeleteProfile(ctx context.Context, email string) error

	// Close releases any resources held by the store.
	Close() error
}
