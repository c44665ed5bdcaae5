package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/tripfolio/backend/internal/models"
	"github.com/tripfolio/backend/internal/storage"
)

// FavoriteService owns the user-to-place favorites relation.
type FavoriteService struct {
	store storage.Store
}

// NewFavoriteService creates a new FavoriteService with the given storage backend.
func NewFavoriteService(store storage.Store) *FavoriteService {
	return &FavoriteService{store: store}
}

// List returns the user's favorites. An empty set is a normal result,
// not an error.
func (s *FavoriteService) List(ctx context.Context, email string) ([]models.Favorite, error) {
	favorites, err := s.store.ListFavorites(ctx, email)
	if err != nil {
		slog.Error("ListFavorites failed", "error", err)
		return nil, err
	}
	return favorites, nil
}

// Add favorites a place for the user. Adding an existing favorite is
// success: the desired postcondition already holds. A full place
// payload, when supplied, refreshes the place cache first.
func (s *FavoriteService) Add(ctx context.Context, email, placeID string, place *models.Place) error {
	if placeID == "" {
		return fmt.Errorf("%w: place_id required", ErrValidation)
	}
	if place != nil {
		if place.ID == "" {
			place.ID = placeID
		}
		if err := s.store.UpsertPlace(ctx, place); err != nil {
			slog.Error("AddFavorite place upsert failed", "place_id", place.ID, "error", err)
			return err
		}
	}
	if err := s.store.AddFavorite(ctx, email, placeID); err != nil {
		slog.Error("AddFavorite failed", "place_id", placeID, "error", err)
		return err
	}
	return nil
}

// Remove unfavorites a place. Removing a favorite that does not exist
// is success.
func (s *FavoriteService) Remove(ctx context.Context, email, placeID string) error {
	if placeID == "" {
		return fmt.Errorf("%w: place_id required", ErrValidation)
	}
	if err := s.store.RemoveFavorite(ctx, email, placeID); err != nil {
		slog.Error("RemoveFavorite failed", "place_id", placeID, "error", err)
		return err
	}
	return nil
}
