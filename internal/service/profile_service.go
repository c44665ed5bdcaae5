package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/tripfolio/backend/internal/models"
	"github.com/tripfolio/backend/internal/storage"
)

// ProfileService owns optional user profile metadata.
type ProfileService struct {
	store storage.Store
}

// NewProfileService creates a new ProfileService with the given storage backend.
func NewProfileService(store storage.Store) *ProfileService {
	return &ProfileService{store: store}
}

// Get returns the user's profile, or nil when none has been saved.
func (s *ProfileService) Get(ctx context.Context, email string) (*models.Profile, error) {
	profile, err := s.store.GetProfile(ctx, email)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		slog.Error("GetProfile failed", "error", err)
		return nil, err
	}
	return profile, nil
}

// Put saves the user's profile, replacing any previous one.
func (s *ProfileService) Put(ctx context.Context, profile *models.Profile) error {
	if err := s.store.PutProfile(ctx, profile); err != nil {
		slog.Error("PutProfile failed", "error", err)
		return err
	}
	return nil
}

// Delete removes the user's profile if present.
func (s *ProfileService) Delete(ctx context.Context, email string) error {
	if err := s.store.DeleteProfile(ctx, email); err != nil {
		slog.Error("DeleteProfile failed", "error", err)
		return err
	}
	return nil
}
