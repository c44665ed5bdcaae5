package service

import (
	"context"
	"crypto/rand"
	"fmt"
	"log/slog"

	"github.com/tripfolio/backend/internal/models"
	"github.com/tripfolio/backend/internal/storage"
)

// shareAlphabet and shareIDLength define the opaque share token shape:
// 16 characters of lowercase alphanumerics, URL-safe as a path segment.
const (
	shareAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"
	shareIDLength = 16
)

// ShareService publishes trips as read-only public projections.
type ShareService struct {
	store storage.Store
}

// NewShareService creates a new ShareService with the given storage backend.
func NewShareService(store storage.Store) *ShareService {
	return &ShareService{store: store}
}

// ShareState is the result of a publish/unpublish call.
type ShareState struct {
	IsPublic bool   `json:"is_public"`
	ShareID  string `json:"share_id,omitempty"`
}

// Publish makes an owned trip publicly readable (or revokes that).
// The first publish mints the share token; re-publishing reuses it so
// previously handed-out links keep working.
func (s *ShareService) Publish(ctx context.Context, email, tripID string, makePublic bool) (*ShareState, error) {
	trip, err := s.store.GetTrip(ctx, tripID)
	if err != nil {
		return nil, err
	}
	if trip.OwnerEmail != normalizeEmail(email) {
		return nil, fmt.Errorf("trip %s: %w", tripID, ErrForbidden)
	}

	shareID := trip.ShareID
	if makePublic && shareID == "" {
		shareID, err = newShareID()
		if err != nil {
			return nil, fmt.Errorf("failed to generate share id: %w", err)
		}
	}

	if err := s.store.UpdateTripShare(ctx, tripID, makePublic, shareID); err != nil {
		slog.Error("Publish failed", "trip_id", tripID, "error", err)
		return nil, err
	}

	slog.Info("Trip share updated", "trip_id", tripID, "is_public", makePublic)
	state := &ShareState{IsPublic: makePublic}
	if makePublic {
		state.ShareID = shareID
	}
	return state, nil
}

// Resolve returns the public projection for a share token. Unknown
// tokens and unpublished trips both resolve to ErrNotFound; the
// projection never includes the owner's email.
func (s *ShareService) Resolve(ctx context.Context, shareID string) (*models.ShareView, error) {
	trip, err := s.store.GetTripByShareID(ctx, shareID)
	if err != nil {
		return nil, err
	}
	if !trip.IsPublic {
		return nil, fmt.Errorf("share %s: %w", shareID, storage.ErrNotFound)
	}

	items, err := s.store.ListItems(ctx, trip.ID)
	if err != nil {
		slog.Error("Resolve share failed", "share_id", shareID, "error", err)
		return nil, err
	}
	if items == nil {
		items = []models.ItemView{}
	}

	return &models.ShareView{
		Trip:  models.ShareTrip{ID: trip.ID, Name: trip.Name},
		Items: items,
	}, nil
}

// newShareID draws shareIDLength characters from shareAlphabet using
// crypto/rand. Modulo bias is negligible here: 256 % 36 skews single
// characters by under 2%, and the token is an unguessable handle, not
// a key.
func newShareID() (string, error) {
	buf := make([]byte, shareIDLength)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	for i, b := range buf {
		buf[i] = shareAlphabet[int(b)%len(shareAlphabet)]
	}
	return string(buf), nil
}
