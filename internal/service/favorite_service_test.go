package service

import (
	"context"
	"errors"
	"testing"

	"github.com/tripfolio/backend/internal/models"
)

func TestFavoriteService(t *testing.T) {
	svc := NewFavoriteService(newTestStore(t))
	ctx := context.Background()

	place := &models.Place{ID: "p-cafe", Name: "Blue Bottle", Category: "cafe", Rating: ratingPtr(4.5)}

	t.Run("add and list with place payload", func(t *testing.T) {
		if err := svc.Add(ctx, "alice@example.com", place.ID, place); err != nil {
			t.Fatalf("Add failed: %v", err)
		}

		favorites, err := svc.List(ctx, "alice@example.com")
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}
		if len(favorites) != 1 {
			t.Fatalf("Expected 1 favorite, got %d", len(favorites))
		}
		if favorites[0].Place == nil || favorites[0].Place.Name != "Blue Bottle" {
			t.Errorf("Expected joined place, got %+v", favorites[0].Place)
		}
	})

	t.Run("re-adding is a no-op", func(t *testing.T) {
		if err := svc.Add(ctx, "alice@example.com", place.ID, nil); err != nil {
			t.Fatalf("Second Add failed: %v", err)
		}
		favorites, err := svc.List(ctx, "alice@example.com")
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}
		if len(favorites) != 1 {
			t.Errorf("Expected 1 favorite after re-add, got %d", len(favorites))
		}
	})

	t.Run("empty place id is rejected", func(t *testing.T) {
		if err := svc.Add(ctx, "alice@example.com", "", nil); !errors.Is(err, ErrValidation) {
			t.Errorf("Expected ErrValidation, got %v", err)
		}
		if err := svc.Remove(ctx, "alice@example.com", ""); !errors.Is(err, ErrValidation) {
			t.Errorf("Expected ErrValidation, got %v", err)
		}
	})

	t.Run("remove, including a missing favorite, succeeds", func(t *testing.T) {
		if err := svc.Remove(ctx, "alice@example.com", place.ID); err != nil {
			t.Fatalf("Remove failed: %v", err)
		}
		if err := svc.Remove(ctx, "alice@example.com", place.ID); err != nil {
			t.Fatalf("Removing a missing favorite failed: %v", err)
		}

		favorites, err := svc.List(ctx, "alice@example.com")
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}
		if len(favorites) != 0 {
			t.Errorf("Expected no favorites, got %d", len(favorites))
		}
	})

	t.Run("lists are per user", func(t *testing.T) {
		if err := svc.Add(ctx, "alice@example.com", "p-one", nil); err != nil {
			t.Fatalf("Add failed: %v", err)
		}
		favorites, err := svc.List(ctx, "bob@example.com")
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}
		if len(favorites) != 0 {
			t.Errorf("Expected bob to have no favorites, got %d", len(favorites))
		}
	})
}

func TestProfileService(t *testing.T) {
	svc := NewProfileService(newTestStore(t))
	ctx := context.Background()

	t.Run("missing profile reads as nil", func(t *testing.T) {
		profile, err := svc.Get(ctx, "alice@example.com")
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if profile != nil {
			t.Errorf("Expected nil profile, got %+v", profile)
		}
	})

	t.Run("put then get round-trips", func(t *testing.T) {
		in := &models.Profile{Email: "alice@example.com", DisplayName: "Alice", HomeBase: "Lisbon", Bio: "slow traveler"}
		if err := svc.Put(ctx, in); err != nil {
			t.Fatalf("Put failed: %v", err)
		}

		profile, err := svc.Get(ctx, "alice@example.com")
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if profile == nil || profile.DisplayName != "Alice" || profile.HomeBase != "Lisbon" {
			t.Errorf("Unexpected profile: %+v", profile)
		}
	})

	t.Run("delete is idempotent", func(t *testing.T) {
		if err := svc.Delete(ctx, "alice@example.com"); err != nil {
			t.Fatalf("Delete failed: %v", err)
		}
		if err := svc.Delete(ctx, "alice@example.com"); err != nil {
			t.Fatalf("Second Delete failed: %v", err)
		}
		profile, err := svc.Get(ctx, "alice@example.com")
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if profile != nil {
			t.Errorf("Expected nil after delete, got %+v", profile)
		}
	})
}
