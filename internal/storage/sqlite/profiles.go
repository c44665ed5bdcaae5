package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/tripfolio/backend/internal/models"
	"github.com/tripfolio/backend/internal/storage"
)

// GetProfile retrieves a profile by email.
func (s *SQLiteStore) GetProfile(ctx context.Context, email string) (*models.Profile, error) {
	var profile models.Profile
	err := s.db.QueryRowContext(ctx,
		"SELECT email, display_name, home_base, bio FROM profiles WHERE email = ?",
		normalizeEmail(email),
	).Scan(&profile.Email, &profile.DisplayName, &profile.HomeBase, &profile.Bio)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("profile %s: %w", normalizeEmail(email), storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return &profile, nil
}

// PutProfile inserts or replaces the profile for its email.
func (s *SQLiteStore) PutProfile(ctx context.Context, profile *models.Profile) error {
	profile.Email = normalizeEmail(profile.Email)
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO profiles (email, display_name, home_base, bio) VALUES (?, ?, ?, ?)
		ON CONFLICT (email) DO UPDATE SET display_name = excluded.display_name,
		    home_base = excluded.home_base, bio = excluded.bio`,
		profile.Email, profile.DisplayName, profile.HomeBase, profile.Bio,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert profile: %w", err)
	}
	return nil
}

// DeleteProfile removes the profile if present; absence is a no-op.
func (s *SQLiteStore) DeleteProfile(ctx context.Context, email string) error {
	_, err := s.db.ExecContext(ctx,
		"DELETE FROM profiles WHERE email = ?", normalizeEmail(email))
	if err != nil {
		return fmt.Errorf("failed to delete profile: %w", err)
	}
	return nil
}
