package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/tripfolio/backend/internal/models"
)

// ListFavorites returns the user's favorites, newest first, with place
// records joined where they exist.
func (s *SQLiteStore) ListFavorites(ctx context.Context, userEmail string) ([]models.Favorite, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT f.place_id, f.created_at, p.id, p.name, p.category, p.rating, p.lat, p.lng
		FROM favorites f
		LEFT JOIN places p ON p.id = f.place_id
		WHERE f.user_email = ?
		ORDER BY f.created_at DESC, f.place_id ASC`,
		normalizeEmail(userEmail),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list favorites: %w", err)
	}
	defer rows.Close()

	favorites := []models.Favorite{}
	for rows.Next() {
		var (
			fav              models.Favorite
			placeID, name    sql.NullString
			category         sql.NullString
			rating, lat, lng sql.NullFloat64
		)
		if err := rows.Scan(&fav.PlaceID, &fav.CreatedAt, &placeID, &name, &category, &rating, &lat, &lng); err != nil {
			return nil, fmt.Errorf("failed to scan favorite: %w", err)
		}
		if placeID.Valid {
			place := &models.Place{ID: placeID.String, Name: name.String, Category: category.String}
			if rating.Valid {
				place.Rating = &rating.Float64
			}
			if lat.Valid {
				place.Lat = &lat.Float64
			}
			if lng.Valid {
				place.Lng = &lng.Float64
			}
			fav.Place = place
		}
		favorites = append(favorites, fav)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate favorites: %w", err)
	}
	return favorites, nil
}

// AddFavorite inserts the pair. ON CONFLICT DO NOTHING makes the add
// idempotent at the store level: the desired postcondition "this
// favorite exists" already holds, so a duplicate is success.
func (s *SQLiteStore) AddFavorite(ctx context.Context, userEmail, placeID string) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO favorites (user_email, place_id, created_at) VALUES (?, ?, ?) ON CONFLICT (user_email, place_id) DO NOTHING",
		normalizeEmail(userEmail), placeID, time.Now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert favorite: %w", err)
	}
	return nil
}

// RemoveFavorite deletes the pair if present. A non-existent pair is
// not an error.
func (s *SQLiteStore) RemoveFavorite(ctx context.Context, userEmail, placeID string) error {
	_, err := s.db.ExecContext(ctx,
		"DELETE FROM favorites WHERE user_email = ? AND place_id = ?",
		normalizeEmail(userEmail), placeID,
	)
	if err != nil {
		return fmt.Errorf("failed to delete favorite: %w", err)
	}
	return nil
}

// UpsertPlace inserts or refreshes a cached place record.
func (s *SQLiteStore) UpsertPlace(ctx context.Context, place *models.Place) error {
	if place.Name == "" {
		place.Name = place.ID
	}
	if place.Category == "" {
		place.Category = "poi"
	}

	var rating, lat, lng sql.NullFloat64
	if place.Rating != nil {
		rating = sql.NullFloat64{Float64: *place.Rating, Valid: true}
	}
	if place.Lat != nil {
		lat = sql.NullFloat64{Float64: *place.Lat, Valid: true}
	}
	if place.Lng != nil {
		lng = sql.NullFloat64{Float64: *place.Lng, Valid: true}
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO places (id, name, category, rating, lat, lng) VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET name = excluded.name, category = excluded.category,
		    rating = excluded.rating, lat = excluded.lat, lng = excluded.lng`,
		place.ID, place.Name, place.Category, rating, lat, lng,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert place: %w", err)
	}
	return nil
}
