package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/tripfolio/backend/internal/models"
	"github.com/tripfolio/backend/internal/storage"
)

// ListItems returns the trip's items joined with their place records,
// ordered by day then creation time. A missing place row falls back to
// the place id as the display name.
func (s *SQLiteStore) ListItems(ctx context.Context, tripID string) ([]models.ItemView, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT i.id, i.place_id, i.day, i.note, i.created_at,
		       COALESCE(p.name, i.place_id), COALESCE(p.category, 'poi'), p.rating
		FROM trip_items i
		LEFT JOIN places p ON p.id = i.place_id
		WHERE i.trip_id = ?
		ORDER BY i.day ASC, i.created_at ASC, i.id ASC`,
		tripID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}
	defer rows.Close()

	var items []models.ItemView
	for rows.Next() {
		var (
			item   models.ItemView
			rating sql.NullFloat64
		)
		if err := rows.Scan(&item.ID, &item.PlaceID, &item.Day, &item.Note, &item.CreatedAt,
			&item.Name, &item.Category, &rating); err != nil {
			return nil, fmt.Errorf("failed to scan item: %w", err)
		}
		if rating.Valid {
			item.Rating = &rating.Float64
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate items: %w", err)
	}
	return items, nil
}

// CreateItem persists a new item to the database.
func (s *SQLiteStore) CreateItem(ctx context.Context, item *models.TripItem) error {
	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	if item.CreatedAt == 0 {
		item.CreatedAt = time.Now().UnixMilli()
	}
	if item.Day == 0 {
		item.Day = 1
	}

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO trip_items (id, trip_id, place_id, day, note, created_at) VALUES (?, ?, ?, ?, ?, ?)",
		item.ID, item.TripID, item.PlaceID, item.Day, item.Note, item.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert item: %w", err)
	}
	return nil
}

// GetItem retrieves one item scoped to its trip.
func (s *SQLiteStore) GetItem(ctx context.Context, tripID, itemID string) (*models.TripItem, error) {
	var item models.TripItem
	err := s.db.QueryRowContext(ctx,
		"SELECT id, trip_id, place_id, day, note, created_at FROM trip_items WHERE id = ? AND trip_id = ?",
		itemID, tripID,
	).Scan(&item.ID, &item.TripID, &item.PlaceID, &item.Day, &item.Note, &item.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("item %s: %w", itemID, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get item: %w", err)
	}
	return &item, nil
}

// UpdateItem applies a partial update: only non-nil patch fields
// change, everything else keeps its prior value.
func (s *SQLiteStore) UpdateItem(ctx context.Context, tripID, itemID string, patch models.ItemPatch) (*models.TripItem, error) {
	item, err := s.GetItem(ctx, tripID, itemID)
	if err != nil {
		return nil, err
	}
	if patch.Day != nil {
		item.Day = *patch.Day
	}
	if patch.Note != nil {
		item.Note = *patch.Note
	}

	res, err := s.db.ExecContext(ctx,
		"UPDATE trip_items SET day = ?, note = ? WHERE id = ? AND trip_id = ?",
		item.Day, item.Note, itemID, tripID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update item: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to read rows affected: %w", err)
	}
	if n == 0 {
		return nil, fmt.Errorf("item %s: %w", itemID, storage.ErrNotFound)
	}
	return item, nil
}

// DeleteItem removes one item scoped to its trip. Absence is not an
// error; removing an already-removed item leaves the same state.
func (s *SQLiteStore) DeleteItem(ctx context.Context, tripID, itemID string) error {
	_, err := s.db.ExecContext(ctx,
		"DELETE FROM trip_items WHERE id = ? AND trip_id = ?", itemID, tripID)
	if err != nil {
		return fmt.Errorf("failed to delete item: %w", err)
	}
	return nil
}

// ReorderItems moves the given items to day and rewrites their
// creation timestamps so the stored order matches the slice order.
func (s *SQLiteStore) ReorderItems(ctx context.Context, tripID string, day int, orderedIDs []string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	base := time.Now().UnixMilli()
	for i, id := range orderedIDs {
		_, err := tx.ExecContext(ctx,
			"UPDATE trip_items SET day = ?, created_at = ? WHERE id = ? AND trip_id = ?",
			day, base+int64(i), id, tripID,
		)
		if err != nil {
			return fmt.Errorf("failed to reorder item %s: %w", id, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
