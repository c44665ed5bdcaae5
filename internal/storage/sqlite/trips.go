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

const tripColumns = "id, owner_email, name, start_date, end_date, is_public, share_id, created_at"

func scanTrip(row interface{ Scan(...any) error }) (*models.Trip, error) {
	var (
		trip       models.Trip
		start, end sql.NullString
		shareID    sql.NullString
	)
	err := row.Scan(&trip.ID, &trip.OwnerEmail, &trip.Name, &start, &end, &trip.IsPublic, &shareID, &trip.CreatedAt)
	if err != nil {
		return nil, err
	}
	trip.StartDate = start.String
	trip.EndDate = end.String
	trip.ShareID = shareID.String
	return &trip, nil
}

// CreateTrip persists a new trip to the database.
func (s *SQLiteStore) CreateTrip(ctx context.Context, trip *models.Trip) error {
	if trip.ID == "" {
		trip.ID = uuid.New().String()
	}
	if trip.CreatedAt == 0 {
		trip.CreatedAt = time.Now().Unix()
	}
	trip.OwnerEmail = normalizeEmail(trip.OwnerEmail)

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO trips (id, owner_email, name, start_date, end_date, is_public, share_id, created_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?)",
		trip.ID, trip.OwnerEmail, trip.Name, nullable(trip.StartDate), nullable(trip.EndDate), trip.IsPublic, nullable(trip.ShareID), trip.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert trip: %w", err)
	}
	return nil
}

// GetTrip retrieves a trip by ID.
func (s *SQLiteStore) GetTrip(ctx context.Context, tripID string) (*models.Trip, error) {
	trip, err := scanTrip(s.db.QueryRowContext(ctx,
		"SELECT "+tripColumns+" FROM trips WHERE id = ?", tripID))
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("trip %s: %w", tripID, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get trip: %w", err)
	}
	return trip, nil
}

// GetTripByShareID retrieves a trip by its share token.
func (s *SQLiteStore) GetTripByShareID(ctx context.Context, shareID string) (*models.Trip, error) {
	trip, err := scanTrip(s.db.QueryRowContext(ctx,
		"SELECT "+tripColumns+" FROM trips WHERE share_id = ?", shareID))
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("share %s: %w", shareID, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get trip by share id: %w", err)
	}
	return trip, nil
}

// FirstOrCreateTripByOwner returns the owner's earliest-created trip,
// inserting one when none exists. The read and the conditional insert
// share a write transaction, so two concurrent first calls serialize
// on SQLite's single writer and only one inserts.
func (s *SQLiteStore) FirstOrCreateTripByOwner(ctx context.Context, ownerEmail, defaultName string) (*models.Trip, error) {
	email := normalizeEmail(ownerEmail)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	trip, err := scanTrip(tx.QueryRowContext(ctx,
		"SELECT "+tripColumns+" FROM trips WHERE owner_email = ? ORDER BY created_at ASC, id ASC LIMIT 1", email))
	if err == nil {
		if err := tx.Commit(); err != nil {
			return nil, fmt.Errorf("failed to commit transaction: %w", err)
		}
		return trip, nil
	}
	if err != sql.ErrNoRows {
		return nil, fmt.Errorf("failed to look up default trip: %w", err)
	}

	trip = &models.Trip{
		ID:         uuid.New().String(),
		OwnerEmail: email,
		Name:       defaultName,
		CreatedAt:  time.Now().Unix(),
	}
	_, err = tx.ExecContext(ctx,
		"INSERT INTO trips (id, owner_email, name, created_at) VALUES (?, ?, ?, ?)",
		trip.ID, trip.OwnerEmail, trip.Name, trip.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert default trip: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return trip, nil
}

// ListTripsByOwner returns the owner's trips, newest first.
func (s *SQLiteStore) ListTripsByOwner(ctx context.Context, ownerEmail string) ([]models.Trip, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT "+tripColumns+" FROM trips WHERE owner_email = ? ORDER BY created_at DESC, id DESC",
		normalizeEmail(ownerEmail),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list trips: %w", err)
	}
	defer rows.Close()

	var trips []models.Trip
	for rows.Next() {
		trip, err := scanTrip(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan trip: %w", err)
		}
		trips = append(trips, *trip)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate trips: %w", err)
	}
	return trips, nil
}

// UpdateTripName renames a trip.
func (s *SQLiteStore) UpdateTripName(ctx context.Context, tripID, name string) error {
	return s.updateTrip(ctx, tripID, "UPDATE trips SET name = ? WHERE id = ?", name, tripID)
}

// UpdateTripDates sets or clears the trip's date span.
func (s *SQLiteStore) UpdateTripDates(ctx context.Context, tripID, startDate, endDate string) error {
	return s.updateTrip(ctx, tripID,
		"UPDATE trips SET start_date = ?, end_date = ? WHERE id = ?",
		nullable(startDate), nullable(endDate), tripID)
}

// UpdateTripShare sets the publish flag and share token.
func (s *SQLiteStore) UpdateTripShare(ctx context.Context, tripID string, isPublic bool, shareID string) error {
	return s.updateTrip(ctx, tripID,
		"UPDATE trips SET is_public = ?, share_id = ? WHERE id = ?",
		isPublic, nullable(shareID), tripID)
}

// DeleteTrip removes a trip; trip_items cascade.
func (s *SQLiteStore) DeleteTrip(ctx context.Context, tripID string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM trips WHERE id = ?", tripID)
	if err != nil {
		return fmt.Errorf("failed to delete trip: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("trip %s: %w", tripID, storage.ErrNotFound)
	}
	return nil
}

func (s *SQLiteStore) updateTrip(ctx context.Context, tripID, query string, args ...any) error {
	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update trip: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("trip %s: %w", tripID, storage.ErrNotFound)
	}
	return nil
}
