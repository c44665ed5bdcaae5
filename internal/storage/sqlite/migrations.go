package sqlite

import "database/sql"

// migrations contains the SQL statements to set up the database schema.
// These run on startup to ensure tables exist.
// IMPORTANT: trips must be created BEFORE trip_items due to the foreign
// key constraint.
const schema = `
CREATE TABLE IF NOT EXISTS trips (
    id TEXT PRIMARY KEY,
    owner_email TEXT NOT NULL,
    name TEXT NOT NULL,
    start_date TEXT,
    end_date TEXT,
    is_public INTEGER NOT NULL DEFAULT 0,
    share_id TEXT UNIQUE,
    created_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS places (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    category TEXT NOT NULL DEFAULT 'poi',
    rating REAL,
    lat REAL,
    lng REAL
);

CREATE TABLE IF NOT EXISTS trip_items (
    id TEXT PRIMARY KEY,
    trip_id TEXT NOT NULL,
    place_id TEXT NOT NULL,
    day INTEGER NOT NULL DEFAULT 1,
    note TEXT NOT NULL DEFAULT '',
    created_at INTEGER NOT NULL,
    FOREIGN KEY (trip_id) REFERENCES trips(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS favorites (
    user_email TEXT NOT NULL,
    place_id TEXT NOT NULL,
    created_at INTEGER NOT NULL,
    PRIMARY KEY (user_email, place_id)
);

CREATE TABLE IF NOT EXISTS profiles (
    email TEXT PRIMARY KEY,
    display_name TEXT NOT NULL DEFAULT '',
    home_base TEXT NOT NULL DEFAULT '',
    bio TEXT NOT NULL DEFAULT ''
);

CREATE INDEX IF NOT EXISTS idx_trips_owner_email ON trips(owner_email, created_at);
CREATE INDEX IF NOT EXISTS idx_trip_items_trip_id ON trip_items(trip_id, day, created_at);
CREATE INDEX IF NOT EXISTS idx_favorites_user_email ON favorites(user_email, created_at);
`

// runMigrations executes the schema setup.
func runMigrations(db *sql.DB) error {
	_, err := db.Exec(schema)
	return err
}
