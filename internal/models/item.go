package models

// TripItem is a single place entry within a trip. An item belongs to
// exactly one trip.
type TripItem struct {
	// ID is the unique identifier for the item (UUID format).
	ID string `json:"id"`

	// TripID references the owning trip.
	TripID string `json:"trip_id"`

	// PlaceID references the external place this item points at.
	PlaceID string `json:"place_id"`

	// Day is the 1-based day index within the trip. When the trip has
	// both dates set, valid days lie in [1, daysBetween+1]; otherwise
	// the value is user-assigned and only required to be positive.
	Day int `json:"day"`

	// Note is optional free text attached by the user.
	Note string `json:"note"`

	// CreatedAt is a Unix-millisecond timestamp. Items within a day
	// sort by it; reordering a day rewrites these.
	CreatedAt int64 `json:"created_at"`
}

// ItemPatch is a partial update to a TripItem. Nil fields keep their
// prior values.
type ItemPatch struct {
	Day  *int    `json:"day"`
	Note *string `json:"note"`
}

// ItemView is a TripItem joined with its place record, the shape read
// paths and exports consume.
type ItemView struct {
	ID        string   `json:"id"`
	PlaceID   string   `json:"place_id"`
	Day       int      `json:"day"`
	Note      string   `json:"note"`
	CreatedAt int64    `json:"created_at"`
	Name      string   `json:"name"`
	Category  string   `json:"category"`
	Rating    *float64 `json:"rating"`
}
