package models

// Place is a cached copy of an external place record. Places are
// upserted from client payloads when items or favorites reference
// them; this backend never geocodes or searches.
type Place struct {
	// ID is the external place identifier (e.g., a provider place id).
	ID string `json:"id"`

	// Name is the display name. Falls back to the ID when the payload
	// omits it.
	Name string `json:"name"`

	// Category is a coarse kind string; "poi" when unknown.
	Category string `json:"category"`

	// Rating is the provider rating, when known.
	Rating *float64 `json:"rating"`

	// Lat and Lng are optional coordinates carried for clients; the
	// backend does not interpret them.
	Lat *float64 `json:"lat"`
	Lng *float64 `json:"lng"`
}

// Favorite marks a place as favorited by a user. The composite key
// (UserEmail, PlaceID) is the whole relation; existence is the payload.
type Favorite struct {
	PlaceID   string `json:"place_id"`
	CreatedAt int64  `json:"created_at"`

	// Place is the joined place record, nil when the place row is
	// missing.
	Place *Place `json:"place"`
}
