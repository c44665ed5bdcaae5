package models

// Trip represents a single owned itinerary.
type Trip struct {
	// ID is the unique identifier for the trip (UUID format).
	ID string `json:"id"`

	// OwnerEmail is the lowercased email of the owning user.
	// Immutable after creation.
	OwnerEmail string `json:"owner_email,omitempty"`

	// Name is the display name of the trip (e.g., "My Trip").
	Name string `json:"name"`

	// StartDate and EndDate bound the trip's day-index span, as
	// "YYYY-MM-DD" strings. Both are optional; when either is empty,
	// item days are purely user-assigned with no range check.
	StartDate string `json:"start_date,omitempty"`
	EndDate   string `json:"end_date,omitempty"`

	// IsPublic reports whether the trip is published for share-link
	// reads. ShareID is the opaque token that addresses the public
	// projection; empty until the trip is first published.
	IsPublic bool   `json:"is_public"`
	ShareID  string `json:"share_id,omitempty"`

	// CreatedAt is the Unix timestamp when the trip was created.
	// The earliest-created trip for an owner is their default trip.
	CreatedAt int64 `json:"created_at"`
}

// ShareView is the read-only public projection of a published trip.
// It intentionally carries no owner-identifying fields.
type ShareView struct {
	Trip  ShareTrip  `json:"trip"`
	Items []ItemView `json:"items"`
}

// ShareTrip is the trip subset exposed through a share link.
type ShareTrip struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
