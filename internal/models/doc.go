// Package models defines the core domain models for the itinerary
// backend.
//
//   - Trip: a named, owned itinerary with an optional date span
//   - TripItem: a place entry within a trip, assigned to a 1-based day
//   - Place: a cached external place record referenced by items and favorites
//   - Favorite: a (user email, place id) relation with no payload beyond existence
//   - Profile: optional public-facing user metadata
//
// Identity is an email string supplied by an external provider; it is
// normalized to lowercase before every comparison or write so a user's
// data never fragments across case variants. Relations use ID strings
// instead of pointers to avoid circular references.
package models
