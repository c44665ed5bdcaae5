// Package service implements the itinerary use cases on top of a
// storage.Store. Services validate before touching the store, check
// ownership on every mutation, and propagate store failures unchanged;
// retries, if any, belong to the caller.
package service

import (
	"errors"
	"strings"
)

var (
	// ErrForbidden means the caller's identity does not own the
	// resource it tried to mutate.
	ErrForbidden = errors.New("forbidden")

	// ErrValidation means the request was malformed or out of range
	// and was rejected before any store call.
	ErrValidation = errors.New("validation failed")
)

// normalizeEmail lowercases caller identities before any ownership
// comparison, matching how the store normalizes them on write.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
