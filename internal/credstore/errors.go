package credstore

import "errors"

// Sentinel errors returned by [Store] implementations. Callers should match
// them with [errors.Is].
var (
	// ErrNotFound is returned by Load when no entry exists for the identifier.
	ErrNotFound = errors.New("credential not found")

	// ErrInvalidIdentifier is returned when the identifier is empty or would
	// escape the store's directory.
	ErrInvalidIdentifier = errors.New("invalid credential identifier")
)
