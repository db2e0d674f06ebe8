package store

import "errors"

// Sentinel errors returned by repository methods. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrClipNotFound is returned when a query targets a clip id that does
	// not exist in the local database.
	ErrClipNotFound = errors.New("clip entry was not found")

	// ErrClipNotSaved is returned when an insert completes without error but
	// affects zero rows, meaning nothing was actually persisted.
	ErrClipNotSaved = errors.New("clip entry was not saved")

	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")
)
