package backend

import "errors"

// Sentinel errors returned by [Adapter] implementations. Match with
// [errors.Is]; the messages are surfaced to users through the sync status,
// so they must stay human-readable.
var (
	// ErrNoContainer is returned by Probe when no sync container identifier
	// is configured for this deployment. The condition is permanent for the
	// process lifetime, so no network probe is attempted.
	ErrNoContainer = errors.New("sync container identifier is not configured")

	// ErrUnavailable is returned when the backend rejected the probe or
	// could not be reached.
	ErrUnavailable = errors.New("sync backend is not available")

	// ErrUnauthorized is returned when the device token is missing, expired,
	// or rejected by the backend.
	ErrUnauthorized = errors.New("device is not authorized with the sync backend")

	// ErrAccountQuery is returned when the account status request failed.
	ErrAccountQuery = errors.New("account status query failed")
)
