package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, an empty or in-memory DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidBackendConfigs indicates invalid backend settings
	// (for example, a missing request timeout).
	ErrInvalidBackendConfigs = errors.New("invalid backend configuration")
	// ErrInvalidWorkerConfigs indicates invalid background worker settings
	// (for example, a zero sync interval).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
