// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The ClipVault Authors

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// clipvault application. It is populated by merging values from environment
// variables, command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the version string.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the local persistence layer.
	Storage Storage `envPrefix:"STORAGE_"`

	// Backend holds the remote sync backend connection settings.
	Backend Backend `envPrefix:"BACKEND_"`

	// Notify holds settings for the inbound push-signal listener.
	Notify Notify `envPrefix:"NOTIFY_"`

	// Workers holds configuration for background worker processes.
	Workers Workers `envPrefix:"WORKERS_"`

	// Sync holds the timeout bounds applied to sync operations.
	Sync Sync `envPrefix:"SYNC_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the semantic version string of the running application
	// (e.g. "1.2.3").
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Storage groups the configuration for the local persistence layer.
type Storage struct {
	// DB holds the local database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local clip database.
type DB struct {
	// DSN is the SQLite Data Source Name used to open the local database
	// (e.g. "file:clipvault.db?_journal_mode=WAL").
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Backend holds connection settings for the remote sync backend.
type Backend struct {
	// BaseURL is the HTTP base URL of the sync backend
	// (e.g. "https://sync.example.com").
	// Env: BACKEND_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// ContainerID identifies the remote sync container. Sync cannot be
	// enabled while it is empty; availability probes fail fast without a
	// network round trip.
	// Env: BACKEND_CONTAINER_ID
	ContainerID string `env:"CONTAINER_ID"`

	// DeviceToken is the bearer token authenticating this device against
	// the backend.
	// Env: BACKEND_DEVICE_TOKEN
	DeviceToken string `env:"DEVICE_TOKEN"`

	// RequestTimeout is the maximum duration allowed for a single outbound
	// backend request (e.g. "30s", "1m").
	// Env: BACKEND_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Notify holds settings for the inbound push-signal listener, the HTTP
// endpoint the backend calls to announce remote changes.
type Notify struct {
	// HTTPAddress is the TCP address on which the signal listener listens,
	// in "host:port" format (e.g. "127.0.0.1:8732").
	// Env: NOTIFY_ADDRESS
	HTTPAddress string `env:"ADDRESS"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// SyncInterval defines how often the periodic sync worker triggers a
	// sync cycle.
	// Env: WORKERS_SYNC_INTERVAL
	SyncInterval time.Duration `env:"SYNC_INTERVAL"`

	// CaptureInterval defines how often the clipboard capture worker polls
	// the system clipboard.
	// Env: WORKERS_CAPTURE_INTERVAL
	CaptureInterval time.Duration `env:"CAPTURE_INTERVAL"`
}

// Sync holds the timeout bounds applied to the asynchronous steps of the
// sync orchestrator.
type Sync struct {
	// ProbeTimeout bounds a single backend availability probe.
	// Env: SYNC_PROBE_TIMEOUT
	ProbeTimeout time.Duration `env:"PROBE_TIMEOUT"`

	// AccountTimeout bounds a single account status query.
	// Env: SYNC_ACCOUNT_TIMEOUT
	AccountTimeout time.Duration `env:"ACCOUNT_TIMEOUT"`

	// CycleTimeout bounds a whole sync cycle.
	// Env: SYNC_CYCLE_TIMEOUT
	CycleTimeout time.Duration `env:"CYCLE_TIMEOUT"`

	// PropagationGrace is the wait after a flush before the cycle is
	// declared successful.
	// Env: SYNC_PROPAGATION_GRACE
	PropagationGrace time.Duration `env:"PROPAGATION_GRACE"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (first source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Fields still unset after the merge receive built-in defaults.
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}

// setDefaults fills the fields no source provided.
func (cfg *StructuredConfig) setDefaults() {
	if cfg.Storage.DB.DSN == "" {
		cfg.Storage.DB.DSN = "file:clipvault.db?_journal_mode=WAL"
	}
	if cfg.Backend.RequestTimeout == 0 {
		cfg.Backend.RequestTimeout = 30 * time.Second
	}
	if cfg.Notify.HTTPAddress == "" {
		cfg.Notify.HTTPAddress = "127.0.0.1:8732"
	}
	if cfg.Workers.SyncInterval == 0 {
		cfg.Workers.SyncInterval = 5 * time.Minute
	}
	if cfg.Workers.CaptureInterval == 0 {
		cfg.Workers.CaptureInterval = time.Second
	}
}
