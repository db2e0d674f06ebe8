// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The ClipVault Authors

package config

import "strings"

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// The backend base URL and container ID are deliberately not required: the
// application runs locally without them, and sync simply cannot be enabled
// until they are configured.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Backend.RequestTimeout <= 0 {
		return ErrInvalidBackendConfigs
	}

	if cfg.Workers.SyncInterval <= 0 || cfg.Workers.CaptureInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
