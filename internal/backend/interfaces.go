// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The ClipVault Authors

// Package backend is the client adapter for the remote, eventually-consistent
// clipboard store. The backend is opaque: it merges concurrent writes on its
// own, so this adapter only transports entries and reports availability and
// account state.
package backend

import (
	"context"
	"time"

	"github.com/clipvault/clipvault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/backend_mock.go -package=mock

// Adapter is the transport boundary to the remote sync backend.
type Adapter interface {
	// Probe checks whether the backend can be reached from this execution
	// context. It returns nil when available. When the deployment lacks a
	// container identifier (unpackaged or non-entitled execution) it fails
	// deterministically with ErrNoContainer without touching the network;
	// it never hangs beyond its configured timeout.
	Probe(ctx context.Context) error

	// AccountStatus queries the backend's view of the device account.
	AccountStatus(ctx context.Context) (models.AccountStatus, error)

	// Push uploads locally modified entries. The backend merges concurrent
	// writes itself; Push never reports a merge conflict.
	Push(ctx context.Context, entries []models.ClipEntry) error

	// Fetch returns entries modified on other devices since the given time.
	Fetch(ctx context.Context, since time.Time) ([]models.ClipEntry, error)
}
