package store

import (
	"context"
	"fmt"

	"github.com/clipvault/clipvault/internal/config"
	"github.com/clipvault/clipvault/internal/logger"
)

// Storages groups the local repositories into a single value that can be
// passed around the service layer.
type Storages struct {
	// Clips is the SQLite-backed repository for (encrypted) clipboard
	// entries stored locally on this device.
	Clips ClipRepository

	// Settings holds user preferences that must survive restarts, such as
	// the sync intent flag.
	Settings SettingsRepository
}

// NewStorages initialises the local storage layer: it opens the SQLite file
// from cfg.DSN (creating it when missing), runs pending schema migrations,
// and wires the repositories.
func NewStorages(cfg config.Storage, log *logger.Logger) (*Storages, error) {
	log.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(context.Background(), cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		Clips:    NewClipRepository(db, log),
		Settings: NewSettingsRepository(db, log),
	}, nil
}
