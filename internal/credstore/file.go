package credstore

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/clipvault/clipvault/internal/logger"
)

// fileStore keeps one file per identifier under a private directory.
// The directory is created with 0700 and every entry with 0600, which keeps
// credentials unreadable to other local users; the path must live outside any
// cloud-synced location so the material never leaves the device.
type fileStore struct {
	dir    string
	logger *logger.Logger
}

// NewFileStore constructs a [Store] rooted at dir, creating the directory if
// necessary. Returns an error if dir cannot be created or is not private.
func NewFileStore(dir string, log *logger.Logger) (Store, error) {
	if dir == "" {
		return nil, fmt.Errorf("credstore: empty directory")
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("credstore: create directory: %w", err)
	}
	// Tighten permissions left over from a prior run or packaging step.
	if err := os.Chmod(dir, 0o700); err != nil {
		return nil, fmt.Errorf("credstore: chmod directory: %w", err)
	}
	return &fileStore{dir: dir, logger: log}, nil
}

func (f *fileStore) Save(ctx context.Context, identifier string, secret []byte) error {
	path, err := f.entryPath(identifier)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	// Delete-then-insert keeps Save idempotent regardless of prior state.
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		f.logger.Err(err).Str("identifier", identifier).Msg("failed to remove previous credential entry")
		return fmt.Errorf("credstore: remove previous entry: %w", err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, secret, 0o600); err != nil {
		f.logger.Err(err).Str("identifier", identifier).Msg("failed to write credential entry")
		return fmt.Errorf("credstore: write entry: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		f.logger.Err(err).Str("identifier", identifier).Msg("failed to commit credential entry")
		return fmt.Errorf("credstore: commit entry: %w", err)
	}

	return nil
}

func (f *fileStore) Load(ctx context.Context, identifier string) ([]byte, error) {
	path, err := f.entryPath(identifier)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	secret, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		f.logger.Err(err).Str("identifier", identifier).Msg("failed to read credential entry")
		return nil, fmt.Errorf("credstore: read entry: %w", err)
	}
	return secret, nil
}

func (f *fileStore) Delete(ctx context.Context, identifier string) error {
	path, err := f.entryPath(identifier)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		f.logger.Err(err).Str("identifier", identifier).Msg("failed to delete credential entry")
		return fmt.Errorf("credstore: delete entry: %w", err)
	}
	return nil
}

// entryPath maps an identifier to a file path inside the store directory and
// rejects identifiers that would escape it.
func (f *fileStore) entryPath(identifier string) (string, error) {
	if identifier == "" || strings.ContainsAny(identifier, "/\\") || strings.Contains(identifier, "..") {
		return "", ErrInvalidIdentifier
	}
	return filepath.Join(f.dir, identifier), nil
}
