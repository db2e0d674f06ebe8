package store

import (
	"context"

	"github.com/clipvault/clipvault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// ClipRepository is the local history repository for clipboard entries.
// Payloads arrive already encrypted; the repository never sees plaintext of
// an entry captured while encryption was enabled.
type ClipRepository interface {
	// SaveClips upserts the given entries (replace on id collision), used
	// both for local captures and for ingesting remote changes.
	SaveClips(ctx context.Context, entries ...models.ClipEntry) error

	// GetClip returns the entry with the given id or ErrClipNotFound.
	GetClip(ctx context.Context, id string) (models.ClipEntry, error)

	// GetAllClips returns all live (non-deleted) entries, newest first.
	GetAllClips(ctx context.Context) ([]models.ClipEntry, error)

	// DirtyClips returns entries with local modifications not yet pushed.
	DirtyClips(ctx context.Context) ([]models.ClipEntry, error)

	// MarkClean clears the dirty flag for the given ids after a successful
	// push.
	MarkClean(ctx context.Context, ids ...string) error

	// SoftDeleteClip marks an entry deleted and dirty, bumping its version.
	SoftDeleteClip(ctx context.Context, id string) error
}

// SettingsRepository is a small key/value store for user-level preferences
// that must survive restarts independently of runtime state.
type SettingsRepository interface {
	// GetBool returns the stored flag, or false when the key was never set.
	GetBool(ctx context.Context, key string) (bool, error)

	// SetBool persists the flag under key, overwriting any previous value.
	SetBool(ctx context.Context, key string, value bool) error
}

// PrefKeySyncEnabled is the preference key holding the persisted user intent
// to sync. It is read at startup and rewritten on every enable/disable.
const PrefKeySyncEnabled = "CloudKitSyncEnabled"
