// Package credstore persists raw key material in an access-controlled local
// storage area. Entries must stay readable only while the device is unlocked
// and must never leave the device; every backend substituted behind [Store]
// has to preserve that property.
package credstore

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/credstore_mock.go -package=mock

// KeyIdentifier is the fixed account identifier under which the clipboard
// encryption key is stored.
const KeyIdentifier = "com.clipboardmanager.encryption.key"

// Store is the contract for secure credential storage.
//
// Save is delete-then-insert: any prior entry for the identifier is removed
// before the new value is written, so repeated saves are idempotent and never
// produce duplicate-entry errors. Load returns ErrNotFound when no entry
// exists for the identifier.
type Store interface {
	// Save persists secret under identifier, replacing any previous value.
	Save(ctx context.Context, identifier string, secret []byte) error

	// Load retrieves the secret stored under identifier.
	// Returns ErrNotFound if the identifier has no entry.
	Load(ctx context.Context, identifier string) ([]byte, error)

	// Delete removes the entry for identifier. Deleting a missing entry is
	// not an error.
	Delete(ctx context.Context, identifier string) error
}
