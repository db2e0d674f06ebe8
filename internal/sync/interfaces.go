package sync

import (
	"context"
	"time"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/sync_mock.go -package=mock

// StoreController is the persistent-store collaborator driven during a sync
// cycle. It is implemented by the store package's controller; the
// orchestrator only needs these three operations.
type StoreController interface {
	// HasPendingChanges reports whether local writes await a push.
	HasPendingChanges(ctx context.Context) (bool, error)

	// Flush pushes pending local writes to the backend; a no-op when there
	// are none.
	Flush(ctx context.Context) error

	// PullRemote ingests entries written by other devices since the given
	// time into the local store.
	PullRemote(ctx context.Context, since time.Time) error
}
