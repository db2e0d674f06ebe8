package store

import (
	"context"
	"fmt"
	"time"

	"github.com/clipvault/clipvault/internal/backend"
	"github.com/clipvault/clipvault/internal/logger"
)

// Controller bridges the local history store and the remote backend during a
// sync cycle: it reports whether there are unpushed local writes and flushes
// them upstream. Conflict merging is the backend's job, so Flush is a plain
// push followed by clearing the dirty flags.
type Controller struct {
	clips   ClipRepository
	adapter backend.Adapter
	logger  *logger.Logger
}

// NewController constructs a [Controller] over the given repository and
// backend adapter.
func NewController(clips ClipRepository, adapter backend.Adapter, log *logger.Logger) *Controller {
	return &Controller{clips: clips, adapter: adapter, logger: log}
}

// HasPendingChanges reports whether any local entries await a push.
func (c *Controller) HasPendingChanges(ctx context.Context) (bool, error) {
	dirty, err := c.clips.DirtyClips(ctx)
	if err != nil {
		return false, fmt.Errorf("query pending changes: %w", err)
	}
	return len(dirty) > 0, nil
}

// Flush pushes every dirty entry to the backend and marks them clean. A
// no-op when nothing is dirty. Entries stay dirty if the push fails, so the
// next cycle retries them.
func (c *Controller) Flush(ctx context.Context) error {
	dirty, err := c.clips.DirtyClips(ctx)
	if err != nil {
		return fmt.Errorf("collect pending changes: %w", err)
	}
	if len(dirty) == 0 {
		return nil
	}

	if err := c.adapter.Push(ctx, dirty); err != nil {
		return fmt.Errorf("push pending changes: %w", err)
	}

	ids := make([]string, 0, len(dirty))
	for _, entry := range dirty {
		ids = append(ids, entry.ID)
	}
	if err := c.clips.MarkClean(ctx, ids...); err != nil {
		return fmt.Errorf("mark pushed changes clean: %w", err)
	}

	c.logger.Debug().Int("entries", len(ids)).Msg("flushed pending local changes")
	return nil
}

// PullRemote fetches entries written by other devices since the given time
// and stores them locally. Ingested entries are saved clean: pushing them
// back to the backend they came from would only echo traffic.
func (c *Controller) PullRemote(ctx context.Context, since time.Time) error {
	entries, err := c.adapter.Fetch(ctx, since)
	if err != nil {
		return fmt.Errorf("fetch remote changes: %w", err)
	}
	if len(entries) == 0 {
		return nil
	}

	for i := range entries {
		entries[i].Dirty = false
	}
	if err := c.clips.SaveClips(ctx, entries...); err != nil {
		return fmt.Errorf("store remote changes: %w", err)
	}

	c.logger.Debug().Int("entries", len(entries)).Msg("ingested remote changes")
	return nil
}
