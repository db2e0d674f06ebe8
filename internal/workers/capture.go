// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The ClipVault Authors

package workers

import (
	"context"
	stdsync "sync"
	"time"
	"unicode/utf8"

	"github.com/atotto/clipboard"
	"github.com/google/uuid"

	"github.com/clipvault/clipvault/internal/crypto"
	"github.com/clipvault/clipvault/internal/event"
	"github.com/clipvault/clipvault/internal/logger"
	"github.com/clipvault/clipvault/internal/store"
	"github.com/clipvault/clipvault/models"
)

const previewLimit = 64

// readClipboard reads the current system clipboard text. Swappable in tests.
type readClipboard func() (string, error)

type captureJob struct {
	clips      store.ClipRepository
	encryption crypto.EncryptionService
	bus        event.Bus
	logger     *logger.Logger
	interval   time.Duration
	read       readClipboard

	mu     stdsync.Mutex
	cancel context.CancelFunc
	wg     stdsync.WaitGroup
}

// NewCaptureJob creates a worker that polls the system clipboard and stores
// every new text value as a dirty clip entry. Payloads are sealed through
// the encryption service before they touch the database; each stored entry
// is announced on the bus as a data-changed event.
func NewCaptureJob(
	clips store.ClipRepository,
	encryption crypto.EncryptionService,
	bus event.Bus,
	interval time.Duration,
	log *logger.Logger,
) Worker {
	if interval <= 0 {
		interval = time.Second
	}
	return &captureJob{
		clips:      clips,
		encryption: encryption,
		bus:        bus,
		logger:     log,
		interval:   interval,
		read:       clipboard.ReadAll,
	}
}

// Start implements Worker.
func (j *captureJob) Start(ctx context.Context) {
	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(j.interval)
		defer t.Stop()

		var lastSeen string
		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				lastSeen = j.poll(jobCtx, lastSeen)
			}
		}
	}()
}

// Stop implements Worker.
func (j *captureJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}

// poll reads the clipboard once and persists the value when it changed.
// Returns the value to compare the next poll against.
func (j *captureJob) poll(ctx context.Context, lastSeen string) string {
	text, err := j.read()
	if err != nil {
		// Headless sessions have no clipboard; nothing to capture.
		j.logger.Debug().Err(err).Str("func", "poll").Msg("clipboard read failed")
		return lastSeen
	}
	if text == "" || text == lastSeen {
		return lastSeen
	}

	now := time.Now()
	entry := models.ClipEntry{
		ID:        uuid.NewString(),
		Kind:      models.ClipKindText,
		Payload:   j.encryption.Encrypt([]byte(text)),
		Preview:   preview(text),
		CreatedAt: now,
		UpdatedAt: now,
		Version:   1,
		Dirty:     true,
	}

	if err := j.clips.SaveClips(ctx, entry); err != nil {
		j.logger.Err(err).Str("func", "poll").Msg("failed to store captured clip")
		return lastSeen
	}

	j.bus.Publish(event.Event{Kind: event.KindDataChanged, Payload: entry.ID})
	return text
}

// preview truncates text to a short list-view excerpt on a rune boundary.
func preview(text string) string {
	if utf8.RuneCountInString(text) <= previewLimit {
		return text
	}
	runes := []rune(text)
	return string(runes[:previewLimit])
}
