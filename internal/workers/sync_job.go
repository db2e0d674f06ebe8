package workers

import (
	"context"
	stdsync "sync"
	"time"

	"github.com/clipvault/clipvault/internal/sync"
)

// SyncTrigger dispatches one sync cycle when its preconditions hold. It is
// implemented by the sync orchestrator.
type SyncTrigger interface {
	TriggerSync(ctx context.Context) sync.Guard
}

type syncJob struct {
	trigger  SyncTrigger
	interval time.Duration

	mu     stdsync.Mutex
	cancel context.CancelFunc
	wg     stdsync.WaitGroup
}

// NewSyncJob creates a worker that triggers a sync cycle on a ticker. If
// interval is zero or negative it defaults to 5 minutes. The job is idle
// until Start is called.
func NewSyncJob(trigger SyncTrigger, interval time.Duration) Worker {
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	return &syncJob{trigger: trigger, interval: interval}
}

// Start implements Worker. It stops any previously running job, then
// launches a background goroutine that triggers a sync every interval. The
// goroutine exits when ctx is cancelled or Stop is called.
func (j *syncJob) Start(ctx context.Context) {
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

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				_ = j.trigger.TriggerSync(jobCtx)
			}
		}
	}()
}

// Stop implements Worker. It cancels the background goroutine's context and
// blocks until the goroutine has fully exited. Safe to call when the job is
// not running (no-op in that case).
func (j *syncJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
