package workers

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clipvault/clipvault/internal/sync"
)

// spyTrigger counts dispatched sync triggers.
type spyTrigger struct {
	calls atomic.Int64
}

func (s *spyTrigger) TriggerSync(context.Context) sync.Guard {
	s.calls.Add(1)
	return sync.GuardPassed
}

func TestNewSyncJob_ReturnsWorker(t *testing.T) {
	job := NewSyncJob(&spyTrigger{}, time.Minute)
	require.NotNil(t, job)
}

func TestSyncJob_StartTriggersOnTicker(t *testing.T) {
	spy := &spyTrigger{}
	job := NewSyncJob(spy, 10*time.Millisecond)

	job.Start(context.Background())
	time.Sleep(55 * time.Millisecond)
	job.Stop()

	assert.GreaterOrEqual(t, spy.calls.Load(), int64(3))
}

func TestSyncJob_StopBeforeStartIsNoOp(t *testing.T) {
	job := NewSyncJob(&spyTrigger{}, time.Minute)
	job.Stop()
	job.Stop()
}

func TestSyncJob_StopHaltsTriggers(t *testing.T) {
	spy := &spyTrigger{}
	job := NewSyncJob(spy, 5*time.Millisecond)

	job.Start(context.Background())
	time.Sleep(20 * time.Millisecond)
	job.Stop()

	after := spy.calls.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, after, spy.calls.Load())
}

func TestSyncJob_ContextCancelStopsJob(t *testing.T) {
	spy := &spyTrigger{}
	job := NewSyncJob(spy, 5*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	job.Start(ctx)
	time.Sleep(20 * time.Millisecond)
	cancel()
	time.Sleep(10 * time.Millisecond)

	after := spy.calls.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, after, spy.calls.Load())

	job.Stop()
}

func TestSyncJob_RestartReplacesPreviousRun(t *testing.T) {
	spy := &spyTrigger{}
	job := NewSyncJob(spy, 10*time.Millisecond)

	job.Start(context.Background())
	job.Start(context.Background())
	time.Sleep(35 * time.Millisecond)
	job.Stop()

	// A leaked first goroutine would roughly double the call count.
	assert.LessOrEqual(t, spy.calls.Load(), int64(4))
}
