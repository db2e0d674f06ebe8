package sync

import (
	"context"
	"fmt"
	stdsync "sync"
	"time"

	"github.com/clipvault/clipvault/internal/backend"
	"github.com/clipvault/clipvault/internal/crypto"
	"github.com/clipvault/clipvault/internal/event"
	"github.com/clipvault/clipvault/internal/logger"
	"github.com/clipvault/clipvault/internal/store"
	"github.com/clipvault/clipvault/models"
)

// Timeouts bounds every asynchronous step of the orchestrator so a hanging
// backend call can never leave the machine stuck in Syncing.
type Timeouts struct {
	// Probe bounds the availability probe.
	Probe time.Duration
	// Account bounds the account status query.
	Account time.Duration
	// Sync bounds a whole sync cycle, grace wait included.
	Sync time.Duration
	// PropagationGrace is the fixed wait after a flush that gives the
	// eventually-consistent backend time to propagate before the cycle is
	// declared successful.
	PropagationGrace time.Duration
}

func (t Timeouts) withDefaults() Timeouts {
	if t.Probe <= 0 {
		t.Probe = 10 * time.Second
	}
	if t.Account <= 0 {
		t.Account = 10 * time.Second
	}
	if t.Sync <= 0 {
		t.Sync = 60 * time.Second
	}
	if t.PropagationGrace <= 0 {
		t.PropagationGrace = 2 * time.Second
	}
	return t
}

// Orchestrator sequences the operations that move the sync [Machine]:
// enable/disable, availability probing, account queries, sync execution,
// remote-change ingestion and conflict resolution. It is the only component
// allowed to mutate the sync state.
type Orchestrator struct {
	machine    *Machine
	encryption crypto.EncryptionService
	adapter    backend.Adapter
	settings   store.SettingsRepository
	controller StoreController
	bus        event.Bus
	logger     *logger.Logger
	timeouts   Timeouts

	tasks        stdsync.WaitGroup
	unsubscribes []func()
}

// NewOrchestrator wires the orchestrator and subscribes it to the inbound
// backend signals on the bus: a remote-change signal triggers ingestion, an
// account-change signal triggers an account status re-check.
func NewOrchestrator(
	machine *Machine,
	encryption crypto.EncryptionService,
	adapter backend.Adapter,
	settings store.SettingsRepository,
	controller StoreController,
	bus event.Bus,
	timeouts Timeouts,
	log *logger.Logger,
) *Orchestrator {
	o := &Orchestrator{
		machine:    machine,
		encryption: encryption,
		adapter:    adapter,
		settings:   settings,
		controller: controller,
		bus:        bus,
		logger:     log,
		timeouts:   timeouts.withDefaults(),
	}

	o.unsubscribes = append(o.unsubscribes,
		bus.Subscribe(event.KindRemoteChange, func(event.Event) {
			o.HandleRemoteChange(context.Background())
		}),
		bus.Subscribe(event.KindAccountChange, func(event.Event) {
			o.CheckAccountStatus(context.Background())
		}),
	)

	return o
}

// Restore loads the persisted user intent and, when the user had opted in,
// re-attempts Enable. Called once at startup; a previous failed attempt does
// not clear the intent, so this is where sync recovers across restarts.
func (o *Orchestrator) Restore(ctx context.Context) error {
	wants, err := o.settings.GetBool(ctx, store.PrefKeySyncEnabled)
	if err != nil {
		return fmt.Errorf("load sync intent: %w", err)
	}
	if !wants {
		return nil
	}

	o.machine.Update(func(s *models.SyncState) { s.UserWantsSync = true })
	return o.Enable(ctx)
}

// Enable opts the user into sync. The ordering is contractual:
//
//  1. The intent is recorded and persisted first, independent of everything
//     that follows, so a failed attempt is retried on next launch.
//  2. Encryption is initialized; this is the only point it turns on.
//  3. The backend is probed when not yet known to be available.
//  4. Only a successful probe enables sync; a failed one records an error
//     status and leaves sync disabled.
//  5. With the account already known available, a sync cycle starts
//     immediately.
func (o *Orchestrator) Enable(ctx context.Context) error {
	o.machine.Update(func(s *models.SyncState) { s.UserWantsSync = true })
	if err := o.settings.SetBool(ctx, store.PrefKeySyncEnabled, true); err != nil {
		// Intent lives on in memory for this session.
		o.logger.Err(err).Msg("failed to persist sync intent")
	}

	if err := o.encryption.Initialize(ctx); err != nil {
		// Degraded mode: payloads stay plaintext, sync itself still works.
		o.logger.Err(err).Msg("encryption initialization failed, continuing without encryption")
	}

	snapshot := o.machine.Snapshot()
	if !snapshot.BackendAvailable {
		probeCtx, cancel := context.WithTimeout(ctx, o.timeouts.Probe)
		err := o.adapter.Probe(probeCtx)
		cancel()
		if err != nil {
			o.logger.Warn().Err(err).Msg("backend availability probe failed")
			o.machine.Update(func(s *models.SyncState) {
				s.Status = models.SyncStatusError
				s.ErrorMessage = err.Error()
				s.SyncEnabled = false
			})
			return fmt.Errorf("enable sync: %w", err)
		}
	}

	snapshot = o.machine.Update(func(s *models.SyncState) {
		s.BackendAvailable = true
		s.SyncEnabled = true
	})

	if snapshot.AccountStatus == models.AccountStatusAvailable {
		o.TriggerSync(ctx)
	}
	return nil
}

// Disable is a full reset: it clears the intent and the runtime flags,
// persists the opt-out, and drops the in-memory encryption key. It never
// fails and never inspects prior state; calling it repeatedly is safe.
func (o *Orchestrator) Disable(ctx context.Context) {
	o.machine.Update(func(s *models.SyncState) {
		s.UserWantsSync = false
		s.SyncEnabled = false
		s.Status = models.SyncStatusIdle
		s.ErrorMessage = ""
	})

	if err := o.settings.SetBool(ctx, store.PrefKeySyncEnabled, false); err != nil {
		o.logger.Err(err).Msg("failed to persist sync opt-out")
	}

	// The persisted key is intentionally kept: re-enabling must still
	// decrypt history written before the toggle.
	o.encryption.Disable()
}

// CheckAccountStatus re-queries the backend's account status. A no-op unless
// the user wants sync. The query runs as a tracked async task; its result is
// marshaled back onto the state machine.
//
// On success, sync is enabled only when intent, backend availability and
// account availability all hold. Backend availability is the part an account
// recovery cannot forge: after a failure forced it to false, only a fresh
// successful probe through Enable can re-enable sync, so this path never
// silently overrides an earlier orchestrator-driven disable.
func (o *Orchestrator) CheckAccountStatus(ctx context.Context) {
	if !o.machine.Snapshot().UserWantsSync {
		return
	}

	o.tasks.Add(1)
	go func() {
		defer o.tasks.Done()

		queryCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), o.timeouts.Account)
		defer cancel()

		status, err := o.adapter.AccountStatus(queryCtx)
		if err != nil {
			o.logger.Warn().Err(err).Msg("account status query failed")
			o.machine.Update(func(s *models.SyncState) {
				s.AccountStatus = models.AccountStatusUnknown
				s.SyncEnabled = false
				s.BackendAvailable = false
				s.Status = models.SyncStatusError
				s.ErrorMessage = err.Error()
			})
			return
		}

		o.machine.Update(func(s *models.SyncState) {
			s.AccountStatus = status
			s.SyncEnabled = s.UserWantsSync && s.BackendAvailable && status == models.AccountStatusAvailable
		})
	}()
}

// TriggerSync evaluates the ordered sync preconditions and, when they all
// hold, dispatches one sync cycle. The guard evaluation and the transition
// to Syncing happen in a single machine update, so two overlapping triggers
// can never both start a cycle.
func (o *Orchestrator) TriggerSync(ctx context.Context) Guard {
	var guard Guard
	o.machine.Update(func(s *models.SyncState) {
		switch {
		case !s.BackendAvailable:
			s.Status = models.SyncStatusError
			s.ErrorMessage = "backend not available"
			guard = GuardBackendUnavailable
		case !s.SyncEnabled:
			guard = GuardSyncDisabled
		case s.AccountStatus != models.AccountStatusAvailable:
			guard = GuardAccountUnavailable
		case s.Status == models.SyncStatusSyncing:
			guard = GuardAlreadySyncing
		default:
			s.Status = models.SyncStatusSyncing
			s.ErrorMessage = ""
			guard = GuardPassed
		}
	})

	if guard != GuardPassed {
		if guard != GuardBackendUnavailable {
			o.logger.Debug().Str("guard", guard.String()).Msg("sync trigger dropped")
		}
		return guard
	}

	o.tasks.Add(1)
	go func() {
		defer o.tasks.Done()
		o.performSync(context.WithoutCancel(ctx))
	}()
	return GuardPassed
}

// performSync runs one sync cycle: flush pending local writes, wait the
// propagation grace, then record the outcome. The caller has already moved
// the machine to Syncing; this function always leaves it in Success or Error.
func (o *Orchestrator) performSync(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, o.timeouts.Sync)
	defer cancel()

	fail := func(err error) {
		o.logger.Warn().Err(err).Msg("sync cycle failed")
		o.machine.Update(func(s *models.SyncState) {
			s.Status = models.SyncStatusError
			s.ErrorMessage = err.Error()
		})
	}

	pending, err := o.controller.HasPendingChanges(ctx)
	if err != nil {
		fail(err)
		return
	}
	if pending {
		if err := o.controller.Flush(ctx); err != nil {
			fail(err)
			return
		}
	}

	select {
	case <-ctx.Done():
		fail(fmt.Errorf("sync cycle aborted: %w", ctx.Err()))
		return
	case <-time.After(o.timeouts.PropagationGrace):
	}

	now := time.Now()
	o.machine.Update(func(s *models.SyncState) {
		s.Status = models.SyncStatusSuccess
		s.ErrorMessage = ""
		s.LastSync = &now
	})
	o.logger.Info().Time("at", now).Msg("sync cycle completed")
}

// HandleRemoteChange reacts to a backend push: it ingests foreign writes into
// the local store and broadcasts a data-changed event for local consumers.
// It never mutates sync state; ingest failures are logged and dropped since
// the next full cycle re-fetches the same window.
func (o *Orchestrator) HandleRemoteChange(ctx context.Context) {
	snapshot := o.machine.Snapshot()

	o.tasks.Add(1)
	go func() {
		defer o.tasks.Done()

		pullCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), o.timeouts.Sync)
		defer cancel()

		since := time.Time{}
		if snapshot.LastSync != nil {
			since = *snapshot.LastSync
		}
		if err := o.controller.PullRemote(pullCtx, since); err != nil {
			o.logger.Warn().Err(err).Msg("failed to ingest remote change")
			return
		}

		o.bus.Publish(event.Event{Kind: event.KindDataChanged})
	}()
}

// ResolveConflicts re-runs a sync cycle when the backend is reachable and
// sync is enabled. No field-level merging happens here: the backend's own
// write-merge semantics resolve concurrent edits, so re-syncing is the whole
// strategy. Unlike TriggerSync it does not require an available account and
// does not record an error when its guards fail.
func (o *Orchestrator) ResolveConflicts(ctx context.Context) Guard {
	var guard Guard
	o.machine.Update(func(s *models.SyncState) {
		switch {
		case !s.BackendAvailable:
			guard = GuardBackendUnavailable
		case !s.SyncEnabled:
			guard = GuardSyncDisabled
		case s.Status == models.SyncStatusSyncing:
			guard = GuardAlreadySyncing
		default:
			s.Status = models.SyncStatusSyncing
			s.ErrorMessage = ""
			guard = GuardPassed
		}
	})
	if guard != GuardPassed {
		return guard
	}

	o.tasks.Add(1)
	go func() {
		defer o.tasks.Done()
		o.performSync(context.WithoutCancel(ctx))
	}()
	return GuardPassed
}

// Wait blocks until every in-flight async task has finished. Used during
// shutdown and by tests that need deterministic completion.
func (o *Orchestrator) Wait() {
	o.tasks.Wait()
}

// Close detaches the orchestrator from the bus and drains in-flight tasks.
func (o *Orchestrator) Close() {
	for _, unsubscribe := range o.unsubscribes {
		unsubscribe()
	}
	o.Wait()
}
