package sync

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/clipvault/clipvault/internal/event"
	"github.com/clipvault/clipvault/internal/logger"
	"github.com/clipvault/clipvault/internal/mock"
	"github.com/clipvault/clipvault/internal/store"
	"github.com/clipvault/clipvault/models"
)

type orchestratorFixture struct {
	machine    *Machine
	bus        event.Bus
	encryption *mock.MockEncryptionService
	adapter    *mock.MockAdapter
	settings   *mock.MockSettingsRepository
	controller *mock.MockStoreController
	orch       *Orchestrator
}

func newOrchestratorFixture(t *testing.T) *orchestratorFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &orchestratorFixture{
		bus:        event.NewBus(logger.Nop()),
		encryption: mock.NewMockEncryptionService(ctrl),
		adapter:    mock.NewMockAdapter(ctrl),
		settings:   mock.NewMockSettingsRepository(ctrl),
		controller: mock.NewMockStoreController(ctrl),
	}
	f.machine = NewMachine(f.bus, logger.Nop())
	f.orch = NewOrchestrator(
		f.machine,
		f.encryption,
		f.adapter,
		f.settings,
		f.controller,
		f.bus,
		Timeouts{
			Probe:            time.Second,
			Account:          time.Second,
			Sync:             5 * time.Second,
			PropagationGrace: time.Millisecond,
		},
		logger.Nop(),
	)
	t.Cleanup(f.orch.Close)
	return f
}

// seed applies a starting state directly on the machine.
func (f *orchestratorFixture) seed(mutate func(*models.SyncState)) {
	f.machine.Update(mutate)
}

func TestOrchestrator_Enable(t *testing.T) {
	f := newOrchestratorFixture(t)
	ctx := context.Background()

	f.settings.EXPECT().SetBool(gomock.Any(), store.PrefKeySyncEnabled, true).Return(nil)
	f.encryption.EXPECT().Initialize(gomock.Any()).Return(nil)
	f.adapter.EXPECT().Probe(gomock.Any()).Return(nil)

	require.NoError(t, f.orch.Enable(ctx))

	got := f.machine.Snapshot()
	assert.True(t, got.UserWantsSync)
	assert.True(t, got.BackendAvailable)
	assert.True(t, got.SyncEnabled)
	// Account status is still unknown, so no cycle was dispatched.
	assert.Equal(t, models.SyncStatusIdle, got.Status)
}

func TestOrchestrator_EnableProbeFailure(t *testing.T) {
	f := newOrchestratorFixture(t)
	ctx := context.Background()

	f.settings.EXPECT().SetBool(gomock.Any(), store.PrefKeySyncEnabled, true).Return(nil)
	f.encryption.EXPECT().Initialize(gomock.Any()).Return(nil)
	f.adapter.EXPECT().Probe(gomock.Any()).Return(errors.New("container unreachable"))

	err := f.orch.Enable(ctx)
	require.Error(t, err)

	got := f.machine.Snapshot()
	assert.Equal(t, models.SyncStatusError, got.Status)
	assert.Equal(t, "container unreachable", got.ErrorMessage)
	assert.False(t, got.SyncEnabled)
	assert.False(t, got.BackendAvailable)
	// Intent survives the failed attempt so the next launch retries.
	assert.True(t, got.UserWantsSync)
}

func TestOrchestrator_EnableToleratesPersistFailure(t *testing.T) {
	f := newOrchestratorFixture(t)
	ctx := context.Background()

	f.settings.EXPECT().SetBool(gomock.Any(), store.PrefKeySyncEnabled, true).Return(errors.New("settings table locked"))
	f.encryption.EXPECT().Initialize(gomock.Any()).Return(nil)
	f.adapter.EXPECT().Probe(gomock.Any()).Return(nil)

	require.NoError(t, f.orch.Enable(ctx))

	got := f.machine.Snapshot()
	assert.True(t, got.SyncEnabled)
	assert.True(t, got.UserWantsSync)
}

func TestOrchestrator_EnableToleratesEncryptionFailure(t *testing.T) {
	f := newOrchestratorFixture(t)
	ctx := context.Background()

	f.settings.EXPECT().SetBool(gomock.Any(), store.PrefKeySyncEnabled, true).Return(nil)
	f.encryption.EXPECT().Initialize(gomock.Any()).Return(errors.New("key generation failed"))
	f.adapter.EXPECT().Probe(gomock.Any()).Return(nil)

	require.NoError(t, f.orch.Enable(ctx))
	assert.True(t, f.machine.Snapshot().SyncEnabled)
}

func TestOrchestrator_EnableWithAvailableAccountStartsCycle(t *testing.T) {
	f := newOrchestratorFixture(t)
	ctx := context.Background()

	f.seed(func(s *models.SyncState) { s.AccountStatus = models.AccountStatusAvailable })

	f.settings.EXPECT().SetBool(gomock.Any(), store.PrefKeySyncEnabled, true).Return(nil)
	f.encryption.EXPECT().Initialize(gomock.Any()).Return(nil)
	f.adapter.EXPECT().Probe(gomock.Any()).Return(nil)
	f.controller.EXPECT().HasPendingChanges(gomock.Any()).Return(false, nil)

	require.NoError(t, f.orch.Enable(ctx))
	f.orch.Wait()

	got := f.machine.Snapshot()
	assert.Equal(t, models.SyncStatusSuccess, got.Status)
	require.NotNil(t, got.LastSync)
}

func TestOrchestrator_EnableSkipsProbeWhenBackendKnown(t *testing.T) {
	f := newOrchestratorFixture(t)
	ctx := context.Background()

	f.seed(func(s *models.SyncState) { s.BackendAvailable = true })

	f.settings.EXPECT().SetBool(gomock.Any(), store.PrefKeySyncEnabled, true).Return(nil)
	f.encryption.EXPECT().Initialize(gomock.Any()).Return(nil)

	require.NoError(t, f.orch.Enable(ctx))
	assert.True(t, f.machine.Snapshot().SyncEnabled)
}

func TestOrchestrator_DisableIsTotalAndIdempotent(t *testing.T) {
	f := newOrchestratorFixture(t)
	ctx := context.Background()

	last := time.Now()
	f.seed(func(s *models.SyncState) {
		s.UserWantsSync = true
		s.SyncEnabled = true
		s.BackendAvailable = true
		s.Status = models.SyncStatusError
		s.ErrorMessage = "stale failure"
		s.LastSync = &last
	})

	f.settings.EXPECT().SetBool(gomock.Any(), store.PrefKeySyncEnabled, false).Return(nil).Times(2)
	f.encryption.EXPECT().Disable().Times(2)

	f.orch.Disable(ctx)
	f.orch.Disable(ctx)

	got := f.machine.Snapshot()
	assert.False(t, got.UserWantsSync)
	assert.False(t, got.SyncEnabled)
	assert.Equal(t, models.SyncStatusIdle, got.Status)
	assert.Empty(t, got.ErrorMessage)
	// The last successful sync time is historical fact, not intent.
	assert.Equal(t, &last, got.LastSync)
}

func TestOrchestrator_TriggerSyncGuards(t *testing.T) {
	tests := []struct {
		name      string
		seed      func(*models.SyncState)
		wantGuard Guard
		wantError bool
	}{
		{
			name:      "backend unavailable records error",
			seed:      func(s *models.SyncState) {},
			wantGuard: GuardBackendUnavailable,
			wantError: true,
		},
		{
			name: "sync disabled dropped silently",
			seed: func(s *models.SyncState) {
				s.BackendAvailable = true
			},
			wantGuard: GuardSyncDisabled,
		},
		{
			name: "account unavailable dropped silently",
			seed: func(s *models.SyncState) {
				s.BackendAvailable = true
				s.SyncEnabled = true
				s.AccountStatus = models.AccountStatusNoAccount
			},
			wantGuard: GuardAccountUnavailable,
		},
		{
			name: "cycle already in flight",
			seed: func(s *models.SyncState) {
				s.BackendAvailable = true
				s.SyncEnabled = true
				s.AccountStatus = models.AccountStatusAvailable
				s.Status = models.SyncStatusSyncing
			},
			wantGuard: GuardAlreadySyncing,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newOrchestratorFixture(t)
			f.seed(tt.seed)

			got := f.orch.TriggerSync(context.Background())

			assert.Equal(t, tt.wantGuard, got)
			snapshot := f.machine.Snapshot()
			if tt.wantError {
				assert.Equal(t, models.SyncStatusError, snapshot.Status)
				assert.NotEmpty(t, snapshot.ErrorMessage)
			} else {
				assert.NotEqual(t, models.SyncStatusError, snapshot.Status)
			}
		})
	}
}

func TestOrchestrator_TriggerSyncFlushesPendingChanges(t *testing.T) {
	f := newOrchestratorFixture(t)
	f.seed(func(s *models.SyncState) {
		s.UserWantsSync = true
		s.SyncEnabled = true
		s.BackendAvailable = true
		s.AccountStatus = models.AccountStatusAvailable
	})

	f.controller.EXPECT().HasPendingChanges(gomock.Any()).Return(true, nil)
	f.controller.EXPECT().Flush(gomock.Any()).Return(nil)

	got := f.orch.TriggerSync(context.Background())
	require.Equal(t, GuardPassed, got)
	f.orch.Wait()

	snapshot := f.machine.Snapshot()
	assert.Equal(t, models.SyncStatusSuccess, snapshot.Status)
	assert.Empty(t, snapshot.ErrorMessage)
	require.NotNil(t, snapshot.LastSync)
	assert.WithinDuration(t, time.Now(), *snapshot.LastSync, time.Minute)
}

func TestOrchestrator_TriggerSyncFlushFailure(t *testing.T) {
	f := newOrchestratorFixture(t)
	f.seed(func(s *models.SyncState) {
		s.UserWantsSync = true
		s.SyncEnabled = true
		s.BackendAvailable = true
		s.AccountStatus = models.AccountStatusAvailable
	})

	f.controller.EXPECT().HasPendingChanges(gomock.Any()).Return(true, nil)
	f.controller.EXPECT().Flush(gomock.Any()).Return(errors.New("push rejected"))

	require.Equal(t, GuardPassed, f.orch.TriggerSync(context.Background()))
	f.orch.Wait()

	snapshot := f.machine.Snapshot()
	assert.Equal(t, models.SyncStatusError, snapshot.Status)
	assert.Equal(t, "push rejected", snapshot.ErrorMessage)
	assert.Nil(t, snapshot.LastSync)
}

func TestOrchestrator_TriggerSyncSurvivesCancelledCaller(t *testing.T) {
	f := newOrchestratorFixture(t)
	f.seed(func(s *models.SyncState) {
		s.UserWantsSync = true
		s.SyncEnabled = true
		s.BackendAvailable = true
		s.AccountStatus = models.AccountStatusAvailable
	})

	f.controller.EXPECT().HasPendingChanges(gomock.Any()).Return(false, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.Equal(t, GuardPassed, f.orch.TriggerSync(ctx))
	f.orch.Wait()

	assert.Equal(t, models.SyncStatusSuccess, f.machine.Snapshot().Status)
}

func TestOrchestrator_CheckAccountStatusNoOpWithoutIntent(t *testing.T) {
	f := newOrchestratorFixture(t)

	// No adapter expectation: a query would fail the controller.
	f.orch.CheckAccountStatus(context.Background())
	f.orch.Wait()

	assert.Equal(t, models.AccountStatusUnknown, f.machine.Snapshot().AccountStatus)
}

func TestOrchestrator_CheckAccountStatusEnablesWhenAllHold(t *testing.T) {
	f := newOrchestratorFixture(t)
	f.seed(func(s *models.SyncState) {
		s.UserWantsSync = true
		s.BackendAvailable = true
	})

	f.adapter.EXPECT().AccountStatus(gomock.Any()).Return(models.AccountStatusAvailable, nil)

	f.orch.CheckAccountStatus(context.Background())
	f.orch.Wait()

	got := f.machine.Snapshot()
	assert.Equal(t, models.AccountStatusAvailable, got.AccountStatus)
	assert.True(t, got.SyncEnabled)
}

func TestOrchestrator_CheckAccountStatusDisablesOnDegradedAccount(t *testing.T) {
	f := newOrchestratorFixture(t)
	f.seed(func(s *models.SyncState) {
		s.UserWantsSync = true
		s.BackendAvailable = true
		s.SyncEnabled = true
	})

	f.adapter.EXPECT().AccountStatus(gomock.Any()).Return(models.AccountStatusRestricted, nil)

	f.orch.CheckAccountStatus(context.Background())
	f.orch.Wait()

	got := f.machine.Snapshot()
	assert.Equal(t, models.AccountStatusRestricted, got.AccountStatus)
	assert.False(t, got.SyncEnabled)
	assert.True(t, got.BackendAvailable)
}

func TestOrchestrator_CheckAccountStatusDoesNotOverrideBackendFailure(t *testing.T) {
	f := newOrchestratorFixture(t)
	// A previous failure cleared backend availability; the intent remains.
	f.seed(func(s *models.SyncState) {
		s.UserWantsSync = true
		s.BackendAvailable = false
	})

	f.adapter.EXPECT().AccountStatus(gomock.Any()).Return(models.AccountStatusAvailable, nil)

	f.orch.CheckAccountStatus(context.Background())
	f.orch.Wait()

	got := f.machine.Snapshot()
	assert.Equal(t, models.AccountStatusAvailable, got.AccountStatus)
	assert.False(t, got.SyncEnabled)
}

func TestOrchestrator_CheckAccountStatusQueryFailure(t *testing.T) {
	f := newOrchestratorFixture(t)
	f.seed(func(s *models.SyncState) {
		s.UserWantsSync = true
		s.BackendAvailable = true
		s.SyncEnabled = true
		s.AccountStatus = models.AccountStatusAvailable
	})

	f.adapter.EXPECT().AccountStatus(gomock.Any()).Return(models.AccountStatusUnknown, errors.New("account query failed"))

	f.orch.CheckAccountStatus(context.Background())
	f.orch.Wait()

	got := f.machine.Snapshot()
	assert.Equal(t, models.AccountStatusUnknown, got.AccountStatus)
	assert.False(t, got.SyncEnabled)
	assert.False(t, got.BackendAvailable)
	assert.Equal(t, models.SyncStatusError, got.Status)
	assert.Equal(t, "account query failed", got.ErrorMessage)
}

func TestOrchestrator_AccountChangeEventTriggersRecheck(t *testing.T) {
	f := newOrchestratorFixture(t)
	f.seed(func(s *models.SyncState) {
		s.UserWantsSync = true
		s.BackendAvailable = true
	})

	f.adapter.EXPECT().AccountStatus(gomock.Any()).Return(models.AccountStatusAvailable, nil)

	f.bus.Publish(event.Event{Kind: event.KindAccountChange})
	f.orch.Wait()

	assert.True(t, f.machine.Snapshot().SyncEnabled)
}

func TestOrchestrator_HandleRemoteChange(t *testing.T) {
	f := newOrchestratorFixture(t)
	last := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	f.seed(func(s *models.SyncState) { s.LastSync = &last })

	var dataChanged int
	f.bus.Subscribe(event.KindDataChanged, func(event.Event) { dataChanged++ })

	f.controller.EXPECT().PullRemote(gomock.Any(), last).Return(nil)

	f.orch.HandleRemoteChange(context.Background())
	f.orch.Wait()

	assert.Equal(t, 1, dataChanged)
	// Ingestion never touches sync state.
	assert.Equal(t, models.SyncStatusIdle, f.machine.Snapshot().Status)
}

func TestOrchestrator_HandleRemoteChangePullFailure(t *testing.T) {
	f := newOrchestratorFixture(t)

	var dataChanged int
	f.bus.Subscribe(event.KindDataChanged, func(event.Event) { dataChanged++ })

	f.controller.EXPECT().PullRemote(gomock.Any(), time.Time{}).Return(errors.New("fetch failed"))

	f.orch.HandleRemoteChange(context.Background())
	f.orch.Wait()

	assert.Zero(t, dataChanged)
	assert.Equal(t, models.SyncStatusIdle, f.machine.Snapshot().Status)
}

func TestOrchestrator_ResolveConflictsIgnoresAccountStatus(t *testing.T) {
	f := newOrchestratorFixture(t)
	f.seed(func(s *models.SyncState) {
		s.UserWantsSync = true
		s.SyncEnabled = true
		s.BackendAvailable = true
		// Account never probed: TriggerSync would drop this.
	})

	f.controller.EXPECT().HasPendingChanges(gomock.Any()).Return(false, nil)

	require.Equal(t, GuardPassed, f.orch.ResolveConflicts(context.Background()))
	f.orch.Wait()

	assert.Equal(t, models.SyncStatusSuccess, f.machine.Snapshot().Status)
}

func TestOrchestrator_ResolveConflictsGuardsSilently(t *testing.T) {
	f := newOrchestratorFixture(t)

	got := f.orch.ResolveConflicts(context.Background())

	assert.Equal(t, GuardBackendUnavailable, got)
	snapshot := f.machine.Snapshot()
	assert.Equal(t, models.SyncStatusIdle, snapshot.Status)
	assert.Empty(t, snapshot.ErrorMessage)
}

func TestOrchestrator_Restore(t *testing.T) {
	t.Run("no persisted intent", func(t *testing.T) {
		f := newOrchestratorFixture(t)
		f.settings.EXPECT().GetBool(gomock.Any(), store.PrefKeySyncEnabled).Return(false, nil)

		require.NoError(t, f.orch.Restore(context.Background()))
		assert.False(t, f.machine.Snapshot().UserWantsSync)
	})

	t.Run("persisted intent re-enables", func(t *testing.T) {
		f := newOrchestratorFixture(t)
		f.settings.EXPECT().GetBool(gomock.Any(), store.PrefKeySyncEnabled).Return(true, nil)
		f.settings.EXPECT().SetBool(gomock.Any(), store.PrefKeySyncEnabled, true).Return(nil)
		f.encryption.EXPECT().Initialize(gomock.Any()).Return(nil)
		f.adapter.EXPECT().Probe(gomock.Any()).Return(nil)

		require.NoError(t, f.orch.Restore(context.Background()))
		assert.True(t, f.machine.Snapshot().SyncEnabled)
	})

	t.Run("settings load failure", func(t *testing.T) {
		f := newOrchestratorFixture(t)
		f.settings.EXPECT().GetBool(gomock.Any(), store.PrefKeySyncEnabled).Return(false, errors.New("db closed"))

		require.Error(t, f.orch.Restore(context.Background()))
	})
}
