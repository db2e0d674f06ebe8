// Package sync supervises the multi-device synchronization of the local
// clipboard history: it owns the observable sync state, gates sync behind an
// ordered set of preconditions, and drives the remote backend adapter.
package sync

import (
	"github.com/clipvault/clipvault/internal/event"
	"github.com/clipvault/clipvault/internal/logger"
	"github.com/clipvault/clipvault/models"
)

// Machine confines all SyncState mutation to a single goroutine. Mutations
// are marshaled onto the owning loop as closures and applied one at a time,
// so observers can never see a torn state. Every applied mutation publishes
// the fresh snapshot on the event bus under [event.KindSyncState] before the
// mutating Update returns; sync-state handlers therefore must not call back
// into the Machine.
type Machine struct {
	bus    event.Bus
	logger *logger.Logger
	ops    chan machineOp
}

type machineOp struct {
	mutate func(*models.SyncState)
	reply  chan models.SyncState
}

// NewMachine constructs a [Machine] and starts its state-owning loop. The
// loop lives for the lifetime of the process; there is exactly one Machine
// per process.
func NewMachine(bus event.Bus, log *logger.Logger) *Machine {
	m := &Machine{
		bus:    bus,
		logger: log,
		ops:    make(chan machineOp),
	}
	go m.loop()
	return m
}

func (m *Machine) loop() {
	state := models.SyncState{
		Status:        models.SyncStatusIdle,
		AccountStatus: models.AccountStatusUnknown,
	}

	for op := range m.ops {
		if op.mutate != nil {
			op.mutate(&state)
		}
		snapshot := state

		if op.mutate != nil {
			m.logger.Debug().
				Str("status", snapshot.Status.String()).
				Str("account", snapshot.AccountStatus.String()).
				Bool("sync_enabled", snapshot.SyncEnabled).
				Msg("sync state changed")
			m.bus.Publish(event.Event{Kind: event.KindSyncState, Payload: snapshot})
		}

		op.reply <- snapshot
	}
}

// Update applies mutate on the state-owning loop and blocks until it has been
// applied, returning the resulting snapshot. mutate must not retain the
// pointer past its return.
func (m *Machine) Update(mutate func(*models.SyncState)) models.SyncState {
	reply := make(chan models.SyncState, 1)
	m.ops <- machineOp{mutate: mutate, reply: reply}
	return <-reply
}

// Snapshot returns a copy of the current state.
func (m *Machine) Snapshot() models.SyncState {
	reply := make(chan models.SyncState, 1)
	m.ops <- machineOp{reply: reply}
	return <-reply
}
