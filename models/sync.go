package models

import "time"

// SyncStatus is the phase of the sync cycle. Syncing is transient: every
// cycle ends in Success or Error before another one may begin.
type SyncStatus int

const (
	SyncStatusIdle SyncStatus = iota
	SyncStatusSyncing
	SyncStatusSuccess
	SyncStatusError
)

func (s SyncStatus) String() string {
	switch s {
	case SyncStatusIdle:
		return "idle"
	case SyncStatusSyncing:
		return "syncing"
	case SyncStatusSuccess:
		return "success"
	case SyncStatusError:
		return "error"
	default:
		return "unknown"
	}
}

// AccountStatus mirrors the remote backend's view of the device account.
type AccountStatus int

const (
	AccountStatusUnknown AccountStatus = iota
	AccountStatusAvailable
	AccountStatusNoAccount
	AccountStatusRestricted
	AccountStatusTemporarilyUnavailable
)

func (a AccountStatus) String() string {
	switch a {
	case AccountStatusAvailable:
		return "available"
	case AccountStatusNoAccount:
		return "no account"
	case AccountStatusRestricted:
		return "restricted"
	case AccountStatusTemporarilyUnavailable:
		return "temporarily unavailable"
	default:
		return "unknown"
	}
}

// SyncState is the observable snapshot of the sync subsystem. A single
// instance exists per process; only the orchestrator mutates it, observers
// receive copies and never a torn read.
//
// Invariant: SyncEnabled implies BackendAvailable.
type SyncState struct {
	Status        SyncStatus    `json:"status"`
	ErrorMessage  string        `json:"error_message,omitempty"`
	LastSync      *time.Time    `json:"last_sync,omitempty"`
	AccountStatus AccountStatus `json:"account_status"`

	BackendAvailable bool `json:"backend_available"`
	SyncEnabled      bool `json:"sync_enabled"`

	// UserWantsSync is the persisted user intent: it survives restarts and
	// seeds the next enable attempt even when the previous one failed.
	UserWantsSync bool `json:"user_wants_sync"`
}
