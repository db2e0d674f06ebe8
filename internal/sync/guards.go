// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The ClipVault Authors

package sync

// Guard identifies which precondition decided the outcome of a sync trigger.
// The checks run in a fixed order and the first failing one wins.
type Guard int

const (
	// GuardPassed means every precondition held and a sync cycle was
	// dispatched.
	GuardPassed Guard = iota

	// GuardBackendUnavailable means the backend has not been probed
	// available; the trigger records an error status.
	GuardBackendUnavailable

	// GuardSyncDisabled means the user has not opted into sync. Not an
	// error: the trigger is silently dropped.
	GuardSyncDisabled

	// GuardAccountUnavailable means the device account is not usable.
	// Silently dropped, same as GuardSyncDisabled.
	GuardAccountUnavailable

	// GuardAlreadySyncing means a sync cycle is already in flight; a second
	// one is not started.
	GuardAlreadySyncing
)

func (g Guard) String() string {
	switch g {
	case GuardPassed:
		return "passed"
	case GuardBackendUnavailable:
		return "backend unavailable"
	case GuardSyncDisabled:
		return "sync disabled"
	case GuardAccountUnavailable:
		return "account unavailable"
	case GuardAlreadySyncing:
		return "already syncing"
	default:
		return "unknown"
	}
}
