// Package metrics tracks invocation counters for the arena and PHS
// subsystems. Adapted from the teacher's stats.go, which ran ad hoc
// randomness tests (monobit counts) over sample ciphertext; repointed here
// at call-volume and error-rate counters the CLI's info subcommand reports,
// since an on-line statistical test suite has no role in a deterministic
// hashing primitive's steady-state operation.
package metrics

import "sync/atomic"

var (
	initializeCalls  atomic.Int64
	initializeErrors atomic.Int64
	phsCalls         atomic.Int64
	phsErrors        atomic.Int64
	teardownCalls    atomic.Int64
	teardownErrors   atomic.Int64
)

// RecordInitialize counts one InitializeArena call, tracking whether it
// returned an error.
func RecordInitialize(err error) {
	initializeCalls.Add(1)
	if err != nil {
		initializeErrors.Add(1)
	}
}

// RecordPHS counts one PHS call, tracking whether it returned an error.
func RecordPHS(err error) {
	phsCalls.Add(1)
	if err != nil {
		phsErrors.Add(1)
	}
}

// RecordTeardown counts one TeardownArena call, tracking whether it
// returned an error.
func RecordTeardown(err error) {
	teardownCalls.Add(1)
	if err != nil {
		teardownErrors.Add(1)
	}
}

// Snapshot is a point-in-time copy of every counter, safe to print or
// serialize without racing the live counters.
type Snapshot struct {
	InitializeCalls, InitializeErrors int64
	PHSCalls, PHSErrors               int64
	TeardownCalls, TeardownErrors     int64
}

// Read returns a Snapshot of the current counter values.
func Read() Snapshot {
	return Snapshot{
		InitializeCalls:  initializeCalls.Load(),
		InitializeErrors: initializeErrors.Load(),
		PHSCalls:         phsCalls.Load(),
		PHSErrors:        phsErrors.Load(),
		TeardownCalls:    teardownCalls.Load(),
		TeardownErrors:   teardownErrors.Load(),
	}
}

// Reset zeroes every counter. Intended for test isolation.
func Reset() {
	initializeCalls.Store(0)
	initializeErrors.Store(0)
	phsCalls.Store(0)
	phsErrors.Store(0)
	teardownCalls.Store(0)
	teardownErrors.Store(0)
}
