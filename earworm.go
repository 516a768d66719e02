// Package earworm is the public entry point for the Earworm memory-hard
// password hashing function: arena initialization, the PHS hash call, and
// optional teardown (spec.md §4.H "Public API"). It is a thin facade over
// the arena and phs packages so callers only need a single import.
package earworm

import (
	"earworm/arena"
	"earworm/internal/metrics"
	"earworm/phs"
)

// Re-exported error sentinels (spec.md §7).
var (
	ErrInvalidParam       = phs.ErrInvalidParam
	ErrArenaUninitialized = arena.ErrUninitialized
	ErrAlreadyInitialized = arena.ErrAlreadyInitialized
)

// InitializeArena allocates 2^exponent bytes of read-only pseudo-random
// arena data and retains it for the lifetime of the process. Must be called
// exactly once before any call to PHS (spec.md §4.F).
func InitializeArena(exponent int) error {
	err := arena.Initialize(exponent)
	metrics.RecordInitialize(err)
	return err
}

// PHS computes the Earworm password hash, writing outlen bytes into out.
// tCost is the number of memory-probing rounds; mCost controls how many
// arena blocks one lane's index derivation can address per round
// (spec.md §4.G).
func PHS(out []byte, secret, salt []byte, tCost, mCost uint32) error {
	err := phs.PHS(out, secret, salt, tCost, mCost)
	metrics.RecordPHS(err)
	return err
}

// TeardownArena releases the process-wide arena and returns the subsystem
// to the uninitialized state. Optional per spec.md §4.H.
func TeardownArena() error {
	err := arena.Teardown()
	metrics.RecordTeardown(err)
	return err
}

// Lifecycle reports the arena's current state and transition history, for
// diagnostics (adapted from the teacher's key-lifecycle reporting).
func Lifecycle() (current arena.State, history []arena.State) {
	return arena.Lifecycle()
}
