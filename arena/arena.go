// Package arena implements Earworm's process-wide, read-only pseudo-random
// table (spec.md §3 "Arena", §4.F). It is constructed once, filled by a
// deterministic AES-CTR-like expansion of a fixed public constant, then
// frozen: every subsequent read is lock-free because the data never
// changes again (spec.md §5 "Shared state").
package arena

import (
	"errors"
	"fmt"
	"sync"

	"earworm/internal/aescore"
	"earworm/internal/codec"

	"golang.org/x/crypto/sha3"
)

const blockSize = 16

// Allowed arena exponent range (SPEC_FULL.md §2): below 16 the arena is not
// meaningfully memory-hard; above 34 a single-process allocation is
// unreasonable on commodity hardware.
const (
	MinExponent = 16
	MaxExponent = 34
)

// domainTag is appended to each counter block before AES-256 encryption
// under the all-zero key, domain-separating the arena fill from any other
// use of the same fixed key (SPEC_FULL.md §2, "Arena seed").
const domainTag uint64 = 0x4541525f574f524d // ASCII "EAR_WORM" read as a big-endian uint64

var (
	// ErrAlreadyInitialized is returned by Initialize when the process-wide
	// arena has already been built (spec.md §7 ALREADY_INITIALIZED).
	ErrAlreadyInitialized = errors.New("arena: already initialized")
	// ErrUninitialized is returned when a caller asks for the shared arena
	// before Initialize has completed (spec.md §7 ARENA_UNINITIALIZED).
	ErrUninitialized = errors.New("arena: not initialized")
	// ErrInvalidParam reports an exponent outside [MinExponent, MaxExponent].
	ErrInvalidParam = errors.New("arena: invalid exponent")
)

// Arena is a frozen, read-only pseudo-random byte table. Safe for
// unsynchronized concurrent reads once construction returns (spec.md §5).
type Arena struct {
	data         []byte
	blockCount   uint64
	exponent     int
	fingerprint  [64]byte
	hardwarePath aescore.HardwarePath
}

// New deterministically builds a fresh Arena of 2^exponent bytes. It does
// not touch the process-wide singleton — callers that want the
// one-shot-per-process semantics of spec.md §4.F should use Initialize.
func New(exponent int) (*Arena, error) {
	if exponent < MinExponent || exponent > MaxExponent {
		return nil, fmt.Errorf("%w: exponent %d outside [%d, %d]", ErrInvalidParam, exponent, MinExponent, MaxExponent)
	}

	size := uint64(1) << uint(exponent)
	data := make([]byte, size)

	var key [32]byte // all-zero K_arena, SPEC_FULL.md §2
	rk := aescore.ExpandKey256(key[:])

	blockCount := size / blockSize
	var input [blockSize]byte
	codec.BE64Enc(input[8:], domainTag)
	for j := uint64(0); j < blockCount; j++ {
		codec.BE64Enc(input[:8], j)
		block := input
		aescore.Encrypt256(&block, &rk)
		copy(data[j*blockSize:(j+1)*blockSize], block[:])
	}

	a := &Arena{
		data:         data,
		blockCount:   blockCount,
		exponent:     exponent,
		hardwarePath: aescore.DetectHardwarePath(),
	}
	sum := sha3.Sum512(data)
	a.fingerprint = sum
	return a, nil
}

// BlockCount returns N, the number of 16-byte blocks in the arena.
func (a *Arena) BlockCount() uint64 { return a.blockCount }

// Exponent returns the log2(size in bytes) this arena was built with.
func (a *Arena) Exponent() int { return a.exponent }

// Fingerprint returns the SHA3-512 digest of the realized arena contents,
// usable as an audit trail that two processes built bit-identical arenas
// for the same exponent (spec.md §3 Invariant 1, Testable Property 4).
func (a *Arena) Fingerprint() [64]byte { return a.fingerprint }

// HardwarePath reports which AES execution path was detected while filling
// this arena (SPEC_FULL.md §4 domain-stack entry for golang.org/x/sys/cpu).
func (a *Arena) HardwarePath() aescore.HardwarePath { return a.hardwarePath }

// Block returns the 16-byte block at index idx. idx must be < BlockCount();
// callers (phs.PHS) are expected to have already reduced their index modulo
// BlockCount().
func (a *Arena) Block(idx uint64) []byte {
	return a.data[idx*blockSize : (idx+1)*blockSize]
}

var (
	globalMu    sync.Mutex
	global      *Arena
	globalState = Uninitialized
)

// Initialize builds the process-wide shared arena exactly once. Subsequent
// calls fail with ErrAlreadyInitialized; this must complete (with its
// happens-before guarantee from globalMu) before any worker goroutine calls
// phs.PHS, per spec.md §5.
func Initialize(exponent int) error {
	globalMu.Lock()
	defer globalMu.Unlock()

	if globalState != Uninitialized {
		return ErrAlreadyInitialized
	}
	globalState = Initializing
	recordTransition(Initializing)

	a, err := New(exponent)
	if err != nil {
		globalState = Uninitialized
		recordTransition(Uninitialized)
		return err
	}

	global = a
	globalState = Ready
	recordTransition(Ready)
	return nil
}

// Instance returns the process-wide shared arena, or ErrUninitialized if
// Initialize has not yet completed.
func Instance() (*Arena, error) {
	globalMu.Lock()
	defer globalMu.Unlock()

	if globalState != Ready {
		return nil, ErrUninitialized
	}
	return global, nil
}

// Teardown releases the process-wide shared arena and returns the subsystem
// to the uninitialized state (spec.md §4.H, optional teardown).
func Teardown() error {
	globalMu.Lock()
	defer globalMu.Unlock()

	if globalState != Ready {
		return ErrUninitialized
	}
	global = nil
	globalState = TornDown
	recordTransition(TornDown)
	globalState = Uninitialized
	return nil
}
