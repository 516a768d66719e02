// Package phs implements Earworm's memory-hard hashing core: the PBKDF2
// pre-phase seed derivation, the arena-probing mixing loop, and the
// PBKDF2 post-phase compression (spec.md §4.G).
package phs

import (
	"errors"
	"fmt"

	"earworm/arena"
	"earworm/internal/aescore"
	"earworm/internal/codec"
	"earworm/internal/pbkdf2core"
)

// L is the fixed lane count: eight 16-byte lanes, 128 bytes of working
// state (SPEC_FULL.md §2, "Lane count L = 8").
const L = 8

const laneSize = 16

var (
	// ErrInvalidParam covers every out-of-range cost parameter, zero-length
	// output, or m_cost/arena mismatch (spec.md §7 INVALID_PARAM).
	ErrInvalidParam = errors.New("phs: invalid parameter")
	// ErrArenaUninitialized is returned when PHS runs before the process-wide
	// arena has been built (spec.md §7 ARENA_UNINITIALIZED).
	ErrArenaUninitialized = arena.ErrUninitialized
)

// PHS computes the Earworm password hash into out[0:len(out)]. It never
// writes beyond out on failure — out's contents are undefined if a non-nil
// error is returned (spec.md §4.G "Return").
//
// tCost is the number of memory-probing rounds (>= 1). mCost is log2 of the
// number of arena blocks addressable by one lane's index derivation per
// round; the implementation enforces 2^mCost <= N, the arena's block count
// (SPEC_FULL.md §2, "m_cost semantics").
func PHS(out []byte, secret, salt []byte, tCost, mCost uint32) error {
	if len(out) == 0 {
		return fmt.Errorf("%w: outlen must be >= 1", ErrInvalidParam)
	}
	if tCost < 1 {
		return fmt.Errorf("%w: t_cost must be >= 1", ErrInvalidParam)
	}
	if mCost < 1 || mCost > 63 {
		return fmt.Errorf("%w: m_cost out of range", ErrInvalidParam)
	}

	a, err := arena.Instance()
	if err != nil {
		return err
	}
	if (uint64(1) << mCost) > a.BlockCount() {
		return fmt.Errorf("%w: 2^m_cost exceeds arena block count", ErrInvalidParam)
	}

	var S [L][laneSize]byte
	defer zeroizeState(&S)

	seed := make([]byte, L*laneSize)
	defer zeroize(seed)
	if err := pbkdf2core.Key(seed, secret, salt, 1); err != nil {
		return fmt.Errorf("phs: pre-phase: %w", err)
	}
	for lane := 0; lane < L; lane++ {
		copy(S[lane][:], seed[lane*laneSize:(lane+1)*laneSize])
	}

	mask := (uint64(1) << mCost) - 1
	for round := uint32(0); round < tCost; round++ {
		for lane := 0; lane < L; lane++ {
			idx := (codec.BE64Dec(S[lane][:8]) & mask) % a.BlockCount()
			var r [laneSize]byte
			copy(r[:], a.Block(idx))
			aescore.EncRound(&S[lane], &r)
		}
		var next [L][laneSize]byte
		for lane := 0; lane < L; lane++ {
			next[lane] = S[lane]
			aescore.EncRound(&next[lane], &S[(lane+1)%L])
		}
		S = next
	}

	flat := make([]byte, L*laneSize)
	defer zeroize(flat)
	for lane := 0; lane < L; lane++ {
		copy(flat[lane*laneSize:(lane+1)*laneSize], S[lane][:])
	}

	if err := pbkdf2core.Key(out, secret, flat, 1); err != nil {
		return fmt.Errorf("phs: post-phase: %w", err)
	}
	return nil
}

func zeroize(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

func zeroizeState(s *[L][laneSize]byte) {
	for lane := range s {
		for i := range s[lane] {
			s[lane][i] = 0
		}
	}
}
