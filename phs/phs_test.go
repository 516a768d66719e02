package phs

import (
	"encoding/binary"
	"encoding/hex"
	"errors"
	"testing"

	"earworm/arena"
	"earworm/internal/vectors"
)

func resetArena(t *testing.T, exponent int) {
	t.Helper()
	if err := arena.Teardown(); err != nil && err != arena.ErrUninitialized {
		t.Fatalf("Teardown: %v", err)
	}
	if err := arena.Initialize(exponent); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	t.Cleanup(func() {
		_ = arena.Teardown()
	})
}

func TestPHSRejectsBeforeArenaInitialized(t *testing.T) {
	_ = arena.Teardown()
	out := make([]byte, 16)
	if err := PHS(out, []byte("secret"), []byte("salt"), 1, 1); err != arena.ErrUninitialized {
		t.Fatalf("expected ErrArenaUninitialized, got %v", err)
	}
}

func TestPHSInvalidParams(t *testing.T) {
	resetArena(t, vectors.E7Exponent)

	if err := PHS(nil, []byte("s"), []byte("salt"), 1, 1); !errors.Is(err, ErrInvalidParam) {
		t.Fatalf("expected ErrInvalidParam for empty out, got %v", err)
	}
	out := make([]byte, 16)
	if err := PHS(out, []byte("s"), []byte("salt"), 0, 1); !errors.Is(err, ErrInvalidParam) {
		t.Fatalf("expected ErrInvalidParam for t_cost=0, got %v", err)
	}
	if err := PHS(out, []byte("s"), []byte("salt"), 1, 0); !errors.Is(err, ErrInvalidParam) {
		t.Fatalf("expected ErrInvalidParam for m_cost=0, got %v", err)
	}
	// m_cost too large for this arena (2^m_cost > N).
	if err := PHS(out, []byte("s"), []byte("salt"), 1, 40); !errors.Is(err, ErrInvalidParam) {
		t.Fatalf("expected ErrInvalidParam for oversized m_cost, got %v", err)
	}
}

func TestPHSDeterministic(t *testing.T) {
	resetArena(t, vectors.E7Exponent)

	out1 := make([]byte, 16)
	out2 := make([]byte, 16)
	if err := PHS(out1, []byte("secret"), []byte("salt"), 50, 8); err != nil {
		t.Fatalf("PHS: %v", err)
	}
	if err := PHS(out2, []byte("secret"), []byte("salt"), 50, 8); err != nil {
		t.Fatalf("PHS: %v", err)
	}
	if hex.EncodeToString(out1) != hex.EncodeToString(out2) {
		t.Fatalf("PHS is not deterministic: %x vs %x", out1, out2)
	}
}

func TestPHSDifferentSaltsDiverge(t *testing.T) {
	resetArena(t, vectors.E7Exponent)

	out1 := make([]byte, 16)
	out2 := make([]byte, 16)
	if err := PHS(out1, []byte("secret"), []byte("salt-a"), 50, 8); err != nil {
		t.Fatalf("PHS: %v", err)
	}
	if err := PHS(out2, []byte("secret"), []byte("salt-b"), 50, 8); err != nil {
		t.Fatalf("PHS: %v", err)
	}
	if hex.EncodeToString(out1) == hex.EncodeToString(out2) {
		t.Fatal("different salts produced identical output")
	}
}

// TestE7SelfConsistencyVector reproduces spec scenario E7: an arena built at
// vectors.E7Exponent, then 16 concurrent PHS calls with thread IDs 0..15 as
// the 4-byte big-endian salt. This is the canonical vector this
// implementation commits to (spec.md §8, closing note on scenario E7).
func TestE7SelfConsistencyVector(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping memory-hard self-consistency vector in short mode")
	}
	resetArena(t, vectors.E7Exponent)

	type result struct {
		id  int
		out []byte
		err error
	}
	results := make(chan result, 16)
	for id := 0; id < 16; id++ {
		go func(id int) {
			salt := make([]byte, 4)
			binary.BigEndian.PutUint32(salt, uint32(id))
			out := make([]byte, vectors.E7OutLen)
			err := PHS(out, []byte(vectors.E7Secret), salt, vectors.E7TCost, vectors.E7MCost)
			results <- result{id: id, out: out, err: err}
		}(id)
	}

	got := make([]string, 16)
	for i := 0; i < 16; i++ {
		r := <-results
		if r.err != nil {
			t.Fatalf("thread %d: PHS: %v", r.id, r.err)
		}
		got[r.id] = hex.EncodeToString(r.out)
	}

	for id := 0; id < 16; id++ {
		if got[id] != vectors.E7Outputs[id] {
			t.Fatalf("thread %d: got %s, want %s", id, got[id], vectors.E7Outputs[id])
		}
	}
}
