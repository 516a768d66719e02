// example/rehash demonstrates the bcrypt-style "rehash on access" pattern:
// a stored hash computed under an older (t_cost, m_cost) pair is recomputed
// under the operator's current, presumably stiffer, cost parameters the
// first time a matching plaintext is seen again. Adapted from the teacher's
// example/key-rotation.go, which rotated a symmetric key on a schedule;
// here what "rotates" is the cost parameters baked into a hash, not a key.
package main

import (
	"bytes"
	"crypto/rand"
	"fmt"
	"log"

	"earworm"
)

type storedHash struct {
	salt  []byte
	out   []byte
	tCost uint32
	mCost uint32
}

func hashWith(secret []byte, tCost, mCost uint32) (storedHash, error) {
	salt := make([]byte, 16)
	if _, err := rand.Read(salt); err != nil {
		return storedHash{}, err
	}
	out := make([]byte, 32)
	if err := earworm.PHS(out, secret, salt, tCost, mCost); err != nil {
		return storedHash{}, err
	}
	return storedHash{salt: salt, out: out, tCost: tCost, mCost: mCost}, nil
}

func verify(secret []byte, h storedHash) (bool, error) {
	out := make([]byte, len(h.out))
	if err := earworm.PHS(out, secret, h.salt, h.tCost, h.mCost); err != nil {
		return false, err
	}
	return bytes.Equal(out, h.out), nil
}

// rehashIfStale recomputes h under (currentTCost, currentMCost) when the
// stored cost parameters are weaker than what the operator now requires.
// Must only be called after verify has already confirmed secret matches h.
func rehashIfStale(secret []byte, h storedHash, currentTCost, currentMCost uint32) (storedHash, bool, error) {
	if h.tCost >= currentTCost && h.mCost >= currentMCost {
		return h, false, nil
	}
	fresh, err := hashWith(secret, currentTCost, currentMCost)
	if err != nil {
		return storedHash{}, false, err
	}
	return fresh, true, nil
}

func main() {
	const arenaExponent = 22 // 2^18 blocks, enough for the raised m_cost below
	if err := earworm.InitializeArena(arenaExponent); err != nil {
		log.Fatalf("initialize arena: %v", err)
	}
	defer func() {
		if err := earworm.TeardownArena(); err != nil {
			log.Printf("teardown arena: %v", err)
		}
	}()

	secret := []byte("correct horse battery staple")

	h, err := hashWith(secret, 1000, 16)
	if err != nil {
		log.Fatalf("initial hash: %v", err)
	}
	fmt.Printf("stored under t_cost=%d m_cost=%d\n", h.tCost, h.mCost)

	ok, err := verify(secret, h)
	if err != nil {
		log.Fatalf("verify: %v", err)
	}
	if !ok {
		log.Fatal("verify failed against a hash we just computed")
	}

	// Operator raises the work factor; the next login rehashes transparently.
	const currentTCost, currentMCost uint32 = 2000, 18
	rehashed, didRehash, err := rehashIfStale(secret, h, currentTCost, currentMCost)
	if err != nil {
		log.Fatalf("rehash: %v", err)
	}
	if didRehash {
		fmt.Printf("rehashed to t_cost=%d m_cost=%d\n", rehashed.tCost, rehashed.mCost)
	}
}
