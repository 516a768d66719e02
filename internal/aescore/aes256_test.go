package aescore

import (
	"encoding/hex"
	"strings"
	"testing"
)

func TestFIPS197Vector(t *testing.T) {
	key, err := hex.DecodeString("000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f")
	if err != nil {
		t.Fatal(err)
	}
	plain, err := hex.DecodeString("00112233445566778899aabbccddeeff")
	if err != nil {
		t.Fatal(err)
	}
	want := "8EA2B7CA516745BFEAFC49904B496089"

	rk := ExpandKey256(key)
	var block [16]byte
	copy(block[:], plain)
	Encrypt256(&block, &rk)

	if got := strings.ToUpper(hex.EncodeToString(block[:])); got != want {
		t.Fatalf("got %s, want %s", got, want)
	}
}

func TestEncRoundDeterministic(t *testing.T) {
	key := make([]byte, 32)
	for i := range key {
		key[i] = byte(i)
	}
	rk := ExpandKey256(key)

	var s1, s2 [16]byte
	for i := range s1 {
		s1[i] = byte(i * 7)
		s2[i] = s1[i]
	}

	EncRound(&s1, &rk[1])
	EncRound(&s2, &rk[1])

	if s1 != s2 {
		t.Fatalf("EncRound is not deterministic: %x vs %x", s1, s2)
	}
	var zero [16]byte
	if s1 == zero {
		t.Fatal("EncRound produced all-zero output, suspicious")
	}
}

// TestEncRoundKAT pins EncRound to the published aesenc_round vector
// (Intel AES-NI whitepaper, "aes-wp-2012-09-22-v01"), rather than only
// checking it against itself for determinism.
func TestEncRoundKAT(t *testing.T) {
	stateInput, err := hex.DecodeString("5d47535d726f74636556747365545b7b")
	if err != nil {
		t.Fatal(err)
	}
	roundkey, err := hex.DecodeString("5d6e6f726575475b2979616853286948")
	if err != nil {
		t.Fatal(err)
	}
	want := "95E5D7DE584B108BC5A3DB9F2F1C31A8"

	var s, rk [16]byte
	copy(s[:], stateInput)
	copy(rk[:], roundkey)
	EncRound(&s, &rk)

	if got := strings.ToUpper(hex.EncodeToString(s[:])); got != want {
		t.Fatalf("got %s, want %s", got, want)
	}
}

func TestExpandKeyPanicsOnBadLength(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for short key")
		}
	}()
	ExpandKey256(make([]byte, 16))
}
