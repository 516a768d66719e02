// Package pbkdf2core implements RFC 8018 PBKDF2 with HMAC-SHA-256 as the
// PRF, built over internal/hmac256. Used both as Earworm's pre-phase seed
// derivation and post-phase output stretch (spec.md §4.D, §4.G).
package pbkdf2core

import (
	"errors"

	"earworm/internal/codec"
	"earworm/internal/hmac256"
	"earworm/internal/sha256core"
)

// ErrInvalidParam reports iterations < 1 or outlen < 1 (spec.md §4.D).
var ErrInvalidParam = errors.New("pbkdf2core: invalid parameter")

// Key fills out with outlen bytes derived from (secret, salt, iterations)
// per RFC 8018, concatenating T_1 || T_2 || ... where each T_i is the XOR
// sum of `iterations` HMAC-SHA-256 evaluations.
func Key(out []byte, secret, salt []byte, iterations uint32) error {
	if iterations < 1 || len(out) < 1 {
		return ErrInvalidParam
	}

	var blockIdx [4]byte
	var u [sha256core.Size]byte
	var t [sha256core.Size]byte

	for blockNum, off := uint32(1), 0; off < len(out); blockNum, off = blockNum+1, off+sha256core.Size {
		codec.BE32Enc(blockIdx[:], blockNum)

		var ctx hmac256.Context
		hmac256.Init(&ctx, secret)
		hmac256.Update(&ctx, salt)
		hmac256.Update(&ctx, blockIdx[:])
		hmac256.Final(u[:], &ctx)
		t = u

		for i := uint32(1); i < iterations; i++ {
			hmac256.Init(&ctx, secret)
			hmac256.Update(&ctx, u[:])
			hmac256.Final(u[:], &ctx)
			for j := range t {
				t[j] ^= u[j]
			}
		}

		copy(out[off:], t[:])
	}

	return nil
}
