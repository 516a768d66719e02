// Package hmac256 implements RFC 2104 HMAC over the from-scratch SHA-256 in
// internal/sha256core, the same init/update/final lifecycle used throughout
// Earworm's hard core.
package hmac256

import "earworm/internal/sha256core"

const blockSize = sha256core.BlockSize

// Context holds the inner and outer SHA-256 contexts, pre-seeded with the
// padded key. Like sha256core.Context, it is consumed exactly once by Final.
type Context struct {
	inner, outer sha256core.Context
	finished     bool
}

// Init seeds ctx for the given key, which may be any length.
func Init(ctx *Context, key []byte) {
	var k [blockSize]byte
	if len(key) > blockSize {
		sum := sha256core.Sum256(key)
		copy(k[:], sum[:])
	} else {
		copy(k[:], key)
	}

	var ipad, opad [blockSize]byte
	for i := 0; i < blockSize; i++ {
		ipad[i] = k[i] ^ 0x36
		opad[i] = k[i] ^ 0x5c
	}

	sha256core.Init(&ctx.inner)
	sha256core.Update(&ctx.inner, ipad[:])
	sha256core.Init(&ctx.outer)
	sha256core.Update(&ctx.outer, opad[:])
	ctx.finished = false
}

// Update feeds message data into ctx. May be called any number of times.
func Update(ctx *Context, data []byte) {
	if ctx.finished {
		panic("hmac256: Update after Final")
	}
	sha256core.Update(&ctx.inner, data)
}

// Final writes the 32-byte MAC into out and consumes ctx.
func Final(out []byte, ctx *Context) {
	if ctx.finished {
		panic("hmac256: Final called twice")
	}
	ctx.finished = true

	var innerSum [sha256core.Size]byte
	sha256core.Final(innerSum[:], &ctx.inner)
	sha256core.Update(&ctx.outer, innerSum[:])
	sha256core.Final(out, &ctx.outer)
}

// Sum is a convenience one-shot HMAC-SHA-256 wrapper.
func Sum(key, data []byte) [sha256core.Size]byte {
	var ctx Context
	Init(&ctx, key)
	Update(&ctx, data)
	var out [sha256core.Size]byte
	Final(out[:], &ctx)
	return out
}
