// Package sha256core is a streaming, from-scratch FIPS 180-4 SHA-256
// implementation. It exists because Earworm's hard core (spec.md §1) treats
// SHA-256 as a component it owns and reimplements, the way a PHC-style
// reference implementation carries its own primitives rather than depending
// on the host's crypto library.
package sha256core

import "earworm/internal/codec"

// Size is the digest length in bytes.
const Size = 32

// BlockSize is the SHA-256 compression block length in bytes.
const BlockSize = 64

var h0 = [8]uint32{
	0x6a09e667, 0xbb67ae85, 0x3c6ef372, 0xa54ff53a,
	0x510e527f, 0x9b05688c, 0x1f83d9ab, 0x5be0cd19,
}

var k = [64]uint32{
	0x428a2f98, 0x71374491, 0xb5c0fbcf, 0xe9b5dba5, 0x3956c25b, 0x59f111f1, 0x923f82a4, 0xab1c5ed5,
	0xd807aa98, 0x12835b01, 0x243185be, 0x550c7dc3, 0x72be5d74, 0x80deb1fe, 0x9bdc06a7, 0xc19bf174,
	0xe49b69c1, 0xefbe4786, 0x0fc19dc6, 0x240ca1cc, 0x2de92c6f, 0x4a7484aa, 0x5cb0a9dc, 0x76f988da,
	0x983e5152, 0xa831c66d, 0xb00327c8, 0xbf597fc7, 0xc6e00bf3, 0xd5a79147, 0x06ca6351, 0x14292967,
	0x27b70a85, 0x2e1b2138, 0x4d2c6dfc, 0x53380d13, 0x650a7354, 0x766a0abb, 0x81c2c92e, 0x92722c85,
	0xa2bfe8a1, 0xa81a664b, 0xc24b8b70, 0xc76c51a3, 0xd192e819, 0xd6990624, 0xf40e3585, 0x106aa070,
	0x19a4c116, 0x1e376c08, 0x2748774c, 0x34b0bcb5, 0x391c0cb3, 0x4ed8aa4a, 0x5b9cca4f, 0x682e6ff3,
	0x748f82ee, 0x78a5636f, 0x84c87814, 0x8cc70208, 0x90befffa, 0xa4506ceb, 0xbef9a3f7, 0xc67178f2,
}

// Context is a streaming SHA-256 state: init, any number of Update calls,
// exactly one Final. Calling Update after Final is a contract violation
// (spec.md §3, "SHA-256 context" lifecycle).
type Context struct {
	h        [8]uint32
	length   uint64 // total message length in bytes
	buf      [BlockSize]byte
	buflen   int
	finished bool
}

// Init resets ctx to the initial SHA-256 state.
func Init(ctx *Context) {
	ctx.h = h0
	ctx.length = 0
	ctx.buflen = 0
	ctx.finished = false
}

// Update feeds data into ctx. May be called any number of times before Final.
func Update(ctx *Context, data []byte) {
	if ctx.finished {
		panic("sha256core: Update after Final")
	}
	ctx.length += uint64(len(data))

	if ctx.buflen > 0 {
		n := copy(ctx.buf[ctx.buflen:], data)
		ctx.buflen += n
		data = data[n:]
		if ctx.buflen == BlockSize {
			block(&ctx.h, ctx.buf[:])
			ctx.buflen = 0
		}
	}

	for len(data) >= BlockSize {
		block(&ctx.h, data[:BlockSize])
		data = data[BlockSize:]
	}

	if len(data) > 0 {
		ctx.buflen += copy(ctx.buf[ctx.buflen:], data)
	}
}

// Final completes the digest into out (must be Size bytes) and consumes ctx.
func Final(out []byte, ctx *Context) {
	if ctx.finished {
		panic("sha256core: Final called twice")
	}

	bitLen := ctx.length * 8
	var pad [BlockSize * 2]byte
	pad[0] = 0x80
	padLen := 1
	if rem := (ctx.buflen + 1) % BlockSize; rem <= BlockSize-8 {
		padLen += BlockSize - 8 - rem
	} else {
		padLen += 2*BlockSize - 8 - rem
	}
	codec.BE64Enc(pad[padLen:padLen+8], bitLen)
	Update(ctx, pad[:padLen+8])
	ctx.finished = true

	for i := 0; i < 8; i++ {
		codec.BE32Enc(out[i*4:i*4+4], ctx.h[i])
	}
}

// Sum256 is a convenience one-shot wrapper over Init/Update/Final.
func Sum256(data []byte) [Size]byte {
	var ctx Context
	Init(&ctx)
	Update(&ctx, data)
	var out [Size]byte
	Final(out[:], &ctx)
	return out
}

func rotr(x uint32, n uint) uint32 {
	return (x >> n) | (x << (32 - n))
}

func block(h *[8]uint32, p []byte) {
	var w [64]uint32
	for i := 0; i < 16; i++ {
		w[i] = codec.BE32Dec(p[i*4 : i*4+4])
	}
	for i := 16; i < 64; i++ {
		s0 := rotr(w[i-15], 7) ^ rotr(w[i-15], 18) ^ (w[i-15] >> 3)
		s1 := rotr(w[i-2], 17) ^ rotr(w[i-2], 19) ^ (w[i-2] >> 10)
		w[i] = w[i-16] + s0 + w[i-7] + s1
	}

	a, b, c, d, e, f, g, hh := h[0], h[1], h[2], h[3], h[4], h[5], h[6], h[7]

	for i := 0; i < 64; i++ {
		s1 := rotr(e, 6) ^ rotr(e, 11) ^ rotr(e, 25)
		ch := (e & f) ^ (^e & g)
		t1 := hh + s1 + ch + k[i] + w[i]
		s0 := rotr(a, 2) ^ rotr(a, 13) ^ rotr(a, 22)
		maj := (a & b) ^ (a & c) ^ (b & c)
		t2 := s0 + maj

		hh = g
		g = f
		f = e
		e = d + t1
		d = c
		c = b
		b = a
		a = t1 + t2
	}

	h[0] += a
	h[1] += b
	h[2] += c
	h[3] += d
	h[4] += e
	h[5] += f
	h[6] += g
	h[7] += hh
}
