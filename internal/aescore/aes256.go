// Package aescore implements AES-256 key expansion, single-block encryption,
// and a standalone AES round primitive (spec.md §4.E). It is the building
// block the PHF core (phs.PHS) uses to mix arena-derived data into its
// working state.
//
// Decomposition follows the classic SubBytes/ShiftRows/MixColumns/
// AddRoundKey split, the same shape as other_examples' wedkarz02-aes256
// reference, specialized to fixed 16-byte arrays instead of slices for the
// hot-path use inside the memory-hard loop.
package aescore

const (
	blockSize = 16
	nk        = 8  // AES-256 key length in 32-bit words
	nr        = 14 // AES-256 number of rounds
	// RoundKeyCount is the number of 16-byte round keys produced by key
	// expansion (Nr + 1), per spec.md §3's aeskey_t.
	RoundKeyCount = nr + 1
)

// RoundKeys is the expanded AES-256 key schedule: RoundKeyCount 16-byte
// round keys, immutable once derived (spec.md §3).
type RoundKeys [RoundKeyCount][blockSize]byte

var sbox = [256]byte{
	0x63, 0x7c, 0x77, 0x7b, 0xf2, 0x6b, 0x6f, 0xc5, 0x30, 0x01, 0x67, 0x2b, 0xfe, 0xd7, 0xab, 0x76,
	0xca, 0x82, 0xc9, 0x7d, 0xfa, 0x59, 0x47, 0xf0, 0xad, 0xd4, 0xa2, 0xaf, 0x9c, 0xa4, 0x72, 0xc0,
	0xb7, 0xfd, 0x93, 0x26, 0x36, 0x3f, 0xf7, 0xcc, 0x34, 0xa5, 0xe5, 0xf1, 0x71, 0xd8, 0x31, 0x15,
	0x04, 0xc7, 0x23, 0xc3, 0x18, 0x96, 0x05, 0x9a, 0x07, 0x12, 0x80, 0xe2, 0xeb, 0x27, 0xb2, 0x75,
	0x09, 0x83, 0x2c, 0x1a, 0x1b, 0x6e, 0x5a, 0xa0, 0x52, 0x3b, 0xd6, 0xb3, 0x29, 0xe3, 0x2f, 0x84,
	0x53, 0xd1, 0x00, 0xed, 0x20, 0xfc, 0xb1, 0x5b, 0x6a, 0xcb, 0xbe, 0x39, 0x4a, 0x4c, 0x58, 0xcf,
	0xd0, 0xef, 0xaa, 0xfb, 0x43, 0x4d, 0x33, 0x85, 0x45, 0xf9, 0x02, 0x7f, 0x50, 0x3c, 0x9f, 0xa8,
	0x51, 0xa3, 0x40, 0x8f, 0x92, 0x9d, 0x38, 0xf5, 0xbc, 0xb6, 0xda, 0x21, 0x10, 0xff, 0xf3, 0xd2,
	0xcd, 0x0c, 0x13, 0xec, 0x5f, 0x97, 0x44, 0x17, 0xc4, 0xa7, 0x7e, 0x3d, 0x64, 0x5d, 0x19, 0x73,
	0x60, 0x81, 0x4f, 0xdc, 0x22, 0x2a, 0x90, 0x88, 0x46, 0xee, 0xb8, 0x14, 0xde, 0x5e, 0x0b, 0xdb,
	0xe0, 0x32, 0x3a, 0x0a, 0x49, 0x06, 0x24, 0x5c, 0xc2, 0xd3, 0xac, 0x62, 0x91, 0x95, 0xe4, 0x79,
	0xe7, 0xc8, 0x37, 0x6d, 0x8d, 0xd5, 0x4e, 0xa9, 0x6c, 0x56, 0xf4, 0xea, 0x65, 0x7a, 0xae, 0x08,
	0xba, 0x78, 0x25, 0x2e, 0x1c, 0xa6, 0xb4, 0xc6, 0xe8, 0xdd, 0x74, 0x1f, 0x4b, 0xbd, 0x8b, 0x8a,
	0x70, 0x3e, 0xb5, 0x66, 0x48, 0x03, 0xf6, 0x0e, 0x61, 0x35, 0x57, 0xb9, 0x86, 0xc1, 0x1d, 0x9e,
	0xe1, 0xf8, 0x98, 0x11, 0x69, 0xd9, 0x8e, 0x94, 0x9b, 0x1e, 0x87, 0xe9, 0xce, 0x55, 0x28, 0xdf,
	0x8c, 0xa1, 0x89, 0x0d, 0xbf, 0xe6, 0x42, 0x68, 0x41, 0x99, 0x2d, 0x0f, 0xb0, 0x54, 0xbb, 0x16,
}

var rcon = [11]byte{0x00, 0x01, 0x02, 0x04, 0x08, 0x10, 0x20, 0x40, 0x80, 0x1b, 0x36}

func gmul2(a byte) byte {
	if a&0x80 != 0 {
		return (a << 1) ^ 0x1b
	}
	return a << 1
}

func gmul3(a byte) byte {
	return gmul2(a) ^ a
}

// ExpandKey256 derives the AES-256 round-key schedule from a 32-byte user
// key (FIPS-197 key expansion, spec.md §4.E aes256enc_keysetup).
func ExpandKey256(userKey []byte) RoundKeys {
	if len(userKey) != 32 {
		panic("aescore: AES-256 key must be 32 bytes")
	}

	var w [4 * RoundKeyCount][4]byte
	for i := 0; i < nk; i++ {
		copy(w[i][:], userKey[i*4:i*4+4])
	}

	for i := nk; i < 4*RoundKeyCount; i++ {
		temp := w[i-1]
		if i%nk == 0 {
			temp = [4]byte{temp[1], temp[2], temp[3], temp[0]} // RotWord
			for j := range temp {
				temp[j] = sbox[temp[j]] // SubWord
			}
			temp[0] ^= rcon[i/nk]
		} else if i%nk == 4 {
			for j := range temp {
				temp[j] = sbox[temp[j]] // SubWord only, per FIPS-197 Nk>6 case
			}
		}
		for j := range temp {
			w[i][j] = w[i-nk][j] ^ temp[j]
		}
	}

	var rk RoundKeys
	for round := 0; round < RoundKeyCount; round++ {
		for word := 0; word < 4; word++ {
			copy(rk[round][word*4:word*4+4], w[round*4+word][:])
		}
	}
	return rk
}

func subBytes(state *[blockSize]byte) {
	for i := range state {
		state[i] = sbox[state[i]]
	}
}

func shiftRows(state *[blockSize]byte) {
	// state is column-major: state[row + 4*col]
	var s [blockSize]byte
	copy(s[:], state[:])
	for row := 1; row < 4; row++ {
		for col := 0; col < 4; col++ {
			state[row+4*col] = s[row+4*((col+row)%4)]
		}
	}
}

func mixColumns(state *[blockSize]byte) {
	for c := 0; c < 4; c++ {
		a0, a1, a2, a3 := state[4*c], state[4*c+1], state[4*c+2], state[4*c+3]
		state[4*c+0] = gmul2(a0) ^ gmul3(a1) ^ a2 ^ a3
		state[4*c+1] = a0 ^ gmul2(a1) ^ gmul3(a2) ^ a3
		state[4*c+2] = a0 ^ a1 ^ gmul2(a2) ^ gmul3(a3)
		state[4*c+3] = gmul3(a0) ^ a1 ^ a2 ^ gmul2(a3)
	}
}

func addRoundKey(state *[blockSize]byte, rk *[blockSize]byte) {
	for i := range state {
		state[i] ^= rk[i]
	}
}

// Encrypt256 encrypts one 16-byte block in place under the expanded
// AES-256 key schedule (spec.md §4.E aes256enc).
func Encrypt256(block *[blockSize]byte, rk *RoundKeys) {
	addRoundKey(block, &rk[0])
	for round := 1; round < nr; round++ {
		subBytes(block)
		shiftRows(block)
		mixColumns(block)
		addRoundKey(block, &rk[round])
	}
	subBytes(block)
	shiftRows(block)
	addRoundKey(block, &rk[nr])
}

// EncRound performs exactly one AES round — SubBytes, ShiftRows,
// MixColumns, then XOR with roundKey — in place, equivalent to the
// AESENC hardware instruction's per-round semantics (spec.md §4.E
// aesenc_round). Unlike Encrypt256 this never special-cases the final
// round: it is a single mixing primitive, not a complete cipher.
func EncRound(state *[blockSize]byte, roundKey *[blockSize]byte) {
	subBytes(state)
	shiftRows(state)
	mixColumns(state)
	addRoundKey(state, roundKey)
}
