package hmac256

import (
	"bytes"
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func hexOf(sum [32]byte) string {
	return strings.ToUpper(hex.EncodeToString(sum[:]))
}

func sequentialKey(n int) []byte {
	k := make([]byte, n)
	for i := range k {
		k[i] = byte(i + 1)
	}
	return k
}

func TestRFC4231Vectors(t *testing.T) {
	cases := []struct {
		name string
		key  []byte
		msg  []byte
		want string
	}{
		{
			name: "vector1",
			key:  bytes.Repeat([]byte{0x0b}, 20),
			msg:  []byte("Hi There"),
			want: "B0344C61D8DB38535CA8AFCEAF0BF12B881DC200C9833DA726E9376C2E32CFF7",
		},
		{
			name: "vector2",
			key:  []byte("Jefe"),
			msg:  []byte("what do ya want for nothing?"),
			want: "5BDCC146BF60754E6A042426089575C75A003F089D2739839DEC58B964EC3843",
		},
		{
			name: "vector3",
			key:  bytes.Repeat([]byte{0xaa}, 20),
			msg:  bytes.Repeat([]byte{0xdd}, 50),
			want: "773EA91E36800E46854DB8EBD09181A72959098B3EF8C122D9635514CED565FE",
		},
		{
			name: "vector4",
			key:  sequentialKey(25),
			msg:  bytes.Repeat([]byte{0xcd}, 50),
			want: "82558A389A443C0EA4CC819899F2083A85F0FAA3E578F8077A2E3FF46729665B",
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, hexOf(Sum(c.key, c.msg)))
		})
	}
}

func TestChunkingInvariance(t *testing.T) {
	key := []byte("some key material")
	msg := bytes.Repeat([]byte{0x42}, 200)

	var whole Context
	Init(&whole, key)
	Update(&whole, msg)
	var wholeOut [32]byte
	Final(wholeOut[:], &whole)

	var chunked Context
	Init(&chunked, key)
	Update(&chunked, msg[:77])
	Update(&chunked, msg[77:])
	var chunkedOut [32]byte
	Final(chunkedOut[:], &chunked)

	if wholeOut != chunkedOut {
		t.Fatalf("chunking changed MAC: %x vs %x", wholeOut, chunkedOut)
	}
}
