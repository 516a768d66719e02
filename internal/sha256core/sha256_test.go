package sha256core

import (
	"bytes"
	"encoding/hex"
	"strings"
	"testing"
)

func digestHex(s string) string {
	sum := Sum256([]byte(s))
	return strings.ToUpper(hex.EncodeToString(sum[:]))
}

func TestNISTVectors(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"abc", "abc", "BA7816BF8F01CFEA414140DE5DAE2223B00361A396177A9CB410FF61F20015AD"},
		{"56-byte", "abcdbcdecdefdefgefghfghighijhijkijkljklmklmnlmnomnopnopq",
			"248D6A61D20638B8E5C026930C3E6039A33CE45964FF2167F6ECEDD419DB06C1"},
	}
	for _, c := range cases {
		if got := digestHex(c.in); got != c.want {
			t.Fatalf("%s: got %s, want %s", c.name, got, c.want)
		}
	}
}

func TestMillionA(t *testing.T) {
	data := bytes.Repeat([]byte{'a'}, 1000000)
	want := "CDC76E5C9914FB9281A1C7E284D73E67F1809A48A497200E046D39CCC7112CD0"
	if got := strings.ToUpper(hex.EncodeToString(func() []byte { s := Sum256(data); return s[:] }())); got != want {
		t.Fatalf("million-a: got %s, want %s", got, want)
	}
}

func TestChunkingInvariance(t *testing.T) {
	data := bytes.Repeat([]byte{'a'}, 1000000)

	var whole Context
	Init(&whole)
	Update(&whole, data)
	var wholeOut [Size]byte
	Final(wholeOut[:], &whole)

	var chunked Context
	Init(&chunked)
	Update(&chunked, data[:500000])
	Update(&chunked, data[500000:])
	var chunkedOut [Size]byte
	Final(chunkedOut[:], &chunked)

	if wholeOut != chunkedOut {
		t.Fatalf("chunking changed digest: %x vs %x", wholeOut, chunkedOut)
	}
}

func TestUpdateAfterFinalPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on Update after Final")
		}
	}()
	var ctx Context
	Init(&ctx)
	Update(&ctx, []byte("x"))
	var out [Size]byte
	Final(out[:], &ctx)
	Update(&ctx, []byte("y"))
}
