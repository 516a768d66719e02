package pbkdf2core

import (
	"encoding/hex"
	"strings"
	"testing"
)

func TestScryptDraftVectors(t *testing.T) {
	cases := []struct {
		name       string
		secret     string
		salt       string
		iterations uint32
		want       string
	}{
		{
			name:       "passwd/salt/1",
			secret:     "passwd",
			salt:       "salt",
			iterations: 1,
			want: "55AC046E56E3089FEC1691C22544B605F94185216DDE0465E68B9D57C20DACBC" +
				"49CA9CCCF179B645991664B39D77EF317C71B845B1E30BD509112041D3A19783",
		},
		{
			name:       "Password/NaCl/80000",
			secret:     "Password",
			salt:       "NaCl",
			iterations: 80000,
			want: "4DDCD8F60B98BE21830CEE5EF22701F9641A4418D04C0414AEFF08876B34AB56" +
				"A1D425A1225833549ADB841B51C9B3176A272BDEBBA1D078478F62B397F33C8D",
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			out := make([]byte, 64)
			if err := Key(out, []byte(c.secret), []byte(c.salt), c.iterations); err != nil {
				t.Fatalf("Key: %v", err)
			}
			if got := strings.ToUpper(hex.EncodeToString(out)); got != c.want {
				t.Fatalf("got %s, want %s", got, c.want)
			}
		})
	}
}

func TestTruncationPrefixProperty(t *testing.T) {
	secret, salt := []byte("secret"), []byte("salt")
	full := make([]byte, 64)
	if err := Key(full, secret, salt, 4); err != nil {
		t.Fatalf("Key: %v", err)
	}

	for _, k := range []int{1, 16, 32, 63, 64} {
		short := make([]byte, k)
		if err := Key(short, secret, salt, 4); err != nil {
			t.Fatalf("Key(%d): %v", k, err)
		}
		if string(short) != string(full[:k]) {
			t.Fatalf("prefix property violated at k=%d", k)
		}
	}
}

func TestInvalidParams(t *testing.T) {
	out := make([]byte, 16)
	if err := Key(out, []byte("s"), []byte("salt"), 0); err != ErrInvalidParam {
		t.Fatalf("expected ErrInvalidParam for iterations=0, got %v", err)
	}
	if err := Key(nil, []byte("s"), []byte("salt"), 1); err != ErrInvalidParam {
		t.Fatalf("expected ErrInvalidParam for outlen=0, got %v", err)
	}
}
