package base64

import (
	"bytes"
	"math/rand"
	"testing"
)

func TestEncodeKnownVectors(t *testing.T) {
	cases := []struct {
		in, out string
	}{
		{"", ""},
		{"M", "TQ=="},
		{"Ma", "TWE="},
		{"Man", "TWFu"},
		{"light work.", "bGlnaHQgd29yay4="},
	}
	for _, tc := range cases {
		if got := string(Encode([]byte(tc.in))); got != tc.out {
			t.Errorf("Encode(%q) = %q, want %q", tc.in, got, tc.out)
		}
	}
}

func TestDecodeKnownVectors(t *testing.T) {
	cases := []struct {
		in, out string
	}{
		{"", ""},
		{"TQ==", "M"},
		{"TWE=", "Ma"},
		{"TWFu", "Man"},
		{"bGlnaHQgd29yay4=", "light work."},
	}
	for _, tc := range cases {
		if got := string(Decode([]byte(tc.in))); got != tc.out {
			t.Errorf("Decode(%q) = %q, want %q", tc.in, got, tc.out)
		}
	}
}

func TestDecodeIsLenient(t *testing.T) {
	// Bytes outside the alphabet decode as zero bits instead of
	// failing; "A" is index zero, so the results agree.
	clean := Decode([]byte("TWFuAAAA"))
	dirty := Decode([]byte("TWFu\x00\xff!~"))
	if !bytes.Equal(clean, dirty) {
		t.Fatalf("non-alphabet bytes did not decode as zero: %q vs %q", clean, dirty)
	}
}

func TestRoundTripLengths(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for n := 0; n <= 1024; n++ {
		src := make([]byte, n)
		rng.Read(src)
		enc := Encode(src)
		if len(enc) != EncodeSize(n) {
			t.Fatalf("len %d: encoded length %d, EncodeSize says %d", n, len(enc), EncodeSize(n))
		}
		if got := DecodeSize(enc); got != n {
			t.Fatalf("len %d: DecodeSize says %d", n, got)
		}
		if dec := Decode(enc); !bytes.Equal(dec, src) {
			t.Fatalf("len %d: round trip mismatch", n)
		}
	}
}

func TestDecodeRaggedLength(t *testing.T) {
	// Unpadded tails still yield three decoded bytes per four
	// characters, rounded down.
	cases := []struct {
		in, out string
	}{
		{"T", ""},
		{"TW", "M"},
		{"TWF", "Ma"},
		{"TWFuTW", "ManM"},
		{"TWFuTWF", "ManMa"},
	}
	for _, tc := range cases {
		if got := DecodeSize([]byte(tc.in)); got != len(tc.out) {
			t.Errorf("DecodeSize(%q) = %d, want %d", tc.in, got, len(tc.out))
		}
		if got := string(Decode([]byte(tc.in))); got != tc.out {
			t.Errorf("Decode(%q) = %q, want %q", tc.in, got, tc.out)
		}
	}
}

func TestSizeContracts(t *testing.T) {
	for n, want := range map[int]int{0: 0, 1: 4, 2: 4, 3: 4, 4: 8, 5: 8, 6: 8, 7: 12} {
		if got := EncodeSize(n); got != want {
			t.Errorf("EncodeSize(%d) = %d, want %d", n, got, want)
		}
	}
}
