package basecodec

import (
	"bytes"
	"testing"
)

func TestBase32RoundTrip(t *testing.T) {
	cases := [][]byte{
		{},
		{0x00},
		{0xFF, 0x00, 0x11},
		[]byte("hello, world!"),
		bytes.Repeat([]byte{0xAB, 0xCD, 0xEF}, 10),
	}
	for _, data := range cases {
		enc := Base32Encode(data)
		dec, err := Base32Decode(enc)
		if err != nil {
			t.Fatalf("Base32Decode(%q): %v", enc, err)
		}
		if !bytes.Equal(dec, data) && !(len(dec) == 0 && len(data) == 0) {
			t.Fatalf("round trip mismatch for %x: got %x via %q", data, dec, enc)
		}
	}
}

func TestBase32EncodeLiteralVectors(t *testing.T) {
	cases := []struct {
		input []byte
		want  string
	}{
		{[]byte("f"), "MY======"},
		{[]byte("Hello World"), "JBSWY3DPEBLW64TMMQ======"},
	}
	for _, c := range cases {
		got := Base32Encode(c.input)
		if got != c.want {
			t.Fatalf("Base32Encode(%q) = %q, want %q", c.input, got, c.want)
		}
		dec, err := Base32Decode(got)
		if err != nil {
			t.Fatalf("Base32Decode(%q): %v", got, err)
		}
		if !bytes.Equal(dec, c.input) {
			t.Fatalf("round trip via %q: got %x, want %x", got, dec, c.input)
		}
	}
}

func TestBase32DecodeCaseInsensitiveAndWhitespace(t *testing.T) {
	enc := Base32Encode([]byte("test data"))
	lower := ""
	for _, c := range enc {
		lower += string(c | 0x20)
	}
	dec, err := Base32Decode(lower + "  \n")
	if err != nil {
		t.Fatalf("Base32Decode: %v", err)
	}
	if string(dec) != "test data" {
		t.Fatalf("got %q, want %q", dec, "test data")
	}
}

func TestBase32DecodeInvalidCharacter(t *testing.T) {
	if _, err := Base32Decode("!!!invalid!!!"); err == nil {
		t.Fatalf("expected error for invalid base32 input")
	}
}

func TestBase43RoundTrip(t *testing.T) {
	cases := [][]byte{
		{},
		{0x00},
		{0x00, 0x00, 0x01},
		[]byte("the quick brown fox"),
		{0xFF, 0xFF, 0xFF, 0xFF},
	}
	for _, data := range cases {
		enc := Base43Encode(data)
		dec, err := Base43Decode(enc)
		if err != nil {
			t.Fatalf("Base43Decode(%q): %v", enc, err)
		}
		if !bytes.Equal(dec, data) && !(len(dec) == 0 && len(data) == 0) {
			t.Fatalf("round trip mismatch for %x: got %x via %q", data, dec, enc)
		}
	}
}

func TestBase43LeadingZeroPreservation(t *testing.T) {
	data := []byte{0x00, 0x00, 0x01, 0x02}
	enc := Base43Encode(data)
	if enc[0] != '0' || enc[1] != '0' {
		t.Fatalf("expected two leading '0' characters, got %q", enc)
	}
}

func TestBase36PairRoundTrip(t *testing.T) {
	for v := 0; v <= 35*36+35; v += 7 {
		s, err := EncodeBase36Pair(v)
		if err != nil {
			t.Fatalf("EncodeBase36Pair(%d): %v", v, err)
		}
		got, err := DecodeBase36Pair(s)
		if err != nil {
			t.Fatalf("DecodeBase36Pair(%q): %v", s, err)
		}
		if got != v {
			t.Fatalf("got %d, want %d (via %q)", got, v, s)
		}
	}
}

func TestBase36PairRejectsOutOfRange(t *testing.T) {
	if _, err := EncodeBase36Pair(-1); err == nil {
		t.Fatalf("expected error for negative value")
	}
	if _, err := EncodeBase36Pair(2000); err == nil {
		t.Fatalf("expected error for value above range")
	}
}

func TestBase36PairRejectsBadLength(t *testing.T) {
	if _, err := DecodeBase36Pair("A"); err == nil {
		t.Fatalf("expected error for short input")
	}
}
