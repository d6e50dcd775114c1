package deflate

import (
	"bytes"
	"testing"
)

func TestDeflateInflateRoundTrip(t *testing.T) {
	cases := [][]byte{
		[]byte(""),
		[]byte("a"),
		[]byte("hello, world"),
		bytes.Repeat([]byte("abcabcabcabc"), 100),
		bytes.Repeat([]byte{0}, 4096),
	}
	for _, src := range cases {
		packed, err := Deflate(src, 0)
		if err != nil {
			t.Fatalf("Deflate(%d bytes): %v", len(src), err)
		}
		out, err := AllocatingInflate(packed)
		if err != nil {
			t.Fatalf("AllocatingInflate: %v", err)
		}
		if !bytes.Equal(out, src) {
			t.Fatalf("round trip mismatch: got %d bytes, want %d bytes", len(out), len(src))
		}
	}
}

func TestDeflateInflateRoundTripPseudoRandomWithRepetition(t *testing.T) {
	src := make([]byte, 4096)
	for i := range src {
		src[i] = byte((17*i + i/128) & 0xFF)
	}
	packed, err := Deflate(src, 10)
	if err != nil {
		t.Fatalf("Deflate: %v", err)
	}
	out, err := AllocatingInflate(packed)
	if err != nil {
		t.Fatalf("AllocatingInflate: %v", err)
	}
	if !bytes.Equal(out, src) {
		t.Fatalf("round trip mismatch: got %d bytes, want %d bytes", len(out), len(src))
	}
}

func TestInflateRejectsBadStoredBlock(t *testing.T) {
	// BFINAL=1, BTYPE=00 (stored), then a bogus LEN/NLEN pair.
	bad := []byte{0x01, 0x05, 0x00, 0xFF, 0xFF}
	_, err := Inflate(make([]byte, 16), bad)
	if !IsDataError(err) {
		t.Fatalf("expected data error, got %v", err)
	}
}

func TestInflateBufferTooSmall(t *testing.T) {
	src := bytes.Repeat([]byte("xyz123"), 50)
	packed, err := Deflate(src, 0)
	if err != nil {
		t.Fatalf("Deflate: %v", err)
	}
	_, err = Inflate(make([]byte, 4), packed)
	if !IsBufferError(err) {
		t.Fatalf("expected buffer error, got %v", err)
	}
}

func TestZlibWrapUnwrapRoundTrip(t *testing.T) {
	src := []byte("the quick brown fox jumps over the lazy dog, repeatedly, repeatedly")
	wrapped, err := ZlibWrap(src, 0)
	if err != nil {
		t.Fatalf("ZlibWrap: %v", err)
	}
	out, err := ZlibUnwrap(wrapped)
	if err != nil {
		t.Fatalf("ZlibUnwrap: %v", err)
	}
	if !bytes.Equal(out, src) {
		t.Fatalf("zlib round trip mismatch")
	}
}

func TestZlibUnwrapRejectsBadHeader(t *testing.T) {
	_, err := ZlibUnwrap([]byte{0x00, 0x00, 0x00, 0x00, 0x00, 0x00})
	if !IsDataError(err) {
		t.Fatalf("expected data error for bad CMF, got %v", err)
	}
}

func TestZlibUnwrapRejectsChecksumMismatch(t *testing.T) {
	src := []byte("checksum me please")
	wrapped, err := ZlibWrap(src, 0)
	if err != nil {
		t.Fatalf("ZlibWrap: %v", err)
	}
	wrapped[len(wrapped)-1] ^= 0xFF
	_, err = ZlibUnwrap(wrapped)
	if !IsDataError(err) {
		t.Fatalf("expected data error for bad adler32, got %v", err)
	}
}

func TestDeflateRejectsInvalidWbits(t *testing.T) {
	_, err := Deflate([]byte("x"), 20)
	if err == nil {
		t.Fatalf("expected error for out-of-range wbits")
	}
}
