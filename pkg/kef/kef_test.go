package kef

import (
	"bytes"
	"testing"
)

func TestIterationEncodeDecodeBoundaries(t *testing.T) {
	cases := []struct {
		stored [3]byte
		want   uint32
	}{
		{[3]byte{0, 39, 16}, 100000000}, // stored=10000 -> *10000
		{[3]byte{0, 39, 15}, 99990000},  // stored=9999 -> *10000
		{[3]byte{0, 39, 17}, 10001},     // stored=10001 -> literal
	}
	for _, c := range cases {
		got := DecodeIterations(c.stored)
		if got != c.want {
			t.Fatalf("DecodeIterations(%v) = %d, want %d", c.stored, got, c.want)
		}
	}
}

func TestIterationEncodeRoundTripsCommonValues(t *testing.T) {
	for _, eff := range []uint32{1, 9999, 10000, 10001, 100000, 100000000} {
		stored := EncodeIterations(eff)
		got := DecodeIterations(stored)
		if got != eff {
			t.Fatalf("round trip for %d: got %d", eff, got)
		}
	}
}

func TestEncryptDecryptRoundTripAllVersions(t *testing.T) {
	plaintext := []byte("abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about")
	id := []byte("73C5DA0A")
	password := []byte("correct horse battery staple")

	for _, vi := range versionTable {
		env, err := Encrypt(id, vi.Version, password, 1000, plaintext)
		if err != nil {
			if vi.Mode == ModeECB && IsDuplicateBlocks(err) {
				continue
			}
			t.Fatalf("version %d Encrypt: %v", vi.Version, err)
		}
		out, err := Decrypt(env, password)
		if err != nil {
			t.Fatalf("version %d Decrypt: %v", vi.Version, err)
		}
		if !bytes.Equal(out, plaintext) {
			t.Fatalf("version %d round trip mismatch", vi.Version)
		}
	}
}

func TestS1KEFV21RoundTripAndTamperDetection(t *testing.T) {
	plaintext := []byte("abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about")
	id := []byte("73C5DA0A")
	password := []byte("correct horse battery staple")

	env, err := Encrypt(id, V21GCMZExposed4, password, 100000, plaintext)
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}
	out, err := Decrypt(env, password)
	if err != nil {
		t.Fatalf("Decrypt: %v", err)
	}
	if !bytes.Equal(out, plaintext) {
		t.Fatalf("round trip mismatch")
	}

	tampered := append([]byte{}, env...)
	tampered[len(tampered)-1] ^= 0xFF
	if _, err := Decrypt(tampered, password); !IsAuth(err) {
		t.Fatalf("expected Auth error for tampered tag, got %v", err)
	}
}

func TestS2KEFV6DuplicateBlockRefusal(t *testing.T) {
	plaintext := bytes.Repeat([]byte{0xAA}, 32)
	_, err := Encrypt([]byte("x"), V6ECBPKCS7Hidden4, []byte("x"), 10000, plaintext)
	if !IsDuplicateBlocks(err) {
		t.Fatalf("expected DuplicateBlocks, got %v", err)
	}
}

func TestDecryptWrongPasswordFailsAuth(t *testing.T) {
	env, err := Encrypt([]byte("id"), V1CBCNulHidden16, []byte("right password"), 1000,[]byte("some secret mnemonic words"))
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}
	if _, err := Decrypt(env, []byte("wrong password")); !IsAuth(err) {
		t.Fatalf("expected Auth error, got %v", err)
	}
}

func TestNULUnpadRecoversTrailingZeroPlaintext(t *testing.T) {
	plaintext := []byte{'h', 'i', 0x00}
	env, err := Encrypt([]byte("id"), V0ECBNulHidden16, []byte("pw"), 1000, plaintext)
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}
	out, err := Decrypt(env, []byte("pw"))
	if err != nil {
		t.Fatalf("Decrypt: %v", err)
	}
	if !bytes.Equal(out, plaintext) {
		t.Fatalf("got %x, want %x", out, plaintext)
	}
}

func TestIsEnvelopeDetection(t *testing.T) {
	env, err := Encrypt([]byte("id"), V11CBCPKCS7Hidden4, []byte("pw"), 1000, []byte("hello world"))
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}
	if !IsEnvelope(env) {
		t.Fatalf("expected valid envelope to be detected")
	}
	if IsEnvelope([]byte("not an envelope at all")) {
		t.Fatalf("expected garbage to not parse as an envelope")
	}
	if IsEnvelope(nil) {
		t.Fatalf("expected empty input to not parse as an envelope")
	}
}

func TestEncryptRejectsUnsupportedVersion(t *testing.T) {
	_, err := Encrypt([]byte("id"), 99, []byte("pw"), 1000, []byte("data"))
	if !IsUnsupportedVersion(err) {
		t.Fatalf("expected UnsupportedVersion, got %v", err)
	}
}

func TestEncryptRejectsEmptyPlaintext(t *testing.T) {
	_, err := Encrypt([]byte("id"), V0ECBNulHidden16, []byte("pw"), 1000, nil)
	if !IsInvalidArgument(err) {
		t.Fatalf("expected InvalidArgument, got %v", err)
	}
}
