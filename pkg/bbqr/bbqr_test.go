package bbqr

import (
	"bytes"
	"testing"
)

func TestParsePartRejectsBadMagic(t *testing.T) {
	if _, err := ParsePart("XX2P01000000"); !IsBadFormat(err) {
		t.Fatalf("expected bad-format error, got %v", err)
	}
}

func TestParsePartValid(t *testing.T) {
	p, err := ParsePart("B$2P0100hello")
	if err != nil {
		t.Fatalf("ParsePart: %v", err)
	}
	if p.Encoding != EncodingBase32 || p.FileType != FileTypePSBT || p.Total != 1 || p.Index != 0 {
		t.Fatalf("unexpected part fields: %+v", p)
	}
	if p.Payload != "hello" {
		t.Fatalf("unexpected payload %q", p.Payload)
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	data := bytes.Repeat([]byte("the quick brown fox jumps over the lazy dog. "), 20)
	parts, err := Encode(data, FileTypePSBT, 100)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	for _, s := range parts {
		if len(s) > 100 {
			t.Fatalf("part exceeds max_chars_per_qr: %d > 100", len(s))
		}
	}

	parsed := make([]Part, len(parts))
	for i, s := range parts {
		p, err := ParsePart(s)
		if err != nil {
			t.Fatalf("ParsePart(part %d): %v", i, err)
		}
		parsed[i] = p
	}

	enc, _, payload, err := Assemble(parsed)
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}
	out, err := DecodePayload(enc, payload)
	if err != nil {
		t.Fatalf("DecodePayload: %v", err)
	}
	if !bytes.Equal(out, data) {
		t.Fatalf("round trip mismatch: got %d bytes, want %d", len(out), len(data))
	}
}

func TestEncodeSinglePartSmallInput(t *testing.T) {
	data := []byte("small payload that fits in one QR code easily")
	parts, err := Encode(data, FileTypeJSON, 800)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if len(parts) != 1 {
		t.Fatalf("expected 1 part, got %d", len(parts))
	}
	p, err := ParsePart(parts[0])
	if err != nil {
		t.Fatalf("ParsePart: %v", err)
	}
	out, err := DecodePayload(p.Encoding, p.Payload)
	if err != nil {
		t.Fatalf("DecodePayload: %v", err)
	}
	if !bytes.Equal(out, data) {
		t.Fatalf("round trip mismatch")
	}
}

func TestAssembleDetectsMissingIndex(t *testing.T) {
	parts := []Part{
		{Encoding: EncodingBase32, FileType: FileTypePSBT, Total: 2, Index: 0, Payload: "AAAA"},
	}
	if _, _, _, err := Assemble(parts); !IsReassembly(err) {
		t.Fatalf("expected reassembly error, got %v", err)
	}
}

func TestAssembleDetectsDuplicateIndex(t *testing.T) {
	parts := []Part{
		{Encoding: EncodingBase32, FileType: FileTypePSBT, Total: 2, Index: 0, Payload: "AAAA"},
		{Encoding: EncodingBase32, FileType: FileTypePSBT, Total: 2, Index: 0, Payload: "BBBB"},
	}
	if _, _, _, err := Assemble(parts); !IsReassembly(err) {
		t.Fatalf("expected reassembly error, got %v", err)
	}
}

func TestEncodeRejectsInvalidFileType(t *testing.T) {
	if _, err := Encode([]byte("data"), FileType('X'), 800); err == nil {
		t.Fatalf("expected error for invalid file type")
	}
}

// psbtTestVector349 is the 349-byte PSBT test vector used across the
// original test suites for base32, miniz, and BBQr encoding.
var psbtTestVector349 = []byte{
	0x70, 0x73, 0x62, 0x74, 0xff, 0x01, 0x00, 0x7b, 0x02, 0x00, 0x00, 0x00,
	0x02, 0xd2, 0x68, 0x80, 0x76, 0xf6, 0x3c, 0x08, 0xa0, 0x6b, 0x16, 0xce,
	0x9f, 0xd9, 0x0a, 0x31, 0xbf, 0x46, 0x06, 0x81, 0x01, 0x0c, 0xae, 0x5d,
	0x0b, 0x11, 0x8a, 0xb5, 0xdf, 0x5a, 0xa6, 0xd3, 0xcf, 0x00, 0x00, 0x00,
	0x00, 0x00, 0xfd, 0xff, 0xff, 0xff, 0x58, 0xb8, 0x91, 0x7f, 0xcb, 0x16,
	0x36, 0xae, 0xcf, 0x9b, 0xa4, 0xec, 0x8f, 0x1d, 0x20, 0xc9, 0xcf, 0x62,
	0x82, 0x7d, 0x16, 0x1d, 0xc0, 0xd7, 0x73, 0x62, 0xaf, 0x02, 0x7f, 0xcf,
	0xa7, 0x7d, 0x00, 0x00, 0x00, 0x00, 0x00, 0xfd, 0xff, 0xff, 0xff, 0x01,
	0xe8, 0x03, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x16, 0x00, 0x14, 0xae,
	0xcd, 0x1e, 0xdc, 0x3e, 0xff, 0x65, 0xaa, 0x20, 0x9d, 0x02, 0x15, 0xe7,
	0x3d, 0x70, 0x90, 0x5d, 0xc1, 0x68, 0x6c, 0xb0, 0xfe, 0x2a, 0x00, 0x00,
	0x22, 0x02, 0x02, 0xd7, 0xb1, 0x50, 0x49, 0x10, 0xbb, 0x71, 0x27, 0x14,
	0x4a, 0x73, 0x09, 0xde, 0xee, 0xde, 0x32, 0xe8, 0x8a, 0x06, 0x57, 0x0d,
	0x96, 0xdb, 0x68, 0x31, 0x9e, 0xb7, 0x56, 0x05, 0xd5, 0x44, 0x12, 0x47,
	0x30, 0x44, 0x02, 0x20, 0x07, 0x8b, 0x9f, 0xe8, 0x79, 0xec, 0x5f, 0x35,
	0x12, 0x7c, 0xbf, 0x3b, 0xb5, 0x26, 0x32, 0x64, 0x07, 0x3d, 0x78, 0x9f,
	0xa2, 0xc8, 0x9b, 0x08, 0x9f, 0x12, 0xf1, 0xfe, 0x50, 0xea, 0xef, 0x56,
	0x02, 0x20, 0x1a, 0xf3, 0xcc, 0x2a, 0x97, 0x0e, 0x00, 0x9c, 0xcf, 0xa9,
	0x83, 0xd1, 0xe4, 0x70, 0x68, 0x98, 0x9e, 0x8c, 0x4d, 0x4c, 0x3e, 0x03,
	0xc4, 0x04, 0xb0, 0x36, 0xa1, 0x2b, 0xab, 0x1c, 0x73, 0x9c, 0x01, 0x00,
	0x22, 0x02, 0x03, 0xc4, 0xc8, 0x06, 0xd0, 0xc1, 0x19, 0xb3, 0x35, 0xe3,
	0x9b, 0x14, 0x4b, 0xc4, 0xba, 0xb1, 0xa5, 0x10, 0x06, 0xcf, 0x3d, 0x97,
	0x5d, 0xbe, 0x74, 0x07, 0xe3, 0x1e, 0xe7, 0x59, 0x39, 0xe9, 0xe0, 0x47,
	0x30, 0x44, 0x02, 0x20, 0x12, 0xeb, 0x0a, 0xf4, 0x95, 0x3e, 0x33, 0xbd,
	0x47, 0x07, 0xd5, 0x23, 0xf0, 0x7a, 0x1d, 0xda, 0x4e, 0xcf, 0x30, 0xea,
	0x15, 0x37, 0x8c, 0xf5, 0x6c, 0xb1, 0x3a, 0x85, 0x23, 0x14, 0xd3, 0x31,
	0x02, 0x20, 0x78, 0x8a, 0x56, 0x3b, 0xf1, 0x7a, 0x17, 0x85, 0x80, 0xab,
	0xc5, 0xae, 0x3b, 0x96, 0x5f, 0x5c, 0xfc, 0x02, 0xc3, 0xff, 0xd7, 0x4e,
	0xf8, 0x56, 0x26, 0x43, 0xe0, 0xcc, 0x3c, 0x9e, 0xdb, 0xe0, 0x01, 0x00,
	0x00,
}

func TestEncodeSinglePartPSBTVector(t *testing.T) {
	if len(psbtTestVector349) != 349 {
		t.Fatalf("fixture length = %d, want 349", len(psbtTestVector349))
	}
	parts, err := Encode(psbtTestVector349, FileTypePSBT, 800)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if len(parts) != 1 {
		t.Fatalf("expected 1 part, got %d", len(parts))
	}
	p, err := ParsePart(parts[0])
	if err != nil {
		t.Fatalf("ParsePart: %v", err)
	}
	if p.Total != 1 {
		t.Fatalf("Total = %d, want 1", p.Total)
	}
	if p.Encoding != EncodingDeflate {
		t.Fatalf("Encoding = %q, want %q", p.Encoding, EncodingDeflate)
	}
	out, err := DecodePayload(p.Encoding, p.Payload)
	if err != nil {
		t.Fatalf("DecodePayload: %v", err)
	}
	if !bytes.Equal(out, psbtTestVector349) {
		t.Fatalf("round trip mismatch: got %d bytes, want %d", len(out), len(psbtTestVector349))
	}
}

func TestDecodePayloadHex(t *testing.T) {
	out, err := DecodePayload(EncodingHex, "48656c6c6f")
	if err != nil {
		t.Fatalf("DecodePayload: %v", err)
	}
	if string(out) != "Hello" {
		t.Fatalf("got %q, want %q", out, "Hello")
	}
}
