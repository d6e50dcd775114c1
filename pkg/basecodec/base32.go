// Package basecodec implements the non-standard base-N text encodings
// used to pack binary envelopes into QR-safe alphabets: padded RFC 4648
// Base32 (tolerant of missing padding and whitespace on decode), Base43
// (Krux-compatible, used by the standalone KEF QR transport), and
// Base36Pair (2-character pairs used for BBQr
// part-count/index fields).
package basecodec

import (
	"fmt"
	"unicode"
)

const base32Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ234567"

var base32DecodeTable [128]int8

func init() {
	for i := range base32DecodeTable {
		base32DecodeTable[i] = -1
	}
	for i, c := range base32Alphabet {
		base32DecodeTable[c] = int8(i)
		base32DecodeTable[unicode.ToLower(c)] = int8(i)
	}
}

// charsPerBytes mirrors base32.c's chars_per_bytes table: the number of
// base32 characters needed to hold a trailing group of 1..5 bytes
// without padding.
var charsPerBytes = [6]int{0, 2, 4, 5, 7, 8}

// Base32EncodedLen returns the number of characters Base32Encode will
// produce for an input of inputLen bytes.
func Base32EncodedLen(inputLen int) int {
	return ((inputLen + 4) / 5) * 8
}

// Base32Encode encodes data as RFC 4648 Base32, padding the final group
// with '=' up to the next multiple of 8 characters.
func Base32Encode(data []byte) string {
	if len(data) == 0 {
		return ""
	}
	out := make([]byte, 0, Base32EncodedLen(len(data)))
	for i := 0; i < len(data); i += 5 {
		var buf uint64
		group := data[i:]
		if len(group) > 5 {
			group = group[:5]
		}
		for j, b := range group {
			buf |= uint64(b) << uint(32-j*8)
		}
		numChars := charsPerBytes[len(group)]
		for j := 0; j < 8; j++ {
			if j < numChars {
				idx := (buf >> uint(35-j*5)) & 0x1F
				out = append(out, base32Alphabet[idx])
			} else {
				out = append(out, '=')
			}
		}
	}
	return string(out)
}

// Base32Decode decodes an RFC 4648 Base32 string. Trailing '=' padding
// and whitespace, if present, are stripped; internal whitespace is
// skipped; letters are
// accepted in either case. Leftover bits that don't form a whole byte
// are discarded, matching base32_decode.
func Base32Decode(s string) ([]byte, error) {
	end := len(s)
	for end > 0 {
		c := s[end-1]
		if c != '=' && c != ' ' && c != '\t' && c != '\n' && c != '\r' && c != '\v' && c != '\f' {
			break
		}
		end--
	}
	s = s[:end]
	if len(s) == 0 {
		return nil, nil
	}

	out := make([]byte, 0, (len(s)*5)/8)
	var buf uint32
	bits := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\v' || c == '\f' {
			continue
		}
		if c >= 128 || base32DecodeTable[c] < 0 {
			return nil, fmt.Errorf("basecodec: invalid base32 character %q", c)
		}
		buf = (buf << 5) | uint32(base32DecodeTable[c])
		bits += 5
		for bits >= 8 {
			bits -= 8
			out = append(out, byte(buf>>uint(bits)))
			buf &= (1 << uint(bits)) - 1
		}
	}
	return out, nil
}
