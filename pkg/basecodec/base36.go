package basecodec

import "fmt"

const base36Chars = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

var base36DigitValue [128]int8

func init() {
	for i := range base36DigitValue {
		base36DigitValue[i] = -1
	}
	for i, c := range base36Chars {
		base36DigitValue[c] = int8(i)
	}
}

// EncodeBase36Pair encodes v (0..1295) as a 2-character base-36 field,
// the form BBQr uses for a part's total-count and index values.
func EncodeBase36Pair(v int) (string, error) {
	if v < 0 || v > 35*36+35 {
		return "", fmt.Errorf("basecodec: value %d out of base36-pair range", v)
	}
	hi := v / 36
	lo := v % 36
	return string([]byte{base36Chars[hi], base36Chars[lo]}), nil
}

// DecodeBase36Pair decodes a 2-character base-36 field back to its
// integer value.
func DecodeBase36Pair(s string) (int, error) {
	if len(s) != 2 {
		return 0, fmt.Errorf("basecodec: base36 pair must be exactly 2 characters, got %d", len(s))
	}
	hi := base36DigitValue[s[0]]
	lo := base36DigitValue[s[1]]
	if s[0] >= 128 || s[1] >= 128 || hi < 0 || lo < 0 {
		return 0, fmt.Errorf("basecodec: invalid base36 character in %q", s)
	}
	return int(hi)*36 + int(lo), nil
}
