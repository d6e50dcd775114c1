package basecodec

import (
	"fmt"
	"math/big"
)

const base43Chars = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ$*+-./:"

var base43DigitValue [128]int8

func init() {
	for i := range base43DigitValue {
		base43DigitValue[i] = -1
	}
	for i, c := range base43Chars {
		base43DigitValue[c] = int8(i)
	}
}

// Base43Encode encodes data as Base43 (Krux-compatible), treating data
// as a big-endian number and repeatedly dividing by 43. A leading run
// of 0x00 bytes in data maps to an equal-length run of leading '0'
// characters in the result, which also preserves the
// number-of-significant-digits correspondence on decode.
func Base43Encode(data []byte) string {
	if len(data) == 0 {
		return ""
	}

	nPad := 0
	for nPad < len(data) && data[nPad] == 0 {
		nPad++
	}

	n := new(big.Int).SetBytes(data)
	var digits []byte
	base := big.NewInt(43)
	rem := new(big.Int)
	for n.Sign() > 0 {
		n.DivMod(n, base, rem)
		digits = append(digits, base43Chars[rem.Int64()])
	}

	out := make([]byte, 0, nPad+len(digits))
	for i := 0; i < nPad; i++ {
		out = append(out, base43Chars[0])
	}
	for i := len(digits) - 1; i >= 0; i-- {
		out = append(out, digits[i])
	}
	return string(out)
}

// Base43Decode reverses Base43Encode: bigint = bigint*43 + digit for
// each character, then a leading run of '0' characters is restored as
// an equal-length run of leading 0x00 bytes.
func Base43Decode(s string) ([]byte, error) {
	if len(s) == 0 {
		return nil, nil
	}

	nPad := 0
	for nPad < len(s) && s[nPad] == base43Chars[0] {
		nPad++
	}

	n := new(big.Int)
	base := big.NewInt(43)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 128 || base43DigitValue[c] < 0 {
			return nil, fmt.Errorf("basecodec: invalid base43 character %q", c)
		}
		n.Mul(n, base)
		n.Add(n, big.NewInt(int64(base43DigitValue[c])))
	}

	sig := n.Bytes()
	if nPad == 0 && len(sig) == 0 {
		return nil, nil
	}
	out := make([]byte, nPad+len(sig))
	copy(out[nPad:], sig)
	return out, nil
}
