package mnemonicqr

// Format identifies which of the three mnemonic-QR representations a
// byte buffer holds.
type Format int

const (
	FormatUnknown Format = iota
	FormatCompact
	FormatSeedQR
	FormatPlaintext
)

func isPrintableASCII(b byte) bool {
	return b >= 0x20 && b < 0x7F
}

func isASCIIDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func isASCIILetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isValidCompactLen(n int) bool {
	return n == 16 || n == 32
}

// DetectFormat classifies a raw byte buffer per the same heuristic the
// camera-decode pipeline applies: entropy-sized binary data with any
// non-printable byte is Compact, an all-digit buffer of the right
// length is SeedQR, a buffer with a space and a letter and nothing
// unprintable is Plaintext, and any other entropy-sized buffer falls
// back to Compact.
func DetectFormat(data []byte) Format {
	n := len(data)

	if isValidCompactLen(n) {
		for _, b := range data {
			if !isPrintableASCII(b) {
				return FormatCompact
			}
		}
	}

	if n == 48 || n == 96 {
		allDigits := true
		for _, b := range data {
			if !isASCIIDigit(b) {
				allDigits = false
				break
			}
		}
		if allDigits {
			return FormatSeedQR
		}
	}

	hasSpace, hasLetter, allPrintableOrSpace := false, false, true
	for _, b := range data {
		if b == ' ' {
			hasSpace = true
			continue
		}
		if !isPrintableASCII(b) {
			allPrintableOrSpace = false
			break
		}
		if isASCIILetter(b) {
			hasLetter = true
		}
	}
	if hasSpace && hasLetter && allPrintableOrSpace {
		return FormatPlaintext
	}

	if isValidCompactLen(n) {
		return FormatCompact
	}
	return FormatUnknown
}
