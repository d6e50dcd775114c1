package mnemonicqr

import (
	"fmt"
	"strings"
)

// WordsToSeedQR encodes each word as a 4-digit decimal wordlist index,
// concatenated with no separator.
func WordsToSeedQR(words []string) (string, error) {
	var b strings.Builder
	for _, w := range words {
		idx, ok := wordIndex[w]
		if !ok {
			return "", newErr(KindBadFormat, "unknown word %q", w)
		}
		fmt.Fprintf(&b, "%04d", idx)
	}
	return b.String(), nil
}

// SeedQRToWords splits a SeedQR digit string into 4-digit groups, each
// a wordlist index, and validates the resulting mnemonic's checksum.
func SeedQRToWords(digits string) ([]string, error) {
	if len(digits)%4 != 0 {
		return nil, newErr(KindBadFormat, "SeedQR length %d not a multiple of 4", len(digits))
	}
	wordCount := len(digits) / 4
	switch wordCount {
	case 12, 15, 18, 21, 24:
	default:
		return nil, newErr(KindBadFormat, "invalid SeedQR word count %d", wordCount)
	}

	words := make([]string, wordCount)
	for i := 0; i < wordCount; i++ {
		group := digits[i*4 : i*4+4]
		idx := 0
		for j := 0; j < len(group); j++ {
			c := group[j]
			if c < '0' || c > '9' {
				return nil, newErr(KindBadFormat, "invalid digit group %q", group)
			}
			idx = idx*10 + int(c-'0')
		}
		if idx > 2047 {
			return nil, newErr(KindBadFormat, "digit group %q out of range [0000,2047]", group)
		}
		words[i] = englishWordlist[idx]
	}

	if _, err := wordsToEntropy(words); err != nil {
		return nil, err
	}
	return words, nil
}
