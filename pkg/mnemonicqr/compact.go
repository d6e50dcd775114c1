package mnemonicqr

import "strings"

// CompactToWords treats entropy as raw BIP-39 entropy bytes and
// derives its mnemonic words, computing the checksum bits carried in
// the final word.
func CompactToWords(entropy []byte) ([]string, error) {
	switch len(entropy) {
	case 16, 32:
	default:
		return nil, newErr(KindBadFormat, "compact entropy length must be 16 or 32 bytes, got %d", len(entropy))
	}
	return entropyToWords(entropy)
}

// WordsToCompact recovers the raw entropy behind a 12- or 24-word
// mnemonic.
func WordsToCompact(words []string) ([]byte, error) {
	if len(words) != 12 && len(words) != 24 {
		return nil, newErr(KindBadFormat, "compact conversion requires 12 or 24 words, got %d", len(words))
	}
	return wordsToEntropy(words)
}

// PlaintextToWords validates a space-separated lowercase mnemonic and
// returns its words.
func PlaintextToWords(mnemonic string) ([]string, error) {
	for _, r := range mnemonic {
		if r >= 'A' && r <= 'Z' {
			return nil, newErr(KindBadFormat, "plaintext mnemonic must be lowercase")
		}
	}
	return validatePlaintext(mnemonic)
}

// WordsToPlaintext joins words with single spaces.
func WordsToPlaintext(words []string) string {
	return strings.Join(words, " ")
}
