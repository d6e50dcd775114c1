package mnemonicqr

import "strings"

// lastWordCache memoizes ValidFinalWords results keyed by the
// space-joined prefix words, since the candidate set only depends on
// the entropy bits chosen so far and is expensive to recompute per
// keystroke during manual entry.
var lastWordCache = make(map[string][]string)

// ValidFinalWords returns every wordlist entry that, appended to
// prefixWords, produces a mnemonic with a valid BIP-39 checksum.
// prefixWords must have one fewer word than a valid mnemonic length
// (11, 14, 17, 20, or 23 words).
func ValidFinalWords(prefixWords []string) ([]string, error) {
	switch len(prefixWords) {
	case 11, 14, 17, 20, 23:
	default:
		return nil, newErr(KindInvalidArgument, "prefix must have 11, 14, 17, 20, or 23 words, got %d", len(prefixWords))
	}

	key := strings.Join(prefixWords, " ")
	if cached, ok := lastWordCache[key]; ok {
		return cached, nil
	}

	candidates := make([]string, 0, 8)
	full := append(append([]string{}, prefixWords...), "")
	for _, w := range englishWordlist {
		full[len(full)-1] = w
		if _, err := wordsToEntropy(full); err == nil {
			candidates = append(candidates, w)
		}
	}

	lastWordCache[key] = candidates
	return candidates, nil
}

// ClearLastWordCache discards every cached ValidFinalWords result.
func ClearLastWordCache() {
	lastWordCache = make(map[string][]string)
}
