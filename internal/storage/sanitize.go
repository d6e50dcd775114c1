package storage

import (
	"crypto/sha256"
	"fmt"
	"strings"
)

// MaxSanitizedIDLen bounds the length of a sanitized ID used as a
// filename component.
const MaxSanitizedIDLen = 24

// SanitizeID turns a raw KEF ID into a safe filename component:
// filesystem-unsafe characters and spaces become '_', runs of '_' are
// collapsed, leading/trailing whitespace and dots are stripped, and the
// result is truncated to MaxSanitizedIDLen. An ID that sanitizes to the
// empty string falls back to the first 8 hex characters of
// SHA-256(rawID).
func SanitizeID(rawID string) string {
	trimmed := strings.TrimLeft(rawID, " \t.")

	var b strings.Builder
	lastUnderscore := false
	for _, r := range trimmed {
		if b.Len() >= MaxSanitizedIDLen {
			break
		}
		if isUnsafeIDRune(r) || r == '_' {
			if !lastUnderscore {
				b.WriteByte('_')
				lastUnderscore = true
			}
			continue
		}
		b.WriteRune(r)
		lastUnderscore = false
	}

	out := strings.TrimRight(b.String(), "_.")
	if out != "" {
		return out
	}

	sum := sha256.Sum256([]byte(rawID))
	return fmt.Sprintf("%02X%02X%02X%02X", sum[0], sum[1], sum[2], sum[3])
}

func isUnsafeIDRune(r rune) bool {
	switch r {
	case '\\', '/', ':', '*', '?', '"', '<', '>', '|', ' ':
		return true
	}
	return false
}
