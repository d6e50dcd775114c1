// Package secret holds helpers for handling key material, plaintext
// mnemonics, and other sensitive buffers under a strict zeroization and
// constant-time-comparison discipline.
package secret

import "crypto/subtle"

// Buffer is a heap allocation that holds secret bytes. Its zero value is
// not usable; construct one with New. Every Buffer must be released with
// Zeroize on every exit path — success, error, or cancellation.
type Buffer struct {
	b []byte
}

// New allocates a Buffer holding a copy of data. The caller retains
// ownership of data; New does not zeroize the caller's copy.
func New(data []byte) *Buffer {
	b := make([]byte, len(data))
	copy(b, data)
	return &Buffer{b: b}
}

// NewSize allocates a zeroed Buffer of the given length.
func NewSize(n int) *Buffer {
	return &Buffer{b: make([]byte, n)}
}

// Bytes returns the underlying slice. The returned slice aliases the
// Buffer's storage; it becomes invalid after Zeroize.
func (s *Buffer) Bytes() []byte {
	if s == nil {
		return nil
	}
	return s.b
}

// Len reports the buffer length.
func (s *Buffer) Len() int {
	if s == nil {
		return 0
	}
	return len(s.b)
}

// Zeroize overwrites the buffer with zeros. Safe to call multiple times
// and on a nil receiver. The overwrite is not elided: Zero performs the
// same per-byte clear a compiler cannot prove dead, since the backing
// slice remains reachable through s.b until this call returns.
func (s *Buffer) Zeroize() {
	if s == nil {
		return
	}
	Zero(s.b)
	s.b = nil
}

// Zero overwrites b with zeros in place.
func Zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

// ConstantTimeEqual reports whether a and b hold identical bytes, taking
// time independent of where they first differ. Unequal lengths are
// reported unequal without comparing contents length-dependently beyond
// the length check itself, matching crypto/subtle.ConstantTimeCompare.
func ConstantTimeEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	return subtle.ConstantTimeCompare(a, b) == 1
}
