// Package bbqr implements the Blockchain Commons BBQr chunked QR
// transport: header framing, part parsing, index-ordered reassembly,
// and payload encode/decode across the hex, base32, and
// base32+raw-deflate encodings.
package bbqr

import "fmt"

// Kind identifies the class of failure a bbqr call reports.
type Kind int

const (
	_ Kind = iota
	// KindBadFormat marks a malformed header, invalid encoding/file-type
	// byte, out-of-range total/index, or an undecodeable payload.
	KindBadFormat
	// KindInvalidArgument marks a bad caller argument (nil/empty data,
	// unrecognized file type, max_chars_per_qr too small).
	KindInvalidArgument
	// KindTooLarge marks an encode that would need more than 1295 parts.
	KindTooLarge
	// KindReassembly marks a missing or duplicate part index on assembly.
	KindReassembly
)

// Error is the error type every function in this package returns.
type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("bbqr: %s", e.Msg)
}

func newErr(k Kind, format string, args ...any) *Error {
	return &Error{Kind: k, Msg: fmt.Sprintf(format, args...)}
}

// IsBadFormat reports whether err is a malformed-input error.
func IsBadFormat(err error) bool {
	e, ok := err.(*Error)
	return ok && e.Kind == KindBadFormat
}

// IsTooLarge reports whether err is a too-many-parts error.
func IsTooLarge(err error) bool {
	e, ok := err.(*Error)
	return ok && e.Kind == KindTooLarge
}

// IsReassembly reports whether err is a missing/duplicate-index error.
func IsReassembly(err error) bool {
	e, ok := err.(*Error)
	return ok && e.Kind == KindReassembly
}
