// Package kef implements the Key Encryption Format: a versioned AES
// envelope with PBKDF2-HMAC-SHA256 key derivation, selectable cipher
// mode, padding, optional raw-deflate compression, and
// hidden/exposed/AEAD-tag authentication, dispatched from a fixed
// table of version descriptors.
package kef

import "fmt"

// Kind identifies the class of failure an Encrypt/Decrypt call reports.
type Kind int

const (
	_ Kind = iota
	KindInvalidArgument
	KindUnsupportedVersion
	KindEnvelopeTooShort
	KindAuth
	KindDuplicateBlocks
	KindCrypto
	KindCompress
	KindDecompress
	KindAlloc
)

// Error is the error type every function in this package returns.
type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("kef: %s", e.Msg)
}

func newErr(k Kind, format string, args ...any) *Error {
	return &Error{Kind: k, Msg: fmt.Sprintf(format, args...)}
}

func IsInvalidArgument(err error) bool   { return hasKind(err, KindInvalidArgument) }
func IsUnsupportedVersion(err error) bool { return hasKind(err, KindUnsupportedVersion) }
func IsEnvelopeTooShort(err error) bool  { return hasKind(err, KindEnvelopeTooShort) }
func IsAuth(err error) bool              { return hasKind(err, KindAuth) }
func IsDuplicateBlocks(err error) bool   { return hasKind(err, KindDuplicateBlocks) }
func IsCrypto(err error) bool            { return hasKind(err, KindCrypto) }
func IsCompress(err error) bool          { return hasKind(err, KindCompress) }
func IsDecompress(err error) bool        { return hasKind(err, KindDecompress) }

func hasKind(err error, k Kind) bool {
	e, ok := err.(*Error)
	return ok && e.Kind == k
}
