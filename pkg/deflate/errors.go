package deflate

import "fmt"

// Kind identifies the class of failure a deflate/inflate call reports.
type Kind int

const (
	_ Kind = iota
	// KindDataError marks a malformed bit stream: bad block type, bad
	// stored-block length complement, bad Huffman symbol, or an
	// out-of-window back-reference.
	KindDataError
	// KindBufferError marks an output buffer too small for the decoded
	// data; AllocatingInflate retries by doubling on this kind.
	KindBufferError
	// KindInvalidArgument marks a wbits value outside [8,15].
	KindInvalidArgument
)

// Error is the error type every function in this package returns.
type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("deflate: %s", e.Msg)
}

func newErr(k Kind, format string, args ...any) *Error {
	return &Error{Kind: k, Msg: fmt.Sprintf(format, args...)}
}

// IsDataError reports whether err is a malformed-bitstream error.
func IsDataError(err error) bool {
	e, ok := err.(*Error)
	return ok && e.Kind == KindDataError
}

// IsBufferError reports whether err is an output-buffer-too-small error.
func IsBufferError(err error) bool {
	e, ok := err.(*Error)
	return ok && e.Kind == KindBufferError
}
