// Package errs defines the sentinel errors returned by the eri packages.
//
// Callers should match errors with errors.Is, since most errors are wrapped
// with additional context (operation name, byte offset, entry index).
package errs

import (
	"errors"
	"fmt"
)

// Format errors, returned while decoding an ERI buffer.
var (
	ErrBufferTooShort   = errors.New("buffer too short")
	ErrInvalidSignature = errors.New("invalid signature")
	ErrTruncatedBuffer  = errors.New("truncated buffer")
	ErrInvalidUTF8      = errors.New("invalid UTF-8")
	ErrTrailingData     = errors.New("trailing data after strings block")
	ErrIndexOutOfRange  = errors.New("entry index out of range")
)

// Encoder errors.
var (
	ErrEmbeddingLengthMismatch = errors.New("embedding length mismatch")
	ErrInvalidEmbeddingSize    = errors.New("invalid embedding size")
	ErrTooManyEntries          = errors.New("too many entries")
	ErrStringTooLong           = errors.New("resource string too long")
	ErrEncoderFinished         = errors.New("encoder already finished")
)

// FormatError reports a malformed ERI buffer.
//
// Op names the decoder operation that failed and Offset is the byte offset
// at which the problem was detected. Err is always one of the format
// sentinels above, so errors.Is(err, ErrTruncatedBuffer) works on a
// *FormatError as well as on its wrappers.
type FormatError struct {
	Op     string
	Offset int
	Err    error
}

// NewFormatError creates a FormatError for the given operation and offset.
func NewFormatError(op string, offset int, err error) *FormatError {
	return &FormatError{Op: op, Offset: offset, Err: err}
}

func (e *FormatError) Error() string {
	if e.Op == "" {
		return fmt.Sprintf("eri: %v at offset %d", e.Err, e.Offset)
	}

	return fmt.Sprintf("eri: %s: %v at offset %d", e.Op, e.Err, e.Offset)
}

func (e *FormatError) Unwrap() error { return e.Err }
