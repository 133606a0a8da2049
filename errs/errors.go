// Package errs defines the errors returned by base65536 and its frame format.
//
// Callers match errors with errors.Is against the sentinels below. Decoding
// failures caused by an unknown code point carry their position; retrieve it
// with errors.As into *InvalidCodePointError.
package errs

import (
	"errors"
	"fmt"
)

// Decode errors.
var (
	// ErrInvalidCodePoint is matched by every *InvalidCodePointError.
	ErrInvalidCodePoint = errors.New("invalid code point")
	// ErrInvalidLength means the stream continued after its terminating padding code point.
	ErrInvalidLength = errors.New("sequence continued after final byte")
)

// Configuration errors.
var (
	ErrInvalidWrapColumns = errors.New("wrap columns must be greater than zero")
	ErrNilEncoding        = errors.New("encoding must not be nil")
)

// ErrClosed is returned by a stream encoder used after Close.
var ErrClosed = errors.New("stream encoder closed")

// Frame errors.
var (
	ErrInvalidHeaderSize      = errors.New("invalid frame header size")
	ErrInvalidHeaderFlags     = errors.New("invalid frame header flags")
	ErrUnsupportedCompression = errors.New("unsupported compression type")
	ErrDataSizeMismatch       = errors.New("frame data size mismatch")
	ErrChecksumMismatch       = errors.New("frame checksum mismatch")
	ErrDataTooLarge           = errors.New("frame data too large")
)

// InvalidCodePointError reports a code point outside every base65536 block.
type InvalidCodePointError struct {
	// Offset is the code point index in the input, counting from zero.
	Offset int
	// CodePoint is the offending code point. Invalid UTF-8 is reported as U+FFFD.
	CodePoint rune
}

// NewInvalidCodePointError returns an error for codePoint found at offset.
func NewInvalidCodePointError(offset int, codePoint rune) *InvalidCodePointError {
	return &InvalidCodePointError{Offset: offset, CodePoint: codePoint}
}

func (e *InvalidCodePointError) Error() string {
	return fmt.Sprintf("invalid code point '%c' at offset %d", e.CodePoint, e.Offset)
}

// Is makes errors.Is(err, ErrInvalidCodePoint) succeed.
func (e *InvalidCodePointError) Is(target error) bool {
	return target == ErrInvalidCodePoint
}
