package base65536

import (
	"unsafe"

	"github.com/nuew/base65536/block"
	"github.com/nuew/base65536/errs"
)

// decodeState is the decoder state machine. It starts in the streaming state
// and moves to the terminated state after a padding code point; nothing may
// follow the terminator.
type decodeState struct {
	ignoreGarbage bool
	terminated    bool
	offset        int // code points consumed so far, garbage included
}

func (e *Encoding) newDecodeState() decodeState {
	return decodeState{ignoreGarbage: e.ignoreGarbage}
}

// step consumes one code point and returns the n (0, 1 or 2) bytes it decodes to.
func (d *decodeState) step(r rune) (b0, b1 byte, n int, err error) {
	pos := d.offset
	d.offset++

	offset, start := block.Split(uint32(r)) //nolint:gosec

	if start == block.PaddingStart {
		if d.terminated {
			return 0, 0, 0, errs.ErrInvalidLength
		}
		d.terminated = true

		return offset, 0, 1, nil
	}

	if second, ok := block.Index(start); ok {
		if d.terminated {
			return 0, 0, 0, errs.ErrInvalidLength
		}

		return offset, second, 2, nil
	}

	if d.ignoreGarbage {
		return 0, 0, 0, nil
	}

	return 0, 0, 0, errs.NewInvalidCodePointError(pos, r)
}

// appendRune decodes r onto dst.
func (d *decodeState) appendRune(dst []byte, r rune) ([]byte, error) {
	b0, b1, n, err := d.step(r)
	switch n {
	case 1:
		dst = append(dst, b0)
	case 2:
		dst = append(dst, b0, b1)
	}

	return dst, err
}

// DecodedLen returns the maximum number of bytes decoded from n bytes of
// UTF-8 text. Every base65536 code point is at least three bytes long.
func (e *Encoding) DecodedLen(n int) int {
	return n / 3 * 2
}

// DecodeString returns the bytes represented by the base65536 text s.
//
// Decoding stops at the first error: a *errs.InvalidCodePointError (matching
// errs.ErrInvalidCodePoint) for a foreign code point when garbage is not
// ignored, or errs.ErrInvalidLength when anything follows the padding code
// point.
func (e *Encoding) DecodeString(s string) ([]byte, error) {
	out, err := e.appendDecodeString(make([]byte, 0, e.DecodedLen(len(s))), s)
	if err != nil {
		return nil, err
	}

	return out, nil
}

// AppendDecode appends the bytes decoded from the UTF-8 text src to dst and
// returns the extended buffer.
//
// On error the returned buffer holds what was decoded before the failure.
// Invalid UTF-8 sequences decode as U+FFFD, which is never a base65536
// code point.
func (e *Encoding) AppendDecode(dst, src []byte) ([]byte, error) {
	return e.appendDecodeString(dst, bytesToString(src))
}

// Decode decodes the UTF-8 text src into dst and returns the number of bytes
// written.
//
// dst must be large enough for the decoded output; DecodedLen(len(src)) is
// always sufficient. Decode panics when dst is too small.
func (e *Encoding) Decode(dst, src []byte) (int, error) {
	return e.decodeStringInto(dst, bytesToString(src))
}

// AppendDecodeString is AppendDecode for text held in a string.
func (e *Encoding) AppendDecodeString(dst []byte, s string) ([]byte, error) {
	return e.appendDecodeString(dst, s)
}

func (e *Encoding) appendDecodeString(dst []byte, s string) ([]byte, error) {
	d := e.newDecodeState()
	for _, r := range s {
		var err error
		if dst, err = d.appendRune(dst, r); err != nil {
			return dst, err
		}
	}

	return dst, nil
}

func (e *Encoding) decodeStringInto(dst []byte, s string) (int, error) {
	d := e.newDecodeState()
	written := 0
	for _, r := range s {
		b0, b1, n, err := d.step(r)
		if err != nil {
			return written, err
		}
		if written+n > len(dst) {
			panic("base65536: decode destination buffer too small")
		}

		switch n {
		case 1:
			dst[written] = b0
		case 2:
			dst[written] = b0
			dst[written+1] = b1
		}
		written += n
	}

	return written, nil
}

// bytesToString views b as a string without copying. The decoders only read
// their input, so the aliasing is safe for the duration of a call.
func bytesToString(b []byte) string {
	if len(b) == 0 {
		return ""
	}

	return unsafe.String(unsafe.SliceData(b), len(b))
}
