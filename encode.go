package base65536

import (
	"slices"
	"unicode/utf8"

	"github.com/nuew/base65536/block"
	"github.com/nuew/base65536/internal/pool"
)

// maxCodePointSize is the UTF-8 length of the widest code point the encoder emits.
const maxCodePointSize = utf8.UTFMax

// CodePointCount returns the number of code points that encode n bytes.
func CodePointCount(n int) int {
	return (n + 1) / 2
}

// EncodedLen returns the maximum length in bytes of the UTF-8 text encoding
// n bytes of input, separators included.
func (e *Encoding) EncodedLen(n int) int {
	cps := CodePointCount(n)

	return cps*maxCodePointSize + e.wrap.separators(cps)*len(e.wrap.eol)
}

// AppendEncode appends the encoding of src to dst and returns the extended
// buffer.
func (e *Encoding) AppendEncode(dst, src []byte) []byte {
	dst = slices.Grow(dst, e.EncodedLen(len(src)))
	dst, _ = e.appendCodePoints(dst, src, 0)

	return dst
}

// EncodeToString returns the encoding of src.
func (e *Encoding) EncodeToString(src []byte) string {
	if len(src) == 0 {
		return ""
	}

	bb := pool.GetTextBuffer()
	defer pool.PutTextBuffer(bb)

	bb.Grow(e.EncodedLen(len(src)))
	bb.B, _ = e.appendCodePoints(bb.B, src, 0)

	return string(bb.B)
}

// appendCodePoints encodes src as if pos code points had already been
// written, so wrapping continues seamlessly across calls. It returns the
// extended dst and the new position.
//
// Only the final call of a stream may pass an odd-length src.
func (e *Encoding) appendCodePoints(dst, src []byte, pos int) ([]byte, int) {
	wrap := e.wrap.enabled
	columns := e.wrap.columns
	eol := e.wrap.eol

	for i := 0; i < len(src); i += 2 {
		if wrap && pos != 0 && pos%columns == 0 {
			dst = append(dst, eol...)
		}

		var codePoint uint32
		if i+1 < len(src) {
			codePoint = block.Start(src[i+1]) + uint32(src[i])
		} else {
			codePoint = block.PaddingStart + uint32(src[i])
		}

		// Every block is fully assigned, so any start+offset is a valid rune.
		dst = utf8.AppendRune(dst, rune(codePoint))
		pos++
	}

	return dst, pos
}
