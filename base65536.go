// Package base65536 implements base65536, a binary-to-text encoding that packs
// two bytes into every Unicode code point.
//
// Each pair of input bytes [b0, b1] becomes the code point Start(b1) + b0,
// where Start picks one of 256 fully assigned 256-code-point blocks (see the
// block package). An odd trailing byte b0 becomes PaddingStart + b0 and
// terminates the stream. The result is about twice as dense per character as
// base64, which matters wherever cost is counted in characters rather than
// bytes.
//
// # Basic Usage
//
// Encoding and decoding with the package-level helpers:
//
//	text := base65536.Encode([]byte("hello world"), base65536.NoWrap)
//	// text == "驨ꍬ啯𒁷ꍲᕤ"
//
//	data, err := base65536.Decode(text, false)
//	if err != nil {
//	    return err
//	}
//
// Wrapping output every 140 code points, and decoding it back:
//
//	text := base65536.Encode(data, base65536.WrapAt(140))
//	data, err := base65536.Decode(text, true) // skip the line breaks
//
// # Strict Decoding
//
// Decoding is strict by default. Line breaks, whitespace and every other code
// point outside the scheme fail with an error matching
// errs.ErrInvalidCodePoint; the concrete *errs.InvalidCodePointError carries
// the code point index of the offender. Anything following a padding code
// point fails with errs.ErrInvalidLength. Pass ignoreGarbage (or use
// WithIgnoreGarbage) to skip foreign code points instead.
//
// # Buffer Reuse
//
// Encoding.AppendEncode and Encoding.AppendDecode append to caller-owned
// buffers. Encoding.Decode writes into a fixed buffer and panics if it is too
// small; Encoding.DecodedLen gives a safe size.
//
// # Streaming
//
// NewEncoder and NewDecoder wrap an io.Writer and io.Reader.
//
// # Package Structure
//
// The frame package builds on this one to carry compressed, checksummed
// payloads as base65536 text.
package base65536

// Encode returns the base65536 text for src, wrapped according to wrap.
//
// Encode panics if wrap has a non-positive column count.
func Encode(src []byte, wrap WrapPolicy) string {
	return policyEncoding(wrap, false).EncodeToString(src)
}

// EncodeString is Encode for string input.
func EncodeString(s string, wrap WrapPolicy) string {
	if s == "" {
		return ""
	}

	return Encode([]byte(s), wrap)
}

// EncodeAppend appends the base65536 text for src to dst.
//
// EncodeAppend panics if wrap has a non-positive column count.
func EncodeAppend(dst, src []byte, wrap WrapPolicy) []byte {
	return policyEncoding(wrap, false).AppendEncode(dst, src)
}

// Decode returns the bytes represented by text.
//
// When ignoreGarbage is false every code point must belong to a base65536
// block; otherwise foreign code points are skipped.
func Decode(text string, ignoreGarbage bool) ([]byte, error) {
	return encodingFor(ignoreGarbage).DecodeString(text)
}

// DecodeAppend appends the bytes represented by text to dst.
func DecodeAppend(dst []byte, text string, ignoreGarbage bool) ([]byte, error) {
	return encodingFor(ignoreGarbage).appendDecodeString(dst, text)
}

// DecodeInto decodes text into dst and returns the number of bytes written.
// It panics if dst is too small for the decoded output.
func DecodeInto(dst []byte, text string, ignoreGarbage bool) (int, error) {
	return encodingFor(ignoreGarbage).decodeStringInto(dst, text)
}

func encodingFor(ignoreGarbage bool) *Encoding {
	if ignoreGarbage {
		return IgnoreGarbageEncoding
	}

	return StdEncoding
}
