package base65536

import (
	"io"
	"unicode/utf8"

	"github.com/nuew/base65536/errs"
	"github.com/nuew/base65536/internal/pool"
)

// streamChunk is the number of input bytes encoded per underlying write, and
// the size of the stream decoder's read buffer. It must be even.
const streamChunk = 2048

type encoder struct {
	enc     *Encoding
	w       io.Writer
	out     *pool.ByteBuffer
	pending byte
	hasByte bool
	pos     int // code points written so far
	err     error
	closed  bool
}

// NewEncoder returns a stream encoder writing base65536 text to w.
//
// Pairs of bytes are encoded as they arrive; an odd trailing byte is held
// until the next Write or until Close, which emits it as a padding code point.
// Callers must Close the encoder to flush it. The text written is identical
// to enc.EncodeToString of everything written, wrapping included.
//
// The returned encoder is not safe for concurrent use.
func NewEncoder(enc *Encoding, w io.Writer) io.WriteCloser {
	if enc == nil {
		enc = StdEncoding
	}

	return &encoder{enc: enc, w: w, out: pool.GetStreamBuffer()}
}

func (e *encoder) Write(p []byte) (int, error) {
	if e.closed {
		return 0, errs.ErrClosed
	}
	if e.err != nil {
		return 0, e.err
	}

	n := 0
	for len(p) > 0 {
		e.out.Reset()

		if e.hasByte {
			pair := [2]byte{e.pending, p[0]}
			e.out.B, e.pos = e.enc.appendCodePoints(e.out.B, pair[:], e.pos)
			e.hasByte = false
			p = p[1:]
			n++
		}

		chunk := min(len(p), streamChunk)
		even := chunk &^ 1
		e.out.B, e.pos = e.enc.appendCodePoints(e.out.B, p[:even], e.pos)
		if chunk > even {
			e.pending = p[even]
			e.hasByte = true
		}
		p = p[chunk:]

		if err := e.flush(); err != nil {
			return n, err
		}
		n += chunk
	}

	return n, nil
}

// Close writes any pending byte and releases the encoder's buffer. It does
// not close the underlying writer.
func (e *encoder) Close() error {
	if e.closed {
		return e.err
	}
	e.closed = true
	defer func() {
		pool.PutStreamBuffer(e.out)
		e.out = nil
	}()

	if e.err != nil || !e.hasByte {
		return e.err
	}

	e.out.Reset()
	e.out.B, e.pos = e.enc.appendCodePoints(e.out.B, []byte{e.pending}, e.pos)
	e.hasByte = false

	return e.flush()
}

func (e *encoder) flush() error {
	if e.out.Len() == 0 {
		return nil
	}
	if _, err := e.out.WriteTo(e.w); err != nil {
		e.err = err
		return err
	}

	return nil
}

type decoder struct {
	state decodeState
	r     io.Reader
	err   error // sticky: decode failure or the reader's terminal error
	raw   [streamChunk]byte
	nraw  int // bytes held in raw, at most an incomplete UTF-8 sequence between reads
	out   []byte
	head  int // next unread byte in out
}

// NewDecoder returns a stream decoder reading base65536 text from r.
//
// UTF-8 sequences split across reads are reassembled, and the termination
// state and code point offsets carry across reads, so errors match those of
// enc.DecodeString on the whole text. Bytes decoded before an error are
// returned before the error itself.
func NewDecoder(enc *Encoding, r io.Reader) io.Reader {
	if enc == nil {
		enc = StdEncoding
	}

	return &decoder{state: enc.newDecodeState(), r: r}
}

func (d *decoder) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}

	for {
		if d.head < len(d.out) {
			n := copy(p, d.out[d.head:])
			d.head += n

			return n, nil
		}
		if d.err != nil {
			return 0, d.err
		}

		n, rerr := d.r.Read(d.raw[d.nraw:])
		d.nraw += n
		d.decodeBuffered(rerr != nil)
		if rerr != nil && d.err == nil {
			d.err = rerr
		}
	}
}

// decodeBuffered decodes every complete code point in raw. At the end of the
// input, incomplete sequences are decoded too and become U+FFFD.
func (d *decoder) decodeBuffered(final bool) {
	data := d.raw[:d.nraw]
	d.out = d.out[:0]
	d.head = 0

	consumed := 0
	for consumed < len(data) {
		rest := data[consumed:]
		if !final && !utf8.FullRune(rest) {
			break
		}

		r, size := utf8.DecodeRune(rest)
		consumed += size

		var err error
		if d.out, err = d.state.appendRune(d.out, r); err != nil {
			d.err = err
			break
		}
	}

	d.nraw = copy(d.raw[:], data[consumed:])
}
