package base65536

import (
	"bytes"
	"errors"
	"io"
	"math/rand"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/require"

	"github.com/nuew/base65536/errs"
)

// writeInPieces writes data to w using the given piece sizes cyclically.
func writeInPieces(t *testing.T, w io.Writer, data []byte, sizes []int) {
	t.Helper()
	for i := 0; len(data) > 0; i++ {
		n := min(sizes[i%len(sizes)], len(data))
		written, err := w.Write(data[:n])
		require.NoError(t, err)
		require.Equal(t, n, written)
		data = data[n:]
	}
}

func TestEncoder_MatchesEncodeToString(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	encodings := []*Encoding{
		StdEncoding,
		MustNewEncoding(WithWrap(WrapAt(1))),
		MustNewEncoding(WithWrap(WrapAt(5))),
		MustNewEncoding(WithWrap(WrapAtWith(76, "\r\n"))),
	}
	pieces := [][]int{{1}, {2}, {3}, {1, 4, 7}, {streamChunk + 1}, {5000}}

	for _, n := range []int{0, 1, 2, 3, 11, 255, 4097, 10001} {
		data := randomBytes(rng, n)
		for _, enc := range encodings {
			want := enc.EncodeToString(data)
			for _, sizes := range pieces {
				var out bytes.Buffer
				w := NewEncoder(enc, &out)
				writeInPieces(t, w, data, sizes)
				require.NoError(t, w.Close())
				require.Equal(t, want, out.String(), "n=%d wrap=%s pieces=%v", n, enc.Wrap(), sizes)
			}
		}
	}
}

func TestEncoder_WriteAfterClose(t *testing.T) {
	w := NewEncoder(nil, io.Discard)
	require.NoError(t, w.Close())
	require.NoError(t, w.Close())

	_, err := w.Write([]byte{1})
	require.ErrorIs(t, err, errs.ErrClosed)
}

type limitedWriter struct {
	remaining int
}

var errWriterFull = errors.New("writer full")

func (w *limitedWriter) Write(p []byte) (int, error) {
	if len(p) > w.remaining {
		return 0, errWriterFull
	}
	w.remaining -= len(p)

	return len(p), nil
}

func TestEncoder_PropagatesWriteError(t *testing.T) {
	w := NewEncoder(StdEncoding, &limitedWriter{remaining: 4})

	_, err := w.Write(make([]byte, 16))
	require.ErrorIs(t, err, errWriterFull)

	_, err = w.Write([]byte{1, 2})
	require.ErrorIs(t, err, errWriterFull, "errors are sticky")
	require.ErrorIs(t, w.Close(), errWriterFull)
}

func TestEncoder_CloseFlushesPendingByte(t *testing.T) {
	var out bytes.Buffer
	w := NewEncoder(StdEncoding, &out)

	_, err := w.Write([]byte{1, 2, 3})
	require.NoError(t, err)
	require.Equal(t, oneTwoThree[:3], out.String(), "odd byte is held back")

	require.NoError(t, w.Close())
	require.Equal(t, oneTwoThree, out.String())
}

func TestDecoder_MatchesDecodeString(t *testing.T) {
	rng := rand.New(rand.NewSource(43))
	readers := map[string]func(io.Reader) io.Reader{
		"plain":    func(r io.Reader) io.Reader { return r },
		"one byte": iotest.OneByteReader,
		"half":     iotest.HalfReader,
		"data err": iotest.DataErrReader,
	}

	for _, n := range []int{0, 1, 2, 3, 255, 4097, 10001} {
		data := randomBytes(rng, n)
		text := Encode(data, WrapAt(7))

		for name, wrap := range readers {
			got, err := io.ReadAll(NewDecoder(IgnoreGarbageEncoding, wrap(strings.NewReader(text))))
			require.NoError(t, err, "%s n=%d", name, n)
			require.Equal(t, data, append([]byte{}, got...), "%s n=%d", name, n)
		}
	}
}

func TestDecoder_ErrorsMatchOneShot(t *testing.T) {
	rng := rand.New(rand.NewSource(44))
	clean := Encode(randomBytes(rng, 5000), NoWrap)

	inputs := []string{
		clean + "!",
		clean[:30] + "\n" + clean[30:],
		clean + "\u1501\u1502",
		"\u1501" + clean,
		clean[:len(clean)-1], // truncated UTF-8 at the end
	}

	for i, text := range inputs {
		_, want := Decode(text, false)
		require.Error(t, want)

		_, got := io.ReadAll(NewDecoder(StdEncoding, iotest.OneByteReader(strings.NewReader(text))))
		require.Equal(t, want, got, "input %d", i)
	}
}

func TestDecoder_ReturnsBytesBeforeError(t *testing.T) {
	got, err := io.ReadAll(NewDecoder(nil, strings.NewReader(helloWorldText+"!")))
	require.ErrorIs(t, err, errs.ErrInvalidCodePoint)
	require.Equal(t, helloWorld, string(got))
}

func TestDecoder_ReaderError(t *testing.T) {
	errBoom := errors.New("boom")
	r := io.MultiReader(strings.NewReader(oneTwoThree[:3]), iotest.ErrReader(errBoom))

	got, err := io.ReadAll(NewDecoder(StdEncoding, r))
	require.ErrorIs(t, err, errBoom)
	require.Equal(t, []byte{1, 2}, got)
}

func TestStream_RoundTrip(t *testing.T) {
	data := everyPairOfBytes()
	enc := MustNewEncoding(WithWrap(WrapAt(140)), WithIgnoreGarbage(true))

	pr, pw := io.Pipe()
	go func() {
		w := NewEncoder(enc, pw)
		_, err := w.Write(data)
		if err == nil {
			err = w.Close()
		}
		pw.CloseWithError(err)
	}()

	got, err := io.ReadAll(NewDecoder(enc, pr))
	require.NoError(t, err)
	require.Equal(t, data, got)
}

func TestStream_ReadTestReader(t *testing.T) {
	text := Encode([]byte(loremIpsum), NoWrap)
	require.NoError(t, iotest.TestReader(NewDecoder(StdEncoding, strings.NewReader(text)), []byte(loremIpsum)))
}
