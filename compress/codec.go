package compress

import (
	"bytes"
	"fmt"
	"io"
	"math"

	"github.com/nuew/base65536/errs"
	"github.com/nuew/base65536/format"
)

const (
	// maxUnsizedOutput caps decompression when the caller knows no size.
	maxUnsizedOutput = 128 * 1024 * 1024
	// preallocLimit caps what is allocated for a declared size before any
	// output has been produced.
	preallocLimit = 64 * 1024
)

// Compressor compresses a frame payload.
//
// The returned slice is owned by the caller; the input is not modified.
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor reverses a Compressor.
//
// It returns an error when the input is corrupted or was produced by a
// different algorithm.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both directions.
type Codec interface {
	Compressor
	Decompressor
}

// SizedDecompressor is implemented by codecs that decompress more efficiently
// when the uncompressed size is known up front, as it is for frames.
//
// DecompressSize treats size as an upper bound: it fails instead of
// producing more than size bytes.
type SizedDecompressor interface {
	DecompressSize(data []byte, size int) ([]byte, error)
}

// Bounded is implemented by codecs that can tell the largest output an
// n-byte payload may decompress to.
type Bounded interface {
	MaxDecompressedSize(n int) int
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCompressor(),
	format.CompressionZstd: NewZstdCompressor(),
	format.CompressionS2:   NewS2Compressor(),
	format.CompressionLZ4:  NewLZ4Compressor(),
}

// GetCodec returns the built-in codec for compressionType.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("%w: %s (0x%02x)", errs.ErrUnsupportedCompression, compressionType, uint8(compressionType))
}

// Decompress decompresses data with codec, passing size on when the codec can
// use it. A negative size means unknown.
//
// A size the payload cannot possibly decompress to is rejected with
// errs.ErrDataSizeMismatch before anything is allocated for it.
func Decompress(codec Decompressor, data []byte, size int) ([]byte, error) {
	if size < 0 {
		return codec.Decompress(data)
	}

	if bounded, ok := codec.(Bounded); ok {
		if limit := bounded.MaxDecompressedSize(len(data)); size > limit {
			return nil, fmt.Errorf("%w: %d bytes declared, a %d-byte payload holds at most %d",
				errs.ErrDataSizeMismatch, size, len(data), limit)
		}
	}

	if sized, ok := codec.(SizedDecompressor); ok {
		return sized.DecompressSize(data, size)
	}

	return codec.Decompress(data)
}

// scaledSize returns n*factor+extra, saturating at math.MaxInt.
func scaledSize(n, factor, extra int) int {
	if n > (math.MaxInt-extra)/factor {
		return math.MaxInt
	}

	return n*factor + extra
}

// readLimited reads r to the end and fails once it yields more than limit
// bytes. The buffer grows with the output actually produced.
func readLimited(r io.Reader, limit int) ([]byte, error) {
	var buf bytes.Buffer
	buf.Grow(min(limit, preallocLimit))

	if _, err := buf.ReadFrom(io.LimitReader(r, int64(limit)+1)); err != nil {
		return nil, err
	}

	if buf.Len() > limit {
		return nil, fmt.Errorf("%w: output exceeds %d bytes", errs.ErrDataSizeMismatch, limit)
	}

	return buf.Bytes(), nil
}
