package compress

import (
	"fmt"

	"github.com/klauspost/compress/s2"

	"github.com/nuew/base65536/errs"
)

// s2MaxExpansion bounds the output per input byte of an S2 block. The
// longest repeat tag is five bytes and yields up to 1<<24 + 65540 bytes.
const s2MaxExpansion = 1 << 22

// S2Compressor compresses frame payloads with S2, a faster Snappy successor.
type S2Compressor struct{}

var (
	_ Codec             = (*S2Compressor)(nil)
	_ SizedDecompressor = (*S2Compressor)(nil)
	_ Bounded           = (*S2Compressor)(nil)
)

// NewS2Compressor creates an S2 block codec.
func NewS2Compressor() S2Compressor {
	return S2Compressor{}
}

// Compress compresses data using S2 with the better-compression setting.
func (c S2Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.EncodeBetter(nil, data), nil
}

// Decompress decompresses an S2 block of up to 128MiB.
func (c S2Compressor) Decompress(data []byte) ([]byte, error) {
	return c.DecompressSize(data, maxUnsizedOutput)
}

// DecompressSize decompresses an S2 block of at most size bytes. The block
// states its own length up front, which is checked before allocating.
func (c S2Compressor) DecompressSize(data []byte, size int) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	n, err := s2.DecodedLen(data)
	if err != nil {
		return nil, fmt.Errorf("s2 decompression failed: %w", err)
	}
	if n > size {
		return nil, fmt.Errorf("%w: s2 block declares %d bytes, at most %d expected", errs.ErrDataSizeMismatch, n, size)
	}

	out, err := s2.Decode(nil, data)
	if err != nil {
		return nil, fmt.Errorf("s2 decompression failed: %w", err)
	}

	return out, nil
}

// MaxDecompressedSize bounds the output of an n-byte S2 block.
func (c S2Compressor) MaxDecompressedSize(n int) int {
	return scaledSize(n, s2MaxExpansion, 0)
}
