package compress

import (
	"errors"
	"fmt"
	"sync"

	"github.com/pierrec/lz4/v4"

	"github.com/nuew/base65536/errs"
)

// lz4CompressorPool reuses lz4.Compressor hash tables between calls.
var lz4CompressorPool = sync.Pool{
	New: func() any {
		return &lz4.Compressor{}
	},
}

// lz4MaxExpansion is the most output one byte of an LZ4 block can yield:
// every extra length byte adds at most 255.
const lz4MaxExpansion = 255

// LZ4Compressor compresses frame payloads as a single LZ4 block.
type LZ4Compressor struct{}

var (
	_ Codec             = (*LZ4Compressor)(nil)
	_ SizedDecompressor = (*LZ4Compressor)(nil)
	_ Bounded           = (*LZ4Compressor)(nil)
)

// NewLZ4Compressor creates an LZ4 block codec.
func NewLZ4Compressor() LZ4Compressor {
	return LZ4Compressor{}
}

// Compress compresses data using a pooled lz4.Compressor.
//
// Incompressible input yields an empty block, which Decompress cannot
// reverse; the frame encoder falls back to CompressionNone in that case.
func (c LZ4Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}
	dst := make([]byte, lz4.CompressBlockBound(len(data)))

	lc, _ := lz4CompressorPool.Get().(*lz4.Compressor)
	defer lz4CompressorPool.Put(lc)

	n, err := lc.CompressBlock(data, dst)
	if err != nil {
		return nil, fmt.Errorf("lz4 compression failed: %w", err)
	}

	return dst[:n], nil
}

// Decompress decompresses an LZ4 block of unknown size.
//
// It starts with a buffer four times the input and doubles it on
// lz4.ErrInvalidSourceShortBuffer, up to the block's maximum expansion or
// 128MiB, whichever is smaller.
func (c LZ4Compressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	limit := min(c.MaxDecompressedSize(len(data)), maxUnsizedOutput)
	bufSize := min(len(data)*4, limit)
	for {
		buf := make([]byte, bufSize)
		n, err := lz4.UncompressBlock(data, buf)
		if err == nil {
			return buf[:n], nil
		}
		if !errors.Is(err, lz4.ErrInvalidSourceShortBuffer) || bufSize == limit {
			return nil, fmt.Errorf("lz4 decompression failed: %w", err)
		}
		bufSize = min(bufSize*2, limit)
	}
}

// DecompressSize decompresses an LZ4 block of at most size bytes. Sizes
// beyond what the block can expand to are rejected before allocating.
func (c LZ4Compressor) DecompressSize(data []byte, size int) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	if limit := c.MaxDecompressedSize(len(data)); size > limit {
		return nil, fmt.Errorf("%w: %d bytes declared, lz4 block holds at most %d", errs.ErrDataSizeMismatch, size, limit)
	}

	buf := make([]byte, size)
	n, err := lz4.UncompressBlock(data, buf)
	if err != nil {
		return nil, fmt.Errorf("lz4 decompression failed: %w", err)
	}

	return buf[:n], nil
}

// MaxDecompressedSize bounds the output of an n-byte LZ4 block.
func (c LZ4Compressor) MaxDecompressedSize(n int) int {
	return scaledSize(n, lz4MaxExpansion, 0)
}
