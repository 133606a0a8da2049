package compress

import (
	"fmt"

	"github.com/klauspost/compress/zstd"

	"github.com/nuew/base65536/errs"
)

const (
	// zstdMaxBlockSize is the most a single zstd block can decompress to.
	zstdMaxBlockSize = 128 * 1024
	// zstdMaxWindow is the largest window either zstd backend writes.
	zstdMaxWindow = 8 << 20
)

// ZstdCompressor compresses frame payloads with Zstandard.
//
// It gives the best ratio of the built-in codecs and is the frame default.
// The implementation is pure Go unless built with the gozstd tag and cgo.
type ZstdCompressor struct{}

var (
	_ Codec             = (*ZstdCompressor)(nil)
	_ SizedDecompressor = (*ZstdCompressor)(nil)
	_ Bounded           = (*ZstdCompressor)(nil)
)

// NewZstdCompressor creates a Zstd codec with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}

// MaxDecompressedSize bounds the output of n bytes of zstd data. Every
// block costs at least four bytes (header plus one RLE byte).
func (c ZstdCompressor) MaxDecompressedSize(n int) int {
	return scaledSize(n/4+1, zstdMaxBlockSize, 0)
}

// checkZstdHeader rejects a frame whose header asks for more memory than a
// size-byte output needs. Decoders size their history from the header
// before producing any output.
func checkZstdHeader(data []byte, size int) error {
	var h zstd.Header
	if err := h.Decode(data); err != nil {
		return fmt.Errorf("zstd frame header: %w", err)
	}
	if h.Skippable {
		return nil
	}

	if h.HasFCS && h.FrameContentSize > uint64(size) { //nolint:gosec
		return fmt.Errorf("%w: zstd frame declares %d bytes, at most %d expected",
			errs.ErrDataSizeMismatch, h.FrameContentSize, size)
	}

	if !h.SingleSegment && h.WindowSize > zstdMaxWindow {
		return fmt.Errorf("zstd window of %d bytes exceeds %d", h.WindowSize, zstdMaxWindow)
	}

	return nil
}
