//go:build gozstd && cgo

package compress

import (
	"bytes"
	"fmt"

	"github.com/valyala/gozstd"
)

const gozstdLevel = 19

// Compress compresses data with the cgo zstd bindings.
func (c ZstdCompressor) Compress(data []byte) ([]byte, error) {
	return gozstd.CompressLevel(nil, data, gozstdLevel), nil
}

// Decompress decompresses Zstd data of unknown size, up to 128MiB.
func (c ZstdCompressor) Decompress(data []byte) ([]byte, error) {
	return c.DecompressSize(data, maxUnsizedOutput)
}

// DecompressSize decompresses at most size bytes through a streaming reader,
// so memory follows the output actually produced.
func (c ZstdCompressor) DecompressSize(data []byte, size int) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	if err := checkZstdHeader(data, size); err != nil {
		return nil, err
	}

	zr := gozstd.NewReader(bytes.NewReader(data))
	defer zr.Release()

	out, err := readLimited(zr, size)
	if err != nil {
		return nil, fmt.Errorf("zstd decompression failed: %w", err)
	}

	return out, nil
}
