package compress

// NoOpCompressor stores payloads unchanged. The frame encoder also falls
// back to it when compression would not save any space.
type NoOpCompressor struct{}

var (
	_ Codec   = (*NoOpCompressor)(nil)
	_ Bounded = (*NoOpCompressor)(nil)
)

// NewNoOpCompressor creates the pass-through codec.
func NewNoOpCompressor() NoOpCompressor {
	return NoOpCompressor{}
}

// Compress returns data itself; the result aliases the input.
func (c NoOpCompressor) Compress(data []byte) ([]byte, error) {
	return data, nil
}

// Decompress returns data itself; the result aliases the input.
func (c NoOpCompressor) Decompress(data []byte) ([]byte, error) {
	return data, nil
}

// MaxDecompressedSize is n: stored payloads never expand.
func (c NoOpCompressor) MaxDecompressedSize(n int) int {
	return n
}
