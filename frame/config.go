package frame

import (
	"fmt"

	"github.com/nuew/base65536"
	"github.com/nuew/base65536/endian"
	"github.com/nuew/base65536/errs"
	"github.com/nuew/base65536/format"
	"github.com/nuew/base65536/internal/options"
)

// Config holds frame settings. Build one with NewConfig.
type Config struct {
	compression format.CompressionType
	checksum    bool
	engine      endian.EndianEngine
	encoding    *base65536.Encoding
	maxDataSize uint64
}

// Option configures a frame Config.
type Option = options.Option[*Config]

// WithCompression selects the payload codec. The default is zstd.
func WithCompression(compression format.CompressionType) Option {
	return options.New(func(c *Config) error {
		if !compression.IsValid() {
			return fmt.Errorf("%w: 0x%02x", errs.ErrUnsupportedCompression, uint8(compression))
		}
		c.compression = compression

		return nil
	})
}

// WithChecksum enables or disables the payload checksum. It is enabled by default.
func WithChecksum(enabled bool) Option {
	return options.NoError(func(c *Config) {
		c.checksum = enabled
	})
}

// WithLittleEndian writes header fields little-endian. This is the default.
func WithLittleEndian() Option {
	return options.NoError(func(c *Config) {
		c.engine = endian.GetLittleEndianEngine()
	})
}

// WithBigEndian writes header fields big-endian.
func WithBigEndian() Option {
	return options.NoError(func(c *Config) {
		c.engine = endian.GetBigEndianEngine()
	})
}

// WithEncoding sets the text encoding used by Encode and Decode.
// The default is base65536.StdEncoding.
func WithEncoding(enc *base65536.Encoding) Option {
	return options.New(func(c *Config) error {
		if enc == nil {
			return errs.ErrNilEncoding
		}
		c.encoding = enc

		return nil
	})
}

// WithMaxDataSize limits the payload size Encode accepts and Decode trusts
// a header to declare. Larger frames fail with errs.ErrDataTooLarge before
// any decompression. The default is MaxDataSize.
func WithMaxDataSize(n uint64) Option {
	return options.NoError(func(c *Config) {
		c.maxDataSize = min(n, MaxDataSize)
	})
}

// NewConfig returns the default configuration with opts applied.
func NewConfig(opts ...Option) (*Config, error) {
	cfg := &Config{
		compression: format.CompressionZstd,
		checksum:    true,
		engine:      endian.GetLittleEndianEngine(),
		encoding:    base65536.StdEncoding,
		maxDataSize: MaxDataSize,
	}

	return options.Build(cfg, nil, opts...)
}

// Compression returns the requested payload codec.
func (c *Config) Compression() format.CompressionType {
	return c.compression
}

// Checksum reports whether frames carry a payload checksum.
func (c *Config) Checksum() bool {
	return c.checksum
}

// Engine returns the byte order of header fields.
func (c *Config) Engine() endian.EndianEngine {
	return c.engine
}

// Encoding returns the text encoding.
func (c *Config) Encoding() *base65536.Encoding {
	return c.encoding
}

// MaxDataSize returns the largest payload accepted.
func (c *Config) MaxDataSize() uint64 {
	return c.maxDataSize
}
