package frame

import (
	"fmt"
	"math"
	"slices"

	"github.com/nuew/base65536/compress"
	"github.com/nuew/base65536/endian"
	"github.com/nuew/base65536/errs"
	"github.com/nuew/base65536/format"
	"github.com/nuew/base65536/internal/hash"
	"github.com/nuew/base65536/internal/pool"
)

// Encode frames data and returns the frame as base65536 text.
func Encode(data []byte, opts ...Option) (string, error) {
	cfg, err := NewConfig(opts...)
	if err != nil {
		return "", err
	}

	bb := pool.GetFrameBuffer()
	defer pool.PutFrameBuffer(bb)

	bb.B, err = cfg.appendFrame(bb.B[:0], data)
	if err != nil {
		return "", err
	}

	return cfg.encoding.EncodeToString(bb.B), nil
}

// Decode reverses Encode. Only WithEncoding affects decoding; everything
// else is read from the frame header.
func Decode(text string, opts ...Option) ([]byte, error) {
	cfg, err := NewConfig(opts...)
	if err != nil {
		return nil, err
	}

	bb := pool.GetFrameBuffer()
	defer pool.PutFrameBuffer(bb)

	bb.B, err = cfg.encoding.AppendDecodeString(bb.B[:0], text)
	if err != nil {
		return nil, fmt.Errorf("decode frame text: %w", err)
	}

	data, header, err := cfg.unmarshal(bb.B)
	if err != nil {
		return nil, err
	}

	// Stored payloads alias the pooled buffer.
	if header.Flag.GetCompression() == format.CompressionNone {
		data = slices.Clone(data)
	}

	return data, nil
}

// Marshal returns the binary frame for data.
func Marshal(data []byte, opts ...Option) ([]byte, error) {
	cfg, err := NewConfig(opts...)
	if err != nil {
		return nil, err
	}

	return cfg.appendFrame(make([]byte, 0, HeaderSize+len(data)), data)
}

// Unmarshal returns the payload of a binary frame. A stored payload aliases
// frame. Only WithMaxDataSize affects unmarshalling.
func Unmarshal(frame []byte, opts ...Option) ([]byte, error) {
	cfg, err := NewConfig(opts...)
	if err != nil {
		return nil, err
	}

	data, _, err := cfg.unmarshal(frame)

	return data, err
}

// ParseHeader parses and validates the header at the start of a binary frame.
func ParseHeader(frame []byte) (Header, error) {
	var h Header
	if len(frame) < HeaderSize {
		return h, fmt.Errorf("%w: got %d bytes, want at least %d", errs.ErrInvalidHeaderSize, len(frame), HeaderSize)
	}

	err := h.Parse(frame[:HeaderSize])

	return h, err
}

func (c *Config) unmarshal(frame []byte) ([]byte, Header, error) {
	h, err := ParseHeader(frame)
	if err != nil {
		return nil, h, err
	}

	if uint64(h.DataSize) > c.maxDataSize || uint64(h.DataSize) > math.MaxInt {
		return nil, h, fmt.Errorf("%w: header declares %d bytes, limit %d", errs.ErrDataTooLarge, h.DataSize, c.maxDataSize)
	}

	data, err := h.decodePayload(frame[HeaderSize:])

	return data, h, err
}

func (c *Config) appendFrame(dst, data []byte) ([]byte, error) {
	if uint64(len(data)) > c.maxDataSize {
		return nil, fmt.Errorf("%w: %d bytes", errs.ErrDataTooLarge, len(data))
	}

	payload, compression, err := c.compressPayload(data)
	if err != nil {
		return nil, err
	}

	h := Header{
		Flag:     NewFlag(),
		DataSize: uint32(len(data)), //nolint:gosec
	}
	h.Flag.SetCompression(compression)
	if endian.IsBigEndian(c.engine) {
		h.Flag.WithBigEndian()
	}
	if c.checksum {
		h.Flag.SetChecksum(true)
		h.Checksum = hash.Checksum(data)
	}

	dst = h.AppendBytes(dst)

	return append(dst, payload...), nil
}

// compressPayload returns the payload to store and the compression type that
// produced it.
func (c *Config) compressPayload(data []byte) ([]byte, format.CompressionType, error) {
	if c.compression == format.CompressionNone || len(data) == 0 {
		return data, format.CompressionNone, nil
	}

	codec, err := compress.GetCodec(c.compression)
	if err != nil {
		return nil, 0, err
	}

	compressed, err := codec.Compress(data)
	if err != nil {
		return nil, 0, fmt.Errorf("compress %s payload: %w", c.compression, err)
	}

	// An empty result is LZ4's answer for incompressible input.
	if len(compressed) == 0 || len(compressed) >= len(data) {
		return data, format.CompressionNone, nil
	}

	return compressed, c.compression, nil
}

func (h *Header) decodePayload(payload []byte) ([]byte, error) {
	compression := h.Flag.GetCompression()

	codec, err := compress.GetCodec(compression)
	if err != nil {
		return nil, err
	}

	// The codec rejects sizes the payload cannot expand to before allocating.
	var data []byte
	if len(payload) > 0 {
		data, err = compress.Decompress(codec, payload, int(h.DataSize))
		if err != nil {
			return nil, fmt.Errorf("decompress %s payload: %w", compression, err)
		}
	}

	if uint64(len(data)) != uint64(h.DataSize) {
		return nil, fmt.Errorf("%w: header says %d bytes, payload has %d", errs.ErrDataSizeMismatch, h.DataSize, len(data))
	}

	if h.Flag.HasChecksum() {
		if sum := hash.Checksum(data); sum != h.Checksum {
			return nil, fmt.Errorf("%w: header 0x%016x, payload 0x%016x", errs.ErrChecksumMismatch, h.Checksum, sum)
		}
	}

	return data, nil
}
