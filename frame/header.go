package frame

import (
	"fmt"

	"github.com/nuew/base65536/endian"
	"github.com/nuew/base65536/errs"
)

// Header is the fixed-size frame header.
type Header struct {
	// Flag holds the options and compression fields.
	Flag Flag // 3 bytes, offset 0-2
	// Reserved must be zero.
	Reserved uint8 // 1 byte, offset 3
	// DataSize is the uncompressed payload size in bytes.
	DataSize uint32 // 4 bytes, offset 4-7
	// Checksum is the xxHash64 of the uncompressed payload, or zero when
	// Flag.HasChecksum is false.
	Checksum uint64 // 8 bytes, offset 8-15
}

// Parse parses the header from a byte slice.
// It returns an error if data is not exactly HeaderSize bytes or the header
// fields are invalid.
func (h *Header) Parse(data []byte) error {
	if len(data) != HeaderSize {
		return fmt.Errorf("%w: got %d bytes, want %d", errs.ErrInvalidHeaderSize, len(data), HeaderSize)
	}

	// The options field is always little-endian; it decides the order of the rest.
	h.Flag.Options = uint16(data[0]) | (uint16(data[1]) << 8)
	h.Flag.Compression = data[2]
	h.Reserved = data[3]

	engine := h.GetEndianEngine()
	h.DataSize = engine.Uint32(data[4:8])
	h.Checksum = engine.Uint64(data[8:16])

	return h.Validate()
}

// Bytes serializes the header into a new HeaderSize-byte slice.
func (h *Header) Bytes() []byte {
	return h.AppendBytes(make([]byte, 0, HeaderSize))
}

// AppendBytes appends the serialized header to dst.
func (h *Header) AppendBytes(dst []byte) []byte {
	dst = append(dst, byte(h.Flag.Options), byte(h.Flag.Options>>8), h.Flag.Compression, h.Reserved)

	engine := h.GetEndianEngine()
	dst = engine.AppendUint32(dst, h.DataSize)

	return engine.AppendUint64(dst, h.Checksum)
}

// GetEndianEngine returns the endian engine selected by the header flags.
func (h *Header) GetEndianEngine() endian.EndianEngine {
	return endian.Select(h.Flag.IsBigEndian())
}

// Validate checks the flags and the reserved fields.
func (h *Header) Validate() error {
	if err := h.Flag.Validate(); err != nil {
		return err
	}

	if h.Reserved != 0 {
		return fmt.Errorf("%w: reserved byte 0x%02x", errs.ErrInvalidHeaderFlags, h.Reserved)
	}

	if !h.Flag.HasChecksum() && h.Checksum != 0 {
		return fmt.Errorf("%w: checksum present without checksum flag", errs.ErrInvalidHeaderFlags)
	}

	return nil
}
