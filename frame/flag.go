package frame

import (
	"fmt"

	"github.com/nuew/base65536/errs"
	"github.com/nuew/base65536/format"
)

// Flag is the packed options and compression fields at the start of a header.
type Flag struct {
	// Options packs the checksum and endianness bits with the magic number.
	// See the package documentation for the layout.
	Options uint16

	// Compression is the format.CompressionType applied to the payload.
	Compression uint8
}

// NewFlag returns a little-endian, uncompressed flag without checksum.
func NewFlag() Flag {
	return Flag{
		Options:     MagicV1Opt,
		Compression: uint8(format.CompressionNone),
	}
}

// HasChecksum returns whether the header carries a payload checksum.
func (f Flag) HasChecksum() bool {
	return (f.Options & ChecksumMask) != 0
}

// SetChecksum enables or disables the checksum bit.
func (f *Flag) SetChecksum(enabled bool) {
	if enabled {
		f.Options |= ChecksumMask
	} else {
		f.Options &^= ChecksumMask
	}
}

// IsLittleEndian returns whether header fields are little-endian.
func (f Flag) IsLittleEndian() bool {
	return (f.Options & EndiannessMask) == 0
}

// IsBigEndian returns whether header fields are big-endian.
func (f Flag) IsBigEndian() bool {
	return (f.Options & EndiannessMask) != 0
}

// WithLittleEndian sets little-endian byte order.
func (f *Flag) WithLittleEndian() {
	f.Options &^= EndiannessMask
}

// WithBigEndian sets big-endian byte order.
func (f *Flag) WithBigEndian() {
	f.Options |= EndiannessMask
}

// GetMagicNumber returns the magic number from the Options field.
func (f Flag) GetMagicNumber() uint16 {
	return f.Options & MagicNumberMask
}

// IsValidMagicNumber checks the magic number against MagicV1Opt.
func (f Flag) IsValidMagicNumber() bool {
	return f.GetMagicNumber() == MagicV1Opt
}

// SetCompression sets the payload compression type.
func (f *Flag) SetCompression(compression format.CompressionType) {
	f.Compression = uint8(compression)
}

// GetCompression returns the payload compression type.
func (f Flag) GetCompression() format.CompressionType {
	return format.CompressionType(f.Compression)
}

// Validate checks the magic number, the reserved bits and the compression type.
func (f Flag) Validate() error {
	if !f.IsValidMagicNumber() {
		return fmt.Errorf("%w: magic number 0x%04x", errs.ErrInvalidHeaderFlags, f.GetMagicNumber())
	}

	if f.Options&ReservedBitsMask != 0 {
		return fmt.Errorf("%w: reserved bits 0x%04x set", errs.ErrInvalidHeaderFlags, f.Options&ReservedBitsMask)
	}

	if !f.GetCompression().IsValid() {
		return fmt.Errorf("%w: 0x%02x", errs.ErrUnsupportedCompression, f.Compression)
	}

	return nil
}
