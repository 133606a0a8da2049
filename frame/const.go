package frame

import "math"

const (
	// Bit masks of the options field.
	ChecksumMask     = 0x0001 // Mask for checksum bit (bit 0)
	EndiannessMask   = 0x0002 // Mask for endianness bit (bit 1)
	ReservedBitsMask = 0x000C // Mask for reserved bits (bits 2-3)
	MagicNumberMask  = 0xFFF0 // Mask for magic number (bits 4-15)

	// MagicV1Opt is the version 1 magic number, stored in bits 4-15.
	MagicV1Opt = 0xB650
)

const (
	HeaderSize  = 16             // fixed header size in bytes
	MaxDataSize = math.MaxUint32 // largest payload a header can describe
)
