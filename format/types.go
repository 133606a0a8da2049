// Package format defines identifiers shared by the frame header and the
// compression codecs.
package format

import (
	"fmt"
	"strings"
)

// CompressionType identifies the codec applied to a frame payload.
type CompressionType uint8

const (
	CompressionNone CompressionType = 0x1 // CompressionNone stores the payload as-is.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 block compression.
)

// CompressionTypes lists every supported compression type.
var CompressionTypes = []CompressionType{CompressionNone, CompressionZstd, CompressionS2, CompressionLZ4}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// IsValid reports whether c is one of the supported compression types.
func (c CompressionType) IsValid() bool {
	return c >= CompressionNone && c <= CompressionLZ4
}

// ParseCompressionType parses a case-insensitive compression name as printed
// by String.
func ParseCompressionType(name string) (CompressionType, error) {
	for _, c := range CompressionTypes {
		if strings.EqualFold(name, c.String()) {
			return c, nil
		}
	}

	return 0, fmt.Errorf("unknown compression type %q", name)
}
