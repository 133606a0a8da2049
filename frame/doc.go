// Package frame wraps arbitrary payloads in a compressed, checksummed
// envelope and encodes the result as base65536 text.
//
// A frame is a 16-byte header followed by the (optionally compressed)
// payload:
//
//	offset  size  field
//	0       2     options, always little-endian
//	              bit 0: checksum present
//	              bit 1: big-endian header fields
//	              bits 2-3: reserved, zero
//	              bits 4-15: magic number 0xB65
//	2       1     compression type
//	3       1     reserved, zero
//	4       4     uncompressed payload size
//	8       8     xxHash64 of the uncompressed payload, zero without checksum
//	16      ...   payload
//
// Encode and Decode work on base65536 text; Marshal and Unmarshal on the
// binary frame.
//
//	text, err := frame.Encode(payload, frame.WithCompression(format.CompressionS2))
//	...
//	payload, err = frame.Decode(text)
//
// When compression does not shrink the payload the frame stores it as-is and
// records format.CompressionNone, so a frame is never larger than the
// payload plus its header.
package frame
