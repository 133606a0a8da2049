// Package compress provides the payload codecs used by the frame package.
//
// Compressing before encoding shrinks the number of code points a payload
// needs, which is the point of base65536 in character-limited channels.
//
// Supported algorithms (format.CompressionType):
//   - None: payload stored as-is
//   - Zstd: best ratio (github.com/klauspost/compress/zstd; build with
//     -tags gozstd and cgo enabled to use github.com/valyala/gozstd instead)
//   - S2: fast, good ratio (github.com/klauspost/compress/s2)
//   - LZ4: fastest decompression (github.com/pierrec/lz4/v4)
//
// All codecs are stateless values backed by pooled encoders, so they are
// safe for concurrent use.
package compress
