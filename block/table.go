package block

const (
	// Count is the number of blocks in the table, one per possible byte value.
	Count = 256
	// Width is the number of code points in a block.
	Width = 256
	// OffsetMask extracts the in-block offset (the first byte) from a code point.
	OffsetMask = Width - 1

	// PaddingStart is the start of the block that marks a single trailing byte.
	// It is not part of the table.
	PaddingStart uint32 = 0x1500
)

// starts maps the second byte of a pair to its block start.
// Entries are ascending and pairwise distinct.
var starts = [Count]uint32{
	// CJK Unified Ideographs Extension A
	0x03400, 0x03500, 0x03600, 0x03700, 0x03800, 0x03900, 0x03a00, 0x03b00,
	0x03c00, 0x03d00, 0x03e00, 0x03f00, 0x04000, 0x04100, 0x04200, 0x04300,
	0x04400, 0x04500, 0x04600, 0x04700, 0x04800, 0x04900, 0x04a00, 0x04b00,
	0x04c00,
	// CJK Unified Ideographs
	0x04e00, 0x04f00, 0x05000, 0x05100, 0x05200, 0x05300, 0x05400, 0x05500,
	0x05600, 0x05700, 0x05800, 0x05900, 0x05a00, 0x05b00, 0x05c00, 0x05d00,
	0x05e00, 0x05f00, 0x06000, 0x06100, 0x06200, 0x06300, 0x06400, 0x06500,
	0x06600, 0x06700, 0x06800, 0x06900, 0x06a00, 0x06b00, 0x06c00, 0x06d00,
	0x06e00, 0x06f00, 0x07000, 0x07100, 0x07200, 0x07300, 0x07400, 0x07500,
	0x07600, 0x07700, 0x07800, 0x07900, 0x07a00, 0x07b00, 0x07c00, 0x07d00,
	0x07e00, 0x07f00, 0x08000, 0x08100, 0x08200, 0x08300, 0x08400, 0x08500,
	0x08600, 0x08700, 0x08800, 0x08900, 0x08a00, 0x08b00, 0x08c00, 0x08d00,
	0x08e00, 0x08f00, 0x09000, 0x09100, 0x09200, 0x09300, 0x09400, 0x09500,
	0x09600, 0x09700, 0x09800, 0x09900, 0x09a00, 0x09b00, 0x09c00, 0x09d00,
	0x09e00,
	// Yi Syllables; 0xa000 holds the modifier letter U+A015 and is skipped
	0x0a100, 0x0a200, 0x0a300,
	// Vai
	0x0a500,
	// Linear A
	0x10600,
	// Cuneiform
	0x12000, 0x12100, 0x12200,
	// Egyptian Hieroglyphs
	0x13000, 0x13100, 0x13200, 0x13300,
	// Anatolian Hieroglyphs
	0x14400, 0x14500,
	// Bamum Supplement
	0x16800, 0x16900,
	// CJK Unified Ideographs Extension B
	0x20000, 0x20100, 0x20200, 0x20300, 0x20400, 0x20500, 0x20600, 0x20700,
	0x20800, 0x20900, 0x20a00, 0x20b00, 0x20c00, 0x20d00, 0x20e00, 0x20f00,
	0x21000, 0x21100, 0x21200, 0x21300, 0x21400, 0x21500, 0x21600, 0x21700,
	0x21800, 0x21900, 0x21a00, 0x21b00, 0x21c00, 0x21d00, 0x21e00, 0x21f00,
	0x22000, 0x22100, 0x22200, 0x22300, 0x22400, 0x22500, 0x22600, 0x22700,
	0x22800, 0x22900, 0x22a00, 0x22b00, 0x22c00, 0x22d00, 0x22e00, 0x22f00,
	0x23000, 0x23100, 0x23200, 0x23300, 0x23400, 0x23500, 0x23600, 0x23700,
	0x23800, 0x23900, 0x23a00, 0x23b00, 0x23c00, 0x23d00, 0x23e00, 0x23f00,
	0x24000, 0x24100, 0x24200, 0x24300, 0x24400, 0x24500, 0x24600, 0x24700,
	0x24800, 0x24900, 0x24a00, 0x24b00, 0x24c00, 0x24d00, 0x24e00, 0x24f00,
	0x25000, 0x25100, 0x25200, 0x25300, 0x25400, 0x25500, 0x25600, 0x25700,
	0x25800, 0x25900, 0x25a00, 0x25b00, 0x25c00, 0x25d00, 0x25e00, 0x25f00,
	0x26000, 0x26100, 0x26200, 0x26300, 0x26400, 0x26500, 0x26600, 0x26700,
	0x26800, 0x26900, 0x26a00, 0x26b00, 0x26c00, 0x26d00, 0x26e00, 0x26f00,
	0x27000, 0x27100, 0x27200, 0x27300, 0x27400, 0x27500, 0x27600, 0x27700,
	0x27800, 0x27900, 0x27a00, 0x27b00, 0x27c00, 0x27d00, 0x27e00, 0x27f00,
	0x28000, 0x28100, 0x28200, 0x28300, 0x28400, 0x28500,
}

// Start returns the block start for the second byte of a pair.
func Start(b byte) uint32 {
	return starts[b]
}

// Starts returns a copy of the whole table, indexed by byte value.
func Starts() [Count]uint32 {
	return starts
}

// Split separates a code point into its in-block offset and candidate block start.
// The candidate is not checked against the table.
func Split(codePoint uint32) (offset byte, start uint32) {
	offset = byte(codePoint & OffsetMask)

	return offset, codePoint &^ OffsetMask
}
