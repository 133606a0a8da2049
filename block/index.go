package block

import "sync"

// noEntry marks a slot of the reverse index that holds no block.
const noEntry = -1

// lastStart is the highest block start in the table; it bounds the index size.
const lastStart = 0x28500

// reverseIndex is keyed by start/Width.
type reverseIndex [lastStart/Width + 1]int16

// loadIndex builds the reverse index on first use. Concurrent first callers
// wait for the single build and then share the result.
var loadIndex = sync.OnceValue(func() *reverseIndex {
	idx := new(reverseIndex)
	for i := range idx {
		idx[i] = noEntry
	}
	for b, start := range starts {
		idx[start/Width] = int16(b) //nolint:gosec
	}

	return idx
})

// Index returns the byte value whose block starts at start.
//
// The second return value is false when start is not one of the table's block
// starts. PaddingStart is not in the table and is reported as not found.
func Index(start uint32) (byte, bool) {
	if start&OffsetMask != 0 {
		return 0, false
	}

	slot := start / Width
	idx := loadIndex()
	if slot >= uint32(len(idx)) {
		return 0, false
	}

	v := idx[slot]
	if v == noEntry {
		return 0, false
	}

	return byte(v), true
}

// IsStart reports whether start begins one of the 256 table blocks.
func IsStart(start uint32) bool {
	_, ok := Index(start)
	return ok
}
