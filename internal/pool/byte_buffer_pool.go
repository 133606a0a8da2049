package pool

import (
	"io"
	"sync"
)

const (
	TextBufferDefaultSize    = 1024 * 4    // 4KiB
	TextBufferMaxThreshold   = 1024 * 64   // 64KiB
	FrameBufferDefaultSize   = 1024 * 16   // 16KiB
	FrameBufferMaxThreshold  = 1024 * 1024 // 1MiB
	StreamBufferDefaultSize  = 1024 * 4    // 4KiB
	StreamBufferMaxThreshold = 1024 * 32   // 32KiB

	// growth switches from fixed steps to 25% of capacity above this size
	largeBufferThreshold = 1024 * 64
)

// ByteBuffer is a reusable append-only byte slice.
type ByteBuffer struct {
	// B is the underlying byte slice.
	B []byte
}

// NewByteBuffer creates a new ByteBuffer with the specified default capacity.
func NewByteBuffer(defaultSize int) *ByteBuffer {
	return &ByteBuffer{
		B: make([]byte, 0, defaultSize),
	}
}

// Reset empties the buffer and keeps its memory.
func (bb *ByteBuffer) Reset() {
	bb.B = bb.B[:0]
}

func (bb *ByteBuffer) Len() int {
	return len(bb.B)
}

func (bb *ByteBuffer) Cap() int {
	return cap(bb.B)
}

// Grow ensures the buffer can take requiredBytes more bytes without reallocating.
//
// Small buffers grow by TextBufferDefaultSize; buffers above 64KiB grow by a
// quarter of their capacity. Growth is never smaller than requiredBytes.
func (bb *ByteBuffer) Grow(requiredBytes int) {
	if bb.Cap()-bb.Len() >= requiredBytes {
		return
	}

	growBy := TextBufferDefaultSize
	if bb.Cap() > largeBufferThreshold {
		growBy = bb.Cap() / 4
	}

	if growBy < requiredBytes {
		growBy = requiredBytes
	}

	newBuf := make([]byte, len(bb.B), len(bb.B)+growBy)
	copy(newBuf, bb.B)
	bb.B = newBuf
}

// WriteTo writes the buffered bytes to w without consuming them.
func (bb *ByteBuffer) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(bb.B)
	return int64(n), err
}

// ByteBufferPool is a sync.Pool of ByteBuffers.
//
// Buffers whose capacity exceeds maxThreshold are dropped on Put instead of
// being retained.
type ByteBufferPool struct {
	pool         sync.Pool
	maxThreshold int
}

// NewByteBufferPool creates a pool handing out buffers of defaultSize capacity.
// A maxThreshold of zero keeps every buffer.
func NewByteBufferPool(defaultSize int, maxThreshold int) *ByteBufferPool {
	return &ByteBufferPool{
		pool: sync.Pool{
			New: func() any {
				return NewByteBuffer(defaultSize)
			},
		},
		maxThreshold: maxThreshold,
	}
}

// Get retrieves an empty ByteBuffer from the pool.
func (bbp *ByteBufferPool) Get() *ByteBuffer {
	bb, _ := bbp.pool.Get().(*ByteBuffer)
	return bb
}

// Put returns bb to the pool. bb must not be used afterwards.
func (bbp *ByteBufferPool) Put(bb *ByteBuffer) {
	if bb == nil {
		return
	}

	if bbp.maxThreshold > 0 && bb.Cap() > bbp.maxThreshold {
		return
	}

	bb.Reset()
	bbp.pool.Put(bb)
}

var (
	textDefaultPool   = NewByteBufferPool(TextBufferDefaultSize, TextBufferMaxThreshold)
	frameDefaultPool  = NewByteBufferPool(FrameBufferDefaultSize, FrameBufferMaxThreshold)
	streamDefaultPool = NewByteBufferPool(StreamBufferDefaultSize, StreamBufferMaxThreshold)
)

// GetTextBuffer retrieves a buffer for building encoded text.
func GetTextBuffer() *ByteBuffer {
	return textDefaultPool.Get()
}

// PutTextBuffer returns a buffer obtained from GetTextBuffer.
func PutTextBuffer(bb *ByteBuffer) {
	textDefaultPool.Put(bb)
}

// GetFrameBuffer retrieves a buffer for assembling frame bytes.
func GetFrameBuffer() *ByteBuffer {
	return frameDefaultPool.Get()
}

// PutFrameBuffer returns a buffer obtained from GetFrameBuffer.
func PutFrameBuffer(bb *ByteBuffer) {
	frameDefaultPool.Put(bb)
}

// GetStreamBuffer retrieves a buffer for stream encoders and decoders.
func GetStreamBuffer() *ByteBuffer {
	return streamDefaultPool.Get()
}

// PutStreamBuffer returns a buffer obtained from GetStreamBuffer.
func PutStreamBuffer(bb *ByteBuffer) {
	streamDefaultPool.Put(bb)
}
