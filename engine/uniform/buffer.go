package uniform

import (
	"encoding/binary"
	"math"
)

// Buffer is a destination byte region with an append-only write cursor.
// Floats are appended little-endian, matching the byte order the GPU upload
// collaborator expects. A Buffer is exclusively owned by the single frame
// that writes it and is never shared across frames or threads.
type Buffer struct {
	data []byte
}

// NewBuffer creates a destination buffer pre-sized for the given byte
// capacity. The buffer grows if writes exceed the capacity, but a correctly
// sized buffer (via SizeOf) never reallocates.
//
// Parameters:
//   - capacity: the expected total byte size of the writes
//
// Returns:
//   - *Buffer: an empty buffer with the given capacity reserved
func NewBuffer(capacity int) *Buffer {
	return &Buffer{data: make([]byte, 0, capacity)}
}

// PutFloat32 appends one float32 to the buffer in little-endian byte order.
//
// Parameters:
//   - v: the float to append
func (b *Buffer) PutFloat32(v float32) {
	b.data = binary.LittleEndian.AppendUint32(b.data, math.Float32bits(v))
}

// PutZeroFloats appends n zero floats to the buffer.
//
// Parameters:
//   - n: the number of zero floats to append
func (b *Buffer) PutZeroFloats(n int) {
	for range n {
		b.PutFloat32(0)
	}
}

// PadTo16 appends zero floats until the write cursor reaches the next
// 16-byte boundary. A cursor already on a boundary is left unchanged.
func (b *Buffer) PadTo16() {
	for len(b.data)%16 != 0 {
		b.PutFloat32(0)
	}
}

// Len returns the current write cursor position in bytes.
//
// Returns:
//   - int: the number of bytes written so far
func (b *Buffer) Len() int {
	return len(b.data)
}

// Aligned16 reports whether the write cursor sits on a 16-byte boundary.
// The writer asserts this before every vec4-shaped entry as a regression
// guard; the descriptor's build-time checks make a failure unreachable from
// caller input.
//
// Returns:
//   - bool: true if the cursor is 16-byte aligned
func (b *Buffer) Aligned16() bool {
	return len(b.data)%16 == 0
}

// Bytes returns the written bytes. The returned slice aliases the buffer's
// storage; callers hand it to the GPU upload and discard both within the
// frame.
//
// Returns:
//   - []byte: the serialized bytes
func (b *Buffer) Bytes() []byte {
	return b.data
}
