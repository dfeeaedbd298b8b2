package arrow

import (
	"encoding/binary"
	"fmt"
	"math"
	"sync/atomic"
	"unsafe"
)

// Buffer is a contiguous, word-aligned memory region shared between
// bitmaps and arrays. A buffer is written exactly once, by whatever
// constructs it, and is frozen afterwards; any number of holders may
// then read it concurrently without synchronization. Handles are
// reference counted: Retain/Release move the count, never the bytes.
type Buffer struct {
	refs  atomic.Int64
	data  []byte   // logical bytes, len == requested size
	words []uint64 // backing allocation, padded past len(data)
}

// NewBuffer allocates a zero-filled buffer of size bytes. The backing
// allocation is a uint64 slice padded to a 64-byte multiple with at
// least one full word past Len, so word-granularity kernels may read
// or write one trailing word beyond the logical length without
// leaving the allocation. Byte 0 is therefore always 8-byte aligned.
func NewBuffer(size int) *Buffer {
	if size < 0 {
		panic(fmt.Sprintf("arrow: negative buffer size %d", size))
	}
	words := make([]uint64, AlignTo64(size+8)/8)
	b := &Buffer{words: words}
	if size > 0 {
		b.data = unsafe.Slice((*byte)(unsafe.Pointer(&words[0])), size)
	}
	b.refs.Store(1)
	return b
}

// Bytes returns the logical bytes. Writing through the returned slice
// is allowed only during the single build step that follows
// allocation.
func (b *Buffer) Bytes() []byte {
	return b.data
}

// Len returns the buffer length in bytes.
func (b *Buffer) Len() int {
	return len(b.data)
}

// Words returns the little-endian 64-bit word view over the whole
// padded allocation, so it extends past Len. Bit i of the buffer is
// bit i%64 of word i/64. Like the typed views below, this reinterprets
// native memory and assumes a little-endian platform.
func (b *Buffer) Words() []uint64 {
	return b.words
}

// Retain increments the reference count and returns the same handle.
func (b *Buffer) Retain() *Buffer {
	b.refs.Add(1)
	return b
}

// Release decrements the reference count, dropping the memory when it
// reaches zero. Releasing more times than retained is a caller bug.
func (b *Buffer) Release() {
	switch n := b.refs.Add(-1); {
	case n < 0:
		panic("arrow: buffer released below zero")
	case n == 0:
		b.data = nil
		b.words = nil
	}
}

// Refs returns the current reference count.
func (b *Buffer) Refs() int64 {
	return b.refs.Load()
}

// --- Typed Access (zero-copy views) ---

// Int32 returns an int32 view of the buffer
func (b *Buffer) Int32() []int32 {
	if len(b.data) == 0 {
		return nil
	}
	if len(b.data)%4 != 0 {
		panic(fmt.Sprintf("arrow: buffer size %d not aligned to int32", len(b.data)))
	}
	return unsafe.Slice((*int32)(unsafe.Pointer(&b.data[0])), len(b.data)/4)
}

// Int64 returns an int64 view of the buffer
func (b *Buffer) Int64() []int64 {
	if len(b.data) == 0 {
		return nil
	}
	if len(b.data)%8 != 0 {
		panic(fmt.Sprintf("arrow: buffer size %d not aligned to int64", len(b.data)))
	}
	return unsafe.Slice((*int64)(unsafe.Pointer(&b.data[0])), len(b.data)/8)
}

// Float32 returns a float32 view of the buffer
func (b *Buffer) Float32() []float32 {
	if len(b.data) == 0 {
		return nil
	}
	if len(b.data)%4 != 0 {
		panic(fmt.Sprintf("arrow: buffer size %d not aligned to float32", len(b.data)))
	}
	return unsafe.Slice((*float32)(unsafe.Pointer(&b.data[0])), len(b.data)/4)
}

// Float64 returns a float64 view of the buffer
func (b *Buffer) Float64() []float64 {
	if len(b.data) == 0 {
		return nil
	}
	if len(b.data)%8 != 0 {
		panic(fmt.Sprintf("arrow: buffer size %d not aligned to float64", len(b.data)))
	}
	return unsafe.Slice((*float64)(unsafe.Pointer(&b.data[0])), len(b.data)/8)
}

// --- Factory Functions ---

// NewInt32Buffer creates a buffer from an int32 slice
func NewInt32Buffer(data []int32) *Buffer {
	b := NewBuffer(len(data) * 4)
	buf := b.Bytes()
	for i, v := range data {
		binary.LittleEndian.PutUint32(buf[i*4:], uint32(v))
	}
	return b
}

// NewInt64Buffer creates a buffer from an int64 slice
func NewInt64Buffer(data []int64) *Buffer {
	b := NewBuffer(len(data) * 8)
	buf := b.Bytes()
	for i, v := range data {
		binary.LittleEndian.PutUint64(buf[i*8:], uint64(v))
	}
	return b
}

// NewFloat32Buffer creates a buffer from a float32 slice
func NewFloat32Buffer(data []float32) *Buffer {
	b := NewBuffer(len(data) * 4)
	buf := b.Bytes()
	for i, v := range data {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(v))
	}
	return b
}

// NewFloat64Buffer creates a buffer from a float64 slice
func NewFloat64Buffer(data []float64) *Buffer {
	b := NewBuffer(len(data) * 8)
	buf := b.Bytes()
	for i, v := range data {
		binary.LittleEndian.PutUint64(buf[i*8:], math.Float64bits(v))
	}
	return b
}

// AlignTo64 returns size aligned to a 64-byte boundary
func AlignTo64(size int) int {
	return (size + 63) &^ 63
}
