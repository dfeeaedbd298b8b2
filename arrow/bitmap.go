package arrow

import (
	"fmt"
	"math/bits"
)

// Bitmap is an immutable, densely packed sequence of booleans over a
// shared Buffer, used as the validity and selection mask of columnar
// arrays. Bit i lives in byte i/8 at position i%8, LSB first; the
// cross-word kernels additionally view the buffer as little-endian
// 64-bit words. A bitmap never owns bytes itself, it only holds a
// retained buffer handle, so copying and offset-zero slicing are O(1).
type Bitmap struct {
	buf     *Buffer
	numBits int
}

// BitRange is a maximal run of set bits, half-open: bits in
// [Start, End) are set, and the bits on either side (when they exist
// within the scanned span) are not.
type BitRange struct {
	Start int
	End   int
}

// NewBitmap wraps an existing buffer holding numBits packed bits.
// Panics if the buffer cannot hold that many bits; that is a caller
// bug, not a runtime condition.
func NewBitmap(buf *Buffer, numBits int) *Bitmap {
	if numBits < 0 {
		panic(fmt.Sprintf("arrow: negative bit count %d", numBits))
	}
	if numBytes := (numBits + 7) / 8; numBytes > buf.Len() {
		panic(fmt.Sprintf("arrow: buffer of %d bytes cannot hold %d bits", buf.Len(), numBits))
	}
	return &Bitmap{buf: buf, numBits: numBits}
}

// NewBitmapFromBools packs bools into a fresh buffer, one bit per
// element.
func NewBitmapFromBools(bools []bool) *Bitmap {
	numBits := len(bools)
	buf := NewBuffer((numBits + 7) / 8)
	packBools(bools, buf.Bytes())
	return &Bitmap{buf: buf, numBits: numBits}
}

// NewBitmapAllSet creates a bitmap of the given length with every bit
// set.
func NewBitmapAllSet(length int) *Bitmap {
	numBytes := (length + 7) / 8
	buf := NewBuffer(numBytes)
	data := buf.Bytes()
	for i := range data {
		data[i] = 0xFF
	}
	if rem := length % 8; rem > 0 {
		data[numBytes-1] = byte(1<<rem - 1)
	}
	return &Bitmap{buf: buf, numBits: length}
}

// Len returns the number of bits.
func (b *Bitmap) Len() int {
	return b.numBits
}

// Get returns the bit at index i. The second return is false when i
// lies outside the bitmap; asking for an out-of-range bit is a
// well-defined query, not an error.
func (b *Bitmap) Get(i int) (bool, bool) {
	if i < 0 || i >= b.numBits {
		return false, false
	}
	return b.GetUnchecked(i), true
}

// GetUnchecked returns the bit at index i without checking it against
// Len. Hot-path variant of Get; the caller must guarantee
// 0 <= i < Len().
func (b *Bitmap) GetUnchecked(i int) bool {
	return b.buf.data[i/8]&(1<<(i%8)) != 0
}

// Slice returns the window of length bits starting at start. Panics
// if the window does not fit in the bitmap.
//
// A slice at start 0 shares the receiver's buffer and is O(1); this is
// the only zero-copy case. Any other start, byte aligned or not,
// allocates a tightly sized buffer and realigns the source bit stream
// into it starting at word start/64 with shift start%64.
func (b *Bitmap) Slice(start, length int) *Bitmap {
	if start < 0 || length < 0 || start+length > b.numBits {
		panic(fmt.Sprintf("arrow: slice [%d, %d) out of bitmap of %d bits", start, start+length, b.numBits))
	}
	if start == 0 {
		return &Bitmap{buf: b.buf.Retain(), numBits: length}
	}
	buf := NewBuffer((length + 7) / 8)
	startWord := start / 64
	shift := uint(start % 64)
	// One extra word on both sides feeds the high bits of the final
	// merged word; the buffers' padded capacity keeps it addressable.
	n := (length+63)/64 + 1
	reAlign(b.buf.Words()[startWord:startWord+n], buf.Words()[:n], shift)
	return &Bitmap{buf: buf, numBits: length}
}

// SetRanges returns the maximal runs of set bits as ascending,
// pairwise disjoint, non-adjacent half-open ranges. The scan covers
// the buffer's byte length rounded up to the next 64-bit boundary, not
// the logical bit count; callers clip to Len when the distinction
// matters. Empty for a bitmap of zero bits.
func (b *Bitmap) SetRanges() []BitRange {
	if b.numBits == 0 {
		return nil
	}
	numWords := (b.buf.Len() + 7) / 8
	return scanSetRanges(b.buf.Words()[:numWords])
}

// CountSet returns the number of set bits within Len.
func (b *Bitmap) CountSet() int {
	count := 0
	fullBytes := b.numBits / 8
	for _, v := range b.buf.data[:fullBytes] {
		count += bits.OnesCount8(v)
	}
	if rem := b.numBits % 8; rem > 0 {
		mask := byte(1<<rem - 1)
		count += bits.OnesCount8(b.buf.data[fullBytes] & mask)
	}
	return count
}

// Buf returns the shared buffer handle, retained for the caller.
func (b *Bitmap) Buf() *Buffer {
	return b.buf.Retain()
}

// Release drops the bitmap's reference to its buffer.
func (b *Bitmap) Release() {
	b.buf.Release()
}
