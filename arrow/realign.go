package arrow

// reAlign shifts a packed bit stream that starts shift bits into src
// down to bit 0 of dst, merging each pair of adjacent source words:
//
//	dst[i] = src[i]>>shift | src[i+1]<<(64-shift)
//
// len(dst) words are written and the same count read from src, so the
// caller hands over one more word than the bit count alone implies.
// The last destination word receives only the low half of the final
// source word; bits there beyond the requested length are garbage the
// caller must ignore. shift must be below 64. A zero shift degenerates
// to a straight copy, an empty dst is a no-op.
func reAlign(src, dst []uint64, shift uint) {
	n := len(dst)
	if n == 0 {
		return
	}
	if shift == 0 {
		copy(dst, src[:n])
		return
	}
	right := 64 - shift

	left := src[0]
	for i := 1; i < n; i++ {
		w := src[i]
		dst[i-1] = left>>shift | w<<right
		left = w
	}
	dst[n-1] = left >> shift
}
