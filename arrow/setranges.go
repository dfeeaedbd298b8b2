package arrow

import "math/bits"

const allOnes = ^uint64(0)

// scanSetRanges walks words and emits the maximal runs of set bits
// across the whole span, ascending and non-adjacent. It never visits
// individual bits: run boundaries are located with trailing-zero
// counts and whole-word comparisons, and a run that crosses a word
// boundary stays open until a zero bit closes it, so an all-ones word
// inside a long run costs a single compare.
func scanSetRanges(words []uint64) []BitRange {
	var ranges []BitRange
	open := -1 // start of the run left open at the last word boundary
	for k, w := range words {
		base := k * 64
		p := 0
		if open >= 0 {
			if w == allOnes {
				continue
			}
			p = bits.TrailingZeros64(^w)
			ranges = append(ranges, BitRange{Start: open, End: base + p})
			open = -1
		}
		for p < 64 {
			rem := w >> uint(p)
			if rem == 0 {
				break
			}
			s := p + bits.TrailingZeros64(rem)
			inv := ^(w >> uint(s))
			if inv == 0 {
				// all ones from s through the end of the word
				open = base + s
				break
			}
			e := s + bits.TrailingZeros64(inv)
			if e >= 64 {
				open = base + s
				break
			}
			ranges = append(ranges, BitRange{Start: base + s, End: base + e})
			p = e + 1
		}
	}
	if open >= 0 {
		ranges = append(ranges, BitRange{Start: open, End: len(words) * 64})
	}
	return ranges
}
