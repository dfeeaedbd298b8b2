package arrow

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func naiveScan(words []uint64) []BitRange {
	var out []BitRange
	start := -1
	for i := 0; i < len(words)*64; i++ {
		set := words[i/64]>>(uint(i)%64)&1 == 1
		if set && start < 0 {
			start = i
		}
		if !set && start >= 0 {
			out = append(out, BitRange{Start: start, End: i})
			start = -1
		}
	}
	if start >= 0 {
		out = append(out, BitRange{Start: start, End: len(words) * 64})
	}
	return out
}

func TestScanSetRangesWithinWord(t *testing.T) {
	require.Empty(t, scanSetRanges([]uint64{0, 0}))
	require.Equal(t, []BitRange{{0, 1}, {2, 3}}, scanSetRanges([]uint64{0b101, 0}))
	require.Equal(t, []BitRange{{0, 1}, {2, 4}, {7, 8}}, scanSetRanges([]uint64{0b1000_1101}))
	require.Equal(t, []BitRange{{63, 64}}, scanSetRanges([]uint64{1 << 63, 0}))
}

func TestScanSetRangesSpansWords(t *testing.T) {
	require.Equal(t, []BitRange{{0, 65}}, scanSetRanges([]uint64{allOnes, 1}))
	require.Equal(t, []BitRange{{63, 65}}, scanSetRanges([]uint64{1 << 63, 1}))
	require.Equal(t, []BitRange{{63, 129}}, scanSetRanges([]uint64{1 << 63, allOnes, 1}))
	require.Equal(t, []BitRange{{0, 192}}, scanSetRanges([]uint64{allOnes, allOnes, allOnes}))

	// run still open at the end of the span stays maximal
	require.Equal(t, []BitRange{{64, 128}}, scanSetRanges([]uint64{0, allOnes}))
	require.Equal(t, []BitRange{{0, 1}, {62, 128}}, scanSetRanges([]uint64{1 | 1<<62 | 1<<63, allOnes}))
}

func TestScanSetRangesRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(12))
	for trial := 0; trial < 500; trial++ {
		words := make([]uint64, 1+rng.Intn(8))
		for i := range words {
			// bias toward the degenerate words the scanner special-cases
			switch rng.Intn(4) {
			case 0:
				words[i] = 0
			case 1:
				words[i] = allOnes
			default:
				words[i] = rng.Uint64()
			}
		}

		got := scanSetRanges(words)
		require.Equal(t, naiveScan(words), got, "trial %d words %#x", trial, words)

		// ascending, disjoint, non-adjacent
		for i := 1; i < len(got); i++ {
			require.Greater(t, got[i].Start, got[i-1].End, "trial %d", trial)
		}
	}
}
