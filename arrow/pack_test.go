package arrow

import (
	"math/bits"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPackBoolsConcreteByte(t *testing.T) {
	dst := make([]byte, 1)
	packBools([]bool{true, false, true, true, false, false, false, true}, dst)
	require.Equal(t, byte(0b1000_1101), dst[0])
}

func TestPackBoolsBulkAndTail(t *testing.T) {
	bools := make([]bool, 19)
	for i := range bools {
		bools[i] = i%3 == 0
	}

	dst := make([]byte, 3)
	packBools(bools, dst)

	for i, want := range bools {
		got := dst[i/8]&(1<<(i%8)) != 0
		require.Equal(t, want, got, "index %d", i)
	}
}

func TestPackBoolsTailHighBitsZero(t *testing.T) {
	for n := 1; n <= 16; n++ {
		bools := make([]bool, n)
		for i := range bools {
			bools[i] = true
		}

		dst := make([]byte, (n+7)/8)
		packBools(bools, dst)

		total := 0
		for _, b := range dst {
			total += bits.OnesCount8(b)
		}
		require.Equal(t, n, total, "length %d", n)
	}
}

func TestPackBoolsEmpty(t *testing.T) {
	require.NotPanics(t, func() { packBools(nil, nil) })
}
