package arrow

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
)

func TestNewBufferAlignmentAndPadding(t *testing.T) {
	for _, size := range []int{0, 1, 7, 8, 9, 55, 56, 63, 64, 65, 1000} {
		buf := NewBuffer(size)
		require.Equal(t, size, buf.Len())
		require.Equal(t, size, len(buf.Bytes()))

		words := buf.Words()
		// the allocation is a 64-byte multiple with at least one full
		// word past the logical length, and starts zeroed
		require.GreaterOrEqual(t, len(words)*8, size+8, "size %d", size)
		require.Zero(t, len(words)*8%64, "size %d", size)
		for _, w := range words {
			require.Zero(t, w, "size %d", size)
		}

		if size > 0 {
			require.Zero(t, uintptr(unsafe.Pointer(&buf.Bytes()[0]))%8, "size %d", size)
		}
	}

	require.Panics(t, func() { NewBuffer(-1) })
}

func TestBufferRefCount(t *testing.T) {
	buf := NewBuffer(16)
	require.EqualValues(t, 1, buf.Refs())

	same := buf.Retain()
	require.Same(t, buf, same)
	require.EqualValues(t, 2, buf.Refs())

	buf.Release()
	require.EqualValues(t, 1, buf.Refs())
	require.NotNil(t, buf.Bytes())

	buf.Release()
	require.Nil(t, buf.Bytes())
	require.Panics(t, func() { buf.Release() })
}

func TestBufferWordViewLittleEndian(t *testing.T) {
	buf := NewBuffer(8)
	buf.Bytes()[0] = 0x8D
	require.Equal(t, uint64(0x8D), buf.Words()[0])

	buf.Bytes()[7] = 0x01
	require.Equal(t, uint64(1)<<56|0x8D, buf.Words()[0])
}

func TestBufferTypedViews(t *testing.T) {
	i32 := []int32{1, -2, 3, 4, 5}
	b32 := NewInt32Buffer(i32)
	require.Equal(t, 20, b32.Len())
	require.Equal(t, i32, b32.Int32())

	i64 := []int64{100, -200, 300}
	require.Equal(t, i64, NewInt64Buffer(i64).Int64())

	f32 := []float32{1.5, -2.25}
	require.Equal(t, f32, NewFloat32Buffer(f32).Float32())

	f64 := []float64{3.14159, -1}
	require.Equal(t, f64, NewFloat64Buffer(f64).Float64())
}

func TestBufferViewAlignmentChecks(t *testing.T) {
	require.Panics(t, func() { NewBuffer(3).Int32() })
	require.Panics(t, func() { NewBuffer(12).Int64() })
	require.Nil(t, NewBuffer(0).Int64())
	require.Nil(t, NewBuffer(0).Float32())
}

func TestAlignTo64(t *testing.T) {
	require.Equal(t, 0, AlignTo64(0))
	require.Equal(t, 64, AlignTo64(1))
	require.Equal(t, 64, AlignTo64(64))
	require.Equal(t, 128, AlignTo64(65))
}
