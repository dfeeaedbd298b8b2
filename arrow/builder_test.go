package arrow

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInt32BuilderAppend(t *testing.T) {
	b := NewInt32Builder()
	b.Reserve(4)
	b.Append(10)
	b.AppendNull()
	b.Append(30)
	require.Equal(t, 3, b.Len())

	arr := b.NewArray().(*Int32Array)
	require.Equal(t, 3, arr.Len())
	require.Equal(t, 1, arr.NullN())
	require.True(t, arr.IsNull(1))
	require.Equal(t, int32(10), arr.Value(0))
	require.Equal(t, int32(30), arr.Value(2))

	// builder is reset after NewArray
	require.Zero(t, b.Len())
	next := b.NewArray()
	require.Zero(t, next.Len())
	require.Nil(t, next.Data().Validity())
}

func TestBuilderNoNullsSkipsValidity(t *testing.T) {
	b := NewFloat64Builder()
	for i := 0; i < 100; i++ {
		b.Append(float64(i) / 2)
	}

	arr := b.NewArray().(*Float64Array)
	require.Equal(t, 100, arr.Len())
	require.Zero(t, arr.NullN())
	require.Nil(t, arr.Data().Validity())
	require.Equal(t, 24.5, arr.Value(49))
}

func TestInt64BuilderAllNulls(t *testing.T) {
	b := NewInt64Builder()
	b.AppendNull()
	b.AppendNull()

	arr := b.NewArray().(*Int64Array)
	require.Equal(t, 2, arr.NullN())
	require.True(t, arr.IsNull(0))
	require.True(t, arr.IsNull(1))
}

func TestFloat32BuilderValidityPacking(t *testing.T) {
	b := NewFloat32Builder()
	for i := 0; i < 70; i++ {
		if i%7 == 0 {
			b.AppendNull()
		} else {
			b.Append(float32(i))
		}
	}

	arr := b.NewArray().(*Float32Array)
	require.Equal(t, 10, arr.NullN())
	for i := 0; i < 70; i++ {
		require.Equal(t, i%7 == 0, arr.IsNull(i), "index %d", i)
		if i%7 != 0 {
			require.Equal(t, float32(i), arr.Value(i), "index %d", i)
		}
	}
}
