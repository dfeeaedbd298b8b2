// Package compute holds kernels operating on arrays and bitmaps.
package compute

import (
	"fmt"

	"github.com/bytechord/arrgo/arrow"
	aerrors "github.com/bytechord/arrgo/errors"
)

// Filter returns a new array holding the rows of arr whose bit in
// mask is set. Selection is materialized range-at-a-time from the
// mask's set ranges, so a long selected stretch copies as one block
// instead of row by row. The mask must cover the array; a shorter mask
// is a caller bug and panics. An array type without a kernel yields
// ErrUnsupportedType.
func Filter(arr arrow.Array, mask *arrow.Bitmap) (arrow.Array, error) {
	if mask.Len() < arr.Len() {
		panic(fmt.Sprintf("compute: mask of %d bits over array of %d rows", mask.Len(), arr.Len()))
	}

	// The scan runs over the mask's padded span; clip to the rows
	// that actually exist.
	ranges := clipRanges(mask.SetRanges(), arr.Len())

	switch a := arr.(type) {
	case *arrow.Int32Array:
		out, validity := filterValues(a.Values(), a.Data().Validity(), ranges)
		return arrow.NewInt32Array(out, validity), nil
	case *arrow.Int64Array:
		out, validity := filterValues(a.Values(), a.Data().Validity(), ranges)
		return arrow.NewInt64Array(out, validity), nil
	case *arrow.Float32Array:
		out, validity := filterValues(a.Values(), a.Data().Validity(), ranges)
		return arrow.NewFloat32Array(out, validity), nil
	case *arrow.Float64Array:
		out, validity := filterValues(a.Values(), a.Data().Validity(), ranges)
		return arrow.NewFloat64Array(out, validity), nil
	default:
		return nil, aerrors.New(aerrors.ErrUnsupportedType).
			Op("filter").
			Context("got_type", fmt.Sprintf("%T", arr)).
			Build()
	}
}

// clipRanges truncates ranges to [0, limit), dropping everything that
// falls in the mask's padding.
func clipRanges(ranges []arrow.BitRange, limit int) []arrow.BitRange {
	out := make([]arrow.BitRange, 0, len(ranges))
	for _, r := range ranges {
		if r.Start >= limit {
			break
		}
		if r.End > limit {
			r.End = limit
		}
		out = append(out, r)
	}
	return out
}

func filterValues[T int32 | int64 | float32 | float64](src []T, validity *arrow.Bitmap, ranges []arrow.BitRange) ([]T, *arrow.Bitmap) {
	total := 0
	for _, r := range ranges {
		total += r.End - r.Start
	}

	out := make([]T, 0, total)
	for _, r := range ranges {
		out = append(out, src[r.Start:r.End]...)
	}

	if validity == nil {
		return out, nil
	}

	valid := make([]bool, 0, total)
	for _, r := range ranges {
		for i := r.Start; i < r.End; i++ {
			valid = append(valid, validity.GetUnchecked(i))
		}
	}
	return out, arrow.NewBitmapFromBools(valid)
}
