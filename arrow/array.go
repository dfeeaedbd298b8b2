package arrow

import "fmt"

// Array is the interface for all arrays
type Array interface {
	// DataType returns the data type of this array
	DataType() DataType

	// Len returns the number of elements
	Len() int

	// NullN returns the number of null elements
	NullN() int

	// IsNull returns true if element i is null
	IsNull(i int) bool

	// IsValid returns true if element i is not null
	IsValid(i int) bool

	// Data returns the underlying array data
	Data() *ArrayData

	// Release drops the array's buffer references
	Release()
}

// ArrayData holds the memory buffers for an array. The validity
// bitmap is immutable, one set bit per non-null element; a nil
// validity means every element is valid.
type ArrayData struct {
	dtype    DataType
	length   int
	nulls    int
	validity *Bitmap
	buffers  []*Buffer
}

// NewArrayData creates a new ArrayData. Panics if the validity bitmap
// does not cover exactly length elements.
func NewArrayData(dtype DataType, length int, buffers []*Buffer, validity *Bitmap) *ArrayData {
	nulls := 0
	if validity != nil {
		if validity.Len() != length {
			panic(fmt.Sprintf("arrow: validity bitmap of %d bits for array of %d elements", validity.Len(), length))
		}
		nulls = length - validity.CountSet()
	}

	return &ArrayData{
		dtype:    dtype,
		length:   length,
		nulls:    nulls,
		validity: validity,
		buffers:  buffers,
	}
}

// DataType returns the data type
func (d *ArrayData) DataType() DataType { return d.dtype }

// Len returns the number of elements
func (d *ArrayData) Len() int { return d.length }

// NullN returns the number of nulls
func (d *ArrayData) NullN() int { return d.nulls }

// Buffers returns the data buffers
func (d *ArrayData) Buffers() []*Buffer { return d.buffers }

// Validity returns the validity bitmap, nil when nothing is null
func (d *ArrayData) Validity() *Bitmap { return d.validity }

func (d *ArrayData) isNull(i int) bool {
	if i < 0 || i >= d.length {
		panic(fmt.Sprintf("arrow: array index %d out of range %d", i, d.length))
	}
	if d.validity == nil {
		return false
	}
	return !d.validity.GetUnchecked(i)
}

func (d *ArrayData) release() {
	for _, buf := range d.buffers {
		buf.Release()
	}
	if d.validity != nil {
		d.validity.Release()
	}
	d.buffers = nil
	d.validity = nil
}

// --- Int32Array ---

type Int32Array struct {
	data *ArrayData
}

// NewInt32Array creates a new int32 array
func NewInt32Array(data []int32, validity *Bitmap) *Int32Array {
	buf := NewInt32Buffer(data)
	arrayData := NewArrayData(PrimInt32(), len(data), []*Buffer{buf}, validity)
	return &Int32Array{data: arrayData}
}

func (a *Int32Array) DataType() DataType { return a.data.dtype }
func (a *Int32Array) Len() int           { return a.data.length }
func (a *Int32Array) NullN() int         { return a.data.nulls }
func (a *Int32Array) Data() *ArrayData   { return a.data }
func (a *Int32Array) Release()           { a.data.release() }
func (a *Int32Array) IsNull(i int) bool  { return a.data.isNull(i) }
func (a *Int32Array) IsValid(i int) bool { return !a.data.isNull(i) }

// Value returns the value at index i
func (a *Int32Array) Value(i int) int32 {
	if i < 0 || i >= a.Len() {
		panic(fmt.Sprintf("arrow: array index %d out of range %d", i, a.Len()))
	}
	return a.data.buffers[0].Int32()[i]
}

// Values returns all values as a slice
func (a *Int32Array) Values() []int32 {
	return a.data.buffers[0].Int32()
}

// --- Int64Array ---

type Int64Array struct {
	data *ArrayData
}

// NewInt64Array creates a new int64 array
func NewInt64Array(data []int64, validity *Bitmap) *Int64Array {
	buf := NewInt64Buffer(data)
	arrayData := NewArrayData(PrimInt64(), len(data), []*Buffer{buf}, validity)
	return &Int64Array{data: arrayData}
}

func (a *Int64Array) DataType() DataType { return a.data.dtype }
func (a *Int64Array) Len() int           { return a.data.length }
func (a *Int64Array) NullN() int         { return a.data.nulls }
func (a *Int64Array) Data() *ArrayData   { return a.data }
func (a *Int64Array) Release()           { a.data.release() }
func (a *Int64Array) IsNull(i int) bool  { return a.data.isNull(i) }
func (a *Int64Array) IsValid(i int) bool { return !a.data.isNull(i) }

// Value returns the value at index i
func (a *Int64Array) Value(i int) int64 {
	if i < 0 || i >= a.Len() {
		panic(fmt.Sprintf("arrow: array index %d out of range %d", i, a.Len()))
	}
	return a.data.buffers[0].Int64()[i]
}

// Values returns all values as a slice
func (a *Int64Array) Values() []int64 {
	return a.data.buffers[0].Int64()
}

// --- Float32Array ---

type Float32Array struct {
	data *ArrayData
}

// NewFloat32Array creates a new float32 array
func NewFloat32Array(data []float32, validity *Bitmap) *Float32Array {
	buf := NewFloat32Buffer(data)
	arrayData := NewArrayData(PrimFloat32(), len(data), []*Buffer{buf}, validity)
	return &Float32Array{data: arrayData}
}

func (a *Float32Array) DataType() DataType { return a.data.dtype }
func (a *Float32Array) Len() int           { return a.data.length }
func (a *Float32Array) NullN() int         { return a.data.nulls }
func (a *Float32Array) Data() *ArrayData   { return a.data }
func (a *Float32Array) Release()           { a.data.release() }
func (a *Float32Array) IsNull(i int) bool  { return a.data.isNull(i) }
func (a *Float32Array) IsValid(i int) bool { return !a.data.isNull(i) }

// Value returns the value at index i
func (a *Float32Array) Value(i int) float32 {
	if i < 0 || i >= a.Len() {
		panic(fmt.Sprintf("arrow: array index %d out of range %d", i, a.Len()))
	}
	return a.data.buffers[0].Float32()[i]
}

// Values returns all values as a slice
func (a *Float32Array) Values() []float32 {
	return a.data.buffers[0].Float32()
}

// --- Float64Array ---

type Float64Array struct {
	data *ArrayData
}

// NewFloat64Array creates a new float64 array
func NewFloat64Array(data []float64, validity *Bitmap) *Float64Array {
	buf := NewFloat64Buffer(data)
	arrayData := NewArrayData(PrimFloat64(), len(data), []*Buffer{buf}, validity)
	return &Float64Array{data: arrayData}
}

func (a *Float64Array) DataType() DataType { return a.data.dtype }
func (a *Float64Array) Len() int           { return a.data.length }
func (a *Float64Array) NullN() int         { return a.data.nulls }
func (a *Float64Array) Data() *ArrayData   { return a.data }
func (a *Float64Array) Release()           { a.data.release() }
func (a *Float64Array) IsNull(i int) bool  { return a.data.isNull(i) }
func (a *Float64Array) IsValid(i int) bool { return !a.data.isNull(i) }

// Value returns the value at index i
func (a *Float64Array) Value(i int) float64 {
	if i < 0 || i >= a.Len() {
		panic(fmt.Sprintf("arrow: array index %d out of range %d", i, a.Len()))
	}
	return a.data.buffers[0].Float64()[i]
}

// Values returns all values as a slice
func (a *Float64Array) Values() []float64 {
	return a.data.buffers[0].Float64()
}
