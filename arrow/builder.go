package arrow

// Builder is the interface for building arrays incrementally.
// Builders accumulate plain values plus a validity bool per element;
// the validity bitmap itself is only packed, once, when NewArray
// freezes the accumulated state. No bitmap is ever mutated in place.
type Builder interface {
	// Reserve reserves space for n additional elements
	Reserve(n int)

	// AppendNull appends a null value
	AppendNull()

	// Len returns the number of elements appended
	Len() int

	// NewArray builds the array (resets builder)
	NewArray() Array

	// Release releases builder resources
	Release()
}

// --- Int32Builder ---

type Int32Builder struct {
	data  []int32
	valid []bool
	nulls int
}

func NewInt32Builder() *Int32Builder {
	return &Int32Builder{
		data:  make([]int32, 0, 16),
		valid: make([]bool, 0, 16),
	}
}

func (b *Int32Builder) Reserve(n int) {
	if cap(b.data)-len(b.data) < n {
		newData := make([]int32, len(b.data), len(b.data)+n)
		copy(newData, b.data)
		b.data = newData
	}
	if cap(b.valid)-len(b.valid) < n {
		newValid := make([]bool, len(b.valid), len(b.valid)+n)
		copy(newValid, b.valid)
		b.valid = newValid
	}
}

func (b *Int32Builder) Append(v int32) {
	b.data = append(b.data, v)
	b.valid = append(b.valid, true)
}

func (b *Int32Builder) AppendNull() {
	b.data = append(b.data, 0) // placeholder
	b.valid = append(b.valid, false)
	b.nulls++
}

func (b *Int32Builder) Len() int {
	return len(b.data)
}

func (b *Int32Builder) NewArray() Array {
	var validity *Bitmap
	if b.nulls > 0 {
		validity = NewBitmapFromBools(b.valid)
	}

	arr := NewInt32Array(b.data, validity)

	// Reset
	b.data = make([]int32, 0, 16)
	b.valid = make([]bool, 0, 16)
	b.nulls = 0

	return arr
}

func (b *Int32Builder) Release() {
	b.data = nil
	b.valid = nil
}

// --- Int64Builder ---

type Int64Builder struct {
	data  []int64
	valid []bool
	nulls int
}

func NewInt64Builder() *Int64Builder {
	return &Int64Builder{
		data:  make([]int64, 0, 16),
		valid: make([]bool, 0, 16),
	}
}

func (b *Int64Builder) Reserve(n int) {
	if cap(b.data)-len(b.data) < n {
		newData := make([]int64, len(b.data), len(b.data)+n)
		copy(newData, b.data)
		b.data = newData
	}
	if cap(b.valid)-len(b.valid) < n {
		newValid := make([]bool, len(b.valid), len(b.valid)+n)
		copy(newValid, b.valid)
		b.valid = newValid
	}
}

func (b *Int64Builder) Append(v int64) {
	b.data = append(b.data, v)
	b.valid = append(b.valid, true)
}

func (b *Int64Builder) AppendNull() {
	b.data = append(b.data, 0) // placeholder
	b.valid = append(b.valid, false)
	b.nulls++
}

func (b *Int64Builder) Len() int {
	return len(b.data)
}

func (b *Int64Builder) NewArray() Array {
	var validity *Bitmap
	if b.nulls > 0 {
		validity = NewBitmapFromBools(b.valid)
	}

	arr := NewInt64Array(b.data, validity)

	// Reset
	b.data = make([]int64, 0, 16)
	b.valid = make([]bool, 0, 16)
	b.nulls = 0

	return arr
}

func (b *Int64Builder) Release() {
	b.data = nil
	b.valid = nil
}

// --- Float32Builder ---

type Float32Builder struct {
	data  []float32
	valid []bool
	nulls int
}

func NewFloat32Builder() *Float32Builder {
	return &Float32Builder{
		data:  make([]float32, 0, 16),
		valid: make([]bool, 0, 16),
	}
}

func (b *Float32Builder) Reserve(n int) {
	if cap(b.data)-len(b.data) < n {
		newData := make([]float32, len(b.data), len(b.data)+n)
		copy(newData, b.data)
		b.data = newData
	}
	if cap(b.valid)-len(b.valid) < n {
		newValid := make([]bool, len(b.valid), len(b.valid)+n)
		copy(newValid, b.valid)
		b.valid = newValid
	}
}

func (b *Float32Builder) Append(v float32) {
	b.data = append(b.data, v)
	b.valid = append(b.valid, true)
}

func (b *Float32Builder) AppendNull() {
	b.data = append(b.data, 0) // placeholder
	b.valid = append(b.valid, false)
	b.nulls++
}

func (b *Float32Builder) Len() int {
	return len(b.data)
}

func (b *Float32Builder) NewArray() Array {
	var validity *Bitmap
	if b.nulls > 0 {
		validity = NewBitmapFromBools(b.valid)
	}

	arr := NewFloat32Array(b.data, validity)

	// Reset
	b.data = make([]float32, 0, 16)
	b.valid = make([]bool, 0, 16)
	b.nulls = 0

	return arr
}

func (b *Float32Builder) Release() {
	b.data = nil
	b.valid = nil
}

// --- Float64Builder ---

type Float64Builder struct {
	data  []float64
	valid []bool
	nulls int
}

func NewFloat64Builder() *Float64Builder {
	return &Float64Builder{
		data:  make([]float64, 0, 16),
		valid: make([]bool, 0, 16),
	}
}

func (b *Float64Builder) Reserve(n int) {
	if cap(b.data)-len(b.data) < n {
		newData := make([]float64, len(b.data), len(b.data)+n)
		copy(newData, b.data)
		b.data = newData
	}
	if cap(b.valid)-len(b.valid) < n {
		newValid := make([]bool, len(b.valid), len(b.valid)+n)
		copy(newValid, b.valid)
		b.valid = newValid
	}
}

func (b *Float64Builder) Append(v float64) {
	b.data = append(b.data, v)
	b.valid = append(b.valid, true)
}

func (b *Float64Builder) AppendNull() {
	b.data = append(b.data, 0) // placeholder
	b.valid = append(b.valid, false)
	b.nulls++
}

func (b *Float64Builder) Len() int {
	return len(b.data)
}

func (b *Float64Builder) NewArray() Array {
	var validity *Bitmap
	if b.nulls > 0 {
		validity = NewBitmapFromBools(b.valid)
	}

	arr := NewFloat64Array(b.data, validity)

	// Reset
	b.data = make([]float64, 0, 16)
	b.valid = make([]bool, 0, 16)
	b.nulls = 0

	return arr
}

func (b *Float64Builder) Release() {
	b.data = nil
	b.valid = nil
}
