package arrow

// TypeID is an enum of supported data types
type TypeID int

const (
	INT32 TypeID = iota
	INT64
	FLOAT32
	FLOAT64
)

// DataType represents the type of data stored in a column
type DataType interface {
	ID() TypeID
	Name() string
	ByteWidth() int
}

// --- Primitive Types ---

type Int32Type struct{}

func (t *Int32Type) ID() TypeID     { return INT32 }
func (t *Int32Type) Name() string   { return "int32" }
func (t *Int32Type) ByteWidth() int { return 4 }

type Int64Type struct{}

func (t *Int64Type) ID() TypeID     { return INT64 }
func (t *Int64Type) Name() string   { return "int64" }
func (t *Int64Type) ByteWidth() int { return 8 }

type Float32Type struct{}

func (t *Float32Type) ID() TypeID     { return FLOAT32 }
func (t *Float32Type) Name() string   { return "float32" }
func (t *Float32Type) ByteWidth() int { return 4 }

type Float64Type struct{}

func (t *Float64Type) ID() TypeID     { return FLOAT64 }
func (t *Float64Type) Name() string   { return "float64" }
func (t *Float64Type) ByteWidth() int { return 8 }

// --- Type Constructors ---

func PrimInt32() DataType   { return &Int32Type{} }
func PrimInt64() DataType   { return &Int64Type{} }
func PrimFloat32() DataType { return &Float32Type{} }
func PrimFloat64() DataType { return &Float64Type{} }
