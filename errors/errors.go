package errors

import (
	"errors"
	"fmt"
)

// ErrorCode classifies recoverable failures raised by the compute
// kernels. Contract violations in the core (bad slice ranges,
// undersized buffers) are not errors, they panic.
type ErrorCode int

const (
	ErrUnknown ErrorCode = iota
	ErrInvalidArgument
	ErrUnsupportedType
	ErrTypeMismatch
	ErrLengthMismatch
)

func (c ErrorCode) String() string {
	switch c {
	case ErrUnknown:
		return "Unknown"
	case ErrInvalidArgument:
		return "InvalidArgument"
	case ErrUnsupportedType:
		return "UnsupportedType"
	case ErrTypeMismatch:
		return "TypeMismatch"
	case ErrLengthMismatch:
		return "LengthMismatch"
	default:
		return fmt.Sprintf("ErrorCode(%d)", c)
	}
}

// Error is the structured error every recoverable failure in this
// module surfaces as.
type Error struct {
	Code    ErrorCode              // error classification
	Op      string                 // operation description (e.g. "filter")
	Err     error                  // wrapped cause, if any
	Context map[string]interface{} // extra key/value context
}

func (e *Error) Error() string {
	var parts []string

	parts = append(parts, fmt.Sprintf("[%s:%s]", e.Code, e.Op))

	if len(e.Context) > 0 {
		parts = append(parts, fmt.Sprintf("context=%v", e.Context))
	}

	if e.Err != nil {
		parts = append(parts, fmt.Sprintf("cause=%v", e.Err))
	}

	return fmt.Sprintf("arrgo error: %s", joinParts(parts))
}

func joinParts(parts []string) string {
	if len(parts) == 0 {
		return "unknown"
	}
	result := parts[0]
	for _, p := range parts[1:] {
		result += " | " + p
	}
	return result
}

// Unwrap supports errors.As/Is
func (e *Error) Unwrap() error {
	return e.Err
}

// IsCode reports whether the error code matches
func (e *Error) IsCode(code ErrorCode) bool {
	return e.Code == code
}

// Builder constructs errors fluently
type Builder struct {
	err *Error
}

func New(code ErrorCode) *Builder {
	return &Builder{
		err: &Error{
			Code:    code,
			Context: make(map[string]interface{}),
		},
	}
}

func (b *Builder) Op(op string) *Builder {
	b.err.Op = op
	return b
}

func (b *Builder) Context(key string, value interface{}) *Builder {
	b.err.Context[key] = value
	return b
}

func (b *Builder) Wrap(err error) *Builder {
	b.err.Err = err
	return b
}

func (b *Builder) Build() error {
	return b.err
}

// AsError unwraps err to this package's Error type
func AsError(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// IsCode reports whether err carries the given code anywhere in its
// chain
func IsCode(err error, code ErrorCode) bool {
	e, ok := AsError(err)
	return ok && e.Code == code
}
