package rdm

import (
	"fmt"
)

// ErrorKind classifies why a field conversion failed.
type ErrorKind uint8

const (
	// ParseError indicates the token is not syntactically a value of
	// the field's kind.
	ParseError ErrorKind = iota + 1

	// RangeError indicates the token parsed but the value lies outside
	// the field's width/signedness bounds.
	RangeError

	// LengthError indicates a string token's length lies outside the
	// field's declared bounds.
	LengthError

	// InputExhausted indicates fewer tokens remained than required to
	// complete the field.
	InputExhausted
)

// String returns the error kind name.
func (k ErrorKind) String() string {
	switch k {
	case ParseError:
		return "parse error"
	case RangeError:
		return "range error"
	case LengthError:
		return "length error"
	case InputExhausted:
		return "input exhausted"
	default:
		return "unknown"
	}
}

// FieldError describes the first field conversion that failed during
// a build.
type FieldError struct {
	// Field is the name of the field whose conversion failed.
	Field string

	// Kind classifies the failure.
	Kind ErrorKind

	// Detail is a human-readable description of the failure.
	Detail string
}

// Error implements the error interface.
func (e *FieldError) Error() string {
	return fmt.Sprintf("field %s: %s: %s", e.Field, e.Kind, e.Detail)
}
