package log

import (
	"time"
)

// Event is one trace record from the message-description layer.
// CBOR encoding uses integer keys for compactness.
type Event struct {
	// Timestamp when the event occurred (nanosecond precision).
	Timestamp time.Time `cbor:"1,keyasint"`

	// SessionID uniquely identifies the console or tool session (UUID).
	SessionID string `cbor:"2,keyasint"`

	// Category classifies the event type.
	Category Category `cbor:"3,keyasint"`

	// Parameter is the name of the parameter being built, if any.
	Parameter string `cbor:"4,keyasint,omitempty"`

	// Type-specific payload (one of these will be set).
	Build *BuildEvent     `cbor:"5,keyasint,omitempty"` // Successful build
	Error *ErrorEventData `cbor:"6,keyasint,omitempty"` // Failed build or tool error
}

// Category classifies the event type.
type Category uint8

const (
	// CategoryBuild indicates a completed message build.
	CategoryBuild Category = 0
	// CategoryError indicates a failed build or tool error.
	CategoryError Category = 1
)

// String returns the category name.
func (c Category) String() string {
	switch c {
	case CategoryBuild:
		return "BUILD"
	case CategoryError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// BuildEvent captures a successful message build.
type BuildEvent struct {
	// TokenCount is the number of input tokens supplied.
	TokenCount int `cbor:"1,keyasint"`

	// FieldCount is the number of top-level fields in the message.
	FieldCount int `cbor:"2,keyasint"`

	// Report is the canonical rendering of the built message.
	Report string `cbor:"3,keyasint,omitempty"`
}

// ErrorEventData captures a failure.
type ErrorEventData struct {
	// Field is the name of the field that failed, if the failure came
	// from a build.
	Field string `cbor:"1,keyasint,omitempty"`

	// Detail is a human-readable description.
	Detail string `cbor:"2,keyasint,omitempty"`
}
