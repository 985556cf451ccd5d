package hush

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmatic error handling.
// Use errors.Is() to check for these error types.
var (
	// ErrUnmarshal indicates the codec failed to unmarshal input data.
	ErrUnmarshal = errors.New("unmarshal failed")

	// ErrMarshal indicates the codec failed to marshal output data.
	ErrMarshal = errors.New("marshal failed")

	// ErrDisclosureDenied indicates a type declares a Disclosed field
	// where disclosure is not allowed.
	ErrDisclosureDenied = errors.New("disclosure denied")

	// ErrInvalidType indicates a type cannot be handled.
	ErrInvalidType = errors.New("invalid type")
)

// ConfigError represents a processor configuration error.
// It wraps a sentinel error with the type and field that triggered it.
type ConfigError struct {
	Err   error  // Underlying sentinel error (ErrDisclosureDenied, etc.)
	Type  string // Type the processor was built for
	Field string // Field path that triggered the error
}

func (e *ConfigError) Error() string {
	if e.Type != "" && e.Field != "" {
		return fmt.Sprintf("%s: %s.%s", e.Err.Error(), e.Type, e.Field)
	}
	if e.Field != "" {
		return fmt.Sprintf("%s (field %s)", e.Err.Error(), e.Field)
	}
	if e.Type != "" {
		return fmt.Sprintf("%s (type %s)", e.Err.Error(), e.Type)
	}
	return e.Err.Error()
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// CodecError represents a marshal/unmarshal error.
// Both the sentinel and the codec's own error are reachable through
// errors.Is and errors.As.
type CodecError struct {
	Err   error // Underlying sentinel error (ErrMarshal, ErrUnmarshal)
	Cause error // Original error from the codec
}

func (e *CodecError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Err.Error(), e.Cause)
	}
	return e.Err.Error()
}

func (e *CodecError) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Err}
	}
	return []error{e.Err, e.Cause}
}

// newConfigError creates a ConfigError for a rejected field.
func newConfigError(sentinel error, typeName, field string) error {
	return &ConfigError{
		Err:   sentinel,
		Type:  typeName,
		Field: field,
	}
}

// newCodecError creates a CodecError for marshal/unmarshal failures.
func newCodecError(sentinel error, cause error) error {
	return &CodecError{
		Err:   sentinel,
		Cause: cause,
	}
}
