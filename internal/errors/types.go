package errors

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorType represents different categories of errors.
type ErrorType string

const (
	ErrorTypeValidation ErrorType = "validation"
	ErrorTypeConfig     ErrorType = "config"
	ErrorTypeIO         ErrorType = "io"
	ErrorTypeInternal   ErrorType = "internal"
)

// GeometryError is a structured error type with context.
type GeometryError struct {
	Type    ErrorType
	Code    string
	Message string
	Cause   error
	Context map[string]interface{}
	Shape   string
}

// Error implements the error interface.
func (e *GeometryError) Error() string {
	var parts []string

	if e.Code != "" {
		parts = append(parts, fmt.Sprintf("[%s]", e.Code))
	}

	if e.Shape != "" {
		parts = append(parts, "shape:"+e.Shape)
	}

	parts = append(parts, e.Message)

	result := strings.Join(parts, " ")

	if e.Cause != nil {
		result += fmt.Sprintf(": %v", e.Cause)
	}

	return result
}

// Unwrap returns the underlying cause error.
func (e *GeometryError) Unwrap() error {
	return e.Cause
}

// Is implements error comparison.
func (e *GeometryError) Is(target error) bool {
	var t *GeometryError
	if errors.As(target, &t) {
		return e.Type == t.Type && e.Code == t.Code
	}

	return false
}

// WithContext adds context information to the error.
func (e *GeometryError) WithContext(key string, value interface{}) *GeometryError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value

	return e
}

// WithShape adds shape context.
func (e *GeometryError) WithShape(shape string) *GeometryError {
	e.Shape = shape

	return e
}

// Error creation functions

// NewValidationError creates a validation error.
func NewValidationError(code, message string) *GeometryError {
	return &GeometryError{
		Type:    ErrorTypeValidation,
		Code:    code,
		Message: message,
	}
}

// NewConfigError creates a configuration error.
func NewConfigError(code, message string) *GeometryError {
	return &GeometryError{
		Type:    ErrorTypeConfig,
		Code:    code,
		Message: message,
	}
}

// NewIOError creates an I/O error.
func NewIOError(code, message string, cause error) *GeometryError {
	return &GeometryError{
		Type:    ErrorTypeIO,
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// NewInternalError creates an internal error.
func NewInternalError(code, message string, cause error) *GeometryError {
	return &GeometryError{
		Type:    ErrorTypeInternal,
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// IsValidationError checks if an error is a measurement validation error.
func IsValidationError(err error) bool {
	var ge *GeometryError
	if errors.As(err, &ge) {
		return ge.Type == ErrorTypeValidation
	}

	return false
}

// IsConfigError checks if an error is configuration-related.
func IsConfigError(err error) bool {
	var ge *GeometryError
	if errors.As(err, &ge) {
		return ge.Type == ErrorTypeConfig
	}

	return false
}

// Common error codes.
const (
	ErrCodeMeasurementCount   = "ERR_MEASUREMENT_COUNT"
	ErrCodeMeasurementRange   = "ERR_MEASUREMENT_RANGE"
	ErrCodeTriangleInequality = "ERR_TRIANGLE_INEQUALITY"
	ErrCodeUnknownShape       = "ERR_UNKNOWN_SHAPE"
	ErrCodeConfigInvalid      = "ERR_CONFIG_INVALID"
	ErrCodeManifestInvalid    = "ERR_MANIFEST_INVALID"
	ErrCodeManifestNotFound   = "ERR_MANIFEST_NOT_FOUND"
	ErrCodeInternalError      = "ERR_INTERNAL"
)

// Helper functions for common errors

// ErrMeasurementCount creates an error for a wrong number of measurements.
func ErrMeasurementCount(shape string, want, got int) *GeometryError {
	return NewValidationError(
		ErrCodeMeasurementCount,
		fmt.Sprintf("expected %d measurements, got %d", want, got),
	).WithShape(shape)
}

// ErrMeasurementRange creates an error for a measurement outside (0, MaxFloat64].
func ErrMeasurementRange(shape string, index int, value float64) *GeometryError {
	return NewValidationError(
		ErrCodeMeasurementRange,
		fmt.Sprintf("measurement %d must be a positive finite number, got %v", index, value),
	).WithShape(shape).WithContext("index", index).WithContext("value", value)
}

// ErrTriangleInequality creates an error for sides violating the triangle inequality.
func ErrTriangleInequality(a, b, c float64) *GeometryError {
	return NewValidationError(
		ErrCodeTriangleInequality,
		fmt.Sprintf("sides (%v, %v, %v) violate the triangle inequality", a, b, c),
	).WithShape("triangle")
}

// ErrUnknownShape creates an error for an unrecognized shape kind.
func ErrUnknownShape(kind string) *GeometryError {
	return NewValidationError(ErrCodeUnknownShape, "unknown shape kind: "+kind)
}
