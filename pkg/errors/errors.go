// Package errors provides structured error types for hexalith.
//
// Every failure the generator can report carries a machine-readable [Code]
// so the CLI and the HTTP interface can map it to an exit status or a
// response code without string matching.
//
// # Error Codes
//
//   - INVALID_*: parameter validation failures, reported before any work
//   - SEED_DERIVATION: the seed or UUID could not be turned into a stream
//   - GRID_CONSTRUCTION: a tessellation invariant was violated (internal)
//   - SHAPE_GROWTH_EXHAUSTED: shape growth failed after bounded retries
//
// # Usage
//
//	err := errors.InvalidParameter("grid_density", "[2, 8]", 9)
//	if errors.Is(err, errors.ErrCodeInvalidParameter) {
//	    // reject the request
//	}
//
//	err := errors.Wrap(errors.ErrCodeSeedDerivation, cause, "parse uuid %q", s)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input validation errors
	ErrCodeInvalidParameter Code = "INVALID_PARAMETER"
	ErrCodeInvalidFormat    Code = "INVALID_FORMAT"
	ErrCodeInvalidPath      Code = "INVALID_PATH"

	// Generation errors
	ErrCodeSeedDerivation       Code = "SEED_DERIVATION"
	ErrCodeGridConstruction     Code = "GRID_CONSTRUCTION"
	ErrCodeShapeGrowthExhausted Code = "SHAPE_GROWTH_EXHAUSTED"

	// Resource errors
	ErrCodeNotFound Code = "NOT_FOUND"
	ErrCodeNetwork  Code = "NETWORK_ERROR"

	// Internal errors
	ErrCodeInternal    Code = "INTERNAL_ERROR"
	ErrCodeUnsupported Code = "UNSUPPORTED"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Field   string // Offending parameter, for INVALID_PARAMETER
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// InvalidParameter reports a parameter outside its valid range.
// valid describes the accepted values, e.g. "[2, 8]" or "one of mesos, google".
func InvalidParameter(field, valid string, got any) *Error {
	return &Error{
		Code:    ErrCodeInvalidParameter,
		Field:   field,
		Message: fmt.Sprintf("%s must be %s, got %v", field, valid, got),
	}
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// GetField returns the offending parameter name of an INVALID_PARAMETER error.
func GetField(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Field
	}
	return ""
}

// IsUserError reports whether err was caused by caller input rather than
// an internal failure.
func IsUserError(err error) bool {
	switch GetCode(err) {
	case ErrCodeInvalidParameter, ErrCodeInvalidFormat, ErrCodeInvalidPath, ErrCodeSeedDerivation:
		return true
	}
	return false
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}
