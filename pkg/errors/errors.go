// Package errors provides structured error types for slidegrid.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the layout core, CLI and HTTP API
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Layout codes describe programming or configuration mistakes in a layout
// tree. None of them are transient, so nothing in slidegrid retries on them:
//   - LAYOUT_OVERFLOW: fixed and ratio siblings exceed their container
//   - STRUCTURAL_MISMATCH: a node's child-count contract is violated
//   - LAYOUT_STATE: a node is used in the wrong lifecycle state
//   - INDEX_OUT_OF_RANGE: a child or path lookup missed
//   - INVALID_UNIT: a unit value or unit text is out of range
//
// The remaining codes cover input handling in the outer layers.
//
// # Usage
//
//	err := errors.New(errors.ErrCodeOverflow, "fixed sizes %d exceed extent %d", fixed, total)
//	if errors.Is(err, errors.ErrCodeOverflow) {
//	    // Handle overflow
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeInvalidDocument, origErr, "decode %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Layout errors
	ErrCodeOverflow    Code = "LAYOUT_OVERFLOW"
	ErrCodeStructure   Code = "STRUCTURAL_MISMATCH"
	ErrCodeState       Code = "LAYOUT_STATE"
	ErrCodeIndex       Code = "INDEX_OUT_OF_RANGE"
	ErrCodeInvalidUnit Code = "INVALID_UNIT"

	// Input validation errors
	ErrCodeInvalidInput    Code = "INVALID_INPUT"
	ErrCodeInvalidFormat   Code = "INVALID_FORMAT"
	ErrCodeInvalidDocument Code = "INVALID_DOCUMENT"
	ErrCodeInvalidColor    Code = "INVALID_COLOR"

	// Internal errors
	ErrCodeInternal    Code = "INTERNAL_ERROR"
	ErrCodeUnsupported Code = "UNSUPPORTED"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
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

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
// Only the outermost *Error is consulted, so a wrapper carrying its own code
// hides the code of its cause.
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

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		if e.Cause != nil {
			return fmt.Sprintf("%s: %s", e.Message, UserMessage(e.Cause))
		}
		return e.Message
	}
	return err.Error()
}

// IsLayout reports whether err carries one of the layout codes. These are
// configuration mistakes in the submitted tree rather than server faults.
func IsLayout(err error) bool {
	switch GetCode(err) {
	case ErrCodeOverflow, ErrCodeStructure, ErrCodeState, ErrCodeIndex, ErrCodeInvalidUnit:
		return true
	}
	return false
}
