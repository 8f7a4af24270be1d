// Package errors provides structured error types for the quotecard application.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across all commands
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Each failure mode of a card generation has a dedicated code. Validation
// failures (EMPTY_QUOTE, INVALID_OUTPUT_PATH, INVALID_CONFIG) are raised
// before any layout work begins; rendering and write failures wrap the
// underlying cause so it is never silently swallowed.
//
// # Usage
//
//	err := errors.New(errors.ErrCodeEmptyQuote, "quote text cannot be empty")
//	if errors.Is(err, errors.ErrCodeEmptyQuote) {
//	    // Handle validation error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeFileWrite, origErr, "failed to write %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different failure categories.
const (
	// Input validation errors
	ErrCodeEmptyQuote        Code = "EMPTY_QUOTE"
	ErrCodeInvalidOutputPath Code = "INVALID_OUTPUT_PATH"
	ErrCodeInvalidConfig     Code = "INVALID_CONFIG"

	// Layout errors
	ErrCodeFontSizeCalculation Code = "FONT_SIZE_CALCULATION_FAILED"

	// Rendering errors
	ErrCodeSVGGeneration Code = "SVG_GENERATION_FAILED"
	ErrCodeRenderFailed  Code = "RENDER_FAILED"

	// Output errors
	ErrCodeFileWrite Code = "FILE_WRITE_FAILED"
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
		return e.Message
	}
	return err.Error()
}
