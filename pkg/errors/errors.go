// Package errors provides structured error types for asciisketch.
//
// This package defines error codes and types that enable:
//   - Consistent error handling between the CLI and the rendering engine
//   - Machine-readable error codes for programmatic handling
//   - Location context (1-based input line) for parse failures
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Fatal codes abort a render before anything is drawn:
//   - PARSE_ERROR: malformed document or diagram statement
//   - UNSUPPORTED: syntax that is recognized but not supported
//   - OVERFLOW: content wider than a panel under the "error" overflow policy
//   - INVALID_INPUT: bad options or an input whose mode cannot be detected
//   - IO_ERROR: the source could not be read
//
// LAYOUT_WARNING is never returned as an error. It is the code of the
// [Warning] values that travel next to a successful render.
//
// # Usage
//
//	err := errors.AtLine(errors.ErrCodeParse, 3, "unknown component type %q", kind)
//	if errors.Is(err, errors.ErrCodeParse) {
//	    // Handle parse error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeIO, origErr, "read %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Parse-time errors
	ErrCodeParse       Code = "PARSE_ERROR"
	ErrCodeUnsupported Code = "UNSUPPORTED"

	// Layout-time errors
	ErrCodeOverflow Code = "OVERFLOW"

	// Input and environment errors
	ErrCodeInvalidInput Code = "INVALID_INPUT"
	ErrCodeIO           Code = "IO_ERROR"

	// Non-fatal
	ErrCodeLayoutWarning Code = "LAYOUT_WARNING"
)

// Error is a structured error with a code, an optional input line and an
// optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Line    int    // 1-based input line, 0 when unknown
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := e.Message
	if e.Line > 0 {
		msg = fmt.Sprintf("line %d: %s", e.Line, e.Message)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, msg, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, msg)
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

// AtLine creates a new Error located at a 1-based input line.
func AtLine(code Code, line int, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Line:    line,
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

// GetLine extracts the input line from an error, or 0.
func GetLine(err error) int {
	var e *Error
	if errors.As(err, &e) {
		return e.Line
	}
	return 0
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix but with the
// line, if any. For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		if e.Line > 0 {
			return fmt.Sprintf("line %d: %s", e.Line, e.Message)
		}
		return e.Message
	}
	return err.Error()
}
