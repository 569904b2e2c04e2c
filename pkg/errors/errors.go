// Package errors provides structured error types for the standings builder.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the CLI, the HTTP server and the builder
//   - Machine-readable error codes for programmatic handling
//   - Distinguishing "bad input" from "no data" from "fetch failed"
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Error codes follow a hierarchical naming convention:
//   - INVALID_*: Input validation failures (bad selector, bad season)
//   - INCOMPLETE_*, PARSE_*: Feed data that cannot be used
//   - FETCH_*, NETWORK_*, TIMEOUT: Network-related errors
//   - INTERNAL_*: Unexpected internal errors
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidDivision, "bad division: %s", div)
//	if errors.Is(err, errors.ErrCodeInvalidDivision) {
//	    // Handle validation error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeFetchFailed, origErr, "league %d", id)
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
	ErrCodeInvalidInput      Code = "INVALID_INPUT"
	ErrCodeInvalidConference Code = "INVALID_CONFERENCE"
	ErrCodeInvalidDivision   Code = "INVALID_DIVISION"
	ErrCodeInvalidSeason     Code = "INVALID_SEASON"
	ErrCodeInvalidPath       Code = "INVALID_PATH"

	// Data errors
	ErrCodeNotFound       Code = "NOT_FOUND"
	ErrCodeIncompleteData Code = "INCOMPLETE_DATA"
	ErrCodeParseFailed    Code = "PARSE_FAILED"

	// Network errors
	ErrCodeFetchFailed Code = "FETCH_FAILED"
	ErrCodeNetwork     Code = "NETWORK_ERROR"
	ErrCodeTimeout     Code = "TIMEOUT"

	// Internal errors
	ErrCodeInternal Code = "INTERNAL_ERROR"
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
// Only the outermost *Error is considered.
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

// IsBadInput reports whether err was caused by an invalid caller-supplied
// value rather than by missing or malformed data.
func IsBadInput(err error) bool {
	switch GetCode(err) {
	case ErrCodeInvalidInput, ErrCodeInvalidConference, ErrCodeInvalidDivision,
		ErrCodeInvalidSeason, ErrCodeInvalidPath:
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
