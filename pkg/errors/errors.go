// Package errors provides structured error types for the cleardef client.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the library and CLI
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Error codes map onto the failure categories of the client layer:
//   - INVALID_*: local input validation (coordinate and enum parsing)
//   - TRANSPORT_ERROR: failures building or issuing an HTTP request
//   - HTTP_STATUS: the service answered with a non-success status code
//   - DECODE_ERROR: the response payload could not be decoded
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidCoordinate, "missing version segment in %q", text)
//	if errors.Is(err, errors.ErrCodeInvalidCoordinate) {
//	    // Handle validation error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeTransport, origErr, "sending definitions request")
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input validation errors local to this layer
	ErrCodeInvalidCoordinate Code = "INVALID_COORDINATE"
	ErrCodeInvalidShape      Code = "INVALID_SHAPE"
	ErrCodeInvalidProvider   Code = "INVALID_PROVIDER"

	// Request construction or round-trip failures
	ErrCodeTransport Code = "TRANSPORT_ERROR"

	// Non-success response status
	ErrCodeHTTPStatus Code = "HTTP_STATUS"

	// Malformed JSON, unexpected top-level shape, or fatal missing/duplicate fields
	ErrCodeDecode Code = "DECODE_ERROR"

	// Unexpected internal errors
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

// StatusError carries the HTTP status code of a non-success response.
// The definitions service does not emit structured error bodies, so the
// status code is all the information available to callers.
type StatusError struct {
	StatusCode int // HTTP status code (e.g., 404, 500)
}

// Error implements the error interface.
func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d", e.StatusCode)
}

// Code returns the error code for this error type.
func (e *StatusError) Code() Code {
	return ErrCodeHTTPStatus
}

// Status creates an Error for a non-success HTTP status code.
// The returned error unwraps to a *StatusError carrying the code.
func Status(statusCode int) *Error {
	return Wrap(ErrCodeHTTPStatus, &StatusError{StatusCode: statusCode}, "definitions request rejected")
}
