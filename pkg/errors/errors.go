// Package errors provides structured error types for ecbingo.
//
// Every package in the module reports failures as an [*Error] carrying a
// machine-readable [Code]. The CLI maps codes to process exit codes with
// [ExitCode] and the HTTP server maps them to status codes with [HTTPStatus].
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidPoint, "invalid point %q", label)
//	if errors.Is(err, errors.ErrCodeInvalidPoint) {
//	    // Handle validation error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeNetwork, origErr, "fetch %s", url)
package errors

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Board errors
	ErrCodeInvalidPoint  Code = "INVALID_POINT"
	ErrCodeFreeSpace     Code = "IMMUTABLE_FREE_SPACE"
	ErrCodeNotMarked     Code = "NOT_MARKED"
	ErrCodeCorruptRecord Code = "CORRUPT_RECORD"
	ErrCodeInvalidInput  Code = "INVALID_INPUT"
	ErrCodeTooLarge      Code = "TOO_LARGE"

	// Catalog errors
	ErrCodeNotFound    Code = "NOT_FOUND"
	ErrCodeNetwork     Code = "NETWORK_ERROR"
	ErrCodeRateLimited Code = "RATE_LIMITED"
	ErrCodeUnsupported Code = "UNSUPPORTED"

	// Internal errors
	ErrCodeInternal Code = "INTERNAL_ERROR"
)

// Process exit codes.
const (
	ExitOK       = 0
	ExitUsage    = 1
	ExitNotFound = 2
	ExitCanceled = 130 // shell convention for SIGINT
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
		if e.Cause != nil {
			return fmt.Sprintf("%s: %v", e.Message, e.Cause)
		}
		return e.Message
	}
	return err.Error()
}

// ExitCode maps an error to the process exit code convention:
// 0 on success, 2 when an upstream resource was not found, 130 on
// cancellation and 1 for everything else.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, context.Canceled):
		return ExitCanceled
	case Is(err, ErrCodeNotFound):
		return ExitNotFound
	default:
		return ExitUsage
	}
}

// HTTPStatus maps an error code to an HTTP response status.
func HTTPStatus(code Code) int {
	switch code {
	case ErrCodeInvalidPoint, ErrCodeFreeSpace, ErrCodeNotMarked,
		ErrCodeCorruptRecord, ErrCodeInvalidInput, ErrCodeUnsupported:
		return http.StatusBadRequest
	case ErrCodeTooLarge:
		return http.StatusRequestEntityTooLarge
	case ErrCodeNotFound:
		return http.StatusNotFound
	case ErrCodeRateLimited:
		return http.StatusTooManyRequests
	case ErrCodeNetwork:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
