// Package errors provides structured error types for the graphbatch library.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the library and CLI
//   - Machine-readable error codes for programmatic handling
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Every failure mode in this library is an invalid-argument class error:
// bad array shape/dtype/device, partition counts that do not divide the
// vertex count, size vectors that do not sum to the vertex count, and
// mismatched array-length relationships. There are no transient or
// retryable failures - all operations are deterministic and either
// complete or reject their inputs up front.
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidPartition, "sizes sum to %d, graph has %d vertices", sum, n)
//	if errors.Is(err, errors.ErrCodeInvalidPartition) {
//	    // Handle validation error
//	}
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different validation failures.
const (
	// ErrCodeInvalidArray covers arrays violating the id-array contract:
	// not host-resident, not one-dimensional, or not signed 64-bit integer.
	ErrCodeInvalidArray Code = "INVALID_ARRAY"

	// ErrCodeInvalidPartition covers partition requests that cannot be
	// satisfied: a count that does not evenly divide the vertex count, a
	// size vector that does not sum to the vertex count, or a partition
	// whose vertex range is not closed under its own edges.
	ErrCodeInvalidPartition Code = "INVALID_PARTITION"

	// ErrCodeLengthMismatch covers mismatched array-length relationships,
	// such as len(ids)+1 != len(offset) in ExpandIDs.
	ErrCodeLengthMismatch Code = "LENGTH_MISMATCH"

	// ErrCodeInvalidVertex covers references to vertex ids outside [0, N).
	ErrCodeInvalidVertex Code = "INVALID_VERTEX"

	// ErrCodeInvalidEdge covers corrupted edge bookkeeping, such as an edge
	// id whose endpoints are missing from the adjacency lists.
	ErrCodeInvalidEdge Code = "INVALID_EDGE"

	// ErrCodeInternal covers unexpected internal errors.
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
