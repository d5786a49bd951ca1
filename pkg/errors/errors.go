// Package errors provides structured error types for the vpic library.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the library and CLI
//   - Machine-readable error codes for programmatic handling
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Error codes fall into three families matching the library's error
// taxonomy:
//   - INVALID_* / BATCH_TOO_LARGE: local precondition failures; no request
//     was sent (validation errors)
//   - NETWORK_* / NOT_FOUND / RATE_LIMITED / TIMEOUT: transport-layer
//     failures, surfaced unchanged (transport errors)
//   - MAPPING_ERROR: a response could not be unified or normalized into
//     the expected shape (mapping errors)
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidVIN, "vin must be 6 to 17 characters: %q", vin)
//	if errors.Is(err, errors.ErrCodeInvalidVIN) {
//	    // Handle validation error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeNetwork, origErr, "fetching %s", url)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Validation errors: the request was rejected locally, before any
	// HTTP call was issued.
	ErrCodeInvalidInput  Code = "INVALID_INPUT"
	ErrCodeInvalidVIN    Code = "INVALID_VIN"
	ErrCodeInvalidWMI    Code = "INVALID_WMI"
	ErrCodeInvalidYear   Code = "INVALID_YEAR"
	ErrCodeBatchTooLarge Code = "BATCH_TOO_LARGE"

	// Transport errors: the HTTP layer failed. These are surfaced
	// unchanged and never retried by the mapping core.
	ErrCodeNetwork     Code = "NETWORK_ERROR"
	ErrCodeNotFound    Code = "NOT_FOUND"
	ErrCodeRateLimited Code = "RATE_LIMITED"
	ErrCodeTimeout     Code = "TIMEOUT"

	// Mapping errors: the response arrived but could not be unified or
	// normalized into the expected shape.
	ErrCodeMapping Code = "MAPPING_ERROR"

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
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error is not a coded error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	var m *MappingError
	if errors.As(err, &m) {
		return ErrCodeMapping
	}
	var r *RateLimitedError
	if errors.As(err, &r) {
		return ErrCodeRateLimited
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

// IsValidation reports whether err is a local precondition failure.
// Validation errors mean no request was issued.
func IsValidation(err error) bool {
	switch GetCode(err) {
	case ErrCodeInvalidInput, ErrCodeInvalidVIN, ErrCodeInvalidWMI,
		ErrCodeInvalidYear, ErrCodeBatchTooLarge:
		return true
	}
	return false
}

// IsTransport reports whether err originated in the HTTP layer.
func IsTransport(err error) bool {
	switch GetCode(err) {
	case ErrCodeNetwork, ErrCodeNotFound, ErrCodeRateLimited, ErrCodeTimeout:
		return true
	}
	return false
}

// IsMapping reports whether err is a response-shape or normalization
// failure. The offending payload is available via [AsMapping].
func IsMapping(err error) bool {
	return GetCode(err) == ErrCodeMapping
}

// MappingError is returned when a response record cannot be converted to
// its domain representation, or when the response payload does not match
// the expected shape. Record carries the offending record for diagnosis.
type MappingError struct {
	Message string
	Record  map[string]any // offending record, nil when the failure precedes record assembly
	Cause   error
}

// Error implements the error interface.
func (e *MappingError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", ErrCodeMapping, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrCodeMapping, e.Message)
}

// Unwrap returns the underlying cause.
func (e *MappingError) Unwrap() error { return e.Cause }

// Code returns the error code for this error type.
func (e *MappingError) Code() Code { return ErrCodeMapping }

// NewMapping creates a MappingError with the offending record attached.
func NewMapping(record map[string]any, format string, args ...any) *MappingError {
	return &MappingError{
		Message: fmt.Sprintf(format, args...),
		Record:  record,
	}
}

// AsMapping extracts a *MappingError from an error chain.
func AsMapping(err error) (*MappingError, bool) {
	var e *MappingError
	ok := errors.As(err, &e)
	return e, ok
}

// RateLimitedError provides additional information for rate-limited responses.
// The upstream service applies automatic traffic controls; see the
// Retry-After header on the response.
type RateLimitedError struct {
	RetryAfter int // Seconds to wait before retrying
	Message    string
}

// Error implements the error interface.
func (e *RateLimitedError) Error() string {
	if e.RetryAfter > 0 {
		return fmt.Sprintf("rate limited: retry after %d seconds", e.RetryAfter)
	}
	return "rate limited"
}

// AsRateLimited extracts a *RateLimitedError from an error chain.
func AsRateLimited(err error) (*RateLimitedError, bool) {
	var e *RateLimitedError
	ok := errors.As(err, &e)
	return e, ok
}
