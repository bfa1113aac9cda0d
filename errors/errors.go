// Package errors provides structured error handling for streamkit.
// It implements error types with machine-readable codes, retryable
// detection, and cause chaining compatible with errors.Is/As.
package errors

import (
	"errors"
	"fmt"
)

// StreamError is the unified streamkit error type.
type StreamError struct {
	// Code is a machine-readable error code.
	Code ErrorCode `json:"code"`
	// Message is a human-readable error message.
	Message string `json:"message"`
	// Retryable indicates if the operation can be retried.
	Retryable bool `json:"retryable"`
	// Details contains additional context for the error.
	Details map[string]any `json:"details,omitempty"`
	// Cause is the underlying error that caused this error.
	Cause error `json:"-"`
}

// Error returns the string representation of the error.
func (e *StreamError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error.
func (e *StreamError) Unwrap() error { return e.Cause }

// WithCause sets the underlying cause of the error and returns the receiver.
func (e *StreamError) WithCause(cause error) *StreamError {
	e.Cause = cause
	return e
}

// WithDetail sets a single detail key-value pair and returns the receiver.
func (e *StreamError) WithDetail(key string, value any) *StreamError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// New creates a new StreamError with automatic retryable detection.
func New(code ErrorCode, message string) *StreamError {
	return &StreamError{
		Code:      code,
		Message:   message,
		Retryable: IsRetryableCode(code),
	}
}

// --- Common Error Constructors ---

// StreamClosed creates a new StreamError for a push into a stopped stream.
func StreamClosed(stream string) *StreamError {
	return &StreamError{
		Code: ErrCodeStreamClosed, Message: fmt.Sprintf("%s is closed", stream),
		Retryable: false,
		Details:   map[string]any{"stream": stream},
	}
}

// InvalidInput creates a new StreamError for an invalid argument.
func InvalidInput(field, reason string) *StreamError {
	details := make(map[string]any)
	if field != "" {
		details["field"] = field
	}
	return &StreamError{
		Code: ErrCodeInvalidInput, Message: fmt.Sprintf("invalid input: %s", reason),
		Retryable: false, Details: details,
	}
}

// RateLimited creates a new StreamError for an exhausted rate limit.
func RateLimited(limiter string) *StreamError {
	return &StreamError{
		Code: ErrCodeRateLimited, Message: "rate limit exceeded",
		Retryable: true,
		Details:   map[string]any{"limiter": limiter},
	}
}

// Internal creates a new StreamError for an unexpected internal error.
func Internal(cause error) *StreamError {
	return &StreamError{
		Code: ErrCodeInternal, Message: "an unexpected error occurred",
		Retryable: false, Cause: cause,
	}
}

// IsStreamClosed reports whether err is a closed-stream error.
func IsStreamClosed(err error) bool {
	var se *StreamError
	if errors.As(err, &se) {
		return se.Code == ErrCodeStreamClosed
	}
	return false
}

// CodeOf returns the error code of err, or empty if err is not a StreamError.
func CodeOf(err error) ErrorCode {
	var se *StreamError
	if errors.As(err, &se) {
		return se.Code
	}
	return ""
}
