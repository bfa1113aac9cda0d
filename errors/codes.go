package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Lifecycle errors
const (
	// ErrCodeStreamClosed indicates a push into a stopped producer or queue.
	ErrCodeStreamClosed ErrorCode = "STREAM_CLOSED"
	// ErrCodeRateLimited indicates the rate limit was exhausted.
	ErrCodeRateLimited ErrorCode = "RATE_LIMITED"
)

// Usage errors
const (
	// ErrCodeInvalidInput indicates an invalid argument.
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
)

// Internal errors
const (
	// ErrCodeInternal indicates an unexpected internal error.
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)

var retryableCodes = map[ErrorCode]bool{
	ErrCodeRateLimited:  true,
	ErrCodeStreamClosed: false,
	ErrCodeInvalidInput: false,
	ErrCodeInternal:     false,
}

// IsRetryableCode returns true if the error code indicates a retryable error.
func IsRetryableCode(code ErrorCode) bool {
	return retryableCodes[code]
}
