package ai

import "errors"

var (
	// ErrUnavailable indicates the model server is unreachable.
	ErrUnavailable = errors.New("model server unavailable")

	// ErrTimeout indicates the generation request exceeded its timeout.
	ErrTimeout = errors.New("generation request timed out")

	// ErrInvalidOutput indicates the model response could not be parsed
	// into a suggestion list.
	ErrInvalidOutput = errors.New("invalid generator output format")

	// ErrRetryExhausted indicates all retry attempts have been exhausted.
	ErrRetryExhausted = errors.New("generation retry attempts exhausted")
)
