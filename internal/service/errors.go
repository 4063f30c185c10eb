package service

import "fmt"

// Mutation error codes returned at the gateway boundary.
const (
	ErrInvalidInput       = "INVALID_INPUT"
	ErrBlockNotFound      = "BLOCK_NOT_FOUND"
	ErrSuggestionNotFound = "SUGGESTION_NOT_FOUND"
	ErrChainNotFound      = "CHAIN_NOT_FOUND"
	ErrGoalNotFound       = "GOAL_NOT_FOUND"
	ErrPillarNotFound     = "PILLAR_NOT_FOUND"
	ErrNotConfirmed       = "NOT_CONFIRMED"
	ErrUndoExpired        = "UNDO_EXPIRED"
)

// MutationError is returned when a gateway operation is rejected. The
// enclosing operation is a no-op: no partial state change is left behind.
type MutationError struct {
	Code    string
	Message string
}

func (e *MutationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func mutationErr(code, format string, args ...any) *MutationError {
	return &MutationError{Code: code, Message: fmt.Sprintf(format, args...)}
}
