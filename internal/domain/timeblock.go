package domain

import (
	"errors"
	"strings"
	"time"
)

var (
	// ErrEmptyTitle indicates a block or suggestion with a blank title.
	ErrEmptyTitle = errors.New("title must not be empty")

	// ErrNonPositiveDuration indicates a duration of zero or less.
	ErrNonPositiveDuration = errors.New("duration must be > 0")
)

// TimeBlock is a scheduled activity on the calendar.
type TimeBlock struct {
	ID       string        `json:"id"`
	Title    string        `json:"title"`
	Start    time.Time     `json:"start"`
	Duration time.Duration `json:"duration"`
	Energy   EnergyLevel   `json:"energy"`
	Emphasis string        `json:"emphasis,omitempty"`

	GoalID      string `json:"goalId,omitempty"`
	GoalTitle   string `json:"goalTitle,omitempty"`
	PillarID    string `json:"pillarId,omitempty"`
	PillarTitle string `json:"pillarTitle,omitempty"`

	// SuggestionID links back to the suggestion that produced this block.
	SuggestionID string `json:"suggestionId,omitempty"`

	// ForeignID identifies the source event for origin=external blocks.
	ForeignID       string     `json:"foreignId,omitempty"`
	ForeignModified *time.Time `json:"foreignModified,omitempty"`

	Notes string `json:"notes,omitempty"`

	State       ConfirmState `json:"state"`
	ConfirmedAt *time.Time   `json:"confirmedAt,omitempty"`
	Origin      BlockOrigin  `json:"origin"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// End returns the exclusive end of the block's occupied interval.
func (b *TimeBlock) End() time.Time {
	return b.Start.Add(b.Duration)
}

// Validate enforces the mutation-boundary invariants: a non-empty title
// and a strictly positive duration.
func (b *TimeBlock) Validate() error {
	if strings.TrimSpace(b.Title) == "" {
		return ErrEmptyTitle
	}
	if b.Duration <= 0 {
		return ErrNonPositiveDuration
	}
	return nil
}
