package domain

import "time"

// DayPlan holds the blocks scheduled for a single calendar day.
type DayPlan struct {
	Date   string      `json:"date"` // YYYY-MM-DD
	Blocks []TimeBlock `json:"blocks,omitempty"`
}

// FollowUp is a to-do created when the user declines to confirm a block.
// It carries a snapshot of the original block's timing so it can be
// rescheduled later.
type FollowUp struct {
	ID        string        `json:"id"`
	BlockID   string        `json:"blockId"`
	Title     string        `json:"title"`
	Start     time.Time     `json:"start"`
	Duration  time.Duration `json:"duration"`
	Energy    EnergyLevel   `json:"energy"`
	Notes     string        `json:"notes,omitempty"`
	CreatedAt time.Time     `json:"createdAt"`
}

// Record is an immutable audit entry appended when a block is confirmed.
type Record struct {
	ID          string        `json:"id"`
	BlockID     string        `json:"blockId"`
	Title       string        `json:"title"`
	Start       time.Time     `json:"start"`
	Duration    time.Duration `json:"duration"`
	Energy      EnergyLevel   `json:"energy"`
	GoalID      string        `json:"goalId,omitempty"`
	PillarID    string        `json:"pillarId,omitempty"`
	ConfirmedAt time.Time     `json:"confirmedAt"`
}

// State is the single top-level aggregate. The schedule gateway is its only
// writer; every other component receives read-only views.
//
// New fields must be optional or defaulted so older saved documents still
// load.
type State struct {
	SchemaVersion int `json:"schemaVersion"`

	Today   DayPlan   `json:"today"`
	History []DayPlan `json:"history,omitempty"`

	Goals    []Goal    `json:"goals,omitempty"`
	Pillars  []Pillar  `json:"pillars,omitempty"`
	Chains   []Chain   `json:"chains,omitempty"`
	Routines []Routine `json:"routines,omitempty"`

	// Feedback ledgers keyed by goal / pillar identifier.
	GoalFeedback   map[string]*FeedbackStats `json:"goalFeedback,omitempty"`
	PillarFeedback map[string]*FeedbackStats `json:"pillarFeedback,omitempty"`

	Pending           []Suggestion `json:"pending,omitempty"`
	FollowUps         []FollowUp   `json:"followUps,omitempty"`
	Records           []Record     `json:"records,omitempty"`
	RejectionPatterns []string     `json:"rejectionPatterns,omitempty"`

	UpdatedAt time.Time `json:"updatedAt"`
}

// CurrentSchemaVersion is written on every save.
const CurrentSchemaVersion = 1

// NewState returns an empty aggregate for the given day.
func NewState(date string) *State {
	return &State{
		SchemaVersion:  CurrentSchemaVersion,
		Today:          DayPlan{Date: date},
		GoalFeedback:   make(map[string]*FeedbackStats),
		PillarFeedback: make(map[string]*FeedbackStats),
	}
}

// Goal returns a pointer to the goal with the given ID, or nil.
func (s *State) Goal(id string) *Goal {
	for i := range s.Goals {
		if s.Goals[i].ID == id {
			return &s.Goals[i]
		}
	}
	return nil
}

// Pillar returns a pointer to the pillar with the given ID, or nil.
func (s *State) Pillar(id string) *Pillar {
	for i := range s.Pillars {
		if s.Pillars[i].ID == id {
			return &s.Pillars[i]
		}
	}
	return nil
}

// Chain returns a pointer to the chain with the given ID, or nil.
func (s *State) Chain(id string) *Chain {
	for i := range s.Chains {
		if s.Chains[i].ID == id {
			return &s.Chains[i]
		}
	}
	return nil
}

// Block returns a pointer to today's block with the given ID, or nil.
func (s *State) Block(id string) *TimeBlock {
	for i := range s.Today.Blocks {
		if s.Today.Blocks[i].ID == id {
			return &s.Today.Blocks[i]
		}
	}
	return nil
}
