package domain

import "time"

// Chain is an ordered sequence of time blocks meant to be repeated together.
type Chain struct {
	ID     string      `json:"id"`
	Name   string      `json:"name"`
	Blocks []TimeBlock `json:"blocks"`

	CompletionCount   int         `json:"completionCount"`
	CompletionHistory []time.Time `json:"completionHistory,omitempty"`

	// RoutinePromptShown is set once a promotion fired or was dismissed;
	// a chain is never promoted twice.
	RoutinePromptShown bool `json:"routinePromptShown,omitempty"`

	GoalID   string `json:"goalId,omitempty"`
	PillarID string `json:"pillarId,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Routine is a chain promoted to auto-suggested recurring status.
type Routine struct {
	ID            string         `json:"id"`
	ChainID       string         `json:"chainId"`
	Name          string         `json:"name"`
	AdoptionScore float64        `json:"adoptionScore"` // 0..1
	Rules         []ScheduleRule `json:"rules,omitempty"`
	CreatedAt     time.Time      `json:"createdAt"`
}

// ScheduleRule describes when a routine wants to be scheduled.
type ScheduleRule struct {
	Window  TimeWindow  `json:"window"`
	Cadence CadenceKind `json:"cadence"`
	Trigger string      `json:"trigger,omitempty"`
}
