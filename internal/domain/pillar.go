package domain

import "time"

// Cadence describes how often a pillar wants attention.
type Cadence struct {
	Kind          CadenceKind `json:"kind"`
	TimesPerCycle int         `json:"timesPerCycle,omitempty"` // weekly/monthly only
}

// TimeWindow is a preferred time-of-day window, minutes from midnight.
// Windows are half-open: a block ending exactly at StartMin does not overlap.
type TimeWindow struct {
	StartMin int `json:"startMin"`
	EndMin   int `json:"endMin"`
}

// Pillar is a recurring principle guiding recommendations. Pillars never
// create time blocks themselves; they bias scoring and supply guidance text.
type Pillar struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description,omitempty"`
	Cadence     Cadence      `json:"cadence"`
	QuietHours  []TimeWindow `json:"quietHours,omitempty"`
	Guidance    string       `json:"guidance,omitempty"`

	Values      []string `json:"values,omitempty"`
	Habits      []string `json:"habits,omitempty"`
	Constraints []string `json:"constraints,omitempty"`

	GoalID     string `json:"goalId,omitempty"`
	Emphasized bool   `json:"emphasized,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
