package domain

import (
	"strings"
	"time"
)

// Suggestion is a candidate activity proposed by the AI generator. It lives
// for one scheduling cycle: accepted suggestions become TimeBlocks, rejected
// ones are discarded after feedback is registered.
type Suggestion struct {
	ID         string        `json:"id"`
	Title      string        `json:"title"`
	Duration   time.Duration `json:"duration"`
	Start      time.Time     `json:"start"`
	Energy     EnergyLevel   `json:"energy"`
	Confidence float64       `json:"confidence"` // 0..1, from the generator

	// Weight is the recommender score, rewritten by prioritization.
	Weight float64 `json:"weight,omitempty"`

	// LinkHints are loose textual references the resolver matches against
	// goal and pillar titles/descriptions.
	LinkHints []string `json:"linkHints,omitempty"`

	GoalID      string `json:"goalId,omitempty"`
	GoalTitle   string `json:"goalTitle,omitempty"`
	PillarID    string `json:"pillarId,omitempty"`
	PillarTitle string `json:"pillarTitle,omitempty"`

	// Reason is human-readable justification, built incrementally by the
	// resolver and prioritizer.
	Reason string `json:"reason,omitempty"`
}

// AppendReason adds a fragment to the reason text, idempotently: a fragment
// already present is not duplicated.
func (s *Suggestion) AppendReason(fragment string) {
	if fragment == "" || strings.Contains(s.Reason, fragment) {
		return
	}
	if s.Reason == "" {
		s.Reason = fragment
		return
	}
	s.Reason += ReasonSeparator + fragment
}

// ReasonSeparator joins reason fragments in display text.
const ReasonSeparator = " · "
