package domain

// FeedbackStats accumulates positive/negative signal for one goal or pillar.
// Counts only grow; they are cleared only when the entity itself is deleted.
type FeedbackStats struct {
	Positive int `json:"positive"`
	Negative int `json:"negative"`

	// ByTag tracks per-tag counts for diagnostics. The aggregate above is
	// what scoring consumes.
	ByTag map[FeedbackTag]int `json:"byTag,omitempty"`
}

// NetScore is (positive − negative) / total, or 0 when there is no signal.
// The result is always within [-1, 1].
func (s FeedbackStats) NetScore() float64 {
	total := s.Positive + s.Negative
	if total == 0 {
		return 0
	}
	return float64(s.Positive-s.Negative) / float64(total)
}
