// Package feedback accumulates accept/reject signal per goal and per pillar
// and exposes the net score the prioritizer consumes.
package feedback

import "github.com/avelinek/dayflow/internal/domain"

// Ledger is a borrowed view over one of the aggregate's feedback maps
// (goal-keyed or pillar-keyed). It is the only writer of those maps; counts
// never decrease and are removed only when the entity itself is deleted.
type Ledger struct {
	stats map[string]*domain.FeedbackStats
}

// NewLedger wraps the given aggregate map. A nil map is replaced with an
// empty one so older saved documents load cleanly.
func NewLedger(stats map[string]*domain.FeedbackStats) *Ledger {
	if stats == nil {
		stats = make(map[string]*domain.FeedbackStats)
	}
	return &Ledger{stats: stats}
}

// Register applies one feedback tag set against an entity. Useful tags
// increment the positive count; every other tag increments the negative
// count. Per-tag counts are kept for diagnostics.
func (l *Ledger) Register(entityID string, tags []domain.FeedbackTag) {
	if entityID == "" || len(tags) == 0 {
		return
	}
	st, ok := l.stats[entityID]
	if !ok {
		st = &domain.FeedbackStats{ByTag: make(map[domain.FeedbackTag]int)}
		l.stats[entityID] = st
	}
	if st.ByTag == nil {
		st.ByTag = make(map[domain.FeedbackTag]int)
	}
	for _, tag := range tags {
		if tag.Positive() {
			st.Positive++
		} else {
			st.Negative++
		}
		st.ByTag[tag]++
	}
}

// NetScore returns (positive − negative) / total for the entity, or 0 when
// no signal has been registered. The result is always within [-1, 1].
func (l *Ledger) NetScore(entityID string) float64 {
	st, ok := l.stats[entityID]
	if !ok {
		return 0
	}
	return st.NetScore()
}

// HasPositiveSignal reports whether the entity's net score is positive.
func (l *Ledger) HasPositiveSignal(entityID string) bool {
	return l.NetScore(entityID) > 0
}

// Stats returns a copy of the entity's accumulator for read-only display.
func (l *Ledger) Stats(entityID string) domain.FeedbackStats {
	if st, ok := l.stats[entityID]; ok {
		return *st
	}
	return domain.FeedbackStats{}
}

// Clear drops the accumulator for a deleted entity.
func (l *Ledger) Clear(entityID string) {
	delete(l.stats, entityID)
}

// Signal snapshots every entity's net score, for building a prioritization
// context.
func (l *Ledger) Signal() map[string]float64 {
	out := make(map[string]float64, len(l.stats))
	for id, st := range l.stats {
		out[id] = st.NetScore()
	}
	return out
}
