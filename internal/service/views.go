package service

import (
	"time"

	"github.com/avelinek/dayflow/internal/domain"
	"github.com/avelinek/dayflow/internal/resolver"
	"github.com/avelinek/dayflow/internal/scheduler"
)

// Read-only views handed to the presentation layer. Every view returns a
// copy; callers never see the live aggregate.

// TodayBlocks returns today's blocks in schedule order.
func (gw *Gateway) TodayBlocks() []domain.TimeBlock {
	gw.mu.Lock()
	defer gw.mu.Unlock()

	out := make([]domain.TimeBlock, len(gw.state.Today.Blocks))
	copy(out, gw.state.Today.Blocks)
	return out
}

// PendingSuggestions returns the current ranked suggestion list.
func (gw *Gateway) PendingSuggestions() []domain.Suggestion {
	gw.mu.Lock()
	defer gw.mu.Unlock()

	out := make([]domain.Suggestion, len(gw.state.Pending))
	copy(out, gw.state.Pending)
	return out
}

// Goals returns all goals.
func (gw *Gateway) Goals() []domain.Goal {
	gw.mu.Lock()
	defer gw.mu.Unlock()

	out := make([]domain.Goal, len(gw.state.Goals))
	copy(out, gw.state.Goals)
	return out
}

// Pillars returns all pillars.
func (gw *Gateway) Pillars() []domain.Pillar {
	gw.mu.Lock()
	defer gw.mu.Unlock()

	out := make([]domain.Pillar, len(gw.state.Pillars))
	copy(out, gw.state.Pillars)
	return out
}

// Chains returns all chains.
func (gw *Gateway) Chains() []domain.Chain {
	gw.mu.Lock()
	defer gw.mu.Unlock()

	out := make([]domain.Chain, len(gw.state.Chains))
	copy(out, gw.state.Chains)
	return out
}

// Routines returns all promoted routines.
func (gw *Gateway) Routines() []domain.Routine {
	gw.mu.Lock()
	defer gw.mu.Unlock()

	out := make([]domain.Routine, len(gw.state.Routines))
	copy(out, gw.state.Routines)
	return out
}

// FollowUps returns the pending follow-up items.
func (gw *Gateway) FollowUps() []domain.FollowUp {
	gw.mu.Lock()
	defer gw.mu.Unlock()

	out := make([]domain.FollowUp, len(gw.state.FollowUps))
	copy(out, gw.state.FollowUps)
	return out
}

// Records returns the confirmation audit log.
func (gw *Gateway) Records() []domain.Record {
	gw.mu.Lock()
	defer gw.mu.Unlock()

	out := make([]domain.Record, len(gw.state.Records))
	copy(out, gw.state.Records)
	return out
}

// GoalFeedbackStats returns the accumulator rendered as a boost badge.
func (gw *Gateway) GoalFeedbackStats(goalID string) domain.FeedbackStats {
	gw.mu.Lock()
	defer gw.mu.Unlock()
	return gw.goalLedger.Stats(goalID)
}

// PillarFeedbackStats returns the accumulator rendered as a boost badge.
func (gw *Gateway) PillarFeedbackStats(pillarID string) domain.FeedbackStats {
	gw.mu.Lock()
	defer gw.mu.Unlock()
	return gw.pillarLedger.Stats(pillarID)
}

// Diagnostics returns the ambiguity diagnostics emitted so far.
func (gw *Gateway) Diagnostics() []resolver.Diagnostic {
	gw.mu.Lock()
	defer gw.mu.Unlock()

	out := make([]resolver.Diagnostic, len(gw.diagnostics))
	copy(out, gw.diagnostics)
	return out
}

// OpenSlots returns today's free gaps of at least minDuration between the
// reference time and end of day.
func (gw *Gateway) OpenSlots(now time.Time, minDuration time.Duration) []scheduler.Interval {
	gw.mu.Lock()
	defer gw.mu.Unlock()

	endOfDay := time.Date(now.Year(), now.Month(), now.Day(), 23, 59, 0, 0, now.Location())
	busy := scheduler.BusyIntervals(gw.state.Today.Blocks)

	var out []scheduler.Interval
	for _, gap := range scheduler.FreeGaps(busy, scheduler.Interval{Start: now, End: endOfDay}) {
		if gap.Duration() >= minDuration {
			out = append(out, gap)
		}
	}
	return out
}
