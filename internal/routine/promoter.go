// Package routine tracks chain completion history and promotes a chain to a
// recurring routine once repetitions are frequent and well spaced.
package routine

import (
	"sort"
	"time"

	"github.com/avelinek/dayflow/internal/domain"
)

const (
	// MinCompletions is how many completions a chain needs before promotion.
	MinCompletions = 3

	// MinSpacing rejects rapid double-completions: every consecutive pair of
	// completions must be at least this far apart to count as distinct
	// repetitions.
	MinSpacing = 24 * time.Hour

	// ruleWindowSlack widens the inferred schedule-rule window around the
	// hour of the latest completion, in minutes per side.
	ruleWindowSlack = 60
)

// RecordCompletion appends a completion timestamp and bumps the counter.
func RecordCompletion(c *domain.Chain, at time.Time) {
	c.CompletionHistory = append(c.CompletionHistory, at)
	c.CompletionCount++
	c.UpdatedAt = at
}

// Eligible reports whether the chain qualifies for promotion: at least
// MinCompletions completions, the promotion prompt not yet shown, and every
// consecutive pair in the sorted history separated by at least MinSpacing.
func Eligible(c *domain.Chain) bool {
	if c.RoutinePromptShown || c.CompletionCount < MinCompletions {
		return false
	}
	if len(c.CompletionHistory) < MinCompletions {
		return false
	}
	sorted := make([]time.Time, len(c.CompletionHistory))
	copy(sorted, c.CompletionHistory)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Before(sorted[j]) })
	for i := 1; i < len(sorted); i++ {
		if sorted[i].Sub(sorted[i-1]) < MinSpacing {
			return false
		}
	}
	return true
}

// Promote creates a routine from the chain and marks the chain so it is
// never promoted twice. The seeded schedule rule is a daily window of ±1h
// around the hour of the most recent completion.
func Promote(c *domain.Chain, now time.Time) *domain.Routine {
	c.RoutinePromptShown = true
	c.UpdatedAt = now

	latest := latestCompletion(c)
	center := latest.Hour() * 60
	start := center - ruleWindowSlack
	if start < 0 {
		start = 0
	}
	end := center + ruleWindowSlack
	if end > 24*60 {
		end = 24 * 60
	}

	return &domain.Routine{
		ID:            domain.NewID(),
		ChainID:       c.ID,
		Name:          c.Name,
		AdoptionScore: adoptionScore(c),
		Rules: []domain.ScheduleRule{{
			Window:  domain.TimeWindow{StartMin: start, EndMin: end},
			Cadence: domain.CadenceDaily,
		}},
		CreatedAt: now,
	}
}

// Dismiss declines the promotion without creating a routine. The flag
// semantics match Promote: the chain will not be offered again.
func Dismiss(c *domain.Chain, now time.Time) {
	c.RoutinePromptShown = true
	c.UpdatedAt = now
}

func latestCompletion(c *domain.Chain) time.Time {
	var latest time.Time
	for _, t := range c.CompletionHistory {
		if t.After(latest) {
			latest = t
		}
	}
	return latest
}

// adoptionScore scales with completion count, saturating at 1.0 after ten
// repetitions.
func adoptionScore(c *domain.Chain) float64 {
	score := float64(c.CompletionCount) / 10.0
	if score > 1 {
		score = 1
	}
	return score
}
