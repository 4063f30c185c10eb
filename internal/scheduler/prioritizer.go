package scheduler

import (
	"fmt"
	"sort"

	"github.com/avelinek/dayflow/internal/domain"
)

// BoostWeights holds the configurable boost magnitudes applied on top of a
// suggestion's base weight before the confidence multiplier.
type BoostWeights struct {
	Pin      float64
	Pillar   float64
	Feedback float64
}

// DefaultBoostWeights returns the standard boost configuration.
func DefaultBoostWeights() BoostWeights {
	return BoostWeights{
		Pin:      0.25,
		Pillar:   0.15,
		Feedback: 0.10,
	}
}

// reasonTitleBudget caps titles embedded in boost fragments.
const reasonTitleBudget = 18

// PrioritizeContext carries the pin/emphasis state and feedback signal the
// prioritizer reads. Feedback must already reflect every registration from
// the current cycle: resolution strictly precedes prioritization.
type PrioritizeContext struct {
	PinnedGoals       map[string]bool
	EmphasizedPillars map[string]bool
	GoalTitles        map[string]string
	PillarTitles      map[string]string
	GoalSignal        map[string]float64 // net scores, -1..1
	PillarSignal      map[string]float64
	Weights           BoostWeights
}

// Prioritize rewrites each suggestion's weight to its final score, appends
// human-readable boost fragments to the reason text, and returns the list
// sorted descending by score. Ties keep their input order.
func Prioritize(suggestions []domain.Suggestion, pctx PrioritizeContext) []domain.Suggestion {
	out := make([]domain.Suggestion, len(suggestions))
	copy(out, suggestions)

	for i := range out {
		scoreSuggestion(&out[i], pctx)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Weight > out[j].Weight
	})
	return out
}

func scoreSuggestion(s *domain.Suggestion, pctx PrioritizeContext) {
	var totalBoost float64

	if s.GoalID != "" && pctx.PinnedGoals[s.GoalID] {
		totalBoost += pctx.Weights.Pin
		s.AppendReason("↑ pinned: " + domain.ShortTitle(pctx.GoalTitles[s.GoalID], reasonTitleBudget))
	}

	if s.PillarID != "" && pctx.EmphasizedPillars[s.PillarID] {
		totalBoost += pctx.Weights.Pillar
		s.AppendReason("↑ pillar: " + domain.ShortTitle(pctx.PillarTitles[s.PillarID], reasonTitleBudget))
	}

	if boost, labels := feedbackBoost(s, pctx); boost > 0 {
		totalBoost += boost
		s.AppendReason("↑ feedback: " + labels)
	}

	s.Weight = (s.Weight + totalBoost) * s.Confidence
}

// feedbackBoost averages the positive net scores of the suggestion's resolved
// goal and pillar, clamped to [0,1]. Entities without positive signal do not
// participate; with no positive signal at all the boost is zero.
func feedbackBoost(s *domain.Suggestion, pctx PrioritizeContext) (float64, string) {
	var sum float64
	var n int
	var labels string

	if s.GoalID != "" {
		if score := clamp01(pctx.GoalSignal[s.GoalID]); score > 0 {
			sum += score
			n++
			labels = fmt.Sprintf("goal %s", domain.ShortTitle(pctx.GoalTitles[s.GoalID], reasonTitleBudget))
		}
	}
	if s.PillarID != "" {
		if score := clamp01(pctx.PillarSignal[s.PillarID]); score > 0 {
			sum += score
			n++
			label := fmt.Sprintf("pillar %s", domain.ShortTitle(pctx.PillarTitles[s.PillarID], reasonTitleBudget))
			if labels != "" {
				labels += ", " + label
			} else {
				labels = label
			}
		}
	}
	if n == 0 {
		return 0, ""
	}
	return pctx.Weights.Feedback * (sum / float64(n)), labels
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
