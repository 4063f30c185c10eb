package ai

import (
	"time"

	"github.com/avelinek/dayflow/internal/domain"
)

// FallbackSuggestions is the built-in set substituted when generation fails
// or is cancelled. The recommendation list is never left empty.
func FallbackSuggestions(date time.Time) []domain.Suggestion {
	at := func(hour int) time.Time {
		return time.Date(date.Year(), date.Month(), date.Day(), hour, 0, 0, 0, date.Location())
	}

	return []domain.Suggestion{
		{
			ID:         domain.NewID(),
			Title:      "Morning walk",
			Duration:   30 * time.Minute,
			Start:      at(8),
			Energy:     domain.EnergyMedium,
			Confidence: 0.6,
			Weight:     1.0,
			LinkHints:  []string{"health", "exercise"},
			Reason:     "default: light start to the day",
		},
		{
			ID:         domain.NewID(),
			Title:      "Deep work session",
			Duration:   90 * time.Minute,
			Start:      at(10),
			Energy:     domain.EnergyHigh,
			Confidence: 0.7,
			Weight:     1.0,
			LinkHints:  []string{"focus", "work"},
			Reason:     "default: protect your best hours",
		},
		{
			ID:         domain.NewID(),
			Title:      "Midday break",
			Duration:   20 * time.Minute,
			Start:      at(13),
			Energy:     domain.EnergyRestful,
			Confidence: 0.5,
			Weight:     1.0,
			Reason:     "default: recover before the afternoon",
		},
		{
			ID:         domain.NewID(),
			Title:      "Evening review",
			Duration:   15 * time.Minute,
			Start:      at(18),
			Energy:     domain.EnergyLow,
			Confidence: 0.5,
			Weight:     1.0,
			LinkHints:  []string{"reflection"},
			Reason:     "default: close the day deliberately",
		},
	}
}
