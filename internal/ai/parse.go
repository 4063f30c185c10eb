package ai

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/avelinek/dayflow/internal/domain"
)

// suggestionPayload mirrors the JSON shape the model is instructed to emit.
type suggestionPayload struct {
	Title       string   `json:"title"`
	DurationMin int      `json:"durationMin"`
	StartHour   int      `json:"startHour"`
	StartMinute int      `json:"startMinute"`
	Energy      string   `json:"energy"`
	Confidence  float64  `json:"confidence"`
	LinkHints   []string `json:"linkHints"`
	Reason      string   `json:"reason"`
}

// ParseSuggestions extracts a suggestion list from raw model output. The
// model sometimes wraps the array in prose or fencing, so parsing starts at
// the first '[' and ends at the matching last ']'.
func ParseSuggestions(raw string, date time.Time) ([]domain.Suggestion, error) {
	start := strings.Index(raw, "[")
	end := strings.LastIndex(raw, "]")
	if start < 0 || end <= start {
		return nil, fmt.Errorf("%w: no JSON array in output", ErrInvalidOutput)
	}

	var payloads []suggestionPayload
	if err := json.Unmarshal([]byte(raw[start:end+1]), &payloads); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidOutput, err)
	}
	if len(payloads) == 0 {
		return nil, fmt.Errorf("%w: empty suggestion array", ErrInvalidOutput)
	}

	suggestions := make([]domain.Suggestion, 0, len(payloads))
	for _, p := range payloads {
		if strings.TrimSpace(p.Title) == "" || p.DurationMin <= 0 {
			continue // skip malformed entries rather than failing the batch
		}
		energy := domain.EnergyMedium
		if domain.ValidEnergyLevels[p.Energy] {
			energy = domain.EnergyLevel(p.Energy)
		}
		confidence := p.Confidence
		if confidence <= 0 || confidence > 1 {
			confidence = 0.5
		}
		start := time.Date(date.Year(), date.Month(), date.Day(),
			clampInt(p.StartHour, 0, 23), clampInt(p.StartMinute, 0, 59), 0, 0, date.Location())

		suggestions = append(suggestions, domain.Suggestion{
			ID:         domain.NewID(),
			Title:      strings.TrimSpace(p.Title),
			Duration:   time.Duration(p.DurationMin) * time.Minute,
			Start:      start,
			Energy:     energy,
			Confidence: confidence,
			Weight:     1.0,
			LinkHints:  p.LinkHints,
			Reason:     p.Reason,
		})
	}
	if len(suggestions) == 0 {
		return nil, fmt.Errorf("%w: no usable entries", ErrInvalidOutput)
	}
	return suggestions, nil
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
