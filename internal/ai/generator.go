// Package ai produces raw candidate suggestions from an LLM, with a
// deterministic fallback set when the model is unreachable or the call is
// cancelled.
package ai

import (
	"context"
	"time"

	"github.com/avelinek/dayflow/internal/domain"
)

// GenerateContext bundles everything the generator may condition on.
type GenerateContext struct {
	Date           time.Time
	Blocks         []domain.TimeBlock
	Mood           string
	WeatherSummary string
	PillarGuidance []string
}

// Generator proposes candidate suggestions for one scheduling cycle.
type Generator interface {
	// Generate returns raw suggestions. Callers must treat any error as
	// recoverable and substitute the fallback set.
	Generate(ctx context.Context, gc GenerateContext) ([]domain.Suggestion, error)
}
