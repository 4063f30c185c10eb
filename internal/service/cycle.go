package service

import (
	"context"
	"time"

	"github.com/avelinek/dayflow/internal/ai"
	"github.com/avelinek/dayflow/internal/domain"
	"github.com/avelinek/dayflow/internal/scheduler"
)

// Planner runs one scheduling cycle: generation, resolution, prioritization.
type Planner struct {
	gateway   *Gateway
	generator ai.Generator
}

// NewPlanner wires a planner. generator may be nil, in which case every
// cycle serves the built-in fallback set.
func NewPlanner(gateway *Gateway, generator ai.Generator) *Planner {
	return &Planner{gateway: gateway, generator: generator}
}

// CycleInput carries the per-cycle context the generator conditions on.
type CycleInput struct {
	Now            time.Time
	Mood           string
	WeatherSummary string
}

// RunCycle generates raw suggestions (substituting the fallback set when the
// generator fails or the call is cancelled), resolves goal and pillar links,
// and prioritizes. The ranked list replaces the pending suggestions.
func (p *Planner) RunCycle(ctx context.Context, in CycleInput) []domain.Suggestion {
	gc := ai.GenerateContext{
		Date:           in.Now,
		Blocks:         p.gateway.TodayBlocks(),
		Mood:           in.Mood,
		WeatherSummary: in.WeatherSummary,
		PillarGuidance: p.gateway.pillarGuidance(),
	}

	var raw []domain.Suggestion
	if p.generator != nil {
		if generated, err := p.generator.Generate(ctx, gc); err == nil {
			raw = generated
		}
	}
	if len(raw) == 0 {
		raw = ai.FallbackSuggestions(in.Now)
	}

	return p.gateway.IngestSuggestions(raw)
}

func (gw *Gateway) pillarGuidance() []string {
	gw.mu.Lock()
	defer gw.mu.Unlock()

	var out []string
	for i := range gw.state.Pillars {
		if g := gw.state.Pillars[i].Guidance; g != "" {
			out = append(out, g)
		}
	}
	return out
}

// IngestSuggestions runs the resolution and prioritization phases over raw
// suggestions and installs the ranked result as the pending list. Resolution
// strictly precedes prioritization: the prioritizer reads feedback signal
// and link identifiers only after every suggestion has been resolved.
func (gw *Gateway) IngestSuggestions(raw []domain.Suggestion) []domain.Suggestion {
	gw.mu.Lock()
	defer gw.mu.Unlock()

	gw.resolver.BeginPass()
	for i := range raw {
		gw.resolver.ResolveGoal(&raw[i], gw.state.Goals)
		gw.resolver.ResolvePillar(&raw[i], gw.state.Pillars)
	}

	ranked := scheduler.Prioritize(raw, gw.prioritizeContextLocked())
	gw.state.Pending = ranked
	gw.persist()

	out := make([]domain.Suggestion, len(ranked))
	copy(out, ranked)
	return out
}

func (gw *Gateway) prioritizeContextLocked() scheduler.PrioritizeContext {
	pctx := scheduler.PrioritizeContext{
		PinnedGoals:       make(map[string]bool),
		EmphasizedPillars: make(map[string]bool),
		GoalTitles:        make(map[string]string),
		PillarTitles:      make(map[string]string),
		GoalSignal:        gw.goalLedger.Signal(),
		PillarSignal:      gw.pillarLedger.Signal(),
		Weights:           gw.boosts,
	}
	for i := range gw.state.Goals {
		g := &gw.state.Goals[i]
		pctx.GoalTitles[g.ID] = g.Title
		if g.Pinned {
			pctx.PinnedGoals[g.ID] = true
		}
	}
	for i := range gw.state.Pillars {
		p := &gw.state.Pillars[i]
		pctx.PillarTitles[p.ID] = p.Name
		if p.Emphasized {
			pctx.EmphasizedPillars[p.ID] = true
		}
	}
	return pctx
}
