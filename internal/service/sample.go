package service

import (
	"time"

	"github.com/avelinek/dayflow/internal/domain"
	"github.com/avelinek/dayflow/internal/graph"
)

// SeedSampleState builds the first-run aggregate: one goal with a seeded
// graph, one pillar, a starter block, and a two-step morning chain.
func SeedSampleState(now time.Time) *domain.State {
	state := domain.NewState(now.Format("2006-01-02"))

	goal := domain.Goal{
		ID:          domain.NewID(),
		Title:       "Improve Health",
		Description: "Build sustainable exercise and sleep habits",
		Status:      domain.GoalOn,
		Importance:  4,
		TaskGroups: []domain.TaskGroup{{
			ID:    domain.NewID(),
			Title: "Getting started",
			Tasks: []domain.Task{
				{ID: domain.NewID(), Title: "Pick a workout schedule"},
				{ID: domain.NewID(), Title: "Set a consistent bedtime"},
			},
		}},
		Graph:     &domain.GoalGraph{},
		CreatedAt: now,
		UpdatedAt: now,
	}
	graph.Seed(goal.Graph, goal.Title, now)
	state.Goals = append(state.Goals, goal)

	state.Pillars = append(state.Pillars, domain.Pillar{
		ID:          domain.NewID(),
		Name:        "Deep Focus",
		Description: "Protect uninterrupted time for demanding work",
		Cadence:     domain.Cadence{Kind: domain.CadenceDaily},
		QuietHours: []domain.TimeWindow{
			{StartMin: 9 * 60, EndMin: 12 * 60},
		},
		Guidance:  "Prefer mornings for high-energy work; keep afternoons lighter.",
		Values:    []string{"focus", "craft"},
		GoalID:    goal.ID,
		CreatedAt: now,
		UpdatedAt: now,
	})

	state.Today.Blocks = append(state.Today.Blocks, domain.TimeBlock{
		ID:        domain.NewID(),
		Title:     "Plan the day",
		Start:     time.Date(now.Year(), now.Month(), now.Day(), 8, 30, 0, 0, now.Location()),
		Duration:  15 * time.Minute,
		Energy:    domain.EnergyLow,
		State:     domain.BlockScheduled,
		Origin:    domain.OriginOnboarding,
		CreatedAt: now,
		UpdatedAt: now,
	})

	state.Chains = append(state.Chains, domain.Chain{
		ID:   domain.NewID(),
		Name: "Morning kickoff",
		Blocks: []domain.TimeBlock{
			{ID: domain.NewID(), Title: "Stretch", Duration: 10 * time.Minute, Energy: domain.EnergyLow},
			{ID: domain.NewID(), Title: "Review priorities", Duration: 15 * time.Minute, Energy: domain.EnergyMedium},
		},
		GoalID:    goal.ID,
		CreatedAt: now,
		UpdatedAt: now,
	})

	state.UpdatedAt = now
	return state
}
