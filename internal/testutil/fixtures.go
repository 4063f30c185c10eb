// Package testutil provides fixture builders shared by package tests.
package testutil

import (
	"time"

	"github.com/avelinek/dayflow/internal/domain"
	"github.com/google/uuid"
)

// Day returns a fixed reference morning so tests are deterministic.
func Day() time.Time {
	return time.Date(2026, time.March, 9, 8, 0, 0, 0, time.UTC)
}

// Block options
type BlockOption func(*domain.TimeBlock)

func WithBlockID(id string) BlockOption {
	return func(b *domain.TimeBlock) { b.ID = id }
}

func WithStart(t time.Time) BlockOption {
	return func(b *domain.TimeBlock) { b.Start = t }
}

func WithDuration(d time.Duration) BlockOption {
	return func(b *domain.TimeBlock) { b.Duration = d }
}

func WithState(s domain.ConfirmState) BlockOption {
	return func(b *domain.TimeBlock) { b.State = s }
}

func WithOrigin(o domain.BlockOrigin) BlockOption {
	return func(b *domain.TimeBlock) { b.Origin = o }
}

func WithEnergy(e domain.EnergyLevel) BlockOption {
	return func(b *domain.TimeBlock) { b.Energy = e }
}

func WithLinks(goalID, pillarID string) BlockOption {
	return func(b *domain.TimeBlock) {
		b.GoalID = goalID
		b.PillarID = pillarID
	}
}

func NewTestBlock(title string, opts ...BlockOption) domain.TimeBlock {
	now := Day()
	b := domain.TimeBlock{
		ID:        uuid.New().String(),
		Title:     title,
		Start:     now.Add(time.Hour),
		Duration:  30 * time.Minute,
		Energy:    domain.EnergyMedium,
		State:     domain.BlockScheduled,
		Origin:    domain.OriginManual,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(&b)
	}
	return b
}

// Suggestion options
type SuggestionOption func(*domain.Suggestion)

func WithSuggestionID(id string) SuggestionOption {
	return func(s *domain.Suggestion) { s.ID = id }
}

func WithConfidence(c float64) SuggestionOption {
	return func(s *domain.Suggestion) { s.Confidence = c }
}

func WithLinkHints(hints ...string) SuggestionOption {
	return func(s *domain.Suggestion) { s.LinkHints = hints }
}

func WithGoalLink(id, title string) SuggestionOption {
	return func(s *domain.Suggestion) {
		s.GoalID = id
		s.GoalTitle = title
	}
}

func WithPillarLink(id, title string) SuggestionOption {
	return func(s *domain.Suggestion) {
		s.PillarID = id
		s.PillarTitle = title
	}
}

func WithProposedStart(t time.Time) SuggestionOption {
	return func(s *domain.Suggestion) { s.Start = t }
}

func NewTestSuggestion(title string, opts ...SuggestionOption) domain.Suggestion {
	s := domain.Suggestion{
		ID:         uuid.New().String(),
		Title:      title,
		Duration:   30 * time.Minute,
		Start:      Day().Add(2 * time.Hour),
		Energy:     domain.EnergyMedium,
		Confidence: 1.0,
		Weight:     1.0,
	}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// Goal options
type GoalOption func(*domain.Goal)

func WithGoalID(id string) GoalOption {
	return func(g *domain.Goal) { g.ID = id }
}

func WithPinned() GoalOption {
	return func(g *domain.Goal) { g.Pinned = true }
}

func WithTasks(titles ...string) GoalOption {
	return func(g *domain.Goal) {
		tg := domain.TaskGroup{ID: uuid.New().String(), Title: "Tasks"}
		for _, t := range titles {
			tg.Tasks = append(tg.Tasks, domain.Task{ID: uuid.New().String(), Title: t})
		}
		g.TaskGroups = append(g.TaskGroups, tg)
	}
}

func NewTestGoal(title string, opts ...GoalOption) domain.Goal {
	now := Day()
	g := domain.Goal{
		ID:         uuid.New().String(),
		Title:      title,
		Status:     domain.GoalOn,
		Importance: 3,
		Graph:      &domain.GoalGraph{},
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	for _, opt := range opts {
		opt(&g)
	}
	return g
}

// Pillar options
type PillarOption func(*domain.Pillar)

func WithPillarID(id string) PillarOption {
	return func(p *domain.Pillar) { p.ID = id }
}

func WithEmphasis() PillarOption {
	return func(p *domain.Pillar) { p.Emphasized = true }
}

func WithQuietHours(windows ...domain.TimeWindow) PillarOption {
	return func(p *domain.Pillar) { p.QuietHours = windows }
}

func NewTestPillar(name string, opts ...PillarOption) domain.Pillar {
	now := Day()
	p := domain.Pillar{
		ID:        uuid.New().String(),
		Name:      name,
		Cadence:   domain.Cadence{Kind: domain.CadenceDaily},
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(&p)
	}
	return p
}

// Chain options
type ChainOption func(*domain.Chain)

func WithChainID(id string) ChainOption {
	return func(c *domain.Chain) { c.ID = id }
}

func WithCompletions(at ...time.Time) ChainOption {
	return func(c *domain.Chain) {
		c.CompletionHistory = append(c.CompletionHistory, at...)
		c.CompletionCount = len(c.CompletionHistory)
	}
}

func NewTestChain(name string, blockTitles []string, opts ...ChainOption) domain.Chain {
	now := Day()
	c := domain.Chain{
		ID:        uuid.New().String(),
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, title := range blockTitles {
		c.Blocks = append(c.Blocks, NewTestBlock(title))
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// NewTestState builds an aggregate for the reference day with the given
// goals and pillars installed.
func NewTestState(goals []domain.Goal, pillars []domain.Pillar) *domain.State {
	s := domain.NewState(Day().Format("2006-01-02"))
	s.Goals = goals
	s.Pillars = pillars
	return s
}
