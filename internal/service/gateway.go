package service

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/avelinek/dayflow/internal/calendar"
	"github.com/avelinek/dayflow/internal/domain"
	"github.com/avelinek/dayflow/internal/feedback"
	"github.com/avelinek/dayflow/internal/graph"
	"github.com/avelinek/dayflow/internal/resolver"
	"github.com/avelinek/dayflow/internal/routine"
	"github.com/avelinek/dayflow/internal/scheduler"
)

// chainBlockBuffer separates consecutive blocks instantiated from a chain.
const chainBlockBuffer = 5 * time.Minute

// confirmUndoWindow bounds how long after confirmation an undo is accepted.
const confirmUndoWindow = 24 * time.Hour

// acceptSearchHorizon bounds the open-slot search when an accepted
// suggestion's proposed start is already occupied.
const acceptSearchHorizon = 3 * 24 * time.Hour

// Saver receives snapshots of the aggregate for durable persistence.
type Saver interface {
	RequestSave(state *domain.State)
}

// noopSaver is used when no persistence is wired (tests).
type noopSaver struct{}

func (noopSaver) RequestSave(*domain.State) {}

// Gateway is the single writer of the aggregate state. Every mutation locks
// the gateway, so the in-memory model needs no finer-grained locking; all
// other components receive copies or operate on borrowed views inside the
// lock.
type Gateway struct {
	mu    sync.Mutex
	state *domain.State

	goalLedger   *feedback.Ledger
	pillarLedger *feedback.Ledger
	resolver     *resolver.Resolver
	diagnostics  []resolver.Diagnostic

	boosts scheduler.BoostWeights
	saver  Saver
}

// NewGateway wraps the aggregate. saver may be nil.
func NewGateway(state *domain.State, saver Saver) *Gateway {
	if saver == nil {
		saver = noopSaver{}
	}
	if state.GoalFeedback == nil {
		state.GoalFeedback = make(map[string]*domain.FeedbackStats)
	}
	if state.PillarFeedback == nil {
		state.PillarFeedback = make(map[string]*domain.FeedbackStats)
	}
	gw := &Gateway{
		state:        state,
		goalLedger:   feedback.NewLedger(state.GoalFeedback),
		pillarLedger: feedback.NewLedger(state.PillarFeedback),
		boosts:       scheduler.DefaultBoostWeights(),
		saver:        saver,
	}
	gw.resolver = resolver.New(func(d resolver.Diagnostic) {
		gw.diagnostics = append(gw.diagnostics, d)
	})
	return gw
}

func (gw *Gateway) persist() {
	gw.state.UpdatedAt = time.Now().UTC()
	gw.saver.RequestSave(gw.state)
}

// --- Block mutations ---

// AddBlock validates and appends a block to today's schedule, returning its
// identifier.
func (gw *Gateway) AddBlock(b domain.TimeBlock, now time.Time) (string, error) {
	if err := b.Validate(); err != nil {
		return "", mutationErr(ErrInvalidInput, "%v", err)
	}

	gw.mu.Lock()
	defer gw.mu.Unlock()

	if b.ID == "" {
		b.ID = domain.NewID()
	}
	if b.State == "" {
		b.State = domain.BlockScheduled
	}
	if b.Origin == "" {
		b.Origin = domain.OriginManual
	}
	if b.Energy == "" {
		b.Energy = domain.EnergyMedium
	}
	b.CreatedAt = now
	b.UpdatedAt = now

	gw.state.Today.Blocks = append(gw.state.Today.Blocks, b)
	gw.persist()
	return b.ID, nil
}

// MoveBlock changes a block's start time.
func (gw *Gateway) MoveBlock(id string, newStart time.Time, now time.Time) error {
	gw.mu.Lock()
	defer gw.mu.Unlock()

	b := gw.state.Block(id)
	if b == nil {
		return mutationErr(ErrBlockNotFound, "block %s", id)
	}
	b.Start = newStart
	b.UpdatedAt = now
	gw.persist()
	return nil
}

// ResizeBlock changes a block's duration. Non-positive durations are
// rejected and the block is untouched.
func (gw *Gateway) ResizeBlock(id string, d time.Duration, now time.Time) error {
	if d <= 0 {
		return mutationErr(ErrInvalidInput, "%v", domain.ErrNonPositiveDuration)
	}

	gw.mu.Lock()
	defer gw.mu.Unlock()

	b := gw.state.Block(id)
	if b == nil {
		return mutationErr(ErrBlockNotFound, "block %s", id)
	}
	b.Duration = d
	b.UpdatedAt = now
	gw.persist()
	return nil
}

// RemoveBlock deletes a block from today's schedule.
func (gw *Gateway) RemoveBlock(id string) error {
	gw.mu.Lock()
	defer gw.mu.Unlock()

	if !gw.removeBlockLocked(id) {
		return mutationErr(ErrBlockNotFound, "block %s", id)
	}
	gw.persist()
	return nil
}

func (gw *Gateway) removeBlockLocked(id string) bool {
	blocks := gw.state.Today.Blocks
	for i := range blocks {
		if blocks[i].ID == id {
			gw.state.Today.Blocks = append(blocks[:i], blocks[i+1:]...)
			return true
		}
	}
	return false
}

// --- Confirmation state machine ---

// SweepResult counts the transitions one sweep applied.
type SweepResult struct {
	ToUnconfirmed int
	ToScheduled   int
}

// Sweep applies the time-based confirmation transitions relative to the
// reference time: scheduled blocks whose end has passed become unconfirmed;
// unconfirmed blocks whose start moved back into the future revert to
// scheduled. Confirmed blocks are never touched by the sweep.
func (gw *Gateway) Sweep(now time.Time) SweepResult {
	gw.mu.Lock()
	defer gw.mu.Unlock()

	var res SweepResult
	for i := range gw.state.Today.Blocks {
		b := &gw.state.Today.Blocks[i]
		switch b.State {
		case domain.BlockScheduled:
			if !b.End().After(now) {
				b.State = domain.BlockUnconfirmed
				b.UpdatedAt = now
				res.ToUnconfirmed++
			}
		case domain.BlockUnconfirmed:
			if b.Start.After(now) {
				b.State = domain.BlockScheduled
				b.UpdatedAt = now
				res.ToScheduled++
			}
		}
	}
	if res.ToUnconfirmed+res.ToScheduled > 0 {
		gw.persist()
	}
	return res
}

// Confirm marks a block confirmed, appends exactly one audit record, and
// drops any follow-up referencing the block.
func (gw *Gateway) Confirm(id string, now time.Time) error {
	gw.mu.Lock()
	defer gw.mu.Unlock()

	b := gw.state.Block(id)
	if b == nil {
		return mutationErr(ErrBlockNotFound, "block %s", id)
	}
	if b.State == domain.BlockConfirmed {
		return nil // already confirmed, idempotent
	}

	confirmedAt := now
	b.State = domain.BlockConfirmed
	b.ConfirmedAt = &confirmedAt
	b.UpdatedAt = now

	gw.state.Records = append(gw.state.Records, domain.Record{
		ID:          domain.NewID(),
		BlockID:     b.ID,
		Title:       b.Title,
		Start:       b.Start,
		Duration:    b.Duration,
		Energy:      b.Energy,
		GoalID:      b.GoalID,
		PillarID:    b.PillarID,
		ConfirmedAt: confirmedAt,
	})
	gw.removeFollowUpsLocked(b.ID)
	gw.persist()
	return nil
}

// UndoConfirm reverts a confirmation within the undo window, removing the
// record that confirmation appended.
func (gw *Gateway) UndoConfirm(id string, now time.Time) error {
	gw.mu.Lock()
	defer gw.mu.Unlock()

	b := gw.state.Block(id)
	if b == nil {
		return mutationErr(ErrBlockNotFound, "block %s", id)
	}
	if b.State != domain.BlockConfirmed || b.ConfirmedAt == nil {
		return mutationErr(ErrNotConfirmed, "block %s is not confirmed", id)
	}
	if now.Sub(*b.ConfirmedAt) > confirmUndoWindow {
		return mutationErr(ErrUndoExpired, "confirmation of %s is older than %s", id, confirmUndoWindow)
	}

	confirmedAt := *b.ConfirmedAt
	b.State = domain.BlockUnconfirmed
	b.ConfirmedAt = nil
	b.UpdatedAt = now

	records := gw.state.Records
	for i := len(records) - 1; i >= 0; i-- {
		if records[i].BlockID == id && records[i].ConfirmedAt.Equal(confirmedAt) {
			gw.state.Records = append(records[:i], records[i+1:]...)
			break
		}
	}
	gw.persist()
	return nil
}

// Requeue declines to confirm a block: the block leaves the active schedule
// and a follow-up to-do carries a snapshot of its original timing.
func (gw *Gateway) Requeue(id string, now time.Time) error {
	gw.mu.Lock()
	defer gw.mu.Unlock()

	b := gw.state.Block(id)
	if b == nil {
		return mutationErr(ErrBlockNotFound, "block %s", id)
	}

	gw.state.FollowUps = append(gw.state.FollowUps, domain.FollowUp{
		ID:        domain.NewID(),
		BlockID:   b.ID,
		Title:     b.Title,
		Start:     b.Start,
		Duration:  b.Duration,
		Energy:    b.Energy,
		Notes:     b.Notes,
		CreatedAt: now,
	})
	gw.removeBlockLocked(id)
	gw.persist()
	return nil
}

func (gw *Gateway) removeFollowUpsLocked(blockID string) {
	kept := gw.state.FollowUps[:0]
	for _, f := range gw.state.FollowUps {
		if f.BlockID != blockID {
			kept = append(kept, f)
		}
	}
	gw.state.FollowUps = kept
}

// --- Suggestion decisions ---

// AcceptSuggestion converts a pending suggestion into a time block, placing
// it at the proposed start when free or the next open slot after it, and
// registers positive feedback against the resolved goal and pillar.
func (gw *Gateway) AcceptSuggestion(id string, now time.Time) (string, error) {
	gw.mu.Lock()
	defer gw.mu.Unlock()

	idx := gw.pendingIndexLocked(id)
	if idx < 0 {
		return "", mutationErr(ErrSuggestionNotFound, "suggestion %s", id)
	}
	s := gw.state.Pending[idx]

	if strings.TrimSpace(s.Title) == "" || s.Duration <= 0 {
		return "", mutationErr(ErrInvalidInput, "suggestion %s has no usable title or duration", id)
	}

	start := gw.placeLocked(s.Start, s.Duration)

	block := domain.TimeBlock{
		ID:           domain.NewID(),
		Title:        s.Title,
		Start:        start,
		Duration:     s.Duration,
		Energy:       s.Energy,
		GoalID:       s.GoalID,
		GoalTitle:    s.GoalTitle,
		PillarID:     s.PillarID,
		PillarTitle:  s.PillarTitle,
		SuggestionID: s.ID,
		State:        domain.BlockScheduled,
		Origin:       domain.OriginSuggestion,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	gw.state.Today.Blocks = append(gw.state.Today.Blocks, block)

	if s.GoalID != "" {
		gw.goalLedger.Register(s.GoalID, []domain.FeedbackTag{domain.TagUseful})
	}
	if s.PillarID != "" {
		gw.pillarLedger.Register(s.PillarID, []domain.FeedbackTag{domain.TagUseful})
	}

	gw.state.Pending = append(gw.state.Pending[:idx], gw.state.Pending[idx+1:]...)
	gw.persist()
	return block.ID, nil
}

// RejectSuggestion registers negative feedback and records a rejection
// pattern for future biasing, then discards the suggestion.
func (gw *Gateway) RejectSuggestion(id string, tags []domain.FeedbackTag, now time.Time) error {
	gw.mu.Lock()
	defer gw.mu.Unlock()

	idx := gw.pendingIndexLocked(id)
	if idx < 0 {
		return mutationErr(ErrSuggestionNotFound, "suggestion %s", id)
	}
	s := gw.state.Pending[idx]

	if len(tags) == 0 {
		tags = []domain.FeedbackTag{domain.TagNotRelevant}
	}
	if s.GoalID != "" {
		gw.goalLedger.Register(s.GoalID, tags)
	}
	if s.PillarID != "" {
		gw.pillarLedger.Register(s.PillarID, tags)
	}

	pattern := fmt.Sprintf("%s|%s|%02d", strings.ToLower(s.Title), s.Energy, s.Start.Hour())
	gw.state.RejectionPatterns = append(gw.state.RejectionPatterns, pattern)

	gw.state.Pending = append(gw.state.Pending[:idx], gw.state.Pending[idx+1:]...)
	gw.persist()
	return nil
}

func (gw *Gateway) pendingIndexLocked(id string) int {
	for i := range gw.state.Pending {
		if gw.state.Pending[i].ID == id {
			return i
		}
	}
	return -1
}

// placeLocked returns the proposed start when the slot is free, otherwise
// the start of the next gap that fits within the search horizon, otherwise
// the proposal unchanged.
func (gw *Gateway) placeLocked(proposed time.Time, d time.Duration) time.Time {
	busy := scheduler.BusyIntervals(gw.state.Today.Blocks)
	horizon := proposed.Add(acceptSearchHorizon)
	if start, ok := scheduler.NextOpenSlot(busy, proposed, d, horizon); ok {
		return start
	}
	return proposed
}

// --- Chains and routines ---

// ApplyChain instantiates one block per chain entry in immediate sequence
// with a fixed buffer between them, then runs the routine-promotion check.
func (gw *Gateway) ApplyChain(chainID string, startAt, now time.Time) ([]string, error) {
	gw.mu.Lock()
	defer gw.mu.Unlock()

	c := gw.state.Chain(chainID)
	if c == nil {
		return nil, mutationErr(ErrChainNotFound, "chain %s", chainID)
	}
	if len(c.Blocks) == 0 {
		return nil, mutationErr(ErrInvalidInput, "chain %s has no blocks", chainID)
	}

	ids := make([]string, 0, len(c.Blocks))
	cursor := startAt
	for i := range c.Blocks {
		entry := c.Blocks[i]
		block := domain.TimeBlock{
			ID:        domain.NewID(),
			Title:     entry.Title,
			Start:     cursor,
			Duration:  entry.Duration,
			Energy:    entry.Energy,
			GoalID:    c.GoalID,
			PillarID:  c.PillarID,
			State:     domain.BlockScheduled,
			Origin:    domain.OriginChain,
			CreatedAt: now,
			UpdatedAt: now,
		}
		gw.state.Today.Blocks = append(gw.state.Today.Blocks, block)
		ids = append(ids, block.ID)
		cursor = block.End().Add(chainBlockBuffer)
	}

	gw.promoteIfEligibleLocked(c, now)
	gw.persist()
	return ids, nil
}

// CompleteChain records a completion and runs the promotion check. The
// returned routine is non-nil when this completion triggered promotion.
func (gw *Gateway) CompleteChain(chainID string, at time.Time) (*domain.Routine, error) {
	gw.mu.Lock()
	defer gw.mu.Unlock()

	c := gw.state.Chain(chainID)
	if c == nil {
		return nil, mutationErr(ErrChainNotFound, "chain %s", chainID)
	}

	routine.RecordCompletion(c, at)
	r := gw.promoteIfEligibleLocked(c, at)
	gw.persist()
	return r, nil
}

// DismissRoutinePrompt declines promotion for a chain without creating a
// routine; the chain is never offered again.
func (gw *Gateway) DismissRoutinePrompt(chainID string, now time.Time) error {
	gw.mu.Lock()
	defer gw.mu.Unlock()

	c := gw.state.Chain(chainID)
	if c == nil {
		return mutationErr(ErrChainNotFound, "chain %s", chainID)
	}
	routine.Dismiss(c, now)
	gw.persist()
	return nil
}

func (gw *Gateway) promoteIfEligibleLocked(c *domain.Chain, now time.Time) *domain.Routine {
	if !routine.Eligible(c) {
		return nil
	}
	r := routine.Promote(c, now)
	gw.state.Routines = append(gw.state.Routines, *r)
	return r
}

// --- Entity management ---

// AddGoal creates a goal with an empty graph.
func (gw *Gateway) AddGoal(title, description string, importance int, now time.Time) (string, error) {
	if strings.TrimSpace(title) == "" {
		return "", mutationErr(ErrInvalidInput, "%v", domain.ErrEmptyTitle)
	}
	if importance < 1 || importance > 5 {
		return "", mutationErr(ErrInvalidInput, "importance must be 1..5")
	}

	gw.mu.Lock()
	defer gw.mu.Unlock()

	g := domain.Goal{
		ID:          domain.NewID(),
		Title:       title,
		Description: description,
		Status:      domain.GoalOn,
		Importance:  importance,
		Graph:       &domain.GoalGraph{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	gw.state.Goals = append(gw.state.Goals, g)
	gw.persist()
	return g.ID, nil
}

// DeleteGoal removes a goal and clears its feedback ledger entry.
func (gw *Gateway) DeleteGoal(id string) error {
	gw.mu.Lock()
	defer gw.mu.Unlock()

	for i := range gw.state.Goals {
		if gw.state.Goals[i].ID == id {
			gw.state.Goals = append(gw.state.Goals[:i], gw.state.Goals[i+1:]...)
			gw.goalLedger.Clear(id)
			gw.persist()
			return nil
		}
	}
	return mutationErr(ErrGoalNotFound, "goal %s", id)
}

// AddPillar creates a focus-area pillar.
func (gw *Gateway) AddPillar(p domain.Pillar, now time.Time) (string, error) {
	if strings.TrimSpace(p.Name) == "" {
		return "", mutationErr(ErrInvalidInput, "%v", domain.ErrEmptyTitle)
	}

	gw.mu.Lock()
	defer gw.mu.Unlock()

	if p.ID == "" {
		p.ID = domain.NewID()
	}
	if p.Cadence.Kind == "" {
		p.Cadence.Kind = domain.CadenceAsNeeded
	}
	p.CreatedAt = now
	p.UpdatedAt = now
	gw.state.Pillars = append(gw.state.Pillars, p)
	gw.persist()
	return p.ID, nil
}

// DeletePillar removes a pillar and clears its feedback ledger entry.
func (gw *Gateway) DeletePillar(id string) error {
	gw.mu.Lock()
	defer gw.mu.Unlock()

	for i := range gw.state.Pillars {
		if gw.state.Pillars[i].ID == id {
			gw.state.Pillars = append(gw.state.Pillars[:i], gw.state.Pillars[i+1:]...)
			gw.pillarLedger.Clear(id)
			gw.persist()
			return nil
		}
	}
	return mutationErr(ErrPillarNotFound, "pillar %s", id)
}

// AddChain creates a chain from block templates.
func (gw *Gateway) AddChain(name string, blocks []domain.TimeBlock, now time.Time) (string, error) {
	if strings.TrimSpace(name) == "" || len(blocks) == 0 {
		return "", mutationErr(ErrInvalidInput, "chain needs a name and at least one block")
	}
	for i := range blocks {
		if err := blocks[i].Validate(); err != nil {
			return "", mutationErr(ErrInvalidInput, "chain block %d: %v", i, err)
		}
	}

	gw.mu.Lock()
	defer gw.mu.Unlock()

	c := domain.Chain{
		ID:        domain.NewID(),
		Name:      name,
		Blocks:    blocks,
		CreatedAt: now,
		UpdatedAt: now,
	}
	gw.state.Chains = append(gw.state.Chains, c)
	gw.persist()
	return c.ID, nil
}

// PinGoal toggles the pin that boosts suggestions linked to the goal.
func (gw *Gateway) PinGoal(id string, pinned bool, now time.Time) error {
	gw.mu.Lock()
	defer gw.mu.Unlock()

	g := gw.state.Goal(id)
	if g == nil {
		return mutationErr(ErrGoalNotFound, "goal %s", id)
	}
	g.Pinned = pinned
	g.UpdatedAt = now
	gw.persist()
	return nil
}

// EmphasizePillar toggles the emphasis that boosts suggestions linked to
// the pillar.
func (gw *Gateway) EmphasizePillar(id string, emphasized bool, now time.Time) error {
	gw.mu.Lock()
	defer gw.mu.Unlock()

	p := gw.state.Pillar(id)
	if p == nil {
		return mutationErr(ErrPillarNotFound, "pillar %s", id)
	}
	p.Emphasized = emphasized
	p.UpdatedAt = now
	gw.persist()
	return nil
}

// CompleteTask toggles a goal task and recomputes the goal's progress.
func (gw *Gateway) CompleteTask(goalID, taskID string, done bool, now time.Time) error {
	gw.mu.Lock()
	defer gw.mu.Unlock()

	g := gw.state.Goal(goalID)
	if g == nil {
		return mutationErr(ErrGoalNotFound, "goal %s", goalID)
	}
	for gi := range g.TaskGroups {
		for ti := range g.TaskGroups[gi].Tasks {
			if g.TaskGroups[gi].Tasks[ti].ID == taskID {
				g.TaskGroups[gi].Tasks[ti].Done = done
				g.RecomputeProgress()
				g.UpdatedAt = now
				gw.persist()
				return nil
			}
		}
	}
	return mutationErr(ErrInvalidInput, "task %s not found in goal %s", taskID, goalID)
}

// RegisterGoalFeedback applies explicit feedback tags against a goal.
func (gw *Gateway) RegisterGoalFeedback(goalID string, tags []domain.FeedbackTag) error {
	gw.mu.Lock()
	defer gw.mu.Unlock()

	if gw.state.Goal(goalID) == nil {
		return mutationErr(ErrGoalNotFound, "goal %s", goalID)
	}
	gw.goalLedger.Register(goalID, tags)
	gw.persist()
	return nil
}

// RegisterPillarFeedback applies explicit feedback tags against a pillar.
func (gw *Gateway) RegisterPillarFeedback(pillarID string, tags []domain.FeedbackTag) error {
	gw.mu.Lock()
	defer gw.mu.Unlock()

	if gw.state.Pillar(pillarID) == nil {
		return mutationErr(ErrPillarNotFound, "pillar %s", pillarID)
	}
	gw.pillarLedger.Register(pillarID, tags)
	gw.persist()
	return nil
}

// --- Goal graphs ---

// GraphSnapshot returns a copy of the goal's mind map, seeding it first if
// it has never been touched.
func (gw *Gateway) GraphSnapshot(goalID string, now time.Time) (domain.GoalGraph, error) {
	gw.mu.Lock()
	defer gw.mu.Unlock()

	g := gw.state.Goal(goalID)
	if g == nil {
		return domain.GoalGraph{}, mutationErr(ErrGoalNotFound, "goal %s", goalID)
	}
	gw.ensureGraphLocked(g, now)
	return copyGraph(g.Graph), nil
}

// PinGraphNode pins or unpins a node in the goal's graph.
func (gw *Gateway) PinGraphNode(goalID, nodeID string, pinned bool, now time.Time) error {
	gw.mu.Lock()
	defer gw.mu.Unlock()

	g := gw.state.Goal(goalID)
	if g == nil {
		return mutationErr(ErrGoalNotFound, "goal %s", goalID)
	}
	gw.ensureGraphLocked(g, now)
	if err := graph.Pin(g.Graph, nodeID, pinned, now); err != nil {
		return mutationErr(ErrInvalidInput, "%v", err)
	}
	gw.persist()
	return nil
}

// RefreshGraph decays stale node weights in the goal's graph.
func (gw *Gateway) RefreshGraph(goalID string, now time.Time) error {
	gw.mu.Lock()
	defer gw.mu.Unlock()

	g := gw.state.Goal(goalID)
	if g == nil {
		return mutationErr(ErrGoalNotFound, "goal %s", goalID)
	}
	gw.ensureGraphLocked(g, now)
	graph.Refresh(g.Graph, now)
	gw.persist()
	return nil
}

// ExpandGraph adds child nodes under an existing graph node.
func (gw *Gateway) ExpandGraph(goalID, parentID string, children []domain.GraphNode, now time.Time) error {
	gw.mu.Lock()
	defer gw.mu.Unlock()

	g := gw.state.Goal(goalID)
	if g == nil {
		return mutationErr(ErrGoalNotFound, "goal %s", goalID)
	}
	gw.ensureGraphLocked(g, now)
	if err := graph.Expand(g.Graph, parentID, children, now); err != nil {
		return mutationErr(ErrInvalidInput, "%v", err)
	}
	gw.persist()
	return nil
}

func (gw *Gateway) ensureGraphLocked(g *domain.Goal, now time.Time) {
	if g.Graph == nil {
		g.Graph = &domain.GoalGraph{}
	}
	if len(g.Graph.Nodes) == 0 {
		graph.Seed(g.Graph, g.Title, now)
	}
}

func copyGraph(g *domain.GoalGraph) domain.GoalGraph {
	out := domain.GoalGraph{
		Nodes:   make([]domain.GraphNode, len(g.Nodes)),
		Edges:   make([]domain.GraphEdge, len(g.Edges)),
		History: make([]string, len(g.History)),
	}
	copy(out.Nodes, g.Nodes)
	copy(out.Edges, g.Edges)
	copy(out.History, g.History)
	return out
}

// --- External calendar ---

// ReconcileCalendar merges foreign events into today's schedule.
func (gw *Gateway) ReconcileCalendar(events []calendar.Event, now time.Time) calendar.ReconcileResult {
	gw.mu.Lock()
	defer gw.mu.Unlock()

	res := calendar.Reconcile(gw.state, events, now)
	if res.Added+res.Updated+res.Removed > 0 {
		gw.persist()
	}
	return res
}
