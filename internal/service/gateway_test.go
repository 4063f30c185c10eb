package service

import (
	"testing"
	"time"

	"github.com/avelinek/dayflow/internal/domain"
	"github.com/avelinek/dayflow/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGateway(t *testing.T) *Gateway {
	t.Helper()
	return NewGateway(testutil.NewTestState(nil, nil), nil)
}

func assertCode(t *testing.T, err error, code string) {
	t.Helper()
	var merr *MutationError
	require.ErrorAs(t, err, &merr)
	assert.Equal(t, code, merr.Code)
}

// --- Block mutations ---

func TestAddBlock_AssignsDefaultsAndID(t *testing.T) {
	gw := newTestGateway(t)
	now := testutil.Day()

	id, err := gw.AddBlock(domain.TimeBlock{
		Title:    "Deep work",
		Start:    now.Add(time.Hour),
		Duration: time.Hour,
	}, now)

	require.NoError(t, err)
	require.NotEmpty(t, id)

	blocks := gw.TodayBlocks()
	require.Len(t, blocks, 1)
	assert.Equal(t, domain.BlockScheduled, blocks[0].State)
	assert.Equal(t, domain.OriginManual, blocks[0].Origin)
	assert.Equal(t, domain.EnergyMedium, blocks[0].Energy)
}

func TestAddBlock_InvalidInputIsANoOp(t *testing.T) {
	gw := newTestGateway(t)
	now := testutil.Day()

	_, err := gw.AddBlock(domain.TimeBlock{Title: "  ", Duration: time.Hour}, now)
	assertCode(t, err, ErrInvalidInput)

	_, err = gw.AddBlock(domain.TimeBlock{Title: "ok", Duration: 0}, now)
	assertCode(t, err, ErrInvalidInput)

	assert.Empty(t, gw.TodayBlocks(), "rejected mutations leave no trace")
}

func TestResizeBlock_RejectsNonPositiveDuration(t *testing.T) {
	gw := newTestGateway(t)
	now := testutil.Day()
	id, err := gw.AddBlock(testutil.NewTestBlock("Walk"), now)
	require.NoError(t, err)

	err = gw.ResizeBlock(id, -time.Minute, now)

	assertCode(t, err, ErrInvalidInput)
	assert.Equal(t, 30*time.Minute, gw.TodayBlocks()[0].Duration)
}

func TestRemoveBlock_UnknownIDFails(t *testing.T) {
	gw := newTestGateway(t)

	err := gw.RemoveBlock("nope")

	assertCode(t, err, ErrBlockNotFound)
}

// --- Confirmation state machine ---

func TestSweep_ScheduledPastEndBecomesUnconfirmed(t *testing.T) {
	gw := newTestGateway(t)
	now := testutil.Day()
	_, err := gw.AddBlock(testutil.NewTestBlock("Walk",
		testutil.WithStart(now), testutil.WithDuration(30*time.Minute)), now)
	require.NoError(t, err)

	res := gw.Sweep(now.Add(31 * time.Minute))

	assert.Equal(t, 1, res.ToUnconfirmed)
	assert.Equal(t, domain.BlockUnconfirmed, gw.TodayBlocks()[0].State)
}

func TestSweep_EndBoundaryCountsAsPassed(t *testing.T) {
	gw := newTestGateway(t)
	now := testutil.Day()
	_, err := gw.AddBlock(testutil.NewTestBlock("Walk",
		testutil.WithStart(now), testutil.WithDuration(30*time.Minute)), now)
	require.NoError(t, err)

	res := gw.Sweep(now.Add(30 * time.Minute))

	assert.Equal(t, 1, res.ToUnconfirmed, "sweep exactly at the end transitions")
}

func TestSweep_UnconfirmedMovedToFutureRevertsToScheduled(t *testing.T) {
	gw := newTestGateway(t)
	now := testutil.Day()
	id, err := gw.AddBlock(testutil.NewTestBlock("Walk",
		testutil.WithStart(now), testutil.WithDuration(30*time.Minute)), now)
	require.NoError(t, err)
	gw.Sweep(now.Add(time.Hour))

	require.NoError(t, gw.MoveBlock(id, now.Add(3*time.Hour), now.Add(time.Hour)))
	res := gw.Sweep(now.Add(time.Hour))

	assert.Equal(t, 1, res.ToScheduled)
	assert.Equal(t, domain.BlockScheduled, gw.TodayBlocks()[0].State)
}

func TestSweep_NeverTouchesConfirmedBlocks(t *testing.T) {
	gw := newTestGateway(t)
	now := testutil.Day()
	id, err := gw.AddBlock(testutil.NewTestBlock("Walk",
		testutil.WithStart(now), testutil.WithDuration(30*time.Minute)), now)
	require.NoError(t, err)
	gw.Sweep(now.Add(time.Hour))
	require.NoError(t, gw.Confirm(id, now.Add(time.Hour)))

	res := gw.Sweep(now.Add(2 * time.Hour))

	assert.Equal(t, SweepResult{}, res)
	assert.Equal(t, domain.BlockConfirmed, gw.TodayBlocks()[0].State)
}

func TestConfirm_AppendsExactlyOneRecordAndIsIdempotent(t *testing.T) {
	gw := newTestGateway(t)
	now := testutil.Day()
	id, err := gw.AddBlock(testutil.NewTestBlock("Walk", testutil.WithStart(now)), now)
	require.NoError(t, err)

	require.NoError(t, gw.Confirm(id, now.Add(time.Hour)))
	require.NoError(t, gw.Confirm(id, now.Add(2*time.Hour)))

	records := gw.Records()
	require.Len(t, records, 1, "repeat confirms never duplicate the record")
	assert.Equal(t, id, records[0].BlockID)
	assert.Equal(t, "Walk", records[0].Title)
	assert.Equal(t, now.Add(time.Hour), records[0].ConfirmedAt)
}

// Scenario: an unconfirmed block is requeued as a follow-up, the user changes
// their mind and re-adds it, then confirms; the follow-up disappears and one
// record exists.
func TestConfirm_RemovesFollowUpsForTheBlock(t *testing.T) {
	gw := newTestGateway(t)
	now := testutil.Day()
	id, err := gw.AddBlock(testutil.NewTestBlock("Walk",
		testutil.WithStart(now), testutil.WithDuration(30*time.Minute)), now)
	require.NoError(t, err)
	gw.Sweep(now.Add(time.Hour))
	require.NoError(t, gw.Requeue(id, now.Add(time.Hour)))
	require.Len(t, gw.FollowUps(), 1)

	// Re-add the same activity keeping the identifier linkage.
	id2, err := gw.AddBlock(domain.TimeBlock{
		ID:       id,
		Title:    "Walk",
		Start:    now.Add(2 * time.Hour),
		Duration: 30 * time.Minute,
	}, now.Add(90*time.Minute))
	require.NoError(t, err)
	require.NoError(t, gw.Confirm(id2, now.Add(3*time.Hour)))

	assert.Empty(t, gw.FollowUps(), "confirming clears the block's follow-ups")
	assert.Len(t, gw.Records(), 1)
}

func TestUndoConfirm_WithinWindowRemovesTheRecord(t *testing.T) {
	gw := newTestGateway(t)
	now := testutil.Day()
	id, err := gw.AddBlock(testutil.NewTestBlock("Walk", testutil.WithStart(now)), now)
	require.NoError(t, err)
	require.NoError(t, gw.Confirm(id, now.Add(time.Hour)))

	err = gw.UndoConfirm(id, now.Add(5*time.Hour))

	require.NoError(t, err)
	assert.Empty(t, gw.Records())
	assert.Equal(t, domain.BlockUnconfirmed, gw.TodayBlocks()[0].State)
}

func TestUndoConfirm_ExpiresAfterWindow(t *testing.T) {
	gw := newTestGateway(t)
	now := testutil.Day()
	id, err := gw.AddBlock(testutil.NewTestBlock("Walk", testutil.WithStart(now)), now)
	require.NoError(t, err)
	require.NoError(t, gw.Confirm(id, now.Add(time.Hour)))

	err = gw.UndoConfirm(id, now.Add(26*time.Hour))

	assertCode(t, err, ErrUndoExpired)
	assert.Len(t, gw.Records(), 1, "expired undo changes nothing")
}

func TestUndoConfirm_RequiresConfirmedState(t *testing.T) {
	gw := newTestGateway(t)
	now := testutil.Day()
	id, err := gw.AddBlock(testutil.NewTestBlock("Walk", testutil.WithStart(now)), now)
	require.NoError(t, err)

	err = gw.UndoConfirm(id, now)

	assertCode(t, err, ErrNotConfirmed)
}

func TestRequeue_SnapshotsBlockAndRemovesIt(t *testing.T) {
	gw := newTestGateway(t)
	now := testutil.Day()
	id, err := gw.AddBlock(testutil.NewTestBlock("Walk",
		testutil.WithStart(now.Add(time.Hour)), testutil.WithDuration(45*time.Minute),
		testutil.WithEnergy(domain.EnergyLow)), now)
	require.NoError(t, err)

	require.NoError(t, gw.Requeue(id, now.Add(2*time.Hour)))

	assert.Empty(t, gw.TodayBlocks())
	followUps := gw.FollowUps()
	require.Len(t, followUps, 1)
	assert.Equal(t, id, followUps[0].BlockID)
	assert.Equal(t, "Walk", followUps[0].Title)
	assert.Equal(t, now.Add(time.Hour), followUps[0].Start, "follow-up keeps the original timing")
	assert.Equal(t, 45*time.Minute, followUps[0].Duration)
	assert.Equal(t, domain.EnergyLow, followUps[0].Energy)
}

// --- Suggestion decisions ---

func installPending(gw *Gateway, suggestions ...domain.Suggestion) {
	gw.mu.Lock()
	defer gw.mu.Unlock()
	gw.state.Pending = suggestions
}

func TestAcceptSuggestion_PlacesAtProposedStartWhenFree(t *testing.T) {
	gw := newTestGateway(t)
	now := testutil.Day()
	s := testutil.NewTestSuggestion("Morning walk",
		testutil.WithProposedStart(now.Add(time.Hour)))
	installPending(gw, s)

	blockID, err := gw.AcceptSuggestion(s.ID, now)

	require.NoError(t, err)
	blocks := gw.TodayBlocks()
	require.Len(t, blocks, 1)
	assert.Equal(t, blockID, blocks[0].ID)
	assert.Equal(t, now.Add(time.Hour), blocks[0].Start)
	assert.Equal(t, domain.OriginSuggestion, blocks[0].Origin)
	assert.Equal(t, s.ID, blocks[0].SuggestionID)
	assert.Empty(t, gw.PendingSuggestions(), "accepted suggestion leaves the queue")
}

func TestAcceptSuggestion_SlidesToNextOpenSlotWhenBusy(t *testing.T) {
	gw := newTestGateway(t)
	now := testutil.Day()
	_, err := gw.AddBlock(testutil.NewTestBlock("Meeting",
		testutil.WithStart(now.Add(time.Hour)), testutil.WithDuration(time.Hour)), now)
	require.NoError(t, err)

	s := testutil.NewTestSuggestion("Walk",
		testutil.WithProposedStart(now.Add(time.Hour)))
	installPending(gw, s)

	_, err = gw.AcceptSuggestion(s.ID, now)

	require.NoError(t, err)
	blocks := gw.TodayBlocks()
	require.Len(t, blocks, 2)
	assert.Equal(t, now.Add(2*time.Hour), blocks[1].Start, "placed after the conflicting block")
}

func TestAcceptSuggestion_RegistersPositiveFeedback(t *testing.T) {
	gw := newTestGateway(t)
	now := testutil.Day()
	s := testutil.NewTestSuggestion("Run",
		testutil.WithGoalLink("g1", "Improve Health"),
		testutil.WithPillarLink("p1", "Recovery"))
	installPending(gw, s)

	_, err := gw.AcceptSuggestion(s.ID, now)

	require.NoError(t, err)
	assert.Equal(t, 1, gw.GoalFeedbackStats("g1").Positive)
	assert.Equal(t, 1, gw.PillarFeedbackStats("p1").Positive)
}

func TestAcceptSuggestion_UnknownIDFails(t *testing.T) {
	gw := newTestGateway(t)

	_, err := gw.AcceptSuggestion("nope", testutil.Day())

	assertCode(t, err, ErrSuggestionNotFound)
}

func TestRejectSuggestion_RegistersNegativeFeedbackAndPattern(t *testing.T) {
	gw := newTestGateway(t)
	now := testutil.Day()
	s := testutil.NewTestSuggestion("Inbox Zero",
		testutil.WithGoalLink("g1", "Work"),
		testutil.WithProposedStart(now.Add(time.Hour))) // 09:00
	installPending(gw, s)

	err := gw.RejectSuggestion(s.ID, []domain.FeedbackTag{domain.TagWrongTime}, now)

	require.NoError(t, err)
	assert.Empty(t, gw.PendingSuggestions())
	stats := gw.GoalFeedbackStats("g1")
	assert.Equal(t, 1, stats.Negative)
	assert.Equal(t, 1, stats.ByTag[domain.TagWrongTime])

	gw.mu.Lock()
	patterns := gw.state.RejectionPatterns
	gw.mu.Unlock()
	require.Len(t, patterns, 1)
	assert.Equal(t, "inbox zero|medium|09", patterns[0])
}

func TestRejectSuggestion_DefaultsToNotRelevant(t *testing.T) {
	gw := newTestGateway(t)
	s := testutil.NewTestSuggestion("Stretch", testutil.WithGoalLink("g1", "Health"))
	installPending(gw, s)

	require.NoError(t, gw.RejectSuggestion(s.ID, nil, testutil.Day()))

	assert.Equal(t, 1, gw.GoalFeedbackStats("g1").ByTag[domain.TagNotRelevant])
}

// --- Chains and routines ---

func TestApplyChain_SchedulesSequentiallyWithBuffer(t *testing.T) {
	gw := newTestGateway(t)
	now := testutil.Day()
	chainID, err := gw.AddChain("Morning kickoff", []domain.TimeBlock{
		testutil.NewTestBlock("Stretch", testutil.WithDuration(10*time.Minute)),
		testutil.NewTestBlock("Review priorities", testutil.WithDuration(15*time.Minute)),
	}, now)
	require.NoError(t, err)

	start := now.Add(time.Hour)
	ids, err := gw.ApplyChain(chainID, start, now)

	require.NoError(t, err)
	require.Len(t, ids, 2)

	blocks := gw.TodayBlocks()
	require.Len(t, blocks, 2)
	assert.Equal(t, start, blocks[0].Start)
	assert.Equal(t, domain.OriginChain, blocks[0].Origin)
	// Second block starts after the first ends plus the 5-minute buffer.
	assert.Equal(t, start.Add(15*time.Minute), blocks[1].Start)
}

func TestApplyChain_EmptyChainIsRejected(t *testing.T) {
	gw := newTestGateway(t)
	now := testutil.Day()
	gw.mu.Lock()
	gw.state.Chains = append(gw.state.Chains, domain.Chain{ID: "empty", Name: "Empty"})
	gw.mu.Unlock()

	_, err := gw.ApplyChain("empty", now, now)

	assertCode(t, err, ErrInvalidInput)
}

func TestCompleteChain_ThirdWellSpacedCompletionPromotes(t *testing.T) {
	gw := newTestGateway(t)
	now := testutil.Day()
	chainID, err := gw.AddChain("Kickoff", []domain.TimeBlock{
		testutil.NewTestBlock("Stretch"),
	}, now)
	require.NoError(t, err)

	r1, err := gw.CompleteChain(chainID, now)
	require.NoError(t, err)
	assert.Nil(t, r1)

	r2, err := gw.CompleteChain(chainID, now.Add(30*time.Hour))
	require.NoError(t, err)
	assert.Nil(t, r2)

	r3, err := gw.CompleteChain(chainID, now.Add(60*time.Hour))
	require.NoError(t, err)
	require.NotNil(t, r3, "third spaced completion triggers promotion")
	assert.Equal(t, chainID, r3.ChainID)

	routines := gw.Routines()
	require.Len(t, routines, 1)
	assert.Equal(t, r3.ID, routines[0].ID)

	// A fourth completion never re-promotes.
	r4, err := gw.CompleteChain(chainID, now.Add(90*time.Hour))
	require.NoError(t, err)
	assert.Nil(t, r4)
	assert.Len(t, gw.Routines(), 1)
}

func TestCompleteChain_RapidCompletionsDoNotPromote(t *testing.T) {
	gw := newTestGateway(t)
	now := testutil.Day()
	chainID, err := gw.AddChain("Kickoff", []domain.TimeBlock{
		testutil.NewTestBlock("Stretch"),
	}, now)
	require.NoError(t, err)

	for _, offset := range []time.Duration{0, 10 * time.Hour, 30 * time.Hour} {
		r, err := gw.CompleteChain(chainID, now.Add(offset))
		require.NoError(t, err)
		assert.Nil(t, r)
	}
	assert.Empty(t, gw.Routines())
}

func TestDismissRoutinePrompt_BlocksPromotionForever(t *testing.T) {
	gw := newTestGateway(t)
	now := testutil.Day()
	chainID, err := gw.AddChain("Kickoff", []domain.TimeBlock{
		testutil.NewTestBlock("Stretch"),
	}, now)
	require.NoError(t, err)

	require.NoError(t, gw.DismissRoutinePrompt(chainID, now))

	for _, offset := range []time.Duration{0, 30 * time.Hour, 60 * time.Hour} {
		r, err := gw.CompleteChain(chainID, now.Add(offset))
		require.NoError(t, err)
		assert.Nil(t, r)
	}
	assert.Empty(t, gw.Routines())
}

// --- Entity management ---

func TestAddGoal_ValidatesImportance(t *testing.T) {
	gw := newTestGateway(t)
	now := testutil.Day()

	_, err := gw.AddGoal("Learn Go", "", 0, now)
	assertCode(t, err, ErrInvalidInput)

	_, err = gw.AddGoal("Learn Go", "", 6, now)
	assertCode(t, err, ErrInvalidInput)

	id, err := gw.AddGoal("Learn Go", "practical Go", 4, now)
	require.NoError(t, err)
	assert.NotEmpty(t, id)
	require.Len(t, gw.Goals(), 1)
	assert.Equal(t, domain.GoalOn, gw.Goals()[0].Status)
}

func TestDeleteGoal_ClearsFeedback(t *testing.T) {
	gw := newTestGateway(t)
	now := testutil.Day()
	id, err := gw.AddGoal("Learn Go", "", 3, now)
	require.NoError(t, err)
	require.NoError(t, gw.RegisterGoalFeedback(id, []domain.FeedbackTag{domain.TagUseful}))

	require.NoError(t, gw.DeleteGoal(id))

	assert.Empty(t, gw.Goals())
	assert.Equal(t, domain.FeedbackStats{}, gw.GoalFeedbackStats(id))
}

func TestCompleteTask_RecomputesProgress(t *testing.T) {
	gw := newTestGateway(t)
	now := testutil.Day()
	g := testutil.NewTestGoal("Improve Health",
		testutil.WithGoalID("g1"), testutil.WithTasks("Run", "Sleep"))
	gw.mu.Lock()
	gw.state.Goals = append(gw.state.Goals, g)
	gw.mu.Unlock()
	taskID := g.TaskGroups[0].Tasks[0].ID

	require.NoError(t, gw.CompleteTask("g1", taskID, true, now))

	assert.InDelta(t, 0.5, gw.Goals()[0].Progress, 1e-9)
}

func TestPinGoal_And_EmphasizePillar(t *testing.T) {
	gw := newTestGateway(t)
	now := testutil.Day()
	goalID, err := gw.AddGoal("Learn Go", "", 3, now)
	require.NoError(t, err)
	pillarID, err := gw.AddPillar(domain.Pillar{Name: "Deep Focus"}, now)
	require.NoError(t, err)

	require.NoError(t, gw.PinGoal(goalID, true, now))
	require.NoError(t, gw.EmphasizePillar(pillarID, true, now))

	assert.True(t, gw.Goals()[0].Pinned)
	assert.True(t, gw.Pillars()[0].Emphasized)

	require.NoError(t, gw.PinGoal(goalID, false, now))
	assert.False(t, gw.Goals()[0].Pinned)
}

// --- Goal graphs ---

func TestGraphSnapshot_SeedsUntouchedGraphOnce(t *testing.T) {
	gw := newTestGateway(t)
	now := testutil.Day()
	id, err := gw.AddGoal("Improve Health", "", 3, now)
	require.NoError(t, err)

	g, err := gw.GraphSnapshot(id, now)
	require.NoError(t, err)
	assert.Len(t, g.Nodes, 3)

	again, err := gw.GraphSnapshot(id, now.Add(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, g.Nodes[0].ID, again.Nodes[0].ID, "seed happens once")
}

func TestGraphSnapshot_ReturnsACopy(t *testing.T) {
	gw := newTestGateway(t)
	now := testutil.Day()
	id, err := gw.AddGoal("Improve Health", "", 3, now)
	require.NoError(t, err)

	g, err := gw.GraphSnapshot(id, now)
	require.NoError(t, err)
	g.Nodes[0].Title = "tampered"

	fresh, err := gw.GraphSnapshot(id, now)
	require.NoError(t, err)
	assert.NotEqual(t, "tampered", fresh.Nodes[0].Title)
}

func TestExpandGraph_InvalidParentIsRejected(t *testing.T) {
	gw := newTestGateway(t)
	now := testutil.Day()
	id, err := gw.AddGoal("Improve Health", "", 3, now)
	require.NoError(t, err)

	err = gw.ExpandGraph(id, "nope", []domain.GraphNode{{Title: "x"}}, now)

	assertCode(t, err, ErrInvalidInput)
}
