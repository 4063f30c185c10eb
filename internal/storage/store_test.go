package storage

import (
	"testing"
	"time"

	"github.com/avelinek/dayflow/internal/domain"
	"github.com/avelinek/dayflow/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestLoad_FirstRunReportsNoDocument(t *testing.T) {
	store := newTestStore(t)

	state, found, err := store.Load()

	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, state)
}

func TestSaveThenLoad_RoundTripsTheAggregate(t *testing.T) {
	store := newTestStore(t)
	state := testutil.NewTestState(
		[]domain.Goal{testutil.NewTestGoal("Improve Health", testutil.WithGoalID("g1"))},
		[]domain.Pillar{testutil.NewTestPillar("Deep Focus", testutil.WithPillarID("p1"))},
	)
	state.Today.Blocks = append(state.Today.Blocks,
		testutil.NewTestBlock("Walk", testutil.WithDuration(45*time.Minute)))
	state.GoalFeedback["g1"] = &domain.FeedbackStats{
		Positive: 2, Negative: 1,
		ByTag: map[domain.FeedbackTag]int{domain.TagUseful: 2, domain.TagWrongTime: 1},
	}

	_, err := store.Save(state)
	require.NoError(t, err)

	loaded, found, err := store.Load()
	require.NoError(t, err)
	require.True(t, found)

	assert.Equal(t, domain.CurrentSchemaVersion, loaded.SchemaVersion)
	require.Len(t, loaded.Goals, 1)
	assert.Equal(t, "Improve Health", loaded.Goals[0].Title)
	require.Len(t, loaded.Today.Blocks, 1)
	assert.Equal(t, 45*time.Minute, loaded.Today.Blocks[0].Duration)
	require.Contains(t, loaded.GoalFeedback, "g1")
	assert.Equal(t, 2, loaded.GoalFeedback["g1"].Positive)
}

func TestSave_LatestWriteWins(t *testing.T) {
	store := newTestStore(t)

	first := testutil.NewTestState(nil, nil)
	_, err := store.Save(first)
	require.NoError(t, err)

	second := testutil.NewTestState(nil, nil)
	second.RejectionPatterns = []string{"email|low|09"}
	_, err = store.Save(second)
	require.NoError(t, err)

	loaded, found, err := store.Load()
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, []string{"email|low|09"}, loaded.RejectionPatterns)
}

func TestDecodeState_DefaultsMissingFeedbackMaps(t *testing.T) {
	state, err := DecodeState([]byte(`{"schemaVersion":1,"today":{"date":"2026-03-09"}}`))

	require.NoError(t, err)
	assert.NotNil(t, state.GoalFeedback)
	assert.NotNil(t, state.PillarFeedback)
}

func TestDecodeState_RejectsGarbage(t *testing.T) {
	_, err := DecodeState([]byte("not json"))

	assert.Error(t, err)
}

func TestSaveReceipt_ReportsBytesWritten(t *testing.T) {
	store := newTestStore(t)

	receipt, err := store.Save(testutil.NewTestState(nil, nil))

	require.NoError(t, err)
	assert.Greater(t, receipt.Bytes, 0)
	assert.False(t, receipt.SavedAt.IsZero())
}
