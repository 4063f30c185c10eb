package feedback

import (
	"testing"

	"github.com/avelinek/dayflow/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLedger_RegisterCountsPositiveAndNegative(t *testing.T) {
	l := NewLedger(nil)

	l.Register("g1", []domain.FeedbackTag{domain.TagUseful})
	l.Register("g1", []domain.FeedbackTag{domain.TagNotRelevant, domain.TagWrongTime})

	st := l.Stats("g1")
	assert.Equal(t, 1, st.Positive)
	assert.Equal(t, 2, st.Negative)
	assert.Equal(t, 1, st.ByTag[domain.TagUseful])
	assert.Equal(t, 1, st.ByTag[domain.TagNotRelevant])
	assert.Equal(t, 1, st.ByTag[domain.TagWrongTime])
}

func TestLedger_RegisterIgnoresEmptyInput(t *testing.T) {
	l := NewLedger(nil)

	l.Register("", []domain.FeedbackTag{domain.TagUseful})
	l.Register("g1", nil)

	assert.Equal(t, domain.FeedbackStats{}, l.Stats("g1"))
}

func TestLedger_NetScoreStaysWithinBounds(t *testing.T) {
	l := NewLedger(nil)

	assert.Equal(t, 0.0, l.NetScore("unknown"))

	for i := 0; i < 5; i++ {
		l.Register("all-pos", []domain.FeedbackTag{domain.TagUseful})
		l.Register("all-neg", []domain.FeedbackTag{domain.TagWrongPriority})
	}
	l.Register("mixed", []domain.FeedbackTag{domain.TagUseful, domain.TagNotRelevant})

	assert.Equal(t, 1.0, l.NetScore("all-pos"))
	assert.Equal(t, -1.0, l.NetScore("all-neg"))
	assert.Equal(t, 0.0, l.NetScore("mixed"))

	for _, id := range []string{"all-pos", "all-neg", "mixed"} {
		score := l.NetScore(id)
		assert.GreaterOrEqual(t, score, -1.0)
		assert.LessOrEqual(t, score, 1.0)
	}
}

func TestLedger_HasPositiveSignal(t *testing.T) {
	l := NewLedger(nil)
	l.Register("g1", []domain.FeedbackTag{domain.TagUseful})
	l.Register("g2", []domain.FeedbackTag{domain.TagNotRelevant})

	assert.True(t, l.HasPositiveSignal("g1"))
	assert.False(t, l.HasPositiveSignal("g2"))
	assert.False(t, l.HasPositiveSignal("unknown"))
}

func TestLedger_ClearDropsEntity(t *testing.T) {
	l := NewLedger(nil)
	l.Register("g1", []domain.FeedbackTag{domain.TagUseful})

	l.Clear("g1")

	assert.Equal(t, 0.0, l.NetScore("g1"))
	assert.Equal(t, domain.FeedbackStats{}, l.Stats("g1"))
}

func TestLedger_SignalSnapshotsEveryEntity(t *testing.T) {
	l := NewLedger(nil)
	l.Register("g1", []domain.FeedbackTag{domain.TagUseful})
	l.Register("g2", []domain.FeedbackTag{domain.TagWrongTime})

	sig := l.Signal()

	require.Len(t, sig, 2)
	assert.Equal(t, 1.0, sig["g1"])
	assert.Equal(t, -1.0, sig["g2"])
}

func TestLedger_WritesThroughToBorrowedMap(t *testing.T) {
	backing := make(map[string]*domain.FeedbackStats)
	l := NewLedger(backing)

	l.Register("g1", []domain.FeedbackTag{domain.TagUseful})

	require.Contains(t, backing, "g1")
	assert.Equal(t, 1, backing["g1"].Positive)
}
