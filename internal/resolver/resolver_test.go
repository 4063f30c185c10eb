package resolver

import (
	"testing"

	"github.com/avelinek/dayflow/internal/domain"
	"github.com/avelinek/dayflow/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testGoals() []domain.Goal {
	return []domain.Goal{
		testutil.NewTestGoal("Improve Health", testutil.WithGoalID("g-health")),
		testutil.NewTestGoal("Ship the launch", testutil.WithGoalID("g-launch")),
	}
}

func testPillars() []domain.Pillar {
	return []domain.Pillar{
		testutil.NewTestPillar("Deep Focus", testutil.WithPillarID("p-focus")),
		testutil.NewTestPillar("Recovery", testutil.WithPillarID("p-recovery")),
	}
}

func TestResolveGoal_HintMatchesGoalTitle(t *testing.T) {
	r := New(nil)
	s := testutil.NewTestSuggestion("Morning Run", testutil.WithLinkHints("health"))

	r.ResolveGoal(&s, testGoals())

	assert.Equal(t, "g-health", s.GoalID)
	assert.Equal(t, "Improve Health", s.GoalTitle)
	assert.Empty(t, s.Reason)
}

func TestResolveGoal_CachedTitleWinsOverHints(t *testing.T) {
	r := New(nil)
	s := testutil.NewTestSuggestion("Prep slides", testutil.WithLinkHints("health"))
	s.GoalTitle = "ship the launch"

	r.ResolveGoal(&s, testGoals())

	assert.Equal(t, "g-launch", s.GoalID)
	assert.Equal(t, "Ship the launch", s.GoalTitle)
}

func TestResolveGoal_OwnTitleServesAsProbe(t *testing.T) {
	r := New(nil)
	s := testutil.NewTestSuggestion("Improve Health checkup")

	r.ResolveGoal(&s, testGoals())

	assert.Equal(t, "g-health", s.GoalID)
}

func TestResolveGoal_NoMatchLeavesSuggestionUnlinked(t *testing.T) {
	r := New(nil)
	s := testutil.NewTestSuggestion("Water the plants")

	r.ResolveGoal(&s, testGoals())

	assert.Empty(t, s.GoalID)
	assert.Empty(t, s.Reason)
}

func TestResolveGoal_ExistingLinkIsNeverOverwritten(t *testing.T) {
	r := New(nil)
	s := testutil.NewTestSuggestion("Improve Health walk",
		testutil.WithGoalLink("g-existing", "Existing"))

	r.ResolveGoal(&s, testGoals())

	assert.Equal(t, "g-existing", s.GoalID)
}

func TestResolveGoal_MultipleMatchesAreAmbiguous(t *testing.T) {
	goals := []domain.Goal{
		testutil.NewTestGoal("Health morning", testutil.WithGoalID("g1")),
		testutil.NewTestGoal("Health evening", testutil.WithGoalID("g2")),
	}
	var diags []Diagnostic
	r := New(func(d Diagnostic) { diags = append(diags, d) })

	s := testutil.NewTestSuggestion("Stretch", testutil.WithLinkHints("health"))
	r.ResolveGoal(&s, goals)

	assert.Empty(t, s.GoalID, "ambiguous links must stay unlinked")
	assert.Contains(t, s.Reason, "ambiguous link")
	require.Len(t, diags, 1)
	assert.Equal(t, s.ID, diags[0].SuggestionID)
	assert.Equal(t, "goal", diags[0].Kind)
	assert.ElementsMatch(t, []string{"Health morning", "Health evening"}, diags[0].Candidates)
}

func TestResolveGoal_HintsNarrowMultipleTitleMatches(t *testing.T) {
	goals := []domain.Goal{
		testutil.NewTestGoal("Alpha Project", testutil.WithGoalID("g-a")),
		testutil.NewTestGoal("Beta Project", testutil.WithGoalID("g-b")),
	}
	goals[1].Description = "the beta rewrite effort"
	r := New(nil)

	// "Project" title-matches both goals; the hint narrows to Beta.
	s := testutil.NewTestSuggestion("Project", testutil.WithLinkHints("beta rewrite"))
	r.ResolveGoal(&s, goals)

	assert.Equal(t, "g-b", s.GoalID, "hint intersection must break the tie")
}

func TestResolveGoal_DiagnosticEmittedOncePerSuggestionPerPass(t *testing.T) {
	goals := []domain.Goal{
		testutil.NewTestGoal("Health A", testutil.WithGoalID("g1")),
		testutil.NewTestGoal("Health B", testutil.WithGoalID("g2")),
	}
	var diags []Diagnostic
	r := New(func(d Diagnostic) { diags = append(diags, d) })

	s := testutil.NewTestSuggestion("Stretch",
		testutil.WithSuggestionID("s1"), testutil.WithLinkHints("health"))
	r.ResolveGoal(&s, goals)
	r.ResolveGoal(&s, goals)

	assert.Len(t, diags, 1, "same suggestion, same pass: one diagnostic")

	r.BeginPass()
	r.ResolveGoal(&s, goals)
	assert.Len(t, diags, 2, "new pass resets suppression")
}

func TestResolveGoal_AmbiguousReasonIsIdempotent(t *testing.T) {
	goals := []domain.Goal{
		testutil.NewTestGoal("Health A", testutil.WithGoalID("g1")),
		testutil.NewTestGoal("Health B", testutil.WithGoalID("g2")),
	}
	r := New(nil)

	s := testutil.NewTestSuggestion("Stretch", testutil.WithLinkHints("health"))
	r.ResolveGoal(&s, goals)
	r.ResolveGoal(&s, goals)

	assert.Equal(t, "ambiguous link", s.Reason)
}

func TestResolvePillar_MatchesIndependentlyOfGoals(t *testing.T) {
	r := New(nil)
	s := testutil.NewTestSuggestion("Deep Focus session")

	r.ResolvePillar(&s, testPillars())

	assert.Equal(t, "p-focus", s.PillarID)
	assert.Equal(t, "Deep Focus", s.PillarTitle)
}

func TestResolvePillar_SuppressionSetIndependentFromGoals(t *testing.T) {
	goals := []domain.Goal{
		testutil.NewTestGoal("Work A", testutil.WithGoalID("g1")),
		testutil.NewTestGoal("Work B", testutil.WithGoalID("g2")),
	}
	pillars := []domain.Pillar{
		testutil.NewTestPillar("Work mornings", testutil.WithPillarID("p1")),
		testutil.NewTestPillar("Work evenings", testutil.WithPillarID("p2")),
	}
	var diags []Diagnostic
	r := New(func(d Diagnostic) { diags = append(diags, d) })

	s := testutil.NewTestSuggestion("Plan", testutil.WithLinkHints("work"))
	r.ResolveGoal(&s, goals)
	r.ResolvePillar(&s, pillars)

	require.Len(t, diags, 2, "goal and pillar ambiguity are separate events")
	assert.Equal(t, "goal", diags[0].Kind)
	assert.Equal(t, "pillar", diags[1].Kind)
}

func TestResolve_DeterministicAcrossRepeatedPasses(t *testing.T) {
	r := New(nil)
	goals := testGoals()
	pillars := testPillars()

	for i := 0; i < 3; i++ {
		r.BeginPass()
		s := testutil.NewTestSuggestion("Morning Run",
			testutil.WithSuggestionID("s-run"), testutil.WithLinkHints("health", "recovery"))
		r.ResolveGoal(&s, goals)
		r.ResolvePillar(&s, pillars)

		assert.Equal(t, "g-health", s.GoalID, "pass %d", i)
		assert.Equal(t, "p-recovery", s.PillarID, "pass %d", i)
	}
}
