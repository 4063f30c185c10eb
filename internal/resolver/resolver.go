// Package resolver links suggestions to the goals and pillars their loose
// textual hints refer to, flagging ambiguous references instead of guessing.
package resolver

import (
	"strings"

	"github.com/avelinek/dayflow/internal/domain"
)

// ambiguousReason is appended (idempotently) to a suggestion's reason text
// when its link cannot be narrowed to a single candidate.
const ambiguousReason = "ambiguous link"

// Diagnostic describes one ambiguous-link event. Emitted at most once per
// suggestion identifier per kind within a scheduling pass.
type Diagnostic struct {
	SuggestionID string
	Kind         string // "goal" or "pillar"
	Candidates   []string
}

// Resolver matches suggestions against the known goal and pillar sets. The
// duplicate-diagnostic suppression sets are per scheduling pass; BeginPass
// clears them so they never grow without bound.
type Resolver struct {
	warnedGoals   map[string]bool
	warnedPillars map[string]bool
	sink          func(Diagnostic)
}

// New creates a Resolver. sink receives ambiguity diagnostics and may be nil.
func New(sink func(Diagnostic)) *Resolver {
	return &Resolver{
		warnedGoals:   make(map[string]bool),
		warnedPillars: make(map[string]bool),
		sink:          sink,
	}
}

// BeginPass resets the per-pass diagnostic suppression sets. Call once at
// the start of each scheduling cycle.
func (r *Resolver) BeginPass() {
	r.warnedGoals = make(map[string]bool)
	r.warnedPillars = make(map[string]bool)
}

// candidate is the common shape the two-channel matcher works over.
type candidate struct {
	id          string
	title       string
	description string
}

// ResolveGoal attaches a goal identifier to the suggestion, or flags the
// link as ambiguous. Suggestions that already carry a goal ID are left
// untouched.
func (r *Resolver) ResolveGoal(s *domain.Suggestion, goals []domain.Goal) {
	if s.GoalID != "" {
		return
	}
	cands := make([]candidate, len(goals))
	for i, g := range goals {
		cands[i] = candidate{id: g.ID, title: g.Title, description: g.Description}
	}
	id, title, ambiguous := resolve(s, cands, s.GoalTitle)
	switch {
	case ambiguous:
		s.GoalID = ""
		s.AppendReason(ambiguousReason)
		r.warnOnce(r.warnedGoals, s, "goal", cands)
	case id != "":
		s.GoalID = id
		s.GoalTitle = title
	}
}

// ResolvePillar is the goal logic applied to pillars, with an independent
// diagnostic suppression set.
func (r *Resolver) ResolvePillar(s *domain.Suggestion, pillars []domain.Pillar) {
	if s.PillarID != "" {
		return
	}
	cands := make([]candidate, len(pillars))
	for i, p := range pillars {
		cands[i] = candidate{id: p.ID, title: p.Name, description: p.Description}
	}
	id, title, ambiguous := resolve(s, cands, s.PillarTitle)
	switch {
	case ambiguous:
		s.PillarID = ""
		s.AppendReason(ambiguousReason)
		r.warnOnce(r.warnedPillars, s, "pillar", cands)
	case id != "":
		s.PillarID = id
		s.PillarTitle = title
	}
}

func (r *Resolver) warnOnce(warned map[string]bool, s *domain.Suggestion, kind string, cands []candidate) {
	if warned[s.ID] {
		return
	}
	warned[s.ID] = true
	if r.sink == nil {
		return
	}
	names := make([]string, len(cands))
	for i, c := range cands {
		names[i] = c.title
	}
	r.sink(Diagnostic{SuggestionID: s.ID, Kind: kind, Candidates: names})
}

// resolve runs the two-channel matching policy:
//
//	channel 1: the suggestion's cached title (falling back to its own title)
//	           against each candidate title;
//	channel 2: each link hint against candidate titles and descriptions.
//
// A single channel-1 hit wins outright. Multiple channel-1 hits are narrowed
// by intersecting with channel 2 when that intersection is non-empty. With
// no channel-1 hits, channel 2 stands alone. One survivor resolves; more
// than one is ambiguous; zero stays unlinked.
func resolve(s *domain.Suggestion, cands []candidate, cachedTitle string) (id, title string, ambiguous bool) {
	probe := cachedTitle
	if probe == "" {
		probe = s.Title
	}

	var byTitle []candidate
	for _, c := range cands {
		if looseMatch(probe, c.title) {
			byTitle = append(byTitle, c)
		}
	}

	var byHint []candidate
	for _, c := range cands {
		for _, hint := range s.LinkHints {
			if looseMatch(hint, c.title) || looseMatch(hint, c.description) {
				byHint = append(byHint, c)
				break
			}
		}
	}

	final := byTitle
	switch {
	case len(byTitle) == 1:
		// single title match wins
	case len(byTitle) > 1 && len(byHint) > 0:
		if both := intersect(byTitle, byHint); len(both) > 0 {
			final = both
		}
	case len(byTitle) == 0:
		final = byHint
	}

	switch len(final) {
	case 0:
		return "", "", false
	case 1:
		return final[0].id, final[0].title, false
	default:
		return "", "", true
	}
}

// looseMatch is a case-insensitive equality-or-substring match in either
// direction. Empty strings never match.
func looseMatch(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	la, lb := strings.ToLower(a), strings.ToLower(b)
	return strings.Contains(la, lb) || strings.Contains(lb, la)
}

func intersect(a, b []candidate) []candidate {
	ids := make(map[string]bool, len(b))
	for _, c := range b {
		ids[c.id] = true
	}
	var out []candidate
	for _, c := range a {
		if ids[c.id] {
			out = append(out, c)
		}
	}
	return out
}
