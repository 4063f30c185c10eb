// Package graph maintains per-goal mind maps: node/edge mutation, automatic
// seeding, and an append-only change history.
package graph

import (
	"errors"
	"fmt"
	"time"

	"github.com/avelinek/dayflow/internal/domain"
)

var (
	// ErrNodeNotFound indicates a mutation referenced a missing node.
	ErrNodeNotFound = errors.New("graph node not found")

	// ErrEdgeEndpoint indicates an edge referencing a nonexistent node.
	ErrEdgeEndpoint = errors.New("edge endpoint does not exist")
)

const defaultNodeWeight = 0.5

// Seed populates an empty graph with a starter subgoal, task, and note, the
// task and note each linked to the subgoal. A graph that already has nodes
// is left alone: a touched graph is never reset.
func Seed(g *domain.GoalGraph, goalTitle string, now time.Time) {
	if len(g.Nodes) > 0 {
		return
	}

	subgoal := domain.GraphNode{
		ID:        domain.NewID(),
		Type:      domain.NodeSubgoal,
		Title:     "First milestone for " + goalTitle,
		Weight:    0.8,
		CreatedAt: now,
		UpdatedAt: now,
	}
	task := domain.GraphNode{
		ID:        domain.NewID(),
		Type:      domain.NodeTask,
		Title:     "Pick the first concrete step",
		Weight:    defaultNodeWeight,
		CreatedAt: now,
		UpdatedAt: now,
	}
	note := domain.GraphNode{
		ID:        domain.NewID(),
		Type:      domain.NodeNote,
		Title:     "Why this matters",
		Weight:    defaultNodeWeight,
		CreatedAt: now,
		UpdatedAt: now,
	}

	g.Nodes = append(g.Nodes, subgoal, task, note)
	g.Edges = append(g.Edges,
		domain.GraphEdge{From: task.ID, To: subgoal.ID, Label: "advances"},
		domain.GraphEdge{From: note.ID, To: subgoal.ID, Label: "informs"},
	)
	appendHistory(g, now, "seeded graph for %q", goalTitle)
}

// Pin sets or clears the pinned flag on a node. Pinned nodes hold full
// weight through refreshes.
func Pin(g *domain.GoalGraph, nodeID string, pinned bool, now time.Time) error {
	n := g.Node(nodeID)
	if n == nil {
		return fmt.Errorf("pin %s: %w", nodeID, ErrNodeNotFound)
	}
	n.Pinned = pinned
	if pinned {
		n.Weight = 1.0
	}
	n.UpdatedAt = now
	verb := "pinned"
	if !pinned {
		verb = "unpinned"
	}
	appendHistory(g, now, "%s %q", verb, n.Title)
	return nil
}

// Refresh decays the weight of unpinned nodes toward the baseline so stale
// branches fade while pinned ones stay prominent.
func Refresh(g *domain.GoalGraph, now time.Time) {
	for i := range g.Nodes {
		n := &g.Nodes[i]
		if n.Pinned {
			n.Weight = 1.0
			continue
		}
		n.Weight = defaultNodeWeight + (n.Weight-defaultNodeWeight)*0.5
		n.UpdatedAt = now
	}
	appendHistory(g, now, "refreshed node weights")
}

// Expand adds child nodes under a parent, each linked to it by an edge.
// Nodes receive fresh identifiers and the default weight when unset.
func Expand(g *domain.GoalGraph, parentID string, children []domain.GraphNode, now time.Time) error {
	parent := g.Node(parentID)
	if parent == nil {
		return fmt.Errorf("expand %s: %w", parentID, ErrNodeNotFound)
	}
	for _, child := range children {
		child.ID = domain.NewID()
		if child.Weight == 0 {
			child.Weight = defaultNodeWeight
		}
		child.CreatedAt = now
		child.UpdatedAt = now
		g.Nodes = append(g.Nodes, child)
		g.Edges = append(g.Edges, domain.GraphEdge{From: child.ID, To: parentID})
	}
	appendHistory(g, now, "expanded %q with %d node(s)", parent.Title, len(children))
	return nil
}

// AddEdge links two existing nodes. Both endpoints must exist.
func AddEdge(g *domain.GoalGraph, from, to, label string, now time.Time) error {
	if !g.HasNode(from) || !g.HasNode(to) {
		return ErrEdgeEndpoint
	}
	g.Edges = append(g.Edges, domain.GraphEdge{From: from, To: to, Label: label})
	appendHistory(g, now, "linked %s → %s", from, to)
	return nil
}

func appendHistory(g *domain.GoalGraph, now time.Time, format string, args ...any) {
	entry := now.UTC().Format("2006-01-02 15:04") + " " + fmt.Sprintf(format, args...)
	g.History = append(g.History, entry)
}
