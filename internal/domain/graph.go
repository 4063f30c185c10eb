package domain

import "time"

// GraphNode is a single node in a goal's mind map.
type GraphNode struct {
	ID        string        `json:"id"`
	Type      GraphNodeType `json:"type"`
	Title     string        `json:"title"`
	Detail    string        `json:"detail,omitempty"`
	Pinned    bool          `json:"pinned,omitempty"`
	Weight    float64       `json:"weight"` // 0..1
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
}

// GraphEdge is a directed edge between two graph nodes. Both endpoints must
// reference existing node identifiers.
type GraphEdge struct {
	From  string `json:"from"`
	To    string `json:"to"`
	Label string `json:"label,omitempty"`
}

// GoalGraph is the per-goal mind map: an arena of nodes indexed by
// identifier, edges stored as identifier pairs, plus an append-only log of
// human-readable change summaries.
type GoalGraph struct {
	Nodes   []GraphNode `json:"nodes,omitempty"`
	Edges   []GraphEdge `json:"edges,omitempty"`
	History []string    `json:"history,omitempty"`
}

// Node returns a pointer to the node with the given ID, or nil.
func (g *GoalGraph) Node(id string) *GraphNode {
	for i := range g.Nodes {
		if g.Nodes[i].ID == id {
			return &g.Nodes[i]
		}
	}
	return nil
}

// HasNode reports whether a node with the given ID exists.
func (g *GoalGraph) HasNode(id string) bool {
	return g.Node(id) != nil
}
