package domain

import "time"

// Goal is a target the user is pursuing.
type Goal struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Status      GoalStatus `json:"status"`
	Importance  int        `json:"importance"` // 1..5

	TaskGroups []TaskGroup `json:"taskGroups,omitempty"`

	// Progress is derived from task completion. Callers never set it
	// directly; RecomputeProgress is the only writer.
	Progress float64 `json:"progress"`

	Graph     *GoalGraph `json:"graph,omitempty"`
	PillarIDs []string   `json:"pillarIds,omitempty"`
	Pinned    bool       `json:"pinned,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TaskGroup is an ordered group of tasks under a goal.
type TaskGroup struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Tasks []Task `json:"tasks,omitempty"`
}

// Task is a single completable step within a task group.
type Task struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Done  bool   `json:"done"`
}

// RecomputeProgress recalculates the goal's progress ratio from task
// completion. A goal with no tasks has progress 0.
func (g *Goal) RecomputeProgress() {
	total, done := 0, 0
	for _, tg := range g.TaskGroups {
		for _, t := range tg.Tasks {
			total++
			if t.Done {
				done++
			}
		}
	}
	if total == 0 {
		g.Progress = 0
		return
	}
	g.Progress = float64(done) / float64(total)
}
