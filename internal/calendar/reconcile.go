// Package calendar reconciles foreign calendar events into the schedule as
// origin=external time blocks.
package calendar

import (
	"time"

	"github.com/avelinek/dayflow/internal/domain"
)

// Event is a foreign calendar event as supplied by the sync collaborator.
type Event struct {
	ID       string    `json:"id"`
	Title    string    `json:"title"`
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
	Notes    string    `json:"notes,omitempty"`
	Modified time.Time `json:"modified"`
}

// ReconcileResult summarizes one reconciliation pass.
type ReconcileResult struct {
	Added   int
	Updated int
	Removed int
}

// Reconcile merges foreign events into today's blocks: new events become
// external blocks, edited events (newer last-modified) re-sync their fields,
// and external blocks whose foreign identifier no longer appears are
// removed. Blocks from other origins are never touched.
func Reconcile(state *domain.State, events []Event, now time.Time) ReconcileResult {
	var res ReconcileResult

	seen := make(map[string]bool, len(events))
	for _, ev := range events {
		if ev.ID == "" || !ev.End.After(ev.Start) {
			continue
		}
		seen[ev.ID] = true

		if existing := findForeign(state, ev.ID); existing != nil {
			if existing.ForeignModified != nil && !ev.Modified.After(*existing.ForeignModified) {
				continue
			}
			existing.Title = ev.Title
			existing.Start = ev.Start
			existing.Duration = ev.End.Sub(ev.Start)
			existing.Notes = ev.Notes
			modified := ev.Modified
			existing.ForeignModified = &modified
			existing.UpdatedAt = now
			res.Updated++
			continue
		}

		modified := ev.Modified
		state.Today.Blocks = append(state.Today.Blocks, domain.TimeBlock{
			ID:              domain.NewID(),
			Title:           ev.Title,
			Start:           ev.Start,
			Duration:        ev.End.Sub(ev.Start),
			Energy:          domain.EnergyMedium,
			Notes:           ev.Notes,
			ForeignID:       ev.ID,
			ForeignModified: &modified,
			State:           domain.BlockScheduled,
			Origin:          domain.OriginExternal,
			CreatedAt:       now,
			UpdatedAt:       now,
		})
		res.Added++
	}

	kept := state.Today.Blocks[:0]
	for i := range state.Today.Blocks {
		b := state.Today.Blocks[i]
		if b.Origin == domain.OriginExternal && b.ForeignID != "" && !seen[b.ForeignID] {
			res.Removed++
			continue
		}
		kept = append(kept, b)
	}
	state.Today.Blocks = kept

	return res
}

func findForeign(state *domain.State, foreignID string) *domain.TimeBlock {
	for i := range state.Today.Blocks {
		b := &state.Today.Blocks[i]
		if b.Origin == domain.OriginExternal && b.ForeignID == foreignID {
			return b
		}
	}
	return nil
}
