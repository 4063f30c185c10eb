package scheduler

import (
	"sort"
	"time"

	"github.com/avelinek/dayflow/internal/domain"
)

// Interval is a half-open [Start, End) span of occupied or free time.
// Two intervals touching at a boundary are adjacent, not overlapping.
type Interval struct {
	Start time.Time
	End   time.Time
}

// Duration returns the interval length.
func (iv Interval) Duration() time.Duration {
	return iv.End.Sub(iv.Start)
}

// BusyIntervals converts blocks to a sorted interval list, dropping
// zero-length entries.
func BusyIntervals(blocks []domain.TimeBlock) []Interval {
	out := make([]Interval, 0, len(blocks))
	for i := range blocks {
		b := &blocks[i]
		if b.Duration <= 0 {
			continue
		}
		out = append(out, Interval{Start: b.Start, End: b.End()})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Start.Before(out[j].Start) })
	return out
}

// FreeGaps returns the complement of the occupied intervals inside the
// window, in chronological order and clipped to the window boundaries.
// Occupied intervals must be sorted by start; they may overlap each other.
func FreeGaps(occupied []Interval, window Interval) []Interval {
	if !window.End.After(window.Start) {
		return nil
	}

	var gaps []Interval
	cursor := window.Start
	for _, occ := range occupied {
		if !occ.End.After(window.Start) || !occ.Start.Before(window.End) {
			continue // entirely outside the window
		}
		start := occ.Start
		if start.Before(window.Start) {
			start = window.Start
		}
		if start.After(cursor) {
			gaps = append(gaps, Interval{Start: cursor, End: start})
		}
		if occ.End.After(cursor) {
			cursor = occ.End
		}
	}
	if cursor.Before(window.End) {
		gaps = append(gaps, Interval{Start: cursor, End: window.End})
	}
	return gaps
}

// NextOpenSlot finds the earliest gap of at least minDuration that begins at
// or after the reference time, searching up to horizon. Returns false when
// nothing fits.
func NextOpenSlot(occupied []Interval, after time.Time, minDuration time.Duration, horizon time.Time) (time.Time, bool) {
	if minDuration <= 0 || !horizon.After(after) {
		return time.Time{}, false
	}
	for _, gap := range FreeGaps(occupied, Interval{Start: after, End: horizon}) {
		if gap.Duration() >= minDuration {
			return gap.Start, true
		}
	}
	return time.Time{}, false
}

// OpenSlotsInWindows finds all gaps of at least minDuration that fall inside
// the given time-of-day windows, scanning `days` consecutive days starting
// from the day containing `from`. Results are chronological. Used to place
// pillar- and routine-driven activities.
func OpenSlotsInWindows(occupied []Interval, windows []domain.TimeWindow, from time.Time, days int, minDuration time.Duration) []Interval {
	if minDuration <= 0 || days <= 0 {
		return nil
	}

	var slots []Interval
	dayStart := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, from.Location())
	for d := 0; d < days; d++ {
		base := dayStart.AddDate(0, 0, d)
		for _, w := range windows {
			win := Interval{
				Start: base.Add(time.Duration(w.StartMin) * time.Minute),
				End:   base.Add(time.Duration(w.EndMin) * time.Minute),
			}
			if win.End.Before(from) {
				continue
			}
			if win.Start.Before(from) {
				win.Start = from
			}
			for _, gap := range FreeGaps(occupied, win) {
				if gap.Duration() >= minDuration {
					slots = append(slots, gap)
				}
			}
		}
	}
	sort.Slice(slots, func(i, j int) bool { return slots[i].Start.Before(slots[j].Start) })
	return slots
}
