package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/avelinek/dayflow/internal/domain"
)

// Minutes renders a duration as whole minutes ("45m").
func Minutes(d time.Duration) string {
	return fmt.Sprintf("%dm", int(d.Minutes()))
}

// FormatSuggestions renders the ranked suggestion list with scores, links,
// and reason text.
func FormatSuggestions(suggestions []domain.Suggestion) string {
	var b strings.Builder
	b.WriteString(Header("Suggestions") + "\n")

	if len(suggestions) == 0 {
		b.WriteString(Dim("Nothing pending — run `dayflow plan` for a fresh cycle.") + "\n")
		return b.String()
	}

	for i, s := range suggestions {
		link := ""
		if s.GoalTitle != "" {
			link = StylePurple.Render(" ◆ " + s.GoalTitle)
		}
		if s.PillarTitle != "" {
			link += StyleBlue.Render(" ◇ " + s.PillarTitle)
		}
		b.WriteString(fmt.Sprintf("%2d. %s  %s  %s %s%s\n",
			i+1,
			Bold(s.Title),
			StyleGreen.Render(Minutes(s.Duration)),
			Dim(s.Start.Format("15:04")),
			Dim(fmt.Sprintf("%.2f pts", s.Weight)),
			link,
		))
		if s.Reason != "" {
			b.WriteString("    " + Dim(s.Reason) + "\n")
		}
		b.WriteString("    " + Dim("id "+s.ID) + "\n")
	}
	return b.String()
}

// FormatBlocks renders today's schedule in chronological order.
func FormatBlocks(blocks []domain.TimeBlock) string {
	var b strings.Builder
	b.WriteString(Header("Today") + "\n")

	if len(blocks) == 0 {
		b.WriteString(Dim("No blocks scheduled.") + "\n")
		return b.String()
	}

	for i := range blocks {
		blk := &blocks[i]
		b.WriteString(fmt.Sprintf("%s—%s  %s  %s  %s  %s\n",
			blk.Start.Format("15:04"),
			blk.End().Format("15:04"),
			Bold(blk.Title),
			EnergyStyle(blk.Energy).Render(string(blk.Energy)),
			StateBadge(blk.State),
			Dim("id "+blk.ID),
		))
	}
	return b.String()
}

// FormatFollowUps renders pending follow-up items.
func FormatFollowUps(followUps []domain.FollowUp) string {
	if len(followUps) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(Header("Follow-ups") + "\n")
	for _, f := range followUps {
		b.WriteString(fmt.Sprintf("• %s  %s %s  %s\n",
			Bold(f.Title),
			Dim(f.Start.Format("Jan 2 15:04")),
			StyleGreen.Render(Minutes(f.Duration)),
			Dim("block "+f.BlockID),
		))
	}
	return b.String()
}

// FormatFeedbackBadge renders a compact boost badge for an entity.
func FormatFeedbackBadge(stats domain.FeedbackStats) string {
	total := stats.Positive + stats.Negative
	if total == 0 {
		return Dim("no signal")
	}
	score := stats.NetScore()
	badge := fmt.Sprintf("%+d/%d (net %+.2f)", stats.Positive-stats.Negative, total, score)
	if score > 0 {
		return StyleGreen.Render(badge)
	}
	if score < 0 {
		return StyleRed.Render(badge)
	}
	return StyleYellow.Render(badge)
}

// FormatGraph renders a goal graph snapshot as an indented node list with
// edges and recent history.
func FormatGraph(g domain.GoalGraph) string {
	var b strings.Builder
	b.WriteString(Header("Mind Map") + "\n")

	for _, n := range g.Nodes {
		pin := ""
		if n.Pinned {
			pin = StyleYellow.Render(" ⚑")
		}
		b.WriteString(fmt.Sprintf("[%s] %s%s  %s  %s\n",
			StylePurple.Render(string(n.Type)),
			Bold(n.Title),
			pin,
			Dim(fmt.Sprintf("w=%.2f", n.Weight)),
			Dim("id "+n.ID),
		))
	}
	if len(g.Edges) > 0 {
		b.WriteString(Dim(fmt.Sprintf("%d edge(s)", len(g.Edges))) + "\n")
	}
	if n := len(g.History); n > 0 {
		b.WriteString(Header("History") + "\n")
		start := 0
		if n > 5 {
			start = n - 5
		}
		for _, h := range g.History[start:] {
			b.WriteString(Dim("• "+h) + "\n")
		}
	}
	return b.String()
}
