package ai

import (
	"fmt"
	"strings"
)

const systemPrompt = `You are a day-planning assistant. Given the user's current
schedule, mood, weather, and guiding principles, propose a short list of
activity suggestions. Respond with ONLY a JSON array, no prose. Each element:
{"title": string, "durationMin": int, "startHour": int, "startMinute": int,
"energy": "high"|"medium"|"low"|"restful", "confidence": number 0..1,
"linkHints": [string], "reason": string}`

// buildPrompt renders the generation context into the user prompt.
func buildPrompt(gc GenerateContext) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Date: %s\n", gc.Date.Format("Monday 2006-01-02"))
	if gc.Mood != "" {
		fmt.Fprintf(&b, "Mood: %s\n", gc.Mood)
	}
	if gc.WeatherSummary != "" {
		fmt.Fprintf(&b, "Weather: %s\n", gc.WeatherSummary)
	}

	if len(gc.Blocks) > 0 {
		b.WriteString("Already scheduled:\n")
		for i := range gc.Blocks {
			blk := &gc.Blocks[i]
			fmt.Fprintf(&b, "- %s—%s %s (%s energy)\n",
				blk.Start.Format("15:04"), blk.End().Format("15:04"), blk.Title, blk.Energy)
		}
	} else {
		b.WriteString("The schedule is empty so far.\n")
	}

	if len(gc.PillarGuidance) > 0 {
		b.WriteString("Guiding principles:\n")
		for _, g := range gc.PillarGuidance {
			fmt.Fprintf(&b, "- %s\n", g)
		}
	}

	b.WriteString("Propose 3-5 suggestions that fit the open time.")
	return b.String()
}
