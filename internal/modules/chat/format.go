// README: Plain-text rendering of candidates and itineraries for chat replies.
package chat

import (
	"fmt"
	"strings"

	"wanderai/internal/ai"
)

func formatCandidates(candidates []ai.Candidate) string {
	var b strings.Builder
	for i, c := range candidates {
		fmt.Fprintf(&b, "%d. %s", i+1, c.Name)
		if c.Category != "" {
			fmt.Fprintf(&b, " (%s)", c.Category)
		}
		if c.DriveTime != "" {
			fmt.Fprintf(&b, " — %s drive", c.DriveTime)
		}
		b.WriteString("\n")
		if c.Reasoning != "" {
			fmt.Fprintf(&b, "   %s\n", c.Reasoning)
		}
		if c.EstimatedCost != "" {
			fmt.Fprintf(&b, "   Est. cost: %s\n", c.EstimatedCost)
		}
	}
	return b.String()
}

func formatItinerary(it *ai.Itinerary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Here's your %d-day plan for %s:\n", it.DurationDays, it.Destination)
	for _, day := range it.Days {
		b.WriteString("\n")
		if day.Title != "" {
			fmt.Fprintf(&b, "Day %d — %s\n", day.Day, day.Title)
		} else {
			fmt.Fprintf(&b, "Day %d\n", day.Day)
		}
		for _, slot := range day.Schedule {
			fmt.Fprintf(&b, "  %s  %s", slot.Time, slot.Activity)
			if slot.Location != "" {
				fmt.Fprintf(&b, " @ %s", slot.Location)
			}
			if slot.Cost != "" {
				fmt.Fprintf(&b, " (%s)", slot.Cost)
			}
			b.WriteString("\n")
		}
		if day.Notes != "" {
			fmt.Fprintf(&b, "  Note: %s\n", day.Notes)
		}
	}
	if it.TotalEstimatedCost != "" {
		fmt.Fprintf(&b, "\nEstimated total: %s\n", it.TotalEstimatedCost)
	}
	if len(it.PackingList) > 0 {
		fmt.Fprintf(&b, "Pack: %s\n", strings.Join(it.PackingList, ", "))
	}
	for _, note := range it.ImportantNotes {
		fmt.Fprintf(&b, "Heads up: %s\n", note)
	}
	return strings.TrimRight(b.String(), "\n")
}

// intentForPlanner converts the session intent into the planner's request
// shape. A nil intent yields an empty request rather than a panic.
func intentForPlanner(in *Intent) *ai.TravelIntent {
	if in == nil {
		return &ai.TravelIntent{GroupSize: 1}
	}
	out := &ai.TravelIntent{
		Interests:       in.Tags.Sorted(),
		BudgetPerPerson: in.Budget,
		GroupSize:       in.GroupSize,
		DurationDays:    in.DurationDays,
		RawText:         in.Raw,
	}
	if out.GroupSize == 0 {
		out.GroupSize = 1
	}
	return out
}
