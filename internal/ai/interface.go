package ai

import (
	"context"
)

// Planner defines the contract the dialogue core needs from the generation
// collaborator. Implementations own their grounding (knowledge-base
// retrieval happens behind this interface, never in the core) and must treat
// the caller's context deadline as the timeout budget.
type Planner interface {
	// ExtractIntent parses a validated user message into a structured trip request.
	ExtractIntent(ctx context.Context, text string) (*TravelIntent, error)

	// SuggestDestinations returns ranked candidates for the intent.
	// An empty candidate list is a valid result, not an error.
	SuggestDestinations(ctx context.Context, intent *TravelIntent, limit int) (*Suggestions, error)

	// BuildItinerary produces a day-by-day plan for the chosen destination.
	BuildItinerary(ctx context.Context, intent *TravelIntent, destination string) (*Itinerary, error)

	// DescribePlace returns a short grounded description of a destination.
	DescribePlace(ctx context.Context, name string) (string, error)
}
