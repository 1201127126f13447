// README: Ambiguity rule table; produces guaranteed-safe canned clarification prompts.
package classify

import "wanderai/internal/lexicon"

// Clarification prompts are canned on purpose: they must never hallucinate,
// so no model call is involved in producing them.
const (
	promptBudgetTier = "You've asked for both a budget trip and a luxury trip, which pull in opposite directions. " +
		"Which would you prefer: a budget-friendly escape or a premium luxury stay?"
	promptCafeScope = "Happy to help! Are you after local cafe recommendations, " +
		"or a destination trip where great cafes are part of the plan?"
	promptRomanticScope = "Sounds nice! Should I plan a romantic trip or getaway to a destination, " +
		"or are you looking for local date-activity ideas?"
	promptRomanticCafe = "Lovely! Should I plan a romantic getaway to a destination known for its cafes?"
)

// NeedsClarification runs the priority-ordered ambiguity table. First matching
// rule wins; at most one clarification fires per turn. When it fires the
// controller must not advance state or call any collaborator.
func NeedsClarification(text string, tags Tags) (bool, string) {
	norm := normalize(text)
	hasTripWord := HasTripIndicator(norm)

	switch {
	case tags.Has(lexicon.TopicBudget) && tags.Has(lexicon.TopicLuxury):
		return true, promptBudgetTier
	case tags.Only(lexicon.TopicCafe) && !hasTripWord:
		return true, promptCafeScope
	case tags.Has(lexicon.TopicRomantic) && !hasTripWord:
		return true, promptRomanticScope
	case tags.Has(lexicon.TopicRomantic) && tags.Has(lexicon.TopicCafe):
		return true, promptRomanticCafe
	}
	return false, ""
}

// HasTripIndicator reports whether the message carries a word that signals an
// actual travel request (trip, getaway, itinerary, nights, ...).
func HasTripIndicator(text string) bool {
	return containsAny(normalize(text), lexicon.TripIndicators)
}
