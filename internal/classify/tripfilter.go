// README: Travel-trip vs local-activity filter.
package classify

import "wanderai/internal/lexicon"

// IsTravelTrip reports whether the message describes an actual travel trip
// rather than a purely local or social activity. True when a trip-indicator
// word is present, or when any tag that intrinsically implies travel is set
// (every tag except cafe/city). A pure "cafe recommendations" message with no
// trip indicator fails the filter.
func IsTravelTrip(text string, tags Tags) bool {
	if HasTripIndicator(text) {
		return true
	}
	for topic := range tags {
		if !lexicon.LocalActivityTopics[topic] {
			return true
		}
	}
	return false
}
