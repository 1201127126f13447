// README: Continuation-vs-new-request detection (the topic-bleed defense).
package classify

import "wanderai/internal/lexicon"

// IsIndependent decides whether the message starts a new request rather than
// continuing the active topic. Rules in order, first match wins:
//
//  1. first turn — nothing to be independent from
//  2. an explicit switch marker ("instead", "plan another", ...)
//  3. a non-empty tag set sharing nothing with the previous turn's tags
func IsIndependent(text string, previousTags Tags, firstTurn bool) bool {
	if firstTurn {
		return true
	}
	norm := normalize(text)
	if containsAny(norm, lexicon.SwitchMarkers) {
		return true
	}
	tags := Topics(text)
	if len(tags) > 0 && !tags.Intersects(previousTags) {
		return true
	}
	return false
}

// HasNewRequestWord reports whether the message reads like a fresh planning
// request ("plan", "suggest", ...). The controller consults this only in the
// Suggestion state with an intent already active.
func HasNewRequestWord(text string) bool {
	return containsAny(normalize(text), lexicon.NewRequestWords)
}
