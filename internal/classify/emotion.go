// README: Frustration/venting detection (runs before everything else in the funnel).
package classify

import "wanderai/internal/lexicon"

// IsFrustration reports whether the message is venting rather than a request.
// Two tiers: short curse phrases match as substrings; bare curse tokens match
// only when the whole message reduces to that single token. A flagged word
// buried in an otherwise coherent sentence does not count.
func IsFrustration(text string) bool {
	norm := normalize(text)
	if norm == "" {
		return false
	}
	for _, phrase := range lexicon.FrustrationPhrases {
		if containsTerm(norm, phrase) {
			return true
		}
	}
	bare := stripPunct(norm)
	for _, tok := range lexicon.FrustrationTokens {
		if bare == tok {
			return true
		}
	}
	return false
}
