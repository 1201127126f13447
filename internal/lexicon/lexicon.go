// README: Static keyword tables driving the classifier pipeline. Data only, no logic.
package lexicon

// Topic is one label from the closed trip-category vocabulary.
type Topic string

const (
	TopicHiking    Topic = "hiking"
	TopicRomantic  Topic = "romantic"
	TopicFamily    Topic = "family"
	TopicAdventure Topic = "adventure"
	TopicBeach     Topic = "beach"
	TopicHeritage  Topic = "heritage"
	TopicBudget    Topic = "budget"
	TopicLuxury    Topic = "luxury"
	TopicCafe      Topic = "cafe"
	TopicCity      Topic = "city"
)

// TopicKeywords maps each topic to its trigger terms. Single-word terms match
// on word boundaries; terms containing a space match as substrings.
var TopicKeywords = map[Topic][]string{
	TopicHiking:    {"hike", "hikes", "hiking", "trek", "treks", "trekking", "trail", "trails", "mountain", "mountains", "hill station", "hill stations", "fort climb"},
	// "dates" stays out of the romantic set: in messages it almost always
	// means calendar dates.
	TopicRomantic: {"romantic", "date", "girlfriend", "boyfriend", "honeymoon", "couple", "couples", "anniversary", "partner"},
	TopicFamily:    {"family", "kids", "children", "parents", "kid friendly", "family friendly"},
	TopicAdventure: {"adventure", "adventures", "paragliding", "rafting", "camping", "thrill", "thrills", "zipline", "kayaking"},
	TopicBeach:     {"beach", "beaches", "seaside", "coast", "coastal", "island", "islands"},
	TopicHeritage:  {"heritage", "historical", "history", "fort", "forts", "temple", "temples", "museum", "museums", "culture", "monument", "monuments"},
	TopicBudget:    {"budget", "cheap", "affordable", "low cost", "economical", "pocket friendly"},
	TopicLuxury:    {"luxury", "luxurious", "premium", "resort", "resorts", "villa", "villas", "5 star", "five star"},
	TopicCafe:      {"cafe", "cafes", "coffee", "brunch", "bakery", "bakeries"},
	TopicCity:      {"city", "urban", "nightlife", "mall", "malls", "downtown"},
}

// LocalActivityTopics are the tags that do not intrinsically imply travel.
// Every other topic passes the trip filter on its own.
var LocalActivityTopics = map[Topic]bool{
	TopicCafe: true,
	TopicCity: true,
}

// FrustrationPhrases match anywhere in the normalized message (tier a).
var FrustrationPhrases = []string{
	"the fuck",
	"what the fuck",
	"what the hell",
	"this is useless",
	"this sucks",
	"are you kidding me",
	"fuck this",
	"fuck off",
	"piece of shit",
}

// FrustrationTokens match only when the entire trimmed, punctuation-stripped
// message equals one token (tier b). Keeps place names like "Fucking, Austria"
// inside longer sentences from tripping the detector.
var FrustrationTokens = []string{
	"fuck", "fck", "wtf", "ffs", "shit", "bullshit", "damn", "dammit", "crap", "ugh", "argh",
}

// TripIndicators signal an actual travel request rather than a local activity.
var TripIndicators = []string{
	"trip", "destination", "travel", "visit", "getaway", "itinerary",
	"days", "nights", "accommodation", "stay", "weekend", "vacation",
	"holiday", "tour", "outing",
}

// SwitchMarkers are explicit pivot phrases that mark a message as independent
// of the active topic.
var SwitchMarkers = []string{
	"instead", "different", "next", "but what about", "plan another",
	"something else", "forget that", "forget it", "change of plans",
	"new trip", "start over", "actually,",
}

// NewRequestWords trigger a reset from the Suggestion state when an intent is
// already active.
var NewRequestWords = []string{"plan", "suggest", "what about", "another"}

// RejectionPhrases make the selection handler re-present the candidate list.
var RejectionPhrases = []string{"none of these", "none of those", "no thanks", "not these", "neither"}

// RandomPickPhrases ask the selection handler to choose on the user's behalf.
var RandomPickPhrases = []string{"surprise me", "pick for me", "you choose", "you pick", "any of them", "dealer's choice"}

// PositionWords map ordinal language to zero-based candidate indexes.
// "last" is resolved against the candidate count at match time.
var PositionWords = map[string]int{
	"first":  0,
	"1st":    0,
	"second": 1,
	"2nd":    1,
	"third":  2,
	"3rd":    2,
	"fourth": 3,
	"4th":    3,
	"fifth":  4,
	"5th":    4,
}

// Confirmation synonym sets. Disjoint by construction; Affirm/Reject/Modify
// are checked in that order.
var (
	AffirmWords = []string{"yes", "yep", "yeah", "confirm", "confirmed", "sounds good", "looks good", "let's go", "lets go", "book it", "perfect", "go ahead"}
	RejectWords = []string{"no", "nope", "nah", "not this one", "go back", "other options", "show others", "don't", "dont"}
	ModifyWords = []string{"change", "modify", "adjust", "something different", "other places", "new suggestions", "restart", "from scratch"}
)

// AffirmExact are hedge-prone affirmatives that only count when the whole
// message reduces to the token. "sure" must confirm; "hmm not sure yet"
// must not.
var AffirmExact = []string{"sure", "ok", "okay", "k"}
