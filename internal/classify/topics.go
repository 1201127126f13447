// README: Multi-label topic classification over the fixed trip-category vocabulary.
package classify

import (
	"sort"

	"wanderai/internal/lexicon"
)

// Tags is a set of topic labels attached to one message.
type Tags map[lexicon.Topic]bool

// Topics maps a message to zero or more topic tags. Pure function of the
// text: no ranking, no confidence, presence is binary per tag.
func Topics(text string) Tags {
	norm := normalize(text)
	tags := Tags{}
	for topic, keywords := range lexicon.TopicKeywords {
		for _, kw := range keywords {
			if containsTerm(norm, kw) {
				tags[topic] = true
				break
			}
		}
	}
	return tags
}

func (t Tags) Has(topic lexicon.Topic) bool { return t[topic] }

// Intersects reports whether the two tag sets share any element.
func (t Tags) Intersects(other Tags) bool {
	for topic := range t {
		if other[topic] {
			return true
		}
	}
	return false
}

// Only reports whether the set consists of exactly the given topic.
func (t Tags) Only(topic lexicon.Topic) bool {
	return len(t) == 1 && t[topic]
}

// Sorted returns the tags as a stable string slice for prompts and snapshots.
func (t Tags) Sorted() []string {
	out := make([]string, 0, len(t))
	for topic := range t {
		out = append(out, string(topic))
	}
	sort.Strings(out)
	return out
}

// TagsFrom rebuilds a set from its string form (snapshot restore).
func TagsFrom(names []string) Tags {
	tags := Tags{}
	for _, n := range names {
		tags[lexicon.Topic(n)] = true
	}
	return tags
}
