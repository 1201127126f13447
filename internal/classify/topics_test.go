package classify

import (
	"testing"

	"wanderai/internal/lexicon"
)

func TestTopics(t *testing.T) {
	cases := []struct {
		text string
		want []lexicon.Topic
	}{
		{"plan a hiking trip", []lexicon.Topic{lexicon.TopicHiking}},
		{"romantic date with girlfriend", []lexicon.Topic{lexicon.TopicRomantic}},
		{"romantic beach getaway", []lexicon.Topic{lexicon.TopicRomantic, lexicon.TopicBeach}},
		{"cafe recommendations", []lexicon.Topic{lexicon.TopicCafe}},
		{"family trip to historical sites", []lexicon.Topic{lexicon.TopicFamily, lexicon.TopicHeritage}},
		{"I want a budget and luxury trip", []lexicon.Topic{lexicon.TopicBudget, lexicon.TopicLuxury}},
		{"hello there", nil},
	}
	for _, tc := range cases {
		got := Topics(tc.text)
		for _, topic := range tc.want {
			if !got.Has(topic) {
				t.Errorf("Topics(%q) = %v, missing %s", tc.text, got.Sorted(), topic)
			}
		}
		if tc.want == nil && len(got) != 0 {
			t.Errorf("Topics(%q) = %v, want empty", tc.text, got.Sorted())
		}
	}
}

// Same input must always yield the same tag set.
func TestTopicsDeterministic(t *testing.T) {
	const text = "romantic beach getaway with aesthetic cafes"
	first := Topics(text)
	for i := 0; i < 50; i++ {
		again := Topics(text)
		if len(again) != len(first) || !again.Intersects(first) {
			t.Fatalf("run %d: Topics(%q) = %v, want %v", i, text, again.Sorted(), first.Sorted())
		}
		for topic := range first {
			if !again.Has(topic) {
				t.Fatalf("run %d: missing %s", i, topic)
			}
		}
	}
}

func TestTopicsPluralForms(t *testing.T) {
	cases := []struct {
		text string
		want lexicon.Topic
	}{
		{"trails through the mountains", lexicon.TopicHiking},
		{"weekend treks nearby", lexicon.TopicHiking},
		{"visit some old forts and temples", lexicon.TopicHeritage},
		{"island hopping around the islands", lexicon.TopicBeach},
		{"luxury resorts with villas", lexicon.TopicLuxury},
		{"which dates work for you", ""},
	}
	for _, tc := range cases {
		got := Topics(tc.text)
		if tc.want == "" {
			if len(got) != 0 {
				t.Errorf("Topics(%q) = %v, want empty", tc.text, got.Sorted())
			}
			continue
		}
		if !got.Has(tc.want) {
			t.Errorf("Topics(%q) = %v, missing %s", tc.text, got.Sorted(), tc.want)
		}
	}
}

func TestTopicsWordBoundaries(t *testing.T) {
	// "date" inside "update" and "hill" inside "chilling" must not match.
	if Topics("update my profile").Has(lexicon.TopicRomantic) {
		t.Error("'update' misread as a romantic date")
	}
	if got := Topics("just chilling at home"); len(got) != 0 {
		t.Errorf("Topics('just chilling at home') = %v, want empty", got.Sorted())
	}
}

func TestIsIndependent(t *testing.T) {
	hiking := Tags{lexicon.TopicHiking: true}
	cases := []struct {
		name      string
		text      string
		prev      Tags
		firstTurn bool
		want      bool
	}{
		{"first turn", "plan a trek", nil, true, true},
		{"switch marker", "now plan a romantic trip instead", hiking, false, true},
		{"disjoint tags", "plan a date with my girlfriend in a cafe", hiking, false, true},
		{"overlapping tags", "make the trek two days longer", hiking, false, false},
		{"no tags no marker", "sounds good to me", hiking, false, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsIndependent(tc.text, tc.prev, tc.firstTurn); got != tc.want {
				t.Errorf("IsIndependent(%q) = %v, want %v", tc.text, got, tc.want)
			}
		})
	}
}
