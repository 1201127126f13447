package chat

import (
	"math/rand"
	"strings"
	"testing"
	"time"
)

func TestSelectionStrategies(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    string // selected candidate name; "" means no selection
	}{
		{"bare number", "2", "Alibaug"},
		{"number in sentence", "let's do 3 then", "Rajmachi"},
		{"ordinal word", "the second one please", "Alibaug"},
		{"last", "the last one", "Rajmachi"},
		{"display name", "lonavala sounds great", "Lonavala"},
		{"name fragment", "alibau", "Alibaug"},
		{"category", "the beach one", "Alibaug"},
		{"out of range number", "give me number 9", ""},
		{"unmatched", "hmm not sure honestly", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc := newTestService(&fakePlanner{})
			sess := NewSession()
			toSelection(t, svc, sess)

			res := turn(t, svc, sess, tc.message)

			if tc.want == "" {
				if sess.State != StateSelection || sess.Selected != nil {
					t.Fatalf("state=%s selected=%v, want to stay in selection", sess.State, sess.Selected)
				}
				if !strings.Contains(res.Response, "1. Lonavala") {
					t.Errorf("response = %q, want re-listed candidates", res.Response)
				}
				return
			}
			if sess.State != StateConfirmation {
				t.Fatalf("state = %s, want %s", sess.State, StateConfirmation)
			}
			if sess.Selected == nil || sess.Selected.Name != tc.want {
				t.Errorf("selected = %v, want %s", sess.Selected, tc.want)
			}
			if !strings.Contains(res.Response, tc.want) {
				t.Errorf("response = %q, want confirmation question naming %s", res.Response, tc.want)
			}
		})
	}
}

func TestSelectionRejectionRelists(t *testing.T) {
	svc := newTestService(&fakePlanner{})
	sess := NewSession()
	toSelection(t, svc, sess)

	res := turn(t, svc, sess, "none of these work for me")

	if sess.State != StateSelection {
		t.Errorf("state = %s, want %s", sess.State, StateSelection)
	}
	if sess.Selected != nil {
		t.Error("rejection made a selection")
	}
	if !strings.Contains(res.Response, "2. Alibaug") {
		t.Errorf("response = %q, want the list again", res.Response)
	}
}

func TestSurpriseMeIsSeeded(t *testing.T) {
	const seed = 42
	want := rand.New(rand.NewSource(seed)).Intn(3)

	svc := NewService(&fakePlanner{}, 10*time.Second, seed)
	sess := NewSession()
	toSelection(t, svc, sess)

	turn(t, svc, sess, "surprise me")

	if sess.State != StateConfirmation || sess.Selected == nil {
		t.Fatalf("state=%s selected=%v, want a confirmed random pick", sess.State, sess.Selected)
	}
	if got := sess.Selected.Name; got != sess.Candidates[want].Name {
		t.Errorf("selected = %s, want candidate %d (%s) for seed %d", got, want, sess.Candidates[want].Name, seed)
	}
}
