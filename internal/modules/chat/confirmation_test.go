package chat

import (
	"errors"
	"strings"
	"testing"
)

// toConfirmation drives a session to the confirmation question for Alibaug.
func toConfirmation(t *testing.T, svc *Service, sess *Session) {
	t.Helper()
	toSelection(t, svc, sess)
	turn(t, svc, sess, "2")
	if sess.State != StateConfirmation || sess.Selected == nil {
		t.Fatalf("state=%s selected=%v, want confirmation with a pick", sess.State, sess.Selected)
	}
}

func TestConfirmationReject(t *testing.T) {
	svc := newTestService(&fakePlanner{})
	sess := NewSession()
	toConfirmation(t, svc, sess)
	before := len(sess.Candidates)

	res := turn(t, svc, sess, "no, show others")

	if sess.State != StateSelection {
		t.Errorf("state = %s, want %s", sess.State, StateSelection)
	}
	if sess.Selected != nil {
		t.Error("selected not cleared on reject")
	}
	if len(sess.Candidates) != before {
		t.Errorf("candidates = %d, want the original %d", len(sess.Candidates), before)
	}
	if !strings.Contains(res.Response, "1. Lonavala") {
		t.Errorf("response = %q, want the options again", res.Response)
	}
}

func TestConfirmationModifyKeepsTagsOnly(t *testing.T) {
	svc := newTestService(&fakePlanner{})
	sess := NewSession()
	toConfirmation(t, svc, sess)

	turn(t, svc, sess, "can we change it up")

	if sess.State != StateSuggestion {
		t.Errorf("state = %s, want %s", sess.State, StateSuggestion)
	}
	if sess.Selected != nil || sess.Candidates != nil {
		t.Error("modify must clear selected and candidates")
	}
	if sess.Intent == nil || !sess.Intent.Tags["hiking"] {
		t.Errorf("intent = %+v, want topic tags preserved as a hint", sess.Intent)
	}
	if sess.Intent.Raw != "" || sess.Intent.Budget != 0 {
		t.Errorf("intent = %+v, want everything but tags discarded", sess.Intent)
	}
}

func TestConfirmationUnmatchedReasksVerbatim(t *testing.T) {
	svc := newTestService(&fakePlanner{})
	sess := NewSession()
	toConfirmation(t, svc, sess)
	want := confirmQuestion(sess.Selected)

	res := turn(t, svc, sess, "hmm, the weather though")

	if sess.State != StateConfirmation {
		t.Errorf("state = %s, want %s", sess.State, StateConfirmation)
	}
	if res.Response != want {
		t.Errorf("response = %q, want the question re-asked verbatim %q", res.Response, want)
	}
}

// Hedging language containing an affirmative token must never finalize.
func TestConfirmationHedgeDoesNotFinalize(t *testing.T) {
	hedges := []string{"hmm not sure yet", "ok but how far is it?", "not sure, maybe", "ok wait"}
	for _, msg := range hedges {
		t.Run(msg, func(t *testing.T) {
			svc := newTestService(&fakePlanner{})
			sess := NewSession()
			toConfirmation(t, svc, sess)
			want := confirmQuestion(sess.Selected)

			res := turn(t, svc, sess, msg)

			if res.Finalized {
				t.Fatalf("%q finalized the booking", msg)
			}
			if sess.State != StateConfirmation || sess.Selected == nil {
				t.Errorf("state=%s selected=%v, want confirmation intact", sess.State, sess.Selected)
			}
			if res.Response != want {
				t.Errorf("response = %q, want the question re-asked verbatim", res.Response)
			}
		})
	}
}

// A bare "sure" or "ok" is still an affirmative when it is the whole message.
func TestConfirmationBareAffirmFinalizes(t *testing.T) {
	for _, msg := range []string{"sure", "ok!", "Okay."} {
		t.Run(msg, func(t *testing.T) {
			svc := newTestService(&fakePlanner{})
			sess := NewSession()
			toConfirmation(t, svc, sess)

			res := turn(t, svc, sess, msg)

			if !res.Finalized {
				t.Fatalf("%q did not finalize", msg)
			}
			if sess.State != StateSuggestion {
				t.Errorf("state = %s after finalize, want %s", sess.State, StateSuggestion)
			}
		})
	}
}

func TestConfirmationItineraryFailureStaysPut(t *testing.T) {
	planner := &fakePlanner{}
	svc := newTestService(planner)
	sess := NewSession()
	toConfirmation(t, svc, sess)
	planner.itineraryErr = errors.New("deadline exceeded")

	res := turn(t, svc, sess, "yes")

	if sess.State != StateConfirmation || sess.Selected == nil {
		t.Errorf("state=%s selected=%v, want confirmation intact after failure", sess.State, sess.Selected)
	}
	if res.Finalized {
		t.Error("failed build must not finalize")
	}
	if !strings.Contains(res.Response, "try that again") {
		t.Errorf("response = %q, want apology", res.Response)
	}
}

func TestConfirmationNeverFiresOnDisjointTopics(t *testing.T) {
	svc := newTestService(&fakePlanner{})
	sess := NewSession()
	toConfirmation(t, svc, sess)

	res := turn(t, svc, sess, "plan a romantic cafe getaway")

	if !res.Reset {
		t.Fatal("disjoint-topic message in confirmation must reset")
	}
	if res.Finalized {
		t.Error("stale confirmation absorbed an unrelated request")
	}
	if sess.Selected != nil && sess.Selected.Name == "Alibaug" {
		t.Errorf("previous pick survived: %v", sess.Selected)
	}
}
