// README: Confirmation-state handler; affirm builds the itinerary, reject and modify back out.
package chat

import (
	"context"
	"log"

	"wanderai/internal/classify"
	"wanderai/internal/lexicon"
)

// handleConfirmation interprets the user's answer to the confirmation
// question. The three word sets are checked in a fixed order; anything that
// matches none of them re-asks the question verbatim.
func (s *Service) handleConfirmation(ctx context.Context, sess *Session, text string) (TurnResult, error) {
	norm := classify.Normalize(text)

	switch {
	case classify.ContainsAny(norm, lexicon.AffirmWords) || classify.EqualsAny(norm, lexicon.AffirmExact):
		return s.finalize(ctx, sess)

	case classify.ContainsAny(norm, lexicon.RejectWords):
		if !CanTransition(sess.State, StateSelection) {
			return TurnResult{}, &InvariantError{SessionID: sess.ID, Detail: "confirmation handler outside confirmation state"}
		}
		sess.Selected = nil
		sess.State = StateSelection
		msg := "Sure, let's look at the options again:\n" + formatCandidates(sess.Candidates) +
			"\nPick another one, or describe a different trip."
		return s.reply(sess, msg), nil

	case classify.ContainsAny(norm, lexicon.ModifyWords):
		if !CanTransition(sess.State, StateSuggestion) {
			return TurnResult{}, &InvariantError{SessionID: sess.ID, Detail: "confirmation handler outside confirmation state"}
		}
		// Keep the topic tags as a hint for the next round; everything the
		// user picked is discarded.
		hint := sess.previousTags()
		sess.Selected = nil
		sess.Candidates = nil
		if sess.Intent != nil {
			sess.Intent = &Intent{Tags: hint}
		}
		sess.State = StateSuggestion
		return s.reply(sess, "Okay, let's rework it. Tell me what you'd like to change: the place, the budget, the length of the trip, anything."), nil
	}

	return s.reply(sess, confirmQuestion(sess.Selected)), nil
}

// finalize builds the itinerary for the selected destination. On success the
// session returns to a fresh Suggestion state; on planner failure nothing
// changes and the user can simply confirm again.
func (s *Service) finalize(ctx context.Context, sess *Session) (TurnResult, error) {
	intent := intentForPlanner(sess.Intent)
	it, err := s.planner.BuildItinerary(ctx, intent, sess.Selected.Name)
	if err != nil {
		log.Printf("chat: session %s itinerary build failed: %v", sess.ID, err)
		return s.reply(sess, respApology), nil
	}

	msg := formatItinerary(it) + "\n\nHave a wonderful trip! Come back any time you want to plan another one."
	sess.reset()
	res := s.reply(sess, msg)
	res.Finalized = true
	return res, nil
}
