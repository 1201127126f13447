// README: Selection-state handler; ordered strategies for resolving a pick.
package chat

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"wanderai/internal/ai"
	"wanderai/internal/classify"
	"wanderai/internal/lexicon"
)

// handleSelection resolves the user's message to one candidate. Strategies
// run in a fixed order and the first that fires wins; a message that matches
// none of them re-lists the options and the session stays in Selection.
func (s *Service) handleSelection(ctx context.Context, sess *Session, text string) (TurnResult, error) {
	norm := classify.Normalize(text)
	n := len(sess.Candidates)

	if classify.ContainsAny(norm, lexicon.RejectionPhrases) {
		msg := "No problem, here they are again:\n" + formatCandidates(sess.Candidates) +
			"\nIf none of these work, just describe a different kind of trip."
		return s.reply(sess, msg), nil
	}

	if classify.ContainsAny(norm, lexicon.RandomPickPhrases) {
		return s.confirmPick(sess, s.randIndex(n), "Alright, I'll pick for you. ")
	}

	if idx, ok := parseIndex(norm, n); ok {
		return s.confirmPick(sess, idx, "")
	}

	if idx, ok := positionIndex(norm, n); ok {
		return s.confirmPick(sess, idx, "")
	}

	if idx, ok := nameIndex(norm, sess.Candidates); ok {
		return s.confirmPick(sess, idx, "")
	}

	if idx, ok := categoryIndex(norm, sess.Candidates); ok {
		return s.confirmPick(sess, idx, "")
	}

	msg := "I wasn't sure which one you meant. You can pick by number or name:\n" +
		formatCandidates(sess.Candidates) +
		fmt.Sprintf("\nFor example, reply \"1\" or \"%s\".", sess.Candidates[0].Name)
	return s.reply(sess, msg), nil
}

// confirmPick records the choice, moves to Confirmation, and asks the
// question whose exact text the confirmation handler re-asks on a miss.
func (s *Service) confirmPick(sess *Session, idx int, lead string) (TurnResult, error) {
	if !CanTransition(sess.State, StateConfirmation) {
		return TurnResult{}, &InvariantError{SessionID: sess.ID, Detail: "selection handler outside selection state"}
	}
	picked := sess.Candidates[idx]
	sess.Selected = &picked
	sess.State = StateConfirmation
	return s.reply(sess, lead+confirmQuestion(sess.Selected)), nil
}

func confirmQuestion(c *ai.Candidate) string {
	var extra string
	if c.DriveTime != "" {
		extra = fmt.Sprintf(" (about %s away)", c.DriveTime)
	}
	return fmt.Sprintf("%s it is%s! Shall I put together a day-by-day plan? Say yes to confirm, no to look at the others again, or \"change\" for new suggestions.", c.Name, extra)
}

// parseIndex accepts a bare 1-based number anywhere in the message, in range.
func parseIndex(norm string, n int) (int, bool) {
	for _, field := range strings.Fields(norm) {
		field = strings.Trim(field, ".,!?)")
		v, err := strconv.Atoi(field)
		if err != nil {
			continue
		}
		if v >= 1 && v <= n {
			return v - 1, true
		}
		return 0, false
	}
	return 0, false
}

// positionIndex matches ordinal words, including "last".
func positionIndex(norm string, n int) (int, bool) {
	if classify.ContainsTerm(norm, "last") {
		return n - 1, true
	}
	for word, idx := range lexicon.PositionWords {
		if classify.ContainsTerm(norm, word) && idx < n {
			return idx, true
		}
	}
	return 0, false
}

// nameIndex matches the displayed name as a substring of the message, or a
// long-enough message as a substring of the name ("mahabalesh" works).
func nameIndex(norm string, candidates []ai.Candidate) (int, bool) {
	for i, c := range candidates {
		name := strings.ToLower(c.Name)
		if strings.Contains(norm, name) {
			return i, true
		}
		if len(norm) >= 4 && strings.Contains(name, norm) {
			return i, true
		}
	}
	return 0, false
}

// categoryIndex matches a candidate's category tag; first match wins.
func categoryIndex(norm string, candidates []ai.Candidate) (int, bool) {
	for i, c := range candidates {
		if c.Category == "" {
			continue
		}
		if classify.ContainsTerm(norm, strings.ToLower(c.Category)) {
			return i, true
		}
	}
	return 0, false
}
