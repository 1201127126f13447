// README: Per-turn dialogue controller; classifier funnel in front of the state handlers.
package chat

import (
	"context"
	"log"
	"math/rand"
	"strings"
	"sync"
	"time"

	"wanderai/internal/ai"
	"wanderai/internal/classify"
)

const (
	respFrustration = "I'm sorry this has been frustrating. Let's slow down and get it right. Tell me what kind of trip you're after and I'll take it from there."
	respScope       = "I can help you plan trips and getaways around the region. Tell me about a trip you'd like to take!"
	respFresh       = "Got it, starting fresh with your new request."
	respApology     = "Sorry, I'm having trouble reaching my planning brain right now. Please try that again in a moment."
	respEmpty       = "I didn't catch that. Tell me what kind of trip you have in mind."
)

// Service runs the turn loop for every session. The state handlers are
// unexported methods so the classifier funnel in ProcessTurn is the only
// path into them.
type Service struct {
	planner ai.Planner
	timeout time.Duration

	rngMu sync.Mutex
	rng   *rand.Rand
}

// NewService wires the controller. seed feeds the random-pick strategy so
// tests can pin its choices; pass time.Now().UnixNano() in production.
func NewService(planner ai.Planner, timeout time.Duration, seed int64) *Service {
	return &Service{
		planner: planner,
		timeout: timeout,
		rng:     rand.New(rand.NewSource(seed)),
	}
}

func (s *Service) randIndex(n int) int {
	s.rngMu.Lock()
	defer s.rngMu.Unlock()
	return s.rng.Intn(n)
}

// ProcessTurn runs one user message through the funnel and, if it survives,
// the handler for the session's current state. The funnel order is fixed:
// frustration, topic tagging, independence, reset, clarification, scope.
// Every step runs state-blind; only the reset decision looks at state.
func (s *Service) ProcessTurn(ctx context.Context, sess *Session, text string) (TurnResult, error) {
	if err := sess.checkInvariants(); err != nil {
		return TurnResult{}, err
	}

	sess.addTurn("user", text)

	if strings.TrimSpace(text) == "" {
		if sess.State == StateConfirmation {
			return s.reply(sess, confirmQuestion(sess.Selected)), nil
		}
		return s.reply(sess, respEmpty), nil
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	// Frustration short-circuits everything, including clarification and
	// the handlers. State is left exactly as it was.
	if classify.IsFrustration(text) {
		return s.reply(sess, respFrustration), nil
	}

	tags := classify.Topics(text)
	firstTurn := sess.Intent == nil
	independent := classify.IsIndependent(text, sess.previousTags(), firstTurn)

	var prefix string
	didReset := false
	if independent && s.shouldReset(sess, text) {
		log.Printf("chat: session %s reset on independent request", sess.ID)
		sess.reset()
		prefix = respFresh + "\n\n"
		didReset = true
	}

	if need, prompt := classify.NeedsClarification(text, tags); need {
		res := s.reply(sess, prefix+prompt)
		res.Reset = didReset
		return res, nil
	}

	if sess.State == StateSuggestion && !classify.IsTravelTrip(text, tags) {
		res := s.reply(sess, prefix+respScope)
		res.Reset = didReset
		return res, nil
	}

	var (
		res TurnResult
		err error
	)
	switch sess.State {
	case StateSuggestion:
		res, err = s.handleSuggestion(ctx, sess, text, tags)
	case StateSelection:
		res, err = s.handleSelection(ctx, sess, text)
	case StateConfirmation:
		res, err = s.handleConfirmation(ctx, sess, text)
	default:
		return TurnResult{}, &InvariantError{SessionID: sess.ID, Detail: "unknown state " + string(sess.State)}
	}
	if err != nil {
		return TurnResult{}, err
	}
	if prefix != "" {
		res.Response = prefix + res.Response
		res.Reset = didReset
	}
	return res, nil
}

// shouldReset decides whether an independent message discards the current
// trip context. Mid-flow states always reset; the initial state resets only
// when an intent already exists and the message reads like a new request,
// so follow-up detail on a fresh session is never thrown away.
func (s *Service) shouldReset(sess *Session, text string) bool {
	switch sess.State {
	case StateSelection, StateConfirmation:
		return true
	case StateSuggestion:
		return sess.Intent != nil && classify.HasNewRequestWord(text)
	}
	return false
}

// reply records the assistant turn and snapshots the session.
func (s *Service) reply(sess *Session, text string) TurnResult {
	sess.addTurn("assistant", text)
	return TurnResult{Response: text, State: sess.snapshot()}
}
