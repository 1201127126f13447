// README: Session aggregate, dialogue states, and transition table.
package chat

import (
	"fmt"
	"time"

	"wanderai/internal/ai"
	"wanderai/internal/classify"
	"wanderai/internal/types"
)

type State string

const (
	StateSuggestion   State = "suggestion"
	StateSelection    State = "selection"
	StateConfirmation State = "confirmation"
)

// AllowedTransitions represents the dialogue state flow as code. Resets are
// not transitions; they rebuild the session at StateSuggestion directly.
var AllowedTransitions = map[State][]State{
	StateSuggestion:   {StateSelection},
	StateSelection:    {StateConfirmation},
	StateConfirmation: {StateSelection, StateSuggestion},
}

func CanTransition(from, to State) bool {
	for _, s := range AllowedTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// Intent is the session's current structured trip request. Replaced
// wholesale on reset, never partially mutated by classifiers.
type Intent struct {
	Tags         classify.Tags `json:"tags"`
	Budget       int           `json:"budget"`
	GroupSize    int           `json:"group_size"`
	DurationDays int           `json:"duration_days"`
	Raw          string        `json:"raw"`
}

// Turn is one (role, text) pair of the conversation log. Display and
// debugging only; classifiers never read it.
type Turn struct {
	Role string    `json:"role"`
	Text string    `json:"text"`
	At   time.Time `json:"at"`
}

// Session is one end-user conversation. State is owned exclusively by the
// controller; callers must serialize turns per session.
type Session struct {
	ID         types.ID       `json:"id"`
	State      State          `json:"state"`
	Intent     *Intent        `json:"intent,omitempty"`
	Candidates []ai.Candidate `json:"candidates,omitempty"`
	Selected   *ai.Candidate  `json:"selected,omitempty"`

	// Offered tracks every destination name suggested during the session so
	// that re-suggestions rank fresh options first.
	Offered []string `json:"offered,omitempty"`

	Turns     []Turn    `json:"turns,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	LastAt    time.Time `json:"last_at"`
}

func NewSession() *Session {
	now := time.Now().UTC()
	return &Session{
		ID:        types.NewID(),
		State:     StateSuggestion,
		CreatedAt: now,
		LastAt:    now,
	}
}

// reset discards intent, candidates, and selection together and returns the
// session to its initial state. Partial resets are forbidden; this is the
// only way any of the three is cleared outside a handler transition.
func (s *Session) reset() {
	s.State = StateSuggestion
	s.Intent = nil
	s.Candidates = nil
	s.Selected = nil
}

func (s *Session) addTurn(role, text string) {
	now := time.Now().UTC()
	s.Turns = append(s.Turns, Turn{Role: role, Text: text, At: now})
	s.LastAt = now
}

// previousTags returns the active intent's topic tags, nil on a fresh session.
func (s *Session) previousTags() classify.Tags {
	if s.Intent == nil {
		return nil
	}
	return s.Intent.Tags
}

// StateSnapshot is the host-facing view of the session after a turn.
type StateSnapshot struct {
	SessionID  string   `json:"session_id"`
	State      State    `json:"state"`
	IntentTags []string `json:"intent_tags,omitempty"`
	Candidates []string `json:"candidates,omitempty"`
	Selected   string   `json:"selected,omitempty"`
}

func (s *Session) snapshot() StateSnapshot {
	snap := StateSnapshot{
		SessionID: s.ID.String(),
		State:     s.State,
	}
	if s.Intent != nil {
		snap.IntentTags = s.Intent.Tags.Sorted()
	}
	for _, c := range s.Candidates {
		snap.Candidates = append(snap.Candidates, c.Name)
	}
	if s.Selected != nil {
		snap.Selected = s.Selected.Name
	}
	return snap
}

// TurnResult is what ProcessTurn hands back to the host.
type TurnResult struct {
	Response string        `json:"response"`
	State    StateSnapshot `json:"state"`

	// Reset reports that this turn discarded the previous trip context.
	Reset bool `json:"reset,omitempty"`

	// Finalized reports that the trip was confirmed and the session returned
	// to a fresh Suggestion state.
	Finalized bool `json:"finalized,omitempty"`
}

// InvariantError signals a session whose state contradicts its data
// (Selection without candidates, Confirmation without a pick). This is a
// programming defect: hosts must fail loudly, not continue.
type InvariantError struct {
	SessionID types.ID
	Detail    string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("session %s: invariant violation: %s", e.SessionID, e.Detail)
}

// checkInvariants validates the state/data pairing before any dispatch.
func (s *Session) checkInvariants() error {
	switch s.State {
	case StateSelection:
		if len(s.Candidates) == 0 {
			return &InvariantError{SessionID: s.ID, Detail: "selection state with no candidates"}
		}
	case StateConfirmation:
		if s.Selected == nil {
			return &InvariantError{SessionID: s.ID, Detail: "confirmation state with nothing selected"}
		}
	}
	return nil
}
