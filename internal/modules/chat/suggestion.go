// README: Suggestion-state handler; intent extraction and destination proposals.
package chat

import (
	"context"
	"fmt"
	"log"
	"strings"

	"wanderai/internal/ai"
	"wanderai/internal/classify"
	"wanderai/internal/lexicon"
)

const (
	suggestionLimit = 3

	// minBudgetPerDay is the floor below which a trip is not worth planning;
	// the handler advises instead of asking the planner for candidates.
	minBudgetPerDay = 400
)

func (s *Service) handleSuggestion(ctx context.Context, sess *Session, text string, tags classify.Tags) (TurnResult, error) {
	extracted, err := s.planner.ExtractIntent(ctx, text)
	if err != nil {
		log.Printf("chat: session %s intent extraction failed: %v", sess.ID, err)
		return s.reply(sess, respApology), nil
	}

	merged := classify.Tags{}
	for t := range tags {
		merged[t] = true
	}
	for t := range classify.TagsFrom(extracted.Interests) {
		if _, known := lexicon.TopicKeywords[t]; known {
			merged[t] = true
		}
	}
	sess.Intent = &Intent{
		Tags:         merged,
		Budget:       extracted.BudgetPerPerson,
		GroupSize:    extracted.GroupSize,
		DurationDays: extracted.DurationDays,
		Raw:          text,
	}

	if sess.Intent.Budget > 0 && sess.Intent.DurationDays > 0 &&
		sess.Intent.Budget < minBudgetPerDay*sess.Intent.DurationDays {
		msg := fmt.Sprintf(
			"A %d-day trip is hard to do well under %d per person. Could you stretch the budget a little, or shorten the trip? I'd hate to suggest something disappointing.",
			sess.Intent.DurationDays, sess.Intent.Budget)
		return s.reply(sess, msg), nil
	}

	intentForPlanner := *extracted
	intentForPlanner.Interests = merged.Sorted()

	sugg, err := s.planner.SuggestDestinations(ctx, &intentForPlanner, suggestionLimit)
	if err != nil {
		log.Printf("chat: session %s suggestion failed: %v", sess.ID, err)
		return s.reply(sess, respApology), nil
	}
	if len(sugg.Candidates) == 0 {
		return s.reply(sess, "I couldn't find a good match for that. Could you describe the trip a little differently? Mentioning what you enjoy (hiking, beaches, food) helps a lot."), nil
	}

	candidates := s.freshFirst(sess, sugg.Candidates)
	sess.Candidates = candidates
	for _, c := range candidates {
		sess.Offered = append(sess.Offered, c.Name)
	}

	// Transition only after candidates are in hand. A failed turn above
	// leaves the session exactly where it was.
	if !CanTransition(sess.State, StateSelection) {
		return TurnResult{}, &InvariantError{SessionID: sess.ID, Detail: "suggestion handler outside suggestion state"}
	}
	sess.State = StateSelection

	return s.reply(sess, s.presentCandidates(ctx, sess, sugg.Summary)), nil
}

// freshFirst reorders candidates so names not yet offered this session come
// first. Order within each group is preserved.
func (s *Service) freshFirst(sess *Session, candidates []ai.Candidate) []ai.Candidate {
	if len(sess.Offered) == 0 {
		return candidates
	}
	seen := make(map[string]bool, len(sess.Offered))
	for _, name := range sess.Offered {
		seen[strings.ToLower(name)] = true
	}
	fresh := make([]ai.Candidate, 0, len(candidates))
	var repeats []ai.Candidate
	for _, c := range candidates {
		if seen[strings.ToLower(c.Name)] {
			repeats = append(repeats, c)
			continue
		}
		fresh = append(fresh, c)
	}
	return append(fresh, repeats...)
}

func (s *Service) presentCandidates(ctx context.Context, sess *Session, summary string) string {
	var b strings.Builder
	if summary != "" {
		b.WriteString(summary)
		b.WriteString("\n\n")
	}
	b.WriteString("Here's what I'd suggest:\n")
	b.WriteString(formatCandidates(sess.Candidates))

	if desc, err := s.planner.DescribePlace(ctx, sess.Candidates[0].Name); err == nil && desc != "" {
		b.WriteString("\nAbout ")
		b.WriteString(sess.Candidates[0].Name)
		b.WriteString(": ")
		b.WriteString(desc)
		b.WriteString("\n")
	}

	b.WriteString("\nReply with a number, a name, or say \"surprise me\" and I'll pick one.")
	return b.String()
}
