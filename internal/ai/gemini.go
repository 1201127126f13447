package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"wanderai/internal/kb"
	"wanderai/internal/maps"
)

// GeminiPlanner implements Planner using Google's Gemini models, grounding
// every generation prompt in knowledge-base documents.
type GeminiPlanner struct {
	client *genai.Client
	model  *genai.GenerativeModel
	kb     *kb.Engine
	routes *maps.RouteService // nil disables drive-time enrichment
	home   string
}

// NewGeminiPlanner initializes a new Gemini-backed planner.
// apiKey should be provided from environment variables; routes may be nil.
func NewGeminiPlanner(ctx context.Context, apiKey string, engine *kb.Engine, routes *maps.RouteService, homeBase string) (*GeminiPlanner, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	// Gemini 2.0 Flash for low latency and cost efficiency.
	model := client.GenerativeModel("gemini-2.0-flash")

	// Force JSON responses for structured parsing.
	model.ResponseMIMEType = "application/json"
	model.SetTemperature(0.4)

	return &GeminiPlanner{
		client: client,
		model:  model,
		kb:     engine,
		routes: routes,
		home:   homeBase,
	}, nil
}

// Close cleans up the Gemini client resources.
func (p *GeminiPlanner) Close() {
	p.client.Close()
}

// ExtractIntent parses a validated user message into a structured trip request.
func (p *GeminiPlanner) ExtractIntent(ctx context.Context, text string) (*TravelIntent, error) {
	prompt := fmt.Sprintf(`Role: You are the trip-intent extraction layer of "WanderAI", a travel assistant for the %s area.

Extract only explicitly mentioned information from the user message.
- budget_per_person: INR per person; if a range is given use the upper bound; 0 when absent.
- group_size: "couple" = 2, "friends"/"family" without a number = 4, otherwise 1.
- duration_days: "weekend" = 2, "a week" = 7, 0 when absent.
- interests: trip-category words (beach, hiking, romantic, family, adventure, heritage, budget, luxury, cafe, city).
- avoid_list: things to avoid (crowds, heat, rain, ...).
- accommodation_needed: true only if an overnight stay is implied.

Output JSON schema:
{"interests": ["string"], "budget_per_person": 0, "group_size": 1, "duration_days": 0, "avoid_list": ["string"], "accommodation_needed": false}

User message: %s`, p.home, text)

	var intent TravelIntent
	if err := p.generateJSON(ctx, prompt, &intent); err != nil {
		return nil, err
	}
	if intent.GroupSize <= 0 {
		intent.GroupSize = 1
	}
	intent.RawText = text
	return &intent, nil
}

// SuggestDestinations returns ranked candidates grounded in KB documents.
func (p *GeminiPlanner) SuggestDestinations(ctx context.Context, intent *TravelIntent, limit int) (*Suggestions, error) {
	docs := p.kb.Retrieve(intent.Interests, limit*2)
	if len(docs) == 0 {
		// Nothing in the KB matches; an empty result lets the core downgrade
		// gracefully instead of inviting the model to invent places.
		return &Suggestions{}, nil
	}

	intentJSON, _ := json.Marshal(intent)
	prompt := fmt.Sprintf(`Role: You are the destination recommendation layer of "WanderAI", suggesting trips near %s.

STRICT GROUNDING RULE: Recommend ONLY destinations from the knowledge-base snippets below. Never invent a destination, cost, or fact that is not in the snippets.

User intent:
%s

Knowledge base:
%s

Rank the best matches (at most %d) by fit with the intent. Consider budget, duration, group size, and interests.

Output JSON schema:
{"destinations": [{"name": "", "category": "", "match_score": 0, "reasoning": "", "description": "", "estimated_cost": "", "highlights": [""]}], "summary": "", "tips": [""]}`,
		p.home, intentJSON, formatDocs(docs), limit)

	var suggestions Suggestions
	if err := p.generateJSON(ctx, prompt, &suggestions); err != nil {
		return nil, err
	}
	suggestions.Candidates = dropUnknown(suggestions.Candidates, docs)
	if limit > 0 && len(suggestions.Candidates) > limit {
		suggestions.Candidates = suggestions.Candidates[:limit]
	}
	p.enrichDriveTimes(ctx, suggestions.Candidates)
	return &suggestions, nil
}

// BuildItinerary produces a day-by-day plan for the chosen destination.
func (p *GeminiPlanner) BuildItinerary(ctx context.Context, intent *TravelIntent, destination string) (*Itinerary, error) {
	duration := intent.DurationDays
	if duration <= 0 {
		duration = 1
	}

	var ground string
	if doc, ok := p.kb.Find(destination); ok {
		ground = formatDocs([]kb.Document{doc})
	}

	intentJSON, _ := json.Marshal(intent)
	prompt := fmt.Sprintf(`Role: You are the itinerary layer of "WanderAI". Build a realistic %d-day plan for %s, starting from %s.

User intent:
%s

Knowledge base:
%s

RULES:
- Morning/afternoon/evening slots with concrete times, activities and locations.
- Respect the per-person budget when one is given; include a total_estimated_cost.
- Keep packing_list and important_notes short and practical.

Output JSON schema:
{"destination": "", "duration": %d, "days": [{"day": 1, "title": "", "schedule": [{"time": "", "activity": "", "location": "", "cost": ""}], "notes": ""}], "total_estimated_cost": "", "packing_list": [""], "important_notes": [""]}`,
		duration, destination, p.home, intentJSON, ground, duration)

	var itinerary Itinerary
	if err := p.generateJSON(ctx, prompt, &itinerary); err != nil {
		return nil, err
	}
	if itinerary.Destination == "" {
		itinerary.Destination = destination
	}
	if len(itinerary.Days) == 0 {
		return nil, fmt.Errorf("itinerary for %s came back with no days", destination)
	}
	return &itinerary, nil
}

// DescribePlace returns a short grounded description of a destination.
func (p *GeminiPlanner) DescribePlace(ctx context.Context, name string) (string, error) {
	doc, ok := p.kb.Find(name)
	if !ok {
		return "", fmt.Errorf("unknown destination %q", name)
	}
	prompt := fmt.Sprintf(`Role: You are the copywriting layer of "WanderAI".

Rewrite the knowledge-base entry below as two warm, factual sentences for a traveler. Use ONLY facts from the entry.

%s

Output JSON schema: {"description": ""}`, formatDocs([]kb.Document{doc}))

	var out struct {
		Description string `json:"description"`
	}
	if err := p.generateJSON(ctx, prompt, &out); err != nil {
		return "", err
	}
	if out.Description == "" {
		return doc.Description, nil
	}
	return out.Description, nil
}

// generateJSON runs one generation call and unmarshals the JSON reply into v.
func (p *GeminiPlanner) generateJSON(ctx context.Context, prompt string, v any) error {
	resp, err := p.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return fmt.Errorf("gemini generation error: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return fmt.Errorf("no response candidates from Gemini")
	}

	var responseText strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			responseText.WriteString(string(txt))
		}
	}

	cleanJSON := cleanJSONString(responseText.String())
	if err := json.Unmarshal([]byte(cleanJSON), v); err != nil {
		return fmt.Errorf("failed to parse JSON response: %w. Raw: %s", err, cleanJSON)
	}
	return nil
}

// dropUnknown removes candidates whose name is not in the grounding set.
// Last line of defense against the model inventing destinations.
func dropUnknown(candidates []Candidate, docs []kb.Document) []Candidate {
	known := make(map[string]bool, len(docs))
	for _, d := range docs {
		known[strings.ToLower(d.Name)] = true
	}
	kept := candidates[:0]
	for _, c := range candidates {
		if known[strings.ToLower(c.Name)] {
			kept = append(kept, c)
		} else {
			log.Printf("ai: dropped ungrounded suggestion %q", c.Name)
		}
	}
	return kept
}

func (p *GeminiPlanner) enrichDriveTimes(ctx context.Context, candidates []Candidate) {
	if p.routes == nil {
		return
	}
	for i := range candidates {
		dur, _, err := p.routes.GetTravelEstimate(ctx, p.home, candidates[i].Name)
		if err != nil {
			log.Printf("ai: drive time for %s: %v", candidates[i].Name, err)
			continue
		}
		candidates[i].DriveTime = dur.Round(5 * time.Minute).String()
	}
}

func formatDocs(docs []kb.Document) string {
	var b strings.Builder
	for _, d := range docs {
		fmt.Fprintf(&b, "- %s (%s): %s", d.Name, d.Category, d.Description)
		if len(d.Highlights) > 0 {
			fmt.Fprintf(&b, " Highlights: %s.", strings.Join(d.Highlights, ", "))
		}
		if d.EstimatedCost != "" {
			fmt.Fprintf(&b, " Cost: %s.", d.EstimatedCost)
		}
		if d.DistanceKm > 0 {
			fmt.Fprintf(&b, " Distance: %d km.", d.DistanceKm)
		}
		b.WriteString("\n")
	}
	return b.String()
}

// cleanJSONString removes markdown code blocks if present (e.g. ```json ... ```)
func cleanJSONString(input string) string {
	input = strings.TrimSpace(input)
	input = strings.TrimPrefix(input, "```json")
	input = strings.TrimPrefix(input, "```")
	input = strings.TrimSuffix(input, "```")
	return strings.TrimSpace(input)
}
