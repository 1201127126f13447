// README: HTTP-level tests for the chat turn endpoint.
package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"wanderai/internal/ai"
	"wanderai/internal/http/handlers"
	"wanderai/internal/modules/chat"
	"wanderai/internal/modules/transcript"
)

// stubPlanner is a test double for ai.Planner.
type stubPlanner struct{}

func (stubPlanner) ExtractIntent(_ context.Context, text string) (*ai.TravelIntent, error) {
	return &ai.TravelIntent{GroupSize: 1, RawText: text}, nil
}

func (stubPlanner) SuggestDestinations(_ context.Context, _ *ai.TravelIntent, _ int) (*ai.Suggestions, error) {
	return &ai.Suggestions{Candidates: []ai.Candidate{
		{Name: "Lonavala", Category: "hill station"},
		{Name: "Alibaug", Category: "beach"},
	}}, nil
}

func (stubPlanner) BuildItinerary(_ context.Context, _ *ai.TravelIntent, destination string) (*ai.Itinerary, error) {
	return &ai.Itinerary{Destination: destination, DurationDays: 1, Days: []ai.DayPlan{{Day: 1}}}, nil
}

func (stubPlanner) DescribePlace(_ context.Context, _ string) (string, error) { return "", nil }

func buildTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	chatSvc := chat.NewService(stubPlanner{}, 10*time.Second, 1)
	registry := chat.NewRegistry(nil)
	h := handlers.NewChatHandler(chatSvc, registry, nil, transcript.NewService(nil))
	sh := handlers.NewSessionHandler(registry, transcript.NewService(nil))
	r := gin.New()
	r.POST("/api/chat", h.Turn)
	r.GET("/api/sessions/:id", sh.Get)
	return r
}

func doRequest(r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestTurn_NewSessionAndFollowUp(t *testing.T) {
	r := buildTestRouter()

	w := doRequest(r, http.MethodPost, "/api/chat", map[string]any{
		"uid":     "u1",
		"message": "plan a weekend beach trip",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		SessionID string             `json:"session_id"`
		Reply     string             `json:"reply"`
		State     chat.StateSnapshot `json:"state"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.SessionID == "" {
		t.Fatal("no session_id in response")
	}
	if resp.State.State != chat.StateSelection {
		t.Errorf("state = %s, want %s", resp.State.State, chat.StateSelection)
	}

	w = doRequest(r, http.MethodPost, "/api/chat", map[string]any{
		"uid":        "u1",
		"session_id": resp.SessionID,
		"message":    "the first one",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("follow-up: expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode follow-up: %v", err)
	}
	if resp.State.State != chat.StateConfirmation || resp.State.Selected != "Lonavala" {
		t.Errorf("follow-up state = %+v, want Lonavala confirmation", resp.State)
	}
}

func TestTurn_BadRequests(t *testing.T) {
	r := buildTestRouter()

	tests := []struct {
		name string
		body map[string]any
	}{
		{"missing uid", map[string]any{"message": "hi"}},
		{"missing message", map[string]any{"uid": "u1"}},
		{"bad session id", map[string]any{"uid": "u1", "message": "hi", "session_id": "not valid!!"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if w := doRequest(r, http.MethodPost, "/api/chat", tc.body); w.Code != http.StatusBadRequest {
				t.Errorf("expected 400, got %d", w.Code)
			}
		})
	}
}

func TestGetSession_Unknown(t *testing.T) {
	r := buildTestRouter()

	w := doRequest(r, http.MethodGet, "/api/sessions/0a1b2c3d-0000-0000-0000-000000000000", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
}
