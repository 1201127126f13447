package chat

import (
	"context"
	"testing"
	"time"

	"wanderai/internal/types"
)

func TestRegistryCreateAndRun(t *testing.T) {
	svc := newTestService(&fakePlanner{})
	reg := NewRegistry(nil)
	ctx := context.Background()

	sess := reg.Create(ctx)
	if sess.State != StateSuggestion {
		t.Fatalf("new session state = %s, want %s", sess.State, StateSuggestion)
	}

	res, err := reg.With(ctx, sess.ID, func(s *Session) (TurnResult, error) {
		return svc.ProcessTurn(ctx, s, "plan a weekend hiking trip")
	})
	if err != nil {
		t.Fatalf("With: %v", err)
	}
	if res.State.State != StateSelection {
		t.Errorf("snapshot state = %s, want %s", res.State.State, StateSelection)
	}

	snap, err := reg.Peek(ctx, sess.ID)
	if err != nil {
		t.Fatalf("Peek: %v", err)
	}
	if len(snap.Candidates) != 3 {
		t.Errorf("snapshot candidates = %d, want 3", len(snap.Candidates))
	}
}

func TestRegistryEvictsIdleSessions(t *testing.T) {
	reg := NewRegistry(nil)
	ctx := context.Background()

	stale := reg.Create(ctx)
	stale.LastAt = time.Now().UTC().Add(-2 * time.Hour)
	fresh := reg.Create(ctx)

	if n := reg.evictIdle(time.Hour); n != 1 {
		t.Fatalf("evictIdle = %d, want 1", n)
	}
	if _, err := reg.Peek(ctx, stale.ID); err != ErrSessionNotFound {
		t.Errorf("stale session still resident: err = %v", err)
	}
	if _, err := reg.Peek(ctx, fresh.ID); err != nil {
		t.Errorf("fresh session evicted: %v", err)
	}
}

func TestRegistryUnknownSession(t *testing.T) {
	reg := NewRegistry(nil)

	_, err := reg.Peek(context.Background(), types.NewID())
	if err != ErrSessionNotFound {
		t.Fatalf("err = %v, want ErrSessionNotFound", err)
	}
}
