package transcript

import (
	"context"
	"log"
)

// Service archives conversation turns. Archiving is best-effort: a failed
// write is logged and never blocks the turn that produced it.
type Service struct {
	store *Store
}

// NewService creates a Service backed by the given Store. A nil store
// disables archiving, which the terminal client uses.
func NewService(store *Store) *Service {
	return &Service{store: store}
}

func (s *Service) Record(ctx context.Context, sessionID, role, body string) {
	if s == nil || s.store == nil {
		return
	}
	if err := s.store.Append(ctx, sessionID, role, body); err != nil {
		log.Printf("transcript: %v", err)
	}
}

func (s *Service) History(ctx context.Context, sessionID string) ([]Entry, error) {
	if s == nil || s.store == nil {
		return nil, nil
	}
	return s.store.BySession(ctx, sessionID)
}
