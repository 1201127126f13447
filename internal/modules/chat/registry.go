// README: In-memory session registry; serializes turns per session and
// restores from the snapshot store on a cold lookup.
package chat

import (
	"context"
	"log"
	"sync"
	"time"

	"wanderai/internal/types"
)

type sessionEntry struct {
	mu   sync.Mutex
	sess *Session
}

// Registry hands out sessions by ID and guarantees at most one turn runs at
// a time per session. Different sessions proceed concurrently.
type Registry struct {
	mu      sync.Mutex
	entries map[types.ID]*sessionEntry
	store   *Store
}

func NewRegistry(store *Store) *Registry {
	return &Registry{
		entries: make(map[types.ID]*sessionEntry),
		store:   store,
	}
}

// Create starts a new session and registers it.
func (r *Registry) Create(ctx context.Context) *Session {
	sess := NewSession()
	r.mu.Lock()
	r.entries[sess.ID] = &sessionEntry{sess: sess}
	r.mu.Unlock()
	if err := r.store.Save(ctx, sess); err != nil {
		log.Printf("chat: snapshot of new session %s failed: %v", sess.ID, err)
	}
	return sess
}

// With runs fn with exclusive access to the session, then snapshots it.
// Unknown IDs are looked up in the store before ErrSessionNotFound.
func (r *Registry) With(ctx context.Context, id types.ID, fn func(*Session) (TurnResult, error)) (TurnResult, error) {
	entry, err := r.lookup(ctx, id)
	if err != nil {
		return TurnResult{}, err
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()

	res, err := fn(entry.sess)
	if err != nil {
		return TurnResult{}, err
	}
	if serr := r.store.Save(ctx, entry.sess); serr != nil {
		log.Printf("chat: snapshot of session %s failed: %v", id, serr)
	}
	return res, nil
}

// Peek returns the session's current snapshot without running a turn.
func (r *Registry) Peek(ctx context.Context, id types.ID) (StateSnapshot, error) {
	entry, err := r.lookup(ctx, id)
	if err != nil {
		return StateSnapshot{}, err
	}
	entry.mu.Lock()
	defer entry.mu.Unlock()
	return entry.sess.snapshot(), nil
}

// RunEvictionLoop periodically drops sessions idle past maxIdle so the
// in-memory map does not grow without bound. Evicted sessions are not lost:
// the Redis snapshot restores them on the next lookup until its TTL lapses.
func (r *Registry) RunEvictionLoop(ctx context.Context, interval, maxIdle time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := r.evictIdle(maxIdle); n > 0 {
				log.Printf("chat: evicted %d idle sessions", n)
			}
		}
	}
}

func (r *Registry) evictIdle(maxIdle time.Duration) int {
	cutoff := time.Now().UTC().Add(-maxIdle)
	r.mu.Lock()
	defer r.mu.Unlock()
	evicted := 0
	for id, entry := range r.entries {
		// A session mid-turn holds its entry lock; skip it this sweep.
		if !entry.mu.TryLock() {
			continue
		}
		idle := entry.sess.LastAt.Before(cutoff)
		entry.mu.Unlock()
		if idle {
			delete(r.entries, id)
			evicted++
		}
	}
	return evicted
}

func (r *Registry) lookup(ctx context.Context, id types.ID) (*sessionEntry, error) {
	r.mu.Lock()
	entry, ok := r.entries[id]
	r.mu.Unlock()
	if ok {
		return entry, nil
	}

	sess, found, err := r.store.Load(ctx, id)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrSessionNotFound
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	// Another request may have restored it while we were reading Redis.
	if entry, ok := r.entries[id]; ok {
		return entry, nil
	}
	entry = &sessionEntry{sess: sess}
	r.entries[id] = entry
	return entry, nil
}
