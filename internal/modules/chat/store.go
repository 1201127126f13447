// README: Redis-backed session snapshots so conversations survive restarts.
package chat

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"wanderai/internal/types"
)

const sessionKeyFmt = "chat:session:%s"

// Store persists whole-session JSON snapshots with a sliding TTL. A nil
// *Store is valid and turns every call into a no-op miss, so the registry
// works without Redis in tests and the terminal client.
type Store struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewStore(rdb *redis.Client, ttl time.Duration) *Store {
	return &Store{rdb: rdb, ttl: ttl}
}

func (s *Store) Save(ctx context.Context, sess *Session) error {
	if s == nil {
		return nil
	}
	raw, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("marshal session %s: %w", sess.ID, err)
	}
	key := fmt.Sprintf(sessionKeyFmt, sess.ID)
	if err := s.rdb.Set(ctx, key, raw, s.ttl).Err(); err != nil {
		return fmt.Errorf("save session %s: %w", sess.ID, err)
	}
	return nil
}

func (s *Store) Load(ctx context.Context, id types.ID) (*Session, bool, error) {
	if s == nil {
		return nil, false, nil
	}
	key := fmt.Sprintf(sessionKeyFmt, id)
	raw, err := s.rdb.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("load session %s: %w", id, err)
	}
	var sess Session
	if err := json.Unmarshal(raw, &sess); err != nil {
		return nil, false, fmt.Errorf("decode session %s: %w", id, err)
	}
	return &sess, true, nil
}

func (s *Store) Delete(ctx context.Context, id types.ID) error {
	if s == nil {
		return nil
	}
	key := fmt.Sprintf(sessionKeyFmt, id)
	if err := s.rdb.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("delete session %s: %w", id, err)
	}
	return nil
}
