package transcript

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Store handles transcript persistence.
type Store struct {
	db *pgxpool.Pool
}

// NewStore returns a Store backed by the given connection pool.
func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

// Append archives one turn. Transcripts are append-only; there is no update
// or delete path.
func (s *Store) Append(ctx context.Context, sessionID, role, body string) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO transcripts (session_id, role, body)
		VALUES ($1, $2, $3)
	`, sessionID, role, body)
	if err != nil {
		return fmt.Errorf("append transcript for %s: %w", sessionID, err)
	}
	return nil
}

// BySession returns a session's turns in insertion order.
func (s *Store) BySession(ctx context.Context, sessionID string) ([]Entry, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, session_id, role, body, created_at
		FROM transcripts
		WHERE session_id = $1
		ORDER BY id
	`, sessionID)
	if err != nil {
		return nil, fmt.Errorf("query transcript for %s: %w", sessionID, err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.SessionID, &e.Role, &e.Body, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan transcript row: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
