// Package store persists an append-only event log per table in Postgres so
// a coupd process can reconstruct engine.State after a restart by replaying
// the initial state plus every accepted engine.Event.
package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/foxholm/coup/engine"
)

// Store wraps a pgx connection pool, scoped to a server instance rather
// than a package-level global so a test or a multi-tenant host can run
// more than one.
type Store struct {
	pool *pgxpool.Pool
}

// Open connects to Postgres and ensures the event_log table exists.
func Open(ctx context.Context, databaseURL string) (*Store, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("store: connecting: %w", err)
	}
	s := &Store{pool: pool}
	if err := s.migrate(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) migrate(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
CREATE TABLE IF NOT EXISTS event_log (
	table_id    uuid NOT NULL,
	seq         bigint NOT NULL,
	event       jsonb NOT NULL,
	recorded_at timestamptz NOT NULL DEFAULT now(),
	PRIMARY KEY (table_id, seq)
)`)
	if err != nil {
		return fmt.Errorf("store: migrating: %w", err)
	}
	return nil
}

// Close releases the pool.
func (s *Store) Close() {
	s.pool.Close()
}

// AppendEvent records the next accepted engine.Event for tableID at seq
// (the caller's monotonically increasing counter for that table).
func (s *Store) AppendEvent(ctx context.Context, tableID uuid.UUID, seq int64, e engine.Event) error {
	payload, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("store: marshaling event: %w", err)
	}
	_, err = s.pool.Exec(ctx,
		`INSERT INTO event_log (table_id, seq, event) VALUES ($1, $2, $3)`,
		tableID, seq, payload)
	if err != nil {
		return fmt.Errorf("store: appending event: %w", err)
	}
	return nil
}

// LoadEvents returns every recorded event for tableID in seq order, so the
// caller can replay them over engine.InitialState to rebuild State.
func (s *Store) LoadEvents(ctx context.Context, tableID uuid.UUID) ([]engine.Event, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT event FROM event_log WHERE table_id = $1 ORDER BY seq ASC`, tableID)
	if err != nil {
		return nil, fmt.Errorf("store: loading events: %w", err)
	}
	defer rows.Close()

	var events []engine.Event
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("store: scanning event row: %w", err)
		}
		var e engine.Event
		if err := json.Unmarshal(payload, &e); err != nil {
			return nil, fmt.Errorf("store: unmarshaling event: %w", err)
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("store: iterating events: %w", err)
	}
	return events, nil
}

