// Package session wraps one running engine.State behind a mutex and a
// uuid-keyed registry: a concurrency-safe shell around an otherwise
// single-threaded, purely functional core.
package session

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/foxholm/coup/engine"
	"github.com/foxholm/coup/internal/store"
)

// Table is one running game: an engine.State plus the bookkeeping needed to
// host it over a network — sequence counter for the event log, logger, and
// the mutex that serializes concurrent WebSocket senders.
type Table struct {
	ID uuid.UUID

	mu    sync.Mutex
	state engine.State
	seq   int64

	log *logrus.Entry
}

// New creates a Table from a fresh engine.InitialState.
func New(id uuid.UUID, config engine.Config, log *logrus.Entry) (*Table, error) {
	state, err := engine.InitialState(config)
	if err != nil {
		return nil, fmt.Errorf("session: initializing table %s: %w", id, err)
	}
	return &Table{ID: id, state: state, log: log}, nil
}

// Restore rebuilds a Table by replaying a recorded event log over a fresh
// initial state — the host's mechanism for surviving a restart, since the
// engine itself has no persistence.
func Restore(ctx context.Context, id uuid.UUID, config engine.Config, s *store.Store, log *logrus.Entry) (*Table, error) {
	t, err := New(id, config, log)
	if err != nil {
		return nil, err
	}

	events, err := s.LoadEvents(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("session: loading event log for table %s: %w", id, err)
	}
	for _, e := range events {
		next, err := engine.Transition(t.state, e)
		if err != nil {
			// A previously-accepted event rejected on replay indicates the
			// recorded log and the engine have diverged — an operator
			// problem, not a player-facing one.
			return nil, fmt.Errorf("session: replaying table %s: event %d: %w", id, t.seq, err)
		}
		t.state = next
		t.seq++
	}
	return t, nil
}

// Apply validates and applies e under the table's lock, appending it to the
// event log on success. It returns the resulting State and whether e was
// accepted.
func (t *Table) Apply(ctx context.Context, s *store.Store, e engine.Event) (engine.State, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	next, err := engine.Transition(t.state, e)
	if err != nil {
		t.log.WithFields(logrus.Fields{
			"player": e.Player,
			"event":  e.Type.String(),
			"error":  err,
		}).Info("rejected event")
		return t.state, err
	}

	if s != nil {
		if err := s.AppendEvent(ctx, t.ID, t.seq, e); err != nil {
			// The transition already succeeded in memory; a persistence
			// failure is logged but does not roll the in-memory state back.
			t.log.WithError(err).Warn("failed to persist event")
		}
	}
	t.seq++

	t.state = next
	t.log.WithFields(logrus.Fields{
		"player": e.Player,
		"event":  e.Type.String(),
		"state":  engine.CurrentStateName(next),
	}).Info("applied event")
	return t.state, nil
}

// Snapshot returns the table's current State under the lock.
func (t *Table) Snapshot() engine.State {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

// Registry is the process-wide map of live tables, keyed by uuid — the
// host-level equivalent of a lobby's in-memory game map.
type Registry struct {
	mu     sync.RWMutex
	tables map[uuid.UUID]*Table
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{tables: make(map[uuid.UUID]*Table)}
}

// Put registers t.
func (r *Registry) Put(t *Table) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tables[t.ID] = t
}

// Get returns the table for id, if any.
func (r *Registry) Get(id uuid.UUID) (*Table, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.tables[id]
	return t, ok
}

// Remove drops the table for id, e.g. once it reaches GameOver and its
// resume window has expired.
func (r *Registry) Remove(id uuid.UUID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.tables, id)
}
