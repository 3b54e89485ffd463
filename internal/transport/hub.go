// Package transport sends JSON messages to and reads engine.Event messages
// from players over WebSocket through a standalone per-table hub, so the
// same connection set can be written to both by cmd/coupd's socket handler
// and by its relay of broadcasts from other replicas.
package transport

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"

	"github.com/coder/websocket"
	"github.com/google/uuid"
)

// Conn is a single connected player's socket, scoped to one table.
type Conn struct {
	ws        *websocket.Conn
	playerIdx int
}

// Hub fans outbound messages to every connected player of one table, or to
// a single one. It does not read inbound messages; see ReadEvent.
type Hub struct {
	tableID uuid.UUID

	mu    sync.Mutex
	conns map[int]*Conn // player index -> connection
}

// NewHub creates an empty hub for tableID.
func NewHub(tableID uuid.UUID) *Hub {
	return &Hub{tableID: tableID, conns: make(map[int]*Conn)}
}

// Accept upgrades r to a WebSocket connection for playerIdx and registers
// it with the hub, replacing any prior connection for that index (a
// reconnect, validated against internal/hostauth before this is called).
func (h *Hub) Accept(w http.ResponseWriter, r *http.Request, playerIdx int) (*Conn, error) {
	ws, err := websocket.Accept(w, r, nil)
	if err != nil {
		return nil, fmt.Errorf("transport: accepting websocket: %w", err)
	}
	c := &Conn{ws: ws, playerIdx: playerIdx}

	h.mu.Lock()
	if old, ok := h.conns[playerIdx]; ok {
		old.ws.Close(websocket.StatusNormalClosure, "superseded by reconnect")
	}
	h.conns[playerIdx] = c
	h.mu.Unlock()

	return c, nil
}

// Remove unregisters a connection, e.g. after its read loop exits.
func (h *Hub) Remove(c *Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.conns[c.playerIdx] == c {
		delete(h.conns, c.playerIdx)
	}
}

// Broadcast sends v, JSON-encoded, to every connected player.
func (h *Hub) Broadcast(ctx context.Context, v interface{}) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("transport: marshaling broadcast: %w", err)
	}

	h.mu.Lock()
	conns := make([]*Conn, 0, len(h.conns))
	for _, c := range h.conns {
		conns = append(conns, c)
	}
	h.mu.Unlock()

	for _, c := range conns {
		if err := c.ws.Write(ctx, websocket.MessageText, payload); err != nil {
			continue // a write failure drops that connection silently; its read loop will notice and unregister it.
		}
	}
	return nil
}

// SendTo sends v only to playerIdx's connection, if connected — used for
// private per-player messages like reveal results or error responses.
func (h *Hub) SendTo(ctx context.Context, playerIdx int, v interface{}) error {
	h.mu.Lock()
	c, ok := h.conns[playerIdx]
	h.mu.Unlock()
	if !ok {
		return nil
	}

	payload, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("transport: marshaling message: %w", err)
	}
	if err := c.ws.Write(ctx, websocket.MessageText, payload); err != nil {
		return fmt.Errorf("transport: sending to player %d: %w", playerIdx, err)
	}
	return nil
}

// ReadEvent blocks for the next message from c and JSON-decodes it into
// into. The caller (cmd/coupd) decodes into an engine.Event and hands it to
// session.Table.Apply, which calls engine.Transition.
func ReadEvent(ctx context.Context, c *Conn, into interface{}) error {
	_, data, err := c.ws.Read(ctx)
	if err != nil {
		return fmt.Errorf("transport: reading message: %w", err)
	}
	if err := json.Unmarshal(data, into); err != nil {
		return fmt.Errorf("transport: decoding message: %w", err)
	}
	return nil
}
