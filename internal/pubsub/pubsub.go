// Package pubsub fans broadcast messages out across coupd replicas behind a
// load balancer over Redis, so every instance sees every game action
// regardless of which one a given player's WebSocket is attached to.
package pubsub

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Broadcast is one message fanned out to every coupd replica for a table.
// Origin identifies the publishing replica so a subscriber can ignore its
// own publications instead of re-delivering them to locally connected
// players a second time.
type Broadcast struct {
	TableID uuid.UUID       `json:"table_id"`
	Payload json.RawMessage `json:"payload"`
	Origin  uuid.UUID       `json:"origin"`
}

// Fanout wraps a Redis client for publish/subscribe broadcast relay,
// scoped to one server instance.
type Fanout struct {
	rdb     *redis.Client
	channel string
	origin  uuid.UUID
}

// New connects to addr and returns a Fanout publishing/subscribing on a
// single shared channel for all tables (tableID disambiguates messages on
// the subscriber side). Each Fanout gets its own random origin so
// Subscribe can filter out this process's own publications.
func New(addr, channel string) *Fanout {
	if channel == "" {
		channel = "coupd:broadcast"
	}
	return &Fanout{
		rdb:     redis.NewClient(&redis.Options{Addr: addr}),
		channel: channel,
		origin:  uuid.New(),
	}
}

// Close releases the underlying connection.
func (f *Fanout) Close() error {
	return f.rdb.Close()
}

// Publish fans a payload out to every subscribed replica for tableID.
func (f *Fanout) Publish(ctx context.Context, tableID uuid.UUID, payload []byte) error {
	msg, err := json.Marshal(Broadcast{TableID: tableID, Payload: payload, Origin: f.origin})
	if err != nil {
		return fmt.Errorf("pubsub: marshaling broadcast: %w", err)
	}
	if err := f.rdb.Publish(ctx, f.channel, msg).Err(); err != nil {
		return fmt.Errorf("pubsub: publishing: %w", err)
	}
	return nil
}

// Subscribe returns a channel of Broadcast messages received from other
// replicas. The caller is responsible for filtering by TableID and for
// draining the channel until ctx is done.
func (f *Fanout) Subscribe(ctx context.Context) (<-chan Broadcast, error) {
	sub := f.rdb.Subscribe(ctx, f.channel)
	if _, err := sub.Receive(ctx); err != nil {
		return nil, fmt.Errorf("pubsub: subscribing: %w", err)
	}

	out := make(chan Broadcast)
	go func() {
		defer close(out)
		defer sub.Close()
		ch := sub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-ch:
				if !ok {
					return
				}
				var b Broadcast
				if err := json.Unmarshal([]byte(msg.Payload), &b); err != nil {
					continue
				}
				if b.Origin == f.origin {
					continue
				}
				select {
				case out <- b:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return out, nil
}
