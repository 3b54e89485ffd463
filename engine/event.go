package engine

import (
	"encoding/json"
	"fmt"
)

// EventType identifies which of the five event shapes an Event carries.
type EventType uint8

const (
	EventAction EventType = iota
	EventBlock
	EventChallenge
	EventAllow
	EventReveal
)

func (t EventType) String() string {
	switch t {
	case EventAction:
		return "ACTION"
	case EventBlock:
		return "BLOCK"
	case EventChallenge:
		return "CHALLENGE"
	case EventAllow:
		return "ALLOW"
	case EventReveal:
		return "REVEAL"
	default:
		return "UNKNOWN"
	}
}

// MarshalJSON renders t as its wire name ("ACTION", "BLOCK", ...) instead
// of its numeric value, so a persisted or broadcast Event reads legibly
// over the wire.
func (t EventType) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// UnmarshalJSON parses t back from its wire name.
func (t *EventType) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	switch s {
	case "ACTION":
		*t = EventAction
	case "BLOCK":
		*t = EventBlock
	case "CHALLENGE":
		*t = EventChallenge
	case "ALLOW":
		*t = EventAllow
	case "REVEAL":
		*t = EventReveal
	default:
		return fmt.Errorf("engine: unknown event type %q", s)
	}
	return nil
}

// NoTarget is the sentinel for "no target player" on an untargeted ACTION.
const NoTarget = -1

// Event is the engine's single input type. Every event carries Player; the
// remaining fields are interpreted according to Type:
//
//	ACTION    uses Action and, if the action is targeted, Target.
//	BLOCK     uses Role (the claimed blocking role).
//	CHALLENGE uses no additional fields.
//	ALLOW     uses no additional fields.
//	REVEAL    uses Role (the role being revealed).
type Event struct {
	Type   EventType
	Player int
	Action ActionName
	Target int
	Role   Role
}
