package engine

import (
	"encoding/json"
	"testing"
)

func TestEventTypeJSONRoundTrip(t *testing.T) {
	for _, want := range []EventType{EventAction, EventBlock, EventChallenge, EventAllow, EventReveal} {
		data, err := json.Marshal(want)
		if err != nil {
			t.Fatalf("Marshal(%s): %v", want, err)
		}
		var got EventType
		if err := json.Unmarshal(data, &got); err != nil {
			t.Fatalf("Unmarshal(%s): %v", data, err)
		}
		if got != want {
			t.Fatalf("round-trip mismatch: %s -> %s -> %s", want, data, got)
		}
	}
}

func TestEventTypeUnmarshalRejectsUnknown(t *testing.T) {
	var e EventType
	if err := json.Unmarshal([]byte(`"NOT_A_REAL_EVENT"`), &e); err == nil {
		t.Fatal("expected an error for an unrecognized event type string")
	}
}

func TestEventJSONRoundTrip(t *testing.T) {
	want := Event{Type: EventBlock, Player: 1, Action: ActionForeignAid, Target: NoTarget, Role: RoleDuke}
	data, err := json.Marshal(want)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	var got Event
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if got != want {
		t.Fatalf("round-trip mismatch: got %+v, want %+v", got, want)
	}
}
