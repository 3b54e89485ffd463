package engine

import (
	"errors"
	"reflect"
	"testing"
)

func freshState(t *testing.T) State {
	t.Helper()
	s, err := InitialState(twoPlayerConfig([2]Role{RoleDuke, RoleCaptain}, [2]Role{RoleAssassin, RoleDuke}, 2, 2, 0))
	if err != nil {
		t.Fatalf("InitialState: %v", err)
	}
	return s
}

func assertIllegal(t *testing.T, s State, e Event) {
	t.Helper()
	next, err := Transition(s, e)
	var illegalErr *IllegalEventError
	if !errors.As(err, &illegalErr) {
		t.Fatalf("Transition(%s) = %v, %v; want an *IllegalEventError", e.Type, next, err)
	}
	if !reflect.DeepEqual(next, s) {
		t.Fatalf("a rejected event must leave the state unchanged")
	}
}

func TestRejectsActionFromWrongPlayer(t *testing.T) {
	assertIllegal(t, freshState(t), Event{Type: EventAction, Player: 1, Action: ActionIncome})
}

func TestRejectsUnknownAction(t *testing.T) {
	assertIllegal(t, freshState(t), Event{Type: EventAction, Player: 0, Action: ActionName("defenestrate")})
}

func TestRejectsUnaffordableAction(t *testing.T) {
	assertIllegal(t, freshState(t), Event{Type: EventAction, Player: 0, Action: ActionCoup, Target: 1})
}

func TestRejectsTargetingSelf(t *testing.T) {
	assertIllegal(t, freshState(t), Event{Type: EventAction, Player: 0, Action: ActionSteal, Target: 0})
}

func TestRejectsMissingTargetOnTargetedAction(t *testing.T) {
	assertIllegal(t, freshState(t), Event{Type: EventAction, Player: 0, Action: ActionSteal, Target: NoTarget})
}

func TestRejectsAllowFromActivePlayer(t *testing.T) {
	s := mustTransition(t, freshState(t), Event{Type: EventAction, Player: 0, Action: ActionTax})
	assertIllegal(t, s, Event{Type: EventAllow, Player: 0})
}

func TestRejectsBlockWithUnrelatedRole(t *testing.T) {
	s := mustTransition(t, freshState(t), Event{Type: EventAction, Player: 0, Action: ActionForeignAid})
	assertIllegal(t, s, Event{Type: EventBlock, Player: 1, Role: RoleCaptain})
}

func TestRejectsChallengeOfUnchallengeableAction(t *testing.T) {
	// foreign-aid is blockable but claims no required role, so it cannot be
	// challenged, only blocked.
	s := mustTransition(t, freshState(t), Event{Type: EventAction, Player: 0, Action: ActionForeignAid})
	assertIllegal(t, s, Event{Type: EventChallenge, Player: 1})
}

func TestRejectsBlockerChallengingOwnBlock(t *testing.T) {
	s := freshState(t)
	s = mustTransition(t, s, Event{Type: EventAction, Player: 0, Action: ActionForeignAid})
	s = mustTransition(t, s, Event{Type: EventBlock, Player: 1, Role: RoleDuke})
	assertIllegal(t, s, Event{Type: EventChallenge, Player: 1})
}

func TestRejectsRevealOfUnheldRole(t *testing.T) {
	s := freshState(t)
	s = mustTransition(t, s, Event{Type: EventAction, Player: 0, Action: ActionTax})
	s = mustTransition(t, s, Event{Type: EventChallenge, Player: 1})
	assertIllegal(t, s, Event{Type: EventReveal, Player: 0, Role: RoleAssassin})
}

func TestRejectsRevealFromNonRevealer(t *testing.T) {
	s := freshState(t)
	s = mustTransition(t, s, Event{Type: EventAction, Player: 0, Action: ActionTax})
	s = mustTransition(t, s, Event{Type: EventChallenge, Player: 1})
	assertIllegal(t, s, Event{Type: EventReveal, Player: 1, Role: RoleAssassin})
}

func TestGameOverAcceptsNoEvents(t *testing.T) {
	s, _ := InitialState(twoPlayerConfig([2]Role{RoleAssassin, RoleCaptain}, [2]Role{RoleDuke, RoleContessa}, 4, 4, 0))
	s = mustTransition(t, s, Event{Type: EventAction, Player: 0, Action: ActionTax})
	s = mustTransition(t, s, Event{Type: EventChallenge, Player: 1})
	s = mustTransition(t, s, Event{Type: EventReveal, Player: 0, Role: RoleCaptain})
	s = mustTransition(t, s, Event{Type: EventAction, Player: 1, Action: ActionTax})
	s = mustTransition(t, s, Event{Type: EventChallenge, Player: 0})
	s = mustTransition(t, s, Event{Type: EventReveal, Player: 1, Role: RoleDuke})
	if !IsGameOver(s) {
		t.Fatalf("setup: state = %s, want GameOver", CurrentStateName(s))
	}
	assertIllegal(t, s, Event{Type: EventAction, Player: 1, Action: ActionIncome})
}

func TestRejectingAnEventPreservesStateForFollowUps(t *testing.T) {
	s := freshState(t)
	s = mustTransition(t, s, Event{Type: EventAction, Player: 0, Action: ActionTax})

	rejected, err := Transition(s, Event{Type: EventAllow, Player: 0})
	if err == nil {
		t.Fatalf("expected the active player's ALLOW to be rejected")
	}
	if !reflect.DeepEqual(rejected, s) {
		t.Fatalf("rejection should return the original state unchanged")
	}

	accepted := mustTransition(t, rejected, Event{Type: EventAllow, Player: 1})
	if CurrentStateName(accepted) != "StartOfTurn" {
		t.Fatalf("the prior rejection should not affect a subsequent accepted event")
	}
}
