package engine

// Transition applies event to state and returns the resulting State. On
// illegal input it returns the original state unchanged and an
// *IllegalEventError. The returned State is always at rest — one of the
// non-transient phases — or GameOver, because every reachable transient
// phase is settled eagerly before Transition returns.
func Transition(state State, e Event) (State, error) {
	c := state.Ctx.clone()
	def := state.Def

	next, err := dispatch(c, def, state.Phase, e)
	if err != nil {
		return state, err
	}

	settledCtx, settledPhase := settle(next.ctx, next.phase, def)
	return State{Phase: settledPhase, Ctx: settledCtx, Def: def}, nil
}

// dispatched is the result of a single event-driven hop: the context after
// the transition's on-arrow action ran, and the phase to settle from.
type dispatched struct {
	ctx   Context
	phase Phase
}

// dispatch matches event against the current phase's event handlers.
// Guards never mutate; only after a guard passes does the handler run its
// on-arrow action (if any) and report the target phase.
func dispatch(c Context, def GameDef, phase Phase, e Event) (dispatched, error) {
	switch phase {

	case PhaseStartOfTurn:
		if e.Type != EventAction {
			return dispatched{}, illegal("StartOfTurn only accepts ACTION, got %s", e.Type)
		}
		if err := guardCanStartAction(c, def, e); err != nil {
			return dispatched{}, err
		}
		c.CurrentAction = e.Action
		if def.IsTargeted(e.Action) {
			c.Target = e.Target
		} else {
			c.Target = NoPlayer
		}
		return dispatched{ctx: c, phase: PhaseWaitForResponse}, nil

	case PhaseWaitForResponse:
		switch e.Type {
		case EventBlock:
			if err := guardCanBlock(c, def, e); err != nil {
				return dispatched{}, err
			}
			c.Blocker = e.Player
			c = payActionCost(c, def)
			return dispatched{ctx: c, phase: PhaseBlock}, nil
		case EventChallenge:
			if err := guardCanChallenge(c, def, e); err != nil {
				return dispatched{}, err
			}
			c.Challenger = e.Player
			c.RevealedRole = NoRole
			return dispatched{ctx: c, phase: PhaseChallenge}, nil
		case EventAllow:
			if err := guardValidOpponent(c, e); err != nil {
				return dispatched{}, err
			}
			c = payActionCost(c, def)
			return dispatched{ctx: c, phase: PhaseFinishAction}, nil
		default:
			return dispatched{}, illegal("WaitForResponse does not accept %s", e.Type)
		}

	case PhaseBlock:
		switch e.Type {
		case EventChallenge:
			if err := guardCanChallenge(c, def, e); err != nil {
				return dispatched{}, err
			}
			c.Challenger = e.Player
			c.RevealedRole = NoRole
			return dispatched{ctx: c, phase: PhaseChallenge}, nil
		case EventAllow:
			if err := guardCurrentPlayer(c, e); err != nil {
				return dispatched{}, err
			}
			return dispatched{ctx: c, phase: PhaseEndOfTurn}, nil
		default:
			return dispatched{}, illegal("Block does not accept %s", e.Type)
		}

	case PhaseChallenge:
		if e.Type != EventReveal {
			return dispatched{}, illegal("Challenge only accepts REVEAL, got %s", e.Type)
		}
		if err := guardCanReveal(c, def, e); err != nil {
			return dispatched{}, err
		}
		c.pendingRevealRole = e.Role
		return dispatched{ctx: c, phase: PhaseExecRevealOnChallenge}, nil

	case PhaseChallengeIncorrect:
		if e.Type != EventReveal {
			return dispatched{}, illegal("ChallengeIncorrect only accepts REVEAL, got %s", e.Type)
		}
		if err := guardCanReveal(c, def, e); err != nil {
			return dispatched{}, err
		}
		c.pendingRevealRole = e.Role
		return dispatched{ctx: c, phase: PhaseExecCounterReveal}, nil

	case PhaseWaitForBlock:
		switch e.Type {
		case EventBlock:
			if err := guardCanBlock(c, def, e); err != nil {
				return dispatched{}, err
			}
			c.Blocker = e.Player
			return dispatched{ctx: c, phase: PhaseBlock}, nil
		case EventAllow:
			if err := guardValidOpponent(c, e); err != nil {
				return dispatched{}, err
			}
			return dispatched{ctx: c, phase: PhaseFinishAction}, nil
		default:
			return dispatched{}, illegal("WaitForBlock does not accept %s", e.Type)
		}

	case PhaseRevealOnAction:
		if e.Type != EventReveal {
			return dispatched{}, illegal("RevealOnAction only accepts REVEAL, got %s", e.Type)
		}
		if err := guardCanReveal(c, def, e); err != nil {
			return dispatched{}, err
		}
		c.pendingRevealRole = e.Role
		c = revealInfluence(c, c.Revealer)
		return dispatched{ctx: c, phase: PhaseEndOfTurn}, nil

	case PhaseGameOver:
		return dispatched{}, illegal("GameOver accepts no events")

	default:
		return dispatched{}, illegal("no event is accepted while settling phase %s", phase)
	}
}
