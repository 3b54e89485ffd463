package engine

// Guards never mutate Context. Each returns nil on accept or an
// *IllegalEventError identifying the failed precondition.

func guardValidPlayer(c Context, player int) error {
	if player < 0 || player >= len(c.Players) {
		return illegal("player %d is not a valid player index", player)
	}
	return nil
}

func guardCanStartAction(c Context, def GameDef, e Event) error {
	if err := guardValidPlayer(c, e.Player); err != nil {
		return err
	}
	if !def.IsValidAction(e.Action) {
		return illegal("%q is not a valid action", e.Action)
	}
	if e.Player != c.WhoseTurn {
		return illegal("player %d cannot act: it is player %d's turn", e.Player, c.WhoseTurn)
	}
	if def.IsTargeted(e.Action) {
		if err := guardValidPlayer(c, e.Target); err != nil {
			return illegal("action %q requires a valid target: %v", e.Action, err)
		}
		if e.Target == c.WhoseTurn {
			return illegal("action %q cannot target the acting player", e.Action)
		}
	}
	if c.Players[e.Player].Cash < def.Cost(e.Action) {
		return illegal("player %d cannot afford action %q (cost %d, has %d)", e.Player, e.Action, def.Cost(e.Action), c.Players[e.Player].Cash)
	}
	return nil
}

func guardCanReveal(c Context, def GameDef, e Event) error {
	if err := guardValidPlayer(c, e.Player); err != nil {
		return err
	}
	if e.Player != c.Revealer {
		return illegal("player %d is not the pending revealer (expected %d)", e.Player, c.Revealer)
	}
	if !def.IsValidRole(e.Role) {
		return illegal("%q is not a valid role", e.Role)
	}
	if !c.Players[e.Player].HasUnrevealedRole(e.Role) {
		return illegal("player %d does not hold an unrevealed %q", e.Player, e.Role)
	}
	return nil
}

func guardValidOpponent(c Context, e Event) error {
	if err := guardValidPlayer(c, e.Player); err != nil {
		return err
	}
	if e.Player == c.WhoseTurn {
		return illegal("player %d is the active player, not an opponent", e.Player)
	}
	return nil
}

func guardCurrentPlayer(c Context, e Event) error {
	if err := guardValidPlayer(c, e.Player); err != nil {
		return err
	}
	if e.Player != c.WhoseTurn {
		return illegal("player %d is not the active player", e.Player)
	}
	return nil
}

func guardCanChallenge(c Context, def GameDef, e Event) error {
	if isBlockBranch(c) {
		if err := guardValidPlayer(c, e.Player); err != nil {
			return err
		}
		if e.Player == c.Blocker {
			return illegal("the blocker cannot challenge their own block")
		}
		return nil
	}
	if err := guardValidOpponent(c, e); err != nil {
		return err
	}
	if !def.IsRoleRequired(c.CurrentAction) {
		return illegal("action %q cannot be challenged (no required role)", c.CurrentAction)
	}
	return nil
}

func guardCanBlock(c Context, def GameDef, e Event) error {
	if err := guardValidOpponent(c, e); err != nil {
		return err
	}
	if e.Role == NoRole {
		return illegal("a block must claim a role")
	}
	if !def.IsBlockedBy(c.CurrentAction, e.Role) {
		return illegal("%q cannot block action %q", e.Role, c.CurrentAction)
	}
	return nil
}
