package engine

// Effects mutate a cloned Context and return the result — the only place
// State actually changes.

// revealInfluence flips player's pending card face up: the role named by
// pendingRevealRole if an explicit REVEAL event supplied one, otherwise the
// player's sole remaining unrevealed role (auto-reveal). Records the result
// in RevealedRole.
func revealInfluence(c Context, player int) Context {
	role := c.pendingRevealRole
	if role == NoRole {
		role = c.Players[player].FirstUnrevealedRole()
	}
	c.Players[player] = c.Players[player].RevealRole(role)
	c.RevealedRole = role
	c.pendingRevealRole = NoRole
	return c
}

// replaceInfluence implements the reshuffle-after-reveal protocol: the
// just-revealed role is unrevealed, pushed onto the deck, the deck is
// shuffled, and the top card becomes the player's new role in that slot —
// which may or may not equal the original role.
func replaceInfluence(c Context, player int) Context {
	role := c.RevealedRole
	c.Players[player] = c.Players[player].UnrevealRole(role)

	c.Deck = c.Deck.PushFront(role)
	c.Deck, c.Seed = c.Deck.Shuffle(c.Seed)
	newRole, deck := c.Deck.PopFront()
	c.Deck = deck

	c.Players[player] = c.Players[player].SwapRole(role, newRole)
	return c
}

// payActionCost deducts Cost(CurrentAction) from the active player, at most
// once per action — see DESIGN.md for why this needed an explicit
// costPaid flag rather than charging unconditionally at each call site.
func payActionCost(c Context, def GameDef) Context {
	if c.costPaid {
		return c
	}
	c.Players[c.WhoseTurn] = c.Players[c.WhoseTurn].AdjustCash(-int64(def.Cost(c.CurrentAction)))
	c.costPaid = true
	return c
}

// applyAction runs the concrete effect of CurrentAction once it has gone
// uncontested. Only income, foreign-aid, tax, and assassinate have a
// concrete effect here — the remaining actions (steal, exchange,
// interrogate, coup) populate challengeability metadata only and are
// no-ops beyond their cost, which payActionCost already charged.
func applyAction(c Context, def GameDef) Context {
	switch c.CurrentAction {
	case ActionIncome:
		c.Players[c.WhoseTurn] = c.Players[c.WhoseTurn].AdjustCash(1)
	case ActionForeignAid:
		c.Players[c.WhoseTurn] = c.Players[c.WhoseTurn].AdjustCash(2)
	case ActionTax:
		c.Players[c.WhoseTurn] = c.Players[c.WhoseTurn].AdjustCash(3)
	case ActionAssassinate:
		c.Revealer = c.Target
	}
	return c
}

// clearRevealer resets the pending revealer, leaving RevealedRole alone
// (several callers need to inspect it immediately afterward).
func clearRevealer(c Context) Context {
	c.Revealer = NoPlayer
	return c
}

// livingPlayers returns the indices of players with at least one unrevealed
// influence slot.
func livingPlayers(c Context) []int {
	out := make([]int, 0, len(c.Players))
	for i, p := range c.Players {
		if !p.IsDead() {
			out = append(out, i)
		}
	}
	return out
}

// advanceTurn walks forward from WhoseTurn, modulo player count, to the
// next living player, skipping anyone already eliminated.
func advanceTurn(c Context) Context {
	n := len(c.Players)
	for i := 1; i <= n; i++ {
		next := (c.WhoseTurn + i) % n
		if !c.Players[next].IsDead() {
			c.WhoseTurn = next
			return c
		}
	}
	panic(&InvariantViolation{Reason: "advanceTurn: no living player to advance to"})
}

// challengeIncorrect implements the challenge-incorrect predicate: in the
// block branch, the blocker proved their claim if RevealedRole blocks
// CurrentAction; in the action branch, the actor proved their claim if
// RevealedRole allows CurrentAction.
func challengeIncorrect(c Context, def GameDef) bool {
	if isBlockBranch(c) {
		return def.IsBlockedBy(c.CurrentAction, c.RevealedRole)
	}
	return def.RoleAllowsAction(c.RevealedRole, c.CurrentAction)
}
