package engine

import "fmt"

// Config describes a new game: initial cash and influence per player, who
// moves first, the seed the deck is shuffled with, and the rulebook to
// play under.
type Config struct {
	InitialCash []uint32
	Influence   [][2]Role
	WhoseTurn   int
	Seed        Seed
	Def         GameDef
}

// InitialState builds the starting State for config. The initial deck is
// the full role multiset declared by config.Def, minus the roles already
// dealt to players, shuffled once with config.Seed.
func InitialState(config Config) (State, error) {
	n := len(config.Influence)
	if len(config.InitialCash) != n {
		return State{}, fmt.Errorf("config: InitialCash has %d entries, Influence has %d", len(config.InitialCash), n)
	}
	if n < 2 {
		return State{}, fmt.Errorf("config: at least 2 players are required, got %d", n)
	}
	if config.WhoseTurn < 0 || config.WhoseTurn >= n {
		return State{}, fmt.Errorf("config: WhoseTurn %d out of range for %d players", config.WhoseTurn, n)
	}

	def := config.Def
	deck := NewDeck(def)
	players := make([]Player, n)
	for i, roles := range config.Influence {
		for _, r := range roles {
			var err error
			deck, err = removeOneRole(deck, r)
			if err != nil {
				return State{}, fmt.Errorf("config: player %d's starting influence: %w", i, err)
			}
		}
		players[i] = NewPlayer(config.InitialCash[i], roles)
	}

	deck, seed := deck.Shuffle(config.Seed)

	ctx := Context{
		WhoseTurn: config.WhoseTurn,
		Players:   players,
		Deck:      deck,
		Seed:      seed,
	}

	settledCtx, settledPhase := settle(ctx, PhaseStartOfTurn, def)
	return State{Phase: settledPhase, Ctx: settledCtx, Def: def}, nil
}

// removeOneRole removes the first occurrence of role from deck, returning
// an error if the role set doesn't contain enough copies to deal.
func removeOneRole(deck Deck, role Role) (Deck, error) {
	roles := deck.roles
	for i, r := range roles {
		if r == role {
			out := make([]Role, 0, len(roles)-1)
			out = append(out, roles[:i]...)
			out = append(out, roles[i+1:]...)
			return Deck{roles: out}, nil
		}
	}
	return deck, fmt.Errorf("no remaining copy of role %q in the deck (declared multiplicity exhausted)", role)
}
