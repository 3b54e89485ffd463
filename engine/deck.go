package engine

// Deck is an ordered sequence of role tokens. Index 0 is the top of the
// deck — PushFront inserts there, PopFront removes from there.
type Deck struct {
	roles []Role
}

// NewDeck builds a Deck from the given GameDef's role set and multiplicity,
// unshuffled (in role-set, then-copy order).
func NewDeck(def GameDef) Deck {
	roles := make([]Role, 0, len(def.roles)*int(def.multiplicity))
	for _, r := range def.roleOrder {
		for i := uint8(0); i < def.multiplicity; i++ {
			roles = append(roles, r)
		}
	}
	return Deck{roles: roles}
}

// Len returns the number of roles currently in the deck.
func (d Deck) Len() int { return len(d.roles) }

// clone returns a deep copy so mutating the copy never aliases the original.
func (d Deck) clone() Deck {
	roles := make([]Role, len(d.roles))
	copy(roles, d.roles)
	return Deck{roles: roles}
}

// PushFront inserts role at the top of the deck.
func (d Deck) PushFront(role Role) Deck {
	roles := make([]Role, 0, len(d.roles)+1)
	roles = append(roles, role)
	roles = append(roles, d.roles...)
	return Deck{roles: roles}
}

// PopFront removes and returns the top role. It panics with an
// InvariantViolation if the deck is empty — by the time PopFront is called,
// a passing guard should have already ruled that out.
func (d Deck) PopFront() (Role, Deck) {
	if len(d.roles) == 0 {
		panic(&InvariantViolation{Reason: "PopFront: deck is empty"})
	}
	roles := make([]Role, len(d.roles)-1)
	copy(roles, d.roles[1:])
	return d.roles[0], Deck{roles: roles}
}

// Shuffle permutes the deck under seed, returning the new deck and the
// advanced seed.
func (d Deck) Shuffle(seed Seed) (Deck, Seed) {
	roles, seed := Shuffle(seed, d.roles)
	return Deck{roles: roles}, seed
}

// Roles returns a read-only snapshot of the deck's contents, top first.
func (d Deck) Roles() []Role {
	out := make([]Role, len(d.roles))
	copy(out, d.roles)
	return out
}
