package engine

// Influence is one of a player's two influence slots.
type Influence struct {
	Role     Role
	Revealed bool
}

// Player holds one participant's cash and two influence slots.
type Player struct {
	Cash      uint32
	Influence [2]Influence
}

// NewPlayer builds a Player with the given starting cash and role pair,
// neither revealed.
func NewPlayer(cash uint32, roles [2]Role) Player {
	return Player{
		Cash: cash,
		Influence: [2]Influence{
			{Role: roles[0]},
			{Role: roles[1]},
		},
	}
}

// CountUnrevealed returns how many of the player's two influence slots are
// still face-down (0, 1, or 2).
func (p Player) CountUnrevealed() int {
	n := 0
	for _, inf := range p.Influence {
		if !inf.Revealed {
			n++
		}
	}
	return n
}

// HasNUnrevealed reports whether the player has exactly n unrevealed slots.
func (p Player) HasNUnrevealed(n int) bool { return p.CountUnrevealed() == n }

// IsDead reports whether all of the player's influence has been revealed.
func (p Player) IsDead() bool { return p.CountUnrevealed() == 0 }

// AdjustCash adds delta (which may be negative) to the player's cash.
// Precondition: the caller has already guarded against cash going negative.
func (p Player) AdjustCash(delta int64) Player {
	next := int64(p.Cash) + delta
	if next < 0 {
		panic(&InvariantViolation{Reason: "AdjustCash: cash would go negative"})
	}
	p.Cash = uint32(next)
	return p
}

// RevealRole flips the first unrevealed slot holding role face up. It
// panics with an InvariantViolation if no such slot exists — guards must
// ensure the player actually holds an unrevealed card of this role first.
func (p Player) RevealRole(role Role) Player {
	for i := range p.Influence {
		if p.Influence[i].Role == role && !p.Influence[i].Revealed {
			p.Influence[i].Revealed = true
			return p
		}
	}
	panic(&InvariantViolation{Reason: "RevealRole: no unrevealed " + string(role) + " slot"})
}

// UnrevealRole flips the first revealed slot holding role face down again.
// Used only by the replace-influence effect after an incorrect challenge.
func (p Player) UnrevealRole(role Role) Player {
	for i := range p.Influence {
		if p.Influence[i].Role == role && p.Influence[i].Revealed {
			p.Influence[i].Revealed = false
			return p
		}
	}
	panic(&InvariantViolation{Reason: "UnrevealRole: no revealed " + string(role) + " slot"})
}

// SwapRole replaces the role of the first unrevealed slot holding oldRole
// with newRole, leaving it unrevealed.
func (p Player) SwapRole(oldRole, newRole Role) Player {
	for i := range p.Influence {
		if p.Influence[i].Role == oldRole && !p.Influence[i].Revealed {
			p.Influence[i].Role = newRole
			return p
		}
	}
	panic(&InvariantViolation{Reason: "SwapRole: no unrevealed " + string(oldRole) + " slot"})
}

// FirstUnrevealedRole returns the role of the player's first unrevealed
// slot. Used for auto-reveal when a player has exactly one influence left.
// Panics with an InvariantViolation if the player has no unrevealed slot.
func (p Player) FirstUnrevealedRole() Role {
	for _, inf := range p.Influence {
		if !inf.Revealed {
			return inf.Role
		}
	}
	panic(&InvariantViolation{Reason: "FirstUnrevealedRole: player has no unrevealed influence"})
}

// HasUnrevealedRole reports whether the player currently holds an
// unrevealed card of the given role.
func (p Player) HasUnrevealedRole(role Role) bool {
	for _, inf := range p.Influence {
		if inf.Role == role && !inf.Revealed {
			return true
		}
	}
	return false
}
