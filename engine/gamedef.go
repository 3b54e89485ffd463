package engine

// ActionName identifies a playable action.
type ActionName string

// Default action set. GameDef.Actions may define additional actions, but
// DefaultGameDef populates exactly these.
const (
	ActionIncome       ActionName = "income"
	ActionForeignAid   ActionName = "foreign-aid"
	ActionTax          ActionName = "tax"
	ActionAssassinate  ActionName = "assassinate"
	ActionSteal        ActionName = "steal"
	ActionExchange     ActionName = "exchange"
	ActionInterrogate  ActionName = "interrogate"
	ActionCoup         ActionName = "coup"
)

// NoAction is the sentinel for "no action recorded".
const NoAction ActionName = ""

// ActionRule is the static rulebook entry for one action: its cost, optional
// gain, the roles that may claim it, the roles that may claim to block it,
// and whether it requires a target.
type ActionRule struct {
	Cost           uint32
	Gain           uint32
	HasGain        bool
	RequiredRoles  map[Role]bool
	BlockingRoles  map[Role]bool
	Targeted       bool
}

// GameDef is the immutable rulebook a StateMachine is configured with: the
// declared role set and the per-action metadata table.
type GameDef struct {
	roles        map[Role]bool
	roleOrder    []Role
	multiplicity uint8
	Actions      map[ActionName]ActionRule
}

// NewGameDef builds a GameDef from an explicit role set (in deck-build
// order), role multiplicity, and action table.
func NewGameDef(roleOrder []Role, multiplicity uint8, actions map[ActionName]ActionRule) GameDef {
	roles := make(map[Role]bool, len(roleOrder))
	for _, r := range roleOrder {
		roles[r] = true
	}
	return GameDef{
		roles:        roles,
		roleOrder:    roleOrder,
		multiplicity: multiplicity,
		Actions:      actions,
	}
}

// DefaultGameDef returns the standard rulebook: the default five-role set
// at three copies each, and the eight-action table. Only income,
// foreign-aid, tax, and assassinate are fully executed by
// applyAction in FinishAction; steal, exchange, interrogate, and coup populate
// challengeability metadata only.
func DefaultGameDef() GameDef {
	actions := map[ActionName]ActionRule{
		ActionIncome: {
			Gain: 1, HasGain: true,
		},
		ActionForeignAid: {
			Gain: 2, HasGain: true,
			BlockingRoles: map[Role]bool{RoleDuke: true},
		},
		ActionTax: {
			Gain: 3, HasGain: true,
			RequiredRoles: map[Role]bool{RoleDuke: true},
		},
		ActionAssassinate: {
			Cost:          3,
			RequiredRoles: map[Role]bool{RoleAssassin: true},
			BlockingRoles: map[Role]bool{RoleContessa: true},
			Targeted:      true,
		},
		ActionSteal: {
			RequiredRoles: map[Role]bool{RoleCaptain: true},
			BlockingRoles: map[Role]bool{RoleCaptain: true, RoleAmbassador: true, RoleInquisitor: true},
			Targeted:      true,
		},
		ActionExchange: {
			RequiredRoles: map[Role]bool{RoleAmbassador: true, RoleInquisitor: true},
		},
		ActionInterrogate: {
			RequiredRoles: map[Role]bool{RoleInquisitor: true},
			Targeted:      true,
		},
		ActionCoup: {
			Cost:     7,
			Targeted: true,
		},
	}
	return NewGameDef(DefaultRoleSet, DefaultRoleMultiplicity, actions)
}

// IsValidAction reports whether name is a declared action.
func (d GameDef) IsValidAction(name ActionName) bool {
	_, ok := d.Actions[name]
	return ok
}

// IsValidRole reports whether role is part of the declared role set.
func (d GameDef) IsValidRole(role Role) bool { return d.roles[role] }

// Cost returns the action's cash cost (0 if undeclared).
func (d GameDef) Cost(name ActionName) uint32 { return d.Actions[name].Cost }

// RequiredRoles returns the set of roles that may claim to perform name.
func (d GameDef) RequiredRoles(name ActionName) map[Role]bool { return d.Actions[name].RequiredRoles }

// IsRoleRequired reports whether name has a non-empty required-role set,
// i.e. whether it is challengeable at all.
func (d GameDef) IsRoleRequired(name ActionName) bool { return len(d.Actions[name].RequiredRoles) > 0 }

// BlockingRoles returns the set of roles that may claim to block name.
func (d GameDef) BlockingRoles(name ActionName) map[Role]bool { return d.Actions[name].BlockingRoles }

// IsBlockable reports whether name has a non-empty blocking-role set.
func (d GameDef) IsBlockable(name ActionName) bool { return len(d.Actions[name].BlockingRoles) > 0 }

// IsBlockedBy reports whether role is among the roles that may block name.
func (d GameDef) IsBlockedBy(name ActionName, role Role) bool { return d.Actions[name].BlockingRoles[role] }

// RoleAllowsAction reports whether role is among the roles that may claim
// name (role ∈ required_roles(name)).
func (d GameDef) RoleAllowsAction(role Role, name ActionName) bool {
	return d.Actions[name].RequiredRoles[role]
}

// IsTargeted reports whether name requires a target player.
func (d GameDef) IsTargeted(name ActionName) bool { return d.Actions[name].Targeted }

// Gain returns the action's direct cash gain and whether it has one.
func (d GameDef) Gain(name ActionName) (uint32, bool) {
	rule := d.Actions[name]
	return rule.Gain, rule.HasGain
}
