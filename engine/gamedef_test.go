package engine

import "testing"

func TestDefaultGameDefTable(t *testing.T) {
	def := DefaultGameDef()

	cases := []struct {
		action    ActionName
		cost      uint32
		targeted  bool
		required  []Role
		blockedBy []Role
	}{
		{ActionIncome, 0, false, nil, nil},
		{ActionForeignAid, 0, false, nil, []Role{RoleDuke}},
		{ActionTax, 0, false, []Role{RoleDuke}, nil},
		{ActionAssassinate, 3, true, []Role{RoleAssassin}, []Role{RoleContessa}},
		{ActionSteal, 0, true, []Role{RoleCaptain}, []Role{RoleCaptain, RoleAmbassador, RoleInquisitor}},
		{ActionExchange, 0, false, []Role{RoleAmbassador, RoleInquisitor}, nil},
		{ActionInterrogate, 0, true, []Role{RoleInquisitor}, nil},
		{ActionCoup, 7, true, nil, nil},
	}

	for _, tc := range cases {
		if !def.IsValidAction(tc.action) {
			t.Errorf("%q should be a valid action", tc.action)
		}
		if got := def.Cost(tc.action); got != tc.cost {
			t.Errorf("%q: Cost() = %d, want %d", tc.action, got, tc.cost)
		}
		if got := def.IsTargeted(tc.action); got != tc.targeted {
			t.Errorf("%q: IsTargeted() = %v, want %v", tc.action, got, tc.targeted)
		}
		for _, r := range tc.required {
			if !def.RoleAllowsAction(r, tc.action) {
				t.Errorf("%q: expected %q to be a required role", tc.action, r)
			}
		}
		if len(tc.required) == 0 && def.IsRoleRequired(tc.action) {
			t.Errorf("%q: expected no required role", tc.action)
		}
		for _, r := range tc.blockedBy {
			if !def.IsBlockedBy(tc.action, r) {
				t.Errorf("%q: expected %q to block it", tc.action, r)
			}
		}
		if len(tc.blockedBy) == 0 && def.IsBlockable(tc.action) {
			t.Errorf("%q: expected unblockable", tc.action)
		}
	}
}

func TestDefaultGameDefRoleSet(t *testing.T) {
	def := DefaultGameDef()
	for _, r := range DefaultRoleSet {
		if !def.IsValidRole(r) {
			t.Errorf("%q should be a valid role", r)
		}
	}
	if def.IsValidRole(Role("not-a-role")) {
		t.Errorf("an unknown role should not be valid")
	}
}
