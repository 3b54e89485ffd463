package engine

// Role is a symbolic identifier for an influence a player may hold.
type Role string

// Default role set. Callers building a GameDef are not required to use
// these constants, but DefaultGameDef does.
const (
	RoleDuke       Role = "duke"
	RoleAssassin   Role = "assassin"
	RoleCaptain    Role = "captain"
	RoleAmbassador Role = "ambassador"
	RoleContessa   Role = "contessa"
	RoleInquisitor Role = "inquisitor"
)

// NoRole is the sentinel for "no role recorded", used for Context.RevealedRole
// when a reveal is not pending or has been cleared.
const NoRole Role = ""

// DefaultRoleSet is the default five-role deck composition, three copies each.
var DefaultRoleSet = []Role{RoleDuke, RoleAssassin, RoleCaptain, RoleAmbassador, RoleContessa}

// DefaultRoleMultiplicity is the default number of copies of each role in the deck.
const DefaultRoleMultiplicity = 3
