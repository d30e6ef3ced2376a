package database

import "strings"

// Role is the account type of a user
type Role string

const (
	RoleFarmer      Role = "FARMER"
	RoleDistributor Role = "DISTRIBUTOR"
	RoleConsumer    Role = "CONSUMER"
	RoleAdmin       Role = "ADMIN"
)

// legacyRoleAliases maps misspelled roles found in old rows to their real value
var legacyRoleAliases = map[string]Role{
	"FAWBER":     RoleFarmer,
	"CONSUME":    RoleConsumer,
	"DISTRIBUTO": RoleDistributor,
}

// NormalizeRole trims and upper-cases a role string and repairs the known
// legacy misspellings. It does not check that the result is a known role.
func NormalizeRole(s string) Role {
	r := strings.ToUpper(strings.TrimSpace(s))
	if fixed, ok := legacyRoleAliases[r]; ok {
		return fixed
	}
	return Role(r)
}

// Valid reports whether r is one of the four account types
func (r Role) Valid() bool {
	switch r {
	case RoleFarmer, RoleDistributor, RoleConsumer, RoleAdmin:
		return true
	}
	return false
}

// SelfRegistrable reports whether r can be chosen at sign-up. ADMIN accounts
// are only created from configuration.
func (r Role) SelfRegistrable() bool {
	return r == RoleFarmer || r == RoleDistributor || r == RoleConsumer
}

// NormalizeEmail lower-cases and trims an email address for storage and lookup
func NormalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
