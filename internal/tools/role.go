package tools

// Role identifies the access scope of a chat session. It is supplied by
// the surrounding session on every call and never retained here.
type Role string

const (
	// RoleInternal is restaurant staff with full access
	RoleInternal Role = "internal"
	// RoleExternal is a customer limited to menu and recipe data
	RoleExternal Role = "external"
)

// ParseRole validates a role string
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleInternal, RoleExternal:
		return Role(s), nil
	default:
		return "", errUnknownRole(s)
	}
}

func validRole(role Role) bool {
	return role == RoleInternal || role == RoleExternal
}

var (
	internalOnly = []Role{RoleInternal}
	allRoles     = []Role{RoleInternal, RoleExternal}
)
