package moderation

// Role is the closed set of actor roles. Unknown strings parse to RoleUser so
// a malformed claim can never widen access.
type Role string

const (
	RoleUser      Role = "user"
	RoleModerator Role = "moderator"
	RoleAdmin     Role = "admin"
)

// Capability is the closed set of privileged actions.
type Capability string

const (
	CapModerateContent Capability = "moderate_content"
	CapManageUsers     Capability = "manage_users"
	CapViewReports     Capability = "view_reports"
)

// roleCapabilities is the exhaustive role -> capability table. Adding a role
// or capability means extending this map, nothing else.
var roleCapabilities = map[Role]map[Capability]bool{
	RoleUser: {},
	RoleModerator: {
		CapModerateContent: true,
		CapViewReports:     true,
	},
	RoleAdmin: {
		CapModerateContent: true,
		CapManageUsers:     true,
		CapViewReports:     true,
	},
}

// ParseRole maps a raw role string (JWT claim, DB column) to a Role.
func ParseRole(s string) Role {
	switch Role(s) {
	case RoleModerator:
		return RoleModerator
	case RoleAdmin:
		return RoleAdmin
	default:
		return RoleUser
	}
}

// HasPermission reports whether role grants the given capability. Pure; the
// caller is responsible for enforcing the denial.
func HasPermission(role Role, capability Capability) bool {
	return roleCapabilities[role][capability]
}

// CanAccessAdmin reports whether role may enter the moderation panel.
func CanAccessAdmin(role Role) bool {
	return HasPermission(role, CapViewReports)
}
