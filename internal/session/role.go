package session

// Role is the closed set of permission levels a credential can carry.
type Role string

const (
	// RoleNone marks an absent or undecodable role claim.
	RoleNone   Role = ""
	RoleAdmin  Role = "ADMIN"
	RoleExpert Role = "EXPERT"
	RoleAuthor Role = "AUTHOR"
)

// ParseRole maps a claim string onto the closed role set. Unknown
// strings map to RoleNone rather than passing through, so an unmapped
// role can never silently reach a permission check.
func ParseRole(s string) Role {
	switch Role(s) {
	case RoleAdmin:
		return RoleAdmin
	case RoleExpert:
		return RoleExpert
	case RoleAuthor:
		return RoleAuthor
	default:
		return RoleNone
	}
}

// String returns the wire form of the role.
func (r Role) String() string {
	return string(r)
}
