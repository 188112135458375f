package model

// Role is the access level carried by a Principal.
type Role string

const (
	RoleMember Role = "member"
	RoleAdmin  Role = "admin"
)

// Principal is the authenticated identity attempting an operation.
// It is derived from a validated bearer credential on every request and is
// never persisted; there is no ambient "current user" state.
type Principal struct {
	ID   string `json:"id"`
	Role Role   `json:"role"`
}

// IsAdmin reports whether the principal carries the admin role.
func (p *Principal) IsAdmin() bool {
	return p != nil && p.Role == RoleAdmin
}
