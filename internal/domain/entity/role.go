package entity

// Role represents the permission level of an account.
type Role string

const (
	// RoleBasic is a regular customer account.
	RoleBasic Role = "basic"
	// RoleMember can operate a terminal (identify customers and book purchases).
	RoleMember Role = "member"
	// RoleAdmin can manage accounts and credentials.
	RoleAdmin Role = "admin"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleBasic, RoleMember, RoleAdmin:
		return true
	default:
		return false
	}
}

// Level orders roles; an unknown role ranks below RoleBasic.
func (r Role) Level() int {
	switch r {
	case RoleBasic:
		return 1
	case RoleMember:
		return 2
	case RoleAdmin:
		return 3
	default:
		return 0
	}
}

// AtLeast reports whether r grants at least the permissions of required.
func (r Role) AtLeast(required Role) bool {
	return r.Level() >= required.Level()
}
