package accounts

import "strings"

// Operations of role and access changes
const (
	OperationGrant  = "GRANT"
	OperationRemove = "REMOVE"
	OperationLock   = "LOCK"
	OperationUnlock = "UNLOCK"
)

// Signup registers a new login.
type Signup struct {
	Name     string
	Lastname string
	Email    string
	Password string
}

// RoleChange grants a role to or removes a role from User.
type RoleChange struct {
	User      string
	Role      string
	Operation string
}

// IsGrant reports whether the change grants the role.
func (c RoleChange) IsGrant() bool {
	return strings.EqualFold(c.Operation, OperationGrant)
}

// AccessChange locks or unlocks User.
type AccessChange struct {
	User      string
	Operation string
}

// IsLock reports whether the change locks the user.
func (c AccessChange) IsLock() bool {
	return strings.EqualFold(c.Operation, OperationLock)
}
