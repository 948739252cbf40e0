package accounts

import "slices"

// Login is a registered user. Roles are stored separately as LoginRole
// rows and attached by the services.
type Login struct {
	ID            int64
	Name          string
	Lastname      string
	Email         string
	Password      string
	FailedLogins  int
	AccountLocked bool
	Roles         []string
}

// HasRole reports whether the login holds role.
func (l *Login) HasRole(role string) bool {
	return slices.Contains(l.Roles, role)
}

// IsAdministrator reports whether the login holds the administrator role.
func (l *Login) IsAdministrator() bool {
	return l.HasRole(RoleAdministrator)
}

// LoginRole assigns one role to the login with the given email.
type LoginRole struct {
	ID    int64
	Email string
	Role  string
}

// Role is a system role known to the service.
type Role struct {
	ID       int64
	RoleName string
}
