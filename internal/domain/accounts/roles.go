package accounts

import "strings"

// RolePrefix is prepended to every stored role name.
const RolePrefix = "ROLE_"

// System roles
const (
	RoleAdministrator = "ROLE_ADMINISTRATOR"
	RoleUser          = "ROLE_USER"
	RoleAccountant    = "ROLE_ACCOUNTANT"
	RoleAuditor       = "ROLE_AUDITOR"
)

// SystemRoles lists the roles seeded into a fresh database.
var SystemRoles = []string{RoleAdministrator, RoleUser, RoleAccountant, RoleAuditor}

// NormalizeRole turns a role given by a client ("accountant" or
// "ROLE_ACCOUNTANT") into its stored form.
func NormalizeRole(role string) string {
	upper := strings.ToUpper(strings.TrimSpace(role))
	if strings.HasPrefix(upper, RolePrefix) {
		return upper
	}
	return RolePrefix + upper
}

// IsAdministrative reports whether role belongs to the administrative group.
// All other roles are business roles and the groups cannot be combined.
func IsAdministrative(role string) bool {
	return role == RoleAdministrator
}

// InitialRole returns the role of a new signup given the number of logins
// registered before it: the very first user administers the system.
func InitialRole(existingLogins int64) string {
	if existingLogins == 0 {
		return RoleAdministrator
	}
	return RoleUser
}
