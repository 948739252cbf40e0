package accounts

import (
	"context"
	"errors"
)

// ErrNotFound is returned by repositories when no row matches.
var ErrNotFound = errors.New("not found")

// ErrAlreadyExists is returned by repositories when a unique key is taken.
var ErrAlreadyExists = errors.New("already exists")

// LoginRepository defines the interface for Login-related operations.
// Email lookups ignore case.
type LoginRepository interface {
	// Create adds a new Login and sets its ID
	Create(ctx context.Context, login *Login) error
	// Update saves name, password, failed logins and lock state of a Login
	Update(ctx context.Context, login *Login) error
	// GetByEmail retrieves a Login, ErrNotFound if there is none
	GetByEmail(ctx context.Context, email string) (*Login, error)
	// List returns all Logins ascending by ID
	List(ctx context.Context) ([]*Login, error)
	// Count returns the number of registered Logins
	Count(ctx context.Context) (int64, error)
	// DeleteByEmail removes a Login
	DeleteByEmail(ctx context.Context, email string) error
	// SetLocked locks or unlocks a Login. Unlocking also resets its failed logins.
	SetLocked(ctx context.Context, email string, locked bool) error
	// SetFailedLogins stores the failed login counter of a Login
	SetFailedLogins(ctx context.Context, email string, failedLogins int) error
}

// LoginRoleRepository defines the interface for role assignments.
type LoginRoleRepository interface {
	Create(ctx context.Context, loginRole *LoginRole) error
	// RolesByEmail returns the roles of a login, empty for unknown logins
	RolesByEmail(ctx context.Context, email string) ([]string, error)
	DeleteByEmail(ctx context.Context, email string) error
	DeleteByEmailAndRole(ctx context.Context, email, role string) error
}

// RoleRepository defines the interface for the system roles.
type RoleRepository interface {
	List(ctx context.Context) ([]*Role, error)
	// Create adds a role unless a role of that name exists
	Create(ctx context.Context, role *Role) error
}

// PasswordEncoder hashes and verifies passwords.
type PasswordEncoder interface {
	Encode(password string) (string, error)
	Matches(password, hash string) bool
}

// AuthenticationService defines the self-service operations of a user.
type AuthenticationService interface {
	// Signup validates and registers a new login together with its initial role.
	// It returns the stored Login including its roles.
	Signup(ctx context.Context, signup *Signup) (*Login, error)

	// ChangePassword replaces the password of the authenticated login.
	ChangePassword(ctx context.Context, email, newPassword string) (*Login, error)
}

// Authenticator verifies credentials presented on protected requests.
type Authenticator interface {
	// Authenticate checks email and password for a request to path. Failures
	// are fed into brute force protection and returned as 401 errors.
	Authenticate(ctx context.Context, email, password, path string) (*Login, error)

	// AccessDenied records that an authenticated login lacked the role for path.
	AccessDenied(ctx context.Context, email, path string) error
}

// AdminService defines the user management operations of administrators.
type AdminService interface {
	// ListUsers returns all logins ascending by ID with their roles.
	ListUsers(ctx context.Context) ([]*Login, error)

	// DeleteUser removes a login with its roles and salaries.
	DeleteUser(ctx context.Context, admin, email string) error

	// ChangeRole grants or removes a role and returns the updated login.
	ChangeRole(ctx context.Context, admin string, change *RoleChange) (*Login, error)

	// ChangeAccess locks or unlocks a login.
	ChangeAccess(ctx context.Context, admin string, change *AccessChange) error
}
