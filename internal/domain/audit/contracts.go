package audit

import "context"

// SecurityEventRepository defines the interface for the audit log storage.
type SecurityEventRepository interface {
	Create(ctx context.Context, event *SecurityEvent) error
	// List returns all events ascending by ID
	List(ctx context.Context) ([]*SecurityEvent, error)
}

// AuditLogger writes the security events of the service.
type AuditLogger interface {
	CreateUser(ctx context.Context, email string) error
	ChangePassword(ctx context.Context, email string) error
	AccessDenied(ctx context.Context, email, path string) error
	LoginFailed(ctx context.Context, email, path string) error
	// BruteForce logs the brute force detection followed by the resulting lock of email.
	BruteForce(ctx context.Context, email, path string) error
	ChangeRole(ctx context.Context, admin, user, role string, grant bool) error
	ChangeAccess(ctx context.Context, admin, user string, lock bool) error
	DeleteUser(ctx context.Context, admin, email string) error
}

// AuditService gives auditors access to the audit log.
type AuditService interface {
	// ListEvents returns all security events ascending by ID.
	ListEvents(ctx context.Context) ([]*SecurityEvent, error)
}
