package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/wisskirchenj/account-reactive/internal/domain/accounts"
	"github.com/wisskirchenj/account-reactive/internal/domain/audit"
	"github.com/wisskirchenj/account-reactive/internal/domain/transaction"
	"github.com/wisskirchenj/account-reactive/internal/pkg/logger"
	"github.com/wisskirchenj/account-reactive/internal/pkg/metrics"
)

// Paths recorded with the security events of the respective endpoints.
const (
	PathSignup     = "/api/auth/signup"
	PathChangePass = "/api/auth/changepass"
	PathRole       = "/api/admin/user/role"
	PathAccess     = "/api/admin/user/access"
	PathDeleteUser = "/api/admin/user"
)

// auditLogger implements the AuditLogger interface
type auditLogger struct {
	repository audit.SecurityEventRepository
	logger     logger.Logger
}

// NewAuditLogger creates a new instance of AuditLogger
func NewAuditLogger(repository audit.SecurityEventRepository, logger logger.Logger) (audit.AuditLogger, error) {
	return &auditLogger{
		repository: repository,
		logger:     logger,
	}, nil
}

func (a *auditLogger) CreateUser(ctx context.Context, email string) error {
	return a.log(ctx, audit.NewSecurityEvent(audit.ActionCreateUser, audit.AnonymousSubject, email, PathSignup))
}

func (a *auditLogger) ChangePassword(ctx context.Context, email string) error {
	return a.log(ctx, audit.NewSecurityEvent(audit.ActionChangePassword, email, email, PathChangePass))
}

func (a *auditLogger) AccessDenied(ctx context.Context, email, path string) error {
	return a.log(ctx, audit.NewSecurityEvent(audit.ActionAccessDenied, email, path, path))
}

func (a *auditLogger) LoginFailed(ctx context.Context, email, path string) error {
	return a.log(ctx, audit.NewSecurityEvent(audit.ActionLoginFailed, email, path, path))
}

func (a *auditLogger) BruteForce(ctx context.Context, email, path string) error {
	if err := a.log(ctx, audit.NewSecurityEvent(audit.ActionBruteForce, email, path, path)); err != nil {
		return err
	}
	return a.log(ctx, audit.NewSecurityEvent(audit.ActionLockUser, email, lockObject(email, true), path))
}

func (a *auditLogger) ChangeRole(ctx context.Context, admin, user, role string, grant bool) error {
	name := strings.TrimPrefix(role, accounts.RolePrefix)
	if grant {
		return a.log(ctx, audit.NewSecurityEvent(audit.ActionGrantRole, admin,
			fmt.Sprintf("Grant role %s to %s", name, user), PathRole))
	}
	return a.log(ctx, audit.NewSecurityEvent(audit.ActionRemoveRole, admin,
		fmt.Sprintf("Remove role %s from %s", name, user), PathRole))
}

func (a *auditLogger) ChangeAccess(ctx context.Context, admin, user string, lock bool) error {
	action := audit.ActionUnlockUser
	if lock {
		action = audit.ActionLockUser
	}
	return a.log(ctx, audit.NewSecurityEvent(action, admin, lockObject(user, lock), PathAccess))
}

func (a *auditLogger) DeleteUser(ctx context.Context, admin, email string) error {
	return a.log(ctx, audit.NewSecurityEvent(audit.ActionDeleteUser, admin, email, PathDeleteUser))
}

func (a *auditLogger) log(ctx context.Context, event *audit.SecurityEvent) error {
	if err := a.repository.Create(ctx, event); err != nil {
		return fmt.Errorf("failed to log security event %s: %w", event.Action, err)
	}
	transaction.AfterCommit(ctx, func() { metrics.RecordSecurityEvent(event.Action) })
	a.logger.Info("Security event ", event.Action, " subject=", event.Subject, " object=", event.Object)
	return nil
}

func lockObject(user string, lock bool) string {
	if lock {
		return "Lock user " + user
	}
	return "Unlock user " + user
}

// auditService implements the AuditService interface
type auditService struct {
	repository audit.SecurityEventRepository
	logger     logger.Logger
}

// NewAuditService creates a new instance of AuditService
func NewAuditService(repository audit.SecurityEventRepository, logger logger.Logger) (audit.AuditService, error) {
	return &auditService{
		repository: repository,
		logger:     logger,
	}, nil
}

// ListEvents returns the complete audit log.
func (s *auditService) ListEvents(ctx context.Context) ([]*audit.SecurityEvent, error) {
	events, err := s.repository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list security events: %w", err)
	}
	s.logger.Debug("Listed ", len(events), " security events")
	return events, nil
}
