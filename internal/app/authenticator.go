package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/wisskirchenj/account-reactive/internal/domain/accounts"
	"github.com/wisskirchenj/account-reactive/internal/domain/audit"
	"github.com/wisskirchenj/account-reactive/internal/domain/transaction"
	"github.com/wisskirchenj/account-reactive/internal/pkg/apperrors"
	"github.com/wisskirchenj/account-reactive/internal/pkg/logger"
	"github.com/wisskirchenj/account-reactive/internal/pkg/metrics"
)

// authenticator implements the Authenticator interface
type authenticator struct {
	logins     accounts.LoginRepository
	loginRoles accounts.LoginRoleRepository
	encoder    accounts.PasswordEncoder
	audit      audit.AuditLogger
	protector  *BruteForceProtector
	logger     logger.Logger
}

// NewAuthenticator creates a new instance of Authenticator
func NewAuthenticator(
	logins accounts.LoginRepository,
	loginRoles accounts.LoginRoleRepository,
	encoder accounts.PasswordEncoder,
	auditLogger audit.AuditLogger,
	protector *BruteForceProtector,
	logger logger.Logger,
) (accounts.Authenticator, error) {
	if protector == nil {
		return nil, fmt.Errorf("brute force protector is required")
	}
	return &authenticator{
		logins:     logins,
		loginRoles: loginRoles,
		encoder:    encoder,
		audit:      auditLogger,
		protector:  protector,
		logger:     logger,
	}, nil
}

// Authenticate rejects breached passwords before looking at the login at all,
// so a leaked password cannot be used even when it is the stored one.
func (a *authenticator) Authenticate(ctx context.Context, email, password, path string) (*accounts.Login, error) {
	if accounts.PasswordIsBreached(password) {
		return nil, a.fail(ctx, email, path, accounts.MsgChangeBreached)
	}

	login, err := a.logins.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, accounts.ErrNotFound) {
			return nil, a.fail(ctx, email, path, accounts.MsgInvalidCredentials)
		}
		return nil, err
	}

	if login.AccountLocked {
		return nil, a.fail(ctx, email, path, accounts.MsgAccountLocked)
	}
	if !a.encoder.Matches(password, login.Password) {
		return nil, a.fail(ctx, email, path, accounts.MsgInvalidCredentials)
	}

	if login.FailedLogins > 0 {
		if err := a.protector.Reset(ctx, login.Email); err != nil {
			a.logger.Warn("Unable to reset failed logins of ", login.Email, ": ", err)
		}
		login.FailedLogins = 0
	}

	roles, err := a.loginRoles.RolesByEmail(ctx, login.Email)
	if err != nil {
		return nil, err
	}
	login.Roles = roles

	metrics.RecordAuthentication(metrics.OutcomeSuccess)
	return login, nil
}

// AccessDenied records a request of email to path that its roles do not allow.
func (a *authenticator) AccessDenied(ctx context.Context, email, path string) error {
	return a.audit.AccessDenied(ctx, email, path)
}

func (a *authenticator) fail(ctx context.Context, email, path, message string) error {
	metrics.RecordAuthentication(metrics.OutcomeFailure)
	if err := a.protector.HandleLoginFailure(ctx, email, path); err != nil {
		a.logger.Error("Brute force protection failed for ", email, ": ", err)
	}
	return apperrors.Unauthorized(message)
}

// BruteForceProtector counts consecutive failed logins and locks a login
// once LoginFailedLimit is reached.
type BruteForceProtector struct {
	transactor transaction.Transactor
	logins     accounts.LoginRepository
	loginRoles accounts.LoginRoleRepository
	audit      audit.AuditLogger
	logger     logger.Logger
}

// NewBruteForceProtector creates a new BruteForceProtector
func NewBruteForceProtector(
	transactor transaction.Transactor,
	logins accounts.LoginRepository,
	loginRoles accounts.LoginRoleRepository,
	auditLogger audit.AuditLogger,
	logger logger.Logger,
) *BruteForceProtector {
	return &BruteForceProtector{
		transactor: transactor,
		logins:     logins,
		loginRoles: loginRoles,
		audit:      auditLogger,
		logger:     logger,
	}
}

// HandleLoginFailure records a failed login of email on path. Unknown and
// already locked logins are only logged. Administrators are never locked.
func (p *BruteForceProtector) HandleLoginFailure(ctx context.Context, email, path string) error {
	return p.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		login, err := p.logins.GetByEmail(ctx, email)
		if err != nil {
			if errors.Is(err, accounts.ErrNotFound) {
				return p.audit.LoginFailed(ctx, email, path)
			}
			return err
		}
		if login.AccountLocked {
			return p.audit.LoginFailed(ctx, login.Email, path)
		}

		roles, err := p.loginRoles.RolesByEmail(ctx, login.Email)
		if err != nil {
			return err
		}
		login.Roles = roles
		// access changes reject administrators, so a lock here could never be lifted
		if login.IsAdministrator() {
			return p.audit.LoginFailed(ctx, login.Email, path)
		}

		failed := login.FailedLogins + 1
		if err := p.logins.SetFailedLogins(ctx, login.Email, failed); err != nil {
			return err
		}
		if err := p.audit.LoginFailed(ctx, login.Email, path); err != nil {
			return err
		}
		if failed < accounts.LoginFailedLimit {
			return nil
		}

		if err := p.logins.SetLocked(ctx, login.Email, true); err != nil {
			return err
		}
		p.logger.Warn("Locked ", login.Email, " after ", failed, " failed logins")
		return p.audit.BruteForce(ctx, login.Email, path)
	})
}

// Reset clears the failed login counter after a successful login.
func (p *BruteForceProtector) Reset(ctx context.Context, email string) error {
	return p.logins.SetFailedLogins(ctx, email, 0)
}
