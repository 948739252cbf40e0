package app

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/wisskirchenj/account-reactive/internal/domain/accounts"
	"github.com/wisskirchenj/account-reactive/internal/domain/audit"
	"github.com/wisskirchenj/account-reactive/internal/domain/payroll"
	"github.com/wisskirchenj/account-reactive/internal/domain/transaction"
	"github.com/wisskirchenj/account-reactive/internal/pkg/apperrors"
	"github.com/wisskirchenj/account-reactive/internal/pkg/logger"
	"github.com/wisskirchenj/account-reactive/internal/pkg/validators"
)

// adminService implements the AdminService interface
type adminService struct {
	transactor transaction.Transactor
	logins     accounts.LoginRepository
	loginRoles accounts.LoginRoleRepository
	roles      accounts.RoleRepository
	salaries   payroll.SalaryRepository
	audit      audit.AuditLogger
	logger     logger.Logger
}

// NewAdminService creates a new instance of AdminService
func NewAdminService(
	transactor transaction.Transactor,
	logins accounts.LoginRepository,
	loginRoles accounts.LoginRoleRepository,
	roles accounts.RoleRepository,
	salaries payroll.SalaryRepository,
	auditLogger audit.AuditLogger,
	logger logger.Logger,
) (accounts.AdminService, error) {
	return &adminService{
		transactor: transactor,
		logins:     logins,
		loginRoles: loginRoles,
		roles:      roles,
		salaries:   salaries,
		audit:      auditLogger,
		logger:     logger,
	}, nil
}

// ListUsers returns all logins ascending by ID, roles sorted by name.
func (s *adminService) ListUsers(ctx context.Context) ([]*accounts.Login, error) {
	logins, err := s.logins.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, login := range logins {
		if err := s.attachRoles(ctx, login); err != nil {
			return nil, err
		}
	}
	return logins, nil
}

// DeleteUser removes the login of email with its roles and salaries.
func (s *adminService) DeleteUser(ctx context.Context, admin, email string) error {
	if !validators.IsCorporateEmail(email) {
		return apperrors.BadRequest(fmt.Sprintf(accounts.MsgInvalidUserEmail, email))
	}

	return s.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		roles, err := s.existingRoles(ctx, email)
		if err != nil {
			return err
		}
		if slices.Contains(roles, accounts.RoleAdministrator) {
			return apperrors.BadRequest(accounts.MsgCantRemoveAdmin)
		}

		if err := s.loginRoles.DeleteByEmail(ctx, email); err != nil {
			return err
		}
		if err := s.salaries.DeleteByEmail(ctx, email); err != nil {
			return err
		}
		if err := s.logins.DeleteByEmail(ctx, email); err != nil {
			return err
		}
		return s.audit.DeleteUser(ctx, admin, email)
	})
}

// ChangeRole grants or removes a system role. Administrative and business
// roles are never combined and a login always keeps at least one role.
func (s *adminService) ChangeRole(ctx context.Context, admin string, change *accounts.RoleChange) (*accounts.Login, error) {
	role := accounts.NormalizeRole(change.Role)
	if err := s.ensureSystemRole(ctx, role); err != nil {
		return nil, err
	}

	var login *accounts.Login
	err := s.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		var err error
		login, err = s.existingLogin(ctx, change.User)
		if err != nil {
			return err
		}
		roles, err := s.existingRoles(ctx, login.Email)
		if err != nil {
			return err
		}

		if err := checkRoleChange(roles, role, change.IsGrant()); err != nil {
			return err
		}

		if change.IsGrant() {
			err = s.loginRoles.Create(ctx, &accounts.LoginRole{Email: login.Email, Role: role})
		} else {
			err = s.loginRoles.DeleteByEmailAndRole(ctx, login.Email, role)
		}
		if err != nil {
			return err
		}
		if err := s.audit.ChangeRole(ctx, admin, login.Email, role, change.IsGrant()); err != nil {
			return err
		}
		return s.attachRoles(ctx, login)
	})
	if err != nil {
		return nil, err
	}
	return login, nil
}

func checkRoleChange(roles []string, role string, grant bool) error {
	held := slices.Contains(roles, role)
	switch {
	case !grant && !held:
		return apperrors.BadRequest(accounts.MsgUserHasNoRole)
	case !grant && len(roles) == 1:
		if accounts.IsAdministrative(role) {
			return apperrors.BadRequest(accounts.MsgCantRemoveAdmin)
		}
		return apperrors.BadRequest(accounts.MsgUserNeedsRole)
	case grant && held:
		return apperrors.BadRequest(accounts.MsgUserHasRole)
	case grant && (accounts.IsAdministrative(role) || slices.ContainsFunc(roles, accounts.IsAdministrative)):
		return apperrors.BadRequest(accounts.MsgInvalidRoleCombine)
	}
	return nil
}

// ChangeAccess locks or unlocks a login. Administrators cannot be locked.
func (s *adminService) ChangeAccess(ctx context.Context, admin string, change *accounts.AccessChange) error {
	return s.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		login, err := s.existingLogin(ctx, change.User)
		if err != nil {
			return err
		}
		roles, err := s.existingRoles(ctx, login.Email)
		if err != nil {
			return err
		}
		if slices.Contains(roles, accounts.RoleAdministrator) {
			return apperrors.BadRequest(accounts.MsgCantLockAdmin)
		}

		if err := s.logins.SetLocked(ctx, login.Email, change.IsLock()); err != nil {
			return err
		}
		return s.audit.ChangeAccess(ctx, admin, login.Email, change.IsLock())
	})
}

func (s *adminService) ensureSystemRole(ctx context.Context, role string) error {
	systemRoles, err := s.roles.List(ctx)
	if err != nil {
		return err
	}
	for _, systemRole := range systemRoles {
		if systemRole.RoleName == role {
			return nil
		}
	}
	return apperrors.NotFound(accounts.MsgRoleNotFound)
}

func (s *adminService) existingLogin(ctx context.Context, email string) (*accounts.Login, error) {
	login, err := s.logins.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, accounts.ErrNotFound) {
			return nil, apperrors.NotFound(accounts.MsgUserNotFound)
		}
		return nil, err
	}
	return login, nil
}

// existingRoles returns the roles of email, a 404 error if it has none.
func (s *adminService) existingRoles(ctx context.Context, email string) ([]string, error) {
	roles, err := s.loginRoles.RolesByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if len(roles) == 0 {
		return nil, apperrors.NotFound(accounts.MsgUserNotFound)
	}
	return roles, nil
}

func (s *adminService) attachRoles(ctx context.Context, login *accounts.Login) error {
	roles, err := s.loginRoles.RolesByEmail(ctx, login.Email)
	if err != nil {
		return err
	}
	slices.Sort(roles)
	login.Roles = roles
	return nil
}
