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
)

// authenticationService implements the AuthenticationService interface
type authenticationService struct {
	transactor transaction.Transactor
	logins     accounts.LoginRepository
	loginRoles accounts.LoginRoleRepository
	encoder    accounts.PasswordEncoder
	audit      audit.AuditLogger
	logger     logger.Logger
}

// NewAuthenticationService creates a new instance of AuthenticationService
func NewAuthenticationService(
	transactor transaction.Transactor,
	logins accounts.LoginRepository,
	loginRoles accounts.LoginRoleRepository,
	encoder accounts.PasswordEncoder,
	auditLogger audit.AuditLogger,
	logger logger.Logger,
) (accounts.AuthenticationService, error) {
	return &authenticationService{
		transactor: transactor,
		logins:     logins,
		loginRoles: loginRoles,
		encoder:    encoder,
		audit:      auditLogger,
		logger:     logger,
	}, nil
}

// Signup registers a login. The first login of the system becomes administrator.
func (s *authenticationService) Signup(ctx context.Context, signup *accounts.Signup) (*accounts.Login, error) {
	if err := accounts.CheckPassword(signup.Password); err != nil {
		return nil, err
	}

	hash, err := s.encoder.Encode(signup.Password)
	if err != nil {
		return nil, err
	}

	login := &accounts.Login{
		Name:     signup.Name,
		Lastname: signup.Lastname,
		Email:    signup.Email,
		Password: hash,
	}

	err = s.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		_, err := s.logins.GetByEmail(ctx, signup.Email)
		switch {
		case err == nil:
			return apperrors.BadRequest(accounts.MsgUserExists)
		case !errors.Is(err, accounts.ErrNotFound):
			return err
		}

		count, err := s.logins.Count(ctx)
		if err != nil {
			return err
		}
		role := accounts.InitialRole(count)

		if err := s.logins.Create(ctx, login); err != nil {
			if errors.Is(err, accounts.ErrAlreadyExists) {
				return apperrors.BadRequest(accounts.MsgUserExists)
			}
			return err
		}
		if err := s.loginRoles.Create(ctx, &accounts.LoginRole{Email: login.Email, Role: role}); err != nil {
			return err
		}
		login.Roles = []string{role}
		return s.audit.CreateUser(ctx, login.Email)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Signed up ", login.Email, " with role ", login.Roles[0])
	return login, nil
}

// ChangePassword replaces the password of the login with the given email.
func (s *authenticationService) ChangePassword(ctx context.Context, email, newPassword string) (*accounts.Login, error) {
	if err := accounts.CheckPassword(newPassword); err != nil {
		s.logger.Warn("Password validation failed for ", email)
		return nil, err
	}

	login, err := s.logins.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, accounts.ErrNotFound) {
			return nil, apperrors.NotFound(accounts.MsgUserNotFound)
		}
		return nil, err
	}

	if s.encoder.Matches(newPassword, login.Password) {
		return nil, apperrors.BadRequest(accounts.MsgSamePassword)
	}

	hash, err := s.encoder.Encode(newPassword)
	if err != nil {
		return nil, err
	}
	login.Password = hash

	err = s.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := s.logins.Update(ctx, login); err != nil {
			return err
		}
		return s.audit.ChangePassword(ctx, login.Email)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to change password: %w", err)
	}

	s.logger.Info("Changed password of ", login.Email)
	return login, nil
}
