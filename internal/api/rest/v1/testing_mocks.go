//go:build unit
// +build unit

package v1

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/wisskirchenj/account-reactive/internal/domain/accounts"
	"github.com/wisskirchenj/account-reactive/internal/domain/audit"
	"github.com/wisskirchenj/account-reactive/internal/domain/payroll"
)

// MockAuthenticationService is a mock implementation of AuthenticationService
type MockAuthenticationService struct {
	mock.Mock
}

func (m *MockAuthenticationService) Signup(ctx context.Context, signup *accounts.Signup) (*accounts.Login, error) {
	args := m.Called(ctx, signup)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*accounts.Login), args.Error(1)
}

func (m *MockAuthenticationService) ChangePassword(ctx context.Context, email, newPassword string) (*accounts.Login, error) {
	args := m.Called(ctx, email, newPassword)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*accounts.Login), args.Error(1)
}

// MockAuthenticator is a mock implementation of Authenticator
type MockAuthenticator struct {
	mock.Mock
}

func (m *MockAuthenticator) Authenticate(ctx context.Context, email, password, path string) (*accounts.Login, error) {
	args := m.Called(ctx, email, password, path)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*accounts.Login), args.Error(1)
}

func (m *MockAuthenticator) AccessDenied(ctx context.Context, email, path string) error {
	args := m.Called(ctx, email, path)
	return args.Error(0)
}

// MockAdminService is a mock implementation of AdminService
type MockAdminService struct {
	mock.Mock
}

func (m *MockAdminService) ListUsers(ctx context.Context) ([]*accounts.Login, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*accounts.Login), args.Error(1)
}

func (m *MockAdminService) DeleteUser(ctx context.Context, admin, email string) error {
	args := m.Called(ctx, admin, email)
	return args.Error(0)
}

func (m *MockAdminService) ChangeRole(ctx context.Context, admin string, change *accounts.RoleChange) (*accounts.Login, error) {
	args := m.Called(ctx, admin, change)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*accounts.Login), args.Error(1)
}

func (m *MockAdminService) ChangeAccess(ctx context.Context, admin string, change *accounts.AccessChange) error {
	args := m.Called(ctx, admin, change)
	return args.Error(0)
}

// MockPayrollService is a mock implementation of PayrollService
type MockPayrollService struct {
	mock.Mock
}

func (m *MockPayrollService) Payslips(ctx context.Context, email, period string) ([]*payroll.Payslip, error) {
	args := m.Called(ctx, email, period)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*payroll.Payslip), args.Error(1)
}

func (m *MockPayrollService) Upload(ctx context.Context, records []*payroll.SalaryRecord) (int, error) {
	args := m.Called(ctx, records)
	return args.Int(0), args.Error(1)
}

func (m *MockPayrollService) Update(ctx context.Context, record *payroll.SalaryRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

// MockAuditService is a mock implementation of AuditService
type MockAuditService struct {
	mock.Mock
}

func (m *MockAuditService) ListEvents(ctx context.Context) ([]*audit.SecurityEvent, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*audit.SecurityEvent), args.Error(1)
}
