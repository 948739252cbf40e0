//go:build integration
// +build integration

package app

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/wisskirchenj/account-reactive/internal/domain/accounts"
	"github.com/wisskirchenj/account-reactive/internal/domain/audit"
	"github.com/wisskirchenj/account-reactive/internal/domain/payroll"
	"github.com/wisskirchenj/account-reactive/internal/infrastructure/cryptography"
	"github.com/wisskirchenj/account-reactive/internal/infrastructure/persistence"
	"github.com/wisskirchenj/account-reactive/internal/pkg/testutil"
)

// Test credentials accepted by the password rules
const (
	TestPassword      = "correct-horse-battery"
	TestOtherPassword = "another-long-password"
)

// TestServices holds all application services and dependencies for testing
type TestServices struct {
	AuthenticationService accounts.AuthenticationService
	Authenticator         accounts.Authenticator
	AdminService          accounts.AdminService
	PayrollService        payroll.PayrollService
	AuditService          audit.AuditService

	// Infrastructure
	DBContext *persistence.TestContext
}

// SetupTestServices initializes all application services for integration tests
func SetupTestServices(t *testing.T, dbType string) *TestServices {
	t.Helper()

	logger := testutil.SetupTestLogger(t)
	dbContext := persistence.SetupTestDB(t, dbType)

	encoder, err := cryptography.NewBcryptEncoder(accounts.BcryptCost, logger)
	require.NoError(t, err, "Failed to create password encoder")

	auditLogger, err := NewAuditLogger(dbContext.EventRepo, logger)
	require.NoError(t, err, "Failed to create AuditLogger")

	authenticationService, err := NewAuthenticationService(
		dbContext.Transactor,
		dbContext.LoginRepo,
		dbContext.LoginRoleRepo,
		encoder,
		auditLogger,
		logger,
	)
	require.NoError(t, err, "Failed to create AuthenticationService")

	protector := NewBruteForceProtector(
		dbContext.Transactor,
		dbContext.LoginRepo,
		dbContext.LoginRoleRepo,
		auditLogger,
		logger,
	)
	authenticator, err := NewAuthenticator(
		dbContext.LoginRepo,
		dbContext.LoginRoleRepo,
		encoder,
		auditLogger,
		protector,
		logger,
	)
	require.NoError(t, err, "Failed to create Authenticator")

	adminService, err := NewAdminService(
		dbContext.Transactor,
		dbContext.LoginRepo,
		dbContext.LoginRoleRepo,
		dbContext.RoleRepo,
		dbContext.SalaryRepo,
		auditLogger,
		logger,
	)
	require.NoError(t, err, "Failed to create AdminService")

	payrollService, err := NewPayrollService(
		dbContext.Transactor,
		dbContext.LoginRepo,
		dbContext.SalaryRepo,
		logger,
	)
	require.NoError(t, err, "Failed to create PayrollService")

	auditService, err := NewAuditService(dbContext.EventRepo, logger)
	require.NoError(t, err, "Failed to create AuditService")

	return &TestServices{
		AuthenticationService: authenticationService,
		Authenticator:         authenticator,
		AdminService:          adminService,
		PayrollService:        payrollService,
		AuditService:          auditService,
		DBContext:             dbContext,
	}
}

// SignupTestUser registers a login through the AuthenticationService
func SignupTestUser(t *testing.T, services *TestServices, email string) *accounts.Login {
	t.Helper()

	login, err := services.AuthenticationService.Signup(t.Context(), &accounts.Signup{
		Name:     "John",
		Lastname: "Doe",
		Email:    email,
		Password: TestPassword,
	})
	require.NoError(t, err)
	return login
}

// EventActions returns the actions of all logged security events in order
func EventActions(t *testing.T, services *TestServices) []string {
	t.Helper()

	events, err := services.AuditService.ListEvents(t.Context())
	require.NoError(t, err)

	actions := make([]string, len(events))
	for i, event := range events {
		actions[i] = event.Action
	}
	return actions
}
