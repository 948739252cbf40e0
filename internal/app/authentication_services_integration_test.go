//go:build integration
// +build integration

package app

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wisskirchenj/account-reactive/internal/domain/accounts"
	"github.com/wisskirchenj/account-reactive/internal/domain/audit"
	"github.com/wisskirchenj/account-reactive/internal/pkg/apperrors"
	"github.com/wisskirchenj/account-reactive/internal/pkg/config"
)

func requireAppError(t *testing.T, err error, status int, message string) {
	t.Helper()
	appErr, ok := apperrors.As(err)
	require.True(t, ok, "expected an app error, got %v", err)
	assert.Equal(t, status, appErr.Status)
	assert.Equal(t, message, appErr.Message)
}

func TestAuthenticationService_Signup_FirstUserIsAdministrator(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)

	admin := SignupTestUser(t, services, "admin@acme.com")
	assert.NotZero(t, admin.ID)
	assert.Equal(t, []string{accounts.RoleAdministrator}, admin.Roles)
	assert.NotEqual(t, TestPassword, admin.Password)

	user := SignupTestUser(t, services, "john.doe@acme.com")
	assert.Equal(t, []string{accounts.RoleUser}, user.Roles)

	events, err := services.AuditService.ListEvents(t.Context())
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, audit.ActionCreateUser, events[0].Action)
	assert.Equal(t, audit.AnonymousSubject, events[0].Subject)
	assert.Equal(t, "admin@acme.com", events[0].Object)
	assert.Equal(t, PathSignup, events[0].Path)
}

func TestAuthenticationService_Signup_Rejections(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	SignupTestUser(t, services, "john.doe@acme.com")

	tests := []struct {
		name     string
		email    string
		password string
		message  string
	}{
		{"existing email ignoring case", "John.Doe@ACME.com", TestPassword, accounts.MsgUserExists},
		{"short password", "jane@acme.com", "short", accounts.MsgPasswordTooShort},
		{"breached password", "jane@acme.com", "PasswordForMarch", accounts.MsgPasswordBreached},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := services.AuthenticationService.Signup(t.Context(), &accounts.Signup{
				Name: "Jane", Lastname: "Doe", Email: tt.email, Password: tt.password,
			})
			requireAppError(t, err, http.StatusBadRequest, tt.message)
		})
	}

	count, err := services.DBContext.LoginRepo.Count(t.Context())
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}

func TestAuthenticationService_ChangePassword(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	SignupTestUser(t, services, "john.doe@acme.com")

	t.Run("same password", func(t *testing.T) {
		_, err := services.AuthenticationService.ChangePassword(t.Context(), "john.doe@acme.com", TestPassword)
		requireAppError(t, err, http.StatusBadRequest, accounts.MsgSamePassword)
	})

	t.Run("breached password", func(t *testing.T) {
		_, err := services.AuthenticationService.ChangePassword(t.Context(), "john.doe@acme.com", "PasswordForJuly")
		requireAppError(t, err, http.StatusBadRequest, accounts.MsgPasswordBreached)
	})

	t.Run("success", func(t *testing.T) {
		login, err := services.AuthenticationService.ChangePassword(t.Context(), "john.doe@acme.com", TestOtherPassword)
		require.NoError(t, err)
		assert.Equal(t, "john.doe@acme.com", login.Email)

		_, err = services.Authenticator.Authenticate(t.Context(), "john.doe@acme.com", TestOtherPassword, PathChangePass)
		require.NoError(t, err)
	})

	assert.Equal(t, []string{audit.ActionCreateUser, audit.ActionChangePassword}, EventActions(t, services))
}

func TestAuthenticationService_PasswordsBeyondBcryptInput(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	long := strings.Repeat("x", 80)

	login, err := services.AuthenticationService.Signup(t.Context(), &accounts.Signup{
		Name: "John", Lastname: "Doe", Email: "john.doe@acme.com", Password: long,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{accounts.RoleAdministrator}, login.Roles)

	_, err = services.Authenticator.Authenticate(t.Context(), "john.doe@acme.com", long, PathChangePass)
	require.NoError(t, err)

	longer := strings.Repeat("y", 90)
	_, err = services.AuthenticationService.ChangePassword(t.Context(), "john.doe@acme.com", longer)
	require.NoError(t, err)

	_, err = services.Authenticator.Authenticate(t.Context(), "john.doe@acme.com", longer, PathChangePass)
	require.NoError(t, err)
}
