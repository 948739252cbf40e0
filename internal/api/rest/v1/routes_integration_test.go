//go:build integration
// +build integration

package v1

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wisskirchenj/account-reactive/internal/app"
	"github.com/wisskirchenj/account-reactive/internal/infrastructure/persistence"
	"github.com/wisskirchenj/account-reactive/internal/pkg/config"
	"github.com/wisskirchenj/account-reactive/internal/pkg/testutil"
)

type apiClient struct {
	t      *testing.T
	engine *gin.Engine
}

func setupAPI(t *testing.T) *apiClient {
	t.Helper()
	gin.SetMode(gin.TestMode)

	services := app.SetupTestServices(t, config.SqliteDbType)
	engine := gin.New()
	SetupRoutes(engine, &Dependencies{
		AuthenticationService: services.AuthenticationService,
		Authenticator:         services.Authenticator,
		AdminService:          services.AdminService,
		PayrollService:        services.PayrollService,
		AuditService:          services.AuditService,
		SignupLimiter:         NewSignupLimiter(1000, 1000),
		DBCheck: func(ctx context.Context) error {
			return persistence.Ping(ctx, services.DBContext.DB)
		},
		Logger: testutil.SetupTestLogger(t),
	})
	return &apiClient{t: t, engine: engine}
}

func (c *apiClient) do(method, path, user, body string) *httptest.ResponseRecorder {
	c.t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if user != "" {
		req.SetBasicAuth(user, app.TestPassword)
	}
	w := httptest.NewRecorder()
	c.engine.ServeHTTP(w, req)
	return w
}

func (c *apiClient) signup(email string) {
	c.t.Helper()
	w := c.do(http.MethodPost, "/api/auth/signup", "",
		`{"name":"John","lastname":"Doe","email":"`+email+`","password":"`+app.TestPassword+`"}`)
	require.Equal(c.t, http.StatusOK, w.Code, w.Body.String())
}

func TestAPI_PayrollFlow(t *testing.T) {
	api := setupAPI(t)
	api.signup("admin@acme.com")
	api.signup("john.doe@acme.com")
	api.signup("acct@acme.com")

	w := api.do(http.MethodPut, "/api/admin/user/role", "admin@acme.com",
		`{"user":"acct@acme.com","role":"ACCOUNTANT","operation":"GRANT"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), `"roles":["ROLE_ACCOUNTANT","ROLE_USER"]`)

	w = api.do(http.MethodPost, "/api/acct/payments", "john.doe@acme.com", `[]`)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = api.do(http.MethodPost, "/api/acct/payments", "acct@acme.com",
		`[{"employee":"john.doe@acme.com","period":"01-2022","salary":123456},
		  {"employee":"john.doe@acme.com","period":"02-2022","salary":7025}]`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.JSONEq(t, `{"status":"2 records Added successfully!"}`, w.Body.String())

	w = api.do(http.MethodPut, "/api/acct/payments", "acct@acme.com",
		`{"employee":"john.doe@acme.com","period":"02-2022","salary":7026}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = api.do(http.MethodGet, "/api/empl/payment", "john.doe@acme.com", "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.JSONEq(t, `[
		{"name":"John","lastname":"Doe","period":"January-2022","salary":"1234 dollar(s) 56 cent(s)"},
		{"name":"John","lastname":"Doe","period":"February-2022","salary":"70 dollar(s) 26 cent(s)"}
	]`, w.Body.String())

	w = api.do(http.MethodGet, "/api/empl/payment?period=2022-01", "john.doe@acme.com", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Wrong Date: Use mm-yyyy format!")

	w = api.do(http.MethodGet, "/api/empl/payment", "admin@acme.com", "")
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAPI_AuditTrail(t *testing.T) {
	api := setupAPI(t)
	api.signup("admin@acme.com")
	api.signup("auditor@acme.com")

	w := api.do(http.MethodPut, "/api/admin/user/role", "admin@acme.com",
		`{"user":"auditor@acme.com","role":"auditor","operation":"grant"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	w = api.do(http.MethodPut, "/api/admin/user/role", "admin@acme.com",
		`{"user":"auditor@acme.com","role":"user","operation":"remove"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = api.do(http.MethodGet, "/api/admin/user", "auditor@acme.com", "")
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = api.do(http.MethodGet, "/api/security/events", "auditor@acme.com", "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var events []SecurityEventResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &events))
	actions := make([]string, len(events))
	for i, event := range events {
		actions[i] = event.Action
	}
	assert.Equal(t, []string{"CREATE_USER", "CREATE_USER", "GRANT_ROLE", "REMOVE_ROLE", "ACCESS_DENIED"}, actions)
	assert.Equal(t, "Grant role AUDITOR to auditor@acme.com", events[2].Object)
	assert.Equal(t, "/api/admin/user", events[4].Object)
}

func TestAPI_AdminManagement(t *testing.T) {
	api := setupAPI(t)
	api.signup("admin@acme.com")
	api.signup("john.doe@acme.com")

	w := api.do(http.MethodPut, "/api/admin/user/access", "admin@acme.com",
		`{"user":"john.doe@acme.com","operation":"lock"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.JSONEq(t, `{"status":"User john.doe@acme.com locked!"}`, w.Body.String())

	w = api.do(http.MethodPost, "/api/auth/changepass", "john.doe@acme.com", `{"new_password":"another-long-password"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "User account is locked")

	w = api.do(http.MethodDelete, "/api/admin/user/admin@acme.com", "admin@acme.com", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Can't remove ADMINISTRATOR role!")

	w = api.do(http.MethodDelete, "/api/admin/user", "admin@acme.com", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = api.do(http.MethodDelete, "/api/admin/user/john.doe@acme.com", "admin@acme.com", "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.JSONEq(t, `{"user":"john.doe@acme.com","status":"Deleted successfully!"}`, w.Body.String())

	w = api.do(http.MethodGet, "/api/admin/user", "admin@acme.com", "")
	require.Equal(t, http.StatusOK, w.Code)
	var users []LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &users))
	require.Len(t, users, 1)
	assert.Equal(t, "admin@acme.com", users[0].Email)
}

func TestAPI_ChangePassword(t *testing.T) {
	api := setupAPI(t)
	api.signup("admin@acme.com")

	w := api.do(http.MethodPost, "/api/auth/changepass", "admin@acme.com", `{"new_password":"`+app.TestPassword+`"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "The passwords must be different!")

	w = api.do(http.MethodPost, "/api/auth/changepass", "admin@acme.com", `{"new_password":"another-long-password"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.JSONEq(t, `{"email":"admin@acme.com","status":"The password has been updated successfully"}`, w.Body.String())

	w = api.do(http.MethodGet, "/api/admin/user", "admin@acme.com", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid Credentials")
}

func TestAPI_HealthReportsDatabase(t *testing.T) {
	api := setupAPI(t)

	w := api.do(http.MethodGet, "/actuator/health", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"UP","components":{"db":{"status":"UP"}}}`, w.Body.String())
}
