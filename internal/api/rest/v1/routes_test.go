//go:build unit
// +build unit

package v1

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/wisskirchenj/account-reactive/internal/domain/accounts"
	"github.com/wisskirchenj/account-reactive/internal/domain/audit"
	"github.com/wisskirchenj/account-reactive/internal/pkg/apperrors"
	"github.com/wisskirchenj/account-reactive/internal/pkg/testutil"
)

type testRouter struct {
	engine        *gin.Engine
	authenticator *MockAuthenticator
	auditService  *MockAuditService
	authService   *MockAuthenticationService
}

func setupTestRouter(t *testing.T, dbCheck HealthCheck) *testRouter {
	t.Helper()
	gin.SetMode(gin.TestMode)

	tr := &testRouter{
		engine:        gin.New(),
		authenticator: new(MockAuthenticator),
		auditService:  new(MockAuditService),
		authService:   new(MockAuthenticationService),
	}
	SetupRoutes(tr.engine, &Dependencies{
		AuthenticationService: tr.authService,
		Authenticator:         tr.authenticator,
		AdminService:          new(MockAdminService),
		PayrollService:        new(MockPayrollService),
		AuditService:          tr.auditService,
		SignupLimiter:         NewSignupLimiter(0.001, 2),
		DBCheck:               dbCheck,
		Logger:                testutil.SetupTestLogger(t),
	})
	return tr
}

func (tr *testRouter) serve(req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	tr.engine.ServeHTTP(w, req)
	return w
}

func TestAccessRule_Matches(t *testing.T) {
	tests := []struct {
		rule   AccessRule
		method string
		path   string
		want   bool
	}{
		{AccessRule{Method: http.MethodGet, Path: "/actuator/**"}, http.MethodGet, "/actuator", true},
		{AccessRule{Method: http.MethodGet, Path: "/actuator/**"}, http.MethodGet, "/actuator/health", true},
		{AccessRule{Method: http.MethodGet, Path: "/actuator/**"}, http.MethodGet, "/actuatorx", false},
		{AccessRule{Method: http.MethodGet, Path: "/actuator/**"}, http.MethodPost, "/actuator/health", false},
		{AccessRule{Path: "/api/acct/payments"}, http.MethodPut, "/api/acct/payments", true},
		{AccessRule{Path: "/api/acct/payments"}, http.MethodPut, "/api/acct/payments/1", false},
		{AccessRule{Path: "/**"}, http.MethodDelete, "/anything", true},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.rule.matches(tt.method, tt.path), "%+v %s %s", tt.rule, tt.method, tt.path)
	}
}

func TestSecurityFilter_NotAuthenticated(t *testing.T) {
	tr := setupTestRouter(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/security/events", nil)
	w := tr.serve(req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), accounts.MsgNotAuthenticated)
	tr.authenticator.AssertNotCalled(t, "Authenticate", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestSecurityFilter_InvalidCredentials(t *testing.T) {
	tr := setupTestRouter(t, nil)
	tr.authenticator.On("Authenticate", mock.Anything, "john.doe@acme.com", "wrong", "/api/security/events").
		Return(nil, apperrors.Unauthorized(accounts.MsgInvalidCredentials))

	req := httptest.NewRequest(http.MethodGet, "/api/security/events", nil)
	req.SetBasicAuth("john.doe@acme.com", "wrong")
	w := tr.serve(req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), accounts.MsgInvalidCredentials)
}

func TestSecurityFilter_AccessDenied(t *testing.T) {
	tr := setupTestRouter(t, nil)
	user := &accounts.Login{Email: "john.doe@acme.com", Roles: []string{accounts.RoleUser}}
	tr.authenticator.On("Authenticate", mock.Anything, "john.doe@acme.com", "secret", "/api/security/events").
		Return(user, nil)
	tr.authenticator.On("AccessDenied", mock.Anything, "john.doe@acme.com", "/api/security/events").Return(nil)

	req := httptest.NewRequest(http.MethodGet, "/api/security/events", nil)
	req.SetBasicAuth("john.doe@acme.com", "secret")
	w := tr.serve(req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), accounts.MsgAccessDenied)
	tr.authenticator.AssertExpectations(t)
	tr.auditService.AssertNotCalled(t, "ListEvents", mock.Anything)
}

func TestSecurityFilter_Authorized(t *testing.T) {
	tr := setupTestRouter(t, nil)
	auditor := &accounts.Login{Email: "auditor@acme.com", Roles: []string{accounts.RoleAuditor}}
	tr.authenticator.On("Authenticate", mock.Anything, "auditor@acme.com", "secret", "/api/security/events").
		Return(auditor, nil)
	tr.auditService.On("ListEvents", mock.Anything).Return([]*audit.SecurityEvent{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/security/events", nil)
	req.SetBasicAuth("auditor@acme.com", "secret")
	w := tr.serve(req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get(HeaderRequestID))
}

func TestSecurityFilter_UnknownRouteNeedsAuthentication(t *testing.T) {
	tr := setupTestRouter(t, nil)

	w := tr.serve(httptest.NewRequest(http.MethodGet, "/api/unknown", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	user := &accounts.Login{Email: "john.doe@acme.com", Roles: []string{accounts.RoleUser}}
	tr.authenticator.On("Authenticate", mock.Anything, "john.doe@acme.com", "secret", "/api/unknown").Return(user, nil)
	req := httptest.NewRequest(http.MethodGet, "/api/unknown", nil)
	req.SetBasicAuth("john.doe@acme.com", "secret")
	w = tr.serve(req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSignupLimiter(t *testing.T) {
	tr := setupTestRouter(t, nil)
	tr.authService.On("Signup", mock.Anything, mock.Anything).
		Return(&accounts.Login{ID: 1, Email: "a@acme.com", Roles: []string{accounts.RoleUser}}, nil)

	body := `{"name":"A","lastname":"B","email":"a@acme.com","password":"correct-horse-battery"}`
	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/auth/signup", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		codes = append(codes, tr.serve(req).Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}

func TestSignupLimiter_PerClient(t *testing.T) {
	limiter := NewSignupLimiter(0.001, 1)
	assert.True(t, limiter.Allow("10.0.0.1"))
	assert.False(t, limiter.Allow("10.0.0.1"))
	assert.True(t, limiter.Allow("10.0.0.2"))
}

func TestActuator(t *testing.T) {
	tr := setupTestRouter(t, func(context.Context) error { return nil })

	tests := []struct {
		path     string
		contains string
	}{
		{"/actuator", `"health"`},
		{"/actuator/health", `"status":"UP"`},
		{"/actuator/info", `"image":"wisskirchenj/account-reactive:`},
		{"/actuator/prometheus", "account_http_requests_in_flight"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			w := tr.serve(httptest.NewRequest(http.MethodGet, tt.path, nil))
			assert.Equal(t, http.StatusOK, w.Code)
			assert.Contains(t, w.Body.String(), tt.contains)
		})
	}
}

func TestActuator_HealthDown(t *testing.T) {
	tr := setupTestRouter(t, func(context.Context) error { return errors.New("database is closed") })

	w := tr.serve(httptest.NewRequest(http.MethodGet, "/actuator/health", nil))

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"DOWN"`)
}

func TestNoRoute(t *testing.T) {
	tr := setupTestRouter(t, nil)

	w := tr.serve(httptest.NewRequest(http.MethodGet, "/actuator/unknown", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), `"path":"/actuator/unknown"`)
}
