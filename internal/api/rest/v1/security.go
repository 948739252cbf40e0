package v1

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/wisskirchenj/account-reactive/internal/domain/accounts"
	"github.com/wisskirchenj/account-reactive/internal/pkg/logger"
)

const principalKey = "principal"

// AccessRule grants access to requests matching Method (empty for any) and
// Path. A Path ending in "/**" matches the path itself and everything below.
// Public rules skip authentication, otherwise the login needs one of Roles
// or, with no Roles, just valid credentials.
type AccessRule struct {
	Method string
	Path   string
	Public bool
	Roles  []string
}

func (r AccessRule) matches(method, path string) bool {
	if r.Method != "" && r.Method != method {
		return false
	}
	if prefix, ok := strings.CutSuffix(r.Path, "/**"); ok {
		return path == prefix || strings.HasPrefix(path, prefix+"/")
	}
	return path == r.Path
}

func (r AccessRule) allows(login *accounts.Login) bool {
	if len(r.Roles) == 0 {
		return true
	}
	for _, role := range r.Roles {
		if login.HasRole(role) {
			return true
		}
	}
	return false
}

// AccessRules is evaluated in order, the first matching rule decides.
var AccessRules = []AccessRule{
	{Method: http.MethodPost, Path: "/api/auth/signup", Public: true},
	{Method: http.MethodGet, Path: ActuatorPath + "/**", Public: true},
	{Method: http.MethodPost, Path: "/api/auth/changepass"},
	{Method: http.MethodGet, Path: "/api/empl/payment", Roles: []string{accounts.RoleUser, accounts.RoleAccountant}},
	{Path: "/api/acct/payments", Roles: []string{accounts.RoleAccountant}},
	{Path: "/api/admin/**", Roles: []string{accounts.RoleAdministrator}},
	{Method: http.MethodGet, Path: "/api/security/events", Roles: []string{accounts.RoleAuditor}},
	{Path: "/**"},
}

func matchRule(rules []AccessRule, method, path string) AccessRule {
	for _, rule := range rules {
		if rule.matches(method, path) {
			return rule
		}
	}
	return AccessRule{Path: path}
}

// SecurityFilter authenticates requests with HTTP Basic credentials and
// enforces rules. The authenticated login is available via Principal.
func SecurityFilter(authenticator accounts.Authenticator, rules []AccessRule, log logger.Logger) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		method, path := ctx.Request.Method, ctx.Request.URL.Path
		rule := matchRule(rules, method, path)
		if rule.Public {
			ctx.Next()
			return
		}

		email, password, ok := ctx.Request.BasicAuth()
		if !ok {
			abortWithError(ctx, http.StatusUnauthorized, accounts.MsgNotAuthenticated)
			return
		}

		login, err := authenticator.Authenticate(ctx.Request.Context(), email, password, path)
		if err != nil {
			handleError(ctx, log, err)
			return
		}

		if !rule.allows(login) {
			if err := authenticator.AccessDenied(ctx.Request.Context(), login.Email, path); err != nil {
				log.Error("Unable to log denied access of ", login.Email, ": ", err)
			}
			abortWithError(ctx, http.StatusForbidden, accounts.MsgAccessDenied)
			return
		}

		ctx.Set(principalKey, login)
		ctx.Next()
	}
}

// Principal returns the login authenticated by SecurityFilter. It panics on
// public routes, which never reach a handler needing it.
func Principal(ctx *gin.Context) *accounts.Login {
	return ctx.MustGet(principalKey).(*accounts.Login)
}
