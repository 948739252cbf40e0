package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/wisskirchenj/account-reactive/internal/domain/accounts"
	"github.com/wisskirchenj/account-reactive/internal/domain/audit"
	"github.com/wisskirchenj/account-reactive/internal/domain/payroll"
	"github.com/wisskirchenj/account-reactive/internal/pkg/logger"
)

// Route groups
const (
	APIPath      = "/api"
	ActuatorPath = "/actuator"
)

// Dependencies holds everything the routes are served by
type Dependencies struct {
	AuthenticationService accounts.AuthenticationService
	Authenticator         accounts.Authenticator
	AdminService          accounts.AdminService
	PayrollService        payroll.PayrollService
	AuditService          audit.AuditService
	SignupLimiter         *SignupLimiter
	// DBCheck backs the db component of the health endpoint, optional
	DBCheck HealthCheck
	Logger  logger.Logger
}

// SetupRoutes installs the request middleware and all routes of the service.
func SetupRoutes(r *gin.Engine, deps *Dependencies) {
	r.Use(
		RequestID(),
		Tracing(),
		Metrics(),
		RequestLogger(deps.Logger),
		SecurityFilter(deps.Authenticator, AccessRules, deps.Logger),
	)
	r.NoRoute(notFound)

	api := r.Group(APIPath)

	// Auth Routes
	authHandler := NewAuthHandler(deps.AuthenticationService, deps.Logger)
	api.POST("/auth/signup", deps.SignupLimiter.Middleware(), authHandler.Signup)
	api.POST("/auth/changepass", authHandler.ChangePassword)

	// Payroll Routes
	payrollHandler := NewPayrollHandler(deps.PayrollService, deps.Logger)
	api.GET("/empl/payment", payrollHandler.Payslips)
	api.POST("/acct/payments", payrollHandler.Upload)
	api.PUT("/acct/payments", payrollHandler.Update)

	// Admin Routes
	adminHandler := NewAdminHandler(deps.AdminService, deps.Logger)
	api.GET("/admin/user", adminHandler.ListUsers)
	api.DELETE("/admin/user/:email", adminHandler.DeleteUser)
	api.PUT("/admin/user/role", adminHandler.ChangeRole)
	api.PUT("/admin/user/access", adminHandler.ChangeAccess)

	// Audit Routes
	auditHandler := NewAuditHandler(deps.AuditService, deps.Logger)
	api.GET("/security/events", auditHandler.ListEvents)

	// Actuator Routes
	actuatorHandler := NewActuatorHandler(deps.DBCheck, deps.Logger)
	actuator := r.Group(ActuatorPath)
	actuator.GET("", actuatorHandler.Links)
	actuator.GET("/health", actuatorHandler.Health)
	actuator.GET("/info", actuatorHandler.Info)
	actuator.GET("/prometheus", actuatorHandler.Prometheus)
}
