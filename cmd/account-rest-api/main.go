// cmd/account-rest-api/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	v1 "github.com/wisskirchenj/account-reactive/internal/api/rest/v1"
	"github.com/wisskirchenj/account-reactive/internal/app"
	"github.com/wisskirchenj/account-reactive/internal/domain/accounts"
	"github.com/wisskirchenj/account-reactive/internal/infrastructure/cryptography"
	"github.com/wisskirchenj/account-reactive/internal/infrastructure/persistence"
	"github.com/wisskirchenj/account-reactive/internal/infrastructure/telemetry"
	"github.com/wisskirchenj/account-reactive/internal/pkg/config"
	"github.com/wisskirchenj/account-reactive/internal/pkg/logger"
	"github.com/wisskirchenj/account-reactive/internal/pkg/version"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

const shutdownTimeout = 15 * time.Second

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Application error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Parse configuration
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "configs/rest-app.yaml"
	}
	if _, err := os.Stat(configPath); errors.Is(err, os.ErrNotExist) {
		configPath = ""
	}

	restConfig, err := config.InitializeRestConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}

	// Initialize logger
	if err := logger.InitLogger(&restConfig.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	log, err := logger.GetLogger()
	if err != nil {
		return fmt.Errorf("failed to get logger: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	tracing, err := telemetry.NewProvider(ctx, restConfig.Telemetry)
	if err != nil {
		return fmt.Errorf("failed to initialize telemetry: %w", err)
	}
	defer func() {
		if err := tracing.Shutdown(context.Background()); err != nil {
			log.Warn("Failed to flush traces: ", err)
		}
	}()

	// Initialize application dependencies
	db, deps, err := initializeDependencies(ctx, restConfig, log)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}
	defer func() {
		if err := persistence.CloseDB(db); err != nil {
			log.Warn("Failed to close database: ", err)
		}
	}()

	// Setup and start server with graceful shutdown
	return serve(ctx, restConfig, deps, log)
}

// initializeDependencies sets up all application components
func initializeDependencies(ctx context.Context, cfg *config.RestConfig, log logger.Logger) (*gorm.DB, *v1.Dependencies, error) {
	// Initialize database
	db, err := persistence.NewDBConnection(cfg.Database, log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create db connection: %w", err)
	}

	// Run migrations
	if err := persistence.Migrate(ctx, db); err != nil {
		_ = persistence.CloseDB(db)
		return nil, nil, err
	}
	log.Info("Database migrations completed successfully")

	deps, err := initializeApplicationServices(db, cfg, log)
	if err != nil {
		_ = persistence.CloseDB(db)
		return nil, nil, err
	}
	return db, deps, nil
}

// initializeApplicationServices wires repositories into the application services
func initializeApplicationServices(db *gorm.DB, cfg *config.RestConfig, log logger.Logger) (*v1.Dependencies, error) {
	loginRepo, err := persistence.NewGormLoginRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create login repository: %w", err)
	}
	loginRoleRepo, err := persistence.NewGormLoginRoleRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create login role repository: %w", err)
	}
	roleRepo, err := persistence.NewGormRoleRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create role repository: %w", err)
	}
	salaryRepo, err := persistence.NewGormSalaryRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create salary repository: %w", err)
	}
	eventRepo, err := persistence.NewGormSecurityEventRepository(db)
	if err != nil {
		return nil, fmt.Errorf("failed to create security event repository: %w", err)
	}
	transactor := persistence.NewGormTransactor(db)

	encoder, err := cryptography.NewBcryptEncoder(accounts.BcryptCost, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create password encoder: %w", err)
	}

	auditLogger, err := app.NewAuditLogger(eventRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create audit logger: %w", err)
	}

	authenticationService, err := app.NewAuthenticationService(transactor, loginRepo, loginRoleRepo, encoder, auditLogger, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create authentication service: %w", err)
	}

	protector := app.NewBruteForceProtector(transactor, loginRepo, loginRoleRepo, auditLogger, log)
	authenticator, err := app.NewAuthenticator(loginRepo, loginRoleRepo, encoder, auditLogger, protector, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create authenticator: %w", err)
	}

	adminService, err := app.NewAdminService(transactor, loginRepo, loginRoleRepo, roleRepo, salaryRepo, auditLogger, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create admin service: %w", err)
	}

	payrollService, err := app.NewPayrollService(transactor, loginRepo, salaryRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create payroll service: %w", err)
	}

	auditService, err := app.NewAuditService(eventRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create audit service: %w", err)
	}

	log.Info("Application services initialized successfully")
	return &v1.Dependencies{
		AuthenticationService: authenticationService,
		Authenticator:         authenticator,
		AdminService:          adminService,
		PayrollService:        payrollService,
		AuditService:          auditService,
		SignupLimiter:         v1.NewSignupLimiter(cfg.Security.SignupRate, cfg.Security.SignupBurst),
		DBCheck: func(ctx context.Context) error {
			return persistence.Ping(ctx, db)
		},
		Logger: log,
	}, nil
}

// serve runs the HTTP server until ctx is cancelled, then shuts it down gracefully
func serve(ctx context.Context, cfg *config.RestConfig, deps *v1.Dependencies, log logger.Logger) error {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())

	// Configure CORS
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Security.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", v1.HeaderRequestID},
		ExposeHeaders:    []string{"Content-Length", "Content-Type", v1.HeaderRequestID},
		AllowCredentials: !allowsAnyOrigin(cfg.Security.AllowedOrigins),
		MaxAge:           12 * time.Hour,
	}))

	v1.SetupRoutes(r, deps)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           otelhttp.NewHandler(r, version.Name),
		ReadHeaderTimeout: 10 * time.Second, // Prevent Slowloris attack
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("Starting ", version.Name, " ", version.Version, " on port ", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		log.Info("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server forced to shutdown: %w", err)
		}

		log.Info("Server stopped gracefully")
		return nil
	})

	return g.Wait()
}

// allowsAnyOrigin reports whether origins contains the wildcard, which
// browsers do not accept together with credentials.
func allowsAnyOrigin(origins []string) bool {
	for _, origin := range origins {
		if origin == "*" {
			return true
		}
	}
	return false
}
