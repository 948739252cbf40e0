package v1

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/wisskirchenj/account-reactive/internal/pkg/logger"
	"github.com/wisskirchenj/account-reactive/internal/pkg/metrics"
	"github.com/wisskirchenj/account-reactive/internal/pkg/version"
)

// Health states reported by the actuator
const (
	StatusUp   = "UP"
	StatusDown = "DOWN"
)

const healthCheckTimeout = 3 * time.Second

// HealthCheck reports whether a dependency of the service is reachable.
type HealthCheck func(ctx context.Context) error

// ActuatorHandler defines the interface for the observability endpoints
type ActuatorHandler interface {
	Links(ctx *gin.Context)
	Health(ctx *gin.Context)
	Info(ctx *gin.Context)
	Prometheus(ctx *gin.Context)
}

type actuatorHandler struct {
	dbCheck HealthCheck
	metrics http.Handler
	logger  logger.Logger
}

// NewActuatorHandler creates a new ActuatorHandler. dbCheck may be nil.
func NewActuatorHandler(dbCheck HealthCheck, logger logger.Logger) ActuatorHandler {
	return &actuatorHandler{
		dbCheck: dbCheck,
		metrics: metrics.Handler(),
		logger:  logger,
	}
}

// Link points to one actuator endpoint
type Link struct {
	Href      string `json:"href"`
	Templated bool   `json:"templated"`
}

// LinksResponse lists the actuator endpoints
type LinksResponse struct {
	Links map[string]Link `json:"_links"`
}

// HealthResponse is the aggregated health of the service
type HealthResponse struct {
	Status     string                     `json:"status"`
	Components map[string]ComponentHealth `json:"components,omitempty"`
}

// ComponentHealth is the health of one dependency
type ComponentHealth struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// InfoResponse describes the running build
type InfoResponse struct {
	App AppInfo `json:"app"`
}

// AppInfo holds the build metadata
type AppInfo struct {
	Name    string `json:"name"`
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Image   string `json:"image"`
}

func (handler *actuatorHandler) Links(ctx *gin.Context) {
	scheme := "http"
	if ctx.Request.TLS != nil {
		scheme = "https"
	}
	base := scheme + "://" + ctx.Request.Host + ActuatorPath

	ctx.JSON(http.StatusOK, LinksResponse{Links: map[string]Link{
		"self":       {Href: base},
		"health":     {Href: base + "/health"},
		"info":       {Href: base + "/info"},
		"prometheus": {Href: base + "/prometheus"},
	}})
}

func (handler *actuatorHandler) Health(ctx *gin.Context) {
	response := HealthResponse{Status: StatusUp}
	if handler.dbCheck != nil {
		checkCtx, cancel := context.WithTimeout(ctx.Request.Context(), healthCheckTimeout)
		defer cancel()

		db := ComponentHealth{Status: StatusUp}
		if err := handler.dbCheck(checkCtx); err != nil {
			handler.logger.Warn("Database health check failed: ", err)
			db = ComponentHealth{Status: StatusDown, Error: err.Error()}
			response.Status = StatusDown
		}
		response.Components = map[string]ComponentHealth{"db": db}
	}

	status := http.StatusOK
	if response.Status != StatusUp {
		status = http.StatusServiceUnavailable
	}
	ctx.JSON(status, response)
}

func (handler *actuatorHandler) Info(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, InfoResponse{App: AppInfo{
		Name:    version.Name,
		Version: version.Version,
		Commit:  version.Commit,
		Image:   version.ImageName(),
	}})
}

func (handler *actuatorHandler) Prometheus(ctx *gin.Context) {
	handler.metrics.ServeHTTP(ctx.Writer, ctx.Request)
}
