package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/wisskirchenj/account-reactive/internal/domain/audit"
	"github.com/wisskirchenj/account-reactive/internal/pkg/logger"
)

// AuditHandler defines the interface for the audit log endpoint
type AuditHandler interface {
	ListEvents(ctx *gin.Context)
}

// auditHandler struct holds the services
type auditHandler struct {
	auditService audit.AuditService
	logger       logger.Logger
}

// NewAuditHandler creates a new AuditHandler
func NewAuditHandler(auditService audit.AuditService, logger logger.Logger) AuditHandler {
	return &auditHandler{
		auditService: auditService,
		logger:       logger,
	}
}

// ListEvents handles the GET request returning the complete audit log
// @Summary List security events
// @Tags Audit
// @Produce json
// @Success 200 {array} SecurityEventResponse
// @Router /api/security/events [get]
func (handler *auditHandler) ListEvents(ctx *gin.Context) {
	events, err := handler.auditService.ListEvents(ctx.Request.Context())
	if err != nil {
		handleError(ctx, handler.logger, err)
		return
	}

	listResponse := make([]SecurityEventResponse, 0, len(events))
	for _, event := range events {
		listResponse = append(listResponse, newSecurityEventResponse(event))
	}

	ctx.JSON(http.StatusOK, listResponse)
}
