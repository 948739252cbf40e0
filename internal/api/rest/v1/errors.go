package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/wisskirchenj/account-reactive/internal/pkg/apperrors"
	"github.com/wisskirchenj/account-reactive/internal/pkg/logger"
)

// ErrorResponse is the body of every non 2xx response
type ErrorResponse struct {
	Timestamp time.Time `json:"timestamp"`
	Status    int       `json:"status"`
	Error     string    `json:"error"`
	Message   string    `json:"message"`
	Path      string    `json:"path"`
}

// abortWithError writes an ErrorResponse and stops the handler chain.
func abortWithError(ctx *gin.Context, status int, message string) {
	ctx.AbortWithStatusJSON(status, ErrorResponse{
		Timestamp: time.Now().UTC(),
		Status:    status,
		Error:     http.StatusText(status),
		Message:   message,
		Path:      ctx.Request.URL.Path,
	})
}

// handleError renders business errors with their status. Anything else is
// logged and hidden behind a 500.
func handleError(ctx *gin.Context, log logger.Logger, err error) {
	if appErr, ok := apperrors.As(err); ok {
		abortWithError(ctx, appErr.Status, appErr.Message)
		return
	}
	log.Error("Request ", ctx.Request.Method, " ", ctx.Request.URL.Path, " failed: ", err)
	abortWithError(ctx, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
}

// notFound answers requests without a matching route.
func notFound(ctx *gin.Context) {
	abortWithError(ctx, http.StatusNotFound, http.StatusText(http.StatusNotFound))
}
