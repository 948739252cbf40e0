package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/wisskirchenj/account-reactive/internal/pkg/logger"
	"github.com/wisskirchenj/account-reactive/internal/pkg/metrics"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// HeaderRequestID carries the request ID in requests and responses
const HeaderRequestID = "X-Request-ID"

const (
	requestIDKey   = "request_id"
	unmatchedRoute = "unmatched"
)

// RequestID adds a unique ID to every request, keeping one sent by the client.
func RequestID() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		reqID := ctx.GetHeader(HeaderRequestID)
		if reqID == "" {
			reqID = uuid.New().String()
		}
		ctx.Set(requestIDKey, reqID)
		ctx.Header(HeaderRequestID, reqID)
		ctx.Next()
	}
}

func route(ctx *gin.Context) string {
	if fullPath := ctx.FullPath(); fullPath != "" {
		return fullPath
	}
	return unmatchedRoute
}

// RequestLogger logs every request once it is answered. Bodies are never logged.
func RequestLogger(log logger.Logger) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		ctx.Next()

		status := ctx.Writer.Status()
		reqLog := log.With("request_id", ctx.GetString(requestIDKey))
		args := []interface{}{ctx.Request.Method, " ", ctx.Request.URL.Path, " ", status, " ", time.Since(start)}
		switch {
		case status >= http.StatusInternalServerError:
			reqLog.Error(args...)
		case status >= http.StatusBadRequest:
			reqLog.Warn(args...)
		default:
			reqLog.Info(args...)
		}
	}
}

// Metrics records duration and in-flight count of every request by route pattern.
func Metrics() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		done := metrics.RequestStarted()
		defer done()

		start := time.Now()
		ctx.Next()
		metrics.ObserveHTTPRequest(ctx.Request.Method, route(ctx), ctx.Writer.Status(), time.Since(start))
	}
}

// Tracing names the server span started by otelhttp after the matched route
// and records the response status on it.
func Tracing() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		ctx.Next()

		span := trace.SpanFromContext(ctx.Request.Context())
		if !span.IsRecording() {
			return
		}

		status := ctx.Writer.Status()
		span.SetName(ctx.Request.Method + " " + route(ctx))
		span.SetAttributes(
			attribute.String("http.route", route(ctx)),
			attribute.Int("http.status_code", status),
			attribute.String("http.request_id", ctx.GetString(requestIDKey)),
		)
		if status >= http.StatusInternalServerError {
			span.SetStatus(codes.Error, http.StatusText(status))
		}
	}
}
