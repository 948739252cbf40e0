// Package metrics defines the Prometheus metrics of the service and the
// handler exposing them.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Authentication outcomes
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

var (
	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "account_http_request_duration_seconds",
		Help:    "HTTP request latencies in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route", "status"})

	httpRequestsInFlight = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "account_http_requests_in_flight",
		Help: "Current number of HTTP requests being served",
	})

	securityEventsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "account_security_events_total",
		Help: "Security events written to the audit log by action",
	}, []string{"action"})

	authenticationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "account_authentications_total",
		Help: "Basic authentication attempts by outcome",
	}, []string{"outcome"}) // outcome=success|failure

	signupsRejectedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "account_signups_rate_limited_total",
		Help: "Signup requests rejected by the per client rate limit",
	})
)

// ObserveHTTPRequest records the duration of a served request. route is the
// registered route pattern, not the raw path, to keep label cardinality bounded.
func ObserveHTTPRequest(method, route string, status int, duration time.Duration) {
	httpRequestDuration.WithLabelValues(method, route, strconv.Itoa(status)).Observe(duration.Seconds())
}

// RequestStarted increments the in-flight gauge and returns the matching decrement.
func RequestStarted() func() {
	httpRequestsInFlight.Inc()
	return httpRequestsInFlight.Dec
}

// RecordSecurityEvent counts an audit log entry.
func RecordSecurityEvent(action string) {
	securityEventsTotal.WithLabelValues(action).Inc()
}

// RecordAuthentication counts an authentication attempt.
func RecordAuthentication(outcome string) {
	authenticationsTotal.WithLabelValues(outcome).Inc()
}

// RecordSignupRateLimited counts a signup rejected by the rate limiter.
func RecordSignupRateLimited() {
	signupsRejectedTotal.Inc()
}

// Handler serves all registered metrics in the Prometheus exposition format.
func Handler() http.Handler {
	return promhttp.Handler()
}
