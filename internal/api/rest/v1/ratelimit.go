package v1

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/wisskirchenj/account-reactive/internal/pkg/metrics"
	"golang.org/x/time/rate"
)

const (
	limiterIdleTimeout     = 10 * time.Minute
	limiterCleanupInterval = 5 * time.Minute
)

// MsgTooManySignups is returned to clients exceeding the signup rate
const MsgTooManySignups = "Too many signup requests, try again later!"

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// SignupLimiter holds one token bucket per client IP
type SignupLimiter struct {
	rate  rate.Limit
	burst int

	mu          sync.Mutex
	clients     map[string]*clientLimiter
	lastCleanup time.Time
}

// NewSignupLimiter creates a SignupLimiter allowing perSecond signups per
// client with bursts of up to burst.
func NewSignupLimiter(perSecond float64, burst int) *SignupLimiter {
	return &SignupLimiter{
		rate:        rate.Limit(perSecond),
		burst:       burst,
		clients:     make(map[string]*clientLimiter),
		lastCleanup: time.Now(),
	}
}

// Allow reports whether clientIP may sign up now.
func (l *SignupLimiter) Allow(clientIP string) bool {
	now := time.Now()

	l.mu.Lock()
	defer l.mu.Unlock()

	if now.Sub(l.lastCleanup) > limiterCleanupInterval {
		for ip, client := range l.clients {
			if now.Sub(client.lastSeen) > limiterIdleTimeout {
				delete(l.clients, ip)
			}
		}
		l.lastCleanup = now
	}

	client, ok := l.clients[clientIP]
	if !ok {
		client = &clientLimiter{limiter: rate.NewLimiter(l.rate, l.burst)}
		l.clients[clientIP] = client
	}
	client.lastSeen = now
	return client.limiter.AllowN(now, 1)
}

// Middleware rejects requests of clients above their rate with 429.
func (l *SignupLimiter) Middleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if !l.Allow(ctx.ClientIP()) {
			metrics.RecordSignupRateLimited()
			abortWithError(ctx, http.StatusTooManyRequests, MsgTooManySignups)
			return
		}
		ctx.Next()
	}
}
