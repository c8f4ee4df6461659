package middleware

import (
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"multilanguage-agent/internal/metrics"
	"multilanguage-agent/internal/model"
	"multilanguage-agent/pkg/response"
)

// RateLimiter keeps one token bucket per key with auto-cleanup of idle keys.
type RateLimiter struct {
	mu       sync.Mutex // serializes get-or-create so a key never gets two buckets
	limiters *expirable.LRU[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

func NewRateLimiter(requestsPerMin int) *RateLimiter {
	burst := requestsPerMin / 10
	if burst < 1 {
		burst = 1
	}
	return &RateLimiter{
		limiters: expirable.NewLRU[string, *rate.Limiter](
			10000,         // max tracked keys
			nil,           // no eviction callback
			time.Minute*5, // idle keys are forgotten
		),
		rate:  rate.Limit(float64(requestsPerMin) / 60.0), // per second
		burst: burst,
	}
}

// Allow consumes one token for key.
func (rl *RateLimiter) Allow(key string) bool {
	rl.mu.Lock()
	limiter, ok := rl.limiters.Get(key)
	if !ok {
		limiter = rate.NewLimiter(rl.rate, rl.burst)
		rl.limiters.Add(key, limiter)
	}
	rl.mu.Unlock()
	return limiter.Allow()
}

// RateLimit rejects requests over the per-session budget with 429.
// Requests without a session fall back to the client IP.
func (m Middleware) RateLimit(channel model.Channel) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := GetSessionID(c)
		if key == "" {
			key = extractIP(c.Request)
		}
		if !m.limiter.Allow(key) {
			metrics.RateLimitHits.WithLabelValues(string(channel)).Inc()
			m.l.Warnf(c.Request.Context(), "middleware.RateLimit: limit exceeded channel=%s", channel)
			response.TooManyRequests(c)
			return
		}
		c.Next()
	}
}

// extractIP extracts the client IP from the request.
func extractIP(r *http.Request) string {
	// proxy / load balancer
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		ips := strings.Split(xff, ",")
		return strings.TrimSpace(ips[0])
	}
	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return xri
	}
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}
