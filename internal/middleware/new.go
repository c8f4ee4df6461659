package middleware

import (
	"time"

	"multilanguage-agent/config"
	"multilanguage-agent/pkg/log"
)

const (
	DefaultCookieName      = "chat_session"
	DefaultRateLimitPerMin = 30

	// SessionIDKey is the gin context key holding the session ID.
	SessionIDKey = "session_id"
)

type Middleware struct {
	l          log.Logger
	cookieName string
	cookieTTL  time.Duration
	secure     bool
	limiter    *RateLimiter
}

func New(l log.Logger, cfg config.SessionConfig, secureCookie bool) Middleware {
	name := cfg.CookieName
	if name == "" {
		name = DefaultCookieName
	}
	perMin := cfg.RateLimitPerMin
	if perMin <= 0 {
		perMin = DefaultRateLimitPerMin
	}
	return Middleware{
		l:          l,
		cookieName: name,
		cookieTTL:  cfg.TTL,
		secure:     secureCookie,
		limiter:    NewRateLimiter(perMin),
	}
}

// Limiter exposes the shared per-session limiter for surfaces that are not plain HTTP handlers.
func (m Middleware) Limiter() *RateLimiter {
	return m.limiter
}
