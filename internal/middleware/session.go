package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"multilanguage-agent/pkg/log"
)

// Session makes sure every request carries a session ID. The ID lives in a
// cookie, is stored on the gin context and is attached to the request context
// so every log line of the request carries it.
func (m Middleware) Session() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := c.Cookie(m.cookieName)
		if err != nil || uuid.Validate(sessionID) != nil {
			sessionID = uuid.NewString()
			m.l.Debugf(c.Request.Context(), "middleware.Session: issued new session")
		}

		// refreshed on every request so the cookie outlives active sessions
		maxAge := int(m.cookieTTL.Seconds())
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(m.cookieName, sessionID, maxAge, "/", "", m.secure, true)

		c.Set(SessionIDKey, sessionID)
		c.Request = c.Request.WithContext(context.WithValue(c.Request.Context(), log.SessionIDKey{}, sessionID))
		c.Next()
	}
}

// GetSessionID returns the session ID set by Session, or "" when the middleware did not run.
func GetSessionID(c *gin.Context) string {
	return c.GetString(SessionIDKey)
}
