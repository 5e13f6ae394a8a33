package middleware

import (
	"net/http"

	"event-booking/internal/auth"

	"github.com/gin-gonic/gin"
)

// SessionCookie is the cookie carrying the raw session token.
const SessionCookie = "session"

const sessionContextKey = "session"

// Session resolves the session cookie, if any, and stores the resulting
// capability in the request context. Requests without a valid session
// pass through unauthenticated; gating happens in RequireAdmin.
func Session(authenticator *auth.Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(SessionCookie)
		if err == nil && token != "" {
			if session, err := authenticator.Authenticate(c.Request.Context(), token); err == nil {
				c.Set(sessionContextKey, session)
			}
		}
		c.Next()
	}
}

// RequireAdmin aborts requests whose session does not carry the admin role.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !SessionFrom(c).IsAdmin() {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "admin session required"})
			return
		}
		c.Next()
	}
}

// SessionFrom returns the session capability attached to the request, or
// nil for anonymous requests.
func SessionFrom(c *gin.Context) *auth.Session {
	value, ok := c.Get(sessionContextKey)
	if !ok {
		return nil
	}
	session, _ := value.(*auth.Session)
	return session
}
