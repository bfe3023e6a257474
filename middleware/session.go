package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const sessionCookie = "session_id"

const sessionMaxAge = 30 * 24 * 60 * 60 // seconds

// EnsureSession assigns each browser session a uuid cookie. The session id
// keys the per-session history store.
func EnsureSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := c.Cookie(sessionCookie)
		if err != nil || id == "" {
			id = uuid.NewString()
			c.SetCookie(sessionCookie, id, sessionMaxAge, "/", "", false, true)
		}
		c.Set(sessionCookie, id)
		c.Next()
	}
}

// SessionID returns the session id set by EnsureSession.
func SessionID(c *gin.Context) string {
	return c.GetString(sessionCookie)
}
