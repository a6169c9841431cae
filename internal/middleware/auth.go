package middleware

import (
	"encanto_backend/internal/service"
	"encanto_backend/internal/util"

	"github.com/gin-gonic/gin"
)

const sessionContextKey = "session"

// SessionMiddleware resolves the session cookie and re-validates the backing
// access key. Requests without a live session are rejected with 403; the
// client cannot tell a missing cookie from a revoked key.
func SessionMiddleware(authService *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, err := authService.GetSession(c)
		if err != nil {
			util.LogInternalError(c, err)
			c.Abort()
			return
		}
		if session == nil {
			util.Forbidden(c)
			c.Abort()
			return
		}

		c.Set(sessionContextKey, session)
		c.Next()
	}
}

// AdminMiddleware must run after SessionMiddleware.
func AdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := GetSessionFromContext(c)
		if session == nil || !session.IsAdmin {
			util.Forbidden(c)
			c.Abort()
			return
		}
		c.Next()
	}
}

func GetSessionFromContext(c *gin.Context) *util.SessionClaims {
	value, exists := c.Get(sessionContextKey)
	if !exists {
		return nil
	}
	session, ok := value.(*util.SessionClaims)
	if !ok {
		return nil
	}
	return session
}
