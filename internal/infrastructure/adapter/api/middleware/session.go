package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/stepexplorer/server/internal/domain/auth"
	domainerr "github.com/stepexplorer/server/internal/domain/error"
	"github.com/stepexplorer/server/internal/infrastructure/adapter/api/dto"
)

const sessionKey = "session"

// Identity headers set by the authenticating gateway in front of the API
const (
	HeaderUserID   = "X-User-ID"
	HeaderUsername = "X-Username"
)

// Session middleware resolves the caller's identity from gateway headers and
// rejects unauthenticated requests before they reach a handler
func Session() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetHeader(HeaderUserID)
		username := c.GetHeader(HeaderUsername)

		sess := auth.NewSession(userID, username)
		if err := sess.Validate(); err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
				Code:    domainerr.ErrorCode(domainerr.ErrNotAuthenticated),
				Message: "Not authenticated",
			})
			return
		}

		c.Set(sessionKey, sess)
		c.Next()
	}
}

// SessionFromContext returns the session stored by the Session middleware.
// Returns nil when the middleware did not run, which fails domain validation
// downstream.
func SessionFromContext(c *gin.Context) *auth.Session {
	value, exists := c.Get(sessionKey)
	if !exists {
		return nil
	}
	sess, ok := value.(*auth.Session)
	if !ok {
		return nil
	}
	return sess
}
