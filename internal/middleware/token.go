package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/mcqlab/quiz-portal/internal/response"
)

// ContextKeyToken is the Gin context key for the raw upstream access token.
const ContextKeyToken = "upstream_token"

// PassThroughAuth extracts the bearer token from the Authorization header
// and stashes it for the upstream client. The portal never parses or
// validates the token — authentication is owned by the quiz backend, and
// the token travels through opaquely.
func PassThroughAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if token, ok := strings.CutPrefix(header, "Bearer "); ok {
			c.Set(ContextKeyToken, strings.TrimSpace(token))
		}
		c.Next()
	}
}

// RequireToken rejects requests that did not present a bearer token. Used
// on routes whose upstream calls are authenticated.
func RequireToken() gin.HandlerFunc {
	return func(c *gin.Context) {
		if Token(c) == "" {
			response.AbortFail(c, http.StatusUnauthorized, response.ErrTokenRequired)
			return
		}
		c.Next()
	}
}

// Token returns the raw bearer token for the current request, or "".
func Token(c *gin.Context) string {
	v, _ := c.Get(ContextKeyToken)
	token, _ := v.(string)
	return token
}
