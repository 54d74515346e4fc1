package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RequireAuth rejects anonymous requests with 401. The SPA handles the
// redirect to /signin itself.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := CurrentUser(c); ok {
			c.Next()
			return
		}
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error":      "authentication required",
			"request_id": GetRequestID(c),
		})
	}
}
