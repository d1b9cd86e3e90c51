package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ashworthrenovations/ashworth-api/pkg/logger"
)

// AdminAuthHeader carries the static token protecting the internal surface
const AdminAuthHeader = "x-admin-api-token"

// timingSafeCompare compares two tokens in constant time
func timingSafeCompare(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}

// AdminAuthMiddleware validates the static admin API token. An empty
// configured token disables the internal surface entirely.
func AdminAuthMiddleware(validToken string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if validToken == "" {
			c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
			c.Abort()
			return
		}

		token := c.GetHeader(AdminAuthHeader)
		if token == "" || !timingSafeCompare(token, validToken) {
			logger.Warn("Invalid admin API token",
				zap.String("path", c.Request.URL.Path),
				zap.String("client_ip", c.ClientIP()),
			)
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or missing admin token"})
			c.Abort()
			return
		}

		c.Next()
	}
}
