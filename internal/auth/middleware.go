package auth

import (
	"net/http"
	"strings"

	fbauth "firebase.google.com/go/v4/auth"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Middleware verifies the Firebase ID token carried in the Authorization
// header and attaches the account identity to the request context. A nil
// client disables verification (local development, tests).
func Middleware(client *fbauth.Client, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if client == nil {
			c.Next()
			return
		}

		header := c.GetHeader("Authorization")
		token := strings.TrimPrefix(header, "Bearer ")
		if token == "" || token == header {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}

		decoded, err := client.VerifyIDToken(c.Request.Context(), token)
		if err != nil {
			logger.Warn("token verification failed", zap.Error(err))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		role := ""
		if v, ok := decoded.Claims["role"].(string); ok {
			role = v
		}
		c.Request = c.Request.WithContext(WithUser(c.Request.Context(), decoded.UID, role))
		c.Next()
	}
}
