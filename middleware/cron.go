package middleware

import (
	"crypto/subtle"
	"net/http"
	"os"
	"strings"

	"dancehub-backend/utils"

	"github.com/gin-gonic/gin"
)

// CronAuth guards the scheduled-job endpoints with the shared secret from
// CRON_SECRET, sent as a bearer token by the scheduler.
func CronAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		secret := os.Getenv("CRON_SECRET")
		if secret == "" {
			utils.LogError(nil, "CRON_SECRET is not configured")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Cron secret not configured"})
			c.Abort()
			return
		}

		authHeader := c.GetHeader("Authorization")
		token := strings.TrimPrefix(authHeader, "Bearer ")
		if token == authHeader || subtle.ConstantTimeCompare([]byte(token), []byte(secret)) != 1 {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			c.Abort()
			return
		}

		c.Next()
	}
}
