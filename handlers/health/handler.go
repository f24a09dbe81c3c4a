package health

import (
	"time"

	"dancehub-backend/utils"

	"github.com/gin-gonic/gin"
)

// @Summary Health check
// @Description Liveness endpoint for load balancers and uptime checks
// @Tags health
// @Produce json
// @Success 200 {object} utils.Response
// @Router /health [get]
func HandleHealthCheck(c *gin.Context) {
	utils.SendSuccess(c, 200, "Service healthy", gin.H{
		"time": time.Now().UTC().Format(time.RFC3339),
	})
}
