package routes

import (
	"dancehub-backend/handlers/cron"
	"dancehub-backend/middleware"

	"github.com/gin-gonic/gin"
)

func CronRoutes(r *gin.Engine) {
	cronRoutes := r.Group("/cron")
	cronRoutes.Use(middleware.CronAuth())
	{
		cronRoutes.GET("/process-community-openings", cron.ProcessCommunityOpenings)
	}
}
