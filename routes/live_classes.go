package routes

import (
	"dancehub-backend/handlers/liveclasses"
	"dancehub-backend/middleware"

	"github.com/gin-gonic/gin"
)

func LiveClassesRoutes(r *gin.Engine) {
	r.GET("/communities/:slug/live-classes", liveclasses.GetCommunityLiveClasses)
	r.POST("/communities/:slug/live-classes", middleware.AdminAuth(), liveclasses.CreateLiveClass)
}
