package routes

import (
	"dancehub-backend/handlers/notifications"
	"dancehub-backend/middleware"

	"github.com/gin-gonic/gin"
)

func NotificationsRoutes(r *gin.Engine) {
	notificationRoutes := r.Group("/notifications")
	notificationRoutes.Use(middleware.JWTAuth())
	{
		notificationRoutes.GET("/", notifications.GetMyNotifications)
		notificationRoutes.POST("/:notificationId/read", notifications.MarkNotificationRead)
	}
}
