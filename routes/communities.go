package routes

import (
	"dancehub-backend/handlers/communities"
	"dancehub-backend/middleware"

	"github.com/gin-gonic/gin"
)

func CommunitiesRoutes(r *gin.Engine) {
	communityRoutes := r.Group("/communities")
	{
		communityRoutes.GET("/", communities.GetAllCommunities)
		communityRoutes.GET("/:slug", communities.GetCommunityBySlug)
		communityRoutes.POST("/", middleware.AdminAuth(), communities.CreateCommunity)
		communityRoutes.PUT("/:slug", middleware.AdminAuth(), communities.UpdateCommunity)
		communityRoutes.POST("/:slug/confirm-pre-registration", middleware.JWTAuth(), communities.ConfirmPreRegistration)
		communityRoutes.POST("/:slug/cancel-pre-registration", middleware.JWTAuth(), communities.CancelPreRegistration)
	}
}
