package routes

import (
	"dancehub-backend/handlers/users"
	"dancehub-backend/middleware"

	"github.com/gin-gonic/gin"
)

func UsersRoutes(r *gin.Engine) {
	userRoutes := r.Group("/users")
	userRoutes.Use(middleware.JWTAuth())
	{
		userRoutes.GET("/me", users.GetMyProfile)
		userRoutes.PUT("/me", users.UpdateMyProfile)
	}
}
