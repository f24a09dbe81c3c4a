package routes

import (
	"time"

	"dancehub-backend/handlers/health"
	"dancehub-backend/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func SetupRouter() *gin.Engine {
	gin.DefaultWriter = utils.LogWriter()

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/health", health.HandleHealthCheck)

	AuthRoutes(r)
	UsersRoutes(r)
	CommunitiesRoutes(r)
	CoursesRoutes(r)
	LiveClassesRoutes(r)
	NotificationsRoutes(r)
	ContactsRoutes(r)
	StripeRoutes(r)
	CronRoutes(r)

	return r
}
