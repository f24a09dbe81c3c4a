package routes

import (
	"dancehub-backend/handlers/courses"
	"dancehub-backend/middleware"

	"github.com/gin-gonic/gin"
)

func CoursesRoutes(r *gin.Engine) {
	r.GET("/communities/:slug/courses", courses.GetCommunityCourses)
	r.POST("/communities/:slug/courses", middleware.AdminAuth(), courses.CreateCourse)

	courseRoutes := r.Group("/courses")
	{
		courseRoutes.GET("/:courseId", courses.GetCourse)
		courseRoutes.PUT("/:courseId", middleware.AdminAuth(), courses.UpdateCourse)
		courseRoutes.DELETE("/:courseId", middleware.AdminAuth(), courses.DeleteCourse)
	}
}
