package routes

import (
	"dancehub-backend/handlers/contacts"
	"dancehub-backend/middleware"

	"github.com/gin-gonic/gin"
)

func ContactsRoutes(r *gin.Engine) {
	r.POST("/contact", contacts.CreateContact)
	r.GET("/contact", middleware.AdminAuth(), contacts.GetAllContacts)
}
