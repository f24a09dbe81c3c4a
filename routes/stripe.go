package routes

import (
	"dancehub-backend/handlers/stripe"

	"github.com/gin-gonic/gin"
)

func StripeRoutes(r *gin.Engine) {
	r.POST("/stripe/webhook", stripe.StripeWebhookHandler)
}
