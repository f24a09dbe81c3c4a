package stripe

import (
	"encoding/json"
	"io"
	"net/http"
	"os"

	"dancehub-backend/db"
	"dancehub-backend/models"
	"dancehub-backend/utils"

	"github.com/gin-gonic/gin"
	stripe "github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/webhook"
)

// StripeWebhookHandler verifies and dispatches processor events. The first
// successful invoice is what moves a membership from PRE_REGISTERED to
// ACTIVE; the reconciliation job deliberately leaves that transition to this
// path.
func StripeWebhookHandler(c *gin.Context) {
	const MaxBodyBytes = int64(65536)
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, MaxBodyBytes)

	payload, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Could not read the request body"})
		return
	}

	secret := os.Getenv("STRIPE_WEBHOOK_SECRET")
	if secret == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Webhook secret not configured"})
		return
	}

	sig := c.GetHeader("Stripe-Signature")
	event, err := webhook.ConstructEvent(payload, sig, secret)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Stripe signature verification failed"})
		return
	}

	switch event.Type {
	case "invoice.payment_succeeded":
		handleInvoicePaymentSucceeded(c, event)
	case "customer.subscription.deleted":
		handleSubscriptionDeleted(c, event)
	default:
		c.JSON(http.StatusOK, gin.H{"message": "Event ignored"})
	}
}

// handleInvoicePaymentSucceeded activates the membership that owns the paid
// invoice. The invoice payload is decoded defensively: the subscription id
// has moved around between API versions, so both shapes are checked and a
// missing id fails the event without guessing.
func handleInvoicePaymentSucceeded(c *gin.Context, event stripe.Event) {
	var invoiceData map[string]interface{}
	if err := json.Unmarshal(event.Data.Raw, &invoiceData); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Error parsing the invoice"})
		return
	}

	var stripeSubID string
	if parent, ok := invoiceData["parent"].(map[string]interface{}); ok {
		if subDetails, ok := parent["subscription_details"].(map[string]interface{}); ok {
			if sub, ok := subDetails["subscription"].(string); ok && sub != "" {
				stripeSubID = sub
			}
		}
	}

	if stripeSubID == "" {
		if v, ok := invoiceData["subscription"]; ok && v != nil {
			if s, ok := v.(string); ok && s != "" {
				stripeSubID = s
			}
		}
	}

	if stripeSubID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid subscription ID"})
		return
	}

	var membership models.Membership
	if err := db.DB.First(&membership, "stripe_subscription_id = ?", stripeSubID).Error; err != nil {
		utils.LogError(err, "Membership not found in handleInvoicePaymentSucceeded")
		c.JSON(http.StatusNotFound, gin.H{"error": "Membership not found for this subscription"})
		return
	}

	var invoiceID string
	if id, ok := invoiceData["id"].(string); ok {
		invoiceID = id
	}

	switch membership.Status {
	case models.MembershipPreRegistered:
		// Only a PRE_REGISTERED row carries a subscription awaiting its first
		// invoice; PENDING rows have nothing to activate.
		updates := map[string]interface{}{"status": models.MembershipActive}
		if invoiceID != "" {
			updates["stripe_invoice_id"] = invoiceID
		}
		if err := db.DB.Model(&membership).Updates(updates).Error; err != nil {
			utils.LogError(err, "Error activating the membership in handleInvoicePaymentSucceeded")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error activating the membership"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Membership activated via invoice.payment_succeeded"})
	case models.MembershipActive:
		c.JSON(http.StatusOK, gin.H{"message": "Membership renewed via invoice.payment_succeeded"})
	default:
		c.JSON(http.StatusOK, gin.H{"message": "Membership not in an activatable state"})
	}
}

func handleSubscriptionDeleted(c *gin.Context, event stripe.Event) {
	var sub stripe.Subscription
	if err := json.Unmarshal(event.Data.Raw, &sub); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Error parsing the subscription"})
		return
	}

	var membership models.Membership
	if err := db.DB.First(&membership, "stripe_subscription_id = ?", sub.ID).Error; err != nil {
		c.JSON(http.StatusOK, gin.H{"message": "No membership for this subscription"})
		return
	}

	if err := db.DB.Model(&membership).Update("status", models.MembershipInactive).Error; err != nil {
		utils.LogError(err, "Error deactivating the membership in handleSubscriptionDeleted")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error deactivating the membership"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Membership deactivated via customer.subscription.deleted"})
}
