package communities

import (
	"net/http"
	"os"
	"strconv"

	"dancehub-backend/db"
	"dancehub-backend/models"
	"dancehub-backend/payments"
	"dancehub-backend/utils"
	mailsmodels "dancehub-backend/utils/mails-models"

	"github.com/gin-gonic/gin"
	stripe "github.com/stripe/stripe-go/v82"
)

type ConfirmPreRegistrationInput struct {
	UserID        string `json:"userId" binding:"required"`
	SetupIntentID string `json:"setupIntentId" binding:"required"`
}

// defaultPlatformFeePercent applies when PLATFORM_FEE_PERCENTAGE is unset.
// The value is frozen on the membership row at registration time.
const defaultPlatformFeePercent = 8.0

func platformFeePercent() float64 {
	raw := os.Getenv("PLATFORM_FEE_PERCENTAGE")
	if raw == "" {
		return defaultPlatformFeePercent
	}
	fee, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		utils.LogError(err, "Invalid PLATFORM_FEE_PERCENTAGE, using default")
		return defaultPlatformFeePercent
	}
	return fee
}

// ConfirmPreRegistration finishes a pre-registration: it verifies the setup
// intent that saved the member's payment method, creates a subscription whose
// first charge is deferred to the community's opening date, and only then
// persists the membership row. If the row insert fails the subscription is
// canceled so no orphaned billable object survives.
// @Summary Confirm a community pre-registration
// @Description Verify the saved payment method and create a deferred subscription anchored to the opening date
// @Tags communities
// @Accept json
// @Produce json
// @Param slug path string true "Community slug"
// @Param input body ConfirmPreRegistrationInput true "User and setup intent"
// @Success 200 {object} map[string]interface{} "success: true, openingDate: community opening date"
// @Failure 400 {object} map[string]string "error: Payment setup is not complete"
// @Failure 404 {object} map[string]string "error: Community not found"
// @Failure 409 {object} map[string]string "error: User is already registered for this community"
// @Failure 500 {object} map[string]string "error: processor or database error"
// @Router /communities/{slug}/confirm-pre-registration [post]
func ConfirmPreRegistration(c *gin.Context) {
	slug := c.Param("slug")

	var input ConfirmPreRegistrationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	var community models.Community
	if err := db.DB.First(&community, "slug = ?", slug).Error; err != nil {
		utils.LogErrorWithUser(input.UserID, err, "Community not found in ConfirmPreRegistration")
		c.JSON(http.StatusNotFound, gin.H{"error": "Community not found"})
		return
	}

	if community.Status != models.CommunityPreRegistration || community.OpeningDate == nil {
		utils.LogErrorWithUser(input.UserID, nil, "Community is not accepting pre-registrations in ConfirmPreRegistration")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Community is not open for pre-registration"})
		return
	}

	var user models.User
	if err := db.DB.First(&user, "id = ?", input.UserID).Error; err != nil {
		utils.LogErrorWithUser(input.UserID, err, "User not found in ConfirmPreRegistration")
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	si, err := payments.Default.GetSetupIntent(input.SetupIntentID, community.StripeAccountId)
	if err != nil {
		utils.LogErrorWithUser(input.UserID, err, "Error fetching the setup intent in ConfirmPreRegistration")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error verifying the payment setup"})
		return
	}

	if si.Status != stripe.SetupIntentStatusSucceeded {
		utils.LogErrorWithUser(input.UserID, nil, "Setup intent not succeeded in ConfirmPreRegistration")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Payment setup is not complete"})
		return
	}

	paymentMethodID := ""
	if si.PaymentMethod != nil {
		paymentMethodID = si.PaymentMethod.ID
	} else if pm, ok := si.Metadata["payment_method_id"]; ok {
		paymentMethodID = pm
	}

	customerID := ""
	if si.Customer != nil {
		customerID = si.Customer.ID
	} else if cust, ok := si.Metadata["customer_id"]; ok {
		customerID = cust
	}

	if customerID == "" || paymentMethodID == "" {
		utils.LogErrorWithUser(input.UserID, nil, "Setup intent has no customer or payment method in ConfirmPreRegistration")
		c.JSON(http.StatusBadRequest, gin.H{"error": "No customer attached to the setup intent"})
		return
	}

	var existing models.Membership
	if err := db.DB.Where("community_id = ? AND user_id = ?", community.ID, user.ID).First(&existing).Error; err == nil {
		utils.LogErrorWithUser(input.UserID, nil, "Membership already exists in ConfirmPreRegistration")
		c.JSON(http.StatusConflict, gin.H{"error": "User is already registered for this community"})
		return
	}

	// The first invoice lands on the opening date, never earlier.
	anchor := community.OpeningDate.UTC().Unix()
	fee := platformFeePercent()

	var sub *stripe.Subscription
	var membership models.Membership

	saga := utils.NewSaga()
	saga.AddStep("create-subscription",
		func() error {
			created, err := payments.Default.CreateDeferredSubscription(payments.DeferredSubscriptionParams{
				Customer:           customerID,
				Price:              community.StripePriceId,
				PaymentMethod:      paymentMethodID,
				BillingCycleAnchor: anchor,
				PlatformFeePercent: fee,
				StripeAccount:      community.StripeAccountId,
			})
			if err != nil {
				return err
			}
			sub = created
			return nil
		},
		func() error {
			return payments.Default.CancelSubscription(sub.ID, community.StripeAccountId)
		})
	saga.AddStep("insert-membership",
		func() error {
			invoiceID := ""
			if sub.LatestInvoice != nil {
				invoiceID = sub.LatestInvoice.ID
			}
			membership = models.Membership{
				CommunityID:                    community.ID,
				UserID:                         user.ID,
				Status:                         models.MembershipPreRegistered,
				StripeCustomerId:               customerID,
				StripeSubscriptionId:           sub.ID,
				StripeInvoiceId:                invoiceID,
				PreRegistrationPaymentMethodId: paymentMethodID,
				PlatformFeePercentage:          fee,
			}
			return db.DB.Create(&membership).Error
		},
		nil)

	if err := saga.Run(); err != nil {
		if saga.FailedStep() == "create-subscription" {
			utils.LogErrorWithUser(input.UserID, err, "Error creating the deferred subscription in ConfirmPreRegistration")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating the subscription with the payment processor"})
			return
		}
		utils.LogErrorWithUser(input.UserID, err, "Error saving the membership in ConfirmPreRegistration")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error saving the membership"})
		return
	}

	notifyPreRegistration(user, community)
	mailsmodels.PreRegistrationConfirmation(user.Email, community.Name, *community.OpeningDate)

	utils.LogSuccessWithUser(input.UserID, "Pre-registration confirmed in ConfirmPreRegistration")
	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"openingDate": community.OpeningDate,
	})
}

// notifyPreRegistration records an in-app notification. Best effort: a
// failure is logged and never fails the request.
func notifyPreRegistration(user models.User, community models.Community) {
	notification := models.Notification{
		UserID: user.ID,
		Type:   models.NotificationPreRegistration,
		Title:  "Pre-registration confirmed",
		Body:   "Your spot at " + community.Name + " is reserved.",
	}
	notification.EncodePayload(models.NotificationPayload{
		CommunityID:   community.ID,
		CommunitySlug: community.Slug,
		OpeningDate:   community.OpeningDate.Format("2006-01-02"),
	})
	if err := db.DB.Create(&notification).Error; err != nil {
		utils.LogError(err, "Error creating the pre-registration notification")
	}
}
