package communities

import (
	"errors"
	"net/http"
	"strings"

	"dancehub-backend/db"
	"dancehub-backend/models"
	"dancehub-backend/payments"
	"dancehub-backend/utils"
	mailsmodels "dancehub-backend/utils/mails-models"

	"github.com/gin-gonic/gin"
	stripe "github.com/stripe/stripe-go/v82"
)

type CancelPreRegistrationInput struct {
	UserID string `json:"userId" binding:"required"`
}

// CancelPreRegistration reverses a pre-registration before the community
// opens: void the open invoice, detach the saved payment method, delete the
// processor customer, then delete the membership row. The row goes last so a
// crash mid-way leaves the row pointing at whatever external state remains.
// Detach and customer-delete failures are logged but do not fail the request.
// @Summary Cancel a community pre-registration
// @Description Reverse a pre-registration, leaving no billable artifacts
// @Tags communities
// @Accept json
// @Produce json
// @Param slug path string true "Community slug"
// @Param input body CancelPreRegistrationInput true "User to cancel"
// @Success 200 {object} map[string]interface{} "success: true, message: Pre-registration canceled"
// @Failure 400 {object} map[string]string "error: Membership is not in a cancellable state"
// @Failure 404 {object} map[string]string "error: Community or membership not found"
// @Failure 500 {object} map[string]string "error: processor or database error"
// @Router /communities/{slug}/cancel-pre-registration [post]
func CancelPreRegistration(c *gin.Context) {
	slug := c.Param("slug")

	var input CancelPreRegistrationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	var community models.Community
	if err := db.DB.First(&community, "slug = ?", slug).Error; err != nil {
		utils.LogErrorWithUser(input.UserID, err, "Community not found in CancelPreRegistration")
		c.JSON(http.StatusNotFound, gin.H{"error": "Community not found"})
		return
	}

	var membership models.Membership
	if err := db.DB.Where("community_id = ? AND user_id = ?", community.ID, input.UserID).First(&membership).Error; err != nil {
		utils.LogErrorWithUser(input.UserID, err, "Membership not found in CancelPreRegistration")
		c.JSON(http.StatusNotFound, gin.H{"error": "Membership not found"})
		return
	}

	if !membership.IsCancellable() {
		utils.LogErrorWithUser(input.UserID, nil, "Membership not cancellable in CancelPreRegistration")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Membership is not in a cancellable state"})
		return
	}

	if membership.StripeInvoiceId != "" {
		if err := payments.Default.VoidInvoice(membership.StripeInvoiceId, community.StripeAccountId); err != nil && !invoiceVoidIgnorable(err) {
			utils.LogErrorWithUser(input.UserID, err, "Error voiding the invoice in CancelPreRegistration")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error voiding the pre-registration invoice"})
			return
		}
	}

	if membership.PreRegistrationPaymentMethodId != "" {
		if err := payments.Default.DetachPaymentMethod(membership.PreRegistrationPaymentMethodId, community.StripeAccountId); err != nil {
			utils.LogErrorWithUser(input.UserID, err, "Error detaching the payment method in CancelPreRegistration")
		}
	}

	if membership.StripeCustomerId != "" {
		if err := payments.Default.DeleteCustomer(membership.StripeCustomerId, community.StripeAccountId); err != nil {
			utils.LogErrorWithUser(input.UserID, err, "Error deleting the processor customer in CancelPreRegistration")
		}
	}

	if err := db.DB.Delete(&membership).Error; err != nil {
		utils.LogErrorWithUser(input.UserID, err, "Error deleting the membership in CancelPreRegistration")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error deleting the membership"})
		return
	}

	var user models.User
	if err := db.DB.First(&user, "id = ?", input.UserID).Error; err == nil {
		mailsmodels.PreRegistrationCancellation(user.Email, community.Name)
	}

	utils.LogSuccessWithUser(input.UserID, "Pre-registration canceled in CancelPreRegistration")
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Pre-registration canceled",
	})
}

// invoiceVoidIgnorable reports whether a void failure can be treated as
// success: the invoice is gone or already void.
func invoiceVoidIgnorable(err error) bool {
	var stripeErr *stripe.Error
	if !errors.As(err, &stripeErr) {
		return false
	}
	if stripeErr.Code == stripe.ErrorCodeResourceMissing {
		return true
	}
	return strings.Contains(strings.ToLower(stripeErr.Msg), "void")
}
