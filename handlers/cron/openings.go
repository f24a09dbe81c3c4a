package cron

import (
	"fmt"
	"net/http"
	"time"

	"dancehub-backend/db"
	"dancehub-backend/models"
	"dancehub-backend/payments"
	"dancehub-backend/utils"
	mailsmodels "dancehub-backend/utils/mails-models"

	"github.com/gin-gonic/gin"
	stripe "github.com/stripe/stripe-go/v82"
)

// MemberResult reports the outcome for one pre-registered membership.
type MemberResult struct {
	MembershipID string `json:"membershipId"`
	UserID       string `json:"userId"`
	Success      bool   `json:"success"`
	Reason       string `json:"reason,omitempty"`
}

// CommunityResult reports the outcome for one community opening pass.
type CommunityResult struct {
	CommunityID      string         `json:"communityId"`
	CommunityName    string         `json:"communityName"`
	Success          bool           `json:"success"`
	MembersProcessed int            `json:"membersProcessed"`
	SuccessCount     int            `json:"successCount"`
	FailCount        int            `json:"failCount"`
	MemberResults    []MemberResult `json:"memberResults"`
}

// ProcessCommunityOpenings scans communities whose opening date has passed,
// verifies each pre-registered member's subscription and flips the community
// to ACTIVE. Safe to invoke repeatedly: opened communities no longer match
// the status filter, so a second run is a no-op for them. Runs are not
// serialized; an overlapping invocation can at worst duplicate notification
// side effects.
// @Summary Process community openings
// @Description Open every pre-registration community whose opening date has passed and reconcile member subscriptions
// @Tags cron
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "message, processed, results"
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 500 {object} map[string]string "error: Error listing communities"
// @Router /cron/process-community-openings [get]
func ProcessCommunityOpenings(c *gin.Context) {
	var communities []models.Community
	err := db.DB.Where("status = ? AND opening_date IS NOT NULL AND opening_date <= ?",
		models.CommunityPreRegistration, time.Now()).Find(&communities).Error
	if err != nil {
		// Only the listing query aborts the whole run.
		utils.LogError(err, "Error listing communities in ProcessCommunityOpenings")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error listing communities"})
		return
	}

	results := make([]CommunityResult, 0, len(communities))
	for _, community := range communities {
		results = append(results, processCommunityOpening(community))
	}

	utils.LogSuccess(fmt.Sprintf("Processed %d community openings", len(results)))
	c.JSON(http.StatusOK, gin.H{
		"message":   "Community openings processed",
		"processed": len(results),
		"results":   results,
	})
}

// processCommunityOpening opens one community. Per-member failures are
// recorded in the result and never block the other members or the opening
// itself: billing failures are left to the processor's own dunning cycle.
func processCommunityOpening(community models.Community) CommunityResult {
	result := CommunityResult{
		CommunityID:   community.ID,
		CommunityName: community.Name,
		Success:       true,
		MemberResults: []MemberResult{},
	}

	var memberships []models.Membership
	err := db.DB.Where("community_id = ? AND status = ?", community.ID, models.MembershipPreRegistered).
		Find(&memberships).Error
	if err != nil {
		utils.LogError(err, "Error listing memberships in processCommunityOpening")
		result.Success = false
		return result
	}

	for _, membership := range memberships {
		memberResult := reconcileMembership(community, membership)
		result.MemberResults = append(result.MemberResults, memberResult)
		result.MembersProcessed++
		if memberResult.Success {
			result.SuccessCount++
		} else {
			result.FailCount++
		}
	}

	// Open the community regardless of individual billing failures: the
	// transition unlocks content access, not billing.
	if err := db.DB.Model(&models.Community{}).Where("id = ?", community.ID).
		Update("status", models.CommunityActive).Error; err != nil {
		utils.LogError(err, "Error activating the community in processCommunityOpening")
		result.Success = false
		return result
	}

	notifyOpenedMembers(community, result.MemberResults)

	return result
}

func reconcileMembership(community models.Community, membership models.Membership) MemberResult {
	memberResult := MemberResult{
		MembershipID: membership.ID,
		UserID:       membership.UserID,
	}

	if membership.StripeSubscriptionId == "" {
		// Should never happen: pre-registered rows are only created after
		// the subscription exists. Deactivate rather than guess.
		if err := db.DB.Model(&models.Membership{}).Where("id = ?", membership.ID).
			Update("status", models.MembershipInactive).Error; err != nil {
			utils.LogError(err, "Error deactivating the membership in reconcileMembership")
		}
		memberResult.Reason = "missing subscription id"
		return memberResult
	}

	sub, err := payments.Default.GetSubscription(membership.StripeSubscriptionId, community.StripeAccountId)
	if err != nil {
		utils.LogErrorWithUser(membership.UserID, err, "Error fetching the subscription in reconcileMembership")
		memberResult.Reason = "processor error"
		return memberResult
	}

	switch sub.Status {
	case stripe.SubscriptionStatusActive, stripe.SubscriptionStatusTrialing, stripe.SubscriptionStatusIncomplete:
		// The processor now owns charging or failing the first invoice.
		memberResult.Success = true
	default:
		memberResult.Reason = fmt.Sprintf("unexpected subscription status %s", sub.Status)
	}

	return memberResult
}

// notifyOpenedMembers sends the opening email to every member whose
// subscription checked out. Best effort.
func notifyOpenedMembers(community models.Community, memberResults []MemberResult) {
	for _, memberResult := range memberResults {
		if !memberResult.Success {
			continue
		}
		var user models.User
		if err := db.DB.First(&user, "id = ?", memberResult.UserID).Error; err != nil {
			utils.LogError(err, "Error loading the member for the opening email in notifyOpenedMembers")
			continue
		}
		mailsmodels.CommunityOpened(user.Email, community.Name, community.Slug)
	}
}
