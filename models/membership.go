package models

import (
	"time"
)

type MembershipStatus string

const (
	MembershipPendingPreRegistration MembershipStatus = "PENDING_PRE_REGISTRATION"
	MembershipPreRegistered          MembershipStatus = "PRE_REGISTERED"
	MembershipActive                 MembershipStatus = "ACTIVE"
	MembershipInactive               MembershipStatus = "INACTIVE"
)

// Membership links a user to a community, together with the Stripe objects
// that back the subscription. A PRE_REGISTERED membership always carries a
// StripeSubscriptionId anchored to the community's opening date; rows are
// hard-deleted when a pre-registration is canceled.
type Membership struct {
	ID                             string           `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	CommunityID                    string           `json:"communityId" gorm:"type:uuid;not null;uniqueIndex:idx_memberships_community_user"`
	UserID                         string           `json:"userId" gorm:"type:uuid;not null;uniqueIndex:idx_memberships_community_user"`
	Status                         MembershipStatus `json:"status" gorm:"type:varchar(30);default:'PENDING_PRE_REGISTRATION'"`
	StripeCustomerId               string           `json:"stripeCustomerId"`
	StripeSubscriptionId           string           `json:"stripeSubscriptionId"`
	StripeInvoiceId                string           `json:"stripeInvoiceId"`
	PreRegistrationPaymentMethodId string           `json:"preRegistrationPaymentMethodId"`
	// PlatformFeePercentage is captured at registration time and stays fixed
	// for the life of the subscription.
	PlatformFeePercentage float64   `json:"platformFeePercentage"`
	CreatedAt             time.Time `json:"createdAt"`
	UpdatedAt             time.Time `json:"updatedAt"`
}

// IsCancellable reports whether a pre-registration can still be reversed.
func (m *Membership) IsCancellable() bool {
	return m.Status == MembershipPendingPreRegistration || m.Status == MembershipPreRegistered
}
