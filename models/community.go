package models

import (
	"time"
)

type CommunityStatus string

const (
	CommunityActive          CommunityStatus = "ACTIVE"
	CommunityPreRegistration CommunityStatus = "PRE_REGISTRATION"
	CommunityInactive        CommunityStatus = "INACTIVE"
)

// Community is a tenant community on the platform.
// While Status is PRE_REGISTRATION, OpeningDate holds the date the community
// opens and billing starts. Once a community becomes ACTIVE it never goes back
// to PRE_REGISTRATION.
type Community struct {
	ID              string          `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Slug            string          `json:"slug" gorm:"uniqueIndex;not null" binding:"required"`
	Name            string          `json:"name" gorm:"not null" binding:"required"`
	Description     string          `json:"description" gorm:"type:text"`
	OwnerID         string          `json:"ownerId" gorm:"type:uuid"`
	Status          CommunityStatus `json:"status" gorm:"type:varchar(20);default:'INACTIVE'"`
	OpeningDate     *time.Time      `json:"openingDate"`
	StripeAccountId string          `json:"stripeAccountId"`
	StripePriceId   string          `json:"stripePriceId"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

// CommunityUpdate is the payload accepted when updating a community's
// lifecycle fields.
type CommunityUpdate struct {
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Status      *CommunityStatus `json:"status"`
	OpeningDate *time.Time       `json:"openingDate"`
}
