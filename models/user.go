package models

import (
	"time"
)

type Role string

const (
	AdminRole Role = "ADMIN"
	UserRole  Role = "USER"
)

type User struct {
	ID               string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Email            string    `json:"email" gorm:"uniqueIndex;not null" binding:"required,email"`
	Password         string    `json:"password" binding:"required,min=6"`
	UserName         string    `json:"username"`
	Role             Role      `json:"role" gorm:"type:varchar(20);default:'USER'"`
	Bio              string    `json:"bio"`
	StripeCustomerId string    `json:"stripeCustomerId"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// UserCreate is the payload for the register endpoint. No binding tags: the
// handler validates field by field to return precise messages.
type UserCreate struct {
	Email    string `json:"email" example:"dancer@example.com"`
	Password string `json:"password" example:"Secret123"`
	UserName string `json:"username"`
}

// UserLogin is the payload for the login endpoint
type UserLogin struct {
	Email    string `json:"email" binding:"required,email" example:"dancer@example.com"`
	Password string `json:"password" binding:"required" example:"Secret123"`
}

// UserUpdate is the payload for profile updates
type UserUpdate struct {
	UserName string `json:"username"`
	Bio      string `json:"bio"`
}
