package models

import (
	"time"
)

// Contact is a support/contact form submission.
type Contact struct {
	ID          string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	FirstName   string    `json:"firstName" gorm:"column:first_name" binding:"required"`
	LastName    string    `json:"lastName" gorm:"column:last_name" binding:"required"`
	Email       string    `json:"email" binding:"required,email"`
	Subject     string    `json:"subject" binding:"required"`
	Message     string    `json:"message" gorm:"type:text" binding:"required"`
	SubmittedAt time.Time `json:"submittedAt" gorm:"column:submitted_at;default:CURRENT_TIMESTAMP"`
	CreatedAt   time.Time `json:"createdAt" swaggerignore:"true"`
	UpdatedAt   time.Time `json:"updatedAt" swaggerignore:"true"`
}

func (Contact) TableName() string {
	return "contacts"
}

// ContactCreate is the payload to submit a contact request. The email format
// is validated in the handler so the error message stays precise.
type ContactCreate struct {
	FirstName string `json:"firstName" binding:"required" example:"Maya"`
	LastName  string `json:"lastName" binding:"required" example:"Lindgren"`
	Email     string `json:"email" binding:"required" example:"maya@example.com"`
	Subject   string `json:"subject" binding:"required" example:"Question about pre-registration"`
	Message   string `json:"message" binding:"required" example:"When will the studio open?"`
}
