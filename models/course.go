package models

import (
	"time"
)

// Course is a unit of on-demand content inside a community.
type Course struct {
	ID          string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	CommunityID string    `json:"communityId" gorm:"type:uuid;not null;index"`
	Title       string    `json:"title" gorm:"not null" binding:"required"`
	Description string    `json:"description" gorm:"type:text"`
	Position    int       `json:"position"`
	Published   bool      `json:"published"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// CourseCreate is the payload to create a course
type CourseCreate struct {
	Title       string `json:"title" binding:"required" example:"Salsa fundamentals"`
	Description string `json:"description" example:"Eight-count basics and partner work."`
	Position    int    `json:"position" example:"1"`
}
