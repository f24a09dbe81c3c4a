package models

import (
	"time"
)

// LiveClass is a scheduled video session inside a community. RoomName and
// RoomURL come from the video-room provider when the class is created.
type LiveClass struct {
	ID          string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	CommunityID string    `json:"communityId" gorm:"type:uuid;not null;index"`
	Title       string    `json:"title" gorm:"not null" binding:"required"`
	StartsAt    time.Time `json:"startsAt"`
	DurationMin int       `json:"durationMin"`
	RoomName    string    `json:"roomName"`
	RoomURL     string    `json:"roomUrl"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// LiveClassCreate is the payload to schedule a live class
type LiveClassCreate struct {
	Title       string    `json:"title" binding:"required" example:"Friday social practice"`
	StartsAt    time.Time `json:"startsAt" binding:"required"`
	DurationMin int       `json:"durationMin" example:"60"`
}
