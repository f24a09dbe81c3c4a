package models

import (
	"encoding/json"
	"time"
)

type NotificationType string

const (
	NotificationPreRegistration NotificationType = "PRE_REGISTRATION"
	NotificationCancellation    NotificationType = "CANCELLATION"
	NotificationCommunityOpened NotificationType = "COMMUNITY_OPENED"
)

// Notification is an in-app message for a user. Payload is a free-form JSON
// blob whose shape depends on Type.
type Notification struct {
	ID        string           `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	UserID    string           `json:"userId" gorm:"type:uuid;not null;index"`
	Type      NotificationType `json:"type" gorm:"type:varchar(30)"`
	Title     string           `json:"title"`
	Body      string           `json:"body" gorm:"type:text"`
	Payload   string           `json:"payload" gorm:"type:jsonb;default:'{}'"`
	Read      bool             `json:"read" gorm:"default:false"`
	CreatedAt time.Time        `json:"createdAt"`
	UpdatedAt time.Time        `json:"updatedAt"`
}

// NotificationPayload is the decoded form of Notification.Payload.
type NotificationPayload struct {
	CommunityID   string `json:"communityId,omitempty"`
	CommunitySlug string `json:"communitySlug,omitempty"`
	OpeningDate   string `json:"openingDate,omitempty"`
}

// DecodePayload decodes the JSON payload, failing closed to an empty payload
// on malformed input.
func (n *Notification) DecodePayload() NotificationPayload {
	var p NotificationPayload
	if n.Payload == "" {
		return p
	}
	if err := json.Unmarshal([]byte(n.Payload), &p); err != nil {
		return NotificationPayload{}
	}
	return p
}

// EncodePayload stores the payload back as JSON; an encoding failure leaves
// an empty object rather than invalid JSON.
func (n *Notification) EncodePayload(p NotificationPayload) {
	raw, err := json.Marshal(p)
	if err != nil {
		n.Payload = "{}"
		return
	}
	n.Payload = string(raw)
}
