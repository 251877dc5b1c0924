package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Notification verbs. Notifications are created only by the match lifecycle.
const (
	VerbInviteSent     = "invite_sent"
	VerbInviteAccepted = "invite_accepted"
	VerbInviteRejected = "invite_rejected"
	VerbMatchCompleted = "match_completed"
)

type Notification struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    uuid.UUID  `gorm:"type:uuid;not null;index" json:"user_id"`
	ActorID   *uuid.UUID `gorm:"type:uuid" json:"actor_id,omitempty"`
	MatchID   *uuid.UUID `gorm:"type:uuid" json:"match_id,omitempty"`
	RequestID *uuid.UUID `gorm:"type:uuid" json:"request_id,omitempty"`
	Verb      string     `gorm:"not null;size:30" json:"verb"`
	Message   string     `gorm:"type:text;not null" json:"message"`
	IsRead    bool       `gorm:"default:false;index" json:"is_read"`
	CreatedAt time.Time  `json:"created_at"`
}

func (n *Notification) BeforeCreate(tx *gorm.DB) error {
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	return nil
}

func (Notification) TableName() string {
	return "notifications"
}
