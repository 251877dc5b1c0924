package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Conversation is the 1:1 message thread of a match. It is created lazily on
// first access once the match is accepted.
type Conversation struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	MatchID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"match_id"`
	CreatedAt time.Time `json:"created_at"`
	Match     Match     `gorm:"foreignKey:MatchID" json:"-"`
}

func (c *Conversation) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

func (Conversation) TableName() string {
	return "conversations"
}

// Message is append-only.
type Message struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ConversationID uuid.UUID `gorm:"type:uuid;not null;index" json:"conversation_id"`
	SenderID       uuid.UUID `gorm:"type:uuid;not null;index" json:"sender_id"`
	Body           string    `gorm:"type:text;not null" json:"body"`
	IsRead         bool      `gorm:"default:false" json:"is_read"`
	CreatedAt      time.Time `json:"created_at"`
	Sender         User      `gorm:"foreignKey:SenderID" json:"sender"`
}

func (m *Message) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

func (Message) TableName() string {
	return "messages"
}
