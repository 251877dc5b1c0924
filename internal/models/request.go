package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Request status.
const (
	RequestOpen   = "open"
	RequestClosed = "closed"
)

// Request is a learning ask posted by a user for a skill.
type Request struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID        uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	SkillID       uuid.UUID `gorm:"type:uuid;not null;index" json:"skill_id"`
	Title         string    `gorm:"not null;size:160" json:"title"`
	Description   string    `gorm:"type:text;not null" json:"description"`
	PreferredTime string    `gorm:"size:120" json:"preferred_time"`
	Status        string    `gorm:"not null;size:10;default:'open'" json:"status"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
	User          User      `gorm:"foreignKey:UserID" json:"user"`
	Skill         Skill     `gorm:"foreignKey:SkillID" json:"skill"`
}

func (r *Request) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

func (Request) TableName() string {
	return "requests"
}

// Bookmark marks a request a user wants to revisit.
type Bookmark struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_bookmark_user_request,priority:1" json:"user_id"`
	RequestID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_bookmark_user_request,priority:2" json:"request_id"`
	CreatedAt time.Time `json:"created_at"`
	Request   Request   `gorm:"foreignKey:RequestID" json:"request"`
}

func (b *Bookmark) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

func (Bookmark) TableName() string {
	return "bookmarks"
}
