package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Preferred session mode for a profile.
const (
	ModeOnline  = "online"
	ModeOffline = "offline"
	ModeBoth    = "both"
)

func ValidMode(mode string) bool {
	return mode == ModeOnline || mode == ModeOffline || mode == ModeBoth
}

// Profile is the 1:1 extension of a User. It is created together with the
// user at registration and mutated only by its owner.
type Profile struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	UserID        uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	Bio           string     `gorm:"type:text" json:"bio"`
	Availability  string     `gorm:"size:200" json:"availability"`
	PreferredMode string     `gorm:"size:10;default:'both'" json:"preferred_mode"`
	Location      string     `gorm:"size:120" json:"location"`
	AvatarURL     string     `gorm:"size:255" json:"avatar_url"`
	LastActive    *time.Time `json:"last_active,omitempty"`
	LastPath      string     `gorm:"size:255" json:"-"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
	User          User       `gorm:"foreignKey:UserID" json:"-"`
}

func (p *Profile) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

func (Profile) TableName() string {
	return "profiles"
}
