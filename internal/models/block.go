package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Block is a directed pair; visibility and interaction checks treat it as
// symmetric.
type Block struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	BlockerID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_block_pair,priority:1" json:"blocker_id"`
	BlockedID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_block_pair,priority:2;check:chk_no_self_block,blocker_id <> blocked_id" json:"blocked_id"`
	CreatedAt time.Time `json:"created_at"`
	Blocker   User      `gorm:"foreignKey:BlockerID" json:"-"`
	Blocked   User      `gorm:"foreignKey:BlockedID" json:"blocked"`
}

func (b *Block) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

func (Block) TableName() string {
	return "blocks"
}
