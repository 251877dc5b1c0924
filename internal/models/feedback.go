package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Feedback is left once per rater on a completed match. The ratee is always
// the other participant.
type Feedback struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	MatchID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_feedback_match_rater,priority:1" json:"match_id"`
	RaterID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_feedback_match_rater,priority:2" json:"rater_id"`
	RateeID   uuid.UUID `gorm:"type:uuid;not null;index;check:chk_rater_not_ratee,rater_id <> ratee_id" json:"ratee_id"`
	Rating    int       `gorm:"not null" json:"rating"`
	Comment   string    `gorm:"size:300" json:"comment"`
	CreatedAt time.Time `json:"created_at"`
	Rater     User      `gorm:"foreignKey:RaterID" json:"rater"`
	Ratee     User      `gorm:"foreignKey:RateeID" json:"-"`
}

func (f *Feedback) BeforeCreate(tx *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return nil
}

func (Feedback) TableName() string {
	return "feedback"
}
