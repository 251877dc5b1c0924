package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserSkill direction.
const (
	SkillTypeOffer = "offer"
	SkillTypeWant  = "want"
)

// UserSkill levels.
const (
	LevelBeginner     = "beginner"
	LevelIntermediate = "intermediate"
	LevelAdvanced     = "advanced"
)

func ValidSkillType(t string) bool {
	return t == SkillTypeOffer || t == SkillTypeWant
}

func ValidSkillLevel(l string) bool {
	return l == LevelBeginner || l == LevelIntermediate || l == LevelAdvanced
}

// UserSkill joins a user to a skill in one direction: something they can
// teach (offer) or wish to learn (want). A user may hold both directions for
// the same skill, but never the same direction twice.
type UserSkill struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID         uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_user_skill_type,priority:1" json:"user_id"`
	SkillID        uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_user_skill_type,priority:2" json:"skill_id"`
	Type           string    `gorm:"not null;size:10;uniqueIndex:idx_user_skill_type,priority:3" json:"type"`
	Level          string    `gorm:"not null;size:12" json:"level"`
	LearningMonths *int      `json:"learning_months,omitempty"`
	SelfRating     *int      `json:"self_rating,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	User           User      `gorm:"foreignKey:UserID" json:"-"`
	Skill          Skill     `gorm:"foreignKey:SkillID" json:"skill"`
}

func (us *UserSkill) BeforeCreate(tx *gorm.DB) error {
	if us.ID == uuid.Nil {
		us.ID = uuid.New()
	}
	return nil
}

func (UserSkill) TableName() string {
	return "user_skills"
}
