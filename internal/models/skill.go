package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Skill categories (closed set).
var SkillCategories = []string{
	"programming", "art", "language", "music", "sports", "other",
}

func ValidSkillCategory(category string) bool {
	for _, c := range SkillCategories {
		if c == category {
			return true
		}
	}
	return false
}

// Skill is a globally shared (name, category) pair.
type Skill struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string    `gorm:"not null;size:120;uniqueIndex:idx_skills_name_category,priority:1" json:"name"`
	Category    string    `gorm:"not null;size:20;default:'other';uniqueIndex:idx_skills_name_category,priority:2" json:"category"`
	Description string    `gorm:"type:text" json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

func (s *Skill) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

func (Skill) TableName() string {
	return "skills"
}
