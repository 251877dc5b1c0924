package dto

import "github.com/google/uuid"

type CreateUserSkillRequest struct {
	SkillID        uuid.UUID `json:"skill_id"`
	Type           string    `json:"type"`
	Level          string    `json:"level"`
	LearningMonths *int      `json:"learning_months,omitempty"`
	SelfRating     *int      `json:"self_rating,omitempty"`
}

type UpdateUserSkillRequest struct {
	Level          string `json:"level"`
	LearningMonths *int   `json:"learning_months,omitempty"`
	SelfRating     *int   `json:"self_rating,omitempty"`
}
