package dto

import (
	"github.com/campusskills/skillswap/internal/models"
	"github.com/google/uuid"
)

type CreateRequestRequest struct {
	SkillID       uuid.UUID `json:"skill_id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	PreferredTime string    `json:"preferred_time"`
}

type UpdateRequestRequest struct {
	SkillID       uuid.UUID `json:"skill_id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	PreferredTime string    `json:"preferred_time"`
}

// RequestDetailResponse augments a request with viewer-specific state.
type RequestDetailResponse struct {
	Request       models.Request `json:"request"`
	CanEdit       bool           `json:"can_edit"`
	PendingInvite bool           `json:"pending_invite"`
	Bookmarked    bool           `json:"bookmarked"`
}
