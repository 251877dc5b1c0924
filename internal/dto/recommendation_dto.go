package dto

import (
	"github.com/campusskills/skillswap/internal/models"
	"github.com/google/uuid"
)

// Recommendation is one ranked partner candidate. MatchingOffers lists the
// candidate's offered skills that the viewer wants; it is informational and
// plays no part in the ordering.
type Recommendation struct {
	UserID         uuid.UUID          `json:"user_id"`
	Username       string             `json:"username"`
	Profile        models.Profile     `json:"profile"`
	Overlap        int                `json:"overlap"`
	MutualOverlap  int                `json:"mutual_overlap"`
	FinalScore     int                `json:"final_score"`
	MatchingOffers []models.UserSkill `json:"matching_offers"`
}

// ExploreUser is one row of the user directory.
type ExploreUser struct {
	UserID   uuid.UUID      `json:"user_id"`
	Username string         `json:"username"`
	Profile  models.Profile `json:"profile"`
}
