package dto

import "github.com/campusskills/skillswap/internal/models"

// MatchDetailResponse augments a match with its feedback entries and whether
// the viewer already rated it.
type MatchDetailResponse struct {
	Match         models.Match      `json:"match"`
	Feedback      []models.Feedback `json:"feedback"`
	FeedbackGiven bool              `json:"feedback_given"`
}

type CreateFeedbackRequest struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}
