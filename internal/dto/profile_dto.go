package dto

import "github.com/campusskills/skillswap/internal/models"

type UpdateProfileRequest struct {
	Bio           string `json:"bio"`
	Availability  string `json:"availability"`
	PreferredMode string `json:"preferred_mode"`
	Location      string `json:"location"`
	AvatarURL     string `json:"avatar_url"`
}

// RatingSummary aggregates the feedback a user has received.
type RatingSummary struct {
	Average *float64 `json:"average"`
	Count   int64    `json:"count"`
}

type ProfileResponse struct {
	Username       string            `json:"username"`
	Profile        models.Profile    `json:"profile"`
	RatingSummary  RatingSummary     `json:"rating_summary"`
	RecentFeedback []models.Feedback `json:"recent_feedback"`
}
