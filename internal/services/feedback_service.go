package services

import (
	"errors"
	"fmt"

	"github.com/campusskills/skillswap/internal/dto"
	"github.com/campusskills/skillswap/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrMatchNotCompleted = errors.New("match is not completed")
	ErrInvalidRating     = errors.New("rating must be between 1 and 5")
	ErrCommentTooLong    = errors.New("comment must be under 300 characters")
)

type FeedbackService struct {
	db *gorm.DB
}

func NewFeedbackService(db *gorm.DB) *FeedbackService {
	return &FeedbackService{db: db}
}

// Create leaves feedback on a completed match. The ratee is always the other
// participant. A repeat submission by the same rater is silently ignored so a
// double-posted form still succeeds with exactly one row.
func (s *FeedbackService) Create(raterID, matchID uuid.UUID, req *dto.CreateFeedbackRequest) (*models.Feedback, error) {
	var match models.Match
	if err := s.db.First(&match, "id = ?", matchID).Error; err != nil {
		return nil, ErrMatchNotFound
	}
	if !match.HasParticipant(raterID) {
		return nil, ErrNotParticipant
	}
	if match.Status != models.MatchCompleted {
		return nil, ErrMatchNotCompleted
	}
	if req.Rating < 1 || req.Rating > 5 {
		return nil, ErrInvalidRating
	}
	if len(req.Comment) > 300 {
		return nil, ErrCommentTooLong
	}

	feedback := models.Feedback{
		ID:      uuid.New(),
		MatchID: match.ID,
		RaterID: raterID,
		RateeID: match.Counterpart(raterID),
		Rating:  req.Rating,
		Comment: req.Comment,
	}
	if err := s.db.Create(&feedback).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			var existing models.Feedback
			if err := s.db.Where("match_id = ? AND rater_id = ?", matchID, raterID).
				First(&existing).Error; err != nil {
				return nil, err
			}
			return &existing, nil
		}
		return nil, fmt.Errorf("failed to create feedback: %w", err)
	}
	return &feedback, nil
}

// ListForMatch returns the feedback entries of a match, participants only.
func (s *FeedbackService) ListForMatch(viewerID, matchID uuid.UUID) ([]models.Feedback, bool, error) {
	var match models.Match
	if err := s.db.First(&match, "id = ?", matchID).Error; err != nil {
		return nil, false, ErrMatchNotFound
	}
	if !match.HasParticipant(viewerID) {
		return nil, false, ErrNotParticipant
	}

	var entries []models.Feedback
	err := s.db.Preload("Rater").
		Where("match_id = ?", matchID).
		Order("created_at DESC").
		Find(&entries).Error
	if err != nil {
		return nil, false, err
	}

	given := false
	for _, f := range entries {
		if f.RaterID == viewerID {
			given = true
			break
		}
	}
	return entries, given, nil
}

// ListForUser returns feedback a user has received, newest first.
func (s *FeedbackService) ListForUser(username string, limit, offset int) ([]models.Feedback, int64, error) {
	var user models.User
	if err := s.db.Where("username = ?", username).First(&user).Error; err != nil {
		return nil, 0, ErrUserNotFound
	}

	query := s.db.Model(&models.Feedback{}).Where("ratee_id = ?", user.ID)
	var total int64
	query.Count(&total)

	var entries []models.Feedback
	err := query.Preload("Rater").
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&entries).Error
	if err != nil {
		return nil, 0, err
	}
	return entries, total, nil
}
