package services

import (
	"errors"
	"time"

	"github.com/campusskills/skillswap/internal/config"
	"github.com/campusskills/skillswap/internal/dto"
	"github.com/campusskills/skillswap/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrInvalidMode = errors.New("invalid preferred mode")

type ProfileService struct {
	db  *gorm.DB
	cfg *config.Config
}

func NewProfileService(db *gorm.DB, cfg *config.Config) *ProfileService {
	return &ProfileService{db: db, cfg: cfg}
}

// GetByUsername returns a profile with its rating summary and up to three
// recent feedback comments.
func (s *ProfileService) GetByUsername(username string) (*dto.ProfileResponse, error) {
	var user models.User
	if err := s.db.Where("username = ?", username).First(&user).Error; err != nil {
		return nil, ErrUserNotFound
	}

	var profile models.Profile
	if err := s.db.Where("user_id = ?", user.ID).First(&profile).Error; err != nil {
		return nil, ErrUserNotFound
	}

	summary, err := s.ratingSummary(user.ID)
	if err != nil {
		return nil, err
	}

	var recent []models.Feedback
	err = s.db.Preload("Rater").
		Where("ratee_id = ? AND comment <> ''", user.ID).
		Order("created_at DESC").Limit(3).
		Find(&recent).Error
	if err != nil {
		return nil, err
	}

	return &dto.ProfileResponse{
		Username:       user.Username,
		Profile:        profile,
		RatingSummary:  *summary,
		RecentFeedback: recent,
	}, nil
}

func (s *ProfileService) ratingSummary(userID uuid.UUID) (*dto.RatingSummary, error) {
	var summary dto.RatingSummary
	err := s.db.Model(&models.Feedback{}).
		Select("AVG(rating) AS average, COUNT(id) AS count").
		Where("ratee_id = ?", userID).
		Scan(&summary).Error
	if err != nil {
		return nil, err
	}
	return &summary, nil
}

// Update mutates the caller's own profile.
func (s *ProfileService) Update(userID uuid.UUID, req *dto.UpdateProfileRequest) (*models.Profile, error) {
	if req.PreferredMode != "" && !models.ValidMode(req.PreferredMode) {
		return nil, ErrInvalidMode
	}

	var profile models.Profile
	if err := s.db.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return nil, ErrUserNotFound
	}

	updates := map[string]interface{}{
		"bio":          req.Bio,
		"availability": req.Availability,
		"location":     req.Location,
		"avatar_url":   req.AvatarURL,
	}
	if req.PreferredMode != "" {
		updates["preferred_mode"] = req.PreferredMode
	}
	if err := s.db.Model(&profile).Updates(updates).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

// TouchActivity records when and where the user was last seen. It writes at
// most once per configured interval; the middleware calls it on every
// authenticated request.
func (s *ProfileService) TouchActivity(userID uuid.UUID, path string) error {
	var profile models.Profile
	if err := s.db.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return err
	}

	now := time.Now()
	if profile.LastActive != nil && now.Sub(*profile.LastActive) < s.cfg.ActivityInterval {
		return nil
	}

	return s.db.Model(&profile).Updates(map[string]interface{}{
		"last_active": now,
		"last_path":   path,
	}).Error
}
