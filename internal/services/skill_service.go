package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/campusskills/skillswap/internal/dto"
	"github.com/campusskills/skillswap/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrSkillNotFound     = errors.New("skill not found")
	ErrUserSkillNotFound = errors.New("user skill not found")
	ErrDuplicateSkill    = errors.New("skill already added with the same type")
	ErrInvalidSkillInput = errors.New("invalid skill type or level")
	ErrInvalidSelfRating = errors.New("self rating must be between 1 and 5")
)

type SkillService struct {
	db *gorm.DB
}

func NewSkillService(db *gorm.DB) *SkillService {
	return &SkillService{db: db}
}

// ListSkills returns the catalog, optionally filtered by category or name
// substring, ordered by name.
func (s *SkillService) ListSkills(category, q string) ([]models.Skill, error) {
	query := s.db.Model(&models.Skill{})
	if category != "" {
		query = query.Where("category = ?", category)
	}
	if q = strings.TrimSpace(q); q != "" {
		query = query.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(q)+"%")
	}

	var skills []models.Skill
	err := query.Order("name ASC").Find(&skills).Error
	return skills, err
}

func (s *SkillService) Categories() []string {
	return models.SkillCategories
}

// ListUserSkills returns the user's skills split by direction.
func (s *SkillService) ListUserSkills(userID uuid.UUID) (offers, wants []models.UserSkill, err error) {
	var all []models.UserSkill
	err = s.db.Preload("Skill").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&all).Error
	if err != nil {
		return nil, nil, err
	}
	for _, us := range all {
		if us.Type == models.SkillTypeOffer {
			offers = append(offers, us)
		} else {
			wants = append(wants, us)
		}
	}
	return offers, wants, nil
}

// AddUserSkill attaches a skill to the user. The (user, skill, type) unique
// index turns a repeat add into ErrDuplicateSkill.
func (s *SkillService) AddUserSkill(userID uuid.UUID, req *dto.CreateUserSkillRequest) (*models.UserSkill, error) {
	if !models.ValidSkillType(req.Type) || !models.ValidSkillLevel(req.Level) {
		return nil, ErrInvalidSkillInput
	}
	if req.SelfRating != nil && (*req.SelfRating < 1 || *req.SelfRating > 5) {
		return nil, ErrInvalidSelfRating
	}

	var skill models.Skill
	if err := s.db.First(&skill, "id = ?", req.SkillID).Error; err != nil {
		return nil, ErrSkillNotFound
	}

	userSkill := models.UserSkill{
		ID:             uuid.New(),
		UserID:         userID,
		SkillID:        skill.ID,
		Type:           req.Type,
		Level:          req.Level,
		LearningMonths: req.LearningMonths,
		SelfRating:     req.SelfRating,
	}
	if err := s.db.Create(&userSkill).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateSkill
		}
		return nil, fmt.Errorf("failed to add skill: %w", err)
	}
	userSkill.Skill = skill
	return &userSkill, nil
}

func (s *SkillService) UpdateUserSkill(userID, userSkillID uuid.UUID, req *dto.UpdateUserSkillRequest) (*models.UserSkill, error) {
	if !models.ValidSkillLevel(req.Level) {
		return nil, ErrInvalidSkillInput
	}
	if req.SelfRating != nil && (*req.SelfRating < 1 || *req.SelfRating > 5) {
		return nil, ErrInvalidSelfRating
	}

	var userSkill models.UserSkill
	if err := s.db.Preload("Skill").
		Where("id = ? AND user_id = ?", userSkillID, userID).
		First(&userSkill).Error; err != nil {
		return nil, ErrUserSkillNotFound
	}

	err := s.db.Model(&userSkill).Updates(map[string]interface{}{
		"level":           req.Level,
		"learning_months": req.LearningMonths,
		"self_rating":     req.SelfRating,
	}).Error
	if err != nil {
		return nil, err
	}
	return &userSkill, nil
}

func (s *SkillService) DeleteUserSkill(userID, userSkillID uuid.UUID) error {
	result := s.db.Where("id = ? AND user_id = ?", userSkillID, userID).
		Delete(&models.UserSkill{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserSkillNotFound
	}
	return nil
}
