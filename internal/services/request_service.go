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
	ErrNotRequestOwner = errors.New("not the owner of this request")
	ErrInvalidRequest  = errors.New("title and description are required")
)

type RequestService struct {
	db         *gorm.DB
	moderation *ModerationService
}

func NewRequestService(db *gorm.DB, moderation *ModerationService) *RequestService {
	return &RequestService{db: db, moderation: moderation}
}

func (s *RequestService) Create(userID uuid.UUID, req *dto.CreateRequestRequest) (*models.Request, error) {
	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Description) == "" {
		return nil, ErrInvalidRequest
	}

	var skill models.Skill
	if err := s.db.First(&skill, "id = ?", req.SkillID).Error; err != nil {
		return nil, ErrSkillNotFound
	}

	request := models.Request{
		ID:            uuid.New(),
		UserID:        userID,
		SkillID:       skill.ID,
		Title:         strings.TrimSpace(req.Title),
		Description:   req.Description,
		PreferredTime: req.PreferredTime,
		Status:        models.RequestOpen,
	}
	if err := s.db.Create(&request).Error; err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	request.Skill = skill
	return &request, nil
}

func (s *RequestService) Update(userID, requestID uuid.UUID, req *dto.UpdateRequestRequest) (*models.Request, error) {
	request, err := s.ownedRequest(userID, requestID)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Description) == "" {
		return nil, ErrInvalidRequest
	}

	updates := map[string]interface{}{
		"title":          strings.TrimSpace(req.Title),
		"description":    req.Description,
		"preferred_time": req.PreferredTime,
	}
	if req.SkillID != uuid.Nil && req.SkillID != request.SkillID {
		var skill models.Skill
		if err := s.db.First(&skill, "id = ?", req.SkillID).Error; err != nil {
			return nil, ErrSkillNotFound
		}
		updates["skill_id"] = skill.ID
	}

	if err := s.db.Model(request).Updates(updates).Error; err != nil {
		return nil, err
	}
	return s.Get(requestID)
}

// Close flips an open request to closed. Owner only.
func (s *RequestService) Close(userID, requestID uuid.UUID) (*models.Request, error) {
	request, err := s.ownedRequest(userID, requestID)
	if err != nil {
		return nil, err
	}
	if request.Status == models.RequestClosed {
		return request, nil
	}
	if err := s.db.Model(request).Update("status", models.RequestClosed).Error; err != nil {
		return nil, err
	}
	request.Status = models.RequestClosed
	return request, nil
}

func (s *RequestService) Get(requestID uuid.UUID) (*models.Request, error) {
	var request models.Request
	err := s.db.Preload("Skill").Preload("User").
		First(&request, "id = ?", requestID).Error
	if err != nil {
		return nil, ErrRequestNotFound
	}
	return &request, nil
}

func (s *RequestService) ListForUser(userID uuid.UUID) ([]models.Request, error) {
	var requests []models.Request
	err := s.db.Preload("Skill").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&requests).Error
	return requests, err
}

// Explore lists open requests from other, non-blocked users. q matches
// title, description or skill name; category narrows by skill category.
func (s *RequestService) Explore(viewerID uuid.UUID, q, category string, limit, offset int) ([]models.Request, int64, error) {
	excluded := []uuid.UUID{viewerID}
	blockedIDs, err := s.moderation.BlockedUserIDs(viewerID)
	if err != nil {
		return nil, 0, err
	}
	excluded = append(excluded, blockedIDs...)

	query := s.db.Model(&models.Request{}).
		Joins("JOIN skills ON skills.id = requests.skill_id").
		Where("requests.status = ?", models.RequestOpen).
		Where("requests.user_id NOT IN ?", excluded)

	if q = strings.TrimSpace(q); q != "" {
		like := "%" + strings.ToLower(q) + "%"
		query = query.Where(
			"LOWER(requests.title) LIKE ? OR LOWER(requests.description) LIKE ? OR LOWER(skills.name) LIKE ?",
			like, like, like,
		)
	}
	if category = strings.TrimSpace(category); category != "" {
		query = query.Where("LOWER(skills.category) LIKE ?", "%"+strings.ToLower(category)+"%")
	}

	var total int64
	query.Count(&total)

	var requests []models.Request
	err = query.Preload("Skill").Preload("User").
		Order("requests.created_at DESC").
		Limit(limit).Offset(offset).
		Find(&requests).Error
	if err != nil {
		return nil, 0, err
	}
	return requests, total, nil
}

// Bookmark is idempotent: bookmarking twice leaves one row and no error.
func (s *RequestService) Bookmark(userID, requestID uuid.UUID) error {
	if _, err := s.Get(requestID); err != nil {
		return err
	}
	bookmark := models.Bookmark{ID: uuid.New(), UserID: userID, RequestID: requestID}
	if err := s.db.Create(&bookmark).Error; err != nil && !errors.Is(err, gorm.ErrDuplicatedKey) {
		return fmt.Errorf("failed to bookmark request: %w", err)
	}
	return nil
}

func (s *RequestService) Unbookmark(userID, requestID uuid.UUID) error {
	return s.db.Where("user_id = ? AND request_id = ?", userID, requestID).
		Delete(&models.Bookmark{}).Error
}

func (s *RequestService) ListBookmarks(userID uuid.UUID) ([]models.Bookmark, error) {
	var bookmarks []models.Bookmark
	err := s.db.Preload("Request").Preload("Request.Skill").Preload("Request.User").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&bookmarks).Error
	return bookmarks, err
}

func (s *RequestService) IsBookmarked(userID, requestID uuid.UUID) (bool, error) {
	var count int64
	err := s.db.Model(&models.Bookmark{}).
		Where("user_id = ? AND request_id = ?", userID, requestID).
		Count(&count).Error
	return count > 0, err
}

func (s *RequestService) ownedRequest(userID, requestID uuid.UUID) (*models.Request, error) {
	var request models.Request
	if err := s.db.First(&request, "id = ?", requestID).Error; err != nil {
		return nil, ErrRequestNotFound
	}
	if request.UserID != userID {
		return nil, ErrNotRequestOwner
	}
	return &request, nil
}
