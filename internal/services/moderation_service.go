package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/campusskills/skillswap/internal/dto"
	"github.com/campusskills/skillswap/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrReportNotFound  = errors.New("report not found")
	ErrTargetNotFound  = errors.New("report target not found")
	ErrAlreadyBlocked  = errors.New("user already blocked")
	ErrSelfBlock       = errors.New("cannot block yourself")
	ErrBlockNotFound   = errors.New("block not found")
	ErrInvalidReason   = errors.New("invalid report reason")
	ErrInvalidTarget   = errors.New("invalid report target kind")
	ErrInvalidStatus   = errors.New("invalid report status")
	ErrBlockedRelation = errors.New("interaction not allowed between blocked users")
)

// ModerationService owns blocks and reports.
type ModerationService struct {
	db *gorm.DB
}

func NewModerationService(db *gorm.DB) *ModerationService {
	return &ModerationService{db: db}
}

func (s *ModerationService) BlockUser(blockerID, blockedID uuid.UUID) (*models.Block, error) {
	if blockerID == blockedID {
		return nil, ErrSelfBlock
	}

	var target models.User
	if err := s.db.First(&target, "id = ?", blockedID).Error; err != nil {
		return nil, ErrUserNotFound
	}

	block := models.Block{
		ID:        uuid.New(),
		BlockerID: blockerID,
		BlockedID: blockedID,
	}
	if err := s.db.Create(&block).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrAlreadyBlocked
		}
		return nil, fmt.Errorf("failed to create block: %w", err)
	}
	return &block, nil
}

func (s *ModerationService) UnblockUser(blockerID, blockedID uuid.UUID) error {
	result := s.db.Where("blocker_id = ? AND blocked_id = ?", blockerID, blockedID).
		Delete(&models.Block{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrBlockNotFound
	}
	return nil
}

func (s *ModerationService) ListBlocks(blockerID uuid.UUID) ([]models.Block, error) {
	var blocks []models.Block
	err := s.db.Preload("Blocked").
		Where("blocker_id = ?", blockerID).
		Order("created_at DESC").
		Find(&blocks).Error
	return blocks, err
}

// IsBlocked reports whether a block exists between a and b in either
// direction.
func (s *ModerationService) IsBlocked(a, b uuid.UUID) (bool, error) {
	var count int64
	err := s.db.Model(&models.Block{}).
		Where("(blocker_id = ? AND blocked_id = ?) OR (blocker_id = ? AND blocked_id = ?)", a, b, b, a).
		Count(&count).Error
	return count > 0, err
}

// BlockedUserIDs returns every user the given user blocked plus everyone who
// blocked them. Listing queries exclude this set.
func (s *ModerationService) BlockedUserIDs(userID uuid.UUID) ([]uuid.UUID, error) {
	var blocks []models.Block
	if err := s.db.Where("blocker_id = ? OR blocked_id = ?", userID, userID).Find(&blocks).Error; err != nil {
		return nil, err
	}
	seen := make(map[uuid.UUID]struct{}, len(blocks))
	ids := make([]uuid.UUID, 0, len(blocks))
	for _, b := range blocks {
		other := b.BlockedID
		if other == userID {
			other = b.BlockerID
		}
		if _, ok := seen[other]; !ok {
			seen[other] = struct{}{}
			ids = append(ids, other)
		}
	}
	return ids, nil
}

// CreateReport resolves the target by kind through an explicit lookup and
// derives the reported user from the target's owner.
func (s *ModerationService) CreateReport(reporterID uuid.UUID, req *dto.CreateReportRequest) (*models.Report, error) {
	if !models.ValidReportReason(req.Reason) {
		return nil, ErrInvalidReason
	}

	reportedUserID, err := s.resolveTarget(req.TargetKind, req.TargetID)
	if err != nil {
		return nil, err
	}

	report := models.Report{
		ID:             uuid.New(),
		ReporterID:     reporterID,
		ReportedUserID: reportedUserID,
		TargetKind:     req.TargetKind,
		TargetID:       req.TargetID,
		Reason:         req.Reason,
		Details:        strings.TrimSpace(req.Details),
		Status:         models.ReportOpen,
	}
	if err := s.db.Create(&report).Error; err != nil {
		return nil, fmt.Errorf("failed to create report: %w", err)
	}
	return &report, nil
}

// resolveTarget is the per-kind lookup table for report targets. Each kind
// maps to a concrete row; an unknown id is a not-found, never a crash.
func (s *ModerationService) resolveTarget(kind string, targetID uuid.UUID) (*uuid.UUID, error) {
	switch kind {
	case models.TargetRequest:
		var request models.Request
		if err := s.db.First(&request, "id = ?", targetID).Error; err != nil {
			return nil, ErrTargetNotFound
		}
		return &request.UserID, nil
	case models.TargetProfile:
		var profile models.Profile
		if err := s.db.First(&profile, "id = ?", targetID).Error; err != nil {
			return nil, ErrTargetNotFound
		}
		return &profile.UserID, nil
	case models.TargetMessage:
		var message models.Message
		if err := s.db.First(&message, "id = ?", targetID).Error; err != nil {
			return nil, ErrTargetNotFound
		}
		return &message.SenderID, nil
	default:
		return nil, ErrInvalidTarget
	}
}

func (s *ModerationService) ListReports(status string, limit, offset int) ([]models.Report, int64, error) {
	var reports []models.Report
	var total int64

	query := s.db.Model(&models.Report{})
	if status != "" {
		query = query.Where("status = ?", status)
	}
	query.Count(&total)

	if err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&reports).Error; err != nil {
		return nil, 0, err
	}
	return reports, total, nil
}

// ReviewReport moves a report to reviewing, resolved or dismissed and records
// the reviewer.
func (s *ModerationService) ReviewReport(reviewerID, reportID uuid.UUID, req *dto.ReviewReportRequest) error {
	switch req.Status {
	case models.ReportReviewing, models.ReportResolved, models.ReportDismissed:
	default:
		return ErrInvalidStatus
	}

	now := time.Now()
	result := s.db.Model(&models.Report{}).
		Where("id = ?", reportID).
		Updates(map[string]interface{}{
			"status":          req.Status,
			"reviewed_by_id":  reviewerID,
			"reviewed_at":     now,
			"resolution_note": req.ResolutionNote,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrReportNotFound
	}
	return nil
}
