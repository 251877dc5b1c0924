package services

import (
	"errors"
	"fmt"

	"github.com/campusskills/skillswap/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrMatchNotFound      = errors.New("match not found")
	ErrRequestNotFound    = errors.New("request not found")
	ErrOwnRequest         = errors.New("cannot match your own request")
	ErrInvitePending      = errors.New("an invitation is already pending")
	ErrNotParticipant     = errors.New("not a participant of this match")
	ErrOnlyPartner        = errors.New("only the recipient can respond")
	ErrActionNotAvailable = errors.New("action not available")
)

// MatchService drives the match lifecycle:
//
//	pending -> accepted -> completed
//	pending -> rejected
//
// Every successful transition notifies the counterpart inside the same
// transaction; a notification write failure rolls the transition back.
type MatchService struct {
	db            *gorm.DB
	moderation    *ModerationService
	notifications *NotificationService
}

func NewMatchService(db *gorm.DB, moderation *ModerationService, notifications *NotificationService) *MatchService {
	return &MatchService{db: db, moderation: moderation, notifications: notifications}
}

// Invite creates a pending match for a request. The caller becomes the
// requester, the request owner the partner. Duplicate pending invites are
// stopped by the partial unique index and surfaced as ErrInvitePending.
func (s *MatchService) Invite(requesterID, requestID uuid.UUID) (*models.Match, error) {
	var request models.Request
	if err := s.db.First(&request, "id = ?", requestID).Error; err != nil {
		return nil, ErrRequestNotFound
	}
	if request.UserID == requesterID {
		return nil, ErrOwnRequest
	}

	blocked, err := s.moderation.IsBlocked(requesterID, request.UserID)
	if err != nil {
		return nil, err
	}
	if blocked {
		return nil, ErrBlockedRelation
	}

	var requester models.User
	if err := s.db.First(&requester, "id = ?", requesterID).Error; err != nil {
		return nil, ErrUserNotFound
	}

	match := models.Match{
		ID:          uuid.New(),
		RequestID:   request.ID,
		RequesterID: requesterID,
		PartnerID:   request.UserID,
		Status:      models.MatchPending,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&match).Error; err != nil {
			return err
		}
		return s.notifications.NotifyInviteSent(tx, &match, &requester, request.Title)
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrInvitePending
		}
		return nil, fmt.Errorf("failed to create match: %w", err)
	}
	return &match, nil
}

// Accept moves pending -> accepted. Partner only. Ensures the conversation
// exists so messaging can start immediately.
func (s *MatchService) Accept(callerID, matchID uuid.UUID) (*models.Match, error) {
	return s.respond(callerID, matchID, models.MatchAccepted)
}

// Reject moves pending -> rejected. Partner only.
func (s *MatchService) Reject(callerID, matchID uuid.UUID) (*models.Match, error) {
	return s.respond(callerID, matchID, models.MatchRejected)
}

func (s *MatchService) respond(callerID, matchID uuid.UUID, target string) (*models.Match, error) {
	match, err := s.getForUpdate(matchID)
	if err != nil {
		return nil, err
	}
	if !match.HasParticipant(callerID) {
		return nil, ErrNotParticipant
	}
	if callerID != match.PartnerID {
		return nil, ErrOnlyPartner
	}
	if match.Status != models.MatchPending {
		return nil, ErrActionNotAvailable
	}

	var partner models.User
	if err := s.db.First(&partner, "id = ?", match.PartnerID).Error; err != nil {
		return nil, ErrUserNotFound
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Match{}).Where("id = ?", match.ID).
			Update("status", target).Error; err != nil {
			return err
		}
		match.Status = target

		switch target {
		case models.MatchAccepted:
			if err := s.notifications.NotifyInviteAccepted(tx, match, &partner, match.Request.Title); err != nil {
				return err
			}
			return s.ensureConversation(tx, match.ID)
		case models.MatchRejected:
			return s.notifications.NotifyInviteRejected(tx, match, &partner, match.Request.Title)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return match, nil
}

// Complete moves accepted -> completed and notifies both participants.
// Either participant may call it. Calling it again on a completed match is a
// no-op so a double submit never duplicates notifications.
func (s *MatchService) Complete(callerID, matchID uuid.UUID) (*models.Match, error) {
	match, err := s.getForUpdate(matchID)
	if err != nil {
		return nil, err
	}
	if !match.HasParticipant(callerID) {
		return nil, ErrNotParticipant
	}
	if match.Status == models.MatchCompleted {
		return match, nil
	}
	if match.Status != models.MatchAccepted {
		return nil, ErrActionNotAvailable
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		// Guard against a concurrent complete: only one caller flips the row.
		result := tx.Model(&models.Match{}).
			Where("id = ? AND status = ?", match.ID, models.MatchAccepted).
			Update("status", models.MatchCompleted)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return nil
		}
		match.Status = models.MatchCompleted
		return s.notifications.NotifyMatchCompleted(tx, match, match.Request.Title)
	})
	if err != nil {
		return nil, err
	}
	match.Status = models.MatchCompleted
	return match, nil
}

// EnsureConversation returns the match's conversation, creating it on first
// access. Participants only; the match must be accepted or completed.
func (s *MatchService) EnsureConversation(callerID, matchID uuid.UUID) (*models.Conversation, error) {
	match, err := s.getForUpdate(matchID)
	if err != nil {
		return nil, err
	}
	if !match.HasParticipant(callerID) {
		return nil, ErrNotParticipant
	}
	if match.Status != models.MatchAccepted && match.Status != models.MatchCompleted {
		return nil, ErrActionNotAvailable
	}

	var conversation models.Conversation
	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.ensureConversation(tx, match.ID); err != nil {
			return err
		}
		return tx.Where("match_id = ?", match.ID).First(&conversation).Error
	})
	if err != nil {
		return nil, err
	}
	return &conversation, nil
}

// ensureConversation is idempotent: a lost duplicate-key race means another
// request already created the row.
func (s *MatchService) ensureConversation(tx *gorm.DB, matchID uuid.UUID) error {
	var existing models.Conversation
	err := tx.Where("match_id = ?", matchID).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	conversation := models.Conversation{ID: uuid.New(), MatchID: matchID}
	if err := tx.Create(&conversation).Error; err != nil && !errors.Is(err, gorm.ErrDuplicatedKey) {
		return err
	}
	return nil
}

// ListForUser returns every match the user participates in, newest first.
func (s *MatchService) ListForUser(userID uuid.UUID) ([]models.Match, error) {
	var matches []models.Match
	err := s.db.Preload("Request").Preload("Request.Skill").
		Preload("Requester").Preload("Partner").
		Where("requester_id = ? OR partner_id = ?", userID, userID).
		Order("created_at DESC").
		Find(&matches).Error
	return matches, err
}

// Get returns a match visible to its participants only.
func (s *MatchService) Get(callerID, matchID uuid.UUID) (*models.Match, error) {
	var match models.Match
	err := s.db.Preload("Request").Preload("Request.Skill").
		Preload("Requester").Preload("Partner").
		First(&match, "id = ?", matchID).Error
	if err != nil {
		return nil, ErrMatchNotFound
	}
	if !match.HasParticipant(callerID) {
		return nil, ErrNotParticipant
	}
	return &match, nil
}

func (s *MatchService) getForUpdate(matchID uuid.UUID) (*models.Match, error) {
	var match models.Match
	if err := s.db.Preload("Request").First(&match, "id = ?", matchID).Error; err != nil {
		return nil, ErrMatchNotFound
	}
	return &match, nil
}

// PendingInviteExists reports whether the caller already has a pending
// invite on the request. Used by the request detail view.
func (s *MatchService) PendingInviteExists(requesterID, requestID uuid.UUID) (bool, error) {
	var count int64
	err := s.db.Model(&models.Match{}).
		Where("request_id = ? AND requester_id = ? AND status = ?", requestID, requesterID, models.MatchPending).
		Count(&count).Error
	return count > 0, err
}
