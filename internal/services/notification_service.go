package services

import (
	"fmt"

	"github.com/campusskills/skillswap/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NotificationService owns every notification write. Only the match
// lifecycle produces notifications; user-facing endpoints may only read and
// flip the read flag.
type NotificationService struct {
	db *gorm.DB
}

func NewNotificationService(db *gorm.DB) *NotificationService {
	return &NotificationService{db: db}
}

// notify writes inside tx so a failed notification fails the transition that
// triggered it.
func (s *NotificationService) notify(tx *gorm.DB, userID uuid.UUID, actorID *uuid.UUID, match *models.Match, verb, message string) error {
	n := models.Notification{
		ID:        uuid.New(),
		UserID:    userID,
		ActorID:   actorID,
		MatchID:   &match.ID,
		RequestID: &match.RequestID,
		Verb:      verb,
		Message:   message,
	}
	if err := tx.Create(&n).Error; err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}
	return nil
}

// NotifyInviteSent informs the partner about a new pending invite.
func (s *NotificationService) NotifyInviteSent(tx *gorm.DB, match *models.Match, requester *models.User, requestTitle string) error {
	msg := fmt.Sprintf("%s sent you a match invite for '%s'.", requester.Username, requestTitle)
	return s.notify(tx, match.PartnerID, &requester.ID, match, models.VerbInviteSent, msg)
}

// NotifyInviteAccepted informs the requester that the partner accepted.
func (s *NotificationService) NotifyInviteAccepted(tx *gorm.DB, match *models.Match, partner *models.User, requestTitle string) error {
	msg := fmt.Sprintf("%s accepted your match invite for '%s'.", partner.Username, requestTitle)
	return s.notify(tx, match.RequesterID, &partner.ID, match, models.VerbInviteAccepted, msg)
}

// NotifyInviteRejected informs the requester that the partner declined.
func (s *NotificationService) NotifyInviteRejected(tx *gorm.DB, match *models.Match, partner *models.User, requestTitle string) error {
	msg := fmt.Sprintf("%s declined your match invite for '%s'.", partner.Username, requestTitle)
	return s.notify(tx, match.RequesterID, &partner.ID, match, models.VerbInviteRejected, msg)
}

// NotifyMatchCompleted informs both participants; completion has no single
// actor, so ActorID stays nil.
func (s *NotificationService) NotifyMatchCompleted(tx *gorm.DB, match *models.Match, requestTitle string) error {
	msg := fmt.Sprintf("The match for '%s' has been marked completed.", requestTitle)
	if err := s.notify(tx, match.RequesterID, nil, match, models.VerbMatchCompleted, msg); err != nil {
		return err
	}
	return s.notify(tx, match.PartnerID, nil, match, models.VerbMatchCompleted, msg)
}

func (s *NotificationService) List(userID uuid.UUID, limit, offset int) ([]models.Notification, int64, error) {
	var notifications []models.Notification
	var total int64

	query := s.db.Model(&models.Notification{}).Where("user_id = ?", userID)
	query.Count(&total)

	err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&notifications).Error
	if err != nil {
		return nil, 0, err
	}
	return notifications, total, nil
}

func (s *NotificationService) UnreadCount(userID uuid.UUID) (int64, error) {
	var count int64
	err := s.db.Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Count(&count).Error
	return count, err
}

func (s *NotificationService) MarkRead(userID, notificationID uuid.UUID) error {
	result := s.db.Model(&models.Notification{}).
		Where("id = ? AND user_id = ?", notificationID, userID).
		Update("is_read", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (s *NotificationService) MarkAllRead(userID uuid.UUID) error {
	return s.db.Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Update("is_read", true).Error
}
