package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/campusskills/skillswap/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrConversationNotFound = errors.New("conversation not found")
	ErrEmptyMessage         = errors.New("message body is required")
	ErrMessageTooLong       = errors.New("message must be under 2000 characters")
)

type MessageService struct {
	db         *gorm.DB
	moderation *ModerationService
}

func NewMessageService(db *gorm.DB, moderation *ModerationService) *MessageService {
	return &MessageService{db: db, moderation: moderation}
}

// Send appends a message to a conversation. Participants only, and a block
// between the participants forbids further messaging even on an accepted
// match.
func (s *MessageService) Send(senderID, conversationID uuid.UUID, body string) (*models.Message, error) {
	match, err := s.matchFor(conversationID)
	if err != nil {
		return nil, err
	}
	if !match.HasParticipant(senderID) {
		return nil, ErrNotParticipant
	}

	blocked, err := s.moderation.IsBlocked(match.RequesterID, match.PartnerID)
	if err != nil {
		return nil, err
	}
	if blocked {
		return nil, ErrBlockedRelation
	}

	body = strings.TrimSpace(body)
	if body == "" {
		return nil, ErrEmptyMessage
	}
	if len(body) > 2000 {
		return nil, ErrMessageTooLong
	}

	message := models.Message{
		ID:             uuid.New(),
		ConversationID: conversationID,
		SenderID:       senderID,
		Body:           body,
	}
	if err := s.db.Create(&message).Error; err != nil {
		return nil, fmt.Errorf("failed to send message: %w", err)
	}
	return &message, nil
}

// List returns the conversation's messages oldest first and marks the
// counterpart's messages as read.
func (s *MessageService) List(viewerID, conversationID uuid.UUID) ([]models.Message, error) {
	match, err := s.matchFor(conversationID)
	if err != nil {
		return nil, err
	}
	if !match.HasParticipant(viewerID) {
		return nil, ErrNotParticipant
	}

	var messages []models.Message
	err = s.db.Preload("Sender").
		Where("conversation_id = ?", conversationID).
		Order("created_at ASC").
		Find(&messages).Error
	if err != nil {
		return nil, err
	}

	err = s.db.Model(&models.Message{}).
		Where("conversation_id = ? AND sender_id <> ? AND is_read = ?", conversationID, viewerID, false).
		Update("is_read", true).Error
	if err != nil {
		return nil, err
	}
	return messages, nil
}

// UnreadCount counts messages addressed to the viewer across all their
// conversations.
func (s *MessageService) UnreadCount(viewerID uuid.UUID) (int64, error) {
	var count int64
	err := s.db.Model(&models.Message{}).
		Joins("JOIN conversations ON conversations.id = messages.conversation_id").
		Joins("JOIN matches ON matches.id = conversations.match_id").
		Where("(matches.requester_id = ? OR matches.partner_id = ?)", viewerID, viewerID).
		Where("messages.sender_id <> ? AND messages.is_read = ?", viewerID, false).
		Count(&count).Error
	return count, err
}

func (s *MessageService) matchFor(conversationID uuid.UUID) (*models.Match, error) {
	var conversation models.Conversation
	if err := s.db.First(&conversation, "id = ?", conversationID).Error; err != nil {
		return nil, ErrConversationNotFound
	}
	var match models.Match
	if err := s.db.First(&match, "id = ?", conversation.MatchID).Error; err != nil {
		return nil, ErrMatchNotFound
	}
	return &match, nil
}
