package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Match lifecycle. pending may move to accepted or rejected; accepted may
// move to completed; rejected and completed are terminal.
const (
	MatchPending   = "pending"
	MatchAccepted  = "accepted"
	MatchRejected  = "rejected"
	MatchCompleted = "completed"
)

// Match pairs the user who sent the invite (Requester) with the owner of the
// request (Partner). The naming is historical: the requester is the inviter,
// not the request owner, and only the partner may accept or reject.
//
// The partial unique index allows re-inviting after a rejection while still
// guaranteeing at most one pending invite per (request, requester, partner).
type Match struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	RequestID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_unique_pending_match,priority:1,where:status = 'pending'" json:"request_id"`
	RequesterID uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_unique_pending_match,priority:2" json:"requester_id"`
	PartnerID   uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_unique_pending_match,priority:3;check:chk_requester_not_partner,requester_id <> partner_id" json:"partner_id"`
	Status      string    `gorm:"not null;size:12;default:'pending'" json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	Request     Request   `gorm:"foreignKey:RequestID" json:"request"`
	Requester   User      `gorm:"foreignKey:RequesterID" json:"requester"`
	Partner     User      `gorm:"foreignKey:PartnerID" json:"partner"`
}

func (m *Match) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// HasParticipant reports whether userID is either side of the match.
func (m *Match) HasParticipant(userID uuid.UUID) bool {
	return m.RequesterID == userID || m.PartnerID == userID
}

// Counterpart returns the other participant's id.
func (m *Match) Counterpart(userID uuid.UUID) uuid.UUID {
	if m.RequesterID == userID {
		return m.PartnerID
	}
	return m.RequesterID
}

func (Match) TableName() string {
	return "matches"
}
