package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Report target kinds (tagged variant; the target row is resolved by an
// explicit per-kind lookup, never by reflection).
const (
	TargetRequest = "request"
	TargetProfile = "profile"
	TargetMessage = "message"
)

// Report reasons.
var ReportReasons = []string{"spam", "harassment", "scam", "inappropriate", "other"}

func ValidReportReason(reason string) bool {
	for _, r := range ReportReasons {
		if r == reason {
			return true
		}
	}
	return false
}

// Report moderation status.
const (
	ReportOpen      = "open"
	ReportReviewing = "reviewing"
	ReportResolved  = "resolved"
	ReportDismissed = "dismissed"
)

type Report struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	ReporterID     uuid.UUID  `gorm:"type:uuid;not null;index" json:"reporter_id"`
	ReportedUserID *uuid.UUID `gorm:"type:uuid;index" json:"reported_user_id,omitempty"`
	TargetKind     string     `gorm:"not null;size:20" json:"target_kind"`
	TargetID       uuid.UUID  `gorm:"type:uuid;not null;index" json:"target_id"`
	Reason         string     `gorm:"not null;size:20" json:"reason"`
	Details        string     `gorm:"type:text" json:"details"`
	Status         string     `gorm:"not null;size:20;default:'open';index" json:"status"`
	ReviewedByID   *uuid.UUID `gorm:"type:uuid" json:"reviewed_by_id,omitempty"`
	ReviewedAt     *time.Time `json:"reviewed_at,omitempty"`
	ResolutionNote string     `gorm:"type:text" json:"resolution_note"`
	CreatedAt      time.Time  `json:"created_at"`
	Reporter       User       `gorm:"foreignKey:ReporterID" json:"-"`
}

func (r *Report) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

func (Report) TableName() string {
	return "reports"
}
