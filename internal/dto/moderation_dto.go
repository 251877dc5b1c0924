package dto

import "github.com/google/uuid"

type BlockUserRequest struct {
	BlockedID uuid.UUID `json:"blocked_id"`
}

type CreateReportRequest struct {
	TargetKind string    `json:"target_kind"`
	TargetID   uuid.UUID `json:"target_id"`
	Reason     string    `json:"reason"`
	Details    string    `json:"details"`
}

type ReviewReportRequest struct {
	Status         string `json:"status"`
	ResolutionNote string `json:"resolution_note"`
}
