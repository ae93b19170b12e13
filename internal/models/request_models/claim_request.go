package request_models

import "github.com/google/uuid"

// SubmitClaimRequest binds the multipart form on /submit-claim.
// Attachments arrive as separate file parts and are handled by the controller.
type SubmitClaimRequest struct {
	PolicyID     uuid.UUID `form:"policy_id" binding:"required"`
	Title        string    `form:"title" binding:"required,max=100"`
	ClaimAmount  float64   `form:"claim_amount" binding:"required,gt=0"`
	Date         string    `form:"date_of_occurrence" binding:"required"`
	Time         string    `form:"time_of_occurrence" binding:"required"`
	Location     string    `form:"location" binding:"required"`
	IncidentType string    `form:"incident_type" binding:"required"`
}

type ProcessClaimRequest struct {
	Status         string   `json:"status" binding:"required"`
	PayoutAmount   *float64 `json:"payout_amount"`
	AdjustmentNote string   `json:"adjustment_note"`
}
