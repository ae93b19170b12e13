package response_models

import "github.com/google/uuid"

type ClaimResponse struct {
	ID             uuid.UUID `json:"id"`
	ClaimNumber    string    `json:"claim_number"`
	Title          string    `json:"title"`
	Claimant       string    `json:"claimant"`
	Policy         string    `json:"policy"`
	Description    string    `json:"description"`
	ClaimAmount    float64   `json:"claim_amount"`
	PayoutAmount   *float64  `json:"payout_amount"`
	AdjustmentNote *string   `json:"adjustment_note"`
	Status         string    `json:"status"`
	ClaimDate      string    `json:"claim_date"`
	ApprovalDate   string    `json:"approval_date,omitempty"`
	Documents      []string  `json:"documents,omitempty"`
}

type SubmitClaimResponse struct {
	ClaimID     uuid.UUID `json:"claim_id"`
	ClaimNumber string    `json:"claim_number"`
	ClaimDate   string    `json:"claim_date"`
	Status      string    `json:"status"`
}

type ProcessClaimResponse struct {
	ClaimNumber  string   `json:"claim_number"`
	Status       string   `json:"status"`
	PayoutAmount *float64 `json:"payout_amount,omitempty"`
}

// TimelineStep is one row of the claim-timeline projection.
type TimelineStep struct {
	Label     string `json:"label"`
	Timestamp string `json:"timestamp,omitempty"`
	Status    string `json:"status"` // done | in-progress | waiting
	Message   string `json:"message"`
}
