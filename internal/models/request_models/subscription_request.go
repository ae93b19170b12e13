package request_models

import "github.com/google/uuid"

type JoinPolicyRequest struct {
	PolicyID   uuid.UUID `json:"policy_id" binding:"required"`
	PlanType   string    `json:"plan_type" binding:"required"`
	Duration   int       `json:"duration" binding:"required,min=1"`
	MomoNumber string    `json:"momo_number" binding:"required,max=20"`
}
