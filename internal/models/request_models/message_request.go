package request_models

import "github.com/google/uuid"

type SendMessageRequest struct {
	ReceiverID uuid.UUID `json:"receiver_id" binding:"required"`
	Body       string    `json:"body" binding:"required,max=1000"`
}
