package request_models

type ChatRequest struct {
	UserInput string `json:"user_input" binding:"required"`
	SessionID string `json:"session_id"`
}
