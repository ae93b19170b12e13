package utils

import "context"

const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatClientInterface abstracts the external completion API so the
// assistant can run against OpenAI-compatible endpoints or Gemini.
type ChatClientInterface interface {
	Complete(ctx context.Context, messages []ChatMessage) (string, error)
}
