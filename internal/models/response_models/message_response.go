package response_models

import "github.com/google/uuid"

type MessageResponse struct {
	ID        uuid.UUID `json:"id"`
	Sender    string    `json:"sender"`
	Receiver  string    `json:"receiver"`
	Body      string    `json:"body"`
	Read      bool      `json:"read"`
	Timestamp string    `json:"timestamp"`
}

type InboxResponse struct {
	Messages    []MessageResponse `json:"messages"`
	UnreadCount int64             `json:"unread_count"`
}
