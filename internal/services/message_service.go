package services

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"insura/internal/models/db_models"
	"insura/internal/models/request_models"
	"insura/internal/models/response_models"
	"insura/internal/repositories"
	"insura/pkg/utils"
)

type MessageServiceInterface interface {
	Send(ctx context.Context, senderID uuid.UUID, request request_models.SendMessageRequest) error
	Inbox(ctx context.Context, accountID uuid.UUID) (*response_models.InboxResponse, error)
}

type MessageService struct {
	messageRepo repositories.MessageRepository
	accountRepo repositories.AccountRepository
}

func NewMessageService(messageRepo repositories.MessageRepository, accountRepo repositories.AccountRepository) MessageServiceInterface {
	return &MessageService{
		messageRepo: messageRepo,
		accountRepo: accountRepo,
	}
}

func (m *MessageService) Send(ctx context.Context, senderID uuid.UUID, request request_models.SendMessageRequest) error {
	if strings.TrimSpace(request.Body) == "" {
		return utils.ErrEmptyMessage
	}

	receiver, err := m.accountRepo.FindByID(ctx, request.ReceiverID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if receiver == nil {
		return utils.ErrReceiverNotFound
	}

	message := &db_models.Message{
		SenderID:   senderID,
		ReceiverID: request.ReceiverID,
		Body:       request.Body,
	}
	if err := m.messageRepo.Insert(ctx, message); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (m *MessageService) Inbox(ctx context.Context, accountID uuid.UUID) (*response_models.InboxResponse, error) {
	messages, err := m.messageRepo.ListByAccount(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	unread, err := m.messageRepo.CountUnread(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	result := make([]response_models.MessageResponse, 0, len(messages))
	for _, msg := range messages {
		result = append(result, response_models.MessageResponse{
			ID:        msg.ID,
			Sender:    msg.Sender.Name,
			Receiver:  msg.Receiver.Name,
			Body:      msg.Body,
			Read:      msg.Read,
			Timestamp: utils.FormatRFC3339(utils.FromUnixSeconds(msg.CreatedAt)),
		})
	}

	return &response_models.InboxResponse{
		Messages:    result,
		UnreadCount: unread,
	}, nil
}
