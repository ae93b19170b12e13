package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"insura/internal/models/db_models"
)

type MessageRepository interface {
	Insert(ctx context.Context, message *db_models.Message) error
	ListByAccount(ctx context.Context, accountID uuid.UUID) ([]db_models.Message, error)
	CountUnread(ctx context.Context, receiverID uuid.UUID) (int64, error)
}

func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &messageRepository{db: db}
}

type messageRepository struct {
	db *gorm.DB
}

func (m *messageRepository) Insert(ctx context.Context, message *db_models.Message) error {
	return m.db.WithContext(ctx).Create(message).Error
}

func (m *messageRepository) ListByAccount(ctx context.Context, accountID uuid.UUID) ([]db_models.Message, error) {
	var messages []db_models.Message
	err := m.db.WithContext(ctx).
		Preload("Sender").
		Preload("Receiver").
		Where("sender_id = ? OR receiver_id = ?", accountID, accountID).
		Order("created_at DESC").
		Find(&messages).Error
	if err != nil {
		return nil, err
	}
	return messages, nil
}

func (m *messageRepository) CountUnread(ctx context.Context, receiverID uuid.UUID) (int64, error) {
	var count int64
	err := m.db.WithContext(ctx).
		Model(&db_models.Message{}).
		Where("receiver_id = ? AND read = FALSE", receiverID).
		Count(&count).Error
	return count, err
}
