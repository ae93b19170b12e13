package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"insura/internal/models/db_models"
)

type TransactionRepository interface {
	ListByAccount(ctx context.Context, accountID uuid.UUID) ([]db_models.Transaction, error)
	CountByAccountAndType(ctx context.Context, accountID uuid.UUID, txnType db_models.TransactionType) (int64, error)
}

func NewTransactionRepository(db *gorm.DB) TransactionRepository {
	return &transactionRepository{db: db}
}

type transactionRepository struct {
	db *gorm.DB
}

func (t *transactionRepository) ListByAccount(ctx context.Context, accountID uuid.UUID) ([]db_models.Transaction, error) {
	var txns []db_models.Transaction
	err := t.db.WithContext(ctx).
		Preload("Subscription.Policy").
		Where("account_id = ?", accountID).
		Order("created_at DESC").
		Find(&txns).Error
	if err != nil {
		return nil, err
	}
	return txns, nil
}

func (t *transactionRepository) CountByAccountAndType(ctx context.Context, accountID uuid.UUID, txnType db_models.TransactionType) (int64, error) {
	var count int64
	err := t.db.WithContext(ctx).
		Model(&db_models.Transaction{}).
		Where("account_id = ? AND type = ?", accountID, txnType).
		Count(&count).Error
	return count, err
}
