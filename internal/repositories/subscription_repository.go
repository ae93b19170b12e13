package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"insura/internal/models/db_models"
)

type SubscriptionRepository interface {
	// InsertWithFirstPayment persists the subscription and its first-month
	// Policy Payment ledger entry in one database transaction.
	InsertWithFirstPayment(ctx context.Context, sub *db_models.PolicySubscription, txn *db_models.Transaction) error
	ListByAccount(ctx context.Context, accountID uuid.UUID) ([]db_models.PolicySubscription, error)
	GetActiveByAccountAndPolicy(ctx context.Context, accountID, policyID uuid.UUID) (*db_models.PolicySubscription, error)
}

func NewSubscriptionRepository(db *gorm.DB) SubscriptionRepository {
	return &subscriptionRepository{db: db}
}

type subscriptionRepository struct {
	db *gorm.DB
}

func (s *subscriptionRepository) InsertWithFirstPayment(ctx context.Context, sub *db_models.PolicySubscription, txn *db_models.Transaction) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(sub).Error; err != nil {
			return err
		}
		txn.SubscriptionID = &sub.ID
		return tx.Create(txn).Error
	})
}

func (s *subscriptionRepository) ListByAccount(ctx context.Context, accountID uuid.UUID) ([]db_models.PolicySubscription, error) {
	var subs []db_models.PolicySubscription
	err := s.db.WithContext(ctx).
		Preload("Policy").
		Where("account_id = ?", accountID).
		Order("created_at DESC").
		Find(&subs).Error
	if err != nil {
		return nil, err
	}
	return subs, nil
}

func (s *subscriptionRepository) GetActiveByAccountAndPolicy(ctx context.Context, accountID, policyID uuid.UUID) (*db_models.PolicySubscription, error) {
	var sub db_models.PolicySubscription
	err := s.db.WithContext(ctx).
		Where("account_id = ? AND policy_id = ? AND status = ?",
			accountID, policyID, db_models.SubStatusActive).
		First(&sub).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &sub, nil
}
