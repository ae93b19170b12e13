package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"insura/internal/models/db_models"
)

type PaymentRepository interface {
	GetByClaim(ctx context.Context, claimID uuid.UUID) (*db_models.Payment, error)
}

func NewPaymentRepository(db *gorm.DB) PaymentRepository {
	return &paymentRepository{db: db}
}

type paymentRepository struct {
	db *gorm.DB
}

func (p *paymentRepository) GetByClaim(ctx context.Context, claimID uuid.UUID) (*db_models.Payment, error) {
	var payment db_models.Payment
	err := p.db.WithContext(ctx).Where("claim_id = ?", claimID).First(&payment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &payment, nil
}
