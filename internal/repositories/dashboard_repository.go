package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"insura/internal/models/db_models"
)

type DashboardRepository interface {
	CountActiveSubscriptions(ctx context.Context, accountID uuid.UUID) (int64, error)
	CountClaims(ctx context.Context, claimantID uuid.UUID) (int64, error)
	CountClaimsByStatus(ctx context.Context, claimantID uuid.UUID, status db_models.ClaimStatus) (int64, error)
	SumTransactionsByType(ctx context.Context, accountID uuid.UUID, txnType db_models.TransactionType) (float64, error)
}

func NewDashboardRepository(db *gorm.DB) DashboardRepository {
	return &dashboardRepository{db: db}
}

type dashboardRepository struct {
	db *gorm.DB
}

func (d *dashboardRepository) CountActiveSubscriptions(ctx context.Context, accountID uuid.UUID) (int64, error) {
	var count int64
	err := d.db.WithContext(ctx).
		Model(&db_models.PolicySubscription{}).
		Where("account_id = ? AND status = ?", accountID, db_models.SubStatusActive).
		Count(&count).Error
	return count, err
}

func (d *dashboardRepository) CountClaims(ctx context.Context, claimantID uuid.UUID) (int64, error) {
	var count int64
	err := d.db.WithContext(ctx).
		Model(&db_models.Claim{}).
		Where("claimant_id = ?", claimantID).
		Count(&count).Error
	return count, err
}

func (d *dashboardRepository) CountClaimsByStatus(ctx context.Context, claimantID uuid.UUID, status db_models.ClaimStatus) (int64, error) {
	var count int64
	err := d.db.WithContext(ctx).
		Model(&db_models.Claim{}).
		Where("claimant_id = ? AND status = ?", claimantID, status).
		Count(&count).Error
	return count, err
}

func (d *dashboardRepository) SumTransactionsByType(ctx context.Context, accountID uuid.UUID, txnType db_models.TransactionType) (float64, error) {
	var total float64
	err := d.db.WithContext(ctx).
		Model(&db_models.Transaction{}).
		Where("account_id = ? AND type = ?", accountID, txnType).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error
	return total, err
}
