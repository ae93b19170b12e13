package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"insura/internal/models/db_models"
)

type ClaimRepository interface {
	CreateWithDocuments(ctx context.Context, claim *db_models.Claim, docs []db_models.ClaimDocument) error
	GetByID(ctx context.Context, id uuid.UUID) (*db_models.Claim, error)
	GetByIDForClaimant(ctx context.Context, id, claimantID uuid.UUID) (*db_models.Claim, error)
	ListByClaimant(ctx context.Context, claimantID uuid.UUID) ([]db_models.Claim, error)
	ListAll(ctx context.Context) ([]db_models.Claim, error)

	// Deny stamps the terminal Denied state. No financial side effect.
	Deny(ctx context.Context, claim *db_models.Claim) error

	// ApproveWithPayout applies the approval, the Payment record and the
	// Claim Payout ledger entry atomically. The payment and ledger entry
	// are skipped when a payment already exists for the claim; the bool
	// result reports whether they were created.
	ApproveWithPayout(ctx context.Context, claim *db_models.Claim, payment *db_models.Payment, txn *db_models.Transaction) (bool, error)
}

func NewClaimRepository(db *gorm.DB) ClaimRepository {
	return &claimRepository{db: db}
}

type claimRepository struct {
	db *gorm.DB
}

func (c *claimRepository) CreateWithDocuments(ctx context.Context, claim *db_models.Claim, docs []db_models.ClaimDocument) error {
	return c.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(claim).Error; err != nil {
			return err
		}
		for i := range docs {
			docs[i].ClaimID = claim.ID
			if err := tx.Create(&docs[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (c *claimRepository) GetByID(ctx context.Context, id uuid.UUID) (*db_models.Claim, error) {
	var claim db_models.Claim
	err := c.db.WithContext(ctx).
		Preload("Policy").
		Preload("Claimant").
		Preload("Documents").
		First(&claim, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &claim, nil
}

func (c *claimRepository) GetByIDForClaimant(ctx context.Context, id, claimantID uuid.UUID) (*db_models.Claim, error) {
	var claim db_models.Claim
	err := c.db.WithContext(ctx).
		Preload("Policy").
		Preload("Documents").
		Where("id = ? AND claimant_id = ?", id, claimantID).
		First(&claim).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &claim, nil
}

func (c *claimRepository) ListByClaimant(ctx context.Context, claimantID uuid.UUID) ([]db_models.Claim, error) {
	var claims []db_models.Claim
	err := c.db.WithContext(ctx).
		Preload("Policy").
		Preload("Claimant").
		Preload("Documents").
		Where("claimant_id = ?", claimantID).
		Order("created_at DESC").
		Find(&claims).Error
	if err != nil {
		return nil, err
	}
	return claims, nil
}

func (c *claimRepository) ListAll(ctx context.Context) ([]db_models.Claim, error) {
	var claims []db_models.Claim
	err := c.db.WithContext(ctx).
		Preload("Policy").
		Preload("Claimant").
		Preload("Documents").
		Order("created_at DESC").
		Find(&claims).Error
	if err != nil {
		return nil, err
	}
	return claims, nil
}

func (c *claimRepository) Deny(ctx context.Context, claim *db_models.Claim) error {
	return c.db.WithContext(ctx).Save(claim).Error
}

func (c *claimRepository) ApproveWithPayout(ctx context.Context, claim *db_models.Claim, payment *db_models.Payment, txn *db_models.Transaction) (bool, error) {
	created := false
	err := c.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(claim).Error; err != nil {
			return err
		}

		var existing int64
		if err := tx.Model(&db_models.Payment{}).
			Where("claim_id = ?", claim.ID).
			Count(&existing).Error; err != nil {
			return err
		}
		if existing > 0 {
			return nil
		}

		if err := tx.Create(payment).Error; err != nil {
			return err
		}
		if err := tx.Create(txn).Error; err != nil {
			return err
		}
		created = true
		return nil
	})
	return created, err
}
