package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"insura/internal/models/db_models"
)

type PolicyRepository interface {
	GetActivePolicies(ctx context.Context) ([]db_models.InsurancePolicy, error)
	GetByID(ctx context.Context, id uuid.UUID) (*db_models.InsurancePolicy, error)
	ListActiveByCategory(ctx context.Context, categoryID uuid.UUID) ([]db_models.InsurancePolicy, error)
}

func NewPolicyRepository(db *gorm.DB) PolicyRepository {
	return &policyRepository{db: db}
}

type policyRepository struct {
	db *gorm.DB
}

func (p *policyRepository) GetActivePolicies(ctx context.Context) ([]db_models.InsurancePolicy, error) {
	var policies []db_models.InsurancePolicy
	err := p.db.WithContext(ctx).
		Preload("Company").
		Preload("Category").
		Where("is_active = TRUE").
		Find(&policies).Error
	if err != nil {
		return nil, err
	}
	return policies, nil
}

func (p *policyRepository) GetByID(ctx context.Context, id uuid.UUID) (*db_models.InsurancePolicy, error) {
	var policy db_models.InsurancePolicy
	err := p.db.WithContext(ctx).
		Preload("Company").
		Preload("Category").
		First(&policy, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &policy, nil
}

func (p *policyRepository) ListActiveByCategory(ctx context.Context, categoryID uuid.UUID) ([]db_models.InsurancePolicy, error) {
	var policies []db_models.InsurancePolicy
	err := p.db.WithContext(ctx).
		Preload("Company").
		Preload("Category").
		Where("category_id = ? AND is_active = TRUE", categoryID).
		Find(&policies).Error
	if err != nil {
		return nil, err
	}
	return policies, nil
}
