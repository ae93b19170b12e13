package services

import (
	"context"

	"github.com/google/uuid"

	"insura/internal/models/db_models"
	"insura/internal/models/response_models"
	"insura/internal/repositories"
	"insura/pkg/utils"
)

type CatalogServiceInterface interface {
	ListCategories(ctx context.Context) ([]response_models.CategoryResponse, error)
	ListPolicies(ctx context.Context) ([]response_models.PolicyResponse, error)
	GetPolicyByID(ctx context.Context, id uuid.UUID) (*response_models.PolicyResponse, error)
}

type CatalogService struct {
	categoryRepo repositories.CategoryRepository
	policyRepo   repositories.PolicyRepository
}

func NewCatalogService(categoryRepo repositories.CategoryRepository, policyRepo repositories.PolicyRepository) CatalogServiceInterface {
	return &CatalogService{
		categoryRepo: categoryRepo,
		policyRepo:   policyRepo,
	}
}

func (c *CatalogService) ListCategories(ctx context.Context) ([]response_models.CategoryResponse, error) {
	categories, err := c.categoryRepo.GetAll(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	result := make([]response_models.CategoryResponse, 0, len(categories))
	for _, category := range categories {
		result = append(result, response_models.CategoryResponse{
			ID:   category.ID,
			Name: category.Name,
		})
	}
	return result, nil
}

func (c *CatalogService) ListPolicies(ctx context.Context) ([]response_models.PolicyResponse, error) {
	policies, err := c.policyRepo.GetActivePolicies(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	result := make([]response_models.PolicyResponse, 0, len(policies))
	for _, policy := range policies {
		result = append(result, ToPolicyResponse(policy))
	}
	return result, nil
}

func (c *CatalogService) GetPolicyByID(ctx context.Context, id uuid.UUID) (*response_models.PolicyResponse, error) {
	policy, err := c.policyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if policy == nil {
		return nil, utils.ErrPolicyNotFound
	}

	resp := ToPolicyResponse(*policy)
	return &resp, nil
}

func ToPolicyResponse(policy db_models.InsurancePolicy) response_models.PolicyResponse {
	return response_models.PolicyResponse{
		ID:              policy.ID,
		Name:            policy.Name,
		Description:     policy.Description,
		PremiumCoverage: policy.PremiumCoverage,
		RegularCoverage: policy.RegularCoverage,
		PremiumPrice:    policy.PremiumPrice,
		RegularPrice:    policy.RegularPrice,
		Duration:        policy.Duration,
		Perils:          policy.Perils,
		Company:         policy.Company.Name,
		Category:        policy.Category.Name,
	}
}
