package services

import (
	"context"

	"github.com/google/uuid"

	"insura/internal/models/db_models"
	"insura/internal/models/response_models"
	"insura/internal/repositories"
	"insura/pkg/utils"
)

type DashboardServiceInterface interface {
	BuildSummary(ctx context.Context, accountID uuid.UUID) (*response_models.DashboardSummary, error)
}

type DashboardService struct {
	repo repositories.DashboardRepository
}

func NewDashboardService(repo repositories.DashboardRepository) DashboardServiceInterface {
	return &DashboardService{repo: repo}
}

func (d *DashboardService) BuildSummary(ctx context.Context, accountID uuid.UUID) (*response_models.DashboardSummary, error) {
	activePolicies, err := d.repo.CountActiveSubscriptions(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	totalClaims, err := d.repo.CountClaims(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	pendingClaims, err := d.repo.CountClaimsByStatus(ctx, accountID, db_models.ClaimStatusPending)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	totalPaid, err := d.repo.SumTransactionsByType(ctx, accountID, db_models.TxnPolicyPayment)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	return &response_models.DashboardSummary{
		ActivePolicies: activePolicies,
		TotalClaims:    totalClaims,
		PendingClaims:  pendingClaims,
		TotalPaid:      totalPaid,
	}, nil
}
