package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"insura/internal/models/db_models"
	"insura/internal/models/request_models"
	"insura/internal/models/response_models"
	"insura/internal/repositories"
	"insura/pkg/utils"
)

type SubscriptionServiceInterface interface {
	JoinPolicy(ctx context.Context, accountID uuid.UUID, request request_models.JoinPolicyRequest) (*response_models.JoinPolicyResponse, error)
	MyPolicies(ctx context.Context, accountID uuid.UUID) ([]response_models.MySubscription, error)
}

type SubscriptionService struct {
	policyRepo repositories.PolicyRepository
	subRepo    repositories.SubscriptionRepository
}

func NewSubscriptionService(policyRepo repositories.PolicyRepository, subRepo repositories.SubscriptionRepository) SubscriptionServiceInterface {
	return &SubscriptionService{
		policyRepo: policyRepo,
		subRepo:    subRepo,
	}
}

func (s *SubscriptionService) JoinPolicy(ctx context.Context, accountID uuid.UUID, request request_models.JoinPolicyRequest) (*response_models.JoinPolicyResponse, error) {
	plan := db_models.PlanType(request.PlanType)
	if plan != db_models.PlanPremium && plan != db_models.PlanRegular {
		return nil, utils.ErrInvalidPlanType
	}

	policy, err := s.policyRepo.GetByID(ctx, request.PolicyID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if policy == nil {
		return nil, utils.ErrPolicyNotFound
	}

	monthlyPrice := policy.MonthlyPriceFor(plan)
	expiry := time.Now().AddDate(0, request.Duration, 0)

	sub := &db_models.PolicySubscription{
		AccountID:      accountID,
		PolicyID:       policy.ID,
		PlanType:       plan,
		DurationMonths: request.Duration,
		MomoNumber:     request.MomoNumber,
		Status:         db_models.SubStatusActive,
		ExpiresAt:      expiry.Unix(),
	}

	// Log the first monthly payment only; later months are not automated.
	txn := &db_models.Transaction{
		AccountID:  accountID,
		Type:       db_models.TxnPolicyPayment,
		Amount:     monthlyPrice,
		MomoNumber: request.MomoNumber,
	}

	if err := s.subRepo.InsertWithFirstPayment(ctx, sub, txn); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return &response_models.JoinPolicyResponse{
		SubscriptionID: sub.ID,
		MonthlyPrice:   monthlyPrice,
		Expires:        utils.FormatRFC3339(expiry),
	}, nil
}

func (s *SubscriptionService) MyPolicies(ctx context.Context, accountID uuid.UUID) ([]response_models.MySubscription, error) {
	subs, err := s.subRepo.ListByAccount(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	result := make([]response_models.MySubscription, 0, len(subs))
	for _, sub := range subs {
		result = append(result, response_models.MySubscription{
			PolicyID: sub.PolicyID,
			Policy:   sub.Policy.Name,
			Plan:     string(sub.PlanType),
			Duration: sub.DurationMonths,
			Status:   string(sub.Status),
			JoinedOn: utils.FormatRFC3339(utils.FromUnixSeconds(sub.CreatedAt)),
			Expires:  utils.FormatRFC3339(utils.FromUnixSeconds(sub.ExpiresAt)),
		})
	}
	return result, nil
}
