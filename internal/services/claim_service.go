package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"insura/internal/models/db_models"
	"insura/internal/models/request_models"
	"insura/internal/models/response_models"
	"insura/internal/repositories"
	"insura/pkg/utils"
)

type ClaimServiceInterface interface {
	Submit(ctx context.Context, claimantID uuid.UUID, request request_models.SubmitClaimRequest, docs []db_models.ClaimDocument) (*response_models.SubmitClaimResponse, error)
	ListMine(ctx context.Context, claimantID uuid.UUID) ([]response_models.ClaimResponse, error)
	ListAll(ctx context.Context) ([]response_models.ClaimResponse, error)
	Process(ctx context.Context, claimID uuid.UUID, request request_models.ProcessClaimRequest) (*response_models.ProcessClaimResponse, error)
	Timeline(ctx context.Context, claimID, claimantID uuid.UUID) ([]response_models.TimelineStep, error)
}

type ClaimService struct {
	claimRepo   repositories.ClaimRepository
	policyRepo  repositories.PolicyRepository
	subRepo     repositories.SubscriptionRepository
	paymentRepo repositories.PaymentRepository
}

func NewClaimService(
	claimRepo repositories.ClaimRepository,
	policyRepo repositories.PolicyRepository,
	subRepo repositories.SubscriptionRepository,
	paymentRepo repositories.PaymentRepository,
) ClaimServiceInterface {
	return &ClaimService{
		claimRepo:   claimRepo,
		policyRepo:  policyRepo,
		subRepo:     subRepo,
		paymentRepo: paymentRepo,
	}
}

func (s *ClaimService) Submit(ctx context.Context, claimantID uuid.UUID, request request_models.SubmitClaimRequest, docs []db_models.ClaimDocument) (*response_models.SubmitClaimResponse, error) {
	policy, err := s.policyRepo.GetByID(ctx, request.PolicyID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if policy == nil {
		return nil, utils.ErrPolicyNotFound
	}

	sub, err := s.subRepo.GetActiveByAccountAndPolicy(ctx, claimantID, request.PolicyID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if sub == nil {
		return nil, utils.ErrNoActiveSubscription
	}

	if request.ClaimAmount > policy.CoverageFor(sub.PlanType) {
		return nil, utils.ErrCoverageExceeded
	}

	claimNumber, err := utils.GenerateClaimNumber()
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	description := fmt.Sprintf(
		"Date: %s\nTime: %s\nLocation: %s\nIncident: %s\nClaim Amount: %.2f",
		request.Date, request.Time, request.Location, request.IncidentType, request.ClaimAmount,
	)

	incident, _ := json.Marshal(map[string]string{
		"date":          request.Date,
		"time":          request.Time,
		"location":      request.Location,
		"incident_type": request.IncidentType,
	})

	claim := &db_models.Claim{
		PolicyID:    policy.ID,
		ClaimantID:  claimantID,
		ClaimNumber: claimNumber,
		Title:       request.Title,
		Description: description,
		ClaimAmount: request.ClaimAmount,
		Status:      db_models.ClaimStatusPending,
		Incident:    incident,
	}

	if err := s.claimRepo.CreateWithDocuments(ctx, claim, docs); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return &response_models.SubmitClaimResponse{
		ClaimID:     claim.ID,
		ClaimNumber: claim.ClaimNumber,
		ClaimDate:   utils.FormatRFC3339(utils.FromUnixSeconds(claim.CreatedAt)),
		Status:      string(claim.Status),
	}, nil
}

func (s *ClaimService) ListMine(ctx context.Context, claimantID uuid.UUID) ([]response_models.ClaimResponse, error) {
	claims, err := s.claimRepo.ListByClaimant(ctx, claimantID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return toClaimResponses(claims), nil
}

func (s *ClaimService) ListAll(ctx context.Context) ([]response_models.ClaimResponse, error) {
	claims, err := s.claimRepo.ListAll(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return toClaimResponses(claims), nil
}

func (s *ClaimService) Process(ctx context.Context, claimID uuid.UUID, request request_models.ProcessClaimRequest) (*response_models.ProcessClaimResponse, error) {
	status := db_models.ClaimStatus(request.Status)
	if status != db_models.ClaimStatusApproved && status != db_models.ClaimStatusDenied {
		return nil, utils.ErrInvalidClaimStatus
	}

	claim, err := s.claimRepo.GetByID(ctx, claimID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if claim == nil {
		return nil, utils.ErrClaimNotFound
	}

	now := time.Now().Unix()

	if status == db_models.ClaimStatusDenied {
		claim.Status = db_models.ClaimStatusDenied
		claim.ApprovalDate = &now
		if request.AdjustmentNote != "" {
			claim.AdjustmentNote = &request.AdjustmentNote
		}
		if err := s.claimRepo.Deny(ctx, claim); err != nil {
			return nil, utils.ErrDatabaseError
		}
		return &response_models.ProcessClaimResponse{
			ClaimNumber: claim.ClaimNumber,
			Status:      string(claim.Status),
		}, nil
	}

	if request.PayoutAmount == nil || *request.PayoutAmount <= 0 {
		return nil, utils.ErrInvalidPayoutAmount
	}
	payout := *request.PayoutAmount

	ceiling, err := s.payoutCeiling(ctx, claim)
	if err != nil {
		return nil, err
	}
	if payout > ceiling {
		return nil, utils.ErrCoverageExceeded
	}

	claim.Status = db_models.ClaimStatusApproved
	claim.PayoutAmount = &payout
	claim.ApprovalDate = &now
	if request.AdjustmentNote != "" {
		claim.AdjustmentNote = &request.AdjustmentNote
	}

	payment := &db_models.Payment{
		ClaimID: claim.ID,
		Amount:  payout,
		IsPaid:  true,
		PaidAt:  &now,
	}
	txn := &db_models.Transaction{
		AccountID: claim.ClaimantID,
		ClaimID:   &claim.ID,
		Type:      db_models.TxnClaimPayout,
		Amount:    payout,
	}
	if sub, err := s.subRepo.GetActiveByAccountAndPolicy(ctx, claim.ClaimantID, claim.PolicyID); err == nil && sub != nil {
		txn.SubscriptionID = &sub.ID
		txn.MomoNumber = sub.MomoNumber
	}

	if _, err := s.claimRepo.ApproveWithPayout(ctx, claim, payment, txn); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return &response_models.ProcessClaimResponse{
		ClaimNumber:  claim.ClaimNumber,
		Status:       string(claim.Status),
		PayoutAmount: claim.PayoutAmount,
	}, nil
}

// payoutCeiling resolves the plan-tier coverage ceiling for the claimant.
// Falls back to the regular tier when the subscription is no longer active.
func (s *ClaimService) payoutCeiling(ctx context.Context, claim *db_models.Claim) (float64, error) {
	policy, err := s.policyRepo.GetByID(ctx, claim.PolicyID)
	if err != nil {
		return 0, utils.ErrDatabaseError
	}
	if policy == nil {
		return 0, utils.ErrPolicyNotFound
	}

	sub, err := s.subRepo.GetActiveByAccountAndPolicy(ctx, claim.ClaimantID, claim.PolicyID)
	if err != nil {
		return 0, utils.ErrDatabaseError
	}
	if sub != nil {
		return policy.CoverageFor(sub.PlanType), nil
	}
	return policy.RegularCoverage, nil
}

func (s *ClaimService) Timeline(ctx context.Context, claimID, claimantID uuid.UUID) ([]response_models.TimelineStep, error) {
	claim, err := s.claimRepo.GetByIDForClaimant(ctx, claimID, claimantID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if claim == nil {
		return nil, utils.ErrClaimNotFound
	}

	var payment *db_models.Payment
	if claim.Status == db_models.ClaimStatusApproved {
		payment, err = s.paymentRepo.GetByClaim(ctx, claim.ID)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
	}

	return ProjectTimeline(claim, payment), nil
}

// ProjectTimeline derives the ordered lifecycle view from current claim and
// payment state. Pure function, no side effects.
func ProjectTimeline(claim *db_models.Claim, payment *db_models.Payment) []response_models.TimelineStep {
	claimDate := utils.FormatRFC3339(utils.FromUnixSeconds(claim.CreatedAt))

	submitted := response_models.TimelineStep{
		Label:     "Submitted",
		Timestamp: claimDate,
		Status:    "done",
		Message:   "Claim was submitted by user.",
	}
	if claim.Status == db_models.ClaimStatusSubmitted {
		submitted.Status = "in-progress"
	}
	timeline := []response_models.TimelineStep{submitted}

	switch claim.Status {
	case db_models.ClaimStatusPending, db_models.ClaimStatusApproved, db_models.ClaimStatusDenied:
		step := response_models.TimelineStep{
			Label:     "Pending Review",
			Timestamp: claimDate,
			Status:    "done",
			Message:   "Claim is under review by the insurer.",
		}
		if claim.Status == db_models.ClaimStatusPending {
			step.Status = "in-progress"
		}
		timeline = append(timeline, step)
	}

	if claim.Status == db_models.ClaimStatusApproved || claim.Status == db_models.ClaimStatusDenied {
		var approvalDate string
		if claim.ApprovalDate != nil {
			approvalDate = utils.FormatRFC3339(utils.FromUnixSeconds(*claim.ApprovalDate))
		}
		verb := "approved"
		if claim.Status == db_models.ClaimStatusDenied {
			verb = "denied"
		}
		timeline = append(timeline, response_models.TimelineStep{
			Label:     string(claim.Status),
			Timestamp: approvalDate,
			Status:    "done",
			Message:   fmt.Sprintf("Claim was %s.", verb),
		})
	}

	if claim.Status == db_models.ClaimStatusApproved {
		step := response_models.TimelineStep{
			Label:   "Paid",
			Status:  "waiting",
			Message: "Awaiting payment.",
		}
		if payment != nil && payment.IsPaid {
			step.Status = "done"
			step.Message = "Payment has been completed."
			step.Timestamp = utils.FormatRFC3339(utils.FromUnixSeconds(payment.CreatedAt))
		}
		timeline = append(timeline, step)
	}

	return timeline
}

func toClaimResponses(claims []db_models.Claim) []response_models.ClaimResponse {
	result := make([]response_models.ClaimResponse, 0, len(claims))
	for _, claim := range claims {
		resp := response_models.ClaimResponse{
			ID:             claim.ID,
			ClaimNumber:    claim.ClaimNumber,
			Title:          claim.Title,
			Claimant:       claim.Claimant.Name,
			Policy:         claim.Policy.Name,
			Description:    claim.Description,
			ClaimAmount:    claim.ClaimAmount,
			PayoutAmount:   claim.PayoutAmount,
			AdjustmentNote: claim.AdjustmentNote,
			Status:         string(claim.Status),
			ClaimDate:      utils.FormatRFC3339(utils.FromUnixSeconds(claim.CreatedAt)),
		}
		if claim.ApprovalDate != nil {
			resp.ApprovalDate = utils.FormatRFC3339(utils.FromUnixSeconds(*claim.ApprovalDate))
		}
		for _, doc := range claim.Documents {
			resp.Documents = append(resp.Documents, doc.FileName)
		}
		result = append(result, resp)
	}
	return result
}
