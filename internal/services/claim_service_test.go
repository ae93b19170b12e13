package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"insura/internal/models/db_models"
	"insura/internal/models/request_models"
	"insura/pkg/utils"
)

type fakeClaimRepo struct {
	claims map[uuid.UUID]*db_models.Claim

	createdDocs  []db_models.ClaimDocument
	deniedCalls  int
	payments     []*db_models.Payment
	transactions []*db_models.Transaction
}

func newFakeClaimRepo() *fakeClaimRepo {
	return &fakeClaimRepo{claims: make(map[uuid.UUID]*db_models.Claim)}
}

func (f *fakeClaimRepo) CreateWithDocuments(ctx context.Context, claim *db_models.Claim, docs []db_models.ClaimDocument) error {
	claim.ID = uuid.New()
	claim.CreatedAt = time.Now().Unix()
	f.claims[claim.ID] = claim
	f.createdDocs = append(f.createdDocs, docs...)
	return nil
}

func (f *fakeClaimRepo) GetByID(ctx context.Context, id uuid.UUID) (*db_models.Claim, error) {
	return f.claims[id], nil
}

func (f *fakeClaimRepo) GetByIDForClaimant(ctx context.Context, id, claimantID uuid.UUID) (*db_models.Claim, error) {
	claim, ok := f.claims[id]
	if !ok || claim.ClaimantID != claimantID {
		return nil, nil
	}
	return claim, nil
}

func (f *fakeClaimRepo) ListByClaimant(ctx context.Context, claimantID uuid.UUID) ([]db_models.Claim, error) {
	var out []db_models.Claim
	for _, claim := range f.claims {
		if claim.ClaimantID == claimantID {
			out = append(out, *claim)
		}
	}
	return out, nil
}

func (f *fakeClaimRepo) ListAll(ctx context.Context) ([]db_models.Claim, error) {
	var out []db_models.Claim
	for _, claim := range f.claims {
		out = append(out, *claim)
	}
	return out, nil
}

func (f *fakeClaimRepo) Deny(ctx context.Context, claim *db_models.Claim) error {
	f.deniedCalls++
	f.claims[claim.ID] = claim
	return nil
}

func (f *fakeClaimRepo) ApproveWithPayout(ctx context.Context, claim *db_models.Claim, payment *db_models.Payment, txn *db_models.Transaction) (bool, error) {
	f.claims[claim.ID] = claim
	for _, existing := range f.payments {
		if existing.ClaimID == claim.ID {
			return false, nil
		}
	}
	f.payments = append(f.payments, payment)
	f.transactions = append(f.transactions, txn)
	return true, nil
}

type fakePolicyRepo struct {
	policies map[uuid.UUID]*db_models.InsurancePolicy
}

func newFakePolicyRepo(policies ...*db_models.InsurancePolicy) *fakePolicyRepo {
	repo := &fakePolicyRepo{policies: make(map[uuid.UUID]*db_models.InsurancePolicy)}
	for _, policy := range policies {
		repo.policies[policy.ID] = policy
	}
	return repo
}

func (f *fakePolicyRepo) GetActivePolicies(ctx context.Context) ([]db_models.InsurancePolicy, error) {
	var out []db_models.InsurancePolicy
	for _, policy := range f.policies {
		if policy.IsActive {
			out = append(out, *policy)
		}
	}
	return out, nil
}

func (f *fakePolicyRepo) GetByID(ctx context.Context, id uuid.UUID) (*db_models.InsurancePolicy, error) {
	return f.policies[id], nil
}

func (f *fakePolicyRepo) ListActiveByCategory(ctx context.Context, categoryID uuid.UUID) ([]db_models.InsurancePolicy, error) {
	var out []db_models.InsurancePolicy
	for _, policy := range f.policies {
		if policy.CategoryID == categoryID && policy.IsActive {
			out = append(out, *policy)
		}
	}
	return out, nil
}

type fakeSubRepo struct {
	subs []*db_models.PolicySubscription
	txns []*db_models.Transaction
}

func (f *fakeSubRepo) InsertWithFirstPayment(ctx context.Context, sub *db_models.PolicySubscription, txn *db_models.Transaction) error {
	sub.ID = uuid.New()
	sub.CreatedAt = time.Now().Unix()
	txn.SubscriptionID = &sub.ID
	f.subs = append(f.subs, sub)
	f.txns = append(f.txns, txn)
	return nil
}

func (f *fakeSubRepo) ListByAccount(ctx context.Context, accountID uuid.UUID) ([]db_models.PolicySubscription, error) {
	var out []db_models.PolicySubscription
	for _, sub := range f.subs {
		if sub.AccountID == accountID {
			out = append(out, *sub)
		}
	}
	return out, nil
}

func (f *fakeSubRepo) GetActiveByAccountAndPolicy(ctx context.Context, accountID, policyID uuid.UUID) (*db_models.PolicySubscription, error) {
	for _, sub := range f.subs {
		if sub.AccountID == accountID && sub.PolicyID == policyID && sub.Status == db_models.SubStatusActive {
			return sub, nil
		}
	}
	return nil, nil
}

type fakePaymentRepo struct {
	payments map[uuid.UUID]*db_models.Payment
}

func (f *fakePaymentRepo) GetByClaim(ctx context.Context, claimID uuid.UUID) (*db_models.Payment, error) {
	if f.payments == nil {
		return nil, nil
	}
	return f.payments[claimID], nil
}

func testPolicy() *db_models.InsurancePolicy {
	return &db_models.InsurancePolicy{
		BaseModel:       db_models.BaseModel{ID: uuid.New()},
		Name:            "Roadstar Auto Cover",
		PremiumCoverage: 20000,
		RegularCoverage: 5000,
		PremiumPrice:    120,
		RegularPrice:    45,
		IsActive:        true,
	}
}

func activeSub(accountID uuid.UUID, policy *db_models.InsurancePolicy, plan db_models.PlanType) *db_models.PolicySubscription {
	return &db_models.PolicySubscription{
		BaseModel:  db_models.BaseModel{ID: uuid.New()},
		AccountID:  accountID,
		PolicyID:   policy.ID,
		PlanType:   plan,
		MomoNumber: "0240000000",
		Status:     db_models.SubStatusActive,
	}
}

func submitRequest(policyID uuid.UUID, amount float64) request_models.SubmitClaimRequest {
	return request_models.SubmitClaimRequest{
		PolicyID:     policyID,
		Title:        "Windscreen damage",
		ClaimAmount:  amount,
		Date:         "2025-03-14",
		Time:         "09:30",
		Location:     "Accra Ring Road",
		IncidentType: "Collision",
	}
}

func TestSubmitClaimWithinCoverage(t *testing.T) {
	policy := testPolicy()
	claimant := uuid.New()

	claimRepo := newFakeClaimRepo()
	subRepo := &fakeSubRepo{subs: []*db_models.PolicySubscription{activeSub(claimant, policy, db_models.PlanRegular)}}
	service := NewClaimService(claimRepo, newFakePolicyRepo(policy), subRepo, &fakePaymentRepo{})

	resp, err := service.Submit(context.Background(), claimant, submitRequest(policy.ID, 3000), nil)
	require.NoError(t, err)
	require.NotNil(t, resp)

	assert.True(t, strings.HasPrefix(resp.ClaimNumber, "CLM-"))
	assert.Equal(t, string(db_models.ClaimStatusPending), resp.Status)

	stored := claimRepo.claims[resp.ClaimID]
	require.NotNil(t, stored)
	assert.Contains(t, stored.Description, "Location: Accra Ring Road")
	assert.Contains(t, stored.Description, "Claim Amount: 3000.00")
}

func TestSubmitClaimExceedsTierCoverage(t *testing.T) {
	policy := testPolicy()
	claimant := uuid.New()

	subRepo := &fakeSubRepo{subs: []*db_models.PolicySubscription{activeSub(claimant, policy, db_models.PlanRegular)}}
	service := NewClaimService(newFakeClaimRepo(), newFakePolicyRepo(policy), subRepo, &fakePaymentRepo{})

	// 10,000 clears the premium ceiling but not the regular one.
	_, err := service.Submit(context.Background(), claimant, submitRequest(policy.ID, 10000), nil)
	assert.ErrorIs(t, err, utils.ErrCoverageExceeded)
}

func TestSubmitClaimRequiresActiveSubscription(t *testing.T) {
	policy := testPolicy()
	service := NewClaimService(newFakeClaimRepo(), newFakePolicyRepo(policy), &fakeSubRepo{}, &fakePaymentRepo{})

	_, err := service.Submit(context.Background(), uuid.New(), submitRequest(policy.ID, 100), nil)
	assert.ErrorIs(t, err, utils.ErrNoActiveSubscription)
}

func TestProcessClaimApprovalCreatesPayout(t *testing.T) {
	policy := testPolicy()
	claimant := uuid.New()

	claim := &db_models.Claim{
		BaseModel:   db_models.BaseModel{ID: uuid.New()},
		PolicyID:    policy.ID,
		ClaimantID:  claimant,
		ClaimNumber: "CLM-1A2B3C4D",
		ClaimAmount: 3000,
		Status:      db_models.ClaimStatusPending,
	}
	claimRepo := newFakeClaimRepo()
	claimRepo.claims[claim.ID] = claim

	subRepo := &fakeSubRepo{subs: []*db_models.PolicySubscription{activeSub(claimant, policy, db_models.PlanRegular)}}
	service := NewClaimService(claimRepo, newFakePolicyRepo(policy), subRepo, &fakePaymentRepo{})

	payout := 2500.0
	resp, err := service.Process(context.Background(), claim.ID, request_models.ProcessClaimRequest{
		Status:       string(db_models.ClaimStatusApproved),
		PayoutAmount: &payout,
	})
	require.NoError(t, err)
	assert.Equal(t, string(db_models.ClaimStatusApproved), resp.Status)
	require.NotNil(t, resp.PayoutAmount)
	assert.Equal(t, payout, *resp.PayoutAmount)

	require.Len(t, claimRepo.payments, 1)
	assert.True(t, claimRepo.payments[0].IsPaid)
	assert.Equal(t, payout, claimRepo.payments[0].Amount)

	require.Len(t, claimRepo.transactions, 1)
	assert.Equal(t, db_models.TxnClaimPayout, claimRepo.transactions[0].Type)
	assert.Equal(t, claimant, claimRepo.transactions[0].AccountID)
}

func TestProcessClaimApprovalIsIdempotent(t *testing.T) {
	policy := testPolicy()
	claimant := uuid.New()

	claim := &db_models.Claim{
		BaseModel:   db_models.BaseModel{ID: uuid.New()},
		PolicyID:    policy.ID,
		ClaimantID:  claimant,
		ClaimNumber: "CLM-DEADBEEF",
		ClaimAmount: 3000,
		Status:      db_models.ClaimStatusPending,
	}
	claimRepo := newFakeClaimRepo()
	claimRepo.claims[claim.ID] = claim

	subRepo := &fakeSubRepo{subs: []*db_models.PolicySubscription{activeSub(claimant, policy, db_models.PlanRegular)}}
	service := NewClaimService(claimRepo, newFakePolicyRepo(policy), subRepo, &fakePaymentRepo{})

	payout := 1000.0
	req := request_models.ProcessClaimRequest{
		Status:       string(db_models.ClaimStatusApproved),
		PayoutAmount: &payout,
	}

	_, err := service.Process(context.Background(), claim.ID, req)
	require.NoError(t, err)
	_, err = service.Process(context.Background(), claim.ID, req)
	require.NoError(t, err)

	assert.Len(t, claimRepo.payments, 1)
	assert.Len(t, claimRepo.transactions, 1)
}

func TestProcessClaimRejectsPayoutAboveCeiling(t *testing.T) {
	policy := testPolicy()
	claimant := uuid.New()

	claim := &db_models.Claim{
		BaseModel:  db_models.BaseModel{ID: uuid.New()},
		PolicyID:   policy.ID,
		ClaimantID: claimant,
		Status:     db_models.ClaimStatusPending,
	}
	claimRepo := newFakeClaimRepo()
	claimRepo.claims[claim.ID] = claim

	subRepo := &fakeSubRepo{subs: []*db_models.PolicySubscription{activeSub(claimant, policy, db_models.PlanRegular)}}
	service := NewClaimService(claimRepo, newFakePolicyRepo(policy), subRepo, &fakePaymentRepo{})

	payout := 7500.0
	_, err := service.Process(context.Background(), claim.ID, request_models.ProcessClaimRequest{
		Status:       string(db_models.ClaimStatusApproved),
		PayoutAmount: &payout,
	})
	assert.ErrorIs(t, err, utils.ErrCoverageExceeded)
	assert.Empty(t, claimRepo.payments)
}

func TestProcessClaimApprovalOnLapsedSubscription(t *testing.T) {
	policy := testPolicy()
	claimant := uuid.New()

	claim := &db_models.Claim{
		BaseModel:   db_models.BaseModel{ID: uuid.New()},
		PolicyID:    policy.ID,
		ClaimantID:  claimant,
		ClaimNumber: "CLM-C0FFEE00",
		ClaimAmount: 3000,
		Status:      db_models.ClaimStatusPending,
	}
	claimRepo := newFakeClaimRepo()
	claimRepo.claims[claim.ID] = claim

	lapsed := activeSub(claimant, policy, db_models.PlanPremium)
	lapsed.Status = db_models.SubStatusComplete
	subRepo := &fakeSubRepo{subs: []*db_models.PolicySubscription{lapsed}}
	service := NewClaimService(claimRepo, newFakePolicyRepo(policy), subRepo, &fakePaymentRepo{})

	// The lapsed premium tier no longer applies; the regular ceiling does.
	tooHigh := 7500.0
	_, err := service.Process(context.Background(), claim.ID, request_models.ProcessClaimRequest{
		Status:       string(db_models.ClaimStatusApproved),
		PayoutAmount: &tooHigh,
	})
	assert.ErrorIs(t, err, utils.ErrCoverageExceeded)

	payout := 4000.0
	resp, err := service.Process(context.Background(), claim.ID, request_models.ProcessClaimRequest{
		Status:       string(db_models.ClaimStatusApproved),
		PayoutAmount: &payout,
	})
	require.NoError(t, err)
	assert.Equal(t, string(db_models.ClaimStatusApproved), resp.Status)

	// The ledger entry carries no subscription reference.
	require.Len(t, claimRepo.transactions, 1)
	assert.Nil(t, claimRepo.transactions[0].SubscriptionID)
}

func TestProcessClaimApprovalRequiresPositivePayout(t *testing.T) {
	claim := &db_models.Claim{
		BaseModel: db_models.BaseModel{ID: uuid.New()},
		Status:    db_models.ClaimStatusPending,
	}
	claimRepo := newFakeClaimRepo()
	claimRepo.claims[claim.ID] = claim

	service := NewClaimService(claimRepo, newFakePolicyRepo(), &fakeSubRepo{}, &fakePaymentRepo{})

	_, err := service.Process(context.Background(), claim.ID, request_models.ProcessClaimRequest{
		Status: string(db_models.ClaimStatusApproved),
	})
	assert.ErrorIs(t, err, utils.ErrInvalidPayoutAmount)

	zero := 0.0
	_, err = service.Process(context.Background(), claim.ID, request_models.ProcessClaimRequest{
		Status:       string(db_models.ClaimStatusApproved),
		PayoutAmount: &zero,
	})
	assert.ErrorIs(t, err, utils.ErrInvalidPayoutAmount)
}

func TestProcessClaimDenialHasNoFinancialSideEffects(t *testing.T) {
	claim := &db_models.Claim{
		BaseModel:   db_models.BaseModel{ID: uuid.New()},
		ClaimNumber: "CLM-0BADF00D",
		Status:      db_models.ClaimStatusPending,
	}
	claimRepo := newFakeClaimRepo()
	claimRepo.claims[claim.ID] = claim

	service := NewClaimService(claimRepo, newFakePolicyRepo(), &fakeSubRepo{}, &fakePaymentRepo{})

	resp, err := service.Process(context.Background(), claim.ID, request_models.ProcessClaimRequest{
		Status:         string(db_models.ClaimStatusDenied),
		AdjustmentNote: "Outside coverage period",
	})
	require.NoError(t, err)
	assert.Equal(t, string(db_models.ClaimStatusDenied), resp.Status)
	assert.Nil(t, resp.PayoutAmount)

	assert.Equal(t, 1, claimRepo.deniedCalls)
	assert.Empty(t, claimRepo.payments)
	assert.Empty(t, claimRepo.transactions)
	require.NotNil(t, claim.AdjustmentNote)
	assert.Equal(t, "Outside coverage period", *claim.AdjustmentNote)
}

func TestProcessClaimRejectsUnknownStatus(t *testing.T) {
	service := NewClaimService(newFakeClaimRepo(), newFakePolicyRepo(), &fakeSubRepo{}, &fakePaymentRepo{})

	_, err := service.Process(context.Background(), uuid.New(), request_models.ProcessClaimRequest{Status: "Escalated"})
	assert.ErrorIs(t, err, utils.ErrInvalidClaimStatus)
}

func TestProcessClaimNotFound(t *testing.T) {
	service := NewClaimService(newFakeClaimRepo(), newFakePolicyRepo(), &fakeSubRepo{}, &fakePaymentRepo{})

	payout := 100.0
	_, err := service.Process(context.Background(), uuid.New(), request_models.ProcessClaimRequest{
		Status:       string(db_models.ClaimStatusApproved),
		PayoutAmount: &payout,
	})
	assert.ErrorIs(t, err, utils.ErrClaimNotFound)
}

func TestTimelineOwnedClaim(t *testing.T) {
	claimant := uuid.New()
	claim := &db_models.Claim{
		BaseModel:  db_models.BaseModel{ID: uuid.New(), CreatedAt: time.Now().Unix()},
		ClaimantID: claimant,
		Status:     db_models.ClaimStatusPending,
	}
	claimRepo := newFakeClaimRepo()
	claimRepo.claims[claim.ID] = claim

	service := NewClaimService(claimRepo, newFakePolicyRepo(), &fakeSubRepo{}, &fakePaymentRepo{})

	steps, err := service.Timeline(context.Background(), claim.ID, claimant)
	require.NoError(t, err)
	require.Len(t, steps, 2)
	assert.Equal(t, "Submitted", steps[0].Label)
}

func TestTimelineForeignClaimNotFound(t *testing.T) {
	claim := &db_models.Claim{
		BaseModel:  db_models.BaseModel{ID: uuid.New(), CreatedAt: time.Now().Unix()},
		ClaimantID: uuid.New(),
		Status:     db_models.ClaimStatusPending,
	}
	claimRepo := newFakeClaimRepo()
	claimRepo.claims[claim.ID] = claim

	service := NewClaimService(claimRepo, newFakePolicyRepo(), &fakeSubRepo{}, &fakePaymentRepo{})

	// Someone else's claim reads as absent, not as forbidden.
	_, err := service.Timeline(context.Background(), claim.ID, uuid.New())
	assert.ErrorIs(t, err, utils.ErrClaimNotFound)
}

func TestProjectTimelinePendingClaim(t *testing.T) {
	claim := &db_models.Claim{
		BaseModel: db_models.BaseModel{CreatedAt: time.Now().Unix()},
		Status:    db_models.ClaimStatusPending,
	}

	steps := ProjectTimeline(claim, nil)
	require.Len(t, steps, 2)
	assert.Equal(t, "Submitted", steps[0].Label)
	assert.Equal(t, "done", steps[0].Status)
	assert.Equal(t, "Pending Review", steps[1].Label)
	assert.Equal(t, "in-progress", steps[1].Status)
}

func TestProjectTimelineApprovedAndPaid(t *testing.T) {
	now := time.Now().Unix()
	claim := &db_models.Claim{
		BaseModel:    db_models.BaseModel{CreatedAt: now},
		Status:       db_models.ClaimStatusApproved,
		ApprovalDate: &now,
	}
	payment := &db_models.Payment{
		BaseModel: db_models.BaseModel{CreatedAt: now},
		IsPaid:    true,
	}

	steps := ProjectTimeline(claim, payment)
	require.Len(t, steps, 4)
	assert.Equal(t, "Approved", steps[2].Label)
	assert.Equal(t, "done", steps[2].Status)
	assert.Equal(t, "Paid", steps[3].Label)
	assert.Equal(t, "done", steps[3].Status)
	assert.Equal(t, "Payment has been completed.", steps[3].Message)
}

func TestProjectTimelineApprovedAwaitingPayment(t *testing.T) {
	now := time.Now().Unix()
	claim := &db_models.Claim{
		BaseModel:    db_models.BaseModel{CreatedAt: now},
		Status:       db_models.ClaimStatusApproved,
		ApprovalDate: &now,
	}

	steps := ProjectTimeline(claim, nil)
	require.Len(t, steps, 4)
	assert.Equal(t, "Paid", steps[3].Label)
	assert.Equal(t, "waiting", steps[3].Status)
}

func TestProjectTimelineDeniedClaim(t *testing.T) {
	now := time.Now().Unix()
	claim := &db_models.Claim{
		BaseModel:    db_models.BaseModel{CreatedAt: now},
		Status:       db_models.ClaimStatusDenied,
		ApprovalDate: &now,
	}

	steps := ProjectTimeline(claim, nil)
	require.Len(t, steps, 3)
	assert.Equal(t, "Denied", steps[2].Label)
	assert.Equal(t, "Claim was denied.", steps[2].Message)
}
