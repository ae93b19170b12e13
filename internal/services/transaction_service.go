package services

import (
	"context"

	"github.com/google/uuid"

	"insura/internal/models/db_models"
	"insura/internal/models/response_models"
	"insura/internal/repositories"
	"insura/pkg/utils"
)

type TransactionServiceInterface interface {
	RecentTransactions(ctx context.Context, accountID uuid.UUID) ([]response_models.TransactionResponse, error)
}

type TransactionService struct {
	txnRepo repositories.TransactionRepository
}

func NewTransactionService(txnRepo repositories.TransactionRepository) TransactionServiceInterface {
	return &TransactionService{txnRepo: txnRepo}
}

func (t *TransactionService) RecentTransactions(ctx context.Context, accountID uuid.UUID) ([]response_models.TransactionResponse, error) {
	txns, err := t.txnRepo.ListByAccount(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	paymentCount, err := t.txnRepo.CountByAccountAndType(ctx, accountID, db_models.TxnPolicyPayment)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	result := make([]response_models.TransactionResponse, 0, len(txns))
	for _, txn := range txns {
		result = append(result, response_models.TransactionResponse{
			Amount:             txn.Amount,
			Type:               string(txn.Type),
			MomoNumber:         txn.MomoNumber,
			Timestamp:          utils.FormatRFC3339(utils.FromUnixSeconds(txn.CreatedAt)),
			PolicyName:         txn.Subscription.Policy.Name,
			PolicyPaymentCount: paymentCount,
		})
	}
	return result, nil
}
