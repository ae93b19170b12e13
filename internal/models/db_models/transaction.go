package db_models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type TransactionType string

const (
	TxnPolicyPayment TransactionType = "Policy Payment"
	TxnClaimPayout   TransactionType = "Claim Payout"
)

// Transaction is an append-only ledger entry. Rows are never updated
// or deleted once written.
type Transaction struct {
	BaseModel
	AccountID      uuid.UUID  `gorm:"index"`
	SubscriptionID *uuid.UUID `gorm:"index"` // nil for payouts on a lapsed subscription
	ClaimID        *uuid.UUID `gorm:"index"` // set for claim payouts only

	Type       TransactionType `gorm:"size:20;index"`
	Amount     float64         `gorm:"type:decimal(15,2)"`
	MomoNumber string          `gorm:"size:20"`

	Metadata datatypes.JSON `gorm:"type:jsonb;default:'{}'"`

	Account      Account            `gorm:"foreignKey:AccountID"`
	Subscription PolicySubscription `gorm:"foreignKey:SubscriptionID"`
}
