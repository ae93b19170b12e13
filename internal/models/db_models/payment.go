package db_models

import "github.com/google/uuid"

// Payment is the payout record created when a claim is approved.
// The unique index on ClaimID backs the one-payment-per-claim rule.
type Payment struct {
	BaseModel
	ClaimID uuid.UUID `gorm:"uniqueIndex"`

	Amount float64 `gorm:"type:decimal(15,2)"`
	IsPaid bool    `gorm:"default:false"`
	PaidAt *int64

	Claim Claim `gorm:"foreignKey:ClaimID"`
}
