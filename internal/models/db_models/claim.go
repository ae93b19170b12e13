package db_models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type ClaimStatus string

const (
	ClaimStatusSubmitted ClaimStatus = "Submitted"
	ClaimStatusPending   ClaimStatus = "Pending"
	ClaimStatusApproved  ClaimStatus = "Approved"
	ClaimStatusDenied    ClaimStatus = "Denied"
)

type Claim struct {
	BaseModel
	PolicyID   uuid.UUID `gorm:"index"`
	ClaimantID uuid.UUID `gorm:"index"`

	ClaimNumber string `gorm:"size:50;uniqueIndex"`
	Title       string `gorm:"size:100"`
	Description string

	ClaimAmount    float64  `gorm:"type:decimal(15,2)"`
	PayoutAmount   *float64 `gorm:"type:decimal(15,2)"`
	AdjustmentNote *string

	Status       ClaimStatus `gorm:"size:20;default:Pending;index"`
	ApprovalDate *int64

	// Structured copy of the incident fields the description is built from.
	Incident datatypes.JSON `gorm:"type:jsonb;default:'{}'"`

	Policy    InsurancePolicy `gorm:"foreignKey:PolicyID"`
	Claimant  Account         `gorm:"foreignKey:ClaimantID"`
	Documents []ClaimDocument `gorm:"foreignKey:ClaimID"`
}

type ClaimDocument struct {
	BaseModel
	ClaimID uuid.UUID `gorm:"index"`

	FileName     string
	OriginalName string

	Claim Claim `gorm:"foreignKey:ClaimID"`
}
