package db_models

import "github.com/google/uuid"

type SubscriptionStatus string

const (
	SubStatusActive   SubscriptionStatus = "Active"
	SubStatusOnPause  SubscriptionStatus = "On Pause"
	SubStatusComplete SubscriptionStatus = "Complete"
)

// PolicySubscription records an account's enrollment in a policy plan.
type PolicySubscription struct {
	BaseModel
	AccountID uuid.UUID `gorm:"index"`
	PolicyID  uuid.UUID `gorm:"index"`

	PlanType       PlanType           `gorm:"size:10"`
	DurationMonths int                `gorm:"not null"`
	MomoNumber     string             `gorm:"size:20"`
	Status         SubscriptionStatus `gorm:"size:20;default:Active;index"`
	ExpiresAt      int64              `gorm:"not null"`

	Account Account         `gorm:"foreignKey:AccountID"`
	Policy  InsurancePolicy `gorm:"foreignKey:PolicyID"`
}
