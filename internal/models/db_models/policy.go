package db_models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
)

type PlanType string

const (
	PlanPremium PlanType = "Premium"
	PlanRegular PlanType = "Regular"
)

type InsurancePolicy struct {
	BaseModel
	CompanyID  uuid.UUID `gorm:"index"`
	CategoryID uuid.UUID `gorm:"index"`

	Name        string
	Description string

	// Per-tier coverage ceiling (max payout) and monthly price.
	PremiumCoverage float64 `gorm:"type:decimal(15,2)"`
	RegularCoverage float64 `gorm:"type:decimal(15,2)"`
	PremiumPrice    float64 `gorm:"type:decimal(10,2)"`
	RegularPrice    float64 `gorm:"type:decimal(10,2)"`

	Duration string
	Perils   pq.StringArray `gorm:"type:text[]"`
	IsActive bool           `gorm:"default:true;index"`

	Company  Company  `gorm:"foreignKey:CompanyID"`
	Category Category `gorm:"foreignKey:CategoryID"`
}

// CoverageFor returns the payout ceiling for a plan tier.
func (p *InsurancePolicy) CoverageFor(plan PlanType) float64 {
	if plan == PlanPremium {
		return p.PremiumCoverage
	}
	return p.RegularCoverage
}

// MonthlyPriceFor returns the monthly charge for a plan tier.
func (p *InsurancePolicy) MonthlyPriceFor(plan PlanType) float64 {
	if plan == PlanPremium {
		return p.PremiumPrice
	}
	return p.RegularPrice
}
