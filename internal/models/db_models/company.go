package db_models

import "github.com/google/uuid"

type Company struct {
	BaseModel
	CategoryID uuid.UUID `gorm:"index"`
	AdminID    uuid.UUID `gorm:"index"`

	Name          string `gorm:"unique;not null"`
	Description   string
	Rating        float64 `gorm:"type:decimal(3,1);default:3.0"`
	Logo          string
	Latitude      *float64 `gorm:"type:decimal(9,6)"`
	Longitude     *float64 `gorm:"type:decimal(9,6)"`
	AllowPolicies bool     `gorm:"default:true"`
	Availability  bool     `gorm:"default:true"`

	Category Category          `gorm:"foreignKey:CategoryID"`
	Admin    Account           `gorm:"foreignKey:AdminID"`
	Policies []InsurancePolicy `gorm:"foreignKey:CompanyID"`
}
