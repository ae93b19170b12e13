package db_models

// Category is a top-level insurance line (Auto, Health, Life, ...).
type Category struct {
	BaseModel
	Name string `gorm:"unique;not null"`

	Policies []InsurancePolicy `gorm:"foreignKey:CategoryID"`
}
