package db_models

const (
	RoleUser    = "user"
	RoleInsurer = "insurer"
)

type Account struct {
	BaseModel
	Name         string
	Email        string `gorm:"unique"`
	PasswordHash string
	Role         string `gorm:"default:user;index"`

	Subscriptions []PolicySubscription `gorm:"foreignKey:AccountID"`
	Claims        []Claim              `gorm:"foreignKey:ClaimantID"`
}
