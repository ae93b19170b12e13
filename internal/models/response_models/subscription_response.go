package response_models

import "github.com/google/uuid"

type MySubscription struct {
	PolicyID uuid.UUID `json:"policy_id"`
	Policy   string    `json:"policy"`
	Plan     string    `json:"plan"`
	Duration int       `json:"duration"`
	Status   string    `json:"status"`
	JoinedOn string    `json:"joined_on"`
	Expires  string    `json:"expires"`
}

type JoinPolicyResponse struct {
	SubscriptionID uuid.UUID `json:"subscription_id"`
	MonthlyPrice   float64   `json:"monthly_price"`
	Expires        string    `json:"expires"`
}
