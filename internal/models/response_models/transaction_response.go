package response_models

type TransactionResponse struct {
	Amount             float64 `json:"amount"`
	Type               string  `json:"type"`
	MomoNumber         string  `json:"momo_number"`
	Timestamp          string  `json:"timestamp"`
	PolicyName         string  `json:"policy_name"`
	PolicyPaymentCount int64   `json:"policy_payment_count"`
}

type DashboardSummary struct {
	ActivePolicies int64   `json:"active_policies"`
	TotalClaims    int64   `json:"total_claims"`
	PendingClaims  int64   `json:"pending_claims"`
	TotalPaid      float64 `json:"total_paid"`
}
