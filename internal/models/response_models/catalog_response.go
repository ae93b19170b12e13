package response_models

import "github.com/google/uuid"

type CategoryResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type PolicyResponse struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	PremiumCoverage float64   `json:"premium_coverage"`
	RegularCoverage float64   `json:"regular_coverage"`
	PremiumPrice    float64   `json:"premium_price"`
	RegularPrice    float64   `json:"regular_price"`
	Duration        string    `json:"duration"`
	Perils          []string  `json:"perils,omitempty"`
	Company         string    `json:"company"`
	Category        string    `json:"category"`
}
