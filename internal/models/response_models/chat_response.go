package response_models

// ChatbotResponse is either the raw assistant text (string) or, when the
// reply carried a recognized category label, the parsed label/answer object.
type ChatResponse struct {
	Success          bool             `json:"success"`
	ChatbotResponse  interface{}      `json:"chatbot_response"`
	PoliciesResponse *PoliciesByLabel `json:"policies_response,omitempty"`
	SessionID        string           `json:"session_id"`
}

type PoliciesByLabel struct {
	Message  string           `json:"message,omitempty"`
	Policies []PolicyResponse `json:"policies,omitempty"`
}
