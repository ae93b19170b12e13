package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/xrash/smetrics"

	"insura/internal/models/response_models"
	"insura/internal/repositories"
	mem "insura/pkg/memcache"
	"insura/pkg/utils"
)

const apologyMessage = "Sorry, I'm having trouble processing your request right now."

// Similarity cutoff for matching a label against known category names.
const categoryMatchCutoff = 0.84

// Categories the assistant is told to tag replies with.
var validCategories = []string{
	"Disability", "Travel", "Business", "Home",
	"Auto", "Health", "Life",
}

type ChatbotServiceInterface interface {
	Interact(ctx context.Context, userInput, sessionID string) (*response_models.ChatResponse, error)
}

type ChatbotService struct {
	client       utils.ChatClientInterface
	sessions     mem.ChatSessionStore
	categoryRepo repositories.CategoryRepository
	policyRepo   repositories.PolicyRepository
	interactions InteractionLogger
}

func NewChatbotService(
	client utils.ChatClientInterface,
	sessions mem.ChatSessionStore,
	categoryRepo repositories.CategoryRepository,
	policyRepo repositories.PolicyRepository,
	interactions InteractionLogger,
) ChatbotServiceInterface {
	return &ChatbotService{
		client:       client,
		sessions:     sessions,
		categoryRepo: categoryRepo,
		policyRepo:   policyRepo,
		interactions: interactions,
	}
}

// labeledReply is the shape the system prompt asks the model to emit when
// the user asks about a recognized category.
type labeledReply struct {
	Label  string `json:"label"`
	Answer string `json:"answer"`
}

func systemPrompt() utils.ChatMessage {
	return utils.ChatMessage{
		Role: utils.RoleSystem,
		Content: fmt.Sprintf(
			"You are an insurance assistant. Help users find insurance policies. "+
				"When users ask about these categories: %s, "+
				`respond with JSON format: {"label": "category_name", "answer": "helpful_response"}. `+
				"For other questions, provide helpful general responses about insurance.",
			strings.Join(validCategories, ", ")),
	}
}

func apology(sessionID string) *response_models.ChatResponse {
	return &response_models.ChatResponse{
		Success:         true,
		ChatbotResponse: apologyMessage,
		SessionID:       sessionID,
	}
}

// Interact forwards the session transcript plus the new message to the
// completion API and maps a recognized category label to policy lookups.
// Upstream failures degrade to a generic apology, never a hard error.
func (s *ChatbotService) Interact(ctx context.Context, userInput, sessionID string) (*response_models.ChatResponse, error) {
	if sessionID == "" {
		sessionID = "default"
	}

	if s.client == nil {
		return &response_models.ChatResponse{
			Success:         true,
			ChatbotResponse: "Sorry, the AI service is currently unavailable.",
			SessionID:       sessionID,
		}, nil
	}

	history := s.sessions.History(sessionID)
	if len(history) == 0 {
		history = []utils.ChatMessage{systemPrompt()}
	}

	userMessage := utils.ChatMessage{Role: utils.RoleUser, Content: userInput}
	transcript := append(history, userMessage)

	reply, err := s.client.Complete(ctx, transcript)
	if err != nil {
		log.Printf("chat completion failed: %v", err)
		return apology(sessionID), nil
	}

	if len(history) == 1 && history[0].Role == utils.RoleSystem {
		s.sessions.Append(sessionID, history[0])
	}
	s.sessions.Append(sessionID, userMessage,
		utils.ChatMessage{Role: utils.RoleAssistant, Content: reply})

	resp := &response_models.ChatResponse{
		Success:         true,
		ChatbotResponse: reply,
		SessionID:       sessionID,
	}

	var labeled labeledReply
	if err := json.Unmarshal([]byte(reply), &labeled); err != nil || labeled.Label == "" {
		return resp, nil
	}
	if !isValidCategory(labeled.Label) {
		return resp, nil
	}

	resp.ChatbotResponse = labeled
	resp.PoliciesResponse = s.lookupPolicies(ctx, labeled.Label)

	if logErr := s.interactions.Log(userInput, labeled.Label, labeled.Answer); logErr != nil {
		log.Printf("failed to log chat interaction: %v", logErr)
	}

	return resp, nil
}

func isValidCategory(label string) bool {
	for _, category := range validCategories {
		if strings.EqualFold(category, label) {
			return true
		}
	}
	return false
}

// lookupPolicies fuzzy-matches the label against known category names and
// returns that category's active policies.
func (s *ChatbotService) lookupPolicies(ctx context.Context, label string) *response_models.PoliciesByLabel {
	noOffer := &response_models.PoliciesByLabel{Message: "We don't offer these type of policies yet"}

	categories, err := s.categoryRepo.GetAll(ctx)
	if err != nil {
		log.Printf("error fetching categories: %v", err)
		return &response_models.PoliciesByLabel{Message: "Error fetching policies"}
	}

	var best *struct {
		idx   int
		score float64
	}
	needle := strings.ToLower(label)
	for i, category := range categories {
		score := smetrics.JaroWinkler(needle, strings.ToLower(category.Name), 0.7, 4)
		if score >= categoryMatchCutoff && (best == nil || score > best.score) {
			best = &struct {
				idx   int
				score float64
			}{i, score}
		}
	}
	if best == nil {
		return noOffer
	}

	policies, err := s.policyRepo.ListActiveByCategory(ctx, categories[best.idx].ID)
	if err != nil {
		log.Printf("error fetching policies: %v", err)
		return &response_models.PoliciesByLabel{Message: "Error fetching policies"}
	}
	if len(policies) == 0 {
		return noOffer
	}

	out := &response_models.PoliciesByLabel{}
	for _, policy := range policies {
		out.Policies = append(out.Policies, ToPolicyResponse(policy))
	}
	return out
}
