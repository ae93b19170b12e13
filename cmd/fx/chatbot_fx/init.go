package chatbot_fx

import (
	"log"
	"os"
	"strings"
	"time"

	"go.uber.org/fx"

	"insura/internal/api/controllers"
	"insura/internal/repositories"
	"insura/internal/services"
	mem "insura/pkg/memcache"
	"insura/pkg/utils"
)

var Module = fx.Provide(
	ProvideChatClient,
	provideSessionStore,
	provideInteractionLogger,
	provideChatbotService,
	provideChatbotController)

// ChatConfig holds configuration for the completion client.
type ChatConfig struct {
	Provider string
	APIKey   string
	BaseURL  string
	Model    string
}

// ProvideChatClient creates a chat client based on environment variables.
// A missing API key yields a nil client; the assistant then degrades to its
// unavailable message instead of refusing to boot.
func ProvideChatClient() utils.ChatClientInterface {
	config := getChatConfig()

	if config.APIKey == "" {
		log.Printf("no API key configured for chat provider %q, assistant disabled", config.Provider)
		return nil
	}

	log.Printf("Initializing %s chat client with model: %s", config.Provider, config.Model)

	switch strings.ToLower(config.Provider) {
	case "openai", "groq":
		return utils.NewOpenAIChatClient(config.APIKey, config.BaseURL, config.Model)
	case "gemini":
		client, err := utils.NewGeminiChatClient(config.APIKey, config.Model)
		if err != nil {
			log.Printf("failed to create Gemini client: %v, assistant disabled", err)
			return nil
		}
		return client
	default:
		log.Printf("unsupported chat provider: %s, assistant disabled", config.Provider)
		return nil
	}
}

func provideSessionStore() mem.ChatSessionStore {
	return mem.NewChatSessions(30 * time.Minute)
}

func provideInteractionLogger() services.InteractionLogger {
	return services.NewFileInteractionLog(os.Getenv("CHAT_LOG_FILE"))
}

func provideChatbotService(
	client utils.ChatClientInterface,
	sessions mem.ChatSessionStore,
	categoryRepo repositories.CategoryRepository,
	policyRepo repositories.PolicyRepository,
	interactions services.InteractionLogger,
) services.ChatbotServiceInterface {
	return services.NewChatbotService(client, sessions, categoryRepo, policyRepo, interactions)
}

func provideChatbotController(chatbotService services.ChatbotServiceInterface) *controllers.ChatbotController {
	return controllers.NewChatbotController(chatbotService)
}

// getChatConfig reads configuration from environment variables.
func getChatConfig() ChatConfig {
	provider := getEnvWithDefault("CHAT_PROVIDER", "groq")

	var apiKey, baseURL, model string

	switch strings.ToLower(provider) {
	case "openai":
		apiKey = os.Getenv("OPENAI_API_KEY")
		model = getEnvWithDefault("OPENAI_MODEL", "gpt-4o-mini")
	case "groq":
		apiKey = os.Getenv("GROQ_API_KEY")
		baseURL = getEnvWithDefault("GROQ_BASE_URL", "https://api.groq.com/openai/v1")
		model = getEnvWithDefault("GROQ_MODEL", "llama3-70b-8192")
	case "gemini":
		apiKey = os.Getenv("GEMINI_API_KEY")
		model = getEnvWithDefault("GEMINI_MODEL", "gemini-1.5-flash")
	}

	return ChatConfig{
		Provider: provider,
		APIKey:   apiKey,
		BaseURL:  baseURL,
		Model:    model,
	}
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
