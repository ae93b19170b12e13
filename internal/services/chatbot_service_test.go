package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"insura/internal/models/db_models"
	mem "insura/pkg/memcache"
	"insura/pkg/utils"
)

type scriptedChatClient struct {
	reply string
	err   error

	lastTranscript []utils.ChatMessage
}

func (c *scriptedChatClient) Complete(ctx context.Context, messages []utils.ChatMessage) (string, error) {
	c.lastTranscript = messages
	return c.reply, c.err
}

type fakeCategoryRepo struct {
	categories []db_models.Category
}

func (f *fakeCategoryRepo) GetAll(ctx context.Context) ([]db_models.Category, error) {
	return f.categories, nil
}

type recordingInteractionLog struct {
	entries []InteractionEntry
}

func (r *recordingInteractionLog) Log(userInput, label, answer string) error {
	r.entries = append(r.entries, InteractionEntry{UserInput: userInput, Tag: label, AIResponse: answer})
	return nil
}

func chatbotFixture(client utils.ChatClientInterface) (*ChatbotService, *fakePolicyRepo, *recordingInteractionLog, db_models.Category) {
	category := db_models.Category{
		BaseModel: db_models.BaseModel{ID: uuid.New()},
		Name:      "Auto",
	}
	policyRepo := newFakePolicyRepo(&db_models.InsurancePolicy{
		BaseModel:  db_models.BaseModel{ID: uuid.New()},
		CategoryID: category.ID,
		Name:       "Roadstar Auto Cover",
		IsActive:   true,
	})
	logRecorder := &recordingInteractionLog{}

	service := NewChatbotService(
		client,
		mem.NewChatSessions(time.Minute),
		&fakeCategoryRepo{categories: []db_models.Category{category}},
		policyRepo,
		logRecorder,
	).(*ChatbotService)

	return service, policyRepo, logRecorder, category
}

func TestInteractLabeledReplyAttachesPolicies(t *testing.T) {
	client := &scriptedChatClient{reply: `{"label": "Auto", "answer": "We cover collisions and theft."}`}
	service, _, logRecorder, _ := chatbotFixture(client)

	resp, err := service.Interact(context.Background(), "do you have car insurance?", "s1")
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, "s1", resp.SessionID)

	labeled, ok := resp.ChatbotResponse.(labeledReply)
	require.True(t, ok)
	assert.Equal(t, "Auto", labeled.Label)
	assert.Equal(t, "We cover collisions and theft.", labeled.Answer)

	require.NotNil(t, resp.PoliciesResponse)
	require.Len(t, resp.PoliciesResponse.Policies, 1)
	assert.Equal(t, "Roadstar Auto Cover", resp.PoliciesResponse.Policies[0].Name)

	require.Len(t, logRecorder.entries, 1)
	assert.Equal(t, "Auto", logRecorder.entries[0].Tag)
	assert.Equal(t, "do you have car insurance?", logRecorder.entries[0].UserInput)
}

func TestInteractPlainReplyPassesThrough(t *testing.T) {
	client := &scriptedChatClient{reply: "Insurance spreads risk across many policyholders."}
	service, _, logRecorder, _ := chatbotFixture(client)

	resp, err := service.Interact(context.Background(), "what is insurance?", "s1")
	require.NoError(t, err)
	assert.Equal(t, "Insurance spreads risk across many policyholders.", resp.ChatbotResponse)
	assert.Nil(t, resp.PoliciesResponse)
	assert.Empty(t, logRecorder.entries)
}

func TestInteractUnknownLabelIsNotCategorized(t *testing.T) {
	client := &scriptedChatClient{reply: `{"label": "Pet", "answer": "We might cover pets."}`}
	service, _, logRecorder, _ := chatbotFixture(client)

	resp, err := service.Interact(context.Background(), "pet insurance?", "s1")
	require.NoError(t, err)
	// Unrecognized labels fall back to the raw reply.
	assert.Equal(t, client.reply, resp.ChatbotResponse)
	assert.Nil(t, resp.PoliciesResponse)
	assert.Empty(t, logRecorder.entries)
}

func TestInteractValidLabelWithoutMatchingCategory(t *testing.T) {
	client := &scriptedChatClient{reply: `{"label": "Travel", "answer": "Travel cover details."}`}
	service, _, _, _ := chatbotFixture(client)

	resp, err := service.Interact(context.Background(), "travel insurance?", "s1")
	require.NoError(t, err)
	require.NotNil(t, resp.PoliciesResponse)
	assert.Equal(t, "We don't offer these type of policies yet", resp.PoliciesResponse.Message)
	assert.Empty(t, resp.PoliciesResponse.Policies)
}

func TestInteractUpstreamErrorDegradesToApology(t *testing.T) {
	client := &scriptedChatClient{err: errors.New("rate limited")}
	service, _, _, _ := chatbotFixture(client)

	resp, err := service.Interact(context.Background(), "hello", "s1")
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, apologyMessage, resp.ChatbotResponse)
}

func TestInteractWithoutConfiguredClient(t *testing.T) {
	service, _, _, _ := chatbotFixture(nil)

	resp, err := service.Interact(context.Background(), "hello", "")
	require.NoError(t, err)
	assert.Equal(t, "Sorry, the AI service is currently unavailable.", resp.ChatbotResponse)
	assert.Equal(t, "default", resp.SessionID)
}

func TestInteractSeedsSystemPromptAndKeepsHistory(t *testing.T) {
	client := &scriptedChatClient{reply: "Hello there."}
	service, _, _, _ := chatbotFixture(client)

	_, err := service.Interact(context.Background(), "hi", "s1")
	require.NoError(t, err)

	require.NotEmpty(t, client.lastTranscript)
	assert.Equal(t, utils.RoleSystem, client.lastTranscript[0].Role)
	assert.Contains(t, client.lastTranscript[0].Content, "insurance assistant")

	_, err = service.Interact(context.Background(), "tell me more", "s1")
	require.NoError(t, err)

	// system + first user + first assistant + second user
	require.Len(t, client.lastTranscript, 4)
	assert.Equal(t, "hi", client.lastTranscript[1].Content)
	assert.Equal(t, "Hello there.", client.lastTranscript[2].Content)
	assert.Equal(t, "tell me more", client.lastTranscript[3].Content)
}
