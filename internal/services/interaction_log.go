package services

import (
	"encoding/json"
	"os"
	"sync"
	"time"
)

type InteractionEntry struct {
	Timestamp  string `json:"timestamp"`
	Tag        string `json:"tag"`
	UserInput  string `json:"user_input"`
	AIResponse string `json:"ai_response"`
	Category   string `json:"category"`
}

// InteractionLogger records each categorized chat interaction.
type InteractionLogger interface {
	Log(userInput, label, answer string) error
}

// FileInteractionLog keeps a local JSON-array file of interactions.
// Reads the whole array and rewrites it on each append; the file is
// small and only categorized interactions land here.
type FileInteractionLog struct {
	mu   sync.Mutex
	path string
}

func NewFileInteractionLog(path string) *FileInteractionLog {
	if path == "" {
		path = "chat_interactions.json"
	}
	return &FileInteractionLog{path: path}
}

func (f *FileInteractionLog) Log(userInput, label, answer string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	var entries []InteractionEntry
	if data, err := os.ReadFile(f.path); err == nil {
		// A corrupt file starts a fresh array rather than failing the chat.
		_ = json.Unmarshal(data, &entries)
	}

	entries = append(entries, InteractionEntry{
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
		Tag:        label,
		UserInput:  userInput,
		AIResponse: answer,
		Category:   label,
	})

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(f.path, data, 0o644)
}
