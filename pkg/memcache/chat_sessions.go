package mem

import (
	"sync"
	"time"

	"insura/pkg/utils"
)

// maxTurns is the number of non-system messages retained per session.
const maxTurns = 18

type ChatSessionStore interface {
	// History returns a copy of the session transcript, oldest first.
	History(sessionID string) []utils.ChatMessage

	// Append adds messages to the session transcript and trims it to the
	// system message plus the most recent turns.
	Append(sessionID string, messages ...utils.ChatMessage)
}

type session struct {
	transcript []utils.ChatMessage
	expiresAt  time.Time
}

type ChatSessions struct {
	mu   sync.RWMutex
	ttl  time.Duration
	data map[string]*session
}

func NewChatSessions(ttl time.Duration) *ChatSessions {
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	return &ChatSessions{
		ttl:  ttl,
		data: make(map[string]*session),
	}
}

func (s *ChatSessions) History(sessionID string) []utils.ChatMessage {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.data[sessionID]
	if !ok || time.Now().After(sess.expiresAt) {
		return nil
	}

	out := make([]utils.ChatMessage, len(sess.transcript))
	copy(out, sess.transcript)
	return out
}

func (s *ChatSessions) Append(sessionID string, messages ...utils.ChatMessage) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.data[sessionID]
	if !ok || time.Now().After(sess.expiresAt) {
		sess = &session{}
		s.data[sessionID] = sess
	}

	sess.transcript = append(sess.transcript, messages...)
	sess.transcript = trimTranscript(sess.transcript)
	sess.expiresAt = time.Now().Add(s.ttl)
}

// trimTranscript keeps the leading system message and the last maxTurns
// messages so long sessions do not grow without bound.
func trimTranscript(transcript []utils.ChatMessage) []utils.ChatMessage {
	if len(transcript) == 0 {
		return transcript
	}

	head := 0
	if transcript[0].Role == utils.RoleSystem {
		head = 1
	}

	tail := transcript[head:]
	if len(tail) <= maxTurns {
		return transcript
	}

	trimmed := make([]utils.ChatMessage, 0, head+maxTurns)
	trimmed = append(trimmed, transcript[:head]...)
	trimmed = append(trimmed, tail[len(tail)-maxTurns:]...)
	return trimmed
}
