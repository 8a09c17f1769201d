package chat

import (
	"sync"

	"github.com/google/uuid"
	"github.com/tmc/langchaingo/llms"
)

// SessionStore keeps per-session conversation history in memory. The
// history holds only user and assistant messages; tool traffic is not
// retained between turns.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string][]llms.MessageContent
	limit    int
}

// NewSessionStore creates a session store keeping at most limit
// messages per session.
func NewSessionStore(limit int) *SessionStore {
	if limit <= 0 {
		limit = 20
	}
	return &SessionStore{
		sessions: make(map[string][]llms.MessageContent),
		limit:    limit,
	}
}

// EnsureSessionID returns the given session ID, or a fresh one when
// the caller did not supply any.
func EnsureSessionID(id string) string {
	if id == "" {
		return uuid.NewString()
	}
	return id
}

// History returns a copy of the session's messages
func (s *SessionStore) History(id string) []llms.MessageContent {
	s.mu.RLock()
	defer s.mu.RUnlock()

	history := s.sessions[id]
	out := make([]llms.MessageContent, len(history))
	copy(out, history)
	return out
}

// Append adds messages to the session, trimming the oldest beyond the
// configured limit.
func (s *SessionStore) Append(id string, messages ...llms.MessageContent) {
	s.mu.Lock()
	defer s.mu.Unlock()

	history := append(s.sessions[id], messages...)
	if len(history) > s.limit {
		history = history[len(history)-s.limit:]
	}
	s.sessions[id] = history
}

// Clear drops a session's history
func (s *SessionStore) Clear(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
}
