package chat

import (
	"sync"

	"github.com/google/uuid"

	"github.com/whytorch/travel-planner-api/internal/types"
)

// SessionStore keeps per-session conversation history in memory. Sessions
// live for the process lifetime; there is no eviction yet.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string][]types.ChatTurn
}

// NewSessionStore creates an empty store.
func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[string][]types.ChatTurn)}
}

// Resolve returns the history for the session, creating a fresh session
// when id is empty or unknown. The returned id identifies the session the
// history belongs to.
func (s *SessionStore) Resolve(id string) (string, []types.ChatTurn) {
	if id == "" {
		return uuid.NewString(), nil
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	history := s.sessions[id]
	out := make([]types.ChatTurn, len(history))
	copy(out, history)
	return id, out
}

// Append records one completed exchange on the session.
func (s *SessionStore) Append(id string, turn types.ChatTurn) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[id] = append(s.sessions[id], turn)
}
