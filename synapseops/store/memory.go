package store

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryStore keeps transcripts in process memory. Suited to the widget
// prototype and to tests; everything is lost on restart.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string][]Message
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string][]Message)}
}

func (s *MemoryStore) Append(ctx context.Context, sessionID, content string, isUser bool) (*Message, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyContent
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	msg := Message{
		ID:        uuid.New().String(),
		Content:   content,
		IsUser:    isUser,
		SessionID: sessionID,
		CreatedAt: time.Now().UTC(),
	}
	msgs := s.sessions[sessionID]
	// Keep creation times non-decreasing even if the wall clock steps back.
	if n := len(msgs); n > 0 && msg.CreatedAt.Before(msgs[n-1].CreatedAt) {
		msg.CreatedAt = msgs[n-1].CreatedAt
	}
	s.sessions[sessionID] = append(msgs, msg)
	return &msg, nil
}

func (s *MemoryStore) List(ctx context.Context, sessionID string) ([]Message, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	msgs := s.sessions[sessionID]
	out := make([]Message, len(msgs))
	copy(out, msgs)
	return out, nil
}
