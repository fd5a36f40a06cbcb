package store

import (
	"context"
	"errors"
	"time"
)

// ErrEmptyContent rejects blank submissions before anything is stored.
var ErrEmptyContent = errors.New("message content must not be empty")

// Message is one turn of a conversation transcript. Immutable once created.
type Message struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	IsUser    bool      `json:"isUser"`
	SessionID string    `json:"sessionId"`
	CreatedAt time.Time `json:"createdAt"`
}

// TranscriptStore is an append-only log of messages grouped by session.
// List returns messages in non-decreasing creation order; equal timestamps
// keep insertion order. An unknown session lists as empty, not as an error.
type TranscriptStore interface {
	Append(ctx context.Context, sessionID, content string, isUser bool) (*Message, error)
	List(ctx context.Context, sessionID string) ([]Message, error)
}
