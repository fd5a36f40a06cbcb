package types

import "synapseops/synapseops/store"

type SubmitMessageRequest struct {
	Content   string `json:"content"`
	IsUser    bool   `json:"isUser"`
	SessionID string `json:"sessionId"`
}

// SubmitMessageResponse carries the stored submission and, when the
// submission was user-authored, the stored assistant reply.
type SubmitMessageResponse struct {
	UserMessage      store.Message  `json:"userMessage"`
	AssistantMessage *store.Message `json:"assistantMessage,omitempty"`
}

type ArchiveResponse struct {
	Key string `json:"key"`
}
