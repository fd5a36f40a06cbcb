package controllers

import (
	"context"

	"synapseops/synapseops/resolver"
	"synapseops/synapseops/store"
	"synapseops/synapseops/utils/logging"
	"synapseops/synapseops/utils/types"
)

// MessageController is the message gateway: it persists submissions and, for
// user-authored ones, resolves and persists the assistant reply. It is the
// only layer that turns internal failures into client responses.
type MessageController struct {
	transcripts store.TranscriptStore
	resolver    resolver.Resolver
}

func NewMessageController(transcripts store.TranscriptStore, res resolver.Resolver) *MessageController {
	return &MessageController{transcripts: transcripts, resolver: res}
}

// Submit appends the message and, iff it is user-authored, the resolved
// assistant reply. The user message is persisted before resolution, so it is
// never lost to a reply failure; resolvers always return some text.
func (c *MessageController) Submit(ctx context.Context, req types.SubmitMessageRequest) (*types.SubmitMessageResponse, error) {
	defer logging.LogDuration(ctx, "message_submit")()

	userMsg, err := c.transcripts.Append(ctx, req.SessionID, req.Content, req.IsUser)
	if err != nil {
		return nil, err
	}
	resp := &types.SubmitMessageResponse{UserMessage: *userMsg}
	if !req.IsUser {
		return resp, nil
	}

	reply := c.resolver.Resolve(ctx, req.SessionID, req.Content)
	assistantMsg, err := c.transcripts.Append(ctx, req.SessionID, reply, false)
	if err != nil {
		return nil, err
	}
	resp.AssistantMessage = assistantMsg
	return resp, nil
}

func (c *MessageController) List(ctx context.Context, sessionID string) ([]store.Message, error) {
	return c.transcripts.List(ctx, sessionID)
}
