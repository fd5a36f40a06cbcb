package controllers

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/lexruntimev2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"synapseops/synapseops/resolver"
	"synapseops/synapseops/store"
	"synapseops/synapseops/utils/types"
)

const helpResponse = "I'm here to assist you! SynapseOps provides intelligent automation and AI-driven solutions. What specific area would you like to explore?"

func newController() (*MessageController, *store.MemoryStore) {
	s := store.NewMemoryStore()
	return NewMessageController(s, resolver.NewRulesResolver()), s
}

func TestSubmitUserMessageGetsReply(t *testing.T) {
	ctrl, _ := newController()

	resp, err := ctrl.Submit(context.Background(), types.SubmitMessageRequest{
		Content: "I need help", IsUser: true, SessionID: "s1",
	})
	require.NoError(t, err)

	assert.Equal(t, "I need help", resp.UserMessage.Content)
	assert.True(t, resp.UserMessage.IsUser)
	require.NotNil(t, resp.AssistantMessage)
	assert.Equal(t, helpResponse, resp.AssistantMessage.Content)
	assert.False(t, resp.AssistantMessage.IsUser)

	msgs, err := ctrl.List(context.Background(), "s1")
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	assert.Equal(t, "I need help", msgs[0].Content)
	assert.Equal(t, helpResponse, msgs[1].Content)
}

func TestSubmitAssistantMessageGetsNoReply(t *testing.T) {
	ctrl, _ := newController()

	resp, err := ctrl.Submit(context.Background(), types.SubmitMessageRequest{
		Content:   "Hello! I'm your SynapseOps assistant. How can I help you today?",
		IsUser:    false,
		SessionID: "s1",
	})
	require.NoError(t, err)

	assert.Nil(t, resp.AssistantMessage)

	msgs, err := ctrl.List(context.Background(), "s1")
	require.NoError(t, err)
	assert.Len(t, msgs, 1)
}

func TestSubmitEmptyContentStoresNothing(t *testing.T) {
	ctrl, _ := newController()

	_, err := ctrl.Submit(context.Background(), types.SubmitMessageRequest{
		Content: "", IsUser: true, SessionID: "s1",
	})
	assert.ErrorIs(t, err, store.ErrEmptyContent)

	msgs, err := ctrl.List(context.Background(), "s1")
	require.NoError(t, err)
	assert.Empty(t, msgs)
}

type failingLexClient struct{}

func (failingLexClient) RecognizeText(ctx context.Context, params *lexruntimev2.RecognizeTextInput, optFns ...func(*lexruntimev2.Options)) (*lexruntimev2.RecognizeTextOutput, error) {
	return nil, errors.New("dial tcp: connection refused")
}

func TestSubmitEngineFailureStoresFallbackReply(t *testing.T) {
	s := store.NewMemoryStore()
	lex := resolver.NewLexResolver(failingLexClient{}, "bot", "alias", "en_US")
	ctrl := NewMessageController(s, lex)

	resp, err := ctrl.Submit(context.Background(), types.SubmitMessageRequest{
		Content: "book my leave", IsUser: true, SessionID: "s1",
	})
	require.NoError(t, err, "an engine failure must not abort the submission")

	require.NotNil(t, resp.AssistantMessage)
	assert.Equal(t, "Error: Connection to the assistant failed.", resp.AssistantMessage.Content)

	msgs, err := ctrl.List(context.Background(), "s1")
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	assert.Equal(t, "book my leave", msgs[0].Content)
}
