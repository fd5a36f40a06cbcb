package controllers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"synapseops/synapseops/store"
	"synapseops/synapseops/utils/types"
)

type fakeArchiver struct {
	sessionID string
	msgs      []store.Message
}

func (f *fakeArchiver) UploadTranscript(ctx context.Context, sessionID string, msgs []store.Message) (string, error) {
	f.sessionID = sessionID
	f.msgs = msgs
	return "transcripts/" + sessionID + ".json", nil
}

func TestArchiveUploadsWholeTranscript(t *testing.T) {
	ctrl, s := newController()

	_, err := ctrl.Submit(context.Background(), types.SubmitMessageRequest{
		Content: "I need help", IsUser: true, SessionID: "s1",
	})
	require.NoError(t, err)

	archiver := &fakeArchiver{}
	key, err := NewArchiveController(archiver, s).Archive(context.Background(), "s1")
	require.NoError(t, err)

	assert.Equal(t, "transcripts/s1.json", key)
	assert.Equal(t, "s1", archiver.sessionID)
	require.Len(t, archiver.msgs, 2)
	assert.Equal(t, "I need help", archiver.msgs[0].Content)
}
