package controllers

import (
	"context"

	"synapseops/synapseops/store"
)

// TranscriptArchiver writes a transcript somewhere durable and returns the
// object key. Backed by object storage in production.
type TranscriptArchiver interface {
	UploadTranscript(ctx context.Context, sessionID string, msgs []store.Message) (string, error)
}

// ArchiveController exports session transcripts to object storage.
type ArchiveController struct {
	archiver    TranscriptArchiver
	transcripts store.TranscriptStore
}

func NewArchiveController(archiver TranscriptArchiver, transcripts store.TranscriptStore) *ArchiveController {
	return &ArchiveController{archiver: archiver, transcripts: transcripts}
}

func (c *ArchiveController) Archive(ctx context.Context, sessionID string) (string, error) {
	msgs, err := c.transcripts.List(ctx, sessionID)
	if err != nil {
		return "", err
	}
	return c.archiver.UploadTranscript(ctx, sessionID, msgs)
}
