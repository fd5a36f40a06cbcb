package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"synapseops/synapseops/config"
	"synapseops/synapseops/store"
)

type MinIOClient struct {
	client *minio.Client
	bucket string
}

// TranscriptObject is the archived form of one session's transcript.
type TranscriptObject struct {
	SessionID  string          `json:"sessionId"`
	Messages   []store.Message `json:"messages"`
	ArchivedAt time.Time       `json:"archivedAt"`
}

func NewMinIOClient(cfg config.Config) (*MinIOClient, error) {
	// Use insecure for local (no HTTPS)
	bucket := cfg.MinIOBucket
	client, err := minio.New(
		cfg.MinIOEndpoint,
		&minio.Options{
			Creds:  credentials.NewStaticV4(cfg.MinIOAccessKey, cfg.MinIOSecretKey, ""),
			Secure: false,
		},
	)
	if err != nil {
		return nil, err
	}
	// Create bucket if not exists
	exists, err := client.BucketExists(context.Background(), bucket)
	if err != nil {
		return nil, err
	}
	if !exists {
		if err := client.MakeBucket(context.Background(), bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, err
		}
	}
	return &MinIOClient{client: client, bucket: bucket}, nil
}

func (m *MinIOClient) UploadTranscript(ctx context.Context, sessionID string, msgs []store.Message) (string, error) {
	now := time.Now().UTC()
	key := filepath.Join("transcripts", fmt.Sprintf("%s-%d.json", sessionID, now.Unix()))

	obj := TranscriptObject{
		SessionID:  sessionID,
		Messages:   msgs,
		ArchivedAt: now,
	}
	data, err := json.Marshal(obj)
	if err != nil {
		return "", err
	}

	_, err = m.client.PutObject(ctx, m.bucket, key, bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: "application/json"})
	if err != nil {
		return "", err
	}

	return key, nil
}
