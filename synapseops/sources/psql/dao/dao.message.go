package dao

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"synapseops/synapseops/sources/psql/models"
	"synapseops/synapseops/store"
)

// MessageDAO is the Postgres-backed transcript store.
type MessageDAO struct {
	DB *gorm.DB
}

func NewMessageDAO(db *gorm.DB) *MessageDAO {
	return &MessageDAO{DB: db}
}

func (dao *MessageDAO) Append(ctx context.Context, sessionID, content string, isUser bool) (*store.Message, error) {
	if strings.TrimSpace(content) == "" {
		return nil, store.ErrEmptyContent
	}
	row := models.Message{
		ID:        uuid.New(),
		Content:   content,
		IsUser:    isUser,
		SessionID: sessionID,
	}
	if err := dao.DB.WithContext(ctx).Create(&row).Error; err != nil {
		return nil, fmt.Errorf("insert message: %w", err)
	}
	msg := toDomain(row)
	return &msg, nil
}

func (dao *MessageDAO) List(ctx context.Context, sessionID string) ([]store.Message, error) {
	var rows []models.Message
	err := dao.DB.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("created_at ASC, seq ASC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}
	out := make([]store.Message, 0, len(rows))
	for _, row := range rows {
		out = append(out, toDomain(row))
	}
	return out, nil
}

func toDomain(row models.Message) store.Message {
	return store.Message{
		ID:        row.ID.String(),
		Content:   row.Content,
		IsUser:    row.IsUser,
		SessionID: row.SessionID,
		CreatedAt: row.CreatedAt,
	}
}
