package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Message is the persisted transcript row. Seq is a bigserial insertion
// counter used only as the tie-break when creation timestamps collide.
type Message struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Seq       int64     `json:"-" gorm:"autoIncrement;uniqueIndex"`
	Content   string    `json:"content" gorm:"type:text;not null"`
	IsUser    bool      `json:"isUser" gorm:"not null;default:false"`
	SessionID string    `json:"sessionId" gorm:"type:varchar(255);not null;index"`
	CreatedAt time.Time `json:"createdAt" gorm:"not null;default:CURRENT_TIMESTAMP"`
}

func (Message) BeforeCreate(tx *gorm.DB) (err error) {
	// Ensure UUID extension is enabled
	return tx.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`).Error
}
