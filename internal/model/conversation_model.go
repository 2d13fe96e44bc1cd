package model

import (
	"time"

	"github.com/google/uuid"
)

// ConversationMessage is one chat turn side (user or bot) in the audit log.
type ConversationMessage struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserEmail string    `gorm:"type:varchar(255);not null;index"`
	SessionId string    `gorm:"type:varchar(64);index"`
	ProductId *uint     `gorm:"index"`
	Role      string    `gorm:"type:varchar(16);not null"`
	Message   string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (ConversationMessage) TableName() string {
	return "conversations"
}
