package entity

import (
	"time"

	"github.com/google/uuid"
)

type ConversationMessage struct {
	Id        uuid.UUID
	UserEmail string
	SessionId string
	ProductId *uint
	Role      string
	Message   string
	CreatedAt time.Time
}
