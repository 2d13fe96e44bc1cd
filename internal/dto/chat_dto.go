package dto

import (
	"time"

	"github.com/google/uuid"
)

type SendMessageRequest struct {
	Message   string `json:"message" validate:"required,max=2000"`
	SessionId string `json:"session_id,omitempty" validate:"omitempty,max=64"`
	// ProductId pins the turn to a product the client is showing, overriding
	// whatever the session last referenced.
	ProductId *uint `json:"product_id,omitempty"`
}

type SendMessageResponse struct {
	Reply     string `json:"reply"`
	Intent    string `json:"intent"`
	SessionId string `json:"session_id"`
	ProductId *uint  `json:"product_id,omitempty"`
	Matched   bool   `json:"matched"`
}

type ChatHistoryItem struct {
	Id        uuid.UUID `json:"id"`
	Role      string    `json:"role"`
	Message   string    `json:"message"`
	ProductId *uint     `json:"product_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type ClearHistoryResponse struct {
	Deleted int64 `json:"deleted"`
}
