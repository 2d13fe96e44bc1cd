package events

import "time"

// Event defines the contract for all system events.
type Event interface {
	// EventType returns the unique code for this event (e.g., "CHAT_TURN").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

// Event type codes published to the bus.
const (
	TypeChatTurn            = "CHAT_TURN"
	TypeThresholdsUpdated   = "NEGOTIATION_THRESHOLDS_UPDATED"
	TypeReindexCompleted    = "PRODUCT_REINDEX_COMPLETED"
	TypeCartItemAddedByChat = "CART_ITEM_ADDED_BY_CHAT"
)

// NewChatTurn builds the audit event for a completed chat turn.
func NewChatTurn(userEmail, intent string, productID *uint) Event {
	data := map[string]interface{}{
		"user_email": userEmail,
		"intent":     intent,
	}
	if productID != nil {
		data["product_id"] = *productID
	}
	return BaseEvent{Type: TypeChatTurn, Data: data, OccurredAt: time.Now()}
}
