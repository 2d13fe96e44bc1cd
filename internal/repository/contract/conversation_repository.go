package contract

import (
	"context"

	"smart-negotiator-be/internal/entity"
	"smart-negotiator-be/internal/repository/specification"
)

type ConversationRepository interface {
	Create(ctx context.Context, message *entity.ConversationMessage) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ConversationMessage, error)
	DeleteByUserEmail(ctx context.Context, userEmail string) (int64, error)
}
