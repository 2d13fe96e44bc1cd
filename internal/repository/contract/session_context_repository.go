package contract

import (
	"context"

	"smart-negotiator-be/pkg/store"
)

// SessionContextRepository keeps short-lived dialogue context between turns,
// most importantly the last product a user was talking about.
type SessionContextRepository interface {
	Get(ctx context.Context, sessionId string) (*store.DialogueContext, error)
	Save(ctx context.Context, dialogueCtx *store.DialogueContext) error
	Delete(ctx context.Context, sessionId string) error
}
