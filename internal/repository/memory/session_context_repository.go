package memory

import (
	"context"
	"time"

	"smart-negotiator-be/internal/repository/contract"
	"smart-negotiator-be/pkg/store"

	"github.com/patrickmn/go-cache"
)

type SessionContextRepository struct {
	cache *cache.Cache
}

func NewSessionContextRepository() contract.SessionContextRepository {
	// Create a cache with a default expiration time of 1 hour, and which
	// purges expired items every 10 minutes
	c := cache.New(1*time.Hour, 10*time.Minute)
	return &SessionContextRepository{
		cache: c,
	}
}

func (r *SessionContextRepository) Get(_ context.Context, sessionId string) (*store.DialogueContext, error) {
	if x, found := r.cache.Get(sessionId); found {
		return x.(*store.DialogueContext), nil
	}
	return nil, nil
}

func (r *SessionContextRepository) Save(_ context.Context, dialogueCtx *store.DialogueContext) error {
	r.cache.Set(dialogueCtx.SessionID, dialogueCtx, cache.DefaultExpiration)
	return nil
}

func (r *SessionContextRepository) Delete(_ context.Context, sessionId string) error {
	r.cache.Delete(sessionId)
	return nil
}
