package memory

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"smart-negotiator-be/internal/repository/contract"
	"smart-negotiator-be/pkg/store"

	"github.com/redis/go-redis/v9"
)

const sessionContextTTL = 1 * time.Hour

// RedisSessionContextRepository is the multi-instance alternative to the
// in-process cache. Enabled with SESSION_STORE=redis.
type RedisSessionContextRepository struct {
	client *redis.Client
}

func NewRedisSessionContextRepository(client *redis.Client) contract.SessionContextRepository {
	return &RedisSessionContextRepository{client: client}
}

func (r *RedisSessionContextRepository) key(sessionId string) string {
	return fmt.Sprintf("session:ctx:%s", sessionId)
}

func (r *RedisSessionContextRepository) Get(ctx context.Context, sessionId string) (*store.DialogueContext, error) {
	data, err := r.client.Get(ctx, r.key(sessionId)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read session context: %w", err)
	}

	var dialogueCtx store.DialogueContext
	if err := json.Unmarshal(data, &dialogueCtx); err != nil {
		return nil, fmt.Errorf("failed to decode session context: %w", err)
	}
	return &dialogueCtx, nil
}

func (r *RedisSessionContextRepository) Save(ctx context.Context, dialogueCtx *store.DialogueContext) error {
	data, err := json.Marshal(dialogueCtx)
	if err != nil {
		return fmt.Errorf("failed to encode session context: %w", err)
	}
	return r.client.Set(ctx, r.key(dialogueCtx.SessionID), data, sessionContextTTL).Err()
}

func (r *RedisSessionContextRepository) Delete(ctx context.Context, sessionId string) error {
	return r.client.Del(ctx, r.key(sessionId)).Err()
}
