package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	errx "github.com/storefront-support/server/internal/core/error"
	logx "github.com/storefront-support/server/pkg/logger"
)

// RedisMemoryStore keeps product memory in Redis as one JSON value per
// conversation, expiring with the conversation TTL.
type RedisMemoryStore struct {
	rdb redis.Cmdable
	ttl time.Duration
}

func NewRedisMemoryStore(rdb redis.Cmdable, ttl time.Duration) *RedisMemoryStore {
	return &RedisMemoryStore{rdb: rdb, ttl: ttl}
}

func (s *RedisMemoryStore) memoryKey(conversationID string) string {
	return fmt.Sprintf("conversation:%s:products", conversationID)
}

func (s *RedisMemoryStore) Save(ctx context.Context, conversationID string, mem ProductMemory) error {
	b, err := json.Marshal(mem)
	if err != nil {
		return fmt.Errorf("marshal product memory: %w", err)
	}
	if err := s.rdb.Set(ctx, s.memoryKey(conversationID), b, s.ttl).Err(); err != nil {
		logx.Error().Err(err).Str("conversation_id", conversationID).Msg("failed to save product memory")
		return errx.WrapRedis(err)
	}
	return nil
}

func (s *RedisMemoryStore) Load(ctx context.Context, conversationID string) (ProductMemory, error) {
	raw, err := s.rdb.Get(ctx, s.memoryKey(conversationID)).Result()
	if err == redis.Nil {
		return ProductMemory{}, ErrNotFound
	}
	if err != nil {
		logx.Error().Err(err).Str("conversation_id", conversationID).Msg("failed to load product memory")
		return ProductMemory{}, errx.WrapRedis(err)
	}

	var mem ProductMemory
	if err := json.Unmarshal([]byte(raw), &mem); err != nil {
		return ProductMemory{}, fmt.Errorf("unmarshal product memory: %w", err)
	}
	return mem, nil
}

func (s *RedisMemoryStore) Clear(ctx context.Context, conversationID string) error {
	if err := s.rdb.Del(ctx, s.memoryKey(conversationID)).Err(); err != nil {
		return errx.WrapRedis(err)
	}
	return nil
}

var _ MemoryStore = (*RedisMemoryStore)(nil)
