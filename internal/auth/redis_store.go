package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	errx "github.com/storefront-support/server/internal/core/error"
)

// RedisTokenStore keeps session tokens in Redis, relying on key TTLs for
// expiry.
type RedisTokenStore struct {
	rdb redis.Cmdable
	ttl time.Duration
}

func NewRedisTokenStore(rdb redis.Cmdable, ttl time.Duration) *RedisTokenStore {
	return &RedisTokenStore{rdb: rdb, ttl: ttl}
}

func tokenKey(token string) string {
	return fmt.Sprintf("auth:token:%s", token)
}

func (s *RedisTokenStore) Issue(ctx context.Context, userID string) (string, error) {
	token, err := NewToken()
	if err != nil {
		return "", err
	}
	if err := s.rdb.Set(ctx, tokenKey(token), userID, s.ttl).Err(); err != nil {
		return "", errx.WrapRedis(err)
	}
	return token, nil
}

func (s *RedisTokenStore) Resolve(ctx context.Context, token string) (string, error) {
	userID, err := s.rdb.Get(ctx, tokenKey(token)).Result()
	if err == redis.Nil {
		return "", ErrTokenInvalid
	}
	if err != nil {
		return "", errx.WrapRedis(err)
	}
	return userID, nil
}

func (s *RedisTokenStore) Revoke(ctx context.Context, token string) error {
	if err := s.rdb.Del(ctx, tokenKey(token)).Err(); err != nil {
		return errx.WrapRedis(err)
	}
	return nil
}

var _ TokenStore = (*RedisTokenStore)(nil)
