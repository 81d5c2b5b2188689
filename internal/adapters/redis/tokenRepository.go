package redis

import (
	"context"
	"errors"
	"time"

	"yoripe/internal/apperrors"

	"github.com/go-redis/redis/v8"
)

const tokenKeyPrefix = "auth:token:"

// TokenRepositoryRedis registers live bearer tokens in Redis. The key TTL
// matches the token expiry, so revocation state cleans itself up.
type TokenRepositoryRedis struct {
	Client *redis.Client
}

func NewTokenRepositoryRedis(client *redis.Client) *TokenRepositoryRedis {
	return &TokenRepositoryRedis{Client: client}
}

func (r *TokenRepositoryRedis) Store(ctx context.Context, tokenID, userID string, ttl time.Duration) error {
	return r.Client.Set(ctx, tokenKeyPrefix+tokenID, userID, ttl).Err()
}

func (r *TokenRepositoryRedis) Owner(ctx context.Context, tokenID string) (string, error) {
	userID, err := r.Client.Get(ctx, tokenKeyPrefix+tokenID).Result()
	if errors.Is(err, redis.Nil) {
		return "", apperrors.ErrTokenRevoked
	}
	if err != nil {
		return "", err
	}
	return userID, nil
}

func (r *TokenRepositoryRedis) Revoke(ctx context.Context, tokenID string) error {
	return r.Client.Del(ctx, tokenKeyPrefix+tokenID).Err()
}
