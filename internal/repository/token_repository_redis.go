package repository

import (
	"context"
	"fmt"
	"time"

	domainRepo "dental-clinic-booking/internal/domain/repository"

	"github.com/redis/go-redis/v9"
)

type redisTokenRepository struct {
	client *redis.Client
}

// NewRedisTokenRepository tracks admin tokens as expiring Redis keys
func NewRedisTokenRepository(client *redis.Client) domainRepo.TokenRepository {
	return &redisTokenRepository{client: client}
}

func tokenKey(tokenID string) string {
	return fmt.Sprintf("admin_token:%s", tokenID)
}

func (r *redisTokenRepository) Store(ctx context.Context, tokenID string, ttl time.Duration) error {
	return r.client.Set(ctx, tokenKey(tokenID), "1", ttl).Err()
}

func (r *redisTokenRepository) Exists(ctx context.Context, tokenID string) (bool, error) {
	n, err := r.client.Exists(ctx, tokenKey(tokenID)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *redisTokenRepository) Revoke(ctx context.Context, tokenID string) error {
	return r.client.Del(ctx, tokenKey(tokenID)).Err()
}
