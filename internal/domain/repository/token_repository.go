package repository

import (
	"context"
	"time"
)

// TokenRepository tracks issued admin access tokens so they can be revoked
type TokenRepository interface {
	Store(ctx context.Context, tokenID string, ttl time.Duration) error
	Exists(ctx context.Context, tokenID string) (bool, error)
	Revoke(ctx context.Context, tokenID string) error
}
