package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"dental-clinic-booking/internal/domain/entity"
	domainRepo "dental-clinic-booking/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const RedisSessionKeyPrefix = "booking_session:"

type redisSessionRepository struct {
	client *redis.Client
}

// NewRedisSessionRepository stores booking sessions as JSON values expiring with the session
func NewRedisSessionRepository(client *redis.Client) domainRepo.SessionRepository {
	return &redisSessionRepository{client: client}
}

func sessionKey(id uuid.UUID) string {
	return RedisSessionKeyPrefix + id.String()
}

func (r *redisSessionRepository) Save(ctx context.Context, session *entity.BookingSession) error {
	payload, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}
	ttl := time.Until(session.ExpiresAt)
	if ttl <= 0 {
		return r.client.Del(ctx, sessionKey(session.ID)).Err()
	}
	return r.client.Set(ctx, sessionKey(session.ID), payload, ttl).Err()
}

func (r *redisSessionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.BookingSession, error) {
	payload, err := r.client.Get(ctx, sessionKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var session entity.BookingSession
	if err := json.Unmarshal(payload, &session); err != nil {
		return nil, fmt.Errorf("unmarshal session: %w", err)
	}
	return &session, nil
}

func (r *redisSessionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.client.Del(ctx, sessionKey(id)).Err()
}

// DeleteExpired is a no-op: Redis expires session keys through their TTL
func (r *redisSessionRepository) DeleteExpired(ctx context.Context, now time.Time) (int, error) {
	return 0, nil
}
