package repository

import (
	"context"
	"time"

	"dental-clinic-booking/internal/domain/entity"

	"github.com/google/uuid"
)

type SessionRepository interface {
	Save(ctx context.Context, session *entity.BookingSession) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.BookingSession, error)
	Delete(ctx context.Context, id uuid.UUID) error
	// DeleteExpired removes sessions whose expiry is at or before now and returns how many were removed
	DeleteExpired(ctx context.Context, now time.Time) (int, error)
}
