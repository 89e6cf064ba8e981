package repository

import (
	"context"
	"sync"
	"time"

	"dental-clinic-booking/internal/domain/entity"
	domainRepo "dental-clinic-booking/internal/domain/repository"

	"github.com/google/uuid"
)

type memorySessionRepository struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]entity.BookingSession
	now      func() time.Time
}

// NewMemorySessionRepository keeps booking sessions in process memory.
// now is the clock expiry is checked against; nil means time.Now.
func NewMemorySessionRepository(now func() time.Time) domainRepo.SessionRepository {
	if now == nil {
		now = time.Now
	}
	return &memorySessionRepository{
		sessions: make(map[uuid.UUID]entity.BookingSession),
		now:      now,
	}
}

func (r *memorySessionRepository) Save(ctx context.Context, session *entity.BookingSession) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[session.ID] = *session
	return nil
}

func (r *memorySessionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.BookingSession, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	session, ok := r.sessions[id]
	if !ok || session.IsExpired(r.now()) {
		return nil, nil
	}
	return &session, nil
}

func (r *memorySessionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, id)
	return nil
}

func (r *memorySessionRepository) DeleteExpired(ctx context.Context, now time.Time) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	removed := 0
	for id, session := range r.sessions {
		if session.IsExpired(now) {
			delete(r.sessions, id)
			removed++
		}
	}
	return removed, nil
}
