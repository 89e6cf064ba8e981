package repository

import (
	"context"
	"sync"
	"time"

	domainRepo "dental-clinic-booking/internal/domain/repository"
)

type memoryTokenRepository struct {
	mu     sync.Mutex
	tokens map[string]time.Time
	now    func() time.Time
}

// NewMemoryTokenRepository keeps issued admin token ids until they expire on the now clock
func NewMemoryTokenRepository(now func() time.Time) domainRepo.TokenRepository {
	if now == nil {
		now = time.Now
	}
	return &memoryTokenRepository{tokens: make(map[string]time.Time), now: now}
}

func (r *memoryTokenRepository) Store(ctx context.Context, tokenID string, ttl time.Duration) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tokens[tokenID] = r.now().Add(ttl)
	return nil
}

func (r *memoryTokenRepository) Exists(ctx context.Context, tokenID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	expiry, ok := r.tokens[tokenID]
	if !ok {
		return false, nil
	}
	if !expiry.After(r.now()) {
		delete(r.tokens, tokenID)
		return false, nil
	}
	return true, nil
}

func (r *memoryTokenRepository) Revoke(ctx context.Context, tokenID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.tokens, tokenID)
	return nil
}
