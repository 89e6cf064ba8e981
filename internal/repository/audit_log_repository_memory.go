package repository

import (
	"context"
	"sync"
	"time"

	"dental-clinic-booking/internal/domain/entity"
	domainRepo "dental-clinic-booking/internal/domain/repository"
)

type memoryAuditLogRepository struct {
	mu     sync.RWMutex
	logs   []entity.AuditLog
	nextID int64
}

func NewMemoryAuditLogRepository() domainRepo.AuditLogRepository {
	return &memoryAuditLogRepository{nextID: 1}
}

func (r *memoryAuditLogRepository) Create(ctx context.Context, log *entity.AuditLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	log.ID = r.nextID
	r.nextID++
	if log.CreatedAt.IsZero() {
		log.CreatedAt = time.Now()
	}
	r.logs = append(r.logs, *log)
	return nil
}

// FindAll pages through logs newest first
func (r *memoryAuditLogRepository) FindAll(ctx context.Context, offset, limit int) ([]entity.AuditLog, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	total := int64(len(r.logs))

	logs := make([]entity.AuditLog, 0, limit)
	for i := len(r.logs) - 1 - offset; i >= 0 && len(logs) < limit; i-- {
		logs = append(logs, r.logs[i])
	}
	return logs, total, nil
}
