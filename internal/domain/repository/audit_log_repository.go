package repository

import (
	"context"

	"dental-clinic-booking/internal/domain/entity"
)

type AuditLogRepository interface {
	Create(ctx context.Context, auditLog *entity.AuditLog) error
	FindAll(ctx context.Context, offset, limit int) ([]entity.AuditLog, int64, error)
}
