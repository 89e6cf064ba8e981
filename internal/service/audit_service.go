package service

import (
	"context"

	"dental-clinic-booking/internal/domain/entity"
	"dental-clinic-booking/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

type AuditService interface {
	LogAction(ctx context.Context, actor string, action string, metadata entity.JSON) error
	LogUpdate(ctx context.Context, actor string, action string, entityName string, entityID string, oldValue, newValue interface{}) error
}

type auditService struct {
	log       *logrus.Logger
	auditRepo repository.AuditLogRepository
}

func NewAuditService(log *logrus.Logger, auditRepo repository.AuditLogRepository) AuditService {
	return &auditService{
		log:       log,
		auditRepo: auditRepo,
	}
}

// LogAction logs an action with free-form metadata
func (s *auditService) LogAction(ctx context.Context, actor string, action string, metadata entity.JSON) error {
	auditLog := &entity.AuditLog{
		Actor:    actor,
		Action:   action,
		Metadata: metadata,
	}

	if err := s.auditRepo.Create(ctx, auditLog); err != nil {
		s.log.Warnf("Failed to create audit log: %+v", err)
		return err
	}

	return nil
}

// LogUpdate logs an update action with old and new values
func (s *auditService) LogUpdate(ctx context.Context, actor string, action string, entityName string, entityID string, oldValue, newValue interface{}) error {
	return s.LogAction(ctx, actor, action, entity.JSON{
		"entity":    entityName,
		"entity_id": entityID,
		"old_value": oldValue,
		"new_value": newValue,
	})
}
