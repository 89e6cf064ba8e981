package service

import (
	"context"
	"testing"

	"dental-clinic-booking/internal/domain/entity"
	"dental-clinic-booking/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuditService_LogUpdate(t *testing.T) {
	repo := repository.NewMemoryAuditLogRepository()
	svc := NewAuditService(quietLogger(), repo)
	ctx := context.Background()

	require.NoError(t, svc.LogUpdate(ctx, "admin@dentalclinic.com", entity.AuditActionAvailabilityToggle, "availability", "Sunday", false, true))

	logs, total, err := repo.FindAll(ctx, 0, 10)
	require.NoError(t, err)
	require.EqualValues(t, 1, total)
	assert.Equal(t, "admin@dentalclinic.com", logs[0].Actor)
	assert.Equal(t, entity.AuditActionAvailabilityToggle, logs[0].Action)
	assert.Equal(t, "Sunday", logs[0].Metadata["entity_id"])
	assert.Equal(t, true, logs[0].Metadata["new_value"])
}
