package repository

import (
	"context"

	"dental-clinic-booking/internal/domain/entity"
)

type ManagedAppointmentRepository interface {
	FindByCode(ctx context.Context, code string) (*entity.ManagedAppointment, error)
	Save(ctx context.Context, appointment *entity.ManagedAppointment) error
}
