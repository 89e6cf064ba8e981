package repository

import (
	"context"

	"dental-clinic-booking/internal/domain/entity"
)

type AppointmentRepository interface {
	FindAll(ctx context.Context) ([]entity.Appointment, error)
	FindByID(ctx context.Context, id int) (*entity.Appointment, error)
	FindByDateRange(ctx context.Context, startDate, endDate string) ([]entity.Appointment, error)
}
