package repository

import (
	"context"
	"sync"
	"time"

	"dental-clinic-booking/internal/domain/entity"
	domainRepo "dental-clinic-booking/internal/domain/repository"
)

type managedAppointmentRepository struct {
	mu          sync.RWMutex
	records     map[string]entity.ManagedAppointment
	serviceRepo domainRepo.ServiceRepository
}

// NewManagedAppointmentRepository answers every manage link with the canned
// record until that code is rescheduled or canceled, after which the stored copy is returned.
func NewManagedAppointmentRepository(serviceRepo domainRepo.ServiceRepository) domainRepo.ManagedAppointmentRepository {
	return &managedAppointmentRepository{
		records:     make(map[string]entity.ManagedAppointment),
		serviceRepo: serviceRepo,
	}
}

func (r *managedAppointmentRepository) FindByCode(ctx context.Context, code string) (*entity.ManagedAppointment, error) {
	r.mu.RLock()
	record, ok := r.records[code]
	r.mu.RUnlock()
	if ok {
		record.RescheduleOptions = append([]entity.DaySlots(nil), record.RescheduleOptions...)
		return &record, nil
	}

	svc, err := r.serviceRepo.FindByID(ctx, 1)
	if err != nil {
		return nil, err
	}
	if svc == nil {
		return nil, nil
	}

	return &entity.ManagedAppointment{
		ID:      code,
		Service: *svc,
		Date:    time.Date(2025, time.April, 15, 0, 0, 0, 0, time.UTC),
		Time:    "10:30",
		Patient: entity.PatientInfo{
			Name:  "Jane Smith",
			Email: "jane.smith@example.com",
			Phone: "(555) 123-4567",
			Notes: "Sensitive teeth on lower right side.",
		},
		Status: entity.AppointmentStatusConfirmed,
	}, nil
}

func (r *managedAppointmentRepository) Save(ctx context.Context, appointment *entity.ManagedAppointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	appointment.UpdatedAt = time.Now()
	r.records[appointment.ID] = *appointment
	return nil
}
