package repository

import (
	"context"

	"dental-clinic-booking/internal/domain/entity"
	domainRepo "dental-clinic-booking/internal/domain/repository"
)

// MockAppointments is the fixed board shown when no database is configured
func MockAppointments() []entity.Appointment {
	return []entity.Appointment{
		{ID: 1, PatientName: "Sarah Johnson", Date: "2025-04-15", Time: "09:00 AM", Service: "Dental Cleaning", Status: entity.AppointmentStatusConfirmed},
		{ID: 2, PatientName: "Michael Chen", Date: "2025-04-15", Time: "10:30 AM", Service: "Teeth Whitening", Status: entity.AppointmentStatusConfirmed},
		{ID: 3, PatientName: "Emily Rodriguez", Date: "2025-04-15", Time: "01:00 PM", Service: "Dental Check-up", Status: entity.AppointmentStatusPending},
		{ID: 4, PatientName: "David Williams", Date: "2025-04-16", Time: "11:00 AM", Service: "Dental Filling", Status: entity.AppointmentStatusConfirmed},
		{ID: 5, PatientName: "Jessica Brown", Date: "2025-04-16", Time: "02:30 PM", Service: "Braces", Status: entity.AppointmentStatusCanceled},
		{ID: 6, PatientName: "Robert Taylor", Date: "2025-04-17", Time: "09:30 AM", Service: "Root Canal", Status: entity.AppointmentStatusPending},
	}
}

type memoryAppointmentRepository struct {
	appointments []entity.Appointment
}

// NewMemoryAppointmentRepository serves a read-only copy of appointments
func NewMemoryAppointmentRepository(appointments []entity.Appointment) domainRepo.AppointmentRepository {
	rows := make([]entity.Appointment, len(appointments))
	copy(rows, appointments)
	return &memoryAppointmentRepository{appointments: rows}
}

func (r *memoryAppointmentRepository) FindAll(ctx context.Context) ([]entity.Appointment, error) {
	rows := make([]entity.Appointment, len(r.appointments))
	copy(rows, r.appointments)
	return rows, nil
}

func (r *memoryAppointmentRepository) FindByID(ctx context.Context, id int) (*entity.Appointment, error) {
	for _, a := range r.appointments {
		if a.ID == id {
			appt := a
			return &appt, nil
		}
	}
	return nil, nil
}

func (r *memoryAppointmentRepository) FindByDateRange(ctx context.Context, startDate, endDate string) ([]entity.Appointment, error) {
	rows := make([]entity.Appointment, 0, len(r.appointments))
	for _, a := range r.appointments {
		if a.Date >= startDate && a.Date <= endDate {
			rows = append(rows, a)
		}
	}
	return rows, nil
}
