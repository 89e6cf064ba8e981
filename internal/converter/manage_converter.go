package converter

import (
	"dental-clinic-booking/internal/delivery/dto"
	"dental-clinic-booking/internal/domain/entity"
)

// ManagedAppointmentToResponse converts a ManagedAppointment to its DTO
func ManagedAppointmentToResponse(m *entity.ManagedAppointment) *dto.ManagedAppointmentResponse {
	if m == nil {
		return nil
	}

	return &dto.ManagedAppointmentResponse{
		ID:          m.ID,
		Service:     *ServiceToResponse(&m.Service),
		Date:        m.Date.Format(entity.DateLayout),
		DateDisplay: m.Date.Format(DisplayDateLayout),
		Time:        m.Time,
		Patient:     PatientInfoToResponse(m.Patient),
		Status:      string(m.Status),
	}
}

// RescheduleOptionsToResponse converts offered options to their DTO
func RescheduleOptionsToResponse(id string, options []entity.DaySlots) *dto.RescheduleOptionsResponse {
	days := make([]dto.RescheduleDayResponse, len(options))
	for i, day := range options {
		slots := make([]string, len(day.Slots))
		for j, slot := range day.Slots {
			slots[j] = slot.Time
		}
		days[i] = dto.RescheduleDayResponse{
			Date:    day.Date.Format(entity.DateLayout),
			Weekday: day.Date.Weekday().String(),
			Slots:   slots,
		}
	}
	return &dto.RescheduleOptionsResponse{AppointmentID: id, Options: days}
}
