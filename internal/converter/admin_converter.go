package converter

import (
	"dental-clinic-booking/internal/delivery/dto"
	"dental-clinic-booking/internal/domain/entity"
)

// AppointmentToResponse converts an Appointment entity to AppointmentResponse DTO
func AppointmentToResponse(a *entity.Appointment) dto.AppointmentResponse {
	return dto.AppointmentResponse{
		ID:          a.ID,
		PatientName: a.PatientName,
		Date:        a.Date,
		Time:        a.Time,
		Service:     a.Service,
		Status:      string(a.Status),
	}
}

// AppointmentsToResponses converts a slice of Appointment entities
func AppointmentsToResponses(appointments []entity.Appointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(appointments))
	for i := range appointments {
		responses[i] = AppointmentToResponse(&appointments[i])
	}
	return responses
}

// AppointmentToDetailResponse adds the drawer notes to an appointment row
func AppointmentToDetailResponse(a *entity.Appointment) *dto.AppointmentDetailResponse {
	if a == nil {
		return nil
	}
	return &dto.AppointmentDetailResponse{
		AppointmentResponse: AppointmentToResponse(a),
		Notes:               a.Notes(),
	}
}

// StatCardsToResponses converts dashboard stat cards
func StatCardsToResponses(cards []entity.StatCard) []dto.StatCardResponse {
	responses := make([]dto.StatCardResponse, len(cards))
	for i, c := range cards {
		responses[i] = dto.StatCardResponse{Title: c.Title, Value: c.Value, Change: c.Change}
	}
	return responses
}
