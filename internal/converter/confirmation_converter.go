package converter

import (
	"dental-clinic-booking/internal/delivery/dto"
	"dental-clinic-booking/internal/domain/entity"
)

const DisplayDateLayout = "Monday, January 2, 2006"

// DraftToConfirmation renders a complete draft as a confirmation page
func DraftToConfirmation(draft entity.AppointmentDraft, code string, clinicPhone string) *dto.ConfirmationResponse {
	return &dto.ConfirmationResponse{
		ConfirmationCode: code,
		Service:          *ServiceToResponse(draft.Service),
		Date:             draft.Date.Format(entity.DateLayout),
		DateDisplay:      draft.Date.Format(DisplayDateLayout),
		Time:             *draft.Time,
		Patient:          PatientInfoToResponse(draft.PatientInfo),
		ManageURL:        "/manage/" + code,
		ClinicPhone:      clinicPhone,
	}
}
