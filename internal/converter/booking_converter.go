package converter

import (
	"strings"

	"dental-clinic-booking/internal/delivery/dto"
	"dental-clinic-booking/internal/domain/entity"
)

// PatientInfoToResponse converts PatientInfo to its DTO
func PatientInfoToResponse(p entity.PatientInfo) dto.PatientInfoResponse {
	return dto.PatientInfoResponse{
		Name:  p.Name,
		Email: p.Email,
		Phone: p.Phone,
		Notes: p.Notes,
	}
}

// PatientInfoRequestToEntity converts a validated form to PatientInfo
func PatientInfoRequestToEntity(req *dto.PatientInfoRequest) entity.PatientInfo {
	return entity.PatientInfo{
		Name:  strings.TrimSpace(req.Name),
		Email: strings.TrimSpace(req.Email),
		Phone: req.Phone,
		Notes: req.Notes,
	}
}

// PatientInfoPayloadToEntity converts an unvalidated merge payload to PatientInfo
func PatientInfoPayloadToEntity(p *dto.PatientInfoPayload) *entity.PatientInfo {
	if p == nil {
		return nil
	}
	return &entity.PatientInfo{
		Name:  p.Name,
		Email: p.Email,
		Phone: p.Phone,
		Notes: p.Notes,
	}
}

// DraftToResponse converts an AppointmentDraft to DraftResponse DTO
func DraftToResponse(draft entity.AppointmentDraft) dto.DraftResponse {
	response := dto.DraftResponse{
		Service:     ServiceToResponse(draft.Service),
		Time:        draft.Time,
		PatientInfo: PatientInfoToResponse(draft.PatientInfo),
	}
	if draft.Date != nil {
		date := draft.Date.Format(entity.DateLayout)
		response.Date = &date
	}
	return response
}

// SessionToResponse converts a BookingSession to SessionResponse DTO
func SessionToResponse(session *entity.BookingSession, nextStep string) *dto.SessionResponse {
	if session == nil {
		return nil
	}

	return &dto.SessionResponse{
		ID:        session.ID,
		Draft:     DraftToResponse(session.Draft),
		NextStep:  nextStep,
		CreatedAt: session.CreatedAt,
		ExpiresAt: session.ExpiresAt,
	}
}
