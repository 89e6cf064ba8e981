package dto

import (
	"time"

	"github.com/google/uuid"
)

// Wizard steps, as client paths
const (
	StepHome         = "/"
	StepServices     = "/services"
	StepCalendar     = "/calendar"
	StepPatientInfo  = "/patient-info"
	StepConfirmation = "/confirmation"
)

// Request DTOs

// UpdateDraftRequest is a partial draft; absent fields are left as they are
type UpdateDraftRequest struct {
	ServiceID   *int                `json:"service_id" validate:"omitempty,gte=1"`
	Date        *string             `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Time        *string             `json:"time" validate:"omitempty,datetime=15:04"`
	PatientInfo *PatientInfoPayload `json:"patient_info"`
}

type SelectServiceRequest struct {
	ServiceID int `json:"service_id" validate:"required,gte=1"`
}

// Response DTOs

type DraftResponse struct {
	Service     *ServiceResponse    `json:"service"`
	Date        *string             `json:"date"`
	Time        *string             `json:"time"`
	PatientInfo PatientInfoResponse `json:"patient_info"`
}

type SessionResponse struct {
	ID        uuid.UUID     `json:"id"`
	Draft     DraftResponse `json:"draft"`
	NextStep  string        `json:"next_step"`
	CreatedAt time.Time     `json:"created_at"`
	ExpiresAt time.Time     `json:"expires_at"`
}

// StepResponse is returned when a wizard step completes
type StepResponse struct {
	Draft    DraftResponse `json:"draft"`
	NextStep string        `json:"next_step"`
}
