package handler

import (
	"encoding/json"
	"net/http"

	"dental-clinic-booking/internal/delivery/dto"
	"dental-clinic-booking/internal/usecase"
	"dental-clinic-booking/pkg/response"
	"dental-clinic-booking/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type BookingHandler struct {
	bookingUsecase usecase.BookingUsecase
	validator      *validator.CustomValidator
}

func NewBookingHandler(bookingUsecase usecase.BookingUsecase, validator *validator.CustomValidator) *BookingHandler {
	validator.RegisterMessages(dto.PatientInfoValidationMessages)
	return &BookingHandler{
		bookingUsecase: bookingUsecase,
		validator:      validator,
	}
}

func parseSessionID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	sessionID, err := uuid.Parse(mux.Vars(r)["sessionId"])
	if err != nil {
		response.BadRequest(w, "Invalid session ID")
		return uuid.Nil, false
	}
	return sessionID, true
}

// writeWizardError maps the wizard errors shared by the booking and calendar steps
func writeWizardError(w http.ResponseWriter, err error, fallback string) {
	switch err {
	case usecase.ErrSessionNotFound:
		response.NotFound(w, "Booking session not found")
	case usecase.ErrServiceNotFound:
		response.NotFound(w, "Service not found")
	case usecase.ErrInvalidDateFormat:
		response.BadRequest(w, err.Error())
	case usecase.ErrServiceRequired:
		response.GuardRedirect(w, "Please select a service first", dto.StepServices)
	case usecase.ErrIncompleteDraft:
		response.GuardRedirect(w, "Please select a service, date and time first", dto.StepServices)
	case usecase.ErrMissingAppointmentInfo:
		response.GuardRedirect(w, "Missing appointment information. Please start over.", dto.StepHome)
	default:
		response.InternalServerError(w, fallback)
	}
}

func (h *BookingHandler) ListServices(w http.ResponseWriter, r *http.Request) {
	services, err := h.bookingUsecase.ListServices(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get services")
		return
	}

	response.Success(w, http.StatusOK, "Services retrieved successfully", services)
}

func (h *BookingHandler) StartSession(w http.ResponseWriter, r *http.Request) {
	session, err := h.bookingUsecase.StartSession(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to start booking session")
		return
	}

	response.Success(w, http.StatusCreated, "Booking session started", session)
}

func (h *BookingHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := parseSessionID(w, r)
	if !ok {
		return
	}

	session, err := h.bookingUsecase.GetSession(r.Context(), sessionID)
	if err != nil {
		writeWizardError(w, err, "Failed to get booking session")
		return
	}

	response.Success(w, http.StatusOK, "Booking session retrieved successfully", session)
}

func (h *BookingHandler) UpdateAppointment(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := parseSessionID(w, r)
	if !ok {
		return
	}

	var req dto.UpdateDraftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	session, err := h.bookingUsecase.UpdateAppointment(r.Context(), sessionID, &req)
	if err != nil {
		writeWizardError(w, err, "Failed to update appointment")
		return
	}

	response.Success(w, http.StatusOK, "Appointment updated successfully", session)
}

func (h *BookingHandler) ClearSession(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := parseSessionID(w, r)
	if !ok {
		return
	}

	if err := h.bookingUsecase.ClearSession(r.Context(), sessionID); err != nil {
		writeWizardError(w, err, "Failed to clear booking session")
		return
	}

	response.Success(w, http.StatusOK, "Booking session cleared", nil)
}

func (h *BookingHandler) SelectService(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := parseSessionID(w, r)
	if !ok {
		return
	}

	var req dto.SelectServiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	step, err := h.bookingUsecase.SelectService(r.Context(), sessionID, &req)
	if err != nil {
		writeWizardError(w, err, "Failed to select service")
		return
	}

	response.Success(w, http.StatusOK, "Service selected", step)
}

func (h *BookingHandler) GetPatientInfo(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := parseSessionID(w, r)
	if !ok {
		return
	}

	info, err := h.bookingUsecase.GetPatientInfo(r.Context(), sessionID)
	if err != nil {
		writeWizardError(w, err, "Failed to get patient information")
		return
	}

	response.Success(w, http.StatusOK, "Patient information retrieved successfully", info)
}

// SubmitPatientInfo checks the entry guard before validating so an incomplete
// draft is redirected even when the form itself is invalid
func (h *BookingHandler) SubmitPatientInfo(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := parseSessionID(w, r)
	if !ok {
		return
	}

	if _, err := h.bookingUsecase.GetPatientInfo(r.Context(), sessionID); err != nil {
		writeWizardError(w, err, "Failed to submit patient information")
		return
	}

	var req dto.PatientInfoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	step, err := h.bookingUsecase.SubmitPatientInfo(r.Context(), sessionID, &req)
	if err != nil {
		writeWizardError(w, err, "Failed to submit patient information")
		return
	}

	response.Success(w, http.StatusOK, "Patient information saved", step)
}

func (h *BookingHandler) GetConfirmation(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := parseSessionID(w, r)
	if !ok {
		return
	}

	confirmation, err := h.bookingUsecase.GetConfirmation(r.Context(), sessionID)
	if err != nil {
		writeWizardError(w, err, "Failed to get confirmation")
		return
	}

	response.Success(w, http.StatusOK, "Appointment confirmed", confirmation)
}
