package handler

import (
	"encoding/json"
	"net/http"

	"dental-clinic-booking/internal/delivery/dto"
	"dental-clinic-booking/internal/usecase"
	"dental-clinic-booking/pkg/response"
	"dental-clinic-booking/pkg/validator"

	"github.com/gorilla/mux"
)

type ManageHandler struct {
	manageUsecase usecase.ManageUsecase
	validator     *validator.CustomValidator
}

func NewManageHandler(manageUsecase usecase.ManageUsecase, validator *validator.CustomValidator) *ManageHandler {
	return &ManageHandler{
		manageUsecase: manageUsecase,
		validator:     validator,
	}
}

func writeManageError(w http.ResponseWriter, err error, fallback string) {
	switch err {
	case usecase.ErrAppointmentNotFound:
		response.NotFound(w, "Appointment not found")
	case usecase.ErrInvalidDateFormat:
		response.BadRequest(w, err.Error())
	case usecase.ErrDateTimeRequired:
		response.UnprocessableEntity(w, "Please select both a date and a time")
	case usecase.ErrSlotNotOffered:
		response.UnprocessableEntity(w, "Selected date and time are not available")
	case usecase.ErrCancelNotConfirmed:
		response.UnprocessableEntity(w, "Please confirm the cancellation")
	case usecase.ErrAppointmentCanceled:
		response.Conflict(w, "Appointment has been canceled")
	case usecase.ErrAppointmentAlreadyCanceled:
		response.Conflict(w, "Appointment is already canceled")
	default:
		response.InternalServerError(w, fallback)
	}
}

func (h *ManageHandler) GetAppointment(w http.ResponseWriter, r *http.Request) {
	appointment, err := h.manageUsecase.GetAppointment(r.Context(), mux.Vars(r)["appointmentId"])
	if err != nil {
		writeManageError(w, err, "Failed to get appointment")
		return
	}

	response.Success(w, http.StatusOK, "Appointment retrieved successfully", appointment)
}

func (h *ManageHandler) GetRescheduleOptions(w http.ResponseWriter, r *http.Request) {
	options, err := h.manageUsecase.GetRescheduleOptions(r.Context(), mux.Vars(r)["appointmentId"])
	if err != nil {
		writeManageError(w, err, "Failed to get reschedule options")
		return
	}

	response.Success(w, http.StatusOK, "Reschedule options retrieved successfully", options)
}

func (h *ManageHandler) Reschedule(w http.ResponseWriter, r *http.Request) {
	var req dto.RescheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	appointment, err := h.manageUsecase.Reschedule(r.Context(), mux.Vars(r)["appointmentId"], &req)
	if err != nil {
		writeManageError(w, err, "Failed to reschedule appointment")
		return
	}

	response.Success(w, http.StatusOK, "Appointment rescheduled successfully", appointment)
}

func (h *ManageHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	var req dto.CancelAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	result, err := h.manageUsecase.Cancel(r.Context(), mux.Vars(r)["appointmentId"], &req)
	if err != nil {
		writeManageError(w, err, "Failed to cancel appointment")
		return
	}

	response.Success(w, http.StatusOK, "Appointment canceled successfully", result)
}
