package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"dental-clinic-booking/internal/delivery/dto"
	"dental-clinic-booking/internal/delivery/http/middleware"
	"dental-clinic-booking/internal/usecase"
	"dental-clinic-booking/pkg/response"
	"dental-clinic-booking/pkg/validator"

	"github.com/gorilla/mux"
)

type AvailabilityHandler struct {
	availabilityUsecase usecase.AvailabilityUsecase
	validator           *validator.CustomValidator
}

func NewAvailabilityHandler(availabilityUsecase usecase.AvailabilityUsecase, validator *validator.CustomValidator) *AvailabilityHandler {
	return &AvailabilityHandler{
		availabilityUsecase: availabilityUsecase,
		validator:           validator,
	}
}

func writeAvailabilityError(w http.ResponseWriter, err error, fallback string) {
	switch err {
	case usecase.ErrDayNotFound:
		response.NotFound(w, "Day not found")
	case usecase.ErrExceptionNotFound:
		response.NotFound(w, "Availability exception not found")
	case usecase.ErrInvalidAvailability:
		response.UnprocessableEntity(w, err.Error())
	default:
		response.InternalServerError(w, fallback)
	}
}

func (h *AvailabilityHandler) GetAvailability(w http.ResponseWriter, r *http.Request) {
	availability, err := h.availabilityUsecase.GetAvailability(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get availability")
		return
	}

	response.Success(w, http.StatusOK, "Availability retrieved successfully", availability)
}

func (h *AvailabilityHandler) SaveAvailability(w http.ResponseWriter, r *http.Request) {
	var req dto.SaveAvailabilityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	actor, _ := middleware.GetAdminEmailFromContext(r.Context())
	availability, err := h.availabilityUsecase.SaveAvailability(r.Context(), actor, &req)
	if err != nil {
		writeAvailabilityError(w, err, "Failed to save availability")
		return
	}

	response.Success(w, http.StatusOK, "Availability settings saved successfully", availability)
}

func (h *AvailabilityHandler) UpdateDaySlots(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateDaySlotsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	actor, _ := middleware.GetAdminEmailFromContext(r.Context())
	rule, err := h.availabilityUsecase.UpdateDaySlots(r.Context(), actor, mux.Vars(r)["day"], &req)
	if err != nil {
		writeAvailabilityError(w, err, "Failed to update time slots")
		return
	}

	response.Success(w, http.StatusOK, "Time slots updated successfully", rule)
}

func (h *AvailabilityHandler) ToggleDay(w http.ResponseWriter, r *http.Request) {
	actor, _ := middleware.GetAdminEmailFromContext(r.Context())
	rule, err := h.availabilityUsecase.ToggleDay(r.Context(), actor, mux.Vars(r)["day"])
	if err != nil {
		writeAvailabilityError(w, err, "Failed to toggle day")
		return
	}

	response.Success(w, http.StatusOK, "Day availability updated", rule)
}

func (h *AvailabilityHandler) ListExceptions(w http.ResponseWriter, r *http.Request) {
	exceptions, err := h.availabilityUsecase.ListExceptions(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get availability exceptions")
		return
	}

	response.Success(w, http.StatusOK, "Availability exceptions retrieved successfully", exceptions)
}

func (h *AvailabilityHandler) AddException(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateExceptionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	actor, _ := middleware.GetAdminEmailFromContext(r.Context())
	exception, err := h.availabilityUsecase.AddException(r.Context(), actor, &req)
	if err != nil {
		writeAvailabilityError(w, err, "Failed to add availability exception")
		return
	}

	response.Success(w, http.StatusCreated, "Availability exception added successfully", exception)
}

func (h *AvailabilityHandler) DeleteException(w http.ResponseWriter, r *http.Request) {
	exceptionID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid exception ID")
		return
	}

	actor, _ := middleware.GetAdminEmailFromContext(r.Context())
	if err := h.availabilityUsecase.DeleteException(r.Context(), actor, exceptionID); err != nil {
		writeAvailabilityError(w, err, "Failed to delete availability exception")
		return
	}

	response.Success(w, http.StatusOK, "Availability exception deleted successfully", nil)
}
