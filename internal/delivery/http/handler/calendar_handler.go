package handler

import (
	"encoding/json"
	"net/http"

	"dental-clinic-booking/internal/delivery/dto"
	"dental-clinic-booking/internal/usecase"
	"dental-clinic-booking/pkg/response"
	"dental-clinic-booking/pkg/validator"
)

type CalendarHandler struct {
	calendarUsecase usecase.CalendarUsecase
	validator       *validator.CustomValidator
}

func NewCalendarHandler(calendarUsecase usecase.CalendarUsecase, validator *validator.CustomValidator) *CalendarHandler {
	return &CalendarHandler{
		calendarUsecase: calendarUsecase,
		validator:       validator,
	}
}

func writeCalendarError(w http.ResponseWriter, err error, fallback string) {
	switch err {
	case usecase.ErrDateNotSelectable:
		response.UnprocessableEntity(w, "Selected date has no available time slots")
	case usecase.ErrNoDateSelected:
		response.UnprocessableEntity(w, "Please select a date first")
	case usecase.ErrTimeNotAvailable:
		response.UnprocessableEntity(w, "Selected time is not available")
	case usecase.ErrDateTimeRequired:
		response.UnprocessableEntity(w, "Please select both a date and a time")
	default:
		writeWizardError(w, err, fallback)
	}
}

func (h *CalendarHandler) GetCalendar(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := parseSessionID(w, r)
	if !ok {
		return
	}

	calendar, err := h.calendarUsecase.GetCalendar(r.Context(), sessionID)
	if err != nil {
		writeCalendarError(w, err, "Failed to get calendar")
		return
	}

	response.Success(w, http.StatusOK, "Calendar retrieved successfully", calendar)
}

func (h *CalendarHandler) NextWeek(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := parseSessionID(w, r)
	if !ok {
		return
	}

	calendar, err := h.calendarUsecase.NextWeek(r.Context(), sessionID)
	if err != nil {
		writeCalendarError(w, err, "Failed to show next week")
		return
	}

	response.Success(w, http.StatusOK, "Showing next week", calendar)
}

// PreviousWeek answers 200 with changed=false when the week is already the current one
func (h *CalendarHandler) PreviousWeek(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := parseSessionID(w, r)
	if !ok {
		return
	}

	calendar, err := h.calendarUsecase.PreviousWeek(r.Context(), sessionID)
	if err != nil {
		writeCalendarError(w, err, "Failed to show previous week")
		return
	}

	message := "Showing previous week"
	if !calendar.Changed {
		message = "Cannot go back before the current week"
	}
	response.Success(w, http.StatusOK, message, calendar)
}

func (h *CalendarHandler) SelectDate(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := parseSessionID(w, r)
	if !ok {
		return
	}

	var req dto.SelectDateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	calendar, err := h.calendarUsecase.SelectDate(r.Context(), sessionID, &req)
	if err != nil {
		writeCalendarError(w, err, "Failed to select date")
		return
	}

	response.Success(w, http.StatusOK, "Date selected", calendar)
}

func (h *CalendarHandler) SelectTime(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := parseSessionID(w, r)
	if !ok {
		return
	}

	var req dto.SelectTimeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	calendar, err := h.calendarUsecase.SelectTime(r.Context(), sessionID, &req)
	if err != nil {
		writeCalendarError(w, err, "Failed to select time")
		return
	}

	response.Success(w, http.StatusOK, "Time selected", calendar)
}

func (h *CalendarHandler) Continue(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := parseSessionID(w, r)
	if !ok {
		return
	}

	step, err := h.calendarUsecase.Continue(r.Context(), sessionID)
	if err != nil {
		writeCalendarError(w, err, "Failed to save date and time")
		return
	}

	response.Success(w, http.StatusOK, "Date and time saved", step)
}
