package handler

import (
	"encoding/json"
	"net/http"

	"dental-clinic-booking/internal/delivery/dto"
	"dental-clinic-booking/internal/delivery/http/middleware"
	"dental-clinic-booking/internal/usecase"
	"dental-clinic-booking/pkg/response"
	"dental-clinic-booking/pkg/validator"

	"github.com/gorilla/mux"
)

type SettingsHandler struct {
	settingsUsecase usecase.SettingsUsecase
	validator       *validator.CustomValidator
}

func NewSettingsHandler(settingsUsecase usecase.SettingsUsecase, validator *validator.CustomValidator) *SettingsHandler {
	return &SettingsHandler{
		settingsUsecase: settingsUsecase,
		validator:       validator,
	}
}

func (h *SettingsHandler) GetSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.settingsUsecase.GetSettings(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get settings")
		return
	}

	response.Success(w, http.StatusOK, "Settings retrieved successfully", settings)
}

func (h *SettingsHandler) SaveSettings(w http.ResponseWriter, r *http.Request) {
	var req dto.SaveSettingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	actor, _ := middleware.GetAdminEmailFromContext(r.Context())
	settings, err := h.settingsUsecase.SaveSettings(r.Context(), actor, &req)
	if err != nil {
		switch err {
		case usecase.ErrDayNotFound:
			response.UnprocessableEntity(w, "Business hours must list each day of the week once")
		default:
			response.InternalServerError(w, "Failed to save settings")
		}
		return
	}

	response.Success(w, http.StatusOK, "Settings saved successfully", settings)
}

func (h *SettingsHandler) ToggleBusinessDay(w http.ResponseWriter, r *http.Request) {
	actor, _ := middleware.GetAdminEmailFromContext(r.Context())
	day, err := h.settingsUsecase.ToggleBusinessDay(r.Context(), actor, mux.Vars(r)["day"])
	if err != nil {
		switch err {
		case usecase.ErrDayNotFound:
			response.NotFound(w, "Day not found")
		default:
			response.InternalServerError(w, "Failed to update business hours")
		}
		return
	}

	response.Success(w, http.StatusOK, "Business hours updated", day)
}
