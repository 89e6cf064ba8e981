package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"

	"dental-clinic-booking/internal/delivery/dto"
	"dental-clinic-booking/internal/delivery/http/middleware"
	"dental-clinic-booking/internal/usecase"
	"dental-clinic-booking/pkg/response"
	"dental-clinic-booking/pkg/validator"
)

type ExportHandler struct {
	exportUsecase usecase.ExportUsecase
	validator     *validator.CustomValidator
}

func NewExportHandler(exportUsecase usecase.ExportUsecase, validator *validator.CustomValidator) *ExportHandler {
	return &ExportHandler{
		exportUsecase: exportUsecase,
		validator:     validator,
	}
}

func writeExportError(w http.ResponseWriter, err error, fallback string) {
	switch err {
	case usecase.ErrInvalidDateFormat, usecase.ErrInvalidDateRange:
		response.BadRequest(w, err.Error())
	default:
		response.InternalServerError(w, fallback)
	}
}

func (h *ExportHandler) Export(w http.ResponseWriter, r *http.Request) {
	var req dto.ExportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	actor, _ := middleware.GetAdminEmailFromContext(r.Context())
	result, err := h.exportUsecase.Export(r.Context(), actor, &req)
	if err != nil {
		writeExportError(w, err, "Failed to export appointments")
		return
	}

	response.Success(w, http.StatusOK, "Export completed successfully", result)
}

// Download streams the appointments in range as CSV; missing dates fall back to the defaults
func (h *ExportHandler) Download(w http.ResponseWriter, r *http.Request) {
	defaults := h.exportUsecase.Defaults()
	startDate := r.URL.Query().Get("start_date")
	if startDate == "" {
		startDate = defaults.StartDate
	}
	endDate := r.URL.Query().Get("end_date")
	if endDate == "" {
		endDate = defaults.EndDate
	}

	// Buffered so a failure can still be reported as a JSON error
	var buf bytes.Buffer
	if _, err := h.exportUsecase.WriteCSV(r.Context(), startDate, endDate, &buf); err != nil {
		writeExportError(w, err, "Failed to export appointments")
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=\"appointments_%s_%s.csv\"", startDate, endDate))
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}
