package handler

import (
	"net/http"
	"strconv"

	"dental-clinic-booking/internal/domain/entity"
	"dental-clinic-booking/internal/usecase"
	"dental-clinic-booking/pkg/response"

	"github.com/gorilla/mux"
)

type DashboardHandler struct {
	dashboardUsecase usecase.AdminDashboardUsecase
}

func NewDashboardHandler(dashboardUsecase usecase.AdminDashboardUsecase) *DashboardHandler {
	return &DashboardHandler{
		dashboardUsecase: dashboardUsecase,
	}
}

func filterFromQuery(r *http.Request) entity.AppointmentFilter {
	q := r.URL.Query()
	return entity.AppointmentFilter{
		Search: q.Get("search"),
		Date:   q.Get("date"),
		Status: q.Get("status"),
	}
}

func (h *DashboardHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	filter := filterFromQuery(r)
	if !filter.HasValidStatus() {
		response.BadRequest(w, "Invalid status filter")
		return
	}

	dashboard, err := h.dashboardUsecase.GetDashboard(r.Context(), r.URL.Query().Get("page"), filter)
	if err != nil {
		switch err {
		case usecase.ErrInvalidPage:
			response.NotFound(w, "Dashboard page not found")
		default:
			response.InternalServerError(w, "Failed to get dashboard")
		}
		return
	}

	response.Success(w, http.StatusOK, "Dashboard retrieved successfully", dashboard)
}

func (h *DashboardHandler) ListAppointments(w http.ResponseWriter, r *http.Request) {
	filter := filterFromQuery(r)
	if !filter.HasValidStatus() {
		response.BadRequest(w, "Invalid status filter")
		return
	}

	appointments, err := h.dashboardUsecase.ListAppointments(r.Context(), filter)
	if err != nil {
		response.InternalServerError(w, "Failed to get appointments")
		return
	}

	response.Success(w, http.StatusOK, "Appointments retrieved successfully", appointments)
}

func (h *DashboardHandler) GetAppointment(w http.ResponseWriter, r *http.Request) {
	appointmentID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid appointment ID")
		return
	}

	appointment, err := h.dashboardUsecase.GetAppointment(r.Context(), appointmentID)
	if err != nil {
		if err == usecase.ErrAdminAppointmentNotFound {
			response.NotFound(w, "Appointment not found")
			return
		}
		response.InternalServerError(w, "Failed to get appointment")
		return
	}

	response.Success(w, http.StatusOK, "Appointment retrieved successfully", appointment)
}
