package http

import (
	"net/http"

	"dental-clinic-booking/internal/delivery/http/handler"
	"dental-clinic-booking/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Router struct {
	router              *mux.Router
	bookingHandler      *handler.BookingHandler
	calendarHandler     *handler.CalendarHandler
	manageHandler       *handler.ManageHandler
	authHandler         *handler.AuthHandler
	dashboardHandler    *handler.DashboardHandler
	availabilityHandler *handler.AvailabilityHandler
	settingsHandler     *handler.SettingsHandler
	exportHandler       *handler.ExportHandler
	auditLogHandler     *handler.AuditLogHandler
	authMiddleware      *middleware.AuthMiddleware
	corsMiddleware      *middleware.CORSMiddleware
	loggingMiddleware   *middleware.LoggingMiddleware
	metricsHandler      http.Handler
}

type Handlers struct {
	Booking      *handler.BookingHandler
	Calendar     *handler.CalendarHandler
	Manage       *handler.ManageHandler
	Auth         *handler.AuthHandler
	Dashboard    *handler.DashboardHandler
	Availability *handler.AvailabilityHandler
	Settings     *handler.SettingsHandler
	Export       *handler.ExportHandler
	AuditLog     *handler.AuditLogHandler
}

// NewRouter wires the handlers; a nil metricsHandler serves the default Prometheus registry
func NewRouter(
	handlers Handlers,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
	loggingMiddleware *middleware.LoggingMiddleware,
	metricsHandler http.Handler,
) *Router {
	if metricsHandler == nil {
		metricsHandler = promhttp.Handler()
	}
	return &Router{
		router:              mux.NewRouter(),
		bookingHandler:      handlers.Booking,
		calendarHandler:     handlers.Calendar,
		manageHandler:       handlers.Manage,
		authHandler:         handlers.Auth,
		dashboardHandler:    handlers.Dashboard,
		availabilityHandler: handlers.Availability,
		settingsHandler:     handlers.Settings,
		exportHandler:       handlers.Export,
		auditLogHandler:     handlers.AuditLog,
		authMiddleware:      authMiddleware,
		corsMiddleware:      corsMiddleware,
		loggingMiddleware:   loggingMiddleware,
		metricsHandler:      metricsHandler,
	}
}

func (r *Router) Setup() *mux.Router {
	r.router.Handle("/metrics", r.metricsHandler).Methods(http.MethodGet)

	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Service catalog
	api.HandleFunc("/services", r.bookingHandler.ListServices).Methods(http.MethodGet)

	// Booking wizard
	booking := api.PathPrefix("/booking/sessions").Subrouter()
	booking.HandleFunc("", r.bookingHandler.StartSession).Methods(http.MethodPost)
	booking.HandleFunc("/{sessionId}", r.bookingHandler.GetSession).Methods(http.MethodGet)
	booking.HandleFunc("/{sessionId}", r.bookingHandler.UpdateAppointment).Methods(http.MethodPatch)
	booking.HandleFunc("/{sessionId}", r.bookingHandler.ClearSession).Methods(http.MethodDelete)
	booking.HandleFunc("/{sessionId}/service", r.bookingHandler.SelectService).Methods(http.MethodPost)
	booking.HandleFunc("/{sessionId}/calendar", r.calendarHandler.GetCalendar).Methods(http.MethodGet)
	booking.HandleFunc("/{sessionId}/calendar/next-week", r.calendarHandler.NextWeek).Methods(http.MethodPost)
	booking.HandleFunc("/{sessionId}/calendar/previous-week", r.calendarHandler.PreviousWeek).Methods(http.MethodPost)
	booking.HandleFunc("/{sessionId}/calendar/date", r.calendarHandler.SelectDate).Methods(http.MethodPost)
	booking.HandleFunc("/{sessionId}/calendar/time", r.calendarHandler.SelectTime).Methods(http.MethodPost)
	booking.HandleFunc("/{sessionId}/calendar/continue", r.calendarHandler.Continue).Methods(http.MethodPost)
	booking.HandleFunc("/{sessionId}/patient-info", r.bookingHandler.GetPatientInfo).Methods(http.MethodGet)
	booking.HandleFunc("/{sessionId}/patient-info", r.bookingHandler.SubmitPatientInfo).Methods(http.MethodPost)
	booking.HandleFunc("/{sessionId}/confirmation", r.bookingHandler.GetConfirmation).Methods(http.MethodGet)

	// Manage appointment (public, keyed by confirmation code)
	manage := api.PathPrefix("/manage/{appointmentId}").Subrouter()
	manage.HandleFunc("", r.manageHandler.GetAppointment).Methods(http.MethodGet)
	manage.HandleFunc("/reschedule-options", r.manageHandler.GetRescheduleOptions).Methods(http.MethodGet)
	manage.HandleFunc("/reschedule", r.manageHandler.Reschedule).Methods(http.MethodPost)
	manage.HandleFunc("/cancel", r.manageHandler.Cancel).Methods(http.MethodPost)

	// Admin login (public)
	api.HandleFunc("/admin/login", r.authHandler.Login).Methods(http.MethodPost)

	// Admin routes (protected - admin only)
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(r.authMiddleware.Authenticate)
	admin.Use(middleware.RequireAdmin)

	admin.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	admin.HandleFunc("/dashboard", r.dashboardHandler.GetDashboard).Methods(http.MethodGet)
	admin.HandleFunc("/appointments", r.dashboardHandler.ListAppointments).Methods(http.MethodGet)
	admin.HandleFunc("/appointments/{id}", r.dashboardHandler.GetAppointment).Methods(http.MethodGet)

	// Availability editor
	admin.HandleFunc("/availability", r.availabilityHandler.GetAvailability).Methods(http.MethodGet)
	admin.HandleFunc("/availability", r.availabilityHandler.SaveAvailability).Methods(http.MethodPut)
	admin.HandleFunc("/availability/exceptions", r.availabilityHandler.ListExceptions).Methods(http.MethodGet)
	admin.HandleFunc("/availability/exceptions", r.availabilityHandler.AddException).Methods(http.MethodPost)
	admin.HandleFunc("/availability/exceptions/{id}", r.availabilityHandler.DeleteException).Methods(http.MethodDelete)
	admin.HandleFunc("/availability/{day}/slots", r.availabilityHandler.UpdateDaySlots).Methods(http.MethodPut)
	admin.HandleFunc("/availability/{day}/toggle", r.availabilityHandler.ToggleDay).Methods(http.MethodPost)

	// Clinic settings
	admin.HandleFunc("/settings", r.settingsHandler.GetSettings).Methods(http.MethodGet)
	admin.HandleFunc("/settings", r.settingsHandler.SaveSettings).Methods(http.MethodPut)
	admin.HandleFunc("/settings/business-hours/{day}/toggle", r.settingsHandler.ToggleBusinessDay).Methods(http.MethodPost)

	// Export and audit trail
	admin.HandleFunc("/export", r.exportHandler.Export).Methods(http.MethodPost)
	admin.HandleFunc("/export/download", r.exportHandler.Download).Methods(http.MethodGet)
	admin.HandleFunc("/audit-logs", r.auditLogHandler.GetAllAuditLogs).Methods(http.MethodGet)

	// Add logging middleware
	r.router.Use(r.loggingMiddleware.Handle)

	return r.router
}

// Handler wraps the routes with CORS outside of mux so preflight requests
// are answered even though no route accepts OPTIONS
func (r *Router) Handler() http.Handler {
	return r.corsMiddleware.Handle(r.Setup())
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
