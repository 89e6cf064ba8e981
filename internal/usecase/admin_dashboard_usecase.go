package usecase

import (
	"context"
	"errors"

	"dental-clinic-booking/internal/converter"
	"dental-clinic-booking/internal/delivery/dto"
	"dental-clinic-booking/internal/domain/entity"
	"dental-clinic-booking/internal/domain/repository"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

var (
	ErrInvalidPage              = errors.New("unknown dashboard page")
	ErrAdminAppointmentNotFound = errors.New("appointment not found")
)

var monthlyRevenue = decimal.NewFromInt(9482)

// dashboardStats are display values; they are not computed from appointments
var dashboardStats = []entity.StatCard{
	{Title: "Total Appointments", Value: "142", Change: "+12%"},
	{Title: "Completion Rate", Value: "94%", Change: "+2%"},
	{Title: "New Patients", Value: "28", Change: "+8%"},
	{Title: "Total Revenue", Value: entity.FormatDollars(monthlyRevenue), Change: "+15%"},
}

type AdminDashboardUsecase interface {
	GetDashboard(ctx context.Context, page string, filter entity.AppointmentFilter) (*dto.DashboardResponse, error)
	ListAppointments(ctx context.Context, filter entity.AppointmentFilter) (*dto.AppointmentListResponse, error)
	GetAppointment(ctx context.Context, id int) (*dto.AppointmentDetailResponse, error)
}

type adminDashboardUsecase struct {
	log                 *logrus.Logger
	appointmentRepo     repository.AppointmentRepository
	availabilityUsecase AvailabilityUsecase
	settingsUsecase     SettingsUsecase
	exportUsecase       ExportUsecase
}

func NewAdminDashboardUsecase(
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	availabilityUsecase AvailabilityUsecase,
	settingsUsecase SettingsUsecase,
	exportUsecase ExportUsecase,
) AdminDashboardUsecase {
	return &adminDashboardUsecase{
		log:                 log,
		appointmentRepo:     appointmentRepo,
		availabilityUsecase: availabilityUsecase,
		settingsUsecase:     settingsUsecase,
		exportUsecase:       exportUsecase,
	}
}

func (u *adminDashboardUsecase) GetDashboard(ctx context.Context, page string, filter entity.AppointmentFilter) (*dto.DashboardResponse, error) {
	active, ok := entity.ParseDashboardPage(page)
	if !ok {
		return nil, ErrInvalidPage
	}

	var (
		content interface{}
		err     error
	)
	switch active {
	case entity.DashboardPageAppointments:
		content, err = u.ListAppointments(ctx, filter)
	case entity.DashboardPageAvailability:
		content, err = u.availabilityUsecase.GetAvailability(ctx)
	case entity.DashboardPageExport:
		content = u.exportUsecase.Defaults()
	case entity.DashboardPageSettings:
		content, err = u.settingsUsecase.GetSettings(ctx)
	}
	if err != nil {
		return nil, err
	}

	pages := make([]string, len(entity.DashboardPages))
	for i, p := range entity.DashboardPages {
		pages[i] = string(p)
	}

	return &dto.DashboardResponse{
		ActivePage: string(active),
		Pages:      pages,
		Stats:      converter.StatCardsToResponses(dashboardStats),
		Content:    content,
	}, nil
}

func (u *adminDashboardUsecase) ListAppointments(ctx context.Context, filter entity.AppointmentFilter) (*dto.AppointmentListResponse, error) {
	appointments, err := u.appointmentRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to find appointments: %+v", err)
		return nil, err
	}

	filtered := entity.FilterAppointments(appointments, filter)
	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(filtered),
		Dates:        entity.FilterDates(appointments),
		Filter: dto.AppointmentFilterResponse{
			Search: filter.Search,
			Date:   filter.Date,
			Status: filter.Status,
		},
		Total: len(filtered),
	}, nil
}

func (u *adminDashboardUsecase) GetAppointment(ctx context.Context, id int) (*dto.AppointmentDetailResponse, error) {
	appointment, err := u.appointmentRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find appointment %d: %+v", id, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAdminAppointmentNotFound
	}
	return converter.AppointmentToDetailResponse(appointment), nil
}
