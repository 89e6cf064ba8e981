package usecase

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"testing"

	"dental-clinic-booking/internal/delivery/dto"
	"dental-clinic-booking/internal/domain/entity"
	"dental-clinic-booking/internal/repository"
	"dental-clinic-booking/internal/service"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type adminFixture struct {
	dashboard    AdminDashboardUsecase
	availability AvailabilityUsecase
	settings     SettingsUsecase
	export       ExportUsecase
	auditLogs    AuditLogUsecase
	audit        service.AuditService
}

func newAdminFixture() *adminFixture {
	log := quietLogger()
	auditRepo := repository.NewMemoryAuditLogRepository()
	audit := service.NewAuditService(log, auditRepo)
	appointments := repository.NewMemoryAppointmentRepository(repository.MockAppointments())

	availability := NewAvailabilityUsecase(log, repository.NewAvailabilityRepository(), audit)
	settings := NewSettingsUsecase(log, repository.NewSettingsRepository(), audit)
	export := NewExportUsecase(log, appointments, audit, testNow)

	return &adminFixture{
		dashboard:    NewAdminDashboardUsecase(log, appointments, availability, settings, export),
		availability: availability,
		settings:     settings,
		export:       export,
		auditLogs:    NewAuditLogUsecase(log, auditRepo),
		audit:        audit,
	}
}

func TestDashboard_DefaultsToAppointments(t *testing.T) {
	f := newAdminFixture()

	dashboard, err := f.dashboard.GetDashboard(context.Background(), "", entity.AppointmentFilter{})
	require.NoError(t, err)
	assert.Equal(t, "appointments", dashboard.ActivePage)
	assert.Equal(t, []string{"appointments", "availability", "export", "settings"}, dashboard.Pages)
	require.Len(t, dashboard.Stats, 4)
	assert.Equal(t, dto.StatCardResponse{Title: "Total Revenue", Value: "$9,482", Change: "+15%"}, dashboard.Stats[3])

	list, ok := dashboard.Content.(*dto.AppointmentListResponse)
	require.True(t, ok)
	assert.Equal(t, 6, list.Total)
}

func TestDashboard_Pages(t *testing.T) {
	f := newAdminFixture()
	ctx := context.Background()

	dashboard, err := f.dashboard.GetDashboard(ctx, "export", entity.AppointmentFilter{})
	require.NoError(t, err)
	defaults, ok := dashboard.Content.(*dto.ExportDefaultsResponse)
	require.True(t, ok)
	assert.Equal(t, "2025-04-01", defaults.StartDate)
	assert.Equal(t, "2025-04-30", defaults.EndDate)
	assert.Equal(t, "csv", defaults.Format)

	dashboard, err = f.dashboard.GetDashboard(ctx, "settings", entity.AppointmentFilter{})
	require.NoError(t, err)
	_, ok = dashboard.Content.(*dto.SettingsResponse)
	assert.True(t, ok)

	_, err = f.dashboard.GetDashboard(ctx, "billing", entity.AppointmentFilter{})
	assert.ErrorIs(t, err, ErrInvalidPage)
}

func TestListAppointments_Filters(t *testing.T) {
	f := newAdminFixture()
	ctx := context.Background()

	canceled, err := f.dashboard.ListAppointments(ctx, entity.AppointmentFilter{Status: "canceled"})
	require.NoError(t, err)
	require.Equal(t, 1, canceled.Total)
	assert.Equal(t, 5, canceled.Appointments[0].ID)
	assert.Equal(t, "Jessica Brown", canceled.Appointments[0].PatientName)

	search, err := f.dashboard.ListAppointments(ctx, entity.AppointmentFilter{Search: "DENTAL", Date: "2025-04-15", Status: "all"})
	require.NoError(t, err)
	assert.Equal(t, 2, search.Total)
	assert.Equal(t, []string{"2025-04-15", "2025-04-16", "2025-04-17"}, search.Dates)
}

func TestGetAppointment_Notes(t *testing.T) {
	f := newAdminFixture()
	ctx := context.Background()

	even, err := f.dashboard.GetAppointment(ctx, 2)
	require.NoError(t, err)
	odd, err := f.dashboard.GetAppointment(ctx, 3)
	require.NoError(t, err)
	assert.NotEqual(t, even.Notes, odd.Notes)
	assert.Equal(t, "Michael Chen", even.PatientName)

	_, err = f.dashboard.GetAppointment(ctx, 42)
	assert.ErrorIs(t, err, ErrAdminAppointmentNotFound)
}

func TestAvailability_ToggleAndSlots(t *testing.T) {
	f := newAdminFixture()
	ctx := context.Background()

	rule, err := f.availability.ToggleDay(ctx, "admin@dentalclinic.com", "sunday")
	require.NoError(t, err)
	assert.Equal(t, "Sunday", rule.Day)
	assert.True(t, rule.IsActive)

	rule, err = f.availability.UpdateDaySlots(ctx, "admin@dentalclinic.com", "Sunday", &dto.UpdateDaySlotsRequest{Slots: []string{"10:00 AM - 12:00 PM"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"10:00 AM - 12:00 PM"}, rule.Slots)

	_, err = f.availability.ToggleDay(ctx, "admin@dentalclinic.com", "Funday")
	assert.ErrorIs(t, err, ErrDayNotFound)

	availability, err := f.availability.GetAvailability(ctx)
	require.NoError(t, err)
	assert.True(t, availability.Rules[6].IsActive)

	logs, err := f.auditLogs.ListLogs(ctx, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(2), logs.Total)
	assert.Equal(t, entity.AuditActionAvailabilityDaySlots, logs.Logs[0].Action)
}

func TestAvailability_SaveRequiresFullWeek(t *testing.T) {
	f := newAdminFixture()
	ctx := context.Background()

	rules := make([]dto.AvailabilityRuleRequest, 0, 7)
	for _, day := range []string{"Sunday", "Saturday", "Friday", "Thursday", "Wednesday", "Tuesday", "Monday"} {
		rules = append(rules, dto.AvailabilityRuleRequest{Day: day, Slots: []string{"8:00 AM - 12:00 PM"}, IsActive: true})
	}
	saved, err := f.availability.SaveAvailability(ctx, "admin@dentalclinic.com", &dto.SaveAvailabilityRequest{Rules: rules})
	require.NoError(t, err)
	assert.Equal(t, "Monday", saved.Rules[0].Day)
	assert.Equal(t, "Sunday", saved.Rules[6].Day)

	rules[0].Day = "Monday"
	_, err = f.availability.SaveAvailability(ctx, "admin@dentalclinic.com", &dto.SaveAvailabilityRequest{Rules: rules})
	assert.ErrorIs(t, err, ErrInvalidAvailability)
}

func TestAvailability_Exceptions(t *testing.T) {
	f := newAdminFixture()
	ctx := context.Background()

	exceptions, err := f.availability.ListExceptions(ctx)
	require.NoError(t, err)
	require.Len(t, exceptions, 1)
	assert.Equal(t, "Holiday", exceptions[0].Reason)

	created, err := f.availability.AddException(ctx, "admin@dentalclinic.com", &dto.CreateExceptionRequest{Date: "2025-07-04", Reason: "Independence Day"})
	require.NoError(t, err)
	assert.Equal(t, 2, created.ID)
	assert.Equal(t, []string{}, created.Slots)

	require.NoError(t, f.availability.DeleteException(ctx, "admin@dentalclinic.com", created.ID))
	assert.ErrorIs(t, f.availability.DeleteException(ctx, "admin@dentalclinic.com", created.ID), ErrExceptionNotFound)
}

func TestSettings_SaveAndToggle(t *testing.T) {
	f := newAdminFixture()
	ctx := context.Background()

	current, err := f.settings.GetSettings(ctx)
	require.NoError(t, err)
	assert.False(t, current.Notifications.SMS)
	assert.False(t, current.BusinessHours[6].IsOpen)

	day, err := f.settings.ToggleBusinessDay(ctx, "admin@dentalclinic.com", "Sunday")
	require.NoError(t, err)
	assert.True(t, day.IsOpen)

	req := &dto.SaveSettingsRequest{
		BusinessHours: current.BusinessHours,
		Notifications: dto.NotificationSettingsDTO{Email: true, SMS: true},
		ContactInfo:   dto.ContactInfoDTO{Phone: "(555) 987-6543", Email: "front@dentalclinic.com"},
	}
	saved, err := f.settings.SaveSettings(ctx, "admin@dentalclinic.com", req)
	require.NoError(t, err)
	assert.True(t, saved.Notifications.SMS)
	assert.Equal(t, "(555) 987-6543", saved.ContactInfo.Phone)
	assert.False(t, saved.BusinessHours[6].IsOpen)

	_, err = f.settings.ToggleBusinessDay(ctx, "admin@dentalclinic.com", "Someday")
	assert.ErrorIs(t, err, ErrDayNotFound)
}

func TestAdminChanges_SurviveAuditFailure(t *testing.T) {
	log, hook := logtest.NewNullLogger()
	audit := &recordingAuditService{fail: errors.New("audit store down")}
	availability := NewAvailabilityUsecase(log, repository.NewAvailabilityRepository(), audit)
	settings := NewSettingsUsecase(log, repository.NewSettingsRepository(), audit)
	export := NewExportUsecase(log, repository.NewMemoryAppointmentRepository(repository.MockAppointments()), audit, testNow)
	ctx := context.Background()

	rule, err := availability.ToggleDay(ctx, "admin@dentalclinic.com", "Sunday")
	require.NoError(t, err)
	assert.True(t, rule.IsActive)

	day, err := settings.ToggleBusinessDay(ctx, "admin@dentalclinic.com", "Sunday")
	require.NoError(t, err)
	assert.True(t, day.IsOpen)

	_, err = export.Export(ctx, "admin@dentalclinic.com", &dto.ExportRequest{Format: "csv", StartDate: "2025-04-15", EndDate: "2025-04-17"})
	require.NoError(t, err)

	assert.Equal(t, []string{
		entity.AuditActionAvailabilityToggle,
		entity.AuditActionSettingsToggleBusiness,
		entity.AuditActionAppointmentsExport,
	}, audit.actions)
	require.Len(t, hook.AllEntries(), 3)
	for _, entry := range hook.AllEntries() {
		assert.Equal(t, logrus.WarnLevel, entry.Level)
		assert.Contains(t, entry.Message, "Failed to create audit log")
	}
}

func TestExport_SummaryAndCSV(t *testing.T) {
	f := newAdminFixture()
	ctx := context.Background()

	summary, err := f.export.Export(ctx, "admin@dentalclinic.com", &dto.ExportRequest{StartDate: "2025-04-15", EndDate: "2025-04-16", Format: "excel"})
	require.NoError(t, err)
	assert.Equal(t, 5, summary.Records)
	assert.Equal(t, "appointments_2025-04-15_2025-04-16.xlsx", summary.FileName)

	_, err = f.export.Export(ctx, "admin@dentalclinic.com", &dto.ExportRequest{StartDate: "2025-04-30", EndDate: "2025-04-01", Format: "csv"})
	assert.ErrorIs(t, err, ErrInvalidDateRange)

	var buf bytes.Buffer
	count, err := f.export.WriteCSV(ctx, "2025-04-17", "2025-04-30", &buf)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, []string{"6", "Robert Taylor", "2025-04-17", "09:30 AM", "Root Canal", "pending"}, records[1])
}

func TestAuditLogs_Pagination(t *testing.T) {
	f := newAdminFixture()
	ctx := context.Background()
	for i := 0; i < 3; i++ {
		require.NoError(t, f.audit.LogAction(ctx, "admin@dentalclinic.com", entity.AuditActionSettingsSave, nil))
	}

	page, err := f.auditLogs.ListLogs(ctx, 2, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(3), page.Total)
	assert.Len(t, page.Logs, 1)
	assert.Equal(t, int64(1), page.Logs[0].ID)

	defaults, err := f.auditLogs.ListLogs(ctx, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, defaults.Page)
	assert.Equal(t, 20, defaults.Limit)
}
