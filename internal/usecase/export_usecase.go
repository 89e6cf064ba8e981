package usecase

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"dental-clinic-booking/internal/delivery/dto"
	"dental-clinic-booking/internal/domain/entity"
	"dental-clinic-booking/internal/domain/repository"
	"dental-clinic-booking/internal/service"

	"github.com/sirupsen/logrus"
)

const (
	DefaultExportStartDate = "2025-04-01"
	DefaultExportEndDate   = "2025-04-30"
)

var (
	ErrInvalidDateRange = errors.New("start date must not be after end date")
)

var csvHeader = []string{"id", "patient_name", "date", "time", "service", "status"}

type ExportUsecase interface {
	Defaults() *dto.ExportDefaultsResponse
	Export(ctx context.Context, actor string, req *dto.ExportRequest) (*dto.ExportResponse, error)
	WriteCSV(ctx context.Context, startDate, endDate string, w io.Writer) (int, error)
}

type exportUsecase struct {
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	auditService    service.AuditService
	now             func() time.Time
}

func NewExportUsecase(
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	auditService service.AuditService,
	now func() time.Time,
) ExportUsecase {
	return &exportUsecase{
		log:             log,
		appointmentRepo: appointmentRepo,
		auditService:    auditService,
		now:             now,
	}
}

func (u *exportUsecase) Defaults() *dto.ExportDefaultsResponse {
	return &dto.ExportDefaultsResponse{
		StartDate: DefaultExportStartDate,
		EndDate:   DefaultExportEndDate,
		Format:    string(entity.ExportFormatCSV),
		Formats: []string{
			string(entity.ExportFormatCSV),
			string(entity.ExportFormatExcel),
			string(entity.ExportFormatPDF),
		},
	}
}

func (u *exportUsecase) findInRange(ctx context.Context, startDate, endDate string) ([]entity.Appointment, error) {
	start, err := entity.ParseDate(startDate)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}
	end, err := entity.ParseDate(endDate)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}
	if start.After(end) {
		return nil, ErrInvalidDateRange
	}

	appointments, err := u.appointmentRepo.FindByDateRange(ctx, startDate, endDate)
	if err != nil {
		u.log.Warnf("Failed to find appointments between %s and %s: %+v", startDate, endDate, err)
		return nil, err
	}
	return appointments, nil
}

func (u *exportUsecase) Export(ctx context.Context, actor string, req *dto.ExportRequest) (*dto.ExportResponse, error) {
	appointments, err := u.findInRange(ctx, req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}

	format := entity.ExportFormat(req.Format)
	result := entity.ExportResult{
		FileName:    fmt.Sprintf("appointments_%s_%s.%s", req.StartDate, req.EndDate, format.FileExtension()),
		Format:      format,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Records:     len(appointments),
		GeneratedAt: u.now(),
	}

	if err := u.auditService.LogAction(ctx, actor, entity.AuditActionAppointmentsExport, entity.JSON{
		"format":     string(format),
		"start_date": req.StartDate,
		"end_date":   req.EndDate,
		"records":    result.Records,
	}); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	return &dto.ExportResponse{
		FileName:    result.FileName,
		Format:      string(result.Format),
		StartDate:   result.StartDate,
		EndDate:     result.EndDate,
		Records:     result.Records,
		GeneratedAt: result.GeneratedAt,
	}, nil
}

// WriteCSV writes the in-range rows with a header line and returns the row count
func (u *exportUsecase) WriteCSV(ctx context.Context, startDate, endDate string, w io.Writer) (int, error) {
	appointments, err := u.findInRange(ctx, startDate, endDate)
	if err != nil {
		return 0, err
	}

	writer := csv.NewWriter(w)
	if err := writer.Write(csvHeader); err != nil {
		return 0, err
	}
	for _, a := range appointments {
		record := []string{strconv.Itoa(a.ID), a.PatientName, a.Date, a.Time, a.Service, string(a.Status)}
		if err := writer.Write(record); err != nil {
			return 0, err
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		u.log.Warnf("Failed to write appointments csv: %+v", err)
		return 0, err
	}
	return len(appointments), nil
}
