package usecase

import (
	"context"
	"errors"
	"time"

	"dental-clinic-booking/internal/converter"
	"dental-clinic-booking/internal/delivery/dto"
	"dental-clinic-booking/internal/domain/entity"
	"dental-clinic-booking/internal/domain/repository"
	"dental-clinic-booking/internal/service"

	"github.com/sirupsen/logrus"
)

var (
	ErrAppointmentNotFound        = errors.New("appointment not found")
	ErrSlotNotOffered             = errors.New("date and time were not among the offered options")
	ErrAppointmentCanceled        = errors.New("appointment is canceled")
	ErrAppointmentAlreadyCanceled = errors.New("appointment is already canceled")
	ErrCancelNotConfirmed         = errors.New("cancellation must be confirmed")
)

type ManageUsecase interface {
	GetAppointment(ctx context.Context, code string) (*dto.ManagedAppointmentResponse, error)
	GetRescheduleOptions(ctx context.Context, code string) (*dto.RescheduleOptionsResponse, error)
	Reschedule(ctx context.Context, code string, req *dto.RescheduleRequest) (*dto.ManagedAppointmentResponse, error)
	Cancel(ctx context.Context, code string, req *dto.CancelAppointmentRequest) (*dto.CancelAppointmentResponse, error)
}

type manageUsecase struct {
	log        *logrus.Logger
	manageRepo repository.ManagedAppointmentRepository
	slotSource service.SlotSource
	now        func() time.Time
}

func NewManageUsecase(
	log *logrus.Logger,
	manageRepo repository.ManagedAppointmentRepository,
	slotSource service.SlotSource,
	now func() time.Time,
) ManageUsecase {
	return &manageUsecase{
		log:        log,
		manageRepo: manageRepo,
		slotSource: slotSource,
		now:        now,
	}
}

// find only consults the store for well-formed codes, so stray links never create records
func (u *manageUsecase) find(ctx context.Context, code string) (*entity.ManagedAppointment, error) {
	if !entity.IsConfirmationCode(code) {
		return nil, ErrAppointmentNotFound
	}
	appointment, err := u.manageRepo.FindByCode(ctx, code)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", code, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}
	return appointment, nil
}

func (u *manageUsecase) GetAppointment(ctx context.Context, code string) (*dto.ManagedAppointmentResponse, error) {
	appointment, err := u.find(ctx, code)
	if err != nil {
		return nil, err
	}
	return converter.ManagedAppointmentToResponse(appointment), nil
}

// GetRescheduleOptions draws a new set of options and remembers it for Reschedule
func (u *manageUsecase) GetRescheduleOptions(ctx context.Context, code string) (*dto.RescheduleOptionsResponse, error) {
	appointment, err := u.find(ctx, code)
	if err != nil {
		return nil, err
	}
	if appointment.IsCanceled() {
		return nil, ErrAppointmentCanceled
	}

	options := u.slotSource.RescheduleOptions(u.now())
	appointment.OfferReschedule(options)
	if err := u.manageRepo.Save(ctx, appointment); err != nil {
		u.log.Warnf("Failed to save reschedule options for %s: %+v", code, err)
		return nil, err
	}

	return converter.RescheduleOptionsToResponse(code, options), nil
}

func (u *manageUsecase) Reschedule(ctx context.Context, code string, req *dto.RescheduleRequest) (*dto.ManagedAppointmentResponse, error) {
	if req.Date == "" || req.Time == "" {
		return nil, ErrDateTimeRequired
	}
	date, err := entity.ParseDate(req.Date)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}

	appointment, err := u.find(ctx, code)
	if err != nil {
		return nil, err
	}
	if appointment.IsCanceled() {
		return nil, ErrAppointmentCanceled
	}
	if !appointment.IsOffered(date, req.Time) {
		return nil, ErrSlotNotOffered
	}

	appointment.Reschedule(date, req.Time)
	if err := u.manageRepo.Save(ctx, appointment); err != nil {
		u.log.Warnf("Failed to reschedule appointment %s: %+v", code, err)
		return nil, err
	}

	return converter.ManagedAppointmentToResponse(appointment), nil
}

// Cancel is final; there is no way to restore a canceled appointment
func (u *manageUsecase) Cancel(ctx context.Context, code string, req *dto.CancelAppointmentRequest) (*dto.CancelAppointmentResponse, error) {
	if !req.Confirm {
		return nil, ErrCancelNotConfirmed
	}

	appointment, err := u.find(ctx, code)
	if err != nil {
		return nil, err
	}
	if appointment.IsCanceled() {
		return nil, ErrAppointmentAlreadyCanceled
	}

	appointment.Cancel()
	if err := u.manageRepo.Save(ctx, appointment); err != nil {
		u.log.Warnf("Failed to cancel appointment %s: %+v", code, err)
		return nil, err
	}

	return &dto.CancelAppointmentResponse{
		ID:       appointment.ID,
		Status:   string(appointment.Status),
		NextStep: dto.StepHome,
	}, nil
}
