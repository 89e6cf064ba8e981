package usecase

import (
	"context"
	"errors"
	"time"

	"dental-clinic-booking/internal/converter"
	"dental-clinic-booking/internal/delivery/dto"
	"dental-clinic-booking/internal/domain/entity"
	"dental-clinic-booking/internal/domain/repository"
	"dental-clinic-booking/internal/infrastructure/metrics"
	"dental-clinic-booking/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrSessionNotFound        = errors.New("booking session not found")
	ErrServiceNotFound        = errors.New("service not found")
	ErrServiceRequired        = errors.New("a service must be selected first")
	ErrIncompleteDraft        = errors.New("service, date and time must be selected first")
	ErrMissingAppointmentInfo = errors.New("missing appointment information")
	ErrInvalidDateFormat      = errors.New("invalid date format, use YYYY-MM-DD")
)

type BookingUsecase interface {
	ListServices(ctx context.Context) (*dto.ServiceListResponse, error)
	StartSession(ctx context.Context) (*dto.SessionResponse, error)
	GetSession(ctx context.Context, sessionID uuid.UUID) (*dto.SessionResponse, error)
	UpdateAppointment(ctx context.Context, sessionID uuid.UUID, req *dto.UpdateDraftRequest) (*dto.SessionResponse, error)
	ClearSession(ctx context.Context, sessionID uuid.UUID) error
	SelectService(ctx context.Context, sessionID uuid.UUID, req *dto.SelectServiceRequest) (*dto.StepResponse, error)
	GetPatientInfo(ctx context.Context, sessionID uuid.UUID) (*dto.PatientInfoResponse, error)
	SubmitPatientInfo(ctx context.Context, sessionID uuid.UUID, req *dto.PatientInfoRequest) (*dto.StepResponse, error)
	GetConfirmation(ctx context.Context, sessionID uuid.UUID) (*dto.ConfirmationResponse, error)
}

type bookingUsecase struct {
	sessionStore
	serviceRepo   repository.ServiceRepository
	settingsRepo  repository.SettingsRepository
	slotSource    service.SlotSource
	notifications service.NotificationService
	metrics       *metrics.Metrics
}

func NewBookingUsecase(
	log *logrus.Logger,
	sessionRepo repository.SessionRepository,
	serviceRepo repository.ServiceRepository,
	settingsRepo repository.SettingsRepository,
	slotSource service.SlotSource,
	notifications service.NotificationService,
	m *metrics.Metrics,
	sessionTTL time.Duration,
	now func() time.Time,
) BookingUsecase {
	return &bookingUsecase{
		sessionStore: sessionStore{
			log:         log,
			sessionRepo: sessionRepo,
			ttl:         sessionTTL,
			now:         now,
		},
		serviceRepo:   serviceRepo,
		settingsRepo:  settingsRepo,
		slotSource:    slotSource,
		notifications: notifications,
		metrics:       m,
	}
}

func (u *bookingUsecase) ListServices(ctx context.Context) (*dto.ServiceListResponse, error) {
	services, err := u.serviceRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to find services: %+v", err)
		return nil, err
	}

	return &dto.ServiceListResponse{
		Services: converter.ServicesToResponses(services),
		Total:    len(services),
	}, nil
}

// StartSession opens an empty draft with the calendar on the current week
func (u *bookingUsecase) StartSession(ctx context.Context) (*dto.SessionResponse, error) {
	now := u.now()
	weekStart := entity.StartOfWeek(now)

	session := &entity.BookingSession{
		ID:        uuid.New(),
		CreatedAt: now,
	}
	session.Calendar.ShowWeek(weekStart, generateWeek(u.slotSource, weekStart))

	if err := u.save(ctx, session); err != nil {
		return nil, err
	}

	return converter.SessionToResponse(session, nextStep(session.Draft)), nil
}

func (u *bookingUsecase) GetSession(ctx context.Context, sessionID uuid.UUID) (*dto.SessionResponse, error) {
	session, err := u.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return converter.SessionToResponse(session, nextStep(session.Draft)), nil
}

// UpdateAppointment shallow-merges a partial draft without validating it
func (u *bookingUsecase) UpdateAppointment(ctx context.Context, sessionID uuid.UUID, req *dto.UpdateDraftRequest) (*dto.SessionResponse, error) {
	session, err := u.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	update := entity.DraftUpdate{
		Time:        req.Time,
		PatientInfo: converter.PatientInfoPayloadToEntity(req.PatientInfo),
	}

	if req.ServiceID != nil {
		svc, err := u.serviceRepo.FindByID(ctx, *req.ServiceID)
		if err != nil {
			u.log.Warnf("Failed to find service %d: %+v", *req.ServiceID, err)
			return nil, err
		}
		if svc == nil {
			return nil, ErrServiceNotFound
		}
		update.Service = svc
	}

	if req.Date != nil {
		date, err := entity.ParseDate(*req.Date)
		if err != nil {
			return nil, ErrInvalidDateFormat
		}
		update.Date = &date
	}

	session.Draft = session.Draft.Merge(update)
	if err := u.save(ctx, session); err != nil {
		return nil, err
	}

	return converter.SessionToResponse(session, nextStep(session.Draft)), nil
}

func (u *bookingUsecase) ClearSession(ctx context.Context, sessionID uuid.UUID) error {
	if _, err := u.load(ctx, sessionID); err != nil {
		return err
	}
	if err := u.sessionRepo.Delete(ctx, sessionID); err != nil {
		u.log.Warnf("Failed to delete booking session %s: %+v", sessionID, err)
		return err
	}
	return nil
}

func (u *bookingUsecase) SelectService(ctx context.Context, sessionID uuid.UUID, req *dto.SelectServiceRequest) (*dto.StepResponse, error) {
	session, err := u.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	svc, err := u.serviceRepo.FindByID(ctx, req.ServiceID)
	if err != nil {
		u.log.Warnf("Failed to find service %d: %+v", req.ServiceID, err)
		return nil, err
	}
	if svc == nil {
		return nil, ErrServiceNotFound
	}

	session.Draft = session.Draft.Merge(entity.DraftUpdate{Service: svc})
	if err := u.save(ctx, session); err != nil {
		return nil, err
	}

	return &dto.StepResponse{
		Draft:    converter.DraftToResponse(session.Draft),
		NextStep: dto.StepCalendar,
	}, nil
}

// GetPatientInfo is the entry guard of the patient form
func (u *bookingUsecase) GetPatientInfo(ctx context.Context, sessionID uuid.UUID) (*dto.PatientInfoResponse, error) {
	session, err := u.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if !session.Draft.HasSchedule() {
		return nil, ErrIncompleteDraft
	}

	info := converter.PatientInfoToResponse(session.Draft.PatientInfo)
	return &info, nil
}

// SubmitPatientInfo stores an already validated form
func (u *bookingUsecase) SubmitPatientInfo(ctx context.Context, sessionID uuid.UUID, req *dto.PatientInfoRequest) (*dto.StepResponse, error) {
	session, err := u.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if !session.Draft.HasSchedule() {
		return nil, ErrIncompleteDraft
	}

	info := converter.PatientInfoRequestToEntity(req)
	session.Draft = session.Draft.Merge(entity.DraftUpdate{PatientInfo: &info})
	if err := u.save(ctx, session); err != nil {
		return nil, err
	}

	return &dto.StepResponse{
		Draft:    converter.DraftToResponse(session.Draft),
		NextStep: dto.StepConfirmation,
	}, nil
}

// GetConfirmation renders the confirmation with a fresh display code on every call.
// Notifications go out on the first successful call of a session only.
func (u *bookingUsecase) GetConfirmation(ctx context.Context, sessionID uuid.UUID) (*dto.ConfirmationResponse, error) {
	session, err := u.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if !session.Draft.IsComplete() {
		return nil, ErrMissingAppointmentInfo
	}

	settings, err := u.settingsRepo.Get(ctx)
	if err != nil {
		u.log.Warnf("Failed to get clinic settings: %+v", err)
		return nil, err
	}

	code := u.slotSource.ConfirmationCode()
	confirmation := converter.DraftToConfirmation(session.Draft, code, settings.ContactInfo.Phone)
	u.metrics.ObserveConfirmation(session.Draft.Service.Name)

	if !session.IsNotified() {
		notice := service.ConfirmationNotice{
			Code:        code,
			ServiceName: session.Draft.Service.Name,
			Date:        *session.Draft.Date,
			Time:        *session.Draft.Time,
			Patient:     session.Draft.PatientInfo,
			ClinicPhone: settings.ContactInfo.Phone,
		}
		if err := u.notifications.NotifyConfirmation(ctx, notice, settings.Notifications); err != nil {
			u.log.Warnf("Failed to notify patient for session %s: %+v", session.ID, err)
		}
		session.MarkNotified(u.now())
		if err := u.save(ctx, session); err != nil {
			return nil, err
		}
	}

	return confirmation, nil
}
