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

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrDateNotSelectable = errors.New("date has no available time slots")
	ErrNoDateSelected    = errors.New("a date must be selected first")
	ErrTimeNotAvailable  = errors.New("time slot is not available on the selected date")
	ErrDateTimeRequired  = errors.New("both a date and a time must be selected")
)

type CalendarUsecase interface {
	GetCalendar(ctx context.Context, sessionID uuid.UUID) (*dto.CalendarResponse, error)
	NextWeek(ctx context.Context, sessionID uuid.UUID) (*dto.CalendarResponse, error)
	PreviousWeek(ctx context.Context, sessionID uuid.UUID) (*dto.CalendarResponse, error)
	SelectDate(ctx context.Context, sessionID uuid.UUID, req *dto.SelectDateRequest) (*dto.CalendarResponse, error)
	SelectTime(ctx context.Context, sessionID uuid.UUID, req *dto.SelectTimeRequest) (*dto.CalendarResponse, error)
	Continue(ctx context.Context, sessionID uuid.UUID) (*dto.StepResponse, error)
}

type calendarUsecase struct {
	sessionStore
	slotSource service.SlotSource
}

func NewCalendarUsecase(
	log *logrus.Logger,
	sessionRepo repository.SessionRepository,
	slotSource service.SlotSource,
	sessionTTL time.Duration,
	now func() time.Time,
) CalendarUsecase {
	return &calendarUsecase{
		sessionStore: sessionStore{
			log:         log,
			sessionRepo: sessionRepo,
			ttl:         sessionTTL,
			now:         now,
		},
		slotSource: slotSource,
	}
}

// loadWithService applies the calendar guard: a service must already be chosen
func (u *calendarUsecase) loadWithService(ctx context.Context, sessionID uuid.UUID) (*entity.BookingSession, error) {
	session, err := u.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if !session.Draft.HasService() {
		return nil, ErrServiceRequired
	}
	return session, nil
}

func (u *calendarUsecase) render(session *entity.BookingSession, changed bool) *dto.CalendarResponse {
	return converter.CalendarToResponse(session.Calendar, session.Calendar.CanGoToPreviousWeek(u.now()), changed)
}

func (u *calendarUsecase) GetCalendar(ctx context.Context, sessionID uuid.UUID) (*dto.CalendarResponse, error) {
	session, err := u.loadWithService(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	// Sessions restored without a displayed week start on the current one
	if len(session.Calendar.Days) == 0 {
		weekStart := entity.StartOfWeek(u.now())
		session.Calendar.ShowWeek(weekStart, generateWeek(u.slotSource, weekStart))
		if err := u.save(ctx, session); err != nil {
			return nil, err
		}
	}

	return u.render(session, false), nil
}

func (u *calendarUsecase) showWeek(ctx context.Context, session *entity.BookingSession, weekStart time.Time) (*dto.CalendarResponse, error) {
	session.Calendar.ShowWeek(weekStart, generateWeek(u.slotSource, weekStart))
	if err := u.save(ctx, session); err != nil {
		return nil, err
	}
	return u.render(session, true), nil
}

func (u *calendarUsecase) NextWeek(ctx context.Context, sessionID uuid.UUID) (*dto.CalendarResponse, error) {
	session, err := u.loadWithService(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return u.showWeek(ctx, session, session.Calendar.NextWeekStart())
}

// PreviousWeek leaves the calendar untouched when the target week is already past
func (u *calendarUsecase) PreviousWeek(ctx context.Context, sessionID uuid.UUID) (*dto.CalendarResponse, error) {
	session, err := u.loadWithService(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if !session.Calendar.CanGoToPreviousWeek(u.now()) {
		return u.render(session, false), nil
	}
	return u.showWeek(ctx, session, session.Calendar.PreviousWeekStart())
}

func (u *calendarUsecase) SelectDate(ctx context.Context, sessionID uuid.UUID, req *dto.SelectDateRequest) (*dto.CalendarResponse, error) {
	session, err := u.loadWithService(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	date, err := entity.ParseDate(req.Date)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}
	if !session.Calendar.SelectDate(date) {
		return nil, ErrDateNotSelectable
	}

	if err := u.save(ctx, session); err != nil {
		return nil, err
	}
	return u.render(session, true), nil
}

func (u *calendarUsecase) SelectTime(ctx context.Context, sessionID uuid.UUID, req *dto.SelectTimeRequest) (*dto.CalendarResponse, error) {
	session, err := u.loadWithService(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Calendar.SelectedDate == nil {
		return nil, ErrNoDateSelected
	}
	if !session.Calendar.SelectTime(req.Time) {
		return nil, ErrTimeNotAvailable
	}

	if err := u.save(ctx, session); err != nil {
		return nil, err
	}
	return u.render(session, true), nil
}

// Continue copies the selected date and time into the draft
func (u *calendarUsecase) Continue(ctx context.Context, sessionID uuid.UUID) (*dto.StepResponse, error) {
	session, err := u.loadWithService(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if !session.Calendar.CanContinue() {
		return nil, ErrDateTimeRequired
	}

	selectedTime := session.Calendar.SelectedTime
	session.Draft = session.Draft.Merge(entity.DraftUpdate{
		Date: session.Calendar.SelectedDate,
		Time: &selectedTime,
	})
	if err := u.save(ctx, session); err != nil {
		return nil, err
	}

	return &dto.StepResponse{
		Draft:    converter.DraftToResponse(session.Draft),
		NextStep: dto.StepPatientInfo,
	}, nil
}
