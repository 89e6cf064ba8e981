package usecase

import (
	"context"
	"time"

	"dental-clinic-booking/internal/delivery/dto"
	"dental-clinic-booking/internal/domain/entity"
	"dental-clinic-booking/internal/domain/repository"
	"dental-clinic-booking/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// sessionStore loads and persists booking sessions for the wizard usecases
type sessionStore struct {
	log         *logrus.Logger
	sessionRepo repository.SessionRepository
	ttl         time.Duration
	now         func() time.Time
}

func (s *sessionStore) load(ctx context.Context, id uuid.UUID) (*entity.BookingSession, error) {
	session, err := s.sessionRepo.FindByID(ctx, id)
	if err != nil {
		s.log.Warnf("Failed to find booking session %s: %+v", id, err)
		return nil, err
	}
	if session == nil {
		return nil, ErrSessionNotFound
	}
	return session, nil
}

func (s *sessionStore) save(ctx context.Context, session *entity.BookingSession) error {
	session.Touch(s.now(), s.ttl)
	if err := s.sessionRepo.Save(ctx, session); err != nil {
		s.log.Warnf("Failed to save booking session %s: %+v", session.ID, err)
		return err
	}
	return nil
}

// generateWeek builds the seven displayed days starting at weekStart
func generateWeek(src service.SlotSource, weekStart time.Time) []entity.DaySlots {
	dates := entity.WeekDates(weekStart)
	days := make([]entity.DaySlots, len(dates))
	for i, date := range dates {
		days[i] = entity.DaySlots{Date: date, Slots: src.DaySlots(date)}
	}
	return days
}

// nextStep names the first wizard step the draft has not completed yet
func nextStep(draft entity.AppointmentDraft) string {
	switch {
	case !draft.HasService():
		return dto.StepServices
	case !draft.HasSchedule():
		return dto.StepCalendar
	case !draft.PatientInfo.HasName():
		return dto.StepPatientInfo
	default:
		return dto.StepConfirmation
	}
}
