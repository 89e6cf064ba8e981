package usecase

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"dental-clinic-booking/internal/domain/entity"
	"dental-clinic-booking/internal/service"

	"github.com/sirupsen/logrus"
)

const testSessionTTL = 30 * time.Minute

// testNow is a fixed Wednesday 10:00; session stores in these tests run on the same clock
func testNow() time.Time {
	return time.Date(2025, time.April, 16, 10, 0, 0, 0, time.UTC)
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

// stubSlotSource offers 09:00, 09:30 and 14:00 on every weekday not listed in empty
type stubSlotSource struct {
	mu       sync.Mutex
	empty    map[string]bool
	codes    int
	dayCalls int
}

func newStubSlotSource(emptyDates ...time.Time) *stubSlotSource {
	empty := make(map[string]bool, len(emptyDates))
	for _, d := range emptyDates {
		empty[d.Format(entity.DateLayout)] = true
	}
	return &stubSlotSource{empty: empty}
}

func (s *stubSlotSource) DaySlots(date time.Time) []entity.TimeSlot {
	s.mu.Lock()
	s.dayCalls++
	s.mu.Unlock()
	if entity.IsWeekend(date) || s.empty[date.Format(entity.DateLayout)] {
		return []entity.TimeSlot{}
	}
	return []entity.TimeSlot{
		{Time: "09:00", Available: true},
		{Time: "09:30", Available: true},
		{Time: "14:00", Available: true},
	}
}

func (s *stubSlotSource) RescheduleOptions(today time.Time) []entity.DaySlots {
	return []entity.DaySlots{{
		Date:  entity.DateOf(today).AddDate(0, 0, 1),
		Slots: []entity.TimeSlot{{Time: "11:00", Available: true}, {Time: "13:00", Available: true}},
	}}
}

func (s *stubSlotSource) ConfirmationCode() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.codes++
	return fmt.Sprintf("CODE%04d", s.codes)
}

type recordingNotifier struct {
	notices  []service.ConfirmationNotice
	channels []entity.NotificationSettings
}

func (n *recordingNotifier) NotifyConfirmation(ctx context.Context, notice service.ConfirmationNotice, channels entity.NotificationSettings) error {
	n.notices = append(n.notices, notice)
	n.channels = append(n.channels, channels)
	return nil
}

type recordingAuditService struct {
	actions []string
	fail    error
}

func (s *recordingAuditService) LogAction(ctx context.Context, actor string, action string, metadata entity.JSON) error {
	s.actions = append(s.actions, action)
	return s.fail
}

func (s *recordingAuditService) LogUpdate(ctx context.Context, actor string, action string, entityName string, entityID string, oldValue, newValue interface{}) error {
	s.actions = append(s.actions, action)
	return s.fail
}

func (s *stubSlotSource) daySlotCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dayCalls
}
