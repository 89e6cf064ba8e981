package service

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"dental-clinic-booking/internal/domain/entity"

	"github.com/brianvoe/gofakeit/v7"
)

const (
	// calendar slots run every half hour from 09:00 to 16:30
	calendarFirstHour = 9
	calendarLastHour  = 16
	slotKeepThreshold = 0.3

	// reschedule slots start between 09:00 and 15:30
	rescheduleFirstHour = 9
	rescheduleLastHour  = 15
	rescheduleMinSlots  = 3
	rescheduleMaxSlots  = 5
	RescheduleDays      = 5
)

// SlotSource produces the randomised mock data of the booking flow
type SlotSource interface {
	// DaySlots returns the slots offered on date; weekends get none
	DaySlots(date time.Time) []entity.TimeSlot
	// RescheduleOptions returns weekday options for the days following today
	RescheduleOptions(today time.Time) []entity.DaySlots
	// ConfirmationCode returns an opaque display code
	ConfirmationCode() string
}

// FakeSlotSource draws slots and codes from a gofakeit generator
type FakeSlotSource struct {
	mu    sync.Mutex
	faker *gofakeit.Faker
}

// NewFakeSlotSource seeds the generator; seed 0 picks a random seed
func NewFakeSlotSource(seed uint64) *FakeSlotSource {
	return &FakeSlotSource{faker: gofakeit.New(seed)}
}

func formatSlot(hour, minute int) string {
	return fmt.Sprintf("%02d:%02d", hour, minute)
}

func (s *FakeSlotSource) DaySlots(date time.Time) []entity.TimeSlot {
	slots := []entity.TimeSlot{}
	if entity.IsWeekend(date) {
		return slots
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for hour := calendarFirstHour; hour <= calendarLastHour; hour++ {
		for _, minute := range []int{0, 30} {
			if s.faker.Float64() > slotKeepThreshold {
				slots = append(slots, entity.TimeSlot{Time: formatSlot(hour, minute), Available: true})
			}
		}
	}
	return slots
}

func (s *FakeSlotSource) RescheduleOptions(today time.Time) []entity.DaySlots {
	s.mu.Lock()
	defer s.mu.Unlock()

	options := make([]entity.DaySlots, 0, RescheduleDays)
	for i := 1; i <= RescheduleDays; i++ {
		date := entity.DateOf(today).AddDate(0, 0, i)
		if entity.IsWeekend(date) {
			continue
		}

		candidates := make([]string, 0, (rescheduleLastHour-rescheduleFirstHour+1)*2)
		for hour := rescheduleFirstHour; hour <= rescheduleLastHour; hour++ {
			candidates = append(candidates, formatSlot(hour, 0), formatSlot(hour, 30))
		}
		s.faker.ShuffleStrings(candidates)

		picked := candidates[:s.faker.IntRange(rescheduleMinSlots, rescheduleMaxSlots)]
		sort.Strings(picked)

		slots := make([]entity.TimeSlot, len(picked))
		for j, t := range picked {
			slots[j] = entity.TimeSlot{Time: t, Available: true}
		}
		options = append(options, entity.DaySlots{Date: date, Slots: slots})
	}
	return options
}

func (s *FakeSlotSource) ConfirmationCode() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.faker.Regex(entity.ConfirmationCodePattern)
}
