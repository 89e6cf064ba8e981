package entity

import (
	"time"

	"github.com/google/uuid"
)

// BookingSession holds the server-side state of one patient going through the wizard
type BookingSession struct {
	ID         uuid.UUID        `json:"id"`
	Draft      AppointmentDraft `json:"draft"`
	Calendar   CalendarState    `json:"calendar"`
	NotifiedAt *time.Time       `json:"notified_at,omitempty"`
	CreatedAt  time.Time        `json:"created_at"`
	UpdatedAt  time.Time        `json:"updated_at"`
	ExpiresAt  time.Time        `json:"expires_at"`
}

// IsExpired reports whether the session outlived its TTL at now
func (s *BookingSession) IsExpired(now time.Time) bool {
	return !s.ExpiresAt.After(now)
}

// Touch records a write at now and pushes the expiry out by ttl
func (s *BookingSession) Touch(now time.Time, ttl time.Duration) {
	s.UpdatedAt = now
	s.ExpiresAt = now.Add(ttl)
}

// IsNotified reports whether confirmation notifications already went out
func (s *BookingSession) IsNotified() bool {
	return s.NotifiedAt != nil
}

// MarkNotified records that confirmation notifications were sent
func (s *BookingSession) MarkNotified(at time.Time) {
	s.NotifiedAt = &at
}
