package entity

import (
	"regexp"
	"time"
)

// ConfirmationCodePattern is the shape of codes handed out on confirmation
const ConfirmationCodePattern = "[A-Z0-9]{8}"

var confirmationCodeRe = regexp.MustCompile("^" + ConfirmationCodePattern + "$")

// IsConfirmationCode reports whether code could have been issued on a confirmation page
func IsConfirmationCode(code string) bool {
	return confirmationCodeRe.MatchString(code)
}

// ManagedAppointment is the record a patient reaches through their manage link
type ManagedAppointment struct {
	ID                string            `json:"id"`
	Service           Service           `json:"service"`
	Date              time.Time         `json:"date"`
	Time              string            `json:"time"` // HH:MM
	Patient           PatientInfo       `json:"patient"`
	Status            AppointmentStatus `json:"status"`
	RescheduleOptions []DaySlots        `json:"-"`
	UpdatedAt         time.Time         `json:"updated_at"`
}

// IsCanceled checks if the appointment was canceled
func (m *ManagedAppointment) IsCanceled() bool {
	return m.Status == AppointmentStatusCanceled
}

// Cancel marks the appointment canceled and drops any pending reschedule offer
func (m *ManagedAppointment) Cancel() {
	m.Status = AppointmentStatusCanceled
	m.RescheduleOptions = nil
}

// OfferReschedule remembers the options last shown for rescheduling
func (m *ManagedAppointment) OfferReschedule(options []DaySlots) {
	m.RescheduleOptions = options
}

// IsOffered reports whether date+time was among the last offered options
func (m *ManagedAppointment) IsOffered(date time.Time, hhmm string) bool {
	date = DateOf(date)
	for _, day := range m.RescheduleOptions {
		if day.Date.Equal(date) {
			return day.Offers(hhmm)
		}
	}
	return false
}

// Reschedule moves the appointment and clears the consumed offer
func (m *ManagedAppointment) Reschedule(date time.Time, hhmm string) {
	m.Date = DateOf(date)
	m.Time = hhmm
	m.RescheduleOptions = nil
}
