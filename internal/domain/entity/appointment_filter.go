package entity

import (
	"sort"
	"strings"
)

// FilterAll disables a date or status criterion
const FilterAll = "all"

// AppointmentFilter is the admin board filter state.
// Empty or "all" Date/Status mean no filtering on that criterion.
type AppointmentFilter struct {
	Search string
	Date   string // Format: YYYY-MM-DD
	Status string
}

func isUnset(v string) bool {
	return v == "" || v == FilterAll
}

// HasValidStatus reports whether Status is unset or one of the known statuses
func (f AppointmentFilter) HasValidStatus() bool {
	return isUnset(f.Status) || AppointmentStatus(f.Status).IsValid()
}

// Matches reports whether a satisfies every criterion of the filter
func (f AppointmentFilter) Matches(a Appointment) bool {
	if term := strings.ToLower(f.Search); term != "" {
		if !strings.Contains(strings.ToLower(a.PatientName), term) &&
			!strings.Contains(strings.ToLower(a.Service), term) {
			return false
		}
	}
	if !isUnset(f.Date) && a.Date != f.Date {
		return false
	}
	if !isUnset(f.Status) && string(a.Status) != f.Status {
		return false
	}
	return true
}

// FilterAppointments returns the rows of source matching f, in source order.
// source is never modified.
func FilterAppointments(source []Appointment, f AppointmentFilter) []Appointment {
	filtered := make([]Appointment, 0, len(source))
	for _, a := range source {
		if f.Matches(a) {
			filtered = append(filtered, a)
		}
	}
	return filtered
}

// FilterDates lists the distinct appointment dates of source in ascending order
func FilterDates(source []Appointment) []string {
	seen := make(map[string]struct{}, len(source))
	dates := make([]string, 0, len(source))
	for _, a := range source {
		if _, ok := seen[a.Date]; ok {
			continue
		}
		seen[a.Date] = struct{}{}
		dates = append(dates, a.Date)
	}
	sort.Strings(dates)
	return dates
}
