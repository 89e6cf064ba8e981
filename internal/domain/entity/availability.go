package entity

import "strings"

// AvailabilityRule is the weekly bookable template for one day of the week
type AvailabilityRule struct {
	Day      string   `json:"day"`
	Slots    []string `json:"slots"` // e.g. "9:00 AM - 1:00 PM"
	IsActive bool     `json:"is_active"`
}

// AvailabilityException overrides the template on a single date
type AvailabilityException struct {
	ID     int      `json:"id"`
	Date   string   `json:"date"` // Format: YYYY-MM-DD
	Reason string   `json:"reason"`
	Slots  []string `json:"slots"`
}

// Toggle flips the active flag
func (r *AvailabilityRule) Toggle() {
	r.IsActive = !r.IsActive
}

// Weekdays in display order, Monday first
var Weekdays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// IsWeekday reports whether day is one of Weekdays
func IsWeekday(day string) bool {
	for _, d := range Weekdays {
		if d == day {
			return true
		}
	}
	return false
}

// ParseWeekday resolves a day name case-insensitively to its canonical form
func ParseWeekday(s string) (string, bool) {
	for _, d := range Weekdays {
		if strings.EqualFold(d, s) {
			return d, true
		}
	}
	return "", false
}
