package entity

import "time"

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// DateOf truncates t to its calendar day, keeping the day as seen in t's location.
// The result is midnight UTC so dates compare with Equal regardless of origin.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a YYYY-MM-DD string into a calendar day
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, time.UTC)
}

// StartOfWeek returns the Monday of the week containing t
func StartOfWeek(t time.Time) time.Time {
	day := DateOf(t)
	offset := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -offset)
}

// IsWeekend reports whether t falls on Saturday or Sunday
func IsWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}
