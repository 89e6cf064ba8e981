package entity

import "time"

const DaysPerWeek = 7

// CalendarState is the date/time picker state of one booking session
type CalendarState struct {
	WeekStart    time.Time  `json:"week_start"`
	Days         []DaySlots `json:"days"`
	SelectedDate *time.Time `json:"selected_date,omitempty"`
	SelectedTime string     `json:"selected_time,omitempty"`
}

// WeekDates lists the seven days starting at weekStart
func WeekDates(weekStart time.Time) []time.Time {
	dates := make([]time.Time, DaysPerWeek)
	for i := range dates {
		dates[i] = DateOf(weekStart).AddDate(0, 0, i)
	}
	return dates
}

// ShowWeek replaces the displayed week and its regenerated slots.
// The current selection is kept; it may no longer have slots in the new week.
func (c *CalendarState) ShowWeek(weekStart time.Time, days []DaySlots) {
	c.WeekStart = DateOf(weekStart)
	c.Days = days
}

// PreviousWeekStart is the Monday one week before the displayed one
func (c CalendarState) PreviousWeekStart() time.Time {
	return c.WeekStart.AddDate(0, 0, -DaysPerWeek)
}

// NextWeekStart is the Monday one week after the displayed one
func (c CalendarState) NextWeekStart() time.Time {
	return c.WeekStart.AddDate(0, 0, DaysPerWeek)
}

// CanGoToPreviousWeek reports whether moving back one week stays at or after
// the week containing now.
func (c CalendarState) CanGoToPreviousWeek(now time.Time) bool {
	return !c.PreviousWeekStart().Before(StartOfWeek(now))
}

// Day returns the slot set for date if it is in the displayed week
func (c CalendarState) Day(date time.Time) (DaySlots, bool) {
	date = DateOf(date)
	for _, day := range c.Days {
		if day.Date.Equal(date) {
			return day, true
		}
	}
	return DaySlots{}, false
}

// IsSelectable reports whether date is displayed and has at least one slot
func (c CalendarState) IsSelectable(date time.Time) bool {
	day, ok := c.Day(date)
	return ok && day.HasSlots()
}

// SelectDate selects date and clears any selected time.
// It returns false and leaves the state unchanged when date is not selectable.
func (c *CalendarState) SelectDate(date time.Time) bool {
	if !c.IsSelectable(date) {
		return false
	}
	d := DateOf(date)
	c.SelectedDate = &d
	c.SelectedTime = ""
	return true
}

// SelectedDay returns the slots of the selected date as currently displayed.
// ok is false when nothing is selected or the date left the displayed week.
func (c CalendarState) SelectedDay() (DaySlots, bool) {
	if c.SelectedDate == nil {
		return DaySlots{}, false
	}
	return c.Day(*c.SelectedDate)
}

// SelectTime selects an offered slot of the selected date
func (c *CalendarState) SelectTime(hhmm string) bool {
	day, ok := c.SelectedDay()
	if !ok || !day.Offers(hhmm) {
		return false
	}
	c.SelectedTime = hhmm
	return true
}

// CanContinue reports whether both a date and a time are selected
func (c CalendarState) CanContinue() bool {
	return c.SelectedDate != nil && c.SelectedTime != ""
}
