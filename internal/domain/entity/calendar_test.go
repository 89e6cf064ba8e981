package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestStartOfWeek(t *testing.T) {
	tests := []struct {
		in   time.Time
		want time.Time
	}{
		{in: time.Date(2025, time.April, 16, 15, 30, 0, 0, time.UTC), want: day(2025, time.April, 14)},
		{in: day(2025, time.April, 14), want: day(2025, time.April, 14)},
		{in: day(2025, time.April, 20), want: day(2025, time.April, 14)},
		{in: day(2025, time.January, 1), want: day(2024, time.December, 30)},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, StartOfWeek(tt.in), tt.in.String())
	}
}

func TestWeekDates(t *testing.T) {
	dates := WeekDates(day(2025, time.April, 14))
	require.Len(t, dates, DaysPerWeek)
	assert.Equal(t, day(2025, time.April, 20), dates[6])
	assert.True(t, IsWeekend(dates[5]))
	assert.False(t, IsWeekend(dates[4]))
}

func testWeek() CalendarState {
	start := day(2025, time.April, 14)
	days := make([]DaySlots, 0, DaysPerWeek)
	for i, date := range WeekDates(start) {
		ds := DaySlots{Date: date}
		if i < 5 && i != 2 {
			ds.Slots = []TimeSlot{{Time: "09:00", Available: true}, {Time: "09:30", Available: false}}
		}
		days = append(days, ds)
	}
	var c CalendarState
	c.ShowWeek(start, days)
	return c
}

func TestCalendarState_Selection(t *testing.T) {
	c := testWeek()

	assert.False(t, c.SelectDate(day(2025, time.April, 16)), "day without slots")
	assert.False(t, c.SelectDate(day(2025, time.April, 19)), "weekend")
	assert.False(t, c.SelectDate(day(2025, time.April, 21)), "outside displayed week")
	assert.Nil(t, c.SelectedDate)

	assert.False(t, c.SelectTime("09:00"), "no date selected")

	require.True(t, c.SelectDate(time.Date(2025, time.April, 15, 18, 0, 0, 0, time.UTC)))
	assert.Equal(t, day(2025, time.April, 15), *c.SelectedDate)
	assert.False(t, c.SelectTime("09:30"), "unavailable slot")
	assert.False(t, c.SelectTime("10:00"), "not offered")
	require.True(t, c.SelectTime("09:00"))
	assert.True(t, c.CanContinue())

	require.True(t, c.SelectDate(day(2025, time.April, 17)))
	assert.Empty(t, c.SelectedTime)
	assert.False(t, c.CanContinue())
}

func TestCalendarState_WeekNavigation(t *testing.T) {
	c := testWeek()
	require.True(t, c.SelectDate(day(2025, time.April, 15)))

	now := day(2025, time.April, 16)
	assert.False(t, c.CanGoToPreviousWeek(now))
	assert.Equal(t, day(2025, time.April, 21), c.NextWeekStart())

	c.ShowWeek(c.NextWeekStart(), nil)
	assert.True(t, c.CanGoToPreviousWeek(now))
	assert.Equal(t, day(2025, time.April, 14), c.PreviousWeekStart())

	require.NotNil(t, c.SelectedDate)
	_, ok := c.SelectedDay()
	assert.False(t, ok)
}
