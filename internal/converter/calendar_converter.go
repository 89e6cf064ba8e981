package converter

import (
	"dental-clinic-booking/internal/delivery/dto"
	"dental-clinic-booking/internal/domain/entity"
)

// EmptyDayMessage is shown when the selected day has no slots left
const EmptyDayMessage = "No available time slots for this day. Please select another day."

// TimeSlotsToResponses converts slots to DTOs
func TimeSlotsToResponses(slots []entity.TimeSlot) []dto.TimeSlotResponse {
	responses := make([]dto.TimeSlotResponse, len(slots))
	for i, slot := range slots {
		responses[i] = dto.TimeSlotResponse{Time: slot.Time, Available: slot.Available}
	}
	return responses
}

// DaySlotsToResponse converts one displayed day to its DTO
func DaySlotsToResponse(day entity.DaySlots) dto.CalendarDayResponse {
	return dto.CalendarDayResponse{
		Date:       day.Date.Format(entity.DateLayout),
		Weekday:    day.Date.Weekday().String(),
		Selectable: day.HasSlots(),
		Slots:      TimeSlotsToResponses(day.Slots),
	}
}

// CalendarToResponse converts the calendar state to CalendarResponse DTO.
// canGoToPrevious is evaluated by the caller against the real current week.
func CalendarToResponse(state entity.CalendarState, canGoToPrevious bool, changed bool) *dto.CalendarResponse {
	days := make([]dto.CalendarDayResponse, len(state.Days))
	for i, day := range state.Days {
		days[i] = DaySlotsToResponse(day)
	}

	response := &dto.CalendarResponse{
		WeekStart:       state.WeekStart.Format(entity.DateLayout),
		WeekEnd:         state.WeekStart.AddDate(0, 0, entity.DaysPerWeek-1).Format(entity.DateLayout),
		Days:            days,
		SelectedTime:    state.SelectedTime,
		SelectedSlots:   []dto.TimeSlotResponse{},
		CanGoToPrevious: canGoToPrevious,
		CanContinue:     state.CanContinue(),
		Changed:         changed,
	}

	if state.SelectedDate != nil {
		date := state.SelectedDate.Format(entity.DateLayout)
		response.SelectedDate = &date

		day, _ := state.SelectedDay()
		if day.HasSlots() {
			response.SelectedSlots = TimeSlotsToResponses(day.Slots)
		} else {
			response.EmptyMessage = EmptyDayMessage
		}
	}

	return response
}
