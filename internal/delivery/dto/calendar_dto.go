package dto

// Request DTOs

type SelectDateRequest struct {
	Date string `json:"date" validate:"required,datetime=2006-01-02"`
}

type SelectTimeRequest struct {
	Time string `json:"time" validate:"required,datetime=15:04"`
}

// Response DTOs

type TimeSlotResponse struct {
	Time      string `json:"time"`
	Available bool   `json:"available"`
}

type CalendarDayResponse struct {
	Date       string             `json:"date"`
	Weekday    string             `json:"weekday"`
	Selectable bool               `json:"selectable"`
	Slots      []TimeSlotResponse `json:"slots"`
}

type CalendarResponse struct {
	WeekStart       string                `json:"week_start"`
	WeekEnd         string                `json:"week_end"`
	Days            []CalendarDayResponse `json:"days"`
	SelectedDate    *string               `json:"selected_date"`
	SelectedTime    string                `json:"selected_time,omitempty"`
	SelectedSlots   []TimeSlotResponse    `json:"selected_slots"`
	EmptyMessage    string                `json:"empty_message,omitempty"`
	CanGoToPrevious bool                  `json:"can_go_to_previous"`
	CanContinue     bool                  `json:"can_continue"`
	// Changed is false when a navigation request was refused
	Changed bool `json:"changed"`
}
