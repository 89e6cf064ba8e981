package dto

// Request DTOs

type RescheduleRequest struct {
	Date string `json:"date" validate:"required,datetime=2006-01-02"`
	Time string `json:"time" validate:"required,datetime=15:04"`
}

type CancelAppointmentRequest struct {
	Confirm bool `json:"confirm"`
}

// Response DTOs

type ManagedAppointmentResponse struct {
	ID          string              `json:"id"`
	Service     ServiceResponse     `json:"service"`
	Date        string              `json:"date"`
	DateDisplay string              `json:"date_display"`
	Time        string              `json:"time"`
	Patient     PatientInfoResponse `json:"patient"`
	Status      string              `json:"status"`
}

type RescheduleDayResponse struct {
	Date    string   `json:"date"`
	Weekday string   `json:"weekday"`
	Slots   []string `json:"slots"`
}

type RescheduleOptionsResponse struct {
	AppointmentID string                  `json:"appointment_id"`
	Options       []RescheduleDayResponse `json:"options"`
}

type CancelAppointmentResponse struct {
	ID       string `json:"id"`
	Status   string `json:"status"`
	NextStep string `json:"next_step"`
}
