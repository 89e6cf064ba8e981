package dto

// Response DTOs

type AppointmentResponse struct {
	ID          int    `json:"id"`
	PatientName string `json:"patient_name"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Service     string `json:"service"`
	Status      string `json:"status"`
}

type AppointmentDetailResponse struct {
	AppointmentResponse
	Notes string `json:"notes"`
}

type AppointmentFilterResponse struct {
	Search string `json:"search"`
	Date   string `json:"date"`
	Status string `json:"status"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse     `json:"appointments"`
	Dates        []string                  `json:"dates"`
	Filter       AppointmentFilterResponse `json:"filter"`
	Total        int                       `json:"total"`
}

type StatCardResponse struct {
	Title  string `json:"title"`
	Value  string `json:"value"`
	Change string `json:"change"`
}

type DashboardResponse struct {
	ActivePage string             `json:"active_page"`
	Pages      []string           `json:"pages"`
	Stats      []StatCardResponse `json:"stats"`
	Content    interface{}        `json:"content"`
}
