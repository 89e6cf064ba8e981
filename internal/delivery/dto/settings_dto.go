package dto

// Shared DTOs

type BusinessHoursDTO struct {
	Day    string   `json:"day" validate:"required"`
	Hours  []string `json:"hours" validate:"dive,max=64"`
	IsOpen bool     `json:"is_open"`
}

type NotificationSettingsDTO struct {
	Email bool `json:"email"`
	SMS   bool `json:"sms"`
	Push  bool `json:"push"`
}

type ContactInfoDTO struct {
	Phone string `json:"phone" validate:"required,max=32"`
	Email string `json:"email" validate:"required,email"`
}

// Request DTOs

type SaveSettingsRequest struct {
	BusinessHours []BusinessHoursDTO      `json:"business_hours" validate:"required,len=7,dive"`
	Notifications NotificationSettingsDTO `json:"notifications"`
	ContactInfo   ContactInfoDTO          `json:"contact_info"`
}

// Response DTOs

type SettingsResponse struct {
	BusinessHours []BusinessHoursDTO      `json:"business_hours"`
	Notifications NotificationSettingsDTO `json:"notifications"`
	ContactInfo   ContactInfoDTO          `json:"contact_info"`
}
