package dto

// Request DTOs

type PatientInfoRequest struct {
	Name  string `json:"name" validate:"notblank"`
	Email string `json:"email" validate:"notblank,basicemail"`
	Phone string `json:"phone" validate:"notblank,phone10"`
	Notes string `json:"notes"`
}

// PatientInfoPayload carries patient info through an unvalidated draft merge
type PatientInfoPayload struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	Notes string `json:"notes"`
}

// PatientInfoValidationMessages are the form messages shown next to each field
var PatientInfoValidationMessages = map[string]string{
	"name.notblank":    "Name is required",
	"email.notblank":   "Email is required",
	"email.basicemail": "Email is invalid",
	"phone.notblank":   "Phone number is required",
	"phone.phone10":    "Please enter a valid 10-digit phone number",
}

// Response DTOs

type PatientInfoResponse struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	Notes string `json:"notes"`
}
