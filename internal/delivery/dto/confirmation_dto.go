package dto

// Response DTOs

type ConfirmationResponse struct {
	ConfirmationCode string              `json:"confirmation_code"`
	Service          ServiceResponse     `json:"service"`
	Date             string              `json:"date"`
	DateDisplay      string              `json:"date_display"`
	Time             string              `json:"time"`
	Patient          PatientInfoResponse `json:"patient"`
	ManageURL        string              `json:"manage_url"`
	ClinicPhone      string              `json:"clinic_phone"`
}
