package entity

import "time"

// AppointmentDraft is the in-progress appointment assembled across the booking wizard
type AppointmentDraft struct {
	Service     *Service    `json:"service"`
	Date        *time.Time  `json:"date"`
	Time        *string     `json:"time"`
	PatientInfo PatientInfo `json:"patient_info"`
}

// DraftUpdate is a partial draft. Nil fields are left untouched by Merge.
type DraftUpdate struct {
	Service     *Service
	Date        *time.Time
	Time        *string
	PatientInfo *PatientInfo
}

// Merge returns a copy of the draft with every present field of u overwritten.
// PatientInfo is replaced as a whole, not field by field.
func (d AppointmentDraft) Merge(u DraftUpdate) AppointmentDraft {
	if u.Service != nil {
		svc := *u.Service
		d.Service = &svc
	}
	if u.Date != nil {
		date := DateOf(*u.Date)
		d.Date = &date
	}
	if u.Time != nil {
		t := *u.Time
		d.Time = &t
	}
	if u.PatientInfo != nil {
		d.PatientInfo = *u.PatientInfo
	}
	return d
}

// HasService reports whether a service was chosen
func (d AppointmentDraft) HasService() bool {
	return d.Service != nil
}

// HasSchedule reports whether service, date and time are all set
func (d AppointmentDraft) HasSchedule() bool {
	return d.Service != nil && d.Date != nil && d.Time != nil && *d.Time != ""
}

// IsComplete reports whether the draft can be shown as a confirmed appointment
func (d AppointmentDraft) IsComplete() bool {
	return d.HasSchedule() && d.PatientInfo.HasName()
}
