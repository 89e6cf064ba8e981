package entity

// PatientInfo is the contact block collected on the patient form
type PatientInfo struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	Notes string `json:"notes"`
}

// HasName reports whether the patient name was filled in
func (p PatientInfo) HasName() bool {
	return p.Name != ""
}
