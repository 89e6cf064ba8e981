package entity

// BusinessHours are the opening hours of one day of the week
type BusinessHours struct {
	Day    string   `json:"day"`
	Hours  []string `json:"hours"`
	IsOpen bool     `json:"is_open"`
}

// Toggle flips the open flag
func (b *BusinessHours) Toggle() {
	b.IsOpen = !b.IsOpen
}

// NotificationSettings selects which channels patients are notified on
type NotificationSettings struct {
	Email bool `json:"email"`
	SMS   bool `json:"sms"`
	Push  bool `json:"push"`
}

// ContactInfo is the public contact of the clinic
type ContactInfo struct {
	Phone string `json:"phone"`
	Email string `json:"email"`
}

// ClinicSettings is the admin-editable clinic configuration
type ClinicSettings struct {
	BusinessHours []BusinessHours      `json:"business_hours"`
	Notifications NotificationSettings `json:"notifications"`
	ContactInfo   ContactInfo          `json:"contact_info"`
}

// Clone returns a deep copy so callers never share slices with a store
func (s ClinicSettings) Clone() ClinicSettings {
	out := s
	out.BusinessHours = make([]BusinessHours, len(s.BusinessHours))
	for i, bh := range s.BusinessHours {
		bh.Hours = append([]string(nil), bh.Hours...)
		out.BusinessHours[i] = bh
	}
	return out
}
