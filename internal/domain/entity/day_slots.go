package entity

import "time"

// TimeSlot is a bookable half-hour start time on a given day
type TimeSlot struct {
	Time      string `json:"time"` // HH:MM
	Available bool   `json:"available"`
}

// DaySlots is the generated slot set for one calendar day
type DaySlots struct {
	Date  time.Time  `json:"date"`
	Slots []TimeSlot `json:"slots"`
}

// HasSlots reports whether at least one slot is offered on this day
func (d DaySlots) HasSlots() bool {
	return len(d.Slots) > 0
}

// Offers reports whether the given HH:MM time is an available slot on this day
func (d DaySlots) Offers(hhmm string) bool {
	for _, slot := range d.Slots {
		if slot.Time == hhmm && slot.Available {
			return true
		}
	}
	return false
}
