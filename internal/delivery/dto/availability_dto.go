package dto

// Request DTOs

type AvailabilityRuleRequest struct {
	Day      string   `json:"day" validate:"required"`
	Slots    []string `json:"slots" validate:"dive,max=64"`
	IsActive bool     `json:"is_active"`
}

type SaveAvailabilityRequest struct {
	Rules []AvailabilityRuleRequest `json:"rules" validate:"required,len=7,dive"`
}

type UpdateDaySlotsRequest struct {
	Slots []string `json:"slots" validate:"dive,max=64"`
}

type CreateExceptionRequest struct {
	Date   string   `json:"date" validate:"required,datetime=2006-01-02"`
	Reason string   `json:"reason" validate:"required,max=255"`
	Slots  []string `json:"slots" validate:"dive,max=64"`
}

// Response DTOs

type AvailabilityRuleResponse struct {
	Day      string   `json:"day"`
	Slots    []string `json:"slots"`
	IsActive bool     `json:"is_active"`
}

type AvailabilityExceptionResponse struct {
	ID     int      `json:"id"`
	Date   string   `json:"date"`
	Reason string   `json:"reason"`
	Slots  []string `json:"slots"`
}

type AvailabilityResponse struct {
	Rules      []AvailabilityRuleResponse      `json:"rules"`
	Exceptions []AvailabilityExceptionResponse `json:"exceptions"`
}
