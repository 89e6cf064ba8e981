package converter

import (
	"dental-clinic-booking/internal/delivery/dto"
	"dental-clinic-booking/internal/domain/entity"
)

func nonNilStrings(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

// AvailabilityToResponse converts the weekly template and exceptions to their DTO
func AvailabilityToResponse(rules []entity.AvailabilityRule, exceptions []entity.AvailabilityException) *dto.AvailabilityResponse {
	response := &dto.AvailabilityResponse{
		Rules:      make([]dto.AvailabilityRuleResponse, len(rules)),
		Exceptions: make([]dto.AvailabilityExceptionResponse, len(exceptions)),
	}
	for i, r := range rules {
		response.Rules[i] = dto.AvailabilityRuleResponse{Day: r.Day, Slots: nonNilStrings(r.Slots), IsActive: r.IsActive}
	}
	for i, e := range exceptions {
		response.Exceptions[i] = ExceptionToResponse(&e)
	}
	return response
}

// ExceptionToResponse converts one availability exception
func ExceptionToResponse(e *entity.AvailabilityException) dto.AvailabilityExceptionResponse {
	return dto.AvailabilityExceptionResponse{ID: e.ID, Date: e.Date, Reason: e.Reason, Slots: nonNilStrings(e.Slots)}
}

// AvailabilityRequestToRules converts a save request to rules
func AvailabilityRequestToRules(req *dto.SaveAvailabilityRequest) []entity.AvailabilityRule {
	rules := make([]entity.AvailabilityRule, len(req.Rules))
	for i, r := range req.Rules {
		rules[i] = entity.AvailabilityRule{Day: r.Day, Slots: nonNilStrings(r.Slots), IsActive: r.IsActive}
	}
	return rules
}
