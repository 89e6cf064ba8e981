package converter

import (
	"dental-clinic-booking/internal/delivery/dto"
	"dental-clinic-booking/internal/domain/entity"
)

// SettingsToResponse converts ClinicSettings to SettingsResponse DTO
func SettingsToResponse(s *entity.ClinicSettings) *dto.SettingsResponse {
	if s == nil {
		return nil
	}
	hours := make([]dto.BusinessHoursDTO, len(s.BusinessHours))
	for i, bh := range s.BusinessHours {
		hours[i] = dto.BusinessHoursDTO{Day: bh.Day, Hours: nonNilStrings(bh.Hours), IsOpen: bh.IsOpen}
	}
	return &dto.SettingsResponse{
		BusinessHours: hours,
		Notifications: dto.NotificationSettingsDTO{
			Email: s.Notifications.Email,
			SMS:   s.Notifications.SMS,
			Push:  s.Notifications.Push,
		},
		ContactInfo: dto.ContactInfoDTO{Phone: s.ContactInfo.Phone, Email: s.ContactInfo.Email},
	}
}

// SettingsRequestToEntity converts a save request to ClinicSettings
func SettingsRequestToEntity(req *dto.SaveSettingsRequest) *entity.ClinicSettings {
	hours := make([]entity.BusinessHours, len(req.BusinessHours))
	for i, bh := range req.BusinessHours {
		hours[i] = entity.BusinessHours{Day: bh.Day, Hours: nonNilStrings(bh.Hours), IsOpen: bh.IsOpen}
	}
	return &entity.ClinicSettings{
		BusinessHours: hours,
		Notifications: entity.NotificationSettings{
			Email: req.Notifications.Email,
			SMS:   req.Notifications.SMS,
			Push:  req.Notifications.Push,
		},
		ContactInfo: entity.ContactInfo{Phone: req.ContactInfo.Phone, Email: req.ContactInfo.Email},
	}
}
