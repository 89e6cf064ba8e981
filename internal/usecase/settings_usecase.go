package usecase

import (
	"context"

	"dental-clinic-booking/internal/converter"
	"dental-clinic-booking/internal/delivery/dto"
	"dental-clinic-booking/internal/domain/entity"
	"dental-clinic-booking/internal/domain/repository"
	"dental-clinic-booking/internal/service"

	"github.com/sirupsen/logrus"
)

type SettingsUsecase interface {
	GetSettings(ctx context.Context) (*dto.SettingsResponse, error)
	SaveSettings(ctx context.Context, actor string, req *dto.SaveSettingsRequest) (*dto.SettingsResponse, error)
	ToggleBusinessDay(ctx context.Context, actor, day string) (*dto.BusinessHoursDTO, error)
}

type settingsUsecase struct {
	log          *logrus.Logger
	settingsRepo repository.SettingsRepository
	auditService service.AuditService
}

func NewSettingsUsecase(
	log *logrus.Logger,
	settingsRepo repository.SettingsRepository,
	auditService service.AuditService,
) SettingsUsecase {
	return &settingsUsecase{
		log:          log,
		settingsRepo: settingsRepo,
		auditService: auditService,
	}
}

func (u *settingsUsecase) GetSettings(ctx context.Context) (*dto.SettingsResponse, error) {
	settings, err := u.settingsRepo.Get(ctx)
	if err != nil {
		u.log.Warnf("Failed to get settings: %+v", err)
		return nil, err
	}
	return converter.SettingsToResponse(settings), nil
}

func (u *settingsUsecase) SaveSettings(ctx context.Context, actor string, req *dto.SaveSettingsRequest) (*dto.SettingsResponse, error) {
	settings := converter.SettingsRequestToEntity(req)

	seen := make(map[string]bool, len(settings.BusinessHours))
	for i := range settings.BusinessHours {
		day, ok := entity.ParseWeekday(settings.BusinessHours[i].Day)
		if !ok || seen[day] {
			return nil, ErrDayNotFound
		}
		seen[day] = true
		settings.BusinessHours[i].Day = day
	}

	old, err := u.settingsRepo.Get(ctx)
	if err != nil {
		u.log.Warnf("Failed to get settings: %+v", err)
		return nil, err
	}
	if err := u.settingsRepo.Save(ctx, settings); err != nil {
		u.log.Warnf("Failed to save settings: %+v", err)
		return nil, err
	}
	if err := u.auditService.LogUpdate(ctx, actor, entity.AuditActionSettingsSave, "settings", "clinic", old, settings); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	return converter.SettingsToResponse(settings), nil
}

func (u *settingsUsecase) ToggleBusinessDay(ctx context.Context, actor, day string) (*dto.BusinessHoursDTO, error) {
	canonical, ok := entity.ParseWeekday(day)
	if !ok {
		return nil, ErrDayNotFound
	}

	settings, err := u.settingsRepo.Get(ctx)
	if err != nil {
		u.log.Warnf("Failed to get settings: %+v", err)
		return nil, err
	}

	var toggled *entity.BusinessHours
	for i := range settings.BusinessHours {
		if settings.BusinessHours[i].Day == canonical {
			settings.BusinessHours[i].Toggle()
			toggled = &settings.BusinessHours[i]
			break
		}
	}
	if toggled == nil {
		return nil, ErrDayNotFound
	}

	if err := u.settingsRepo.Save(ctx, settings); err != nil {
		u.log.Warnf("Failed to save settings: %+v", err)
		return nil, err
	}
	if err := u.auditService.LogUpdate(ctx, actor, entity.AuditActionSettingsToggleBusiness, "business_hours", toggled.Day, !toggled.IsOpen, toggled.IsOpen); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	hours := toggled.Hours
	if hours == nil {
		hours = []string{}
	}
	return &dto.BusinessHoursDTO{Day: toggled.Day, Hours: hours, IsOpen: toggled.IsOpen}, nil
}
