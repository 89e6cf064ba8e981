package repository

import (
	"context"

	"dental-clinic-booking/internal/domain/entity"
)

type SettingsRepository interface {
	Get(ctx context.Context) (*entity.ClinicSettings, error)
	Save(ctx context.Context, settings *entity.ClinicSettings) error
}
