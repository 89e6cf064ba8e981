package repository

import (
	"context"
	"sync"

	"dental-clinic-booking/internal/domain/entity"
	domainRepo "dental-clinic-booking/internal/domain/repository"
)

// DefaultClinicSettings is the configuration the settings editor starts from
func DefaultClinicSettings() entity.ClinicSettings {
	hours := make([]entity.BusinessHours, 0, len(entity.Weekdays))
	for _, day := range entity.Weekdays[:5] {
		hours = append(hours, entity.BusinessHours{Day: day, Hours: []string{"9:00 AM - 5:00 PM"}, IsOpen: true})
	}
	hours = append(hours,
		entity.BusinessHours{Day: "Saturday", Hours: []string{"10:00 AM - 2:00 PM"}, IsOpen: true},
		entity.BusinessHours{Day: "Sunday", Hours: []string{}, IsOpen: false},
	)
	return entity.ClinicSettings{
		BusinessHours: hours,
		Notifications: entity.NotificationSettings{Email: true, SMS: false, Push: true},
		ContactInfo: entity.ContactInfo{
			Phone: "(555) 123-4567",
			Email: "office@dentalclinic.com",
		},
	}
}

type settingsRepository struct {
	mu       sync.RWMutex
	settings entity.ClinicSettings
}

func NewSettingsRepository() domainRepo.SettingsRepository {
	return &settingsRepository{settings: DefaultClinicSettings()}
}

func (r *settingsRepository) Get(ctx context.Context) (*entity.ClinicSettings, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	settings := r.settings.Clone()
	return &settings, nil
}

func (r *settingsRepository) Save(ctx context.Context, settings *entity.ClinicSettings) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.settings = settings.Clone()
	return nil
}
