package repository

import (
	"context"

	"dental-clinic-booking/internal/domain/entity"
)

type AvailabilityRepository interface {
	FindRules(ctx context.Context) ([]entity.AvailabilityRule, error)
	SaveRules(ctx context.Context, rules []entity.AvailabilityRule) error
	FindExceptions(ctx context.Context) ([]entity.AvailabilityException, error)
	CreateException(ctx context.Context, exception *entity.AvailabilityException) error
	DeleteException(ctx context.Context, id int) (bool, error)
}
