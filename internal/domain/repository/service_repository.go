package repository

import (
	"context"

	"dental-clinic-booking/internal/domain/entity"
)

type ServiceRepository interface {
	FindAll(ctx context.Context) ([]entity.Service, error)
	FindByID(ctx context.Context, id int) (*entity.Service, error)
}
