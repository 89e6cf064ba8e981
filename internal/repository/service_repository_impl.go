package repository

import (
	"context"

	"dental-clinic-booking/internal/domain/entity"
	domainRepo "dental-clinic-booking/internal/domain/repository"

	"github.com/shopspring/decimal"
)

var serviceCatalog = []entity.Service{
	{
		ID:          1,
		Name:        "Dental Cleaning",
		Description: "Professional teeth cleaning to remove plaque and tartar.",
		Duration:    30,
		Price:       decimal.NewFromInt(85),
		Icon:        "tooth",
	},
	{
		ID:          2,
		Name:        "Dental Check-up",
		Description: "Comprehensive examination including x-rays and oral cancer screening.",
		Duration:    45,
		Price:       decimal.NewFromInt(120),
		Icon:        "search",
	},
	{
		ID:          3,
		Name:        "Root Canal",
		Description: "Treatment for infected tooth pulp to eliminate pain and save your tooth.",
		Duration:    90,
		Price:       decimal.NewFromInt(800),
		Icon:        "microscope",
	},
	{
		ID:          4,
		Name:        "Teeth Whitening",
		Description: "Professional whitening treatment for a brighter smile.",
		Duration:    60,
		Price:       decimal.NewFromInt(250),
		Icon:        "smile-beam",
	},
	{
		ID:          5,
		Name:        "Dental Filling",
		Description: "Restore damaged teeth caused by decay or fracture.",
		Duration:    45,
		Price:       decimal.NewFromInt(150),
		Icon:        "tools",
	},
	{
		ID:          6,
		Name:        "Braces",
		Description: "Correct misaligned teeth for a straighter smile.",
		Duration:    60,
		Price:       decimal.NewFromInt(400),
		Icon:        "teeth-open",
	},
}

type serviceRepository struct {
	services []entity.Service
}

// NewServiceRepository returns the fixed clinic catalog
func NewServiceRepository() domainRepo.ServiceRepository {
	return &serviceRepository{services: serviceCatalog}
}

func (r *serviceRepository) FindAll(ctx context.Context) ([]entity.Service, error) {
	services := make([]entity.Service, len(r.services))
	copy(services, r.services)
	return services, nil
}

func (r *serviceRepository) FindByID(ctx context.Context, id int) (*entity.Service, error) {
	for _, s := range r.services {
		if s.ID == id {
			svc := s
			return &svc, nil
		}
	}
	return nil, nil
}
