package repository

import (
	"context"
	"sync"

	"dental-clinic-booking/internal/domain/entity"
	domainRepo "dental-clinic-booking/internal/domain/repository"
)

// DefaultAvailabilityRules is the weekly template the editor starts from
func DefaultAvailabilityRules() []entity.AvailabilityRule {
	weekday := []string{"9:00 AM - 1:00 PM", "2:00 PM - 5:00 PM"}
	rules := make([]entity.AvailabilityRule, 0, len(entity.Weekdays))
	for _, day := range entity.Weekdays[:5] {
		rules = append(rules, entity.AvailabilityRule{Day: day, Slots: append([]string(nil), weekday...), IsActive: true})
	}
	rules = append(rules,
		entity.AvailabilityRule{Day: "Saturday", Slots: []string{"10:00 AM - 2:00 PM"}, IsActive: true},
		entity.AvailabilityRule{Day: "Sunday", Slots: []string{}, IsActive: false},
	)
	return rules
}

type availabilityRepository struct {
	mu         sync.RWMutex
	rules      []entity.AvailabilityRule
	exceptions []entity.AvailabilityException
	nextID     int
}

func NewAvailabilityRepository() domainRepo.AvailabilityRepository {
	return &availabilityRepository{
		rules: DefaultAvailabilityRules(),
		exceptions: []entity.AvailabilityException{
			{ID: 1, Date: "2025-05-01", Reason: "Holiday", Slots: []string{}},
		},
		nextID: 2,
	}
}

func cloneRules(rules []entity.AvailabilityRule) []entity.AvailabilityRule {
	out := make([]entity.AvailabilityRule, len(rules))
	for i, rule := range rules {
		rule.Slots = append([]string{}, rule.Slots...)
		out[i] = rule
	}
	return out
}

func (r *availabilityRepository) FindRules(ctx context.Context) ([]entity.AvailabilityRule, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return cloneRules(r.rules), nil
}

func (r *availabilityRepository) SaveRules(ctx context.Context, rules []entity.AvailabilityRule) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rules = cloneRules(rules)
	return nil
}

func (r *availabilityRepository) FindExceptions(ctx context.Context) ([]entity.AvailabilityException, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]entity.AvailabilityException, len(r.exceptions))
	for i, ex := range r.exceptions {
		ex.Slots = append([]string{}, ex.Slots...)
		out[i] = ex
	}
	return out, nil
}

func (r *availabilityRepository) CreateException(ctx context.Context, exception *entity.AvailabilityException) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	exception.ID = r.nextID
	r.nextID++
	stored := *exception
	stored.Slots = append([]string{}, exception.Slots...)
	r.exceptions = append(r.exceptions, stored)
	return nil
}

func (r *availabilityRepository) DeleteException(ctx context.Context, id int) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, ex := range r.exceptions {
		if ex.ID == id {
			r.exceptions = append(r.exceptions[:i], r.exceptions[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}
