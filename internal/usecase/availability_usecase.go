package usecase

import (
	"context"
	"errors"
	"strconv"

	"dental-clinic-booking/internal/converter"
	"dental-clinic-booking/internal/delivery/dto"
	"dental-clinic-booking/internal/domain/entity"
	"dental-clinic-booking/internal/domain/repository"
	"dental-clinic-booking/internal/service"

	"github.com/sirupsen/logrus"
)

var (
	ErrDayNotFound         = errors.New("day not found")
	ErrExceptionNotFound   = errors.New("availability exception not found")
	ErrInvalidAvailability = errors.New("availability must list each day of the week exactly once")
)

type AvailabilityUsecase interface {
	GetAvailability(ctx context.Context) (*dto.AvailabilityResponse, error)
	SaveAvailability(ctx context.Context, actor string, req *dto.SaveAvailabilityRequest) (*dto.AvailabilityResponse, error)
	UpdateDaySlots(ctx context.Context, actor, day string, req *dto.UpdateDaySlotsRequest) (*dto.AvailabilityRuleResponse, error)
	ToggleDay(ctx context.Context, actor, day string) (*dto.AvailabilityRuleResponse, error)
	ListExceptions(ctx context.Context) ([]dto.AvailabilityExceptionResponse, error)
	AddException(ctx context.Context, actor string, req *dto.CreateExceptionRequest) (*dto.AvailabilityExceptionResponse, error)
	DeleteException(ctx context.Context, actor string, id int) error
}

type availabilityUsecase struct {
	log              *logrus.Logger
	availabilityRepo repository.AvailabilityRepository
	auditService     service.AuditService
}

func NewAvailabilityUsecase(
	log *logrus.Logger,
	availabilityRepo repository.AvailabilityRepository,
	auditService service.AuditService,
) AvailabilityUsecase {
	return &availabilityUsecase{
		log:              log,
		availabilityRepo: availabilityRepo,
		auditService:     auditService,
	}
}

func (u *availabilityUsecase) GetAvailability(ctx context.Context) (*dto.AvailabilityResponse, error) {
	rules, err := u.availabilityRepo.FindRules(ctx)
	if err != nil {
		u.log.Warnf("Failed to find availability rules: %+v", err)
		return nil, err
	}
	exceptions, err := u.availabilityRepo.FindExceptions(ctx)
	if err != nil {
		u.log.Warnf("Failed to find availability exceptions: %+v", err)
		return nil, err
	}
	return converter.AvailabilityToResponse(rules, exceptions), nil
}

// SaveAvailability replaces the weekly template; rules are stored Monday first
func (u *availabilityUsecase) SaveAvailability(ctx context.Context, actor string, req *dto.SaveAvailabilityRequest) (*dto.AvailabilityResponse, error) {
	byDay := make(map[string]entity.AvailabilityRule, len(req.Rules))
	for _, rule := range converter.AvailabilityRequestToRules(req) {
		day, ok := entity.ParseWeekday(rule.Day)
		if !ok {
			return nil, ErrInvalidAvailability
		}
		if _, dup := byDay[day]; dup {
			return nil, ErrInvalidAvailability
		}
		rule.Day = day
		byDay[day] = rule
	}
	if len(byDay) != len(entity.Weekdays) {
		return nil, ErrInvalidAvailability
	}

	rules := make([]entity.AvailabilityRule, 0, len(entity.Weekdays))
	for _, day := range entity.Weekdays {
		rules = append(rules, byDay[day])
	}

	old, err := u.availabilityRepo.FindRules(ctx)
	if err != nil {
		u.log.Warnf("Failed to find availability rules: %+v", err)
		return nil, err
	}
	if err := u.availabilityRepo.SaveRules(ctx, rules); err != nil {
		u.log.Warnf("Failed to save availability rules: %+v", err)
		return nil, err
	}
	if err := u.auditService.LogUpdate(ctx, actor, entity.AuditActionAvailabilitySave, "availability", "week", old, rules); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	return u.GetAvailability(ctx)
}

// updateRule applies fn to the rule of day and persists the whole template
func (u *availabilityUsecase) updateRule(ctx context.Context, day string, fn func(*entity.AvailabilityRule)) (before, after entity.AvailabilityRule, err error) {
	canonical, ok := entity.ParseWeekday(day)
	if !ok {
		return before, after, ErrDayNotFound
	}

	rules, err := u.availabilityRepo.FindRules(ctx)
	if err != nil {
		u.log.Warnf("Failed to find availability rules: %+v", err)
		return before, after, err
	}

	idx := -1
	for i := range rules {
		if rules[i].Day == canonical {
			idx = i
			break
		}
	}
	if idx < 0 {
		return before, after, ErrDayNotFound
	}

	before = rules[idx]
	before.Slots = append([]string(nil), rules[idx].Slots...)
	fn(&rules[idx])
	after = rules[idx]

	if err := u.availabilityRepo.SaveRules(ctx, rules); err != nil {
		u.log.Warnf("Failed to save availability rules: %+v", err)
		return before, after, err
	}
	return before, after, nil
}

func (u *availabilityUsecase) UpdateDaySlots(ctx context.Context, actor, day string, req *dto.UpdateDaySlotsRequest) (*dto.AvailabilityRuleResponse, error) {
	slots := append([]string{}, req.Slots...)
	before, after, err := u.updateRule(ctx, day, func(r *entity.AvailabilityRule) {
		r.Slots = slots
	})
	if err != nil {
		return nil, err
	}
	if err := u.auditService.LogUpdate(ctx, actor, entity.AuditActionAvailabilityDaySlots, "availability", after.Day, before.Slots, after.Slots); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	return &dto.AvailabilityRuleResponse{Day: after.Day, Slots: after.Slots, IsActive: after.IsActive}, nil
}

func (u *availabilityUsecase) ToggleDay(ctx context.Context, actor, day string) (*dto.AvailabilityRuleResponse, error) {
	before, after, err := u.updateRule(ctx, day, func(r *entity.AvailabilityRule) {
		r.Toggle()
	})
	if err != nil {
		return nil, err
	}
	if err := u.auditService.LogUpdate(ctx, actor, entity.AuditActionAvailabilityToggle, "availability", after.Day, before.IsActive, after.IsActive); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	slots := after.Slots
	if slots == nil {
		slots = []string{}
	}
	return &dto.AvailabilityRuleResponse{Day: after.Day, Slots: slots, IsActive: after.IsActive}, nil
}

func (u *availabilityUsecase) ListExceptions(ctx context.Context) ([]dto.AvailabilityExceptionResponse, error) {
	exceptions, err := u.availabilityRepo.FindExceptions(ctx)
	if err != nil {
		u.log.Warnf("Failed to find availability exceptions: %+v", err)
		return nil, err
	}
	return converter.AvailabilityToResponse(nil, exceptions).Exceptions, nil
}

func (u *availabilityUsecase) AddException(ctx context.Context, actor string, req *dto.CreateExceptionRequest) (*dto.AvailabilityExceptionResponse, error) {
	exception := &entity.AvailabilityException{
		Date:   req.Date,
		Reason: req.Reason,
		Slots:  append([]string{}, req.Slots...),
	}
	if err := u.availabilityRepo.CreateException(ctx, exception); err != nil {
		u.log.Warnf("Failed to create availability exception: %+v", err)
		return nil, err
	}
	if err := u.auditService.LogAction(ctx, actor, entity.AuditActionExceptionCreate, entity.JSON{
		"id":     exception.ID,
		"date":   exception.Date,
		"reason": exception.Reason,
	}); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	response := converter.ExceptionToResponse(exception)
	return &response, nil
}

func (u *availabilityUsecase) DeleteException(ctx context.Context, actor string, id int) error {
	deleted, err := u.availabilityRepo.DeleteException(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to delete availability exception %d: %+v", id, err)
		return err
	}
	if !deleted {
		return ErrExceptionNotFound
	}
	if err := u.auditService.LogAction(ctx, actor, entity.AuditActionExceptionDelete, entity.JSON{"id": strconv.Itoa(id)}); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}
	return nil
}
