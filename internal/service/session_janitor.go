package service

import (
	"context"
	"fmt"
	"time"

	"dental-clinic-booking/internal/domain/repository"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

const sweepTimeout = 30 * time.Second

// SessionJanitor periodically purges expired booking sessions
type SessionJanitor struct {
	cron        *cron.Cron
	log         *logrus.Logger
	sessionRepo repository.SessionRepository
	now         func() time.Time
}

func NewSessionJanitor(log *logrus.Logger, sessionRepo repository.SessionRepository, schedule string) (*SessionJanitor, error) {
	j := &SessionJanitor{
		cron:        cron.New(),
		log:         log,
		sessionRepo: sessionRepo,
		now:         time.Now,
	}
	if _, err := j.cron.AddFunc(schedule, func() { j.Sweep(context.Background()) }); err != nil {
		return nil, fmt.Errorf("invalid session cleanup schedule %q: %w", schedule, err)
	}
	return j, nil
}

func (j *SessionJanitor) Start() {
	j.cron.Start()
	j.log.Info("Session janitor started")
}

// Stop halts scheduling and waits for a running sweep to finish
func (j *SessionJanitor) Stop() {
	<-j.cron.Stop().Done()
}

// Sweep removes expired sessions once
func (j *SessionJanitor) Sweep(ctx context.Context) int {
	ctx, cancel := context.WithTimeout(ctx, sweepTimeout)
	defer cancel()

	removed, err := j.sessionRepo.DeleteExpired(ctx, j.now())
	if err != nil {
		j.log.Warnf("Failed to purge expired sessions: %+v", err)
		return 0
	}
	if removed > 0 {
		j.log.Infof("Purged %d expired booking sessions", removed)
	}
	return removed
}
