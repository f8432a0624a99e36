package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const activationTimeout = 30 * time.Second

type EventActivator interface {
	ActivateDue(ctx context.Context, now time.Time) (int, error)
}

// Scheduler starts attendance for open events once their start time has
// passed.
type Scheduler struct {
	cron      *cron.Cron
	activator EventActivator
}

func New(activator EventActivator) *Scheduler {
	return &Scheduler{
		cron:      cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DefaultLogger))),
		activator: activator,
	}
}

func (s *Scheduler) Start(spec string) error {
	if _, err := s.cron.AddFunc(spec, s.RunOnce); err != nil {
		return fmt.Errorf("s.cron.AddFunc -> %w", err)
	}

	s.cron.Start()
	zap.L().Info("event activation scheduled", zap.String("spec", spec))

	return nil
}

// RunOnce activates every due event once.
func (s *Scheduler) RunOnce() {
	ctx, cancel := context.WithTimeout(context.Background(), activationTimeout)
	defer cancel()

	n, err := s.activator.ActivateDue(ctx, time.Now())
	if err != nil {
		zap.L().Error("event activation failed", zap.Int("activated", n), zap.Error(err))
		return
	}
	if n > 0 {
		zap.L().Info("events activated", zap.Int("activated", n))
	}
}

// Stop waits for a running activation to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
}
