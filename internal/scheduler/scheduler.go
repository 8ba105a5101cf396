package scheduler

import (
	"context"
	"fmt"
	"time"

	"SmartInvest/internal/usecase"
	applogger "SmartInvest/pkg/logger"

	"github.com/robfig/cron/v3"
)

// Sweeper runs one alert sweep.
type Sweeper interface {
	Sweep(ctx context.Context) (usecase.SweepResult, error)
}

// Scheduler owns the cron jobs of the service.
type Scheduler struct {
	cron    *cron.Cron
	sweeper Sweeper
	log     *applogger.Logger
	ctx     context.Context
	cancel  context.CancelFunc
	timeout time.Duration
}

// New creates a scheduler whose specs use the six-field (seconds first) cron format.
func New(sweeper Sweeper, l *applogger.Logger) *Scheduler {
	ctx, cancel := context.WithCancel(context.Background())
	return &Scheduler{
		cron:    cron.New(cron.WithSeconds(), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		sweeper: sweeper,
		log:     l,
		ctx:     ctx,
		cancel:  cancel,
		timeout: 5 * time.Minute,
	}
}

// RegisterAlertSweep schedules the alert sweep at spec.
func (s *Scheduler) RegisterAlertSweep(spec string) error {
	if _, err := s.cron.AddFunc(spec, s.runSweep); err != nil {
		return fmt.Errorf("register alert sweep %q: %w", spec, err)
	}
	s.log.Info("alert sweep scheduled", applogger.String("spec", spec))
	return nil
}

func (s *Scheduler) runSweep() {
	ctx, cancel := context.WithTimeout(s.ctx, s.timeout)
	defer cancel()

	res, err := s.sweeper.Sweep(ctx)
	if err != nil {
		s.log.Error("alert sweep failed", applogger.Error(err))
		return
	}
	if res.Skipped {
		s.log.Debug("alert sweep skipped, another instance holds the lock")
	}
}

// Entries returns the number of registered jobs.
func (s *Scheduler) Entries() int {
	return len(s.cron.Entries())
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.cron.Start()
	s.log.Info("scheduler started", applogger.Int("jobs", s.Entries()))
}

// Stop cancels running jobs and waits for them until ctx is done.
func (s *Scheduler) Stop(ctx context.Context) error {
	s.cancel()
	done := s.cron.Stop()
	select {
	case <-done.Done():
		s.log.Info("scheduler stopped")
		return nil
	case <-ctx.Done():
		return fmt.Errorf("scheduler stop: %w", ctx.Err())
	}
}
