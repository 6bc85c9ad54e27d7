package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/transfer-server/internal/service"
)

// advancer moves due transfers to their next status.
type advancer interface {
	AdvanceDue(ctx context.Context) ([]*service.Transaction, error)
}

// Scheduler drives timed status progression on a cron schedule.
type Scheduler struct {
	cron     *cron.Cron
	advancer advancer
	logger   *logrus.Logger
	schedule string
	timeout  time.Duration
}

func NewScheduler(a advancer, logger *logrus.Logger, schedule string) *Scheduler {
	cronLogger := cron.PrintfLogger(logger)
	c := cron.New(cron.WithChain(cron.Recover(cronLogger)))

	return &Scheduler{
		cron:     c,
		advancer: a,
		logger:   logger,
		schedule: schedule,
		timeout:  10 * time.Second,
	}
}

// Start registers the progression job and starts the cron scheduler.
func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc(s.schedule, s.AdvanceDue); err != nil {
		s.logger.WithError(err).WithField("schedule", s.schedule).Error("Scheduler.Start.error")
		return err
	}
	s.logger.WithField("schedule", s.schedule).Info("Scheduler.Start.scheduled")

	s.cron.Start()
	return nil
}

// AdvanceDue runs one progression pass.
func (s *Scheduler) AdvanceDue() {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	advanced, err := s.advancer.AdvanceDue(ctx)
	if err != nil {
		s.logger.WithError(err).Error("Scheduler.AdvanceDue.error")
		return
	}
	if len(advanced) > 0 {
		s.logger.WithField("advanced", len(advanced)).Info("Scheduler.AdvanceDue.complete")
	}
}

// Stop stops the cron scheduler. The returned context is done once running
// jobs finish.
func (s *Scheduler) Stop() context.Context {
	return s.cron.Stop()
}
