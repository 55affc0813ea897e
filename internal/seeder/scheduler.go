package seeder

import (
	"context"
	"log/slog"
	"time"
)

// Scheduler reruns the full reseed on a fixed interval, the periodic
// refresh that keeps catalog prices current. A failed run is logged
// and the next tick tries again.
type Scheduler struct {
	runner   *Runner
	interval time.Duration
	logger   *slog.Logger
}

func NewScheduler(runner *Runner, interval time.Duration, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		runner:   runner,
		interval: interval,
		logger:   logger.With("component", "reseed_scheduler"),
	}
}

// Start blocks until the context is cancelled.
func (s *Scheduler) Start(ctx context.Context) error {
	s.logger.Info("starting reseed scheduler", "interval", s.interval)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("reseed scheduler stopped")
			return ctx.Err()
		case <-ticker.C:
			started := time.Now()
			result, err := s.runner.Reseed(ctx)
			if err != nil {
				s.logger.Error("scheduled reseed failed", "error", err)
				continue
			}
			s.logger.Info("scheduled reseed completed",
				"succeeded", len(result.Succeeded),
				"failed", len(result.Failed),
				"duration", time.Since(started))
		}
	}
}
