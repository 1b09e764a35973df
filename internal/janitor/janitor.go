// Package janitor runs the periodic retention sweeps: expired reset
// tokens are cleared from user rows and old error-log entries pruned.
package janitor

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/taskdeck/taskdeck/internal/metrics"
	"github.com/taskdeck/taskdeck/internal/repository"
)

type Janitor struct {
	users     repository.UserRepository
	errorLogs repository.ErrorLogRepository
	logger    *slog.Logger
	schedule  cron.Schedule
	retention time.Duration
}

// New parses spec as a standard cron expression (e.g. "*/10 * * * *").
func New(users repository.UserRepository, errorLogs repository.ErrorLogRepository, logger *slog.Logger, spec string, retention time.Duration) (*Janitor, error) {
	schedule, err := cron.ParseStandard(spec)
	if err != nil {
		return nil, err
	}
	return &Janitor{
		users:     users,
		errorLogs: errorLogs,
		logger:    logger.With("component", "janitor"),
		schedule:  schedule,
		retention: retention,
	}, nil
}

// Start blocks until ctx is cancelled, sweeping on the cron schedule.
func (j *Janitor) Start(ctx context.Context) {
	j.logger.Info("janitor started", "retention", j.retention)

	for {
		next := j.schedule.Next(time.Now())
		timer := time.NewTimer(time.Until(next))

		select {
		case <-ctx.Done():
			timer.Stop()
			j.logger.Info("janitor shut down")
			return
		case <-timer.C:
			j.sweep(ctx)
		}
	}
}

func (j *Janitor) sweep(ctx context.Context) {
	now := time.Now()

	cleared, err := j.users.ClearExpiredResetTokens(ctx, now)
	if err != nil {
		j.logger.Error("clear expired reset tokens", "error", err)
	} else if cleared > 0 {
		metrics.JanitorSweepsTotal.WithLabelValues("reset_tokens").Add(float64(cleared))
		j.logger.Info("cleared expired reset tokens", "count", cleared)
	}

	pruned, err := j.errorLogs.DeleteOlderThan(ctx, now.Add(-j.retention))
	if err != nil {
		j.logger.Error("prune error logs", "error", err)
	} else if pruned > 0 {
		metrics.JanitorSweepsTotal.WithLabelValues("error_logs").Add(float64(pruned))
		j.logger.Info("pruned old error logs", "count", pruned)
	}
}
