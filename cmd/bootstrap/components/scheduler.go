package components

import (
	"context"
	"log/slog"

	"reminder-scheduler/internal/pkg/config"
	"reminder-scheduler/internal/usecase"

	"go.uber.org/fx"
)

var SchedulerModule = fx.Module("scheduler",
	fx.Invoke(RegisterScheduler),
)

// RegisterScheduler catches up on reminders missed while the process was
// down, then starts polling. Stop waits for the tick in flight.
func RegisterScheduler(lc fx.Lifecycle, cfg config.Config, scheduler *usecase.Scheduler, logger *slog.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if cfg.Scheduler.CatchUpOnStart {
				res, err := scheduler.Reconcile(ctx)
				if err != nil {
					// not fatal: the regular tick picks up the same reminders
					logger.Error("startup reconciliation failed", "error", err)
				} else {
					logger.Info("startup reconciliation finished",
						"delivered", res.Delivered, "failed", res.Failed, "errors", res.Errors)
				}
			}
			if cfg.Scheduler.Enabled {
				scheduler.Start(ctx, cfg.Scheduler.Interval)
			}
			return nil
		},
		OnStop: func(_ context.Context) error {
			scheduler.Stop()
			return nil
		},
	})
}
