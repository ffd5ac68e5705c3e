package bootstrap

import (
	"context"
	"log/slog"

	"fleetrent/internal/pkg/config"
	"fleetrent/internal/usecase/commands"

	"github.com/robfig/cron/v3"
	"go.uber.org/fx"
)

var SchedulerModule = fx.Module("scheduler",
	fx.Invoke(StartScheduler),
)

// StartScheduler runs the rental lifecycle progression on the configured cron
// schedule. Each tick activates rentals whose start time has passed and
// finishes rentals whose end time has passed.
func StartScheduler(lc fx.Lifecycle, cfg config.Config, lifecycle commands.LifecycleCommands, logger *slog.Logger) error {
	c := cron.New()

	_, err := c.AddFunc(cfg.Booking.ProgressSchedule, func() {
		if err := lifecycle.Progress(context.Background()); err != nil {
			logger.Error("rental lifecycle progression failed", "error", err)
		}
	})
	if err != nil {
		return err
	}

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			logger.Info("starting rental lifecycle scheduler", "schedule", cfg.Booking.ProgressSchedule)
			c.Start()
			return nil
		},
		OnStop: func(_ context.Context) error {
			ctx := c.Stop()
			<-ctx.Done()
			return nil
		},
	})

	return nil
}
