package bootstrap

import (
	"context"
	"log/slog"

	"car-rental/internal/pkg/clock"
	"car-rental/internal/pkg/config"
	"car-rental/internal/usecase/shared"
	"car-rental/internal/usecase/sweep"

	"go.uber.org/fx"
)

var SweepModule = fx.Module("sweep",
	fx.Provide(NewSweeper),
	fx.Invoke(registerSweep),
)

func NewSweeper(uow shared.UnitOfWork, clk clock.Clock, cfg config.Config, observer sweep.Observer, logger *slog.Logger) *sweep.Sweeper {
	return sweep.NewSweeper(uow, clk, cfg.Sweep.Interval, observer, logger)
}

func registerSweep(lc fx.Lifecycle, s *sweep.Sweeper, cfg config.Config, logger *slog.Logger) {
	if !cfg.Sweep.Enabled {
		logger.Info("availability sweep disabled")
		return
	}
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			// the start context expires once startup finishes
			s.Start(context.Background())
			return nil
		},
		OnStop: func(_ context.Context) error {
			s.Stop()
			return nil
		},
	})
}
