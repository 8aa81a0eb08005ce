package bootstrap

import (
	"car-rental/internal/infra/metrics"
	"car-rental/internal/usecase/commands"
	"car-rental/internal/usecase/sweep"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
)

var MetricsModule = fx.Module("metrics",
	fx.Provide(
		metrics.NewRegistry,
		func(reg *prometheus.Registry) prometheus.Registerer { return reg },
		fx.Annotate(
			metrics.NewMetrics,
			fx.As(new(commands.ConfirmationObserver)),
			fx.As(new(sweep.Observer)),
		),
	),
)
