package bootstrap

import (
	"log/slog"

	"reserva-api/internal/infra/notify"
	"reserva-api/internal/pkg/config"

	"go.uber.org/fx"
)

var NotifyModule = fx.Module("notify",
	fx.Provide(
		NewPublisher,
	),
)

// NewPublisher selects the broker-backed publisher when an AMQP URL is
// configured and falls back to log-only delivery otherwise.
func NewPublisher(cfg config.Config, logger *slog.Logger) notify.Publisher {
	if cfg.AMQP.URL != "" {
		return notify.NewAMQPPublisher(cfg.AMQP)
	}
	return notify.NewLogPublisher(logger)
}
