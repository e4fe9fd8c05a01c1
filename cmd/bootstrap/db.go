package bootstrap

import (
	"context"

	"reserva-api/internal/infra/db"
	"reserva-api/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var DBModule = fx.Module("db",
	fx.Provide(
		NewDB,
	),
)

func NewDB(lc fx.Lifecycle, cfg config.Config) (*pgxpool.Pool, error) {
	pool, cleanup, err := db.Connect(cfg.DB)
	if err != nil {
		return nil, err
	}

	ctx := context.Background()
	if err := db.Migrate(ctx, pool); err != nil {
		cleanup()
		return nil, err
	}
	if err := db.SeedTables(ctx, pool, cfg.Reservation.SeedTables, cfg.Reservation.SeedCapacity); err != nil {
		cleanup()
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			if cleanup != nil {
				cleanup()
			}
			return nil
		},
	})

	return pool, nil
}
