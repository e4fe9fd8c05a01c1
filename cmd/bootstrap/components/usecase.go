package components

import (
	"reserva-api/internal/domain/reservation"
	"reserva-api/internal/pkg/clock"
	"reserva-api/internal/pkg/config"
	"reserva-api/internal/usecase/commands"
	"reserva-api/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCommandsModule,
	usecaseQueriesModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	NewAllocator,
)

func NewAllocator(cfg config.Config) (*reservation.Allocator, error) {
	policy, err := reservation.ParsePolicy(cfg.Reservation.Policy)
	if err != nil {
		return nil, err
	}
	return reservation.NewAllocator(policy, cfg.Reservation.SlotCapacity)
}

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewCustomerCommands,
		commands.NewReservationCommands,
		commands.NewTableCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewReservationQueries,
		queries.NewTableQueries,
	),
)
