package components

import (
	"reserva-api/internal/handler"
	"reserva-api/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewCustomerHandler,
		api.NewReservationHandler,
		api.NewTableHandler,
	),
	fx.Invoke(handler.NewRouter),
)
