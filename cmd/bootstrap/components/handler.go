package components

import (
	"ovenbook/internal/handler"
	"ovenbook/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewOvenHandler,
		api.NewBookingHandler,
	),
	fx.Invoke(handler.NewRouter),
)
