package components

import (
	"ovenbook/internal/pkg/clock"
	"ovenbook/internal/pkg/config"
	"ovenbook/internal/usecase"
	"ovenbook/internal/usecase/commands"
	"ovenbook/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCommandsModule,
	usecaseQueriesModule,
	usecaseValidatorsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewOvenCommands,
		commands.NewBookingCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewOvenQueries,
		queries.NewBookingQueries,
		func(store queries.BookingReadStore, cfg config.BookingConfig) *queries.BookingWatcher {
			return queries.NewBookingWatcher(store, cfg.WatchInterval)
		},
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
