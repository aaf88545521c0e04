package components

import (
	"court-booking/internal/domain/booking"
	"court-booking/internal/pkg/clock"
	"court-booking/internal/pkg/config"
	"court-booking/internal/usecase"
	"court-booking/internal/usecase/commands"
	"court-booking/internal/usecase/queries"
	"court-booking/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	fx.Annotate(
		booking.NewHourlyPriceCalculator,
		fx.As(new(booking.PriceCalculator)),
	),
	func(cfg config.Config) (booking.Policy, error) {
		loc, err := cfg.Booking.Location()
		if err != nil {
			return booking.Policy{}, err
		}
		return booking.NewPolicy(cfg.Booking.GraceWindow, loc), nil
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewBookingCommands,
		commands.NewCatalogCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewBookingQueries,
		func(uow shared.UnitOfWork, catalog shared.ResourceCatalog, cfg config.Config) queries.AvailabilityQueries {
			return queries.NewAvailabilityQueries(uow, catalog, cfg.Booking.DefaultSlotMinutes)
		},
		func(index queries.SearchIndex, cfg config.Config) queries.SearchQueries {
			return queries.NewSearchQueries(index, cfg.Search.AutocompleteMax)
		},
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
