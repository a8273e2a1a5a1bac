package components

import (
	"pos-loyalty/internal/domain/reward"
	"pos-loyalty/internal/pkg/clock"
	"pos-loyalty/internal/pkg/config"
	"pos-loyalty/internal/usecase"
	"pos-loyalty/internal/usecase/commands"
	"pos-loyalty/internal/usecase/queries"

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
		func(cfg config.LoyaltyConfig) *reward.KSUIDCodeGenerator {
			return reward.NewKSUIDCodeGenerator(cfg.CodeLength)
		},
		fx.As(new(reward.CodeGenerator)),
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAccountUseCase,
		commands.NewLedgerUseCase,
		commands.NewTierUseCase,
		commands.NewRedemptionUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewBalanceQueries,
		queries.NewCatalogQueries,
		queries.NewRedemptionQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
