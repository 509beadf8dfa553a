package components

import (
	"coupon-admin/internal/usecase/commands"
	"coupon-admin/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewCouponCommands,
		commands.NewStoreCommands,
		commands.NewCategoryCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewStoreQueries,
		queries.NewCouponQueries,
		queries.NewCategoryQueries,
	),
)
