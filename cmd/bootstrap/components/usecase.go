package components

import (
	"ifuut-api/internal/usecase"
	"ifuut-api/internal/usecase/commands"
	"ifuut-api/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewUserCommands,
		commands.NewQuadraCommands,
		commands.NewAgendamentoCommands,
		commands.NewOwnerRequestCommands,
		commands.NewAdminCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewQuadraQueries,
		queries.NewAgendamentoQueries,
		queries.NewOwnerRequestQueries,
		queries.NewAdminQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
