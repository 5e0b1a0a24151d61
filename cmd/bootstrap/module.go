package bootstrap

import (
	"ifuut-api/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	JWTModule,
	InfraModule,
	components.RepositoryModule,
	components.UseCaseModule,
	components.HandlerModule,
)
