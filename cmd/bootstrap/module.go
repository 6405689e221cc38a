package bootstrap

import (
	"catchpac/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	RedisModule,
	JWTModule,
	components.RepositoryModule,
	components.UseCaseModule,
	components.HandlerModule,
)
