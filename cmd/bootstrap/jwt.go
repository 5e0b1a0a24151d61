package bootstrap

import (
	"ifuut-api/internal/pkg/config"
	"ifuut-api/internal/pkg/jwt"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewJWTService,
	),
)

func NewJWTService(cfg config.Config) (*jwt.Service, error) {
	accessTokenDuration, refreshTokenDuration, err := cfg.JWT.Durations()
	if err != nil {
		return nil, err
	}
	return jwt.NewService(cfg.JWT.Secret, accessTokenDuration, refreshTokenDuration), nil
}
