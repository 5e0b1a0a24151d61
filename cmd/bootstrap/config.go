package bootstrap

import (
	"log/slog"

	"ifuut-api/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		NewConfig,
	),
)

func NewConfig() (config.Config, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return config.Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	slog.Info("configuration loaded",
		"storage", cfg.Storage.Backend,
		"redis", cfg.Cache.RedisURL != "",
		"amqp", cfg.Events.AMQPURL != "",
		"auto_migrate", cfg.DB.AutoMigrate,
	)
	return cfg, nil
}
