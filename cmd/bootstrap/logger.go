package bootstrap

import (
	"log/slog"

	"ifuut-api/internal/handler/middleware"
	"ifuut-api/internal/pkg/config"

	"go.uber.org/fx"
)

var LoggerModule = fx.Module("logger",
	fx.Provide(
		NewLogger,
		NewSlogLogger,
	),
)

func NewLogger(cfg config.Config) *middleware.Logger {
	return middleware.NewLogger(cfg.Log)
}

// NewSlogLogger also installs the logger as the slog default so package-level slog calls share its handler.
func NewSlogLogger(l *middleware.Logger) *slog.Logger {
	logger := l.GetSlogLogger()
	slog.SetDefault(logger)
	return logger
}
