package bootstrap

import (
	"log/slog"

	"pos-loyalty/internal/handler/middleware"
	"pos-loyalty/internal/pkg/config"

	"go.uber.org/fx"
)

var LoggerModule = fx.Module("logger",
	fx.Provide(
		NewLogger,
	),
)

// NewLogger also installs the logger as the slog default, which the use cases
// and repositories log through.
func NewLogger(cfg config.Config) *slog.Logger {
	logger := middleware.NewSlogLogger(cfg.Log).With("service", "pos-loyalty")
	slog.SetDefault(logger)
	return logger
}
