package bootstrap

import (
	"log/slog"

	"pos-loyalty/internal/pkg/config"

	"go.uber.org/fx"
)

// ConfigModule loads env config once and hands narrower views to the
// components that only need one section.
var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		func(cfg config.Config) config.LoyaltyConfig { return cfg.Loyalty },
		func(cfg config.Config) config.StoreConfig { return cfg.Store },
	),
	fx.Invoke(logConfig),
)

func logConfig(cfg config.Config, logger *slog.Logger) {
	logger.Info("configuration loaded",
		"store", cfg.Store.Driver,
		"uow_max_retries", cfg.Store.MaxRetries,
		"points_per_currency", cfg.Loyalty.PointsPerCurrency.String(),
		"tier_allow_demotion", cfg.Loyalty.AllowDemotion,
		"evaluation_workers", cfg.Loyalty.EvaluationWorkers,
	)
}
