package bootstrap

import (
	"context"
	"log/slog"

	"pos-loyalty/internal/infra/db"
	"pos-loyalty/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var DBModule = fx.Module("db",
	fx.Provide(
		NewDB,
	),
)

// NewDB returns a nil pool for STORE_DRIVER=memory; the persistence module
// never touches it in that mode.
func NewDB(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (*pgxpool.Pool, error) {
	if cfg.Store.Driver == config.StoreDriverMemory {
		logger.Warn("in-memory store selected, balances are lost on restart")
		return nil, nil
	}

	pool, closePool, err := db.Connect(context.Background(), cfg.DB)
	if err != nil {
		return nil, err
	}
	logger.Info("ledger database connected", "host", cfg.DB.Host, "db", cfg.DB.DBName, "max_conns", cfg.DB.MaxConns)

	lc.Append(fx.StopHook(closePool))
	return pool, nil
}
