package db

import (
	"context"
	"log/slog"
	"time"

	"pos-loyalty/internal/pkg/config"
	"pos-loyalty/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgxpool"
)

const applicationName = "pos-loyalty"

// Connect opens the ledger pool and pings it before returning. The cleanup
// func closes the pool.
func Connect(ctx context.Context, cfg config.DBConfig) (*pgxpool.Pool, func(), error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.BuildDSN())
	if err != nil {
		return nil, nil, errs.Wrap(err, "parse database config")
	}

	if cfg.MaxConns > 0 {
		poolCfg.MaxConns = cfg.MaxConns
	}
	poolCfg.MaxConnLifetime = time.Hour
	poolCfg.MaxConnIdleTime = 30 * time.Minute
	poolCfg.ConnConfig.RuntimeParams["application_name"] = applicationName

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, nil, errs.Wrapf(err, "open database %s", cfg.DBName)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, nil, errs.Wrapf(err, "ping database %s@%s", cfg.DBName, cfg.Host)
	}

	cleanup := func() {
		slog.Info("closing ledger pool", "db", cfg.DBName)
		pool.Close()
	}
	return pool, cleanup, nil
}
