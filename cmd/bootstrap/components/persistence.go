package components

import (
	"pos-loyalty/internal/infra/memstore"
	sqlc "pos-loyalty/internal/infra/sqlc/generated"
	"pos-loyalty/internal/infra/uow"
	"pos-loyalty/internal/pkg/config"
	"pos-loyalty/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		sqlc.New,
		func(cfg config.Config) uow.RetryPolicy { return uow.NewRetryPolicy(cfg.Store) },
		NewUnitOfWork,
	),
)

// NewUnitOfWork picks the backing store from STORE_DRIVER. The memory store
// is seeded with the same catalog the migrations insert.
func NewUnitOfWork(cfg config.Config, pool *pgxpool.Pool, q *sqlc.Queries, policy uow.RetryPolicy) shared.UnitOfWork {
	if cfg.Store.Driver == config.StoreDriverMemory {
		store := memstore.New(
			memstore.WithTiers(memstore.DefaultTiers()),
			memstore.WithRewards(memstore.DefaultRewards()),
		)
		return uow.NewMemoryUoW(store, policy)
	}
	return uow.NewPostgresUoW(pool, q, policy)
}
