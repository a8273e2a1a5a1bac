package uow

import (
	"context"
	"errors"
	"log/slog"

	"pos-loyalty/internal/infra/repository"
	sqlc "pos-loyalty/internal/infra/sqlc/generated"
	"pos-loyalty/internal/pkg/errs"
	"pos-loyalty/internal/usecase/shared"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	errTransactionBegin  = errs.New("failed to begin transaction")
	errTransactionCommit = errs.New("failed to commit transaction")
)

type PostgresUoW struct {
	pool   *pgxpool.Pool
	q      *sqlc.Queries
	policy RetryPolicy
}

func NewPostgresUoW(pool *pgxpool.Pool, q *sqlc.Queries, policy RetryPolicy) shared.UnitOfWork {
	return &PostgresUoW{
		pool:   pool,
		q:      q,
		policy: policy,
	}
}

// ReadCommitted is enough: every balance write is a version-checked CAS, so a
// concurrent writer surfaces as a conflict and the whole fn is replayed.
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.policy.run(ctx, func(ctx context.Context) error {
		return u.runOnce(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, fn)
	})
}

// RepeatableRead gives reconcile and history reads one consistent snapshot.
func (u *PostgresUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runReadOnlyTx(ctx, pgx.TxOptions{IsoLevel: pgx.RepeatableRead, AccessMode: pgx.ReadOnly}, fn)
}

// Avoids defer accumulation in retry loops to prevent connection leaks
func (u *PostgresUoW) runOnce(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	pgxTx, err := u.pool.BeginTx(ctx, options)
	if err != nil {
		return errs.Mark(err, errTransactionBegin)
	}

	err = fn(ctx, newPgTx(pgxTx, u.q))
	if err == nil {
		if err = pgxTx.Commit(ctx); err == nil {
			return nil
		}
		err = errs.Mark(err, errTransactionCommit)
	}

	if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
		if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
			slog.Warn("rollback failed", "error", rollbackErr.Error())
		}
	}

	return err
}

func (u *PostgresUoW) runReadOnlyTx(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	pgxTx, err := u.pool.BeginTx(ctx, options)
	if err != nil {
		return errs.Mark(err, errTransactionBegin)
	}

	defer func() {
		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("failed to rollback read-only transaction", "error", rollbackErr.Error())
			}
		}
	}()

	if err := fn(ctx, newPgTx(pgxTx, u.q)); err != nil {
		return err
	}

	return pgxTx.Commit(ctx)
}

type pgTx struct {
	dbtx sqlc.DBTX
	q    *sqlc.Queries

	// Lazy-initialized repositories
	accountRepo      shared.AccountRepository
	balanceRepo      shared.BalanceRepository
	ledgerRepo       shared.LedgerRepository
	tierRepo         shared.TierRepository
	rewardRepo       shared.RewardRepository
	redemptionRepo   shared.RedemptionRepository
	notificationRepo shared.NotificationRepository
}

func newPgTx(dbtx sqlc.DBTX, q *sqlc.Queries) *pgTx {
	return &pgTx{dbtx: dbtx, q: q}
}

func (t *pgTx) Accounts() shared.AccountRepository {
	if t.accountRepo == nil {
		t.accountRepo = repository.NewAccountRepository(t.q, t.dbtx)
	}
	return t.accountRepo
}

func (t *pgTx) Balances() shared.BalanceRepository {
	if t.balanceRepo == nil {
		t.balanceRepo = repository.NewBalanceRepository(t.q, t.dbtx)
	}
	return t.balanceRepo
}

func (t *pgTx) Ledger() shared.LedgerRepository {
	if t.ledgerRepo == nil {
		t.ledgerRepo = repository.NewLedgerRepository(t.q, t.dbtx)
	}
	return t.ledgerRepo
}

func (t *pgTx) Tiers() shared.TierRepository {
	if t.tierRepo == nil {
		t.tierRepo = repository.NewTierRepository(t.q, t.dbtx)
	}
	return t.tierRepo
}

func (t *pgTx) Rewards() shared.RewardRepository {
	if t.rewardRepo == nil {
		t.rewardRepo = repository.NewRewardRepository(t.q, t.dbtx)
	}
	return t.rewardRepo
}

func (t *pgTx) Redemptions() shared.RedemptionRepository {
	if t.redemptionRepo == nil {
		t.redemptionRepo = repository.NewRedemptionRepository(t.q, t.dbtx)
	}
	return t.redemptionRepo
}

func (t *pgTx) Notifications() shared.NotificationRepository {
	if t.notificationRepo == nil {
		t.notificationRepo = repository.NewNotificationRepository(t.q, t.dbtx)
	}
	return t.notificationRepo
}
