package repository

import (
	"context"

	"pos-loyalty/internal/domain/loyalty"
	"pos-loyalty/internal/infra"
	"pos-loyalty/internal/infra/repository/converter"
	sqlc "pos-loyalty/internal/infra/sqlc/generated"
	"pos-loyalty/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type BalanceQueries interface {
	CreateLoyaltyBalance(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateLoyaltyBalanceParams) error
	GetLoyaltyBalance(ctx context.Context, db sqlc.DBTX, accountID uuid.UUID) (sqlc.LoyaltyBalances, error)
	CompareAndSwapLoyaltyBalance(ctx context.Context, db sqlc.DBTX, arg sqlc.CompareAndSwapLoyaltyBalanceParams) (int64, error)
}

type BalanceRepository struct {
	queries BalanceQueries
	db      sqlc.DBTX
}

func NewBalanceRepository(queries BalanceQueries, db sqlc.DBTX) *BalanceRepository {
	return &BalanceRepository{
		queries: queries,
		db:      db,
	}
}

func (r *BalanceRepository) Create(ctx context.Context, s loyalty.Snapshot) error {
	if err := r.queries.CreateLoyaltyBalance(ctx, r.db, converter.SnapshotToCreateParams(s)); err != nil {
		if _, ok := pgconv.IsUniqueViolation(err); ok {
			return infra.WrapRepoErr("balance snapshot already exists", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to create balance snapshot", err)
	}
	return nil
}

func (r *BalanceRepository) Get(ctx context.Context, accountID uuid.UUID) (loyalty.Snapshot, error) {
	row, err := r.queries.GetLoyaltyBalance(ctx, r.db, accountID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return loyalty.Snapshot{}, infra.WrapRepoErr("balance snapshot not found", err, infra.KindNotFound)
		}
		return loyalty.Snapshot{}, infra.WrapRepoErr("failed to get balance snapshot", err)
	}

	snap, err := converter.SnapshotFromRow(row)
	if err != nil {
		return loyalty.Snapshot{}, infra.WrapRepoErr("failed to decode balance snapshot", err)
	}
	return snap, nil
}

// CompareAndSwap reports a lost race as KindConflict so the unit of work retries.
func (r *BalanceRepository) CompareAndSwap(ctx context.Context, next loyalty.Snapshot, expectedVersion int64) error {
	n, err := r.queries.CompareAndSwapLoyaltyBalance(ctx, r.db, converter.SnapshotToCASParams(next, expectedVersion))
	if err != nil {
		if pgconv.IsCheckViolation(err) {
			return infra.WrapRepoErr("balance snapshot violates constraint", err, infra.KindConflict)
		}
		return infra.WrapRepoErr("failed to update balance snapshot", err)
	}
	if n == 0 {
		return infra.NewConflict("balance snapshot version changed")
	}
	return nil
}
