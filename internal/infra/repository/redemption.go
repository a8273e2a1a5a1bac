package repository

import (
	"context"
	"time"

	"pos-loyalty/internal/domain/reward"
	"pos-loyalty/internal/infra"
	"pos-loyalty/internal/infra/repository/converter"
	sqlc "pos-loyalty/internal/infra/sqlc/generated"
	"pos-loyalty/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type RedemptionQueries interface {
	InsertRedemption(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertRedemptionParams) error
	FindRedemptionByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Redemptions, error)
	FindRedemptionByCode(ctx context.Context, db sqlc.DBTX, code string) (sqlc.Redemptions, error)
	FindRedemptionByIdempotencyKey(ctx context.Context, db sqlc.DBTX, arg sqlc.FindRedemptionByIdempotencyKeyParams) (sqlc.Redemptions, error)
	RedemptionCodeExists(ctx context.Context, db sqlc.DBTX, code string) (bool, error)
	UpdateRedemptionStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateRedemptionStatusParams) (int64, error)
}

type RedemptionRepository struct {
	queries RedemptionQueries
	db      sqlc.DBTX
}

func NewRedemptionRepository(queries RedemptionQueries, db sqlc.DBTX) *RedemptionRepository {
	return &RedemptionRepository{
		queries: queries,
		db:      db,
	}
}

// Insert turns a lost race on the code or idempotency index into KindConflict;
// the retried transaction then either replays the winner or draws a new code.
func (r *RedemptionRepository) Insert(ctx context.Context, rd *reward.Redemption) error {
	err := r.queries.InsertRedemption(ctx, r.db, converter.RedemptionToInsertParams(rd))
	if err != nil {
		if _, ok := pgconv.IsUniqueViolation(err); ok {
			return infra.WrapRepoErr("redemption raced", err, infra.KindConflict)
		}
		return infra.WrapRepoErr("failed to insert redemption", err)
	}
	return nil
}

func (r *RedemptionRepository) FindByID(ctx context.Context, id uuid.UUID) (*reward.Redemption, error) {
	row, err := r.queries.FindRedemptionByID(ctx, r.db, id)
	return r.one(row, err)
}

func (r *RedemptionRepository) FindByCode(ctx context.Context, code reward.Code) (*reward.Redemption, error) {
	row, err := r.queries.FindRedemptionByCode(ctx, r.db, code.String())
	return r.one(row, err)
}

func (r *RedemptionRepository) FindByIdempotencyKey(ctx context.Context, accountID, key uuid.UUID) (*reward.Redemption, error) {
	row, err := r.queries.FindRedemptionByIdempotencyKey(ctx, r.db, sqlc.FindRedemptionByIdempotencyKeyParams{
		AccountID:      accountID,
		IdempotencyKey: key,
	})
	return r.one(row, err)
}

func (r *RedemptionRepository) one(row sqlc.Redemptions, err error) (*reward.Redemption, error) {
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("redemption not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find redemption", err)
	}
	return converter.RedemptionFromRow(row), nil
}

func (r *RedemptionRepository) CodeExists(ctx context.Context, code reward.Code) (bool, error) {
	exists, err := r.queries.RedemptionCodeExists(ctx, r.db, code.String())
	if err != nil {
		return false, infra.WrapRepoErr("failed to check redemption code", err)
	}
	return exists, nil
}

func (r *RedemptionRepository) UpdateStatus(ctx context.Context, id uuid.UUID, from, to reward.Status, at time.Time) (bool, error) {
	n, err := r.queries.UpdateRedemptionStatus(ctx, r.db, sqlc.UpdateRedemptionStatusParams{
		ToStatus:   to.String(),
		UpdatedAt:  pgconv.TimeToPgtype(at),
		ID:         id,
		FromStatus: from.String(),
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to update redemption status", err)
	}
	return n > 0, nil
}
