package repository

import (
	"context"

	"pos-loyalty/internal/domain/reward"
	"pos-loyalty/internal/infra"
	"pos-loyalty/internal/infra/repository/converter"
	sqlc "pos-loyalty/internal/infra/sqlc/generated"
	"pos-loyalty/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type RewardQueries interface {
	FindRewardByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Rewards, error)
	ListActiveRewards(ctx context.Context, db sqlc.DBTX) ([]sqlc.Rewards, error)
	DecrementRewardStock(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
	IncrementRewardStock(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
}

type RewardRepository struct {
	queries RewardQueries
	db      sqlc.DBTX
}

func NewRewardRepository(queries RewardQueries, db sqlc.DBTX) *RewardRepository {
	return &RewardRepository{
		queries: queries,
		db:      db,
	}
}

func (r *RewardRepository) FindByID(ctx context.Context, id uuid.UUID) (reward.Reward, error) {
	row, err := r.queries.FindRewardByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return reward.Reward{}, infra.WrapRepoErr("reward not found", err, infra.KindNotFound)
		}
		return reward.Reward{}, infra.WrapRepoErr("failed to find reward", err)
	}

	rw, err := converter.RewardFromRow(row)
	if err != nil {
		return reward.Reward{}, infra.WrapRepoErr("failed to decode reward", err)
	}
	return rw, nil
}

func (r *RewardRepository) ListActive(ctx context.Context) ([]reward.Reward, error) {
	rows, err := r.queries.ListActiveRewards(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list rewards", err)
	}

	rewards := make([]reward.Reward, 0, len(rows))
	for _, row := range rows {
		rw, err := converter.RewardFromRow(row)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to decode reward", err)
		}
		rewards = append(rewards, rw)
	}
	return rewards, nil
}

// DecrementStock on an unlimited reward matches no row; callers only invoke it for finite stock.
func (r *RewardRepository) DecrementStock(ctx context.Context, id uuid.UUID) (bool, error) {
	n, err := r.queries.DecrementRewardStock(ctx, r.db, id)
	if err != nil {
		return false, infra.WrapRepoErr("failed to decrement reward stock", err)
	}
	return n > 0, nil
}

func (r *RewardRepository) IncrementStock(ctx context.Context, id uuid.UUID) error {
	if _, err := r.queries.IncrementRewardStock(ctx, r.db, id); err != nil {
		return infra.WrapRepoErr("failed to increment reward stock", err)
	}
	return nil
}
