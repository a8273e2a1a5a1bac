package repository

import (
	"context"

	"pos-loyalty/internal/domain/tier"
	"pos-loyalty/internal/infra"
	"pos-loyalty/internal/infra/repository/converter"
	sqlc "pos-loyalty/internal/infra/sqlc/generated"
)

type TierQueries interface {
	ListTiers(ctx context.Context, db sqlc.DBTX) ([]sqlc.Tiers, error)
}

type TierRepository struct {
	queries TierQueries
	db      sqlc.DBTX
}

func NewTierRepository(queries TierQueries, db sqlc.DBTX) *TierRepository {
	return &TierRepository{
		queries: queries,
		db:      db,
	}
}

func (r *TierRepository) List(ctx context.Context) ([]tier.Tier, error) {
	rows, err := r.queries.ListTiers(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list tiers", err)
	}

	tiers := make([]tier.Tier, 0, len(rows))
	for _, row := range rows {
		t, err := converter.TierFromRow(row)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to decode tier", err)
		}
		tiers = append(tiers, t)
	}
	return tiers, nil
}
