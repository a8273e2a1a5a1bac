package queries

import (
	"context"
	"slices"

	"pos-loyalty/internal/domain/reward"
	"pos-loyalty/internal/domain/tier"
	"pos-loyalty/internal/usecase/shared"
)

type CatalogQueries interface {
	ListTiers(ctx context.Context) ([]TierView, error)
	// ListRewards returns active rewards, featured first, then by cost.
	ListRewards(ctx context.Context) ([]RewardView, error)
}

type catalogQueriesImpl struct {
	uow shared.UnitOfWork
}

func NewCatalogQueries(uow shared.UnitOfWork) CatalogQueries {
	return &catalogQueriesImpl{uow: uow}
}

func (q *catalogQueriesImpl) ListTiers(ctx context.Context) ([]TierView, error) {
	var views []TierView
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		tiers, err := tx.Tiers().List(ctx)
		if err != nil {
			return readErr(err, nil)
		}
		catalog, err := tier.NewCatalog(tiers)
		if err != nil {
			return err
		}
		views = make([]TierView, 0, len(tiers))
		for _, t := range catalog.Tiers() {
			views = append(views, TierView{
				Key:                  t.Key,
				DisplayName:          t.DisplayName,
				MinPoints:            t.MinPoints,
				MaxPoints:            t.MaxPoints,
				MinSpend:             t.MinSpend,
				EarningMultiplier:    t.EarningMultiplier,
				RedemptionMultiplier: t.RedemptionMultiplier,
				DiscountPercent:      t.DiscountPercent,
				FreeDelivery:         t.Benefits.FreeDelivery,
				PrioritySupport:      t.Benefits.PrioritySupport,
				BirthdayBonus:        t.Benefits.BirthdayBonus,
				ExclusiveRewards:     t.Benefits.ExclusiveRewards,
				SortOrder:            t.SortOrder,
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return views, nil
}

func (q *catalogQueriesImpl) ListRewards(ctx context.Context) ([]RewardView, error) {
	var views []RewardView
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		rewards, err := tx.Rewards().ListActive(ctx)
		if err != nil {
			return readErr(err, nil)
		}
		slices.SortStableFunc(rewards, func(a, b reward.Reward) int {
			if a.Featured != b.Featured {
				if a.Featured {
					return -1
				}
				return 1
			}
			switch {
			case a.PointsCost < b.PointsCost:
				return -1
			case a.PointsCost > b.PointsCost:
				return 1
			}
			return 0
		})
		views = make([]RewardView, 0, len(rewards))
		for _, r := range rewards {
			views = append(views, NewRewardView(r))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return views, nil
}

func NewRewardView(r reward.Reward) RewardView {
	cols := reward.Columns(r.Kind)
	return RewardView{
		ID:              r.ID,
		Name:            r.Name,
		PointsCost:      r.PointsCost,
		MonetaryValue:   r.MonetaryValue,
		Type:            cols.Type,
		DiscountPercent: cols.DiscountPercent,
		DiscountAmount:  cols.DiscountAmount,
		ProductID:       cols.ProductID,
		Stock:           r.Stock,
		MinTier:         r.MinTier,
		Featured:        r.Featured,
	}
}
