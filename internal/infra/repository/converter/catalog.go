package converter

import (
	"encoding/json"

	"pos-loyalty/internal/domain/reward"
	"pos-loyalty/internal/domain/tier"
	sqlc "pos-loyalty/internal/infra/sqlc/generated"
	"pos-loyalty/internal/pkg/errs"
	"pos-loyalty/internal/pkg/pgconv"
)

func TierFromRow(row sqlc.Tiers) (tier.Tier, error) {
	t := tier.Tier{
		Key:         row.Key,
		DisplayName: row.DisplayName,
		MinPoints:   row.MinPoints,
		MaxPoints:   pgconv.Int64PtrFromPgtype(row.MaxPoints),
		SortOrder:   row.SortOrder,
	}

	var err error
	if t.MinSpend, err = pgconv.DecimalFromNumeric(row.MinSpend); err != nil {
		return tier.Tier{}, errs.Wrapf(err, "tier %s min_spend", row.Key)
	}
	if t.EarningMultiplier, err = pgconv.DecimalFromNumeric(row.EarningMultiplier); err != nil {
		return tier.Tier{}, errs.Wrapf(err, "tier %s earning_multiplier", row.Key)
	}
	if t.RedemptionMultiplier, err = pgconv.DecimalFromNumeric(row.RedemptionMultiplier); err != nil {
		return tier.Tier{}, errs.Wrapf(err, "tier %s redemption_multiplier", row.Key)
	}
	if t.DiscountPercent, err = pgconv.DecimalFromNumeric(row.DiscountPercent); err != nil {
		return tier.Tier{}, errs.Wrapf(err, "tier %s discount_percent", row.Key)
	}

	if len(row.Benefits) > 0 {
		if err := json.Unmarshal(row.Benefits, &t.Benefits); err != nil {
			return tier.Tier{}, errs.Wrapf(err, "tier %s benefits", row.Key)
		}
	}

	return t, nil
}

func RewardFromRow(row sqlc.Rewards) (reward.Reward, error) {
	value, err := pgconv.DecimalFromNumeric(row.MonetaryValue)
	if err != nil {
		return reward.Reward{}, errs.Wrapf(err, "reward %s monetary_value", row.ID)
	}
	percent, err := pgconv.DecimalPtrFromNumeric(row.DiscountPercent)
	if err != nil {
		return reward.Reward{}, errs.Wrapf(err, "reward %s discount_percent", row.ID)
	}
	amount, err := pgconv.DecimalPtrFromNumeric(row.DiscountAmount)
	if err != nil {
		return reward.Reward{}, errs.Wrapf(err, "reward %s discount_amount", row.ID)
	}

	kind, err := reward.ParseKind(reward.KindColumns{
		Type:            row.RewardType,
		DiscountPercent: percent,
		DiscountAmount:  amount,
		ProductID:       pgconv.UUIDPtrFromPgtype(row.ProductID),
	})
	if err != nil {
		return reward.Reward{}, errs.Wrapf(err, "reward %s", row.ID)
	}

	return reward.Reward{
		ID:            row.ID,
		Name:          row.Name,
		PointsCost:    row.PointsCost,
		MonetaryValue: value,
		Kind:          kind,
		Stock:         pgconv.Int64PtrFromPgtype(row.StockQuantity),
		MinTier:       pgconv.StringPtrFromPgtype(row.MinTier),
		Active:        row.IsActive,
		Featured:      row.IsFeatured,
	}, nil
}

func RedemptionToInsertParams(r *reward.Redemption) sqlc.InsertRedemptionParams {
	return sqlc.InsertRedemptionParams{
		ID:             r.ID(),
		AccountID:      r.AccountID(),
		RewardID:       r.RewardID(),
		PointsSpent:    r.PointsSpent(),
		Code:           r.Code().String(),
		Status:         r.Status().String(),
		IdempotencyKey: r.IdempotencyKey(),
		LedgerEntryID:  r.LedgerEntryID(),
		IssuedAt:       pgconv.TimeToPgtype(r.IssuedAt()),
		UpdatedAt:      pgconv.TimeToPgtype(r.UpdatedAt()),
	}
}

func RedemptionFromRow(row sqlc.Redemptions) *reward.Redemption {
	return reward.ReconstructRedemption(
		row.ID,
		row.AccountID,
		row.RewardID,
		row.PointsSpent,
		reward.Code(row.Code),
		reward.Status(row.Status),
		row.IdempotencyKey,
		row.LedgerEntryID,
		pgconv.TimeFromPgtype(row.IssuedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	)
}
