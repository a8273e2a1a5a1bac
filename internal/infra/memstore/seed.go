package memstore

import (
	"pos-loyalty/internal/domain/reward"
	"pos-loyalty/internal/domain/tier"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DefaultTiers mirrors migrations/002_seed_catalog.sql.
func DefaultTiers() []tier.Tier {
	bronzeMax, silverMax := int64(1000), int64(5000)
	return []tier.Tier{
		{
			Key:                  "bronze",
			DisplayName:          "Bronze",
			MinPoints:            0,
			MaxPoints:            &bronzeMax,
			MinSpend:             decimal.Zero,
			EarningMultiplier:    decimal.NewFromInt(1),
			RedemptionMultiplier: decimal.NewFromInt(1),
			DiscountPercent:      decimal.Zero,
			SortOrder:            1,
		},
		{
			Key:                  "silver",
			DisplayName:          "Silver",
			MinPoints:            1000,
			MaxPoints:            &silverMax,
			MinSpend:             decimal.Zero,
			EarningMultiplier:    decimal.RequireFromString("1.25"),
			RedemptionMultiplier: decimal.NewFromInt(1),
			DiscountPercent:      decimal.NewFromInt(5),
			Benefits:             tier.Benefits{BirthdayBonus: true},
			SortOrder:            2,
		},
		{
			Key:                  "gold",
			DisplayName:          "Gold",
			MinPoints:            5000,
			MinSpend:             decimal.Zero,
			EarningMultiplier:    decimal.RequireFromString("1.5"),
			RedemptionMultiplier: decimal.NewFromInt(1),
			DiscountPercent:      decimal.NewFromInt(10),
			Benefits: tier.Benefits{
				FreeDelivery:     true,
				PrioritySupport:  true,
				BirthdayBonus:    true,
				ExclusiveRewards: true,
			},
			SortOrder: 3,
		},
	}
}

// DefaultRewards mirrors migrations/002_seed_catalog.sql.
func DefaultRewards() []reward.Reward {
	silver, gold := "silver", "gold"
	voucherStock := int64(100)
	return []reward.Reward{
		{
			ID:            uuid.MustParse("5b1f6f0e-8d4a-4c43-9a0e-1d1f0c9e0a01"),
			Name:          "10% off next purchase",
			PointsCost:    500,
			MonetaryValue: decimal.Zero,
			Kind:          reward.PercentDiscount{Percent: decimal.NewFromInt(10)},
			Active:        true,
			Featured:      true,
		},
		{
			ID:            uuid.MustParse("5b1f6f0e-8d4a-4c43-9a0e-1d1f0c9e0a02"),
			Name:          "$5 off",
			PointsCost:    400,
			MonetaryValue: decimal.NewFromInt(5),
			Kind:          reward.FixedDiscount{Amount: decimal.NewFromInt(5)},
			Active:        true,
		},
		{
			ID:            uuid.MustParse("5b1f6f0e-8d4a-4c43-9a0e-1d1f0c9e0a03"),
			Name:          "Free delivery",
			PointsCost:    300,
			MonetaryValue: decimal.Zero,
			Kind:          reward.FreeDelivery{},
			MinTier:       &silver,
			Active:        true,
		},
		{
			ID:            uuid.MustParse("5b1f6f0e-8d4a-4c43-9a0e-1d1f0c9e0a04"),
			Name:          "$25 gift voucher",
			PointsCost:    2000,
			MonetaryValue: decimal.NewFromInt(25),
			Kind:          reward.Voucher{Amount: decimal.NewFromInt(25)},
			Stock:         &voucherStock,
			MinTier:       &gold,
			Active:        true,
			Featured:      true,
		},
	}
}
