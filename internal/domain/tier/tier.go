package tier

import (
	"github.com/shopspring/decimal"
)

// Benefits are the perks a tier confers at the till. Stored as jsonb.
type Benefits struct {
	FreeDelivery     bool `json:"freeDelivery"`
	PrioritySupport  bool `json:"prioritySupport"`
	BirthdayBonus    bool `json:"birthdayBonus"`
	ExclusiveRewards bool `json:"exclusiveRewards"`
}

// Tier is a band [MinPoints, MaxPoints) of lifetime earned points, further gated
// by MinSpend. The top tier has no MaxPoints.
type Tier struct {
	Key                  string
	DisplayName          string
	MinPoints            int64
	MaxPoints            *int64
	MinSpend             decimal.Decimal
	EarningMultiplier    decimal.Decimal
	RedemptionMultiplier decimal.Decimal
	DiscountPercent      decimal.Decimal
	Benefits             Benefits
	SortOrder            int32
}

func (t Tier) qualifies(points int64, spend decimal.Decimal) bool {
	return t.MinPoints <= points && t.MinSpend.LessThanOrEqual(spend)
}
