package reward

import (
	"pos-loyalty/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Reward is a catalog row. Stock nil means unlimited; MinTier nil means any tier.
type Reward struct {
	ID            uuid.UUID
	Name          string
	PointsCost    int64
	MonetaryValue decimal.Decimal
	Kind          Kind
	Stock         *int64
	MinTier       *string
	Active        bool
	Featured      bool
}

// CheckAvailable covers the reward-side preconditions in the order they are reported.
func (r Reward) CheckAvailable() error {
	if !r.Active {
		return errs.ErrRewardInactive
	}
	if r.Stock != nil && *r.Stock <= 0 {
		return errs.ErrOutOfStock
	}
	return nil
}

func (r Reward) Unlimited() bool {
	return r.Stock == nil
}
