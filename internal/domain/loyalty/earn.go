package loyalty

import (
	"pos-loyalty/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// EarnPoints is floor(saleTotal * multiplier * pointsPerCurrency).
func EarnPoints(saleTotal, multiplier, pointsPerCurrency decimal.Decimal) (int64, error) {
	if saleTotal.IsNegative() {
		return 0, errs.Wrap(errs.ErrInvalidSaleEvent, "sale total must not be negative")
	}
	if multiplier.IsNegative() || pointsPerCurrency.IsNegative() {
		return 0, errs.Wrap(errs.ErrInvalidSaleEvent, "earning rates must not be negative")
	}
	points := saleTotal.Mul(multiplier).Mul(pointsPerCurrency).Floor()
	if !points.IsInteger() || points.GreaterThan(decimal.NewFromInt(MaxPoints)) {
		return 0, errs.Wrap(errs.ErrInvalidSaleEvent, "earned points out of range")
	}
	return points.IntPart(), nil
}

// MaxPoints bounds every delta, balance and lifetime total. Sums of two bounded
// values stay far inside int64 and survive a float64 JSON consumer.
const MaxPoints = 1 << 53
