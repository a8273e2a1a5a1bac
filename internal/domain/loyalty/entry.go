package loyalty

import (
	"time"

	"pos-loyalty/internal/pkg/errs"

	"github.com/google/uuid"
)

type Kind string

const (
	KindEarn   Kind = "earn"
	KindRedeem Kind = "redeem"
	KindAdjust Kind = "adjust"
	KindExpire Kind = "expire"
)

func (k Kind) String() string {
	return string(k)
}

func (k Kind) IsValid() bool {
	switch k {
	case KindEarn, KindRedeem, KindAdjust, KindExpire:
		return true
	default:
		return false
	}
}

func ParseKind(s string) (Kind, error) {
	k := Kind(s)
	if !k.IsValid() {
		return "", errs.ErrInvalidDelta
	}
	return k, nil
}

// ValidateDelta checks the sign rule: earn >= 0, redeem/expire <= 0, adjust either way.
// No single entry may move more than MaxPoints.
func (k Kind) ValidateDelta(delta int64) error {
	if delta > MaxPoints || delta < -MaxPoints {
		return errs.Wrapf(errs.ErrPointsOutOfRange, "delta %d exceeds %d", delta, int64(MaxPoints))
	}
	switch k {
	case KindEarn:
		if delta < 0 {
			return errs.ErrInvalidDelta
		}
	case KindRedeem, KindExpire:
		if delta > 0 {
			return errs.ErrInvalidDelta
		}
	case KindAdjust:
	default:
		return errs.ErrInvalidDelta
	}
	return nil
}

// Entry is an immutable ledger fact. Seq orders entries within one account.
type Entry struct {
	ID             uuid.UUID
	AccountID      uuid.UUID
	Seq            int64
	Kind           Kind
	Delta          int64
	SourceRef      string
	RunningBalance int64
	CreatedAt      time.Time
}
