package reward

import (
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrInvalidRewardKind = errors.New("invalid reward kind")

// Kind is the closed set of reward variants. Each variant carries only its own
// parameters; the unexported method keeps the set sealed to this package.
type Kind interface {
	Type() string
	sealed()
}

type PercentDiscount struct {
	Percent decimal.Decimal
}

type FixedDiscount struct {
	Amount decimal.Decimal
}

type FreeDelivery struct{}

type FreeProduct struct {
	ProductID uuid.UUID
}

type Voucher struct {
	Amount decimal.Decimal
}

const (
	TypePercentDiscount = "discount_percent"
	TypeFixedDiscount   = "discount_fixed"
	TypeFreeDelivery    = "free_delivery"
	TypeFreeProduct     = "free_product"
	TypeVoucher         = "voucher"
)

func (PercentDiscount) Type() string { return TypePercentDiscount }
func (FixedDiscount) Type() string   { return TypeFixedDiscount }
func (FreeDelivery) Type() string    { return TypeFreeDelivery }
func (FreeProduct) Type() string     { return TypeFreeProduct }
func (Voucher) Type() string         { return TypeVoucher }

func (PercentDiscount) sealed() {}
func (FixedDiscount) sealed()   {}
func (FreeDelivery) sealed()    {}
func (FreeProduct) sealed()     {}
func (Voucher) sealed()         {}

// KindColumns is the flattened storage shape of a Kind.
type KindColumns struct {
	Type            string
	DiscountPercent *decimal.Decimal
	DiscountAmount  *decimal.Decimal
	ProductID       *uuid.UUID
}

var hundred = decimal.NewFromInt(100)

// ParseKind rebuilds a variant from storage columns and rejects combinations a
// variant does not own, e.g. free_delivery with a discount percent.
func ParseKind(c KindColumns) (Kind, error) {
	switch c.Type {
	case TypePercentDiscount:
		if c.DiscountPercent == nil || c.DiscountAmount != nil || c.ProductID != nil {
			return nil, ErrInvalidRewardKind
		}
		if !c.DiscountPercent.IsPositive() || c.DiscountPercent.GreaterThan(hundred) {
			return nil, ErrInvalidRewardKind
		}
		return PercentDiscount{Percent: *c.DiscountPercent}, nil
	case TypeFixedDiscount, TypeVoucher:
		if c.DiscountAmount == nil || c.DiscountPercent != nil || c.ProductID != nil {
			return nil, ErrInvalidRewardKind
		}
		if !c.DiscountAmount.IsPositive() {
			return nil, ErrInvalidRewardKind
		}
		if c.Type == TypeVoucher {
			return Voucher{Amount: *c.DiscountAmount}, nil
		}
		return FixedDiscount{Amount: *c.DiscountAmount}, nil
	case TypeFreeDelivery:
		if c.DiscountPercent != nil || c.DiscountAmount != nil || c.ProductID != nil {
			return nil, ErrInvalidRewardKind
		}
		return FreeDelivery{}, nil
	case TypeFreeProduct:
		if c.ProductID == nil || *c.ProductID == uuid.Nil || c.DiscountPercent != nil || c.DiscountAmount != nil {
			return nil, ErrInvalidRewardKind
		}
		return FreeProduct{ProductID: *c.ProductID}, nil
	default:
		return nil, ErrInvalidRewardKind
	}
}

func Columns(k Kind) KindColumns {
	switch v := k.(type) {
	case PercentDiscount:
		return KindColumns{Type: v.Type(), DiscountPercent: &v.Percent}
	case FixedDiscount:
		return KindColumns{Type: v.Type(), DiscountAmount: &v.Amount}
	case Voucher:
		return KindColumns{Type: v.Type(), DiscountAmount: &v.Amount}
	case FreeDelivery:
		return KindColumns{Type: v.Type()}
	case FreeProduct:
		return KindColumns{Type: v.Type(), ProductID: &v.ProductID}
	default:
		panic("reward: unhandled kind")
	}
}
