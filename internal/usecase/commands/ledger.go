package commands

import (
	"context"
	"strings"

	"pos-loyalty/internal/domain/loyalty"
	"pos-loyalty/internal/infra"
	"pos-loyalty/internal/pkg/clock"
	"pos-loyalty/internal/pkg/config"
	"pos-loyalty/internal/pkg/errs"
	"pos-loyalty/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	maxSourceRefLength = 200
	saleTotalScale     = 2
)

// NUMERIC(18,2) holds values below 10^16.
var maxSaleTotal = decimal.New(1, 16)

// SaleEvent is a finalized sale handed over by the POS.
type SaleEvent struct {
	AccountID uuid.UUID
	SaleID    string
	SaleTotal decimal.Decimal
}

type EarnResult struct {
	Entry    loyalty.Entry
	Balance  loyalty.Snapshot
	Tier     TierOutcome
	Replayed bool
}

type ExpireResult struct {
	// Entry is nil when there was nothing left to expire.
	Entry     *loyalty.Entry
	Requested int64
	Expired   int64
	Balance   loyalty.Snapshot
}

type LedgerCommands interface {
	Append(ctx context.Context, accountID uuid.UUID, kind loyalty.Kind, delta int64, sourceRef string) (*loyalty.Entry, error)
	EarnFromSale(ctx context.Context, sale SaleEvent) (*EarnResult, error)
	Adjust(ctx context.Context, accountID uuid.UUID, points int64, reason string) (*loyalty.Entry, error)
	Expire(ctx context.Context, accountID uuid.UUID, points int64, reason string) (*ExpireResult, error)
}

type ledgerUseCaseImpl struct {
	uow   shared.UnitOfWork
	cfg   config.LoyaltyConfig
	clock clock.Clock
}

func NewLedgerUseCase(uow shared.UnitOfWork, cfg config.LoyaltyConfig, clock clock.Clock) LedgerCommands {
	return &ledgerUseCaseImpl{uow: uow, cfg: cfg, clock: clock}
}

func (l *ledgerUseCaseImpl) Append(
	ctx context.Context,
	accountID uuid.UUID,
	kind loyalty.Kind,
	delta int64,
	sourceRef string,
) (*loyalty.Entry, error) {
	if err := kind.ValidateDelta(delta); err != nil {
		return nil, err
	}
	if err := validateSourceRef(sourceRef, errs.ErrInvalidAdjustment); err != nil {
		return nil, err
	}

	var entry loyalty.Entry
	err := l.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := loadActiveAccount(ctx, tx, accountID); err != nil {
			return err
		}
		snap, err := tx.Balances().Get(ctx, accountID)
		if err != nil {
			return repoErr(err, errs.ErrUnknownAccount)
		}
		entry, _, err = post(ctx, tx, snap, kind, delta, sourceRef, decimal.Zero, l.clock.Now())
		return err
	})
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// EarnFromSale credits floor(total * tier multiplier * points per currency) and
// re-evaluates the tier in the same transaction. A sale id already credited to
// the account is answered with the original entry.
func (l *ledgerUseCaseImpl) EarnFromSale(ctx context.Context, sale SaleEvent) (*EarnResult, error) {
	saleID := strings.TrimSpace(sale.SaleID)
	if saleID == "" {
		return nil, errs.Wrap(errs.ErrInvalidSaleEvent, "sale id is required")
	}
	if err := validateSourceRef(saleID, errs.ErrInvalidSaleEvent); err != nil {
		return nil, err
	}
	if sale.SaleTotal.IsNegative() {
		return nil, errs.Wrap(errs.ErrInvalidSaleEvent, "sale total must not be negative")
	}
	// lifetime_spend is NUMERIC(18,2); anything finer would be rounded by postgres only
	if !sale.SaleTotal.Equal(sale.SaleTotal.Truncate(saleTotalScale)) {
		return nil, errs.Wrapf(errs.ErrInvalidSaleEvent, "sale total has more than %d decimal places", saleTotalScale)
	}
	if sale.SaleTotal.GreaterThanOrEqual(maxSaleTotal) {
		return nil, errs.Wrap(errs.ErrInvalidSaleEvent, "sale total out of range")
	}

	var result EarnResult
	err := l.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		result = EarnResult{}

		account, err := loadActiveAccount(ctx, tx, sale.AccountID)
		if err != nil {
			return err
		}
		catalog, err := loadCatalog(ctx, tx)
		if err != nil {
			return err
		}
		snap, err := tx.Balances().Get(ctx, account.ID())
		if err != nil {
			return repoErr(err, errs.ErrUnknownAccount)
		}

		existing, err := tx.Ledger().FindBySource(ctx, account.ID(), loyalty.KindEarn, saleID)
		switch {
		case err == nil:
			current, ok := catalog.ByKey(account.TierKey())
			if !ok {
				current = catalog.Lowest()
			}
			result = EarnResult{
				Entry:    existing,
				Balance:  snap,
				Tier:     TierOutcome{AccountID: account.ID(), Tier: current, PreviousTier: account.TierKey()},
				Replayed: true,
			}
			return nil
		case !infra.IsKind(err, infra.KindNotFound):
			return repoErr(err, nil)
		}

		current, ok := catalog.ByKey(account.TierKey())
		if !ok {
			current = catalog.Lowest()
		}
		points, err := loyalty.EarnPoints(sale.SaleTotal, current.EarningMultiplier, l.cfg.PointsPerCurrency)
		if err != nil {
			return err
		}

		now := l.clock.Now()
		entry, next, err := post(ctx, tx, snap, loyalty.KindEarn, points, saleID, sale.SaleTotal, now)
		if err != nil {
			return err
		}

		outcome, err := applyTier(ctx, tx, catalog, account, next, l.cfg.AllowDemotion, now)
		if err != nil {
			return err
		}

		result = EarnResult{Entry: entry, Balance: next, Tier: outcome}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (l *ledgerUseCaseImpl) Adjust(ctx context.Context, accountID uuid.UUID, points int64, reason string) (*loyalty.Entry, error) {
	if points == 0 {
		return nil, errs.Wrap(errs.ErrInvalidAdjustment, "points must not be zero")
	}
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, errs.Wrap(errs.ErrInvalidAdjustment, "reason is required")
	}
	entry, err := l.Append(ctx, accountID, loyalty.KindAdjust, points, reason)
	if errs.Is(err, errs.ErrInsufficientBalance) {
		return nil, errs.Mark(err, errs.ErrInvalidAdjustment)
	}
	return entry, err
}

// Expire removes up to points from the balance. The amount is clamped to the
// current balance; an empty balance is a no-op with no entry written.
func (l *ledgerUseCaseImpl) Expire(ctx context.Context, accountID uuid.UUID, points int64, reason string) (*ExpireResult, error) {
	if points <= 0 {
		return nil, errs.Wrap(errs.ErrInvalidAdjustment, "points to expire must be positive")
	}
	reason = strings.TrimSpace(reason)
	if reason == "" {
		reason = "expiry"
	}
	if err := validateSourceRef(reason, errs.ErrInvalidAdjustment); err != nil {
		return nil, err
	}

	var result ExpireResult
	err := l.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		result = ExpireResult{Requested: points}

		if _, err := loadActiveAccount(ctx, tx, accountID); err != nil {
			return err
		}
		snap, err := tx.Balances().Get(ctx, accountID)
		if err != nil {
			return repoErr(err, errs.ErrUnknownAccount)
		}

		amount := min(points, snap.CurrentPoints)
		if amount == 0 {
			result.Balance = snap
			return nil
		}

		entry, next, err := post(ctx, tx, snap, loyalty.KindExpire, -amount, reason, decimal.Zero, l.clock.Now())
		if err != nil {
			return err
		}
		result.Entry = &entry
		result.Expired = amount
		result.Balance = next
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func validateSourceRef(ref string, sentinel error) error {
	if len(ref) > maxSourceRefLength {
		return errs.Wrapf(sentinel, "source reference longer than %d characters", maxSourceRefLength)
	}
	return nil
}
