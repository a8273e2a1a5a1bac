package commands

import (
	"context"
	"time"

	"pos-loyalty/internal/domain/loyalty"
	"pos-loyalty/internal/domain/reward"
	"pos-loyalty/internal/infra"
	"pos-loyalty/internal/pkg/clock"
	"pos-loyalty/internal/pkg/config"
	"pos-loyalty/internal/pkg/errs"
	"pos-loyalty/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type RedeemInput struct {
	AccountID      uuid.UUID
	RewardID       uuid.UUID
	IdempotencyKey uuid.UUID
}

type RedeemResult struct {
	Redemption *reward.Redemption
	Balance    int64
	IsReplayed bool
}

type CancelResult struct {
	Redemption *reward.Redemption
	Refund     loyalty.Entry
}

type RedemptionCommands interface {
	// Redeem debits the ledger, takes a unit of stock and issues a code in one
	// transaction. Replaying the same idempotency key returns the original redemption.
	Redeem(ctx context.Context, in RedeemInput) (*RedeemResult, error)
	Use(ctx context.Context, code string) (*reward.Redemption, error)
	Cancel(ctx context.Context, redemptionID uuid.UUID) (*CancelResult, error)
}

type redemptionUseCaseImpl struct {
	uow   shared.UnitOfWork
	codes reward.CodeGenerator
	cfg   config.LoyaltyConfig
	clock clock.Clock
}

func NewRedemptionUseCase(
	uow shared.UnitOfWork,
	codes reward.CodeGenerator,
	cfg config.LoyaltyConfig,
	clock clock.Clock,
) RedemptionCommands {
	return &redemptionUseCaseImpl{
		uow:   uow,
		codes: codes,
		cfg:   cfg,
		clock: clock,
	}
}

func (r *redemptionUseCaseImpl) Redeem(ctx context.Context, in RedeemInput) (*RedeemResult, error) {
	if in.IdempotencyKey == uuid.Nil {
		return nil, errs.ErrIdempotencyKeyRequired
	}

	var result RedeemResult
	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		result = RedeemResult{}

		account, err := loadActiveAccount(ctx, tx, in.AccountID)
		if err != nil {
			return err
		}

		replay, err := r.findReplay(ctx, tx, in)
		if err != nil {
			return err
		}
		if replay != nil {
			snap, err := tx.Balances().Get(ctx, account.ID())
			if err != nil {
				return repoErr(err, errs.ErrUnknownAccount)
			}
			result = RedeemResult{Redemption: replay, Balance: snap.CurrentPoints, IsReplayed: true}
			return nil
		}

		rw, snap, err := r.checkPreconditions(ctx, tx, account, in.RewardID)
		if err != nil {
			return err
		}

		now := r.clock.Now()
		redemptionID := uuid.New()
		entry, next, err := post(ctx, tx, snap, loyalty.KindRedeem, -rw.PointsCost, redemptionID.String(), decimal.Zero, now)
		if err != nil {
			if errs.Is(err, errs.ErrInsufficientBalance) {
				return errs.Mark(err, errs.ErrInsufficientPoints)
			}
			return err
		}

		if !rw.Unlimited() {
			taken, err := tx.Rewards().DecrementStock(ctx, rw.ID)
			if err != nil {
				return repoErr(err, errs.ErrRewardNotFound)
			}
			if !taken {
				return errs.ErrOutOfStock
			}
		}

		code, err := r.allocateCode(ctx, tx)
		if err != nil {
			return err
		}

		redemption := reward.NewRedemption(
			redemptionID, account.ID(), rw.ID, rw.PointsCost, code, in.IdempotencyKey, entry.ID, now)
		if err := tx.Redemptions().Insert(ctx, redemption); err != nil {
			return repoErr(err, nil)
		}

		payload := map[string]any{
			"redemption_id": redemption.ID(),
			"account_id":    account.ID(),
			"customer_id":   account.CustomerID(),
			"reward_id":     rw.ID,
			"reward_name":   rw.Name,
			"points_spent":  rw.PointsCost,
			"code":          code.String(),
		}
		if err := enqueue(ctx, tx, shared.JobKindRedemptionIssued, shared.TopicLoyaltyRedemption, payload, now); err != nil {
			return err
		}

		result = RedeemResult{Redemption: redemption, Balance: next.CurrentPoints}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *redemptionUseCaseImpl) findReplay(ctx context.Context, tx shared.Tx, in RedeemInput) (*reward.Redemption, error) {
	existing, err := tx.Redemptions().FindByIdempotencyKey(ctx, in.AccountID, in.IdempotencyKey)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, nil
		}
		return nil, repoErr(err, nil)
	}
	if existing.RewardID() != in.RewardID {
		return nil, errs.ErrIdempotencyKeyReused
	}
	return existing, nil
}

// checkPreconditions reports, in order: missing reward, inactive, out of stock,
// tier not eligible, insufficient points.
func (r *redemptionUseCaseImpl) checkPreconditions(
	ctx context.Context,
	tx shared.Tx,
	account *loyalty.Account,
	rewardID uuid.UUID,
) (reward.Reward, loyalty.Snapshot, error) {
	rw, err := tx.Rewards().FindByID(ctx, rewardID)
	if err != nil {
		return reward.Reward{}, loyalty.Snapshot{}, repoErr(err, errs.ErrRewardNotFound)
	}
	if err := rw.CheckAvailable(); err != nil {
		return reward.Reward{}, loyalty.Snapshot{}, err
	}

	if rw.MinTier != nil {
		catalog, err := loadCatalog(ctx, tx)
		if err != nil {
			return reward.Reward{}, loyalty.Snapshot{}, err
		}
		ok, err := catalog.Meets(account.TierKey(), *rw.MinTier)
		if err != nil {
			return reward.Reward{}, loyalty.Snapshot{}, errs.Mark(err, errs.ErrTierNotEligible)
		}
		if !ok {
			return reward.Reward{}, loyalty.Snapshot{}, errs.ErrTierNotEligible
		}
	}

	snap, err := tx.Balances().Get(ctx, account.ID())
	if err != nil {
		return reward.Reward{}, loyalty.Snapshot{}, repoErr(err, errs.ErrUnknownAccount)
	}
	if snap.CurrentPoints < rw.PointsCost {
		return reward.Reward{}, loyalty.Snapshot{}, errs.ErrInsufficientPoints
	}
	return rw, snap, nil
}

// allocateCode draws codes until one is free. The unique index on code still
// guards against a concurrent insert of the same code; that surfaces as a
// conflict and retries the whole transaction.
func (r *redemptionUseCaseImpl) allocateCode(ctx context.Context, tx shared.Tx) (reward.Code, error) {
	for attempt := 0; attempt < r.cfg.CodeAttempts; attempt++ {
		code, err := r.codes.Generate()
		if err != nil {
			return "", errs.Wrap(err, "generate redemption code")
		}
		taken, err := tx.Redemptions().CodeExists(ctx, code)
		if err != nil {
			return "", repoErr(err, nil)
		}
		if !taken {
			return code, nil
		}
	}
	return "", errs.Wrapf(errs.ErrCodeAllocationFailed, "no free code after %d attempts", r.cfg.CodeAttempts)
}

func (r *redemptionUseCaseImpl) Use(ctx context.Context, raw string) (*reward.Redemption, error) {
	code, err := reward.ParseCode(raw)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrRedemptionNotFound)
	}

	var out *reward.Redemption
	err = r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		redemption, err := tx.Redemptions().FindByCode(ctx, code)
		if err != nil {
			return repoErr(err, errs.ErrRedemptionNotFound)
		}
		now := r.clock.Now()
		if err := redemption.Use(now); err != nil {
			return err
		}
		if err := r.updateStatus(ctx, tx, redemption, reward.StatusUsed, now); err != nil {
			return err
		}
		out = redemption
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Cancel voids an issued redemption: the points come back as an adjust entry
// and a finite stock unit is returned.
func (r *redemptionUseCaseImpl) Cancel(ctx context.Context, redemptionID uuid.UUID) (*CancelResult, error) {
	var out CancelResult
	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		redemption, err := tx.Redemptions().FindByID(ctx, redemptionID)
		if err != nil {
			return repoErr(err, errs.ErrRedemptionNotFound)
		}
		now := r.clock.Now()
		if err := redemption.Cancel(now); err != nil {
			return err
		}
		if err := r.updateStatus(ctx, tx, redemption, reward.StatusCancelled, now); err != nil {
			return err
		}

		if _, err := loadActiveAccount(ctx, tx, redemption.AccountID()); err != nil {
			return err
		}
		snap, err := tx.Balances().Get(ctx, redemption.AccountID())
		if err != nil {
			return repoErr(err, errs.ErrUnknownAccount)
		}
		refund, _, err := post(ctx, tx, snap, loyalty.KindAdjust, redemption.PointsSpent(),
			"refund:"+redemption.ID().String(), decimal.Zero, now)
		if err != nil {
			return err
		}

		rw, err := tx.Rewards().FindByID(ctx, redemption.RewardID())
		switch {
		case err == nil:
			if !rw.Unlimited() {
				if err := tx.Rewards().IncrementStock(ctx, rw.ID); err != nil {
					return repoErr(err, nil)
				}
			}
		case !infra.IsKind(err, infra.KindNotFound):
			return repoErr(err, nil)
		}

		out = CancelResult{Redemption: redemption, Refund: refund}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *redemptionUseCaseImpl) updateStatus(
	ctx context.Context,
	tx shared.Tx,
	redemption *reward.Redemption,
	to reward.Status,
	now time.Time,
) error {
	moved, err := tx.Redemptions().UpdateStatus(ctx, redemption.ID(), reward.StatusIssued, to, now)
	if err != nil {
		return repoErr(err, errs.ErrRedemptionNotFound)
	}
	if !moved {
		// someone else moved it first; retry to observe the new status
		return errs.Mark(infra.NewConflict("redemption status changed concurrently"), errs.ErrConcurrentConflict)
	}
	return nil
}
