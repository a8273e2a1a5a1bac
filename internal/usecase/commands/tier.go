package commands

import (
	"bytes"
	"context"
	"log/slog"
	"slices"
	"sync"
	"time"

	"pos-loyalty/internal/domain/loyalty"
	"pos-loyalty/internal/domain/tier"
	"pos-loyalty/internal/pkg/clock"
	"pos-loyalty/internal/pkg/config"
	"pos-loyalty/internal/pkg/errs"
	"pos-loyalty/internal/usecase/shared"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

type TierOutcome struct {
	AccountID    uuid.UUID
	Tier         tier.Tier
	PreviousTier string
	Changed      bool
}

type EvaluationFailure struct {
	AccountID uuid.UUID
	Err       error
}

type BatchEvaluation struct {
	Results  []TierOutcome
	Failures []EvaluationFailure
}

func (b *BatchEvaluation) Changed() int {
	n := 0
	for _, r := range b.Results {
		if r.Changed {
			n++
		}
	}
	return n
}

type TierCommands interface {
	Evaluate(ctx context.Context, accountID uuid.UUID) (*TierOutcome, error)
	// EvaluateAll re-evaluates every active account. A failing account is
	// reported in Failures and never stops the batch.
	EvaluateAll(ctx context.Context) (*BatchEvaluation, error)
}

type tierUseCaseImpl struct {
	uow   shared.UnitOfWork
	cfg   config.LoyaltyConfig
	clock clock.Clock
}

func NewTierUseCase(uow shared.UnitOfWork, cfg config.LoyaltyConfig, clock clock.Clock) TierCommands {
	return &tierUseCaseImpl{uow: uow, cfg: cfg, clock: clock}
}

func (t *tierUseCaseImpl) Evaluate(ctx context.Context, accountID uuid.UUID) (*TierOutcome, error) {
	var out TierOutcome
	err := t.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		account, err := loadActiveAccount(ctx, tx, accountID)
		if err != nil {
			return err
		}
		snap, err := tx.Balances().Get(ctx, accountID)
		if err != nil {
			return repoErr(err, errs.ErrUnknownAccount)
		}
		catalog, err := loadCatalog(ctx, tx)
		if err != nil {
			return err
		}
		out, err = applyTier(ctx, tx, catalog, account, snap, t.cfg.AllowDemotion, t.clock.Now())
		return err
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (t *tierUseCaseImpl) EvaluateAll(ctx context.Context) (*BatchEvaluation, error) {
	batch := &BatchEvaluation{}
	var mu sync.Mutex

	after := uuid.Nil
	for {
		var ids []uuid.UUID
		err := t.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
			var err error
			ids, err = tx.Accounts().ListActiveIDs(ctx, after, t.cfg.EvaluationPage)
			return repoErr(err, nil)
		})
		if err != nil {
			return batch, err
		}
		if len(ids) == 0 {
			break
		}

		var g errgroup.Group
		g.SetLimit(t.cfg.EvaluationWorkers)
		for _, id := range ids {
			g.Go(func() error {
				out, err := t.Evaluate(ctx, id)
				mu.Lock()
				defer mu.Unlock()
				if err != nil {
					batch.Failures = append(batch.Failures, EvaluationFailure{AccountID: id, Err: err})
					return nil
				}
				batch.Results = append(batch.Results, *out)
				return nil
			})
		}
		_ = g.Wait()

		if err := ctx.Err(); err != nil {
			return batch, err
		}
		after = ids[len(ids)-1]
		if int32(len(ids)) < t.cfg.EvaluationPage {
			break
		}
	}

	slices.SortFunc(batch.Results, func(a, b TierOutcome) int { return compareIDs(a.AccountID, b.AccountID) })
	slices.SortFunc(batch.Failures, func(a, b EvaluationFailure) int { return compareIDs(a.AccountID, b.AccountID) })

	slog.Info("tier re-evaluation finished",
		"evaluated", len(batch.Results),
		"changed", batch.Changed(),
		"failed", len(batch.Failures))
	return batch, nil
}

// applyTier decides the tier for snap and, when it changed, stores it and queues
// a tier_changed event in the same transaction.
func applyTier(
	ctx context.Context,
	tx shared.Tx,
	catalog *tier.Catalog,
	account *loyalty.Account,
	snap loyalty.Snapshot,
	allowDemotion bool,
	now time.Time,
) (TierOutcome, error) {
	d := catalog.Decide(account.TierKey(), snap.LifetimeEarned, snap.LifetimeSpend, allowDemotion)
	out := TierOutcome{
		AccountID:    account.ID(),
		Tier:         d.Tier,
		PreviousTier: d.Previous,
		Changed:      d.Changed,
	}
	if !d.Changed {
		return out, nil
	}

	if err := tx.Accounts().UpdateTier(ctx, account.ID(), d.Previous, d.Tier.Key, now); err != nil {
		return TierOutcome{}, repoErr(err, errs.ErrUnknownAccount)
	}
	account.ChangeTier(d.Tier.Key, now)

	payload := map[string]any{
		"account_id":     account.ID(),
		"customer_id":    account.CustomerID(),
		"previous_tier":  d.Previous,
		"tier":           d.Tier.Key,
		"lifetime_earn":  snap.LifetimeEarned,
		"lifetime_spend": snap.LifetimeSpend.String(),
	}
	if err := enqueue(ctx, tx, shared.JobKindTierChanged, shared.TopicLoyaltyTier, payload, now); err != nil {
		return TierOutcome{}, err
	}
	return out, nil
}

func compareIDs(a, b uuid.UUID) int {
	return bytes.Compare(a[:], b[:])
}
