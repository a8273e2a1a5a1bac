package commands

import (
	"context"
	"encoding/json"
	"time"

	"pos-loyalty/internal/domain/loyalty"
	"pos-loyalty/internal/domain/tier"
	"pos-loyalty/internal/infra"
	"pos-loyalty/internal/pkg/errs"
	"pos-loyalty/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// repoErr maps a repository failure to a sentinel while keeping the original
// chain, so the unit of work still sees conflicts and retries them.
func repoErr(err error, notFound error) error {
	switch {
	case err == nil:
		return nil
	case notFound != nil && infra.IsKind(err, infra.KindNotFound):
		return errs.Mark(err, notFound)
	case infra.IsKind(err, infra.KindConflict):
		return errs.Mark(err, errs.ErrConcurrentConflict)
	default:
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
}

func loadActiveAccount(ctx context.Context, tx shared.Tx, accountID uuid.UUID) (*loyalty.Account, error) {
	account, err := tx.Accounts().FindByID(ctx, accountID)
	if err != nil {
		return nil, repoErr(err, errs.ErrUnknownAccount)
	}
	if !account.IsActive() {
		return nil, errs.Wrapf(errs.ErrUnknownAccount, "account %s is inactive", accountID)
	}
	return account, nil
}

func loadCatalog(ctx context.Context, tx shared.Tx) (*tier.Catalog, error) {
	tiers, err := tx.Tiers().List(ctx)
	if err != nil {
		return nil, repoErr(err, nil)
	}
	return tier.NewCatalog(tiers)
}

// post writes one ledger entry on top of snap: the snapshot CAS goes first so a
// concurrent writer on the same account loses here and the transaction retries.
func post(
	ctx context.Context,
	tx shared.Tx,
	snap loyalty.Snapshot,
	kind loyalty.Kind,
	delta int64,
	sourceRef string,
	spend decimal.Decimal,
	now time.Time,
) (loyalty.Entry, loyalty.Snapshot, error) {
	entry, next, err := snap.Post(kind, delta, sourceRef, now)
	if err != nil {
		return loyalty.Entry{}, loyalty.Snapshot{}, err
	}
	if !spend.IsZero() {
		next = next.AddSpend(spend)
	}

	if err := tx.Balances().CompareAndSwap(ctx, next, snap.Version); err != nil {
		return loyalty.Entry{}, loyalty.Snapshot{}, repoErr(err, errs.ErrUnknownAccount)
	}
	if err := tx.Ledger().Insert(ctx, entry); err != nil {
		return loyalty.Entry{}, loyalty.Snapshot{}, repoErr(err, nil)
	}
	return entry, next, nil
}

func enqueue(ctx context.Context, tx shared.Tx, kind, topic string, payload any, runAt time.Time) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return errs.Wrap(err, "marshal notification payload")
	}
	if err := tx.Notifications().CreateJob(ctx, kind, topic, body, runAt); err != nil {
		return repoErr(err, nil)
	}
	return nil
}
