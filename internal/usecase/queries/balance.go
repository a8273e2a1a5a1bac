package queries

import (
	"context"

	"pos-loyalty/internal/domain/loyalty"
	"pos-loyalty/internal/infra"
	"pos-loyalty/internal/pkg/errs"
	"pos-loyalty/internal/usecase/shared"

	"github.com/google/uuid"
)

type BalanceQueries interface {
	GetBalance(ctx context.Context, accountID uuid.UUID) (*BalanceView, error)
	LedgerHistory(ctx context.Context, accountID uuid.UUID, cursor string, limit int) (*LedgerPage, error)
	// Reconcile replays the ledger and compares it with the cached snapshot.
	Reconcile(ctx context.Context, accountID uuid.UUID) (*ReconcileView, error)
}

type balanceQueriesImpl struct {
	uow shared.UnitOfWork
}

func NewBalanceQueries(uow shared.UnitOfWork) BalanceQueries {
	return &balanceQueriesImpl{uow: uow}
}

func (q *balanceQueriesImpl) GetBalance(ctx context.Context, accountID uuid.UUID) (*BalanceView, error) {
	var view *BalanceView
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		account, err := tx.Accounts().FindByID(ctx, accountID)
		if err != nil {
			return readErr(err, errs.ErrUnknownAccount)
		}
		snap, err := tx.Balances().Get(ctx, accountID)
		if err != nil {
			return readErr(err, errs.ErrUnknownAccount)
		}
		tiers, err := tx.Tiers().List(ctx)
		if err != nil {
			return readErr(err, nil)
		}

		tierName := account.TierKey()
		for _, t := range tiers {
			if t.Key == account.TierKey() {
				tierName = t.DisplayName
				break
			}
		}

		view = &BalanceView{
			AccountID:        account.ID(),
			CustomerID:       account.CustomerID(),
			ProgramID:        account.ProgramID(),
			CurrentPoints:    snap.CurrentPoints,
			LifetimeEarned:   snap.LifetimeEarned,
			LifetimeRedeemed: snap.LifetimeRedeemed,
			LifetimeSpend:    snap.LifetimeSpend,
			Tier:             account.TierKey(),
			TierName:         tierName,
			IsActive:         account.IsActive(),
			LastSeq:          snap.LastSeq,
			UpdatedAt:        snap.UpdatedAt,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

func (q *balanceQueriesImpl) LedgerHistory(ctx context.Context, accountID uuid.UUID, cursor string, limit int) (*LedgerPage, error) {
	after, err := DecodeSeqCursor(cursor)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidCursor)
	}
	limit = ValidateLimit(limit)

	page := &LedgerPage{Entries: []LedgerEntryView{}}
	err = q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Accounts().FindByID(ctx, accountID); err != nil {
			return readErr(err, errs.ErrUnknownAccount)
		}
		// one extra row tells whether another page exists
		entries, err := tx.Ledger().List(ctx, accountID, after, int32(limit+1))
		if err != nil {
			return readErr(err, nil)
		}

		hasMore := len(entries) > limit
		if hasMore {
			entries = entries[:limit]
		}
		for _, e := range entries {
			page.Entries = append(page.Entries, toLedgerEntryView(e))
		}
		if hasMore {
			next := EncodeSeqCursor(entries[len(entries)-1].Seq)
			page.NextCursor = &next
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return page, nil
}

func (q *balanceQueriesImpl) Reconcile(ctx context.Context, accountID uuid.UUID) (*ReconcileView, error) {
	var view *ReconcileView
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Balances().Get(ctx, accountID)
		if err != nil {
			return readErr(err, errs.ErrUnknownAccount)
		}
		entries, err := tx.Ledger().ListAll(ctx, accountID)
		if err != nil {
			return readErr(err, nil)
		}

		view = &ReconcileView{
			AccountID: accountID,
			Snapshot: ProjectionView{
				CurrentPoints:    snap.CurrentPoints,
				LifetimeEarned:   snap.LifetimeEarned,
				LifetimeRedeemed: snap.LifetimeRedeemed,
				LastSeq:          snap.LastSeq,
			},
			Drift: []string{},
		}

		p, err := loyalty.Replay(entries)
		if err != nil {
			msg := err.Error()
			view.LedgerError = &msg
			return nil
		}
		view.Ledger = ProjectionView{
			CurrentPoints:    p.CurrentPoints,
			LifetimeEarned:   p.LifetimeEarned,
			LifetimeRedeemed: p.LifetimeRedeemed,
			LastSeq:          p.LastSeq,
		}
		if drift := snap.Drift(p); len(drift) > 0 {
			view.Drift = drift
		}
		view.Consistent = len(view.Drift) == 0
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

func toLedgerEntryView(e loyalty.Entry) LedgerEntryView {
	return LedgerEntryView{
		ID:             e.ID,
		Seq:            e.Seq,
		Kind:           e.Kind.String(),
		Delta:          e.Delta,
		SourceRef:      e.SourceRef,
		RunningBalance: e.RunningBalance,
		CreatedAt:      e.CreatedAt,
	}
}

func readErr(err error, notFound error) error {
	if notFound != nil && infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(err, notFound)
	}
	return errs.Mark(err, errs.ErrDatabaseOperationFailed)
}
