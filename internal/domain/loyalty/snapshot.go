package loyalty

import (
	"time"

	"pos-loyalty/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Snapshot is the cached projection of an account's ledger. Version is bumped on
// every write and guards the compare-and-swap in storage.
type Snapshot struct {
	AccountID        uuid.UUID
	CurrentPoints    int64
	LifetimeEarned   int64
	LifetimeRedeemed int64
	LifetimeSpend    decimal.Decimal
	LastSeq          int64
	Version          int64
	UpdatedAt        time.Time
}

func NewSnapshot(accountID uuid.UUID, now time.Time) Snapshot {
	return Snapshot{
		AccountID:     accountID,
		LifetimeSpend: decimal.Zero,
		Version:       1,
		UpdatedAt:     now,
	}
}

// Post computes the next entry and snapshot without touching storage. A debit that
// would take the balance below zero is refused and nothing is produced.
func (s Snapshot) Post(kind Kind, delta int64, sourceRef string, now time.Time) (Entry, Snapshot, error) {
	if err := kind.ValidateDelta(delta); err != nil {
		return Entry{}, Snapshot{}, err
	}

	balance := s.CurrentPoints + delta
	if balance < 0 {
		return Entry{}, Snapshot{}, errs.ErrInsufficientBalance
	}
	if balance > MaxPoints || (kind == KindEarn && s.LifetimeEarned+delta > MaxPoints) {
		return Entry{}, Snapshot{}, errs.Wrap(errs.ErrPointsOutOfRange, "balance would exceed the points ceiling")
	}

	next := s
	next.CurrentPoints = balance
	next.LastSeq = s.LastSeq + 1
	next.Version = s.Version + 1
	next.UpdatedAt = now
	switch kind {
	case KindEarn:
		next.LifetimeEarned += delta
	case KindRedeem:
		next.LifetimeRedeemed -= delta
	}

	entry := Entry{
		ID:             uuid.New(),
		AccountID:      s.AccountID,
		Seq:            next.LastSeq,
		Kind:           kind,
		Delta:          delta,
		SourceRef:      sourceRef,
		RunningBalance: balance,
		CreatedAt:      now,
	}
	return entry, next, nil
}

// AddSpend folds a finalized sale total into lifetime spend. Callers persist it
// together with the earn entry so the version bump is shared.
func (s Snapshot) AddSpend(amount decimal.Decimal) Snapshot {
	s.LifetimeSpend = s.LifetimeSpend.Add(amount)
	return s
}
