package loyalty

import (
	"fmt"

	"pos-loyalty/internal/pkg/errs"
)

// Projection is what a full ledger replay yields for one account.
type Projection struct {
	CurrentPoints    int64
	LifetimeEarned   int64
	LifetimeRedeemed int64
	LastSeq          int64
	Entries          int
}

// Replay folds entries in seq order and verifies each recorded running balance.
// Entries must belong to a single account and start at seq 1.
func Replay(entries []Entry) (Projection, error) {
	var p Projection
	for i, e := range entries {
		if e.Seq != int64(i+1) {
			return p, errs.Wrapf(errs.ErrLedgerCorrupted, "seq gap at position %d: got %d", i, e.Seq)
		}
		if i > 0 && e.AccountID != entries[0].AccountID {
			return p, errs.Wrapf(errs.ErrLedgerCorrupted, "entry %s belongs to another account", e.ID)
		}
		if err := e.Kind.ValidateDelta(e.Delta); err != nil {
			return p, errs.Wrapf(errs.ErrLedgerCorrupted, "entry %d: %s delta %d", e.Seq, e.Kind, e.Delta)
		}

		p.CurrentPoints += e.Delta
		if p.CurrentPoints < 0 {
			return p, errs.Wrapf(errs.ErrLedgerCorrupted, "negative balance at seq %d", e.Seq)
		}
		if p.CurrentPoints != e.RunningBalance {
			return p, errs.Wrapf(errs.ErrLedgerCorrupted,
				"running balance at seq %d is %d, replay gives %d", e.Seq, e.RunningBalance, p.CurrentPoints)
		}

		switch e.Kind {
		case KindEarn:
			p.LifetimeEarned += e.Delta
		case KindRedeem:
			p.LifetimeRedeemed -= e.Delta
		}
		p.LastSeq = e.Seq
		p.Entries++
	}
	return p, nil
}

// Drift lists the snapshot fields that disagree with a replay. Empty means the
// cache is consistent with the ledger.
func (s Snapshot) Drift(p Projection) []string {
	var out []string
	if s.CurrentPoints != p.CurrentPoints {
		out = append(out, fmt.Sprintf("currentPoints: snapshot %d, ledger %d", s.CurrentPoints, p.CurrentPoints))
	}
	if s.LifetimeEarned != p.LifetimeEarned {
		out = append(out, fmt.Sprintf("lifetimeEarned: snapshot %d, ledger %d", s.LifetimeEarned, p.LifetimeEarned))
	}
	if s.LifetimeRedeemed != p.LifetimeRedeemed {
		out = append(out, fmt.Sprintf("lifetimeRedeemed: snapshot %d, ledger %d", s.LifetimeRedeemed, p.LifetimeRedeemed))
	}
	if s.LastSeq != p.LastSeq {
		out = append(out, fmt.Sprintf("lastSeq: snapshot %d, ledger %d", s.LastSeq, p.LastSeq))
	}
	return out
}
