package converter

import (
	"pos-loyalty/internal/domain/loyalty"
	sqlc "pos-loyalty/internal/infra/sqlc/generated"
	"pos-loyalty/internal/pkg/errs"
	"pos-loyalty/internal/pkg/pgconv"
)

func AccountToCreateParams(a *loyalty.Account) sqlc.CreateLoyaltyAccountParams {
	return sqlc.CreateLoyaltyAccountParams{
		ID:         a.ID(),
		CustomerID: a.CustomerID(),
		ProgramID:  a.ProgramID(),
		TierKey:    a.TierKey(),
		IsActive:   a.IsActive(),
		CreatedAt:  pgconv.TimeToPgtype(a.CreatedAt()),
		UpdatedAt:  pgconv.TimeToPgtype(a.UpdatedAt()),
	}
}

func AccountFromRow(row sqlc.LoyaltyAccounts) *loyalty.Account {
	return loyalty.ReconstructAccount(
		row.ID,
		row.CustomerID,
		row.ProgramID,
		row.TierKey,
		row.IsActive,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	)
}

func SnapshotToCreateParams(s loyalty.Snapshot) sqlc.CreateLoyaltyBalanceParams {
	return sqlc.CreateLoyaltyBalanceParams{
		AccountID:        s.AccountID,
		CurrentPoints:    s.CurrentPoints,
		LifetimeEarned:   s.LifetimeEarned,
		LifetimeRedeemed: s.LifetimeRedeemed,
		LifetimeSpend:    pgconv.DecimalToNumeric(s.LifetimeSpend),
		LastSeq:          s.LastSeq,
		Version:          s.Version,
		UpdatedAt:        pgconv.TimeToPgtype(s.UpdatedAt),
	}
}

func SnapshotToCASParams(s loyalty.Snapshot, expectedVersion int64) sqlc.CompareAndSwapLoyaltyBalanceParams {
	return sqlc.CompareAndSwapLoyaltyBalanceParams{
		CurrentPoints:    s.CurrentPoints,
		LifetimeEarned:   s.LifetimeEarned,
		LifetimeRedeemed: s.LifetimeRedeemed,
		LifetimeSpend:    pgconv.DecimalToNumeric(s.LifetimeSpend),
		LastSeq:          s.LastSeq,
		Version:          s.Version,
		UpdatedAt:        pgconv.TimeToPgtype(s.UpdatedAt),
		AccountID:        s.AccountID,
		ExpectedVersion:  expectedVersion,
	}
}

func SnapshotFromRow(row sqlc.LoyaltyBalances) (loyalty.Snapshot, error) {
	spend, err := pgconv.DecimalFromNumeric(row.LifetimeSpend)
	if err != nil {
		return loyalty.Snapshot{}, errs.Wrap(err, "lifetime_spend")
	}
	return loyalty.Snapshot{
		AccountID:        row.AccountID,
		CurrentPoints:    row.CurrentPoints,
		LifetimeEarned:   row.LifetimeEarned,
		LifetimeRedeemed: row.LifetimeRedeemed,
		LifetimeSpend:    spend,
		LastSeq:          row.LastSeq,
		Version:          row.Version,
		UpdatedAt:        pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}

func EntryToInsertParams(e loyalty.Entry) sqlc.InsertLedgerEntryParams {
	return sqlc.InsertLedgerEntryParams{
		ID:             e.ID,
		AccountID:      e.AccountID,
		Seq:            e.Seq,
		Kind:           e.Kind.String(),
		Delta:          e.Delta,
		SourceRef:      e.SourceRef,
		RunningBalance: e.RunningBalance,
		CreatedAt:      pgconv.TimeToPgtype(e.CreatedAt),
	}
}

func EntryFromRow(row sqlc.LedgerEntries) (loyalty.Entry, error) {
	kind, err := loyalty.ParseKind(row.Kind)
	if err != nil {
		return loyalty.Entry{}, err
	}
	return loyalty.Entry{
		ID:             row.ID,
		AccountID:      row.AccountID,
		Seq:            row.Seq,
		Kind:           kind,
		Delta:          row.Delta,
		SourceRef:      row.SourceRef,
		RunningBalance: row.RunningBalance,
		CreatedAt:      pgconv.TimeFromPgtype(row.CreatedAt),
	}, nil
}

func EntriesFromRows(rows []sqlc.LedgerEntries) ([]loyalty.Entry, error) {
	entries := make([]loyalty.Entry, 0, len(rows))
	for _, row := range rows {
		e, err := EntryFromRow(row)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, nil
}
