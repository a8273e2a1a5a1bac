package repository

import (
	"context"

	"pos-loyalty/internal/domain/loyalty"
	"pos-loyalty/internal/infra"
	"pos-loyalty/internal/infra/repository/converter"
	sqlc "pos-loyalty/internal/infra/sqlc/generated"
	"pos-loyalty/internal/pkg/pgconv"

	"github.com/google/uuid"
)

const (
	constraintLedgerSeq        = "ledger_entries_account_seq_uq"
	constraintLedgerEarnSource = "ledger_entries_earn_source_uq"
)

type LedgerQueries interface {
	InsertLedgerEntry(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertLedgerEntryParams) error
	FindLedgerEntryBySource(ctx context.Context, db sqlc.DBTX, arg sqlc.FindLedgerEntryBySourceParams) (sqlc.LedgerEntries, error)
	ListLedgerEntries(ctx context.Context, db sqlc.DBTX, arg sqlc.ListLedgerEntriesParams) ([]sqlc.LedgerEntries, error)
	ListAllLedgerEntries(ctx context.Context, db sqlc.DBTX, accountID uuid.UUID) ([]sqlc.LedgerEntries, error)
}

type LedgerRepository struct {
	queries LedgerQueries
	db      sqlc.DBTX
}

func NewLedgerRepository(queries LedgerQueries, db sqlc.DBTX) *LedgerRepository {
	return &LedgerRepository{
		queries: queries,
		db:      db,
	}
}

// Insert maps both the seq and the earn-source unique indexes to KindConflict:
// either means another writer got there first and the caller should re-read.
func (r *LedgerRepository) Insert(ctx context.Context, e loyalty.Entry) error {
	err := r.queries.InsertLedgerEntry(ctx, r.db, converter.EntryToInsertParams(e))
	if err != nil {
		if constraint, ok := pgconv.IsUniqueViolation(err); ok {
			switch constraint {
			case constraintLedgerSeq, constraintLedgerEarnSource:
				return infra.WrapRepoErr("ledger entry raced", err, infra.KindConflict)
			default:
				return infra.WrapRepoErr("duplicate ledger entry", err, infra.KindDuplicateKey)
			}
		}
		return infra.WrapRepoErr("failed to insert ledger entry", err)
	}
	return nil
}

func (r *LedgerRepository) FindBySource(ctx context.Context, accountID uuid.UUID, kind loyalty.Kind, sourceRef string) (loyalty.Entry, error) {
	row, err := r.queries.FindLedgerEntryBySource(ctx, r.db, sqlc.FindLedgerEntryBySourceParams{
		AccountID: accountID,
		Kind:      kind.String(),
		SourceRef: sourceRef,
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return loyalty.Entry{}, infra.WrapRepoErr("ledger entry not found", err, infra.KindNotFound)
		}
		return loyalty.Entry{}, infra.WrapRepoErr("failed to find ledger entry", err)
	}

	entry, err := converter.EntryFromRow(row)
	if err != nil {
		return loyalty.Entry{}, infra.WrapRepoErr("failed to decode ledger entry", err)
	}
	return entry, nil
}

func (r *LedgerRepository) List(ctx context.Context, accountID uuid.UUID, afterSeq int64, limit int32) ([]loyalty.Entry, error) {
	rows, err := r.queries.ListLedgerEntries(ctx, r.db, sqlc.ListLedgerEntriesParams{
		AccountID: accountID,
		Seq:       afterSeq,
		Limit:     limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list ledger entries", err)
	}

	entries, err := converter.EntriesFromRows(rows)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode ledger entries", err)
	}
	return entries, nil
}

func (r *LedgerRepository) ListAll(ctx context.Context, accountID uuid.UUID) ([]loyalty.Entry, error) {
	rows, err := r.queries.ListAllLedgerEntries(ctx, r.db, accountID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list ledger entries", err)
	}

	entries, err := converter.EntriesFromRows(rows)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode ledger entries", err)
	}
	return entries, nil
}
