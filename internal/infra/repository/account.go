package repository

import (
	"context"
	"time"

	"pos-loyalty/internal/domain/loyalty"
	"pos-loyalty/internal/infra"
	"pos-loyalty/internal/infra/repository/converter"
	sqlc "pos-loyalty/internal/infra/sqlc/generated"
	"pos-loyalty/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type AccountQueries interface {
	CreateLoyaltyAccount(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateLoyaltyAccountParams) error
	FindLoyaltyAccountByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.LoyaltyAccounts, error)
	FindActiveLoyaltyAccountByCustomer(ctx context.Context, db sqlc.DBTX, arg sqlc.FindActiveLoyaltyAccountByCustomerParams) (sqlc.LoyaltyAccounts, error)
	UpdateLoyaltyAccountTier(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateLoyaltyAccountTierParams) (int64, error)
	DeactivateLoyaltyAccount(ctx context.Context, db sqlc.DBTX, arg sqlc.DeactivateLoyaltyAccountParams) (int64, error)
	ListActiveLoyaltyAccountIDs(ctx context.Context, db sqlc.DBTX, arg sqlc.ListActiveLoyaltyAccountIDsParams) ([]uuid.UUID, error)
}

type AccountRepository struct {
	queries AccountQueries
	db      sqlc.DBTX
}

func NewAccountRepository(queries AccountQueries, db sqlc.DBTX) *AccountRepository {
	return &AccountRepository{
		queries: queries,
		db:      db,
	}
}

func (r *AccountRepository) Create(ctx context.Context, a *loyalty.Account) error {
	err := r.queries.CreateLoyaltyAccount(ctx, r.db, converter.AccountToCreateParams(a))
	if err != nil {
		if _, ok := pgconv.IsUniqueViolation(err); ok {
			return infra.WrapRepoErr("customer already enrolled in program", err, infra.KindDuplicateKey)
		}
		if pgconv.IsForeignKeyViolation(err) {
			return infra.WrapRepoErr("unknown tier for account", err, infra.KindForeignKeyViolated)
		}
		return infra.WrapRepoErr("failed to create loyalty account", err)
	}
	return nil
}

func (r *AccountRepository) FindByID(ctx context.Context, id uuid.UUID) (*loyalty.Account, error) {
	row, err := r.queries.FindLoyaltyAccountByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("loyalty account not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find loyalty account", err)
	}
	return converter.AccountFromRow(row), nil
}

func (r *AccountRepository) FindActiveByCustomer(ctx context.Context, customerID uuid.UUID, programID string) (*loyalty.Account, error) {
	row, err := r.queries.FindActiveLoyaltyAccountByCustomer(ctx, r.db, sqlc.FindActiveLoyaltyAccountByCustomerParams{
		CustomerID: customerID,
		ProgramID:  programID,
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("no active account for customer", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find account by customer", err)
	}
	return converter.AccountFromRow(row), nil
}

func (r *AccountRepository) UpdateTier(ctx context.Context, id uuid.UUID, from, to string, at time.Time) error {
	n, err := r.queries.UpdateLoyaltyAccountTier(ctx, r.db, sqlc.UpdateLoyaltyAccountTierParams{
		ToTier:    to,
		UpdatedAt: pgconv.TimeToPgtype(at),
		ID:        id,
		FromTier:  from,
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update account tier", err)
	}
	if n == 0 {
		return infra.NewConflict("account tier changed concurrently")
	}
	return nil
}

func (r *AccountRepository) Deactivate(ctx context.Context, id uuid.UUID, at time.Time) error {
	n, err := r.queries.DeactivateLoyaltyAccount(ctx, r.db, sqlc.DeactivateLoyaltyAccountParams{
		ID:        id,
		UpdatedAt: pgconv.TimeToPgtype(at),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to deactivate account", err)
	}
	if n == 0 {
		return infra.NewNotFound("active loyalty account not found")
	}
	return nil
}

func (r *AccountRepository) ListActiveIDs(ctx context.Context, after uuid.UUID, limit int32) ([]uuid.UUID, error) {
	ids, err := r.queries.ListActiveLoyaltyAccountIDs(ctx, r.db, sqlc.ListActiveLoyaltyAccountIDsParams{
		ID:    after,
		Limit: limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list active accounts", err)
	}
	return ids, nil
}
