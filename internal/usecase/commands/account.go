package commands

import (
	"context"

	"pos-loyalty/internal/domain/loyalty"
	"pos-loyalty/internal/infra"
	"pos-loyalty/internal/pkg/clock"
	"pos-loyalty/internal/pkg/errs"
	"pos-loyalty/internal/usecase/shared"

	"github.com/google/uuid"
)

type EnrollInput struct {
	CustomerID uuid.UUID
	ProgramID  string
}

type AccountCommands interface {
	// Enroll opens an account at the lowest tier with an empty balance.
	Enroll(ctx context.Context, in EnrollInput) (*loyalty.Account, error)
	Deactivate(ctx context.Context, accountID uuid.UUID) error
}

type accountUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewAccountUseCase(uow shared.UnitOfWork, clock clock.Clock) AccountCommands {
	return &accountUseCaseImpl{uow: uow, clock: clock}
}

func (a *accountUseCaseImpl) Enroll(ctx context.Context, in EnrollInput) (*loyalty.Account, error) {
	var account *loyalty.Account
	err := a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		_, err := tx.Accounts().FindActiveByCustomer(ctx, in.CustomerID, in.ProgramID)
		switch {
		case err == nil:
			return errs.ErrAccountAlreadyEnrolled
		case !infra.IsKind(err, infra.KindNotFound):
			return repoErr(err, nil)
		}

		catalog, err := loadCatalog(ctx, tx)
		if err != nil {
			return err
		}

		now := a.clock.Now()
		account, err = loyalty.NewAccount(in.CustomerID, in.ProgramID, catalog.Lowest().Key, now)
		if err != nil {
			return err
		}
		if err := tx.Accounts().Create(ctx, account); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return errs.Mark(err, errs.ErrAccountAlreadyEnrolled)
			}
			return repoErr(err, nil)
		}
		if err := tx.Balances().Create(ctx, loyalty.NewSnapshot(account.ID(), now)); err != nil {
			return repoErr(err, nil)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return account, nil
}

func (a *accountUseCaseImpl) Deactivate(ctx context.Context, accountID uuid.UUID) error {
	return a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		account, err := tx.Accounts().FindByID(ctx, accountID)
		if err != nil {
			return repoErr(err, errs.ErrUnknownAccount)
		}
		now := a.clock.Now()
		if err := account.Deactivate(now); err != nil {
			return err
		}
		if err := tx.Accounts().Deactivate(ctx, accountID, now); err != nil {
			return repoErr(err, errs.ErrUnknownAccount)
		}
		return nil
	})
}
