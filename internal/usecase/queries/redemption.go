package queries

import (
	"context"

	"pos-loyalty/internal/domain/reward"
	"pos-loyalty/internal/pkg/errs"
	"pos-loyalty/internal/usecase/shared"

	"github.com/google/uuid"
)

type RedemptionQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*RedemptionView, error)
}

type redemptionQueriesImpl struct {
	uow shared.UnitOfWork
}

func NewRedemptionQueries(uow shared.UnitOfWork) RedemptionQueries {
	return &redemptionQueriesImpl{uow: uow}
}

func (q *redemptionQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*RedemptionView, error) {
	var view RedemptionView
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		r, err := tx.Redemptions().FindByID(ctx, id)
		if err != nil {
			return readErr(err, errs.ErrRedemptionNotFound)
		}
		view = NewRedemptionView(r)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &view, nil
}

func NewRedemptionView(r *reward.Redemption) RedemptionView {
	return RedemptionView{
		ID:            r.ID(),
		AccountID:     r.AccountID(),
		RewardID:      r.RewardID(),
		PointsSpent:   r.PointsSpent(),
		Code:          r.Code().String(),
		Status:        r.Status().String(),
		LedgerEntryID: r.LedgerEntryID(),
		IssuedAt:      r.IssuedAt(),
		UpdatedAt:     r.UpdatedAt(),
	}
}
