package uow

import (
	"context"

	"pos-loyalty/internal/infra/memstore"
	"pos-loyalty/internal/usecase/shared"
)

// MemoryUoW runs transactions against a memstore.Store with the same retry
// policy as Postgres; commit-time conflicts replay fn.
type MemoryUoW struct {
	store  *memstore.Store
	policy RetryPolicy
}

func NewMemoryUoW(store *memstore.Store, policy RetryPolicy) shared.UnitOfWork {
	return &MemoryUoW{
		store:  store,
		policy: policy,
	}
}

func (u *MemoryUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.policy.run(ctx, func(ctx context.Context) error {
		tx := u.store.Begin(false)
		if err := fn(ctx, tx); err != nil {
			return err
		}
		// a cancelled caller must not see its writes published
		if err := ctx.Err(); err != nil {
			return err
		}
		return tx.Commit()
	})
}

func (u *MemoryUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return fn(ctx, u.store.Begin(true))
}
