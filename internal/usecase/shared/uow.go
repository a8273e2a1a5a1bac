package shared

import (
	"context"
	"time"

	"pos-loyalty/internal/domain/loyalty"
	"pos-loyalty/internal/domain/reward"
	"pos-loyalty/internal/domain/tier"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations. The whole fn is retried on
	// serialization failures and snapshot version conflicts, so fn must not have
	// side effects outside tx.
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

// Tx exposes repositories bound to one transaction.
type Tx interface {
	Accounts() AccountRepository
	Balances() BalanceRepository
	Ledger() LedgerRepository
	Tiers() TierRepository
	Rewards() RewardRepository
	Redemptions() RedemptionRepository
	Notifications() NotificationRepository
}

type AccountRepository interface {
	Create(ctx context.Context, a *loyalty.Account) error
	FindByID(ctx context.Context, id uuid.UUID) (*loyalty.Account, error)
	FindActiveByCustomer(ctx context.Context, customerID uuid.UUID, programID string) (*loyalty.Account, error)
	// UpdateTier is conditional on the stored tier still being from; a mismatch is a conflict.
	UpdateTier(ctx context.Context, id uuid.UUID, from, to string, at time.Time) error
	Deactivate(ctx context.Context, id uuid.UUID, at time.Time) error
	// ListActiveIDs pages by id; pass uuid.Nil to start.
	ListActiveIDs(ctx context.Context, after uuid.UUID, limit int32) ([]uuid.UUID, error)
}

type BalanceRepository interface {
	Create(ctx context.Context, s loyalty.Snapshot) error
	Get(ctx context.Context, accountID uuid.UUID) (loyalty.Snapshot, error)
	// CompareAndSwap writes next only if the stored version still equals
	// expectedVersion; otherwise it fails with a conflict.
	CompareAndSwap(ctx context.Context, next loyalty.Snapshot, expectedVersion int64) error
}

type LedgerRepository interface {
	Insert(ctx context.Context, e loyalty.Entry) error
	FindBySource(ctx context.Context, accountID uuid.UUID, kind loyalty.Kind, sourceRef string) (loyalty.Entry, error)
	List(ctx context.Context, accountID uuid.UUID, afterSeq int64, limit int32) ([]loyalty.Entry, error)
	ListAll(ctx context.Context, accountID uuid.UUID) ([]loyalty.Entry, error)
}

type TierRepository interface {
	List(ctx context.Context) ([]tier.Tier, error)
}

type RewardRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (reward.Reward, error)
	ListActive(ctx context.Context) ([]reward.Reward, error)
	// DecrementStock is conditional on stock > 0 and reports whether a unit was taken.
	DecrementStock(ctx context.Context, id uuid.UUID) (bool, error)
	IncrementStock(ctx context.Context, id uuid.UUID) error
}

type RedemptionRepository interface {
	Insert(ctx context.Context, r *reward.Redemption) error
	FindByID(ctx context.Context, id uuid.UUID) (*reward.Redemption, error)
	FindByCode(ctx context.Context, code reward.Code) (*reward.Redemption, error)
	FindByIdempotencyKey(ctx context.Context, accountID, key uuid.UUID) (*reward.Redemption, error)
	CodeExists(ctx context.Context, code reward.Code) (bool, error)
	// UpdateStatus moves from -> to and reports false when the row was not in from.
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to reward.Status, at time.Time) (bool, error)
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, kind, topic string, payload []byte, runAt time.Time) error
}
