package queries

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BalanceView is served from the balance snapshot.
type BalanceView struct {
	AccountID        uuid.UUID
	CustomerID       uuid.UUID
	ProgramID        string
	CurrentPoints    int64
	LifetimeEarned   int64
	LifetimeRedeemed int64
	LifetimeSpend    decimal.Decimal
	Tier             string
	TierName         string
	IsActive         bool
	LastSeq          int64
	UpdatedAt        time.Time
}

type LedgerEntryView struct {
	ID             uuid.UUID
	Seq            int64
	Kind           string
	Delta          int64
	SourceRef      string
	RunningBalance int64
	CreatedAt      time.Time
}

type LedgerPage struct {
	Entries    []LedgerEntryView
	NextCursor *string
}

type ReconcileView struct {
	AccountID  uuid.UUID
	Consistent bool
	Snapshot   ProjectionView
	Ledger     ProjectionView
	Drift      []string
	// LedgerError is set when the ledger itself fails verification.
	LedgerError *string
}

type ProjectionView struct {
	CurrentPoints    int64
	LifetimeEarned   int64
	LifetimeRedeemed int64
	LastSeq          int64
}

type TierView struct {
	Key                  string
	DisplayName          string
	MinPoints            int64
	MaxPoints            *int64
	MinSpend             decimal.Decimal
	EarningMultiplier    decimal.Decimal
	RedemptionMultiplier decimal.Decimal
	DiscountPercent      decimal.Decimal
	FreeDelivery         bool
	PrioritySupport      bool
	BirthdayBonus        bool
	ExclusiveRewards     bool
	SortOrder            int32
}

type RewardView struct {
	ID              uuid.UUID
	Name            string
	PointsCost      int64
	MonetaryValue   decimal.Decimal
	Type            string
	DiscountPercent *decimal.Decimal
	DiscountAmount  *decimal.Decimal
	ProductID       *uuid.UUID
	Stock           *int64
	MinTier         *string
	Featured        bool
}

type RedemptionView struct {
	ID            uuid.UUID
	AccountID     uuid.UUID
	RewardID      uuid.UUID
	PointsSpent   int64
	Code          string
	Status        string
	LedgerEntryID uuid.UUID
	IssuedAt      time.Time
	UpdatedAt     time.Time
}
