// Package memstore is an in-process store with the same optimistic commit
// semantics as the Postgres schema: a transaction reads a committed state,
// buffers its writes and is validated against the latest state at commit.
package memstore

import (
	"maps"
	"slices"
	"sync"
	"time"

	"pos-loyalty/internal/domain/loyalty"
	"pos-loyalty/internal/domain/reward"
	"pos-loyalty/internal/domain/tier"

	"github.com/google/uuid"
)

// Job is a queued outbox row.
type Job struct {
	ID      uuid.UUID
	Kind    string
	Topic   string
	Payload []byte
	RunAt   time.Time
	Status  string
}

type accountRow struct {
	id         uuid.UUID
	customerID uuid.UUID
	programID  string
	tierKey    string
	active     bool
	createdAt  time.Time
	updatedAt  time.Time
}

func (r accountRow) toDomain() *loyalty.Account {
	return loyalty.ReconstructAccount(r.id, r.customerID, r.programID, r.tierKey, r.active, r.createdAt, r.updatedAt)
}

type redemptionRow struct {
	id             uuid.UUID
	accountID      uuid.UUID
	rewardID       uuid.UUID
	pointsSpent    int64
	code           reward.Code
	status         reward.Status
	idempotencyKey uuid.UUID
	ledgerEntryID  uuid.UUID
	issuedAt       time.Time
	updatedAt      time.Time
}

func redemptionRowFrom(r *reward.Redemption) redemptionRow {
	return redemptionRow{
		id:             r.ID(),
		accountID:      r.AccountID(),
		rewardID:       r.RewardID(),
		pointsSpent:    r.PointsSpent(),
		code:           r.Code(),
		status:         r.Status(),
		idempotencyKey: r.IdempotencyKey(),
		ledgerEntryID:  r.LedgerEntryID(),
		issuedAt:       r.IssuedAt(),
		updatedAt:      r.UpdatedAt(),
	}
}

func (r redemptionRow) toDomain() *reward.Redemption {
	return reward.ReconstructRedemption(
		r.id, r.accountID, r.rewardID, r.pointsSpent, r.code, r.status,
		r.idempotencyKey, r.ledgerEntryID, r.issuedAt, r.updatedAt)
}

// state is immutable once published; commits build a new one.
type state struct {
	tiers       []tier.Tier
	accounts    map[uuid.UUID]accountRow
	balances    map[uuid.UUID]loyalty.Snapshot
	ledger      map[uuid.UUID][]loyalty.Entry
	rewards     map[uuid.UUID]reward.Reward
	redemptions map[uuid.UUID]redemptionRow
	jobs        []Job
}

type Store struct {
	mu  sync.Mutex
	cur *state
}

type Option func(*state)

func WithTiers(tiers []tier.Tier) Option {
	return func(s *state) { s.tiers = slices.Clone(tiers) }
}

func WithRewards(rewards []reward.Reward) Option {
	return func(s *state) {
		for _, r := range rewards {
			s.rewards[r.ID] = cloneReward(r)
		}
	}
}

func New(opts ...Option) *Store {
	s := &state{
		accounts:    map[uuid.UUID]accountRow{},
		balances:    map[uuid.UUID]loyalty.Snapshot{},
		ledger:      map[uuid.UUID][]loyalty.Entry{},
		rewards:     map[uuid.UUID]reward.Reward{},
		redemptions: map[uuid.UUID]redemptionRow{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return &Store{cur: s}
}

func (s *Store) snapshot() *state {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cur
}

// SetTiers replaces the tier catalog, the way an operator edits the tiers table.
func (s *Store) SetTiers(tiers []tier.Tier) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := *s.cur
	next.tiers = slices.Clone(tiers)
	s.cur = &next
}

// Jobs returns the outbox in insertion order.
func (s *Store) Jobs() []Job {
	return slices.Clone(s.snapshot().jobs)
}

// Begin opens a transaction on the latest committed state.
func (s *Store) Begin(readOnly bool) *Tx {
	return newTx(s, s.snapshot(), readOnly)
}

func (s *Store) commit(t *Tx) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := t.validate(s.cur); err != nil {
		return err
	}
	s.cur = t.apply(s.cur)
	return nil
}

func (st *state) clone() *state {
	next := *st
	next.accounts = maps.Clone(st.accounts)
	next.balances = maps.Clone(st.balances)
	next.ledger = maps.Clone(st.ledger)
	next.rewards = maps.Clone(st.rewards)
	next.redemptions = maps.Clone(st.redemptions)
	return &next
}

func cloneReward(r reward.Reward) reward.Reward {
	if r.Stock != nil {
		stock := *r.Stock
		r.Stock = &stock
	}
	if r.MinTier != nil {
		minTier := *r.MinTier
		r.MinTier = &minTier
	}
	return r
}
