package memstore

import (
	"bytes"
	"context"
	"slices"
	"time"

	"pos-loyalty/internal/domain/loyalty"
	"pos-loyalty/internal/domain/reward"
	"pos-loyalty/internal/domain/tier"
	"pos-loyalty/internal/infra"
	"pos-loyalty/internal/pkg/errs"
	"pos-loyalty/internal/usecase/shared"

	"github.com/google/uuid"
)

var errReadOnly = errs.New("write attempted in a read-only transaction")

// newBalance marks a balance guard for a row created by this transaction.
const newBalance int64 = -1

type accountGuard struct {
	tierKey string
	active  bool
}

// Tx buffers writes on top of the state it was opened on. Guards record what
// the transaction assumed about committed rows; commit fails with a conflict
// when the latest state no longer matches.
type Tx struct {
	store    *Store
	base     *state
	readOnly bool

	accounts        map[uuid.UUID]accountRow
	createdAccounts []uuid.UUID
	accountGuards   map[uuid.UUID]accountGuard

	balances      map[uuid.UUID]loyalty.Snapshot
	balanceGuards map[uuid.UUID]int64

	ledger map[uuid.UUID][]loyalty.Entry

	stock map[uuid.UUID]int64

	redemptions       map[uuid.UUID]redemptionRow
	createdRedemption []uuid.UUID
	redemptionGuards  map[uuid.UUID]reward.Status

	jobs []Job
}

func newTx(store *Store, base *state, readOnly bool) *Tx {
	return &Tx{
		store:            store,
		base:             base,
		readOnly:         readOnly,
		accounts:         map[uuid.UUID]accountRow{},
		accountGuards:    map[uuid.UUID]accountGuard{},
		balances:         map[uuid.UUID]loyalty.Snapshot{},
		balanceGuards:    map[uuid.UUID]int64{},
		ledger:           map[uuid.UUID][]loyalty.Entry{},
		stock:            map[uuid.UUID]int64{},
		redemptions:      map[uuid.UUID]redemptionRow{},
		redemptionGuards: map[uuid.UUID]reward.Status{},
	}
}

// Commit publishes the buffered writes. Read-only transactions have nothing to publish.
func (t *Tx) Commit() error {
	if t.readOnly {
		return nil
	}
	return t.store.commit(t)
}

func (t *Tx) Accounts() shared.AccountRepository           { return accountRepo{t} }
func (t *Tx) Balances() shared.BalanceRepository           { return balanceRepo{t} }
func (t *Tx) Ledger() shared.LedgerRepository              { return ledgerRepo{t} }
func (t *Tx) Tiers() shared.TierRepository                 { return tierRepo{t} }
func (t *Tx) Rewards() shared.RewardRepository             { return rewardRepo{t} }
func (t *Tx) Redemptions() shared.RedemptionRepository     { return redemptionRepo{t} }
func (t *Tx) Notifications() shared.NotificationRepository { return notificationRepo{t} }

func (t *Tx) writable() error {
	if t.readOnly {
		return infra.WrapRepoErr("read-only transaction", errReadOnly)
	}
	return nil
}

func (t *Tx) account(id uuid.UUID) (accountRow, bool) {
	if row, ok := t.accounts[id]; ok {
		return row, true
	}
	row, ok := t.base.accounts[id]
	return row, ok
}

func (t *Tx) allAccounts() map[uuid.UUID]accountRow {
	out := make(map[uuid.UUID]accountRow, len(t.base.accounts)+len(t.accounts))
	for id, row := range t.base.accounts {
		out[id] = row
	}
	for id, row := range t.accounts {
		out[id] = row
	}
	return out
}

func (t *Tx) balance(id uuid.UUID) (loyalty.Snapshot, bool) {
	if s, ok := t.balances[id]; ok {
		return s, true
	}
	s, ok := t.base.balances[id]
	return s, ok
}

func (t *Tx) entries(accountID uuid.UUID) []loyalty.Entry {
	committed := t.base.ledger[accountID]
	pending := t.ledger[accountID]
	if len(pending) == 0 {
		return committed
	}
	return append(slices.Clip(committed), pending...)
}

func (t *Tx) reward(id uuid.UUID) (reward.Reward, bool) {
	r, ok := t.base.rewards[id]
	if !ok {
		return reward.Reward{}, false
	}
	r = cloneReward(r)
	if r.Stock != nil {
		*r.Stock += t.stock[id]
	}
	return r, true
}

func (t *Tx) redemption(id uuid.UUID) (redemptionRow, bool) {
	if row, ok := t.redemptions[id]; ok {
		return row, true
	}
	row, ok := t.base.redemptions[id]
	return row, ok
}

func (t *Tx) findRedemption(match func(redemptionRow) bool) (redemptionRow, bool) {
	for _, row := range t.redemptions {
		if match(row) {
			return row, true
		}
	}
	for id, row := range t.base.redemptions {
		if _, shadowed := t.redemptions[id]; shadowed {
			continue
		}
		if match(row) {
			return row, true
		}
	}
	return redemptionRow{}, false
}

func (t *Tx) validate(latest *state) error {
	for _, id := range t.createdAccounts {
		created := t.accounts[id]
		if _, exists := latest.accounts[id]; exists {
			return infra.NewConflict("account id already committed")
		}
		for _, row := range latest.accounts {
			if row.active && created.active && row.customerID == created.customerID && row.programID == created.programID {
				return infra.NewConflict("customer enrolled concurrently")
			}
		}
	}
	for id, guard := range t.accountGuards {
		row, ok := latest.accounts[id]
		if !ok || row.tierKey != guard.tierKey || row.active != guard.active {
			return infra.NewConflict("account changed concurrently")
		}
	}

	for id, expected := range t.balanceGuards {
		s, ok := latest.balances[id]
		switch {
		case expected == newBalance && ok:
			return infra.NewConflict("balance snapshot created concurrently")
		case expected != newBalance && (!ok || s.Version != expected):
			return infra.NewConflict("balance snapshot version changed")
		}
	}

	for accountID, pending := range t.ledger {
		committed := latest.ledger[accountID]
		if len(committed) > 0 && committed[len(committed)-1].Seq >= pending[0].Seq {
			return infra.NewConflict("ledger sequence taken")
		}
		for _, e := range pending {
			if e.Kind == loyalty.KindEarn && hasEarnSource(committed, e.SourceRef) {
				return infra.NewConflict("sale already credited")
			}
		}
	}

	for id, delta := range t.stock {
		r, ok := latest.rewards[id]
		if !ok || r.Stock == nil {
			continue
		}
		if *r.Stock+delta < 0 {
			return infra.NewConflict("reward stock exhausted concurrently")
		}
	}

	for _, id := range t.createdRedemption {
		created := t.redemptions[id]
		for _, row := range latest.redemptions {
			if row.code == created.code {
				return infra.NewConflict("redemption code taken")
			}
			if row.accountID == created.accountID && row.idempotencyKey == created.idempotencyKey {
				return infra.NewConflict("idempotency key used concurrently")
			}
		}
	}
	for id, from := range t.redemptionGuards {
		row, ok := latest.redemptions[id]
		if !ok || row.status != from {
			return infra.NewConflict("redemption status changed concurrently")
		}
	}

	return nil
}

func (t *Tx) apply(latest *state) *state {
	next := latest.clone()

	for id, row := range t.accounts {
		next.accounts[id] = row
	}
	for id, s := range t.balances {
		next.balances[id] = s
	}
	for accountID, pending := range t.ledger {
		next.ledger[accountID] = append(slices.Clip(next.ledger[accountID]), pending...)
	}
	for id, delta := range t.stock {
		r, ok := next.rewards[id]
		if !ok || r.Stock == nil {
			continue
		}
		r = cloneReward(r)
		*r.Stock += delta
		next.rewards[id] = r
	}
	for id, row := range t.redemptions {
		next.redemptions[id] = row
	}
	if len(t.jobs) > 0 {
		next.jobs = append(slices.Clip(next.jobs), t.jobs...)
	}

	return next
}

func hasEarnSource(entries []loyalty.Entry, sourceRef string) bool {
	return slices.ContainsFunc(entries, func(e loyalty.Entry) bool {
		return e.Kind == loyalty.KindEarn && e.SourceRef == sourceRef
	})
}

type accountRepo struct{ t *Tx }

func (r accountRepo) Create(_ context.Context, a *loyalty.Account) error {
	if err := r.t.writable(); err != nil {
		return err
	}
	for _, row := range r.t.allAccounts() {
		if row.id == a.ID() {
			return infra.WrapRepoErr("account id exists", nil, infra.KindDuplicateKey)
		}
		if row.active && row.customerID == a.CustomerID() && row.programID == a.ProgramID() {
			return infra.WrapRepoErr("customer already enrolled in program", nil, infra.KindDuplicateKey)
		}
	}
	if _, ok := tierByKey(r.t.base.tiers, a.TierKey()); !ok {
		return infra.WrapRepoErr("unknown tier for account", nil, infra.KindForeignKeyViolated)
	}

	r.t.accounts[a.ID()] = accountRow{
		id:         a.ID(),
		customerID: a.CustomerID(),
		programID:  a.ProgramID(),
		tierKey:    a.TierKey(),
		active:     a.IsActive(),
		createdAt:  a.CreatedAt(),
		updatedAt:  a.UpdatedAt(),
	}
	r.t.createdAccounts = append(r.t.createdAccounts, a.ID())
	return nil
}

func (r accountRepo) FindByID(_ context.Context, id uuid.UUID) (*loyalty.Account, error) {
	row, ok := r.t.account(id)
	if !ok {
		return nil, infra.NewNotFound("loyalty account not found")
	}
	return row.toDomain(), nil
}

func (r accountRepo) FindActiveByCustomer(_ context.Context, customerID uuid.UUID, programID string) (*loyalty.Account, error) {
	for _, row := range r.t.allAccounts() {
		if row.active && row.customerID == customerID && row.programID == programID {
			return row.toDomain(), nil
		}
	}
	return nil, infra.NewNotFound("no active account for customer")
}

func (r accountRepo) guard(row accountRow) {
	if slices.Contains(r.t.createdAccounts, row.id) {
		return
	}
	if _, ok := r.t.accountGuards[row.id]; !ok {
		r.t.accountGuards[row.id] = accountGuard{tierKey: row.tierKey, active: row.active}
	}
}

func (r accountRepo) UpdateTier(_ context.Context, id uuid.UUID, from, to string, at time.Time) error {
	if err := r.t.writable(); err != nil {
		return err
	}
	row, ok := r.t.account(id)
	if !ok || row.tierKey != from {
		return infra.NewConflict("account tier changed concurrently")
	}
	r.guard(row)
	row.tierKey = to
	row.updatedAt = at
	r.t.accounts[id] = row
	return nil
}

func (r accountRepo) Deactivate(_ context.Context, id uuid.UUID, at time.Time) error {
	if err := r.t.writable(); err != nil {
		return err
	}
	row, ok := r.t.account(id)
	if !ok || !row.active {
		return infra.NewNotFound("active loyalty account not found")
	}
	r.guard(row)
	row.active = false
	row.updatedAt = at
	r.t.accounts[id] = row
	return nil
}

func (r accountRepo) ListActiveIDs(_ context.Context, after uuid.UUID, limit int32) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	for id, row := range r.t.allAccounts() {
		if row.active && bytes.Compare(id[:], after[:]) > 0 {
			ids = append(ids, id)
		}
	}
	slices.SortFunc(ids, func(a, b uuid.UUID) int { return bytes.Compare(a[:], b[:]) })
	if limit >= 0 && len(ids) > int(limit) {
		ids = ids[:limit]
	}
	return ids, nil
}

type balanceRepo struct{ t *Tx }

func (r balanceRepo) Create(_ context.Context, s loyalty.Snapshot) error {
	if err := r.t.writable(); err != nil {
		return err
	}
	if _, exists := r.t.balance(s.AccountID); exists {
		return infra.WrapRepoErr("balance snapshot already exists", nil, infra.KindDuplicateKey)
	}
	if _, ok := r.t.account(s.AccountID); !ok {
		return infra.WrapRepoErr("balance for unknown account", nil, infra.KindForeignKeyViolated)
	}
	r.t.balances[s.AccountID] = s
	r.t.balanceGuards[s.AccountID] = newBalance
	return nil
}

func (r balanceRepo) Get(_ context.Context, accountID uuid.UUID) (loyalty.Snapshot, error) {
	s, ok := r.t.balance(accountID)
	if !ok {
		return loyalty.Snapshot{}, infra.NewNotFound("balance snapshot not found")
	}
	return s, nil
}

func (r balanceRepo) CompareAndSwap(_ context.Context, next loyalty.Snapshot, expectedVersion int64) error {
	if err := r.t.writable(); err != nil {
		return err
	}
	current, ok := r.t.balance(next.AccountID)
	if !ok || current.Version != expectedVersion {
		return infra.NewConflict("balance snapshot version changed")
	}
	if _, guarded := r.t.balanceGuards[next.AccountID]; !guarded {
		r.t.balanceGuards[next.AccountID] = expectedVersion
	}
	r.t.balances[next.AccountID] = next
	return nil
}

type ledgerRepo struct{ t *Tx }

func (r ledgerRepo) Insert(_ context.Context, e loyalty.Entry) error {
	if err := r.t.writable(); err != nil {
		return err
	}
	existing := r.t.entries(e.AccountID)
	if slices.ContainsFunc(existing, func(x loyalty.Entry) bool { return x.Seq == e.Seq }) {
		return infra.NewConflict("ledger sequence taken")
	}
	if e.Kind == loyalty.KindEarn && hasEarnSource(existing, e.SourceRef) {
		return infra.NewConflict("sale already credited")
	}
	r.t.ledger[e.AccountID] = append(r.t.ledger[e.AccountID], e)
	return nil
}

func (r ledgerRepo) FindBySource(_ context.Context, accountID uuid.UUID, kind loyalty.Kind, sourceRef string) (loyalty.Entry, error) {
	for _, e := range r.t.entries(accountID) {
		if e.Kind == kind && e.SourceRef == sourceRef {
			return e, nil
		}
	}
	return loyalty.Entry{}, infra.NewNotFound("ledger entry not found")
}

func (r ledgerRepo) List(_ context.Context, accountID uuid.UUID, afterSeq int64, limit int32) ([]loyalty.Entry, error) {
	var out []loyalty.Entry
	for _, e := range r.t.entries(accountID) {
		if e.Seq <= afterSeq {
			continue
		}
		if int32(len(out)) >= limit {
			break
		}
		out = append(out, e)
	}
	return out, nil
}

func (r ledgerRepo) ListAll(_ context.Context, accountID uuid.UUID) ([]loyalty.Entry, error) {
	return slices.Clone(r.t.entries(accountID)), nil
}

type tierRepo struct{ t *Tx }

func (r tierRepo) List(context.Context) ([]tier.Tier, error) {
	tiers := slices.Clone(r.t.base.tiers)
	slices.SortFunc(tiers, func(a, b tier.Tier) int { return int(a.SortOrder) - int(b.SortOrder) })
	return tiers, nil
}

func tierByKey(tiers []tier.Tier, key string) (tier.Tier, bool) {
	i := slices.IndexFunc(tiers, func(t tier.Tier) bool { return t.Key == key })
	if i < 0 {
		return tier.Tier{}, false
	}
	return tiers[i], true
}

type rewardRepo struct{ t *Tx }

func (r rewardRepo) FindByID(_ context.Context, id uuid.UUID) (reward.Reward, error) {
	rw, ok := r.t.reward(id)
	if !ok {
		return reward.Reward{}, infra.NewNotFound("reward not found")
	}
	return rw, nil
}

func (r rewardRepo) ListActive(context.Context) ([]reward.Reward, error) {
	var out []reward.Reward
	for id := range r.t.base.rewards {
		rw, _ := r.t.reward(id)
		if rw.Active {
			out = append(out, rw)
		}
	}
	slices.SortFunc(out, func(a, b reward.Reward) int {
		switch {
		case a.Featured != b.Featured:
			if a.Featured {
				return -1
			}
			return 1
		case a.PointsCost != b.PointsCost:
			if a.PointsCost < b.PointsCost {
				return -1
			}
			return 1
		default:
			return bytes.Compare(a.ID[:], b.ID[:])
		}
	})
	return out, nil
}

func (r rewardRepo) DecrementStock(_ context.Context, id uuid.UUID) (bool, error) {
	if err := r.t.writable(); err != nil {
		return false, err
	}
	rw, ok := r.t.reward(id)
	if !ok || rw.Stock == nil || *rw.Stock <= 0 {
		return false, nil
	}
	r.t.stock[id]--
	return true, nil
}

func (r rewardRepo) IncrementStock(_ context.Context, id uuid.UUID) error {
	if err := r.t.writable(); err != nil {
		return err
	}
	rw, ok := r.t.reward(id)
	if !ok || rw.Stock == nil {
		return nil
	}
	r.t.stock[id]++
	return nil
}

type redemptionRepo struct{ t *Tx }

func (r redemptionRepo) Insert(_ context.Context, rd *reward.Redemption) error {
	if err := r.t.writable(); err != nil {
		return err
	}
	row := redemptionRowFrom(rd)
	_, clash := r.t.findRedemption(func(x redemptionRow) bool {
		return x.id == row.id || x.code == row.code ||
			(x.accountID == row.accountID && x.idempotencyKey == row.idempotencyKey)
	})
	if clash {
		return infra.NewConflict("redemption raced")
	}
	r.t.redemptions[row.id] = row
	r.t.createdRedemption = append(r.t.createdRedemption, row.id)
	return nil
}

func (r redemptionRepo) FindByID(_ context.Context, id uuid.UUID) (*reward.Redemption, error) {
	row, ok := r.t.redemption(id)
	if !ok {
		return nil, infra.NewNotFound("redemption not found")
	}
	return row.toDomain(), nil
}

func (r redemptionRepo) FindByCode(_ context.Context, code reward.Code) (*reward.Redemption, error) {
	row, ok := r.t.findRedemption(func(x redemptionRow) bool { return x.code == code })
	if !ok {
		return nil, infra.NewNotFound("redemption not found")
	}
	return row.toDomain(), nil
}

func (r redemptionRepo) FindByIdempotencyKey(_ context.Context, accountID, key uuid.UUID) (*reward.Redemption, error) {
	row, ok := r.t.findRedemption(func(x redemptionRow) bool {
		return x.accountID == accountID && x.idempotencyKey == key
	})
	if !ok {
		return nil, infra.NewNotFound("redemption not found")
	}
	return row.toDomain(), nil
}

func (r redemptionRepo) CodeExists(_ context.Context, code reward.Code) (bool, error) {
	_, ok := r.t.findRedemption(func(x redemptionRow) bool { return x.code == code })
	return ok, nil
}

func (r redemptionRepo) UpdateStatus(_ context.Context, id uuid.UUID, from, to reward.Status, at time.Time) (bool, error) {
	if err := r.t.writable(); err != nil {
		return false, err
	}
	row, ok := r.t.redemption(id)
	if !ok || row.status != from {
		return false, nil
	}
	if !slices.Contains(r.t.createdRedemption, id) {
		if _, guarded := r.t.redemptionGuards[id]; !guarded {
			r.t.redemptionGuards[id] = from
		}
	}
	row.status = to
	row.updatedAt = at
	r.t.redemptions[id] = row
	return true, nil
}

type notificationRepo struct{ t *Tx }

func (r notificationRepo) CreateJob(_ context.Context, kind, topic string, payload []byte, runAt time.Time) error {
	if err := r.t.writable(); err != nil {
		return err
	}
	r.t.jobs = append(r.t.jobs, Job{
		ID:      uuid.New(),
		Kind:    kind,
		Topic:   topic,
		Payload: slices.Clone(payload),
		RunAt:   runAt,
		Status:  "queued",
	})
	return nil
}
