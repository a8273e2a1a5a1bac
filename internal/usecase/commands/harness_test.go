//go:build unit

package commands_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"pos-loyalty/internal/domain/loyalty"
	"pos-loyalty/internal/domain/reward"
	"pos-loyalty/internal/infra"
	"pos-loyalty/internal/infra/memstore"
	"pos-loyalty/internal/infra/uow"
	"pos-loyalty/internal/pkg/clock"
	"pos-loyalty/internal/pkg/config"
	"pos-loyalty/internal/pkg/errs"
	"pos-loyalty/internal/usecase/commands"
	"pos-loyalty/internal/usecase/queries"
	"pos-loyalty/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

var (
	fiveOffID      = uuid.MustParse("5b1f6f0e-8d4a-4c43-9a0e-1d1f0c9e0a02")
	freeDeliveryID = uuid.MustParse("5b1f6f0e-8d4a-4c43-9a0e-1d1f0c9e0a03")
	voucherID      = uuid.MustParse("5b1f6f0e-8d4a-4c43-9a0e-1d1f0c9e0a04")
)

type harness struct {
	store       *memstore.Store
	clock       *clock.MockClock
	accounts    commands.AccountCommands
	ledger      commands.LedgerCommands
	tiers       commands.TierCommands
	redemptions commands.RedemptionCommands
	balances    queries.BalanceQueries
}

type harnessSetup struct {
	loyalty   config.LoyaltyConfig
	storeOpts []memstore.Option
	codes     reward.CodeGenerator
	wrapUoW   func(shared.UnitOfWork) shared.UnitOfWork
}

type harnessOption func(*harnessSetup)

func withLoyalty(f func(*config.LoyaltyConfig)) harnessOption {
	return func(s *harnessSetup) { f(&s.loyalty) }
}

func withRewards(rewards ...reward.Reward) harnessOption {
	return func(s *harnessSetup) {
		s.storeOpts = append(s.storeOpts, memstore.WithRewards(rewards))
	}
}

func withCodes(gen reward.CodeGenerator) harnessOption {
	return func(s *harnessSetup) { s.codes = gen }
}

func withBrokenBalances(broken *brokenBalances) harnessOption {
	return func(s *harnessSetup) {
		s.wrapUoW = func(u shared.UnitOfWork) shared.UnitOfWork { return brokenUoW{u, broken} }
	}
}

// brokenBalances makes balance reads fail for the accounts it holds, simulating
// a store failure scoped to a few rows.
type brokenBalances struct {
	mu  sync.Mutex
	ids map[uuid.UUID]bool
}

func (b *brokenBalances) Break(ids ...uuid.UUID) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.ids == nil {
		b.ids = map[uuid.UUID]bool{}
	}
	for _, id := range ids {
		b.ids[id] = true
	}
}

func (b *brokenBalances) broken(id uuid.UUID) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.ids[id]
}

type brokenUoW struct {
	shared.UnitOfWork
	broken *brokenBalances
}

func (u brokenUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.UnitOfWork.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return fn(ctx, brokenTx{tx, u.broken})
	})
}

func (u brokenUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.UnitOfWork.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		return fn(ctx, brokenTx{tx, u.broken})
	})
}

type brokenTx struct {
	shared.Tx
	broken *brokenBalances
}

func (t brokenTx) Balances() shared.BalanceRepository {
	return brokenBalanceRepo{t.Tx.Balances(), t.broken}
}

type brokenBalanceRepo struct {
	shared.BalanceRepository
	broken *brokenBalances
}

func (r brokenBalanceRepo) Get(ctx context.Context, accountID uuid.UUID) (loyalty.Snapshot, error) {
	if r.broken.broken(accountID) {
		return loyalty.Snapshot{}, infra.WrapRepoErr("load balance", errs.New("disk read error"))
	}
	return r.BalanceRepository.Get(ctx, accountID)
}

func newHarness(t *testing.T, opts ...harnessOption) *harness {
	t.Helper()

	setup := harnessSetup{
		loyalty: config.NewTestConfig().Loyalty,
		storeOpts: []memstore.Option{
			memstore.WithTiers(memstore.DefaultTiers()),
			memstore.WithRewards(memstore.DefaultRewards()),
		},
	}
	for _, o := range opts {
		o(&setup)
	}
	if setup.codes == nil {
		setup.codes = reward.NewKSUIDCodeGenerator(setup.loyalty.CodeLength)
	}
	cfg := setup.loyalty

	store := memstore.New(setup.storeOpts...)
	// every loser of a race is replayed; enough headroom for the concurrent tests
	var unit shared.UnitOfWork = uow.NewMemoryUoW(store, uow.RetryPolicy{MaxRetries: 100})
	if setup.wrapUoW != nil {
		unit = setup.wrapUoW(unit)
	}
	clk := clock.NewMockClock(time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC))

	return &harness{
		store:       store,
		clock:       clk,
		accounts:    commands.NewAccountUseCase(unit, clk),
		ledger:      commands.NewLedgerUseCase(unit, cfg, clk),
		tiers:       commands.NewTierUseCase(unit, cfg, clk),
		redemptions: commands.NewRedemptionUseCase(unit, setup.codes, cfg, clk),
		balances:    queries.NewBalanceQueries(unit),
	}
}

func (h *harness) enroll(t *testing.T) *loyalty.Account {
	t.Helper()
	account, err := h.accounts.Enroll(context.Background(), commands.EnrollInput{CustomerID: uuid.New(), ProgramID: "default"})
	require.NoError(t, err)
	return account
}

func (h *harness) earn(t *testing.T, accountID uuid.UUID, saleID, total string) *commands.EarnResult {
	t.Helper()
	res, err := h.ledger.EarnFromSale(context.Background(), commands.SaleEvent{
		AccountID: accountID,
		SaleID:    saleID,
		SaleTotal: decimal.RequireFromString(total),
	})
	require.NoError(t, err)
	return res
}

func (h *harness) balance(t *testing.T, accountID uuid.UUID) *queries.BalanceView {
	t.Helper()
	view, err := h.balances.GetBalance(context.Background(), accountID)
	require.NoError(t, err)
	return view
}

// requireConsistent checks that the snapshot equals a replay of the ledger.
func (h *harness) requireConsistent(t *testing.T, accountID uuid.UUID) *queries.ReconcileView {
	t.Helper()
	view, err := h.balances.Reconcile(context.Background(), accountID)
	require.NoError(t, err)
	require.Nil(t, view.LedgerError)
	require.True(t, view.Consistent, "drift: %v", view.Drift)
	return view
}

func (h *harness) jobsOfKind(kind string) []memstore.Job {
	var out []memstore.Job
	for _, j := range h.store.Jobs() {
		if j.Kind == kind {
			out = append(out, j)
		}
	}
	return out
}

// scriptedCodes hands out codes in order and repeats the last one.
type scriptedCodes struct {
	mu    sync.Mutex
	codes []reward.Code
	calls int
}

func (g *scriptedCodes) Generate() (reward.Code, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	i := min(g.calls, len(g.codes)-1)
	g.calls++
	return g.codes[i], nil
}

func (g *scriptedCodes) Calls() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.calls
}

func (h *harness) stock(t *testing.T, rewardID uuid.UUID) *int64 {
	t.Helper()
	rw, err := h.store.Begin(true).Rewards().FindByID(context.Background(), rewardID)
	require.NoError(t, err)
	return rw.Stock
}

func limitedReward(cost, stock int64) reward.Reward {
	return reward.Reward{
		ID:            uuid.New(),
		Name:          "Limited tote bag",
		PointsCost:    cost,
		MonetaryValue: decimal.NewFromInt(15),
		Kind:          reward.FreeProduct{ProductID: uuid.New()},
		Stock:         &stock,
		Active:        true,
	}
}
