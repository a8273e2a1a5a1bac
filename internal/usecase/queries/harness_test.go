//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"pos-loyalty/internal/domain/loyalty"
	"pos-loyalty/internal/domain/reward"
	"pos-loyalty/internal/infra/memstore"
	"pos-loyalty/internal/infra/uow"
	"pos-loyalty/internal/pkg/clock"
	"pos-loyalty/internal/pkg/config"
	"pos-loyalty/internal/usecase/commands"
	"pos-loyalty/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	ledger      commands.LedgerCommands
	accounts    commands.AccountCommands
	redemptions commands.RedemptionCommands
	balances    queries.BalanceQueries
	catalog     queries.CatalogQueries
	lookups     queries.RedemptionQueries
	store       *memstore.Store
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	cfg := config.NewTestConfig()
	store := memstore.New(
		memstore.WithTiers(memstore.DefaultTiers()),
		memstore.WithRewards(memstore.DefaultRewards()),
	)
	unit := uow.NewMemoryUoW(store, uow.RetryPolicy{MaxRetries: 5})
	clk := clock.NewMockClock(time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC))

	return &fixture{
		ledger:      commands.NewLedgerUseCase(unit, cfg.Loyalty, clk),
		accounts:    commands.NewAccountUseCase(unit, clk),
		redemptions: commands.NewRedemptionUseCase(unit, reward.NewKSUIDCodeGenerator(cfg.Loyalty.CodeLength), cfg.Loyalty, clk),
		balances:    queries.NewBalanceQueries(unit),
		catalog:     queries.NewCatalogQueries(unit),
		lookups:     queries.NewRedemptionQueries(unit),
		store:       store,
	}
}

func (f *fixture) enroll(t *testing.T) *loyalty.Account {
	t.Helper()
	account, err := f.accounts.Enroll(context.Background(), commands.EnrollInput{CustomerID: uuid.New(), ProgramID: "default"})
	require.NoError(t, err)
	return account
}

func (f *fixture) earn(t *testing.T, accountID uuid.UUID, saleID, total string) {
	t.Helper()
	_, err := f.ledger.EarnFromSale(context.Background(), commands.SaleEvent{
		AccountID: accountID,
		SaleID:    saleID,
		SaleTotal: decimal.RequireFromString(total),
	})
	require.NoError(t, err)
}
