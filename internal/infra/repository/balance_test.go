//go:build unit

package repository

import (
	"context"
	"testing"
	"time"

	"pos-loyalty/internal/domain/loyalty"
	"pos-loyalty/internal/infra"
	sqlc "pos-loyalty/internal/infra/sqlc/generated"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockBalanceQueries struct {
	mock.Mock
}

func (m *MockBalanceQueries) CreateLoyaltyBalance(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateLoyaltyBalanceParams) error {
	args := m.Called(ctx, db, arg)
	return args.Error(0)
}

func (m *MockBalanceQueries) GetLoyaltyBalance(ctx context.Context, db sqlc.DBTX, accountID uuid.UUID) (sqlc.LoyaltyBalances, error) {
	args := m.Called(ctx, db, accountID)
	return args.Get(0).(sqlc.LoyaltyBalances), args.Error(1)
}

func (m *MockBalanceQueries) CompareAndSwapLoyaltyBalance(ctx context.Context, db sqlc.DBTX, arg sqlc.CompareAndSwapLoyaltyBalanceParams) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

func TestBalanceCompareAndSwap(t *testing.T) {
	next := loyalty.Snapshot{
		AccountID:      uuid.New(),
		CurrentPoints:  300,
		LifetimeEarned: 300,
		LifetimeSpend:  decimal.NewFromInt(300),
		LastSeq:        2,
		Version:        3,
		UpdatedAt:      time.Date(2026, 1, 5, 8, 0, 0, 0, time.UTC),
	}

	tests := []struct {
		name     string
		rows     int64
		mockErr  error
		wantKind infra.RepositoryErrorKind
	}{
		{name: "swapped", rows: 1},
		{name: "version moved on", rows: 0, wantKind: infra.KindConflict},
		{
			name:     "negative balance rejected by check",
			mockErr:  &pgconn.PgError{Code: "23514", ConstraintName: "loyalty_balances_current_points_check"},
			wantKind: infra.KindConflict,
		},
		{name: "database error", mockErr: assert.AnError, wantKind: infra.KindDBFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockBalanceQueries)
			mockQueries.On("CompareAndSwapLoyaltyBalance", mock.Anything, mock.Anything, mock.MatchedBy(func(p sqlc.CompareAndSwapLoyaltyBalanceParams) bool {
				return p.AccountID == next.AccountID && p.CurrentPoints == 300 && p.ExpectedVersion == 2
			})).Return(tt.rows, tt.mockErr)

			err := NewBalanceRepository(mockQueries, nil).CompareAndSwap(context.Background(), next, 2)

			if tt.wantKind == "" {
				assert.NoError(t, err)
			} else {
				assert.True(t, infra.IsKind(err, tt.wantKind), "got %v", err)
			}
			mockQueries.AssertExpectations(t)
		})
	}
}
