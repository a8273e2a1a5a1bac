//go:build unit

package commands_test

import (
	"context"
	"testing"

	"pos-loyalty/internal/domain/loyalty"
	"pos-loyalty/internal/pkg/errs"
	"pos-loyalty/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnroll(t *testing.T) {
	ctx := context.Background()

	t.Run("opens at the lowest tier with an empty snapshot", func(t *testing.T) {
		h := newHarness(t)
		customerID := uuid.New()

		account, err := h.accounts.Enroll(ctx, commands.EnrollInput{CustomerID: customerID, ProgramID: "default"})
		require.NoError(t, err)
		assert.Equal(t, "bronze", account.TierKey())
		assert.True(t, account.IsActive())

		view := h.balance(t, account.ID())
		assert.Equal(t, int64(0), view.CurrentPoints)
		assert.Equal(t, int64(0), view.LifetimeEarned)
		assert.True(t, view.LifetimeSpend.IsZero())
		assert.Equal(t, "Bronze", view.TierName)
	})

	t.Run("second active enrollment is refused", func(t *testing.T) {
		h := newHarness(t)
		in := commands.EnrollInput{CustomerID: uuid.New(), ProgramID: "default"}

		_, err := h.accounts.Enroll(ctx, in)
		require.NoError(t, err)

		_, err = h.accounts.Enroll(ctx, in)
		assert.True(t, errs.Is(err, errs.ErrAccountAlreadyEnrolled))
	})

	t.Run("same customer may join another program", func(t *testing.T) {
		h := newHarness(t)
		customerID := uuid.New()

		_, err := h.accounts.Enroll(ctx, commands.EnrollInput{CustomerID: customerID, ProgramID: "default"})
		require.NoError(t, err)
		_, err = h.accounts.Enroll(ctx, commands.EnrollInput{CustomerID: customerID, ProgramID: "staff"})
		assert.NoError(t, err)
	})

	t.Run("concurrent enrollments of one customer yield one account", func(t *testing.T) {
		h := newHarness(t)
		in := commands.EnrollInput{CustomerID: uuid.New(), ProgramID: "default"}

		results := runConcurrently(8, func(int) error {
			_, err := h.accounts.Enroll(ctx, in)
			return err
		})

		ok, dup := 0, 0
		for _, err := range results {
			switch {
			case err == nil:
				ok++
			case errs.Is(err, errs.ErrAccountAlreadyEnrolled):
				dup++
			default:
				t.Fatalf("unexpected error: %v", err)
			}
		}
		assert.Equal(t, 1, ok)
		assert.Equal(t, 7, dup)
	})

	t.Run("invalid input", func(t *testing.T) {
		h := newHarness(t)

		_, err := h.accounts.Enroll(ctx, commands.EnrollInput{CustomerID: uuid.Nil, ProgramID: "default"})
		assert.ErrorIs(t, err, loyalty.ErrInvalidCustomer)

		_, err = h.accounts.Enroll(ctx, commands.EnrollInput{CustomerID: uuid.New(), ProgramID: "  "})
		assert.ErrorIs(t, err, loyalty.ErrInvalidProgram)
	})
}

func TestDeactivate(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	account := h.enroll(t)
	h.earn(t, account.ID(), "sale-1", "50")

	require.NoError(t, h.accounts.Deactivate(ctx, account.ID()))

	t.Run("deactivating twice fails", func(t *testing.T) {
		err := h.accounts.Deactivate(ctx, account.ID())
		assert.ErrorIs(t, err, loyalty.ErrAccountInactive)
	})

	t.Run("inactive accounts no longer earn", func(t *testing.T) {
		_, err := h.ledger.EarnFromSale(ctx, commands.SaleEvent{AccountID: account.ID(), SaleID: "sale-2"})
		assert.True(t, errs.Is(err, errs.ErrUnknownAccount))
	})

	t.Run("balance stays readable", func(t *testing.T) {
		view := h.balance(t, account.ID())
		assert.False(t, view.IsActive)
		assert.Equal(t, int64(50), view.CurrentPoints)
	})

	t.Run("customer may enroll again", func(t *testing.T) {
		_, err := h.accounts.Enroll(ctx, commands.EnrollInput{CustomerID: account.CustomerID(), ProgramID: "default"})
		assert.NoError(t, err)
	})

	t.Run("unknown account", func(t *testing.T) {
		err := h.accounts.Deactivate(ctx, uuid.New())
		assert.True(t, errs.Is(err, errs.ErrUnknownAccount))
	})
}
