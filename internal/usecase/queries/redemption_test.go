//go:build unit

package queries_test

import (
	"context"
	"testing"

	"pos-loyalty/internal/pkg/errs"
	"pos-loyalty/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedemptionGetByID(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	account := f.enroll(t)
	f.earn(t, account.ID(), "sale-1", "450")

	fiveOff := uuid.MustParse("5b1f6f0e-8d4a-4c43-9a0e-1d1f0c9e0a02")
	res, err := f.redemptions.Redeem(ctx, commands.RedeemInput{AccountID: account.ID(), RewardID: fiveOff, IdempotencyKey: uuid.New()})
	require.NoError(t, err)

	view, err := f.lookups.GetByID(ctx, res.Redemption.ID())
	require.NoError(t, err)
	assert.Equal(t, account.ID(), view.AccountID)
	assert.Equal(t, fiveOff, view.RewardID)
	assert.Equal(t, int64(400), view.PointsSpent)
	assert.Equal(t, "issued", view.Status)
	assert.Equal(t, res.Redemption.Code().String(), view.Code)
	assert.Equal(t, res.Redemption.LedgerEntryID(), view.LedgerEntryID)

	_, err = f.redemptions.Cancel(ctx, view.ID)
	require.NoError(t, err)
	view, err = f.lookups.GetByID(ctx, view.ID)
	require.NoError(t, err)
	assert.Equal(t, "cancelled", view.Status)

	_, err = f.lookups.GetByID(ctx, uuid.New())
	assert.True(t, errs.Is(err, errs.ErrRedemptionNotFound))
}
