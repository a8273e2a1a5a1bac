//go:build unit

package commands_test

import (
	"context"
	"strings"
	"testing"

	"pos-loyalty/internal/domain/loyalty"
	"pos-loyalty/internal/domain/reward"
	"pos-loyalty/internal/pkg/errs"
	"pos-loyalty/internal/usecase/commands"
	"pos-loyalty/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedeemRoundTrip(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	account := h.enroll(t)

	earned := h.earn(t, account.ID(), "sale-1", "1000")
	require.Equal(t, int64(1000), earned.Entry.Delta)
	require.Equal(t, "silver", earned.Tier.Tier.Key)

	res, err := h.redemptions.Redeem(ctx, commands.RedeemInput{
		AccountID:      account.ID(),
		RewardID:       fiveOffID,
		IdempotencyKey: uuid.New(),
	})
	require.NoError(t, err)
	assert.False(t, res.IsReplayed)
	assert.Equal(t, int64(600), res.Balance)
	assert.Equal(t, reward.StatusIssued, res.Redemption.Status())
	assert.Equal(t, int64(400), res.Redemption.PointsSpent())
	assert.Regexp(t, `^RW-[A-Z2-9]{4}-[A-Z2-9]{4}$`, res.Redemption.Code().String())

	view := h.balance(t, account.ID())
	assert.Equal(t, int64(600), view.CurrentPoints)
	assert.Equal(t, int64(1000), view.LifetimeEarned)
	assert.Equal(t, int64(400), view.LifetimeRedeemed)
	// tiering follows lifetime earned, so spending keeps silver
	assert.Equal(t, "silver", view.Tier)

	page, err := h.balances.LedgerHistory(ctx, account.ID(), "", 0)
	require.NoError(t, err)
	require.Len(t, page.Entries, 2)
	assert.Equal(t, "redeem", page.Entries[1].Kind)
	assert.Equal(t, int64(-400), page.Entries[1].Delta)
	assert.Equal(t, res.Redemption.LedgerEntryID(), page.Entries[1].ID)

	h.requireConsistent(t, account.ID())

	jobs := h.jobsOfKind(shared.JobKindRedemptionIssued)
	require.Len(t, jobs, 1)
	assert.Contains(t, string(jobs[0].Payload), res.Redemption.Code().String())
}

func TestRedeemIdempotency(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	account := h.enroll(t)
	h.earn(t, account.ID(), "sale-1", "900")

	in := commands.RedeemInput{AccountID: account.ID(), RewardID: fiveOffID, IdempotencyKey: uuid.New()}

	first, err := h.redemptions.Redeem(ctx, in)
	require.NoError(t, err)

	t.Run("same key replays without debiting again", func(t *testing.T) {
		again, err := h.redemptions.Redeem(ctx, in)
		require.NoError(t, err)
		assert.True(t, again.IsReplayed)
		assert.Equal(t, first.Redemption.ID(), again.Redemption.ID())
		assert.Equal(t, first.Redemption.Code(), again.Redemption.Code())
		assert.Equal(t, int64(500), h.balance(t, account.ID()).CurrentPoints)
	})

	t.Run("same key for another reward is refused", func(t *testing.T) {
		other := in
		other.RewardID = freeDeliveryID
		_, err := h.redemptions.Redeem(ctx, other)
		assert.ErrorIs(t, err, errs.ErrIdempotencyKeyReused)
	})

	t.Run("concurrent retries with one key redeem once", func(t *testing.T) {
		key := commands.RedeemInput{AccountID: account.ID(), RewardID: fiveOffID, IdempotencyKey: uuid.New()}
		results := runConcurrently(6, func(int) error {
			_, err := h.redemptions.Redeem(ctx, key)
			return err
		})
		for _, err := range results {
			require.NoError(t, err)
		}
		assert.Equal(t, int64(100), h.balance(t, account.ID()).CurrentPoints)
	})

	t.Run("missing key", func(t *testing.T) {
		_, err := h.redemptions.Redeem(ctx, commands.RedeemInput{AccountID: account.ID(), RewardID: fiveOffID})
		assert.ErrorIs(t, err, errs.ErrIdempotencyKeyRequired)
	})

	h.requireConsistent(t, account.ID())
}

func TestRedeemPreconditions(t *testing.T) {
	ctx := context.Background()
	inactive := limitedReward(10, 5)
	inactive.Active = false
	soldOut := limitedReward(10, 0)
	h := newHarness(t, withRewards(inactive, soldOut))
	account := h.enroll(t)
	h.earn(t, account.ID(), "sale-1", "350")

	tests := []struct {
		name     string
		rewardID uuid.UUID
		want     error
	}{
		{"unknown reward", uuid.New(), errs.ErrRewardNotFound},
		{"inactive reward", inactive.ID, errs.ErrRewardInactive},
		{"sold out", soldOut.ID, errs.ErrOutOfStock},
		{"tier below minimum", freeDeliveryID, errs.ErrTierNotEligible},
		{"not enough points", fiveOffID, errs.ErrInsufficientPoints},
		{"gold only voucher", voucherID, errs.ErrTierNotEligible},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := h.redemptions.Redeem(ctx, commands.RedeemInput{
				AccountID:      account.ID(),
				RewardID:       tt.rewardID,
				IdempotencyKey: uuid.New(),
			})
			assert.True(t, errs.Is(err, tt.want), "got %v", err)
		})
	}

	t.Run("unknown account", func(t *testing.T) {
		_, err := h.redemptions.Redeem(ctx, commands.RedeemInput{AccountID: uuid.New(), RewardID: fiveOffID, IdempotencyKey: uuid.New()})
		assert.True(t, errs.Is(err, errs.ErrUnknownAccount))
	})

	view := h.requireConsistent(t, account.ID())
	assert.Equal(t, int64(350), view.Snapshot.CurrentPoints)
	assert.Empty(t, h.jobsOfKind(shared.JobKindRedemptionIssued))
}

func TestRedeemLimitedStockUnderContention(t *testing.T) {
	ctx := context.Background()
	const (
		stock    = 5
		contests = 20
	)
	tote := limitedReward(100, stock)
	h := newHarness(t, withRewards(tote))

	// one wallet per caller so only the stock row is contended
	accounts := make([]*loyalty.Account, contests)
	for i := range accounts {
		accounts[i] = h.enroll(t)
		h.earn(t, accounts[i].ID(), "seed", "500")
	}

	results := runConcurrently(contests, func(i int) error {
		_, err := h.redemptions.Redeem(ctx, commands.RedeemInput{
			AccountID:      accounts[i].ID(),
			RewardID:       tote.ID,
			IdempotencyKey: uuid.New(),
		})
		return err
	})

	won, lost := 0, 0
	for _, err := range results {
		switch {
		case err == nil:
			won++
		case errs.Is(err, errs.ErrOutOfStock):
			lost++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	assert.Equal(t, stock, won)
	assert.Equal(t, contests-stock, lost)

	var spent int64
	for _, a := range accounts {
		view := h.requireConsistent(t, a.ID())
		spent += 500 - view.Snapshot.CurrentPoints
	}
	assert.Equal(t, int64(stock*100), spent)
	assert.Len(t, h.jobsOfKind(shared.JobKindRedemptionIssued), stock)
}

func TestRedeemOneWalletUnderContention(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	account := h.enroll(t)
	h.earn(t, account.ID(), "seed", "900")

	// 900 points cover two $5-off redemptions of 400
	results := runConcurrently(6, func(int) error {
		_, err := h.redemptions.Redeem(ctx, commands.RedeemInput{
			AccountID:      account.ID(),
			RewardID:       fiveOffID,
			IdempotencyKey: uuid.New(),
		})
		return err
	})

	won := 0
	for _, err := range results {
		if err == nil {
			won++
			continue
		}
		require.True(t, errs.Is(err, errs.ErrInsufficientPoints), "got %v", err)
	}
	assert.Equal(t, 2, won)

	view := h.requireConsistent(t, account.ID())
	assert.Equal(t, int64(100), view.Snapshot.CurrentPoints)
}

func TestUseRedemption(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	account := h.enroll(t)
	h.earn(t, account.ID(), "sale-1", "500")

	res, err := h.redemptions.Redeem(ctx, commands.RedeemInput{AccountID: account.ID(), RewardID: fiveOffID, IdempotencyKey: uuid.New()})
	require.NoError(t, err)
	code := res.Redemption.Code().String()

	used, err := h.redemptions.Use(ctx, " "+strings.ToLower(code)+" ")
	require.NoError(t, err)
	assert.Equal(t, reward.StatusUsed, used.Status())

	_, err = h.redemptions.Use(ctx, code)
	assert.ErrorIs(t, err, errs.ErrInvalidRedemptionState)

	_, err = h.redemptions.Cancel(ctx, res.Redemption.ID())
	assert.ErrorIs(t, err, errs.ErrInvalidRedemptionState)

	_, err = h.redemptions.Use(ctx, "not a code")
	assert.True(t, errs.Is(err, errs.ErrRedemptionNotFound))

	_, err = h.redemptions.Use(ctx, "rw-zzzz-zzzz")
	assert.True(t, errs.Is(err, errs.ErrRedemptionNotFound))
}

func TestCancelRedemption(t *testing.T) {
	ctx := context.Background()
	tote := limitedReward(100, 1)
	h := newHarness(t, withRewards(tote))
	account := h.enroll(t)
	h.earn(t, account.ID(), "sale-1", "300")

	res, err := h.redemptions.Redeem(ctx, commands.RedeemInput{AccountID: account.ID(), RewardID: tote.ID, IdempotencyKey: uuid.New()})
	require.NoError(t, err)
	require.Equal(t, int64(200), res.Balance)

	cancelled, err := h.redemptions.Cancel(ctx, res.Redemption.ID())
	require.NoError(t, err)
	assert.Equal(t, reward.StatusCancelled, cancelled.Redemption.Status())
	assert.Equal(t, loyalty.KindAdjust, cancelled.Refund.Kind)
	assert.Equal(t, int64(100), cancelled.Refund.Delta)
	assert.Equal(t, int64(300), cancelled.Refund.RunningBalance)

	t.Run("refund restores points but not lifetime redeemed", func(t *testing.T) {
		view := h.balance(t, account.ID())
		assert.Equal(t, int64(300), view.CurrentPoints)
		assert.Equal(t, int64(100), view.LifetimeRedeemed)
	})

	t.Run("stock unit is returned", func(t *testing.T) {
		again, err := h.redemptions.Redeem(ctx, commands.RedeemInput{AccountID: account.ID(), RewardID: tote.ID, IdempotencyKey: uuid.New()})
		require.NoError(t, err)
		assert.Equal(t, int64(200), again.Balance)
	})

	t.Run("cancelling twice fails", func(t *testing.T) {
		_, err := h.redemptions.Cancel(ctx, res.Redemption.ID())
		assert.ErrorIs(t, err, errs.ErrInvalidRedemptionState)
	})

	t.Run("unknown redemption", func(t *testing.T) {
		_, err := h.redemptions.Cancel(ctx, uuid.New())
		assert.True(t, errs.Is(err, errs.ErrRedemptionNotFound))
	})

	h.requireConsistent(t, account.ID())
}

func TestRedeemCodeAllocation(t *testing.T) {
	ctx := context.Background()
	const taken = reward.Code("RW-AAAA-AAAA")

	t.Run("every attempt collides", func(t *testing.T) {
		gen := &scriptedCodes{codes: []reward.Code{taken}}
		tote := limitedReward(100, 10)
		h := newHarness(t, withRewards(tote), withCodes(gen))

		first := h.enroll(t)
		h.earn(t, first.ID(), "sale-1", "300")
		_, err := h.redemptions.Redeem(ctx, commands.RedeemInput{AccountID: first.ID(), RewardID: tote.ID, IdempotencyKey: uuid.New()})
		require.NoError(t, err)
		require.Equal(t, int64(9), *h.stock(t, tote.ID))

		second := h.enroll(t)
		h.earn(t, second.ID(), "sale-2", "300")
		_, err = h.redemptions.Redeem(ctx, commands.RedeemInput{AccountID: second.ID(), RewardID: tote.ID, IdempotencyKey: uuid.New()})
		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrCodeAllocationFailed), "got %v", err)
		// one draw for the first redemption, then the configured attempts
		assert.Equal(t, 1+5, gen.Calls())

		view := h.requireConsistent(t, second.ID())
		assert.Equal(t, int64(300), view.Snapshot.CurrentPoints)
		assert.Equal(t, int64(0), view.Snapshot.LifetimeRedeemed)
		assert.Equal(t, int64(9), *h.stock(t, tote.ID))
		assert.Len(t, h.jobsOfKind(shared.JobKindRedemptionIssued), 1)
	})

	t.Run("a collision is followed by a fresh code", func(t *testing.T) {
		gen := &scriptedCodes{codes: []reward.Code{taken, taken, "RW-BBBB-BBBB"}}
		tote := limitedReward(100, 10)
		h := newHarness(t, withRewards(tote), withCodes(gen))

		first := h.enroll(t)
		h.earn(t, first.ID(), "sale-1", "300")
		_, err := h.redemptions.Redeem(ctx, commands.RedeemInput{AccountID: first.ID(), RewardID: tote.ID, IdempotencyKey: uuid.New()})
		require.NoError(t, err)

		second := h.enroll(t)
		h.earn(t, second.ID(), "sale-2", "300")
		res, err := h.redemptions.Redeem(ctx, commands.RedeemInput{AccountID: second.ID(), RewardID: tote.ID, IdempotencyKey: uuid.New()})
		require.NoError(t, err)
		assert.Equal(t, reward.Code("RW-BBBB-BBBB"), res.Redemption.Code())
		assert.Equal(t, int64(200), res.Balance)
		assert.Equal(t, 3, gen.Calls())
		assert.Equal(t, int64(8), *h.stock(t, tote.ID))
		assert.Len(t, h.jobsOfKind(shared.JobKindRedemptionIssued), 2)
		h.requireConsistent(t, second.ID())
	})
}
