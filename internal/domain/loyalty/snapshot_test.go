//go:build unit

package loyalty_test

import (
	"math"
	"testing"
	"time"

	"pos-loyalty/internal/domain/loyalty"
	"pos-loyalty/internal/pkg/errs"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

func TestSnapshotPost(t *testing.T) {
	t.Run("earn then redeem round-trip", func(t *testing.T) {
		snap := loyalty.NewSnapshot(uuid.New(), now)

		earn, snap, err := snap.Post(loyalty.KindEarn, 1000, "sale-1", now)
		require.NoError(t, err)
		redeem, snap, err := snap.Post(loyalty.KindRedeem, -400, "redemption-1", now)
		require.NoError(t, err)

		assert.Equal(t, int64(1000), earn.RunningBalance)
		assert.Equal(t, int64(1), earn.Seq)
		assert.Equal(t, int64(600), redeem.RunningBalance)
		assert.Equal(t, int64(2), redeem.Seq)
		assert.Equal(t, int64(600), snap.CurrentPoints)
		assert.Equal(t, int64(1000), snap.LifetimeEarned)
		assert.Equal(t, int64(400), snap.LifetimeRedeemed)
		assert.Equal(t, int64(3), snap.Version)
	})

	t.Run("delta sign must match kind", func(t *testing.T) {
		snap := loyalty.NewSnapshot(uuid.New(), now)
		snap.CurrentPoints = 100

		tests := []struct {
			name  string
			kind  loyalty.Kind
			delta int64
			errIs error
		}{
			{name: "negative earn", kind: loyalty.KindEarn, delta: -1, errIs: errs.ErrInvalidDelta},
			{name: "zero earn", kind: loyalty.KindEarn, delta: 0},
			{name: "positive redeem", kind: loyalty.KindRedeem, delta: 1, errIs: errs.ErrInvalidDelta},
			{name: "positive expire", kind: loyalty.KindExpire, delta: 5, errIs: errs.ErrInvalidDelta},
			{name: "negative adjust", kind: loyalty.KindAdjust, delta: -50},
			{name: "positive adjust", kind: loyalty.KindAdjust, delta: 50},
			{name: "unknown kind", kind: loyalty.Kind("gift"), delta: 1, errIs: errs.ErrInvalidDelta},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, _, err := snap.Post(tt.kind, tt.delta, "ref", now)
				if tt.errIs != nil {
					assert.ErrorIs(t, err, tt.errIs)
					return
				}
				assert.NoError(t, err)
			})
		}
	})

	t.Run("refuses overdraft without producing anything", func(t *testing.T) {
		snap := loyalty.NewSnapshot(uuid.New(), now)
		snap.CurrentPoints = 300
		entry, next, err := snap.Post(loyalty.KindRedeem, -301, "r", now)
		assert.ErrorIs(t, err, errs.ErrInsufficientBalance)
		assert.Equal(t, loyalty.Entry{}, entry)
		assert.Equal(t, loyalty.Snapshot{}, next)
	})

	t.Run("points ceiling", func(t *testing.T) {
		snap := loyalty.NewSnapshot(uuid.New(), now)
		snap.CurrentPoints = 10

		tests := []struct {
			name  string
			kind  loyalty.Kind
			delta int64
		}{
			{name: "huge adjust", kind: loyalty.KindAdjust, delta: math.MaxInt64},
			{name: "huge negative adjust", kind: loyalty.KindAdjust, delta: math.MinInt64},
			{name: "huge earn", kind: loyalty.KindEarn, delta: loyalty.MaxPoints + 1},
			{name: "balance past ceiling", kind: loyalty.KindAdjust, delta: loyalty.MaxPoints},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				entry, next, err := snap.Post(tt.kind, tt.delta, "ref", now)
				assert.ErrorIs(t, err, errs.ErrPointsOutOfRange)
				assert.Equal(t, loyalty.Entry{}, entry)
				assert.Equal(t, loyalty.Snapshot{}, next)
			})
		}

		_, next, err := snap.Post(loyalty.KindAdjust, loyalty.MaxPoints-10, "ref", now)
		require.NoError(t, err)
		assert.Equal(t, int64(loyalty.MaxPoints), next.CurrentPoints)
		_, _, err = next.Post(loyalty.KindEarn, 1, "sale", now)
		assert.ErrorIs(t, err, errs.ErrPointsOutOfRange)
	})

	t.Run("adjust and expire leave lifetime totals alone", func(t *testing.T) {
		snap := loyalty.NewSnapshot(uuid.New(), now)
		_, snap, err := snap.Post(loyalty.KindAdjust, 250, "goodwill", now)
		require.NoError(t, err)
		_, snap, err = snap.Post(loyalty.KindExpire, -100, "expiry", now)
		require.NoError(t, err)
		assert.Equal(t, int64(150), snap.CurrentPoints)
		assert.Zero(t, snap.LifetimeEarned)
		assert.Zero(t, snap.LifetimeRedeemed)
	})

	t.Run("add spend accumulates", func(t *testing.T) {
		snap := loyalty.NewSnapshot(uuid.New(), now)
		snap = snap.AddSpend(decimal.RequireFromString("10.25")).AddSpend(decimal.RequireFromString("4.75"))
		assert.True(t, decimal.NewFromInt(15).Equal(snap.LifetimeSpend))
	})
}

func TestReplay(t *testing.T) {
	accountID := uuid.New()
	snap := loyalty.NewSnapshot(accountID, now)
	var entries []loyalty.Entry
	for _, step := range []struct {
		kind  loyalty.Kind
		delta int64
	}{
		{loyalty.KindEarn, 1000},
		{loyalty.KindRedeem, -400},
		{loyalty.KindAdjust, 25},
		{loyalty.KindExpire, -125},
	} {
		var e loyalty.Entry
		var err error
		e, snap, err = snap.Post(step.kind, step.delta, "ref", now)
		require.NoError(t, err)
		entries = append(entries, e)
	}

	t.Run("replay matches the snapshot", func(t *testing.T) {
		p, err := loyalty.Replay(entries)
		require.NoError(t, err)

		want := loyalty.Projection{
			CurrentPoints:    500,
			LifetimeEarned:   1000,
			LifetimeRedeemed: 400,
			LastSeq:          4,
			Entries:          4,
		}
		if diff := cmp.Diff(want, p); diff != "" {
			t.Errorf("projection mismatch (-want +got):\n%s", diff)
		}
		assert.Empty(t, snap.Drift(p))
	})

	t.Run("detects tampered running balance", func(t *testing.T) {
		tampered := append([]loyalty.Entry(nil), entries...)
		tampered[1].RunningBalance = 700
		_, err := loyalty.Replay(tampered)
		assert.ErrorIs(t, err, errs.ErrLedgerCorrupted)
	})

	t.Run("detects seq gap", func(t *testing.T) {
		gapped := append([]loyalty.Entry(nil), entries[0], entries[2])
		_, err := loyalty.Replay(gapped)
		assert.ErrorIs(t, err, errs.ErrLedgerCorrupted)
	})

	t.Run("reports drift of a stale snapshot", func(t *testing.T) {
		p, err := loyalty.Replay(entries)
		require.NoError(t, err)
		stale := snap
		stale.CurrentPoints = 900
		drift := stale.Drift(p)
		require.Len(t, drift, 1)
		assert.Contains(t, drift[0], "currentPoints")
	})

	t.Run("empty ledger is a zero projection", func(t *testing.T) {
		p, err := loyalty.Replay(nil)
		require.NoError(t, err)
		assert.True(t, cmp.Equal(loyalty.Projection{}, p, cmpopts.EquateEmpty()))
	})
}

func TestEarnPoints(t *testing.T) {
	d := decimal.RequireFromString
	tests := []struct {
		name    string
		total   string
		mult    string
		perUnit string
		want    int64
		wantErr bool
	}{
		{name: "scenario sale", total: "10000", mult: "1.0", perUnit: "0.1", want: 1000},
		{name: "floors fractional points", total: "19.99", mult: "1.5", perUnit: "1", want: 29},
		{name: "zero multiplier", total: "500", mult: "0", perUnit: "1", want: 0},
		{name: "zero total", total: "0", mult: "2", perUnit: "1", want: 0},
		{name: "negative total", total: "-1", mult: "1", perUnit: "1", wantErr: true},
		{name: "negative multiplier", total: "10", mult: "-1", perUnit: "1", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := loyalty.EarnPoints(d(tt.total), d(tt.mult), d(tt.perUnit))
			if tt.wantErr {
				assert.ErrorIs(t, err, errs.ErrInvalidSaleEvent)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
